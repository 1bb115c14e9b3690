package response

import (
	"errors"
	"net/http"

	appErr "awards-board/pkg/errors"

	"github.com/gin-gonic/gin"
)

type Body struct {
	Code int         `json:"code"`
	Data interface{} `json:"data"`
	Msg  string      `json:"msg"`
}

var statusByErr = []struct {
	err    error
	status int
}{
	{appErr.ErrUnsupportedFile, http.StatusBadRequest},
	{appErr.ErrEmptyUpload, http.StatusBadRequest},
	{appErr.ErrNotText, http.StatusBadRequest},
	{appErr.ErrInvalidPointsPayload, http.StatusBadRequest},
	{appErr.ErrUploadTooLarge, http.StatusRequestEntityTooLarge},
	{appErr.ErrUnauthorized, http.StatusUnauthorized},
	{appErr.ErrAdminNotFound, http.StatusUnauthorized},
	{appErr.ErrInvalidAdminPassword, http.StatusUnauthorized},
	{appErr.ErrAdminDisabled, http.StatusForbidden},
	{appErr.ErrResultNotFound, http.StatusNotFound},
	{appErr.ErrPointsEntryNotFound, http.StatusNotFound},
}

func Success(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, data, "")
}

func SuccessWithMsg(c *gin.Context, data interface{}, msg string) {
	JSON(c, http.StatusOK, data, msg)
}

func Error(c *gin.Context, status int, msg string) {
	JSON(c, status, gin.H{}, msg)
}

// StatusFor maps a service error to its HTTP status; unknown errors are 500.
func StatusFor(err error) int {
	for _, m := range statusByErr {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// FromError writes err with the status StatusFor picks and returns that status.
func FromError(c *gin.Context, err error) int {
	status := StatusFor(err)
	Error(c, status, err.Error())
	return status
}

func JSON(c *gin.Context, status int, data interface{}, msg string) {
	if data == nil {
		data = gin.H{}
	}
	c.JSON(status, Body{
		Code: status,
		Data: data,
		Msg:  msg,
	})
}
