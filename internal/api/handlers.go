package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"awards-board/internal/service/ledger"
	appErr "awards-board/pkg/errors"
	"awards-board/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type adminLoginBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type pointsBody struct {
	Player       string `json:"player" binding:"required"`
	Points       int64  `json:"points"`
	TournamentID string `json:"tournamentId"`
	Reason       string `json:"reason"`
}

func (b pointsBody) toParams() ledger.MutationParams {
	return ledger.MutationParams{
		Player:       b.Player,
		Points:       b.Points,
		TournamentID: b.TournamentID,
		Reason:       b.Reason,
	}
}

func (h *Handler) Board(c *gin.Context) {
	c.HTML(http.StatusOK, "board.html", gin.H{
		"Results": h.services.Publisher.Current(c.Request.Context()),
	})
}

func (h *Handler) UploadPage(c *gin.Context) {
	c.HTML(http.StatusOK, "upload.html", gin.H{
		"Results":   h.services.Publisher.Current(c.Request.Context()),
		"UploadURL": fmt.Sprintf("/upload/%s/process", h.uploadSecret),
	})
}

func (h *Handler) CurrentResult(c *gin.Context) {
	response.Success(c, h.services.Publisher.Current(c.Request.Context()))
}

func (h *Handler) ResultHistory(c *gin.Context) {
	page, err := parsePositiveIntQuery(c, "page", 1)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	size, err := parsePositiveIntQuery(c, "size", 20)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.services.Store.List(c.Request.Context(), page, size)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, gin.H{
		"items": result.Items,
		"total": result.Total,
		"page":  page,
		"size":  size,
	})
}

func (h *Handler) Leaderboard(c *gin.Context) {
	limit, err := parsePositiveIntQuery(c, "limit", 50)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	rows, err := h.services.Ledger.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(c, rows)
}

// ProcessUpload takes a multipart "file" field holding a hand history.
func (h *Handler) ProcessUpload(c *gin.Context) {
	maxBytes := h.services.Upload.MaxBytes()
	if maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+1<<20)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, http.StatusRequestEntityTooLarge, appErr.ErrUploadTooLarge.Error())
			return
		}
		response.Error(c, http.StatusBadRequest, "missing file")
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	defer f.Close()

	reader := io.Reader(f)
	if maxBytes > 0 {
		reader = io.LimitReader(f, maxBytes+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	outcome, err := h.services.Upload.Process(c.Request.Context(), fh.Filename, data)
	if err != nil {
		if response.FromError(c, err) == http.StatusInternalServerError {
			h.log.Error("upload failed", zap.String("filename", fh.Filename), zap.Error(err))
		}
		return
	}

	response.SuccessWithMsg(c, outcome, "Awards updated successfully!")
}

func (h *Handler) AdminLogin(c *gin.Context) {
	var body adminLoginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.services.Admin.Login(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, resp)
}

func (h *Handler) AdminListPoints(c *gin.Context) {
	page, err := parsePositiveIntQuery(c, "page", 1)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	size, err := parsePositiveIntQuery(c, "size", 20)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.services.Ledger.List(c.Request.Context(), page, size)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, gin.H{
		"items": result.Items,
		"total": result.Total,
		"page":  page,
		"size":  size,
	})
}

func (h *Handler) AdminCreatePoints(c *gin.Context) {
	var body pointsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.services.Ledger.Create(c.Request.Context(), body.toParams())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, entry)
}

func (h *Handler) AdminUpdatePoints(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "invalid points entry id")
		return
	}

	var body pointsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.services.Ledger.Update(c.Request.Context(), id, body.toParams())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, entry)
}

func parsePositiveIntQuery(c *gin.Context, key string, defaultVal int) (int, error) {
	val := c.Query(key)
	if val == "" {
		return defaultVal, nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return parsed, nil
}
