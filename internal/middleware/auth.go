package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	pkgAuth "awards-board/pkg/auth"

	"github.com/gin-gonic/gin"
)

const ContextAdminIDKey = "adminID"

func AdminAuthRequired(issuer *pkgAuth.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		claims, err := issuer.ParseAdminToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextAdminIDKey, claims.SubjectID)
		c.Next()
	}
}

// UploadSecretRequired guards the upload path. A wrong secret answers 404 so
// the endpoint is not discoverable.
func UploadSecretRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.Param("secret")
		if secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.Next()
	}
}

func extractBearerToken(authHeader string) (string, error) {
	if strings.TrimSpace(authHeader) == "" {
		return "", errors.New("missing authorization header")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}
