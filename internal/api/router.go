package api

import (
	"embed"
	"html/template"

	"awards-board/internal/config"
	"awards-board/internal/middleware"
	"awards-board/internal/service"
	"awards-board/internal/ws"
	"awards-board/pkg/response"

	"github.com/coder/quartz"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

type Handler struct {
	services     *service.Container
	uploadSecret string
	log          *zap.Logger
}

func uploadLimiter(conf config.UploadConfig, clock quartz.Clock) *middleware.IPRateLimiter {
	if conf.RatePerMinute <= 0 {
		return nil
	}
	return middleware.NewIPRateLimiter(conf.RatePerMinute, conf.RateBurst, clock)
}

func LoadTemplates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// RegisterRoutes installs the board, API, upload and admin routes on r.
func RegisterRoutes(r *gin.Engine, services *service.Container, uploadConf config.UploadConfig, log *zap.Logger) error {
	tmpl, err := LoadTemplates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)

	if log == nil {
		log = zap.NewNop()
	}
	handler := &Handler{services: services, uploadSecret: uploadConf.Secret, log: log}
	wsHandler := ws.NewHandler(services.Hub, services.Publisher, log.Named("ws"))

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{"message": "pong"})
	})

	r.GET("/metrics", gin.WrapH(services.Metrics.Handler()))

	r.GET("/", handler.Board)
	r.GET("/events", wsHandler.HandleEvents)
	r.GET("/ws", wsHandler.HandleWS)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/results", handler.CurrentResult)
		apiGroup.GET("/results/history", handler.ResultHistory)
		apiGroup.GET("/leaderboard", handler.Leaderboard)
	}

	uploadGroup := r.Group("/upload/:secret")
	uploadGroup.Use(
		middleware.RateLimit(uploadLimiter(uploadConf, services.Clock)),
		middleware.UploadSecretRequired(uploadConf.Secret),
	)
	{
		uploadGroup.GET("", handler.UploadPage)
		uploadGroup.POST("/process", handler.ProcessUpload)
	}

	adminGroup := r.Group("/admin")
	{
		adminGroup.POST("/auth/login", handler.AdminLogin)

		protected := adminGroup.Group("/")
		protected.Use(middleware.AdminAuthRequired(services.Issuer))
		{
			protected.POST("/tournaments", handler.ProcessUpload)

			protected.GET("/points", handler.AdminListPoints)
			protected.POST("/points", handler.AdminCreatePoints)
			protected.PUT("/points/:id", handler.AdminUpdatePoints)
		}
	}
	return nil
}
