package service

import (
	"context"

	"awards-board/internal/config"
	"awards-board/internal/metrics"
	"awards-board/internal/service/admin"
	"awards-board/internal/service/ledger"
	"awards-board/internal/service/results"
	"awards-board/internal/service/upload"
	"awards-board/internal/tournament"
	"awards-board/internal/ws"
	pkgAuth "awards-board/pkg/auth"

	"github.com/coder/quartz"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Container struct {
	Engine    *tournament.Engine
	Hub       *ws.Hub
	Metrics   *metrics.Metrics
	Store     *results.GormStore
	Publisher *results.Publisher
	Upload    *upload.Service
	Ledger    *ledger.Service
	Admin     *admin.Service
	Issuer    *pkgAuth.Issuer
	Clock     quartz.Clock
}

// NewContainer wires the services. rdb may be nil, in which case results
// have no secondary copy.
func NewContainer(cfg *config.Config, db *gorm.DB, rdb *redis.Client, clock quartz.Clock, log *zap.Logger) *Container {
	if log == nil {
		log = zap.NewNop()
	}
	if clock == nil {
		clock = quartz.NewReal()
	}
	engine := tournament.NewEngine(log.Named("tournament"), clock)
	hub := ws.NewHub(16, log.Named("hub"))
	store := results.NewGormStore(db)

	var backup results.Store
	if rdb != nil {
		backup = results.NewRedisBackup(rdb, cfg.Redis.BackupKey)
	}
	m := metrics.New(hub.Len)
	publisher := results.NewPublisher(store, backup, hub, engine.Fallback, log.Named("publisher"))
	publisher.SetRecorder(m)
	issuer := pkgAuth.NewIssuer(cfg.JWT.Secret, cfg.JWT.Expire)

	return &Container{
		Engine:    engine,
		Hub:       hub,
		Metrics:   m,
		Store:     store,
		Publisher: publisher,
		Upload:    upload.NewService(engine, publisher, m, cfg.Upload, log.Named("upload")),
		Ledger:    ledger.NewService(db),
		Admin:     admin.NewService(db, issuer, cfg.Admin, log.Named("admin")),
		Issuer:    issuer,
		Clock:     clock,
	}
}

func (c *Container) Start(ctx context.Context) error {
	return c.Admin.EnsureDefaultAdmin(ctx)
}
