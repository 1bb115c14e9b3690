package repo

import (
	"context"

	"awards-board/internal/config"
	"awards-board/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var RDB *redis.Client

// InitRedis leaves RDB nil when redis is disabled. An unreachable server is
// logged and tolerated since redis only holds the backup copy.
func InitRedis() {
	conf := config.GlobalConfig.Redis
	if !conf.Enabled {
		return
	}
	RDB = redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})

	_, err := RDB.Ping(context.Background()).Result()
	if err != nil {
		logger.Log.Warn("Failed to connect to Redis, backup writes will be retried per publish", zap.Error(err))
	}
}
