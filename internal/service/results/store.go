package results

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"awards-board/internal/model"
	"awards-board/internal/tournament"
	appErr "awards-board/pkg/errors"

	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Entry is one publishable result plus where it came from.
type Entry struct {
	UploadID string
	Filename string
	Result   *tournament.Result
}

// Store is the read/write contract shared by the primary store and its backup.
type Store interface {
	Save(ctx context.Context, entry Entry) error
	Latest(ctx context.Context) (*tournament.Result, error)
}

type Page struct {
	Items []model.TournamentRecord
	Total int64
}

// GormStore keeps every published result as a row.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Save(ctx context.Context, entry Entry) error {
	if entry.Result == nil {
		return fmt.Errorf("%w: nil result", appErr.ErrResultNotFound)
	}
	body, err := json.Marshal(entry.Result)
	if err != nil {
		return err
	}
	rec := model.TournamentRecord{
		UploadID:     entry.UploadID,
		TournamentID: entry.Result.TournamentID,
		Filename:     entry.Filename,
		TotalPlayers: entry.Result.TotalPlayers,
		ResultJSON:   datatypes.JSON(body),
	}
	return s.db.WithContext(ctx).Create(&rec).Error
}

func (s *GormStore) Latest(ctx context.Context) (*tournament.Result, error) {
	var rec model.TournamentRecord
	if err := s.db.WithContext(ctx).Order("id DESC").First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErr.ErrResultNotFound
		}
		return nil, err
	}
	return decode(rec.ResultJSON)
}

func (s *GormStore) List(ctx context.Context, page, size int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}
	if size > 100 {
		size = 100
	}

	var total int64
	if err := s.db.WithContext(ctx).
		Model(&model.TournamentRecord{}).
		Count(&total).Error; err != nil {
		return nil, err
	}

	var items []model.TournamentRecord
	if total > 0 {
		if err := s.db.WithContext(ctx).
			Order("id DESC").
			Limit(size).
			Offset((page - 1) * size).
			Find(&items).Error; err != nil {
			return nil, err
		}
	}
	return &Page{Items: items, Total: total}, nil
}

// RedisBackup keeps only the latest result under a single key.
type RedisBackup struct {
	rdb redis.Cmdable
	key string
}

func NewRedisBackup(rdb redis.Cmdable, key string) *RedisBackup {
	return &RedisBackup{rdb: rdb, key: key}
}

func (b *RedisBackup) Save(ctx context.Context, entry Entry) error {
	body, err := json.Marshal(entry.Result)
	if err != nil {
		return err
	}
	return b.rdb.Set(ctx, b.key, body, 0).Err()
}

func (b *RedisBackup) Latest(ctx context.Context) (*tournament.Result, error) {
	body, err := b.rdb.Get(ctx, b.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, appErr.ErrResultNotFound
		}
		return nil, err
	}
	return decode(body)
}

func decode(body []byte) (*tournament.Result, error) {
	var res tournament.Result
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decode stored result: %w", err)
	}
	return &res, nil
}
