package ledger

import (
	"context"
	"fmt"
	"strings"

	"awards-board/internal/model"
	appErr "awards-board/pkg/errors"

	"gorm.io/gorm"
)

// Service keeps the club's season points, entered by hand by the director.
type Service struct {
	db *gorm.DB
}

type ListResult struct {
	Items []model.PointsEntry
	Total int64
}

type MutationParams struct {
	Player       string
	Points       int64
	TournamentID string
	Reason       string
}

type Standing struct {
	Player  string `json:"player"`
	Points  int64  `json:"points"`
	Entries int64  `json:"entries"`
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) List(ctx context.Context, page, size int) (*ListResult, error) {
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
		Model(&model.PointsEntry{}).
		Count(&total).Error; err != nil {
		return nil, err
	}

	var items []model.PointsEntry
	if total > 0 {
		if err := s.db.WithContext(ctx).
			Order("id DESC").
			Limit(size).
			Offset((page - 1) * size).
			Find(&items).Error; err != nil {
			return nil, err
		}
	}
	return &ListResult{Items: items, Total: total}, nil
}

func (s *Service) Create(ctx context.Context, params MutationParams) (*model.PointsEntry, error) {
	params, err := normalize(params)
	if err != nil {
		return nil, err
	}
	entry := model.PointsEntry{
		Player:       params.Player,
		Points:       params.Points,
		TournamentID: params.TournamentID,
		Reason:       params.Reason,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *Service) Update(ctx context.Context, id int64, params MutationParams) (*model.PointsEntry, error) {
	params, err := normalize(params)
	if err != nil {
		return nil, err
	}
	result := s.db.WithContext(ctx).
		Model(&model.PointsEntry{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"player":        params.Player,
			"points":        params.Points,
			"tournament_id": params.TournamentID,
			"reason":        params.Reason,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, appErr.ErrPointsEntryNotFound
	}

	var entry model.PointsEntry
	if err := s.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// Leaderboard sums points per player, highest first, name breaking ties.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]Standing, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	var rows []Standing
	err := s.db.WithContext(ctx).
		Model(&model.PointsEntry{}).
		Select("player, SUM(points) AS points, COUNT(*) AS entries").
		Group("player").
		Order("points DESC, player ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []Standing{}
	}
	return rows, nil
}

func normalize(p MutationParams) (MutationParams, error) {
	p.Player = strings.TrimSpace(p.Player)
	p.TournamentID = strings.TrimSpace(p.TournamentID)
	p.Reason = strings.TrimSpace(p.Reason)
	if p.Player == "" {
		return p, fmt.Errorf("%w: player is required", appErr.ErrInvalidPointsPayload)
	}
	return p, nil
}
