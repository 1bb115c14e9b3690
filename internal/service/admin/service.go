package admin

import (
	"context"
	"errors"
	"strings"
	"time"

	"awards-board/internal/config"
	"awards-board/internal/model"
	pkgAuth "awards-board/pkg/auth"
	appErr "awards-board/pkg/errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	db     *gorm.DB
	issuer *pkgAuth.Issuer
	seed   config.AdminSeedConfig
	log    *zap.Logger
}

type LoginResult struct {
	Token    string    `json:"token"`
	ExpireAt time.Time `json:"expireAt"`
	Admin    AdminInfo `json:"admin"`
}

type AdminInfo struct {
	ID          int64      `json:"id"`
	Username    string     `json:"username"`
	DisplayName string     `json:"displayName"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

func NewService(db *gorm.DB, issuer *pkgAuth.Issuer, seed config.AdminSeedConfig, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{db: db, issuer: issuer, seed: seed, log: log}
}

// Login checks the bcrypt hash and returns a signed admin token.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, appErr.ErrInvalidAdminPassword
	}

	var admin model.Admin
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErr.ErrAdminNotFound
		}
		return nil, err
	}
	if !strings.EqualFold(admin.Status, "active") {
		return nil, appErr.ErrAdminDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, appErr.ErrInvalidAdminPassword
	}

	token, expireAt, err := s.issuer.GenerateAdminToken(admin.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.db.WithContext(ctx).
		Model(&admin).
		Update("last_login_at", now).Error; err != nil {
		return nil, err
	}
	admin.LastLoginAt = &now

	s.log.Info("admin logged in", zap.String("username", admin.Username))
	return &LoginResult{
		Token:    token,
		ExpireAt: expireAt,
		Admin:    toInfo(admin),
	}, nil
}

// EnsureDefaultAdmin creates the configured bootstrap account once.
func (s *Service) EnsureDefaultAdmin(ctx context.Context) error {
	if s.seed.DefaultUsername == "" || s.seed.DefaultPassword == "" {
		s.log.Warn("default admin credentials not configured; skipping bootstrap")
		return nil
	}

	var exists int64
	if err := s.db.WithContext(ctx).
		Model(&model.Admin{}).
		Where("username = ?", s.seed.DefaultUsername).
		Count(&exists).Error; err != nil {
		return err
	}
	if exists > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.seed.DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := model.Admin{
		Username:     s.seed.DefaultUsername,
		PasswordHash: string(hash),
		DisplayName:  s.seed.DefaultUsername,
		Status:       "active",
	}
	if err := s.db.WithContext(ctx).Create(&admin).Error; err != nil {
		return err
	}
	s.log.Info("default admin account created", zap.String("username", admin.Username))
	return nil
}

func toInfo(admin model.Admin) AdminInfo {
	return AdminInfo{
		ID:          admin.ID,
		Username:    admin.Username,
		DisplayName: admin.DisplayName,
		LastLoginAt: admin.LastLoginAt,
	}
}
