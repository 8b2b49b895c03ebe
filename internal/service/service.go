package service

import (
	stderrors "errors"
	"time"

	"github.com/wfunc/anima-counter/internal/config"
	apperrors "github.com/wfunc/anima-counter/internal/errors"
	"github.com/wfunc/anima-counter/internal/repository"
	"github.com/wfunc/anima-counter/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Config 服务配置
type Config struct {
	JWTSecret   string
	JWTIssuer   string
	TokenExpiry time.Duration
	Password    *utils.PasswordConfig
}

// DefaultConfig 默认配置
func DefaultConfig() *Config {
	return &Config{
		JWTSecret:   "your-secret-key-change-this-in-production",
		JWTIssuer:   "anima-counter",
		TokenExpiry: 24 * time.Hour,
	}
}

// ConfigFrom 从应用配置构建服务配置
func ConfigFrom(cfg *config.Config) *Config {
	return &Config{
		JWTSecret:   cfg.Security.JWT.Secret,
		JWTIssuer:   cfg.Security.JWT.Issuer,
		TokenExpiry: cfg.Security.JWT.Expiry(),
	}
}

// Services 服务集合
type Services struct {
	Auth      AuthService
	Profile   ProfileService
	Spellbook SpellbookService
	GameState GameStateService

	Repos *repository.Manager
	JWT   *utils.JWTManager
}

// NewServices 创建服务集合
func NewServices(db *gorm.DB, cfg *Config, log *zap.Logger) *Services {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}

	repos := repository.NewManager(db)
	jwtManager := utils.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenExpiry)
	hasher := utils.NewPasswordHasher(cfg.Password)

	gameState := NewGameStateService(repos, log.Named("gamestate"))
	return &Services{
		Auth:      NewAuthService(repos, jwtManager, hasher, gameState, log.Named("auth")),
		Profile:   NewProfileService(repos, log.Named("profile")),
		Spellbook: NewSpellbookService(repos, log.Named("spellbook")),
		GameState: gameState,
		Repos:     repos,
		JWT:       jwtManager,
	}
}

// storageError 仓储错误转换为应用错误，其他存储错误使用 code
func storageError(err error, code apperrors.ErrorCode) error {
	if err == nil {
		return nil
	}
	if _, ok := apperrors.As(err); ok {
		return err
	}
	switch {
	case stderrors.Is(err, repository.ErrNotFound):
		return apperrors.New(apperrors.ErrNotFound)
	case stderrors.Is(err, repository.ErrDuplicate):
		return apperrors.Wrap(err, apperrors.ErrAlreadyExists)
	}
	return apperrors.Wrap(err, code)
}
