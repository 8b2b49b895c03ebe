package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/wfunc/anima-counter/internal/errors"
	"github.com/wfunc/anima-counter/internal/models"
	"github.com/wfunc/anima-counter/internal/repository"
	"github.com/wfunc/anima-counter/internal/utils"
	"go.uber.org/zap"
)

// defaultEmailDomain 未提供邮箱时使用的占位域名
const defaultEmailDomain = "anima-counter.local"

// authService 认证服务实现
type authService struct {
	repos     *repository.Manager
	jwt       *utils.JWTManager
	hasher    *utils.PasswordHasher
	gameState GameStateService
	log       *zap.Logger
	now       func() time.Time
}

// NewAuthService 创建认证服务
func NewAuthService(
	repos *repository.Manager,
	jwt *utils.JWTManager,
	hasher *utils.PasswordHasher,
	gameState GameStateService,
	log *zap.Logger,
) AuthService {
	return &authService{
		repos:     repos,
		jwt:       jwt,
		hasher:    hasher,
		gameState: gameState,
		log:       log,
		now:       time.Now,
	}
}

// Register 用户注册，同时创建默认档案及其空状态
func (s *authService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	req.DisplayName = strings.TrimSpace(req.DisplayName)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	email := req.Email
	if email == "" {
		email = fmt.Sprintf("%s@%s", req.Username, defaultEmailDomain)
	}
	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.Username
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal, "密码加密失败")
	}

	user := &models.User{
		Username:     req.Username,
		Email:        email,
		PasswordHash: hash,
		DisplayName:  displayName,
		IsActive:     true,
	}
	err = s.repos.WithTransaction(ctx, func(tx *repository.Transaction) error {
		if err := tx.User().Create(ctx, user); err != nil {
			return err
		}
		profile := &models.Profile{UserID: user.ID, Name: displayName + "'s profile"}
		if err := tx.Profile().Create(ctx, profile); err != nil {
			return err
		}
		return tx.GameState().Create(ctx, &models.GameState{UserProfileID: profile.ID})
	})
	if err != nil {
		if stderrors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.New(apperrors.ErrAlreadyExists, "用户名或邮箱已被使用")
		}
		s.log.Error("注册失败", zap.String("username", req.Username), zap.Error(err))
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseInsert)
	}

	s.log.Info("用户注册成功", zap.Uint("user_id", user.ID), zap.String("username", user.Username))
	return s.issue(user)
}

// Login 用户登录，成功后重置该用户所有档案的战斗状态
func (s *authService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	user, err := s.repos.User().FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.ErrAuthentication)
		}
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
	}
	if !user.IsActive {
		return nil, apperrors.New(apperrors.ErrAuthentication)
	}

	ok, err := s.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		s.log.Warn("密码哈希无法解析", zap.Uint("user_id", user.ID), zap.Error(err))
		return nil, apperrors.New(apperrors.ErrAuthentication)
	}
	if !ok {
		return nil, apperrors.New(apperrors.ErrAuthentication)
	}

	now := s.now()
	if err := s.repos.User().UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseUpdate)
	}
	user.LastLoginAt = &now

	reset, err := s.gameState.ResetCombatForUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info("用户登录", zap.Uint("user_id", user.ID), zap.Int("profiles_reset", reset))
	return s.issue(user)
}

// ValidateToken 验证访问令牌
func (s *authService) ValidateToken(ctx context.Context, token string) (*utils.JWTClaims, error) {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		if stderrors.Is(err, utils.ErrExpiredToken) {
			return nil, apperrors.New(apperrors.ErrTokenExpired)
		}
		return nil, apperrors.New(apperrors.ErrTokenInvalid)
	}
	return claims, nil
}

// Verify 令牌有效但用户被删除或禁用时返回认证错误
func (s *authService) Verify(ctx context.Context, userID uint) (*UserInfo, error) {
	user, err := s.repos.User().FindByID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.ErrAuthentication)
		}
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
	}
	if !user.IsActive {
		return nil, apperrors.New(apperrors.ErrAccountDisabled)
	}
	return toUserInfo(user), nil
}

func (s *authService) issue(user *models.User) (*AuthResponse, error) {
	token, expiresAt, err := s.jwt.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal, "生成访问令牌失败")
	}
	return &AuthResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
		User:      toUserInfo(user),
	}, nil
}

func toUserInfo(user *models.User) *UserInfo {
	return &UserInfo{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}
