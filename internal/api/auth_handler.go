package api

import (
	"github.com/gin-gonic/gin"
	"github.com/wfunc/anima-counter/internal/service"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// VerifyResponse 令牌校验响应
type VerifyResponse struct {
	Valid bool              `json:"valid"`
	User  *service.UserInfo `json:"user"`
}

// Register 用户注册
// @Summary 用户注册
// @Description 创建账号，同时创建默认角色档案和战斗状态
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body service.RegisterRequest true "注册信息"
// @Success 201 {object} service.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, resp)
}

// Login 用户登录
// @Summary 用户登录
// @Description 登录成功后重置该用户所有档案的战斗状态
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body service.LoginRequest true "登录信息"
// @Success 200 {object} service.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, resp)
}

// Verify 校验令牌
// @Summary 校验令牌
// @Tags Auth
// @Produce json
// @Security Bearer
// @Success 200 {object} VerifyResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := h.authService.Verify(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, VerifyResponse{Valid: true, User: user})
}
