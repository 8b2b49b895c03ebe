package api

import (
	"github.com/gin-gonic/gin"
	"github.com/wfunc/anima-counter/internal/middleware"
	"github.com/wfunc/anima-counter/internal/service"
)

// ProfileHandler 角色档案处理器
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler 创建角色档案处理器
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// List 档案列表
// @Summary 档案列表
// @Tags Profile
// @Produce json
// @Security Bearer
// @Success 200 {array} models.Profile
// @Failure 401 {object} ErrorResponse
// @Router /api/profiles [get]
func (h *ProfileHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	profiles, err := h.profileService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, profiles)
}

// Create 创建档案
// @Summary 创建档案
// @Description 创建档案并初始化战斗状态
// @Tags Profile
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body service.ProfileRequest true "档案名称"
// @Success 201 {object} models.Profile
// @Failure 400 {object} ErrorResponse
// @Router /api/profiles [post]
func (h *ProfileHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req service.ProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.profileService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, profile)
}

// Get 获取档案
// @Summary 获取档案
// @Tags Profile
// @Produce json
// @Security Bearer
// @Param profileId path int true "档案ID"
// @Success 200 {object} models.Profile
// @Failure 403 {object} ErrorResponse
// @Router /api/profiles/{profileId} [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, profileID, ok := h.target(c)
	if !ok {
		return
	}

	profile, err := h.profileService.Get(c.Request.Context(), userID, profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, profile)
}

// Rename 重命名档案
// @Summary 重命名档案
// @Tags Profile
// @Accept json
// @Produce json
// @Security Bearer
// @Param profileId path int true "档案ID"
// @Param request body service.ProfileRequest true "新名称"
// @Success 200 {object} models.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/profiles/{profileId} [put]
func (h *ProfileHandler) Rename(c *gin.Context) {
	userID, profileID, ok := h.target(c)
	if !ok {
		return
	}

	var req service.ProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.profileService.Rename(c.Request.Context(), userID, profileID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, profile)
}

// Delete 删除档案
// @Summary 删除档案
// @Description 级联删除法术书、待施放队列、维持列表与战斗状态，不能删除最后一个档案
// @Tags Profile
// @Produce json
// @Security Bearer
// @Param profileId path int true "档案ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/profiles/{profileId} [delete]
func (h *ProfileHandler) Delete(c *gin.Context) {
	userID, profileID, ok := h.target(c)
	if !ok {
		return
	}

	if err := h.profileService.Delete(c.Request.Context(), userID, profileID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, MessageResponse{Message: "档案已删除"})
}

func (h *ProfileHandler) target(c *gin.Context) (uint, uint, bool) {
	userID, ok := currentUser(c)
	if !ok {
		return 0, 0, false
	}
	profileID, err := middleware.ParseID(c, middleware.ProfileParam)
	if err != nil {
		respondError(c, err)
		return 0, 0, false
	}
	return userID, profileID, true
}
