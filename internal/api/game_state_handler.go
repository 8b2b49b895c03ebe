package api

import (
	"github.com/gin-gonic/gin"
	"github.com/wfunc/anima-counter/internal/service"
)

// GameStateHandler 战斗状态处理器
type GameStateHandler struct {
	gameStateService service.GameStateService
}

// NewGameStateHandler 创建战斗状态处理器
func NewGameStateHandler(gameStateService service.GameStateService) *GameStateHandler {
	return &GameStateHandler{gameStateService: gameStateService}
}

// Get 获取战斗状态
// @Summary 获取战斗状态
// @Description 不存在时按默认值创建
// @Tags GameState
// @Produce json
// @Security Bearer
// @Param profileId path int true "档案ID"
// @Success 200 {object} models.GameState
// @Failure 403 {object} ErrorResponse
// @Router /api/gamestate/{profileId} [get]
func (h *GameStateHandler) Get(c *gin.Context) {
	profileID, ok := currentProfile(c)
	if !ok {
		return
	}

	state, err := h.gameStateService.Get(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, state)
}

// Update 更新战斗状态
// @Summary 更新战斗状态
// @Description 仅更新请求中出现的字段
// @Tags GameState
// @Accept json
// @Produce json
// @Security Bearer
// @Param profileId path int true "档案ID"
// @Param request body service.GameStateRequest true "状态字段"
// @Success 200 {object} models.GameState
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/gamestate/{profileId} [put]
func (h *GameStateHandler) Update(c *gin.Context) {
	profileID, ok := currentProfile(c)
	if !ok {
		return
	}

	var req service.GameStateRequest
	if !bindJSON(c, &req) {
		return
	}

	state, err := h.gameStateService.Update(c.Request.Context(), profileID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, state)
}

// Reset 重置战斗
// @Summary 重置战斗
// @Description 回合与累积清零，清空待施放队列和维持列表
// @Tags GameState
// @Produce json
// @Security Bearer
// @Param profileId path int true "档案ID"
// @Success 200 {object} models.GameState
// @Failure 403 {object} ErrorResponse
// @Router /api/gamestate/{profileId}/reset [post]
func (h *GameStateHandler) Reset(c *gin.Context) {
	profileID, ok := currentProfile(c)
	if !ok {
		return
	}

	state, err := h.gameStateService.ResetCombat(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, state)
}

// Snapshot 获取完整快照
// @Summary 获取完整快照
// @Tags GameState
// @Produce json
// @Security Bearer
// @Param profileId path int true "档案ID"
// @Success 200 {object} service.SnapshotView
// @Failure 403 {object} ErrorResponse
// @Router /api/gamestate/{profileId}/snapshot [get]
func (h *GameStateHandler) Snapshot(c *gin.Context) {
	profileID, ok := currentProfile(c)
	if !ok {
		return
	}

	view, err := h.gameStateService.Snapshot(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, view)
}

// Apply 执行引擎动作
// @Summary 执行引擎动作
// @Description next_turn, previous_turn, new_day, reset_turn, spend_zeon, add_zeon, add_accumulated, cast, clear_ready_to_cast, clear_maintained, update_characteristics, recompute
// @Tags GameState
// @Accept json
// @Produce json
// @Security Bearer
// @Param profileId path int true "档案ID"
// @Param request body service.ActionRequest true "动作"
// @Success 200 {object} service.SnapshotView
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/gamestate/{profileId}/actions [post]
func (h *GameStateHandler) Apply(c *gin.Context) {
	profileID, ok := currentProfile(c)
	if !ok {
		return
	}

	var req service.ActionRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.gameStateService.Apply(c.Request.Context(), profileID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, view)
}
