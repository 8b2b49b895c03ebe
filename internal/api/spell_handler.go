package api

import (
	"github.com/gin-gonic/gin"
	"github.com/wfunc/anima-counter/internal/middleware"
	"github.com/wfunc/anima-counter/internal/service"
)

const (
	spellIDParam = "spellId"
	entryIDParam = "id"
)

// SpellHandler 法术书、待施放队列与维持列表处理器
type SpellHandler struct {
	spellbook service.SpellbookService
}

// NewSpellHandler 创建法术处理器
func NewSpellHandler(spellbook service.SpellbookService) *SpellHandler {
	return &SpellHandler{spellbook: spellbook}
}

// ListSpells 法术书列表
// @Summary 法术书列表
// @Tags Spell
// @Produce json
// @Security Bearer
// @Param profileId path int true "档案ID"
// @Success 200 {array} models.Spell
// @Failure 403 {object} ErrorResponse
// @Router /api/spells/{profileId} [get]
func (h *SpellHandler) ListSpells(c *gin.Context) {
	profileID, ok := currentProfile(c)
	if !ok {
		return
	}

	spells, err := h.spellbook.ListSpells(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, spells)
}

// CreateSpell 新增法术
// @Summary 新增法术
// @Tags Spell
// @Accept json
// @Produce json
// @Security Bearer
// @Param profileId path int true "档案ID"
// @Param request body service.SpellRequest true "法术"
// @Success 201 {object} models.Spell
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/spells/{profileId} [post]
func (h *SpellHandler) CreateSpell(c *gin.Context) {
	profileID, ok := currentProfile(c)
	if !ok {
		return
	}

	var req service.SpellRequest
	if !bindJSON(c, &req) {
		return
	}

	spell, err := h.spellbook.CreateSpell(c.Request.Context(), profileID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, spell)
}

// DeleteSpell 删除法术
// @Summary 删除法术
// @Tags Spell
// @Produce json
// @Security Bearer
// @Param profileId path int true "档案ID"
// @Param spellId path int true "法术ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/spells/{profileId}/{spellId} [delete]
func (h *SpellHandler) DeleteSpell(c *gin.Context) {
	profileID, id, ok := childTarget(c, spellIDParam)
	if !ok {
		return
	}

	if err := h.spellbook.DeleteSpell(c.Request.Context(), profileID, id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, MessageResponse{Message: "法术已删除"})
}

// ListReadyToCast 待施放队列
// @Summary 待施放队列
// @Tags ReadyToCast
// @Produce json
// @Security Bearer
// @Param profileId path int true "档案ID"
// @Success 200 {array} models.ReadyToCast
// @Failure 403 {object} ErrorResponse
// @Router /api/ready-to-cast/{profileId} [get]
func (h *SpellHandler) ListReadyToCast(c *gin.Context) {
	profileID, ok := currentProfile(c)
	if !ok {
		return
	}

	entries, err := h.spellbook.ListReadyToCast(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, entries)
}

// CreateReadyToCast 加入待施放队列
// @Summary 加入待施放队列
// @Description 同时刷新战斗状态中的待消耗魔力
// @Tags ReadyToCast
// @Accept json
// @Produce json
// @Security Bearer
// @Param profileId path int true "档案ID"
// @Param request body service.ReadyToCastRequest true "待施放法术"
// @Success 201 {object} models.ReadyToCast
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/ready-to-cast/{profileId} [post]
func (h *SpellHandler) CreateReadyToCast(c *gin.Context) {
	profileID, ok := currentProfile(c)
	if !ok {
		return
	}

	var req service.ReadyToCastRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.spellbook.CreateReadyToCast(c.Request.Context(), profileID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, entry)
}

// DeleteReadyToCast 移出待施放队列
// @Summary 移出待施放队列
// @Tags ReadyToCast
// @Produce json
// @Security Bearer
// @Param profileId path int true "档案ID"
// @Param id path int true "条目ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/ready-to-cast/{profileId}/{id} [delete]
func (h *SpellHandler) DeleteReadyToCast(c *gin.Context) {
	profileID, id, ok := childTarget(c, entryIDParam)
	if !ok {
		return
	}

	if err := h.spellbook.DeleteReadyToCast(c.Request.Context(), profileID, id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, MessageResponse{Message: "已移出待施放队列"})
}

// ClearReadyToCast 清空待施放队列
// @Summary 清空待施放队列
// @Tags ReadyToCast
// @Produce json
// @Security Bearer
// @Param profileId path int true "档案ID"
// @Success 200 {object} DeletedResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/ready-to-cast/{profileId} [delete]
func (h *SpellHandler) ClearReadyToCast(c *gin.Context) {
	profileID, ok := currentProfile(c)
	if !ok {
		return
	}

	n, err := h.spellbook.ClearReadyToCast(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, DeletedResponse{Message: "待施放队列已清空", Deleted: n})
}

// ListMaintained 维持列表
// @Summary 维持列表
// @Tags SpellMaintain
// @Produce json
// @Security Bearer
// @Param profileId path int true "档案ID"
// @Success 200 {array} models.SpellMaintain
// @Failure 403 {object} ErrorResponse
// @Router /api/spell-mantain/{profileId} [get]
func (h *SpellHandler) ListMaintained(c *gin.Context) {
	profileID, ok := currentProfile(c)
	if !ok {
		return
	}

	entries, err := h.spellbook.ListMaintained(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, entries)
}

// CreateMaintained 加入维持列表
// @Summary 加入维持列表
// @Tags SpellMaintain
// @Accept json
// @Produce json
// @Security Bearer
// @Param profileId path int true "档案ID"
// @Param request body service.MaintainRequest true "维持法术"
// @Success 201 {object} models.SpellMaintain
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/spell-mantain/{profileId} [post]
func (h *SpellHandler) CreateMaintained(c *gin.Context) {
	profileID, ok := currentProfile(c)
	if !ok {
		return
	}

	var req service.MaintainRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.spellbook.CreateMaintained(c.Request.Context(), profileID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, entry)
}

// DeleteMaintained 移出维持列表
// @Summary 移出维持列表
// @Tags SpellMaintain
// @Produce json
// @Security Bearer
// @Param profileId path int true "档案ID"
// @Param id path int true "条目ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/spell-mantain/{profileId}/{id} [delete]
func (h *SpellHandler) DeleteMaintained(c *gin.Context) {
	profileID, id, ok := childTarget(c, entryIDParam)
	if !ok {
		return
	}

	if err := h.spellbook.DeleteMaintained(c.Request.Context(), profileID, id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, MessageResponse{Message: "已移出维持列表"})
}

// ClearMaintained 清空维持列表
// @Summary 清空维持列表
// @Tags SpellMaintain
// @Produce json
// @Security Bearer
// @Param profileId path int true "档案ID"
// @Success 200 {object} DeletedResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/spell-mantain/{profileId} [delete]
func (h *SpellHandler) ClearMaintained(c *gin.Context) {
	profileID, ok := currentProfile(c)
	if !ok {
		return
	}

	n, err := h.spellbook.ClearMaintained(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, DeletedResponse{Message: "维持列表已清空", Deleted: n})
}

// childTarget 解析已授权档案下的子资源ID
func childTarget(c *gin.Context, param string) (uint, uint, bool) {
	profileID, ok := currentProfile(c)
	if !ok {
		return 0, 0, false
	}
	id, err := middleware.ParseID(c, param)
	if err != nil {
		respondError(c, err)
		return 0, 0, false
	}
	return profileID, id, true
}
