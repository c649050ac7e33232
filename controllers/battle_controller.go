package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type BattleController struct {
	Battle  *services.BattleService
	Kitchen *services.KitchenService
}

func NewBattleController(battle *services.BattleService, kitchen *services.KitchenService) *BattleController {
	return &BattleController{Battle: battle, Kitchen: kitchen}
}

type prepCombatantRequest struct {
	Name string `json:"meal" binding:"required"`
}

// PrepCombatant looks the meal up by name and stages it for the next battle.
func (h *BattleController) PrepCombatant(c *gin.Context) {
	var req prepCombatantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := h.Kitchen.GetMealByName(c.Request.Context(), req.Name)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	if err := h.Battle.PrepCombatant(*meal); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"combatants": h.Battle.Combatants()})
}

func (h *BattleController) GetCombatants(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"combatants": h.Battle.Combatants()})
}

func (h *BattleController) ClearCombatants(c *gin.Context) {
	h.Battle.ClearCombatants()
	c.JSON(http.StatusOK, gin.H{"status": "combatants cleared"})
}

// Fight resolves the staged battle and reports the winner.
func (h *BattleController) Fight(c *gin.Context) {
	winner, err := h.Battle.Battle(c.Request.Context())
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"winner": winner})
}
