package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type KitchenController struct {
	Kitchen *services.KitchenService
}

func NewKitchenController(kitchen *services.KitchenService) *KitchenController {
	return &KitchenController{Kitchen: kitchen}
}

type createMealRequest struct {
	Name       string  `json:"meal" binding:"required"`
	Cuisine    string  `json:"cuisine" binding:"required"`
	Price      float64 `json:"price" binding:"required"`
	Difficulty string  `json:"difficulty" binding:"required"`
}

func (h *KitchenController) CreateMeal(c *gin.Context) {
	var req createMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Kitchen.CreateMeal(c.Request.Context(), req.Name, req.Cuisine, req.Price, req.Difficulty)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "meal": req.Name})
}

func (h *KitchenController) GetMealByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	meal, err := h.Kitchen.GetMealByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (h *KitchenController) GetMealByName(c *gin.Context) {
	meal, err := h.Kitchen.GetMealByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (h *KitchenController) DeleteMeal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	if err := h.Kitchen.DeleteMeal(c.Request.Context(), uint(id)); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "meal deleted"})
}

func (h *KitchenController) Leaderboard(c *gin.Context) {
	sortBy := c.DefaultQuery("sort", services.SortByWins)

	entries, err := h.Kitchen.Leaderboard(c.Request.Context(), sortBy)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}

func (h *KitchenController) ResetMeals(c *gin.Context) {
	if err := h.Kitchen.ResetMeals(c.Request.Context()); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "catalog reset"})
}

// statusForError maps the services sentinels onto HTTP statuses. Anything
// unrecognized is an internal fault.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrCombatantsFull),
		errors.Is(err, services.ErrNotEnoughCombatants):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrMealNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrMealGone):
		return http.StatusGone
	case errors.Is(err, services.ErrDuplicateMeal):
		return http.StatusConflict
	case errors.Is(err, services.ErrRandomTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
