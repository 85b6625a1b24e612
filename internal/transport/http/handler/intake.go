package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fitweek/internal/app"
	"fitweek/internal/transport/http/middleware"
	"fitweek/internal/transport/http/response"
)

type IntakeHandler struct {
	intakeService *app.IntakeService
}

type LogFoodRequest struct {
	Food string `json:"food" binding:"required,max=255"`
	// Pointer so a missing amount is rejected rather than read as 0.
	Amount *float64 `json:"amount" binding:"required,gte=0"`
}

func NewIntakeHandler(intakeService *app.IntakeService) *IntakeHandler {
	return &IntakeHandler{intakeService: intakeService}
}

// List returns the last 7 days of entries, newest first.
func (h *IntakeHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "user not found in token")
		return
	}

	entries, err := h.intakeService.RecentEntries(c.Request.Context(), userID, time.Now())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "fetch protein log failed")
		return
	}

	response.OK(c, gin.H{"entries": entries})
}

func (h *IntakeHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "user not found in token")
		return
	}

	var req LogFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid log payload")
		return
	}

	entry, err := h.intakeService.LogFood(c.Request.Context(), userID, req.Food, *req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrIntakeEnqueue):
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "log food failed")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "log food failed")
		}
		return
	}

	response.OK(c, gin.H{
		"message": "Food logged!",
		"entry":   entry,
	})
}
