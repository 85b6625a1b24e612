package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitweek/internal/app"
	"fitweek/internal/transport/http/middleware"
	"fitweek/internal/transport/http/response"
)

type ProfileHandler struct {
	profileService *app.ProfileService
}

// Numeric fields bind as pointers so a missing value is distinguishable from
// zero and rejected instead of silently defaulting.
type ProfileSetupRequest struct {
	Name      string   `json:"name" binding:"required,max=128"`
	Age       *int     `json:"age" binding:"required,gte=0,lte=120"`
	HeightCm  *float64 `json:"height_cm" binding:"required,gt=0"`
	WeightKg  *float64 `json:"weight_kg" binding:"required,gt=0"`
	Country   string   `json:"country" binding:"required,max=64"`
	State     string   `json:"state" binding:"required,max=64"`
	Budget    string   `json:"budget" binding:"required,oneof=low middle advanced"`
	Location  string   `json:"location" binding:"required,oneof=Gym Home"`
	Equipment string   `json:"equipment" binding:"omitempty,oneof=none some-equipment"`
}

func NewProfileHandler(profileService *app.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Show returns the stored profile (zero-valued until setup completes) for
// form prefill.
func (h *ProfileHandler) Show(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "user not found in token")
		return
	}

	user, err := h.profileService.Get(userID)
	if err != nil {
		if errors.Is(err, app.ErrUserNotFound) {
			response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "user not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "fetch profile failed")
		return
	}

	response.OK(c, gin.H{
		"onboarded": user.Onboarded,
		"profile":   user.Profile,
	})
}

func (h *ProfileHandler) Setup(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "user not found in token")
		return
	}

	var req ProfileSetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid profile payload")
		return
	}

	user, err := h.profileService.Setup(userID, app.ProfileInput{
		Name:      req.Name,
		Age:       *req.Age,
		HeightCm:  *req.HeightCm,
		WeightKg:  *req.WeightKg,
		Country:   req.Country,
		State:     req.State,
		Budget:    req.Budget,
		Location:  req.Location,
		Equipment: req.Equipment,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrUserNotFound):
			response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "user not found")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "profile setup failed")
		}
		return
	}

	response.OK(c, gin.H{
		"profile": user.Profile,
		"next":    app.NextDashboard,
	})
}
