package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fitweek/internal/app"
	"fitweek/internal/planner"
	"fitweek/internal/transport/http/middleware"
	"fitweek/internal/transport/http/response"
)

type DashboardHandler struct {
	authService   *app.AuthService
	intakeService *app.IntakeService
}

func NewDashboardHandler(authService *app.AuthService, intakeService *app.IntakeService) *DashboardHandler {
	return &DashboardHandler{
		authService:   authService,
		intakeService: intakeService,
	}
}

// Show renders today's plan and the weekly protein report. Users who have
// not completed profile setup are sent there first.
func (h *DashboardHandler) Show(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "user not found in token")
		return
	}

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "fetch current user failed")
		return
	}
	if user == nil {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "user not found")
		return
	}
	if !user.Onboarded {
		response.Redirect(c, http.StatusConflict, response.CodeProfileRequired, "profile setup required", app.NextProfileSetup)
		return
	}

	now := time.Now()
	workouts := planner.ResolveWorkout(now.Weekday(), user.Profile.Location, user.Profile.Equipment)

	report, err := h.intakeService.Report(c.Request.Context(), user, now)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "compute weekly score failed")
		return
	}

	response.OK(c, gin.H{
		"username":       user.Username,
		"today":          now.Weekday().String(),
		"workouts":       workouts,
		"score":          report.Score,
		"weekly_protein": report.WeeklyProtein,
		"protein_target": report.DailyTarget,
		"suggestions":    user.Profile.FoodSuggestions,
	})
}
