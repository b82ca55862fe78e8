package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Anandakumar9/Ask-Anand-sub000/internal/dto"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/middleware"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/service"
)

const defaultLeaderboardLimit = 10

// AccountController covers the caller's profile, the progress dashboard
// and the leaderboard.
type AccountController struct {
	userService      service.UserService
	dashboardService service.DashboardService
}

func NewAccountController(userService service.UserService, dashboardService service.DashboardService) *AccountController {
	return &AccountController{
		userService:      userService,
		dashboardService: dashboardService,
	}
}

// Me godoc
// @Summary Get the caller's profile
// @Tags Account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserDTO
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /me [get]
func (c *AccountController) Me(ctx *gin.Context) {
	currentUser, ok := middleware.UserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	profile, err := c.userService.GetProfile(currentUser.ID)
	if err != nil {
		log.Error().Err(err).Uint("userID", currentUser.ID).Msg("Me: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve profile"})
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// UpdateMe godoc
// @Summary Update the caller's profile
// @Tags Account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "New display name and optional email"
// @Success 200 {object} dto.UserDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /me [put]
func (c *AccountController) UpdateMe(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateMe: failed to bind request")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	currentUser, ok := middleware.UserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	profile, err := c.userService.UpdateProfile(currentUser.ID, req)
	if err != nil {
		log.Error().Err(err).Uint("userID", currentUser.ID).Msg("UpdateMe: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to update profile"})
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// Dashboard godoc
// @Summary Get the caller's progress dashboard
// @Description Aggregates tests taken, best and average scores, study minutes and recent tests.
// @Tags Account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardDTO
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /dashboard [get]
func (c *AccountController) Dashboard(ctx *gin.Context) {
	currentUser, ok := middleware.UserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	dashboard, err := c.dashboardService.GetDashboard(currentUser.ID)
	if err != nil {
		log.Error().Err(err).Uint("userID", currentUser.ID).Msg("Dashboard: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve dashboard"})
		return
	}
	ctx.JSON(http.StatusOK, dashboard)
}

// Leaderboard godoc
// @Summary Get the leaderboard
// @Tags Account
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of entries to return (default 10)"
// @Success 200 {array} dto.LeaderboardEntryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid limit format"
// @Router /leaderboard [get]
func (c *AccountController) Leaderboard(ctx *gin.Context) {
	limit := defaultLeaderboardLimit
	if limitStr := ctx.Query("limit"); limitStr != "" {
		val, err := strconv.Atoi(limitStr)
		if err != nil || val < 1 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid limit format"})
			return
		}
		limit = val
	}

	entries, err := c.dashboardService.GetLeaderboard(limit)
	if err != nil {
		log.Error().Err(err).Msg("Leaderboard: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve leaderboard"})
		return
	}
	ctx.JSON(http.StatusOK, entries)
}
