package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Anandakumar9/Ask-Anand-sub000/internal/dto"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/middleware"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/service"
)

const defaultSessionListLimit = 20

type StudySessionController struct {
	sessionService service.StudySessionService
}

func NewStudySessionController(sessionService service.StudySessionService) *StudySessionController {
	return &StudySessionController{sessionService: sessionService}
}

// StartSession godoc
// @Summary Start a study session
// @Description Opens a study session on a topic. Long enough sessions queue background question pre-generation for that topic.
// @Tags Study Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StartStudySessionRequest true "Topic and planned duration"
// @Success 201 {object} dto.StudySessionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Topic not found"
// @Router /study-sessions [post]
func (c *StudySessionController) StartSession(ctx *gin.Context) {
	var req dto.StartStudySessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("StartSession: failed to bind request")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	currentUser, ok := middleware.UserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	session, err := c.sessionService.StartSession(currentUser.ID, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Topic not found"})
			return
		}
		log.Error().Err(err).Uint("topicID", req.TopicID).Msg("StartSession: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to start study session"})
		return
	}

	ctx.JSON(http.StatusCreated, session)
}

// EndSession godoc
// @Summary End a study session
// @Tags Study Sessions
// @Produce json
// @Security BearerAuth
// @Param session_id path int true "Study session ID"
// @Success 200 {object} dto.StudySessionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid session ID format"
// @Failure 403 {object} dto.ErrorResponse "Session belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Session already ended"
// @Router /study-sessions/{session_id}/end [post]
func (c *StudySessionController) EndSession(ctx *gin.Context) {
	sessionID, err := strconv.ParseUint(ctx.Param("session_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid session ID format"})
		return
	}

	currentUser, ok := middleware.UserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	session, err := c.sessionService.EndSession(currentUser.ID, uint(sessionID))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Session not found"})
		case errors.Is(err, service.ErrSessionAccessDenied):
			ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Session belongs to another user"})
		case errors.Is(err, service.ErrSessionAlreadyEnded):
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Session already ended"})
		default:
			log.Error().Err(err).Uint64("sessionID", sessionID).Msg("EndSession: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to end study session"})
		}
		return
	}

	ctx.JSON(http.StatusOK, session)
}

// ListSessions godoc
// @Summary List the caller's study sessions
// @Tags Study Sessions
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of sessions to return (default 20)"
// @Success 200 {array} dto.StudySessionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid limit format"
// @Router /study-sessions [get]
func (c *StudySessionController) ListSessions(ctx *gin.Context) {
	limit := defaultSessionListLimit
	if limitStr := ctx.Query("limit"); limitStr != "" {
		val, err := strconv.Atoi(limitStr)
		if err != nil || val < 1 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid limit format"})
			return
		}
		limit = val
	}

	currentUser, ok := middleware.UserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	sessions, err := c.sessionService.ListSessions(currentUser.ID, limit)
	if err != nil {
		log.Error().Err(err).Uint("userID", currentUser.ID).Msg("ListSessions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve study sessions"})
		return
	}

	ctx.JSON(http.StatusOK, sessions)
}
