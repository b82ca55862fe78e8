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

const defaultTestListLimit = 20

type TestController struct {
	orchestrator      service.TestOrchestratorService
	submissionService service.TestSubmissionService
	mockTestService   service.MockTestService
}

func NewTestController(
	orchestrator service.TestOrchestratorService,
	submissionService service.TestSubmissionService,
	mockTestService service.MockTestService,
) *TestController {
	return &TestController{
		orchestrator:      orchestrator,
		submissionService: submissionService,
		mockTestService:   mockTestService,
	}
}

// StartTest godoc
// @Summary Start a mock test on a topic
// @Description Assembles a fresh mock test mixing previous year and AI generated questions. The answer key is withheld until submission.
// @Tags Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param topic_id path int true "Topic ID"
// @Param request body dto.StartTestRequest true "Question count and optional previous year ratio"
// @Success 201 {object} dto.MockTestDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid topic ID or request body"
// @Failure 404 {object} dto.ErrorResponse "Topic not found"
// @Failure 503 {object} dto.ErrorResponse "No questions available for this topic"
// @Router /topics/{topic_id}/tests [post]
func (c *TestController) StartTest(ctx *gin.Context) {
	topicID, err := strconv.ParseUint(ctx.Param("topic_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid topic ID format"})
		return
	}

	var req dto.StartTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("StartTest: failed to bind request")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	currentUser, ok := middleware.UserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	test, err := c.orchestrator.StartTest(ctx.Request.Context(), currentUser.ID, uint(topicID), req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Topic not found"})
		case errors.Is(err, service.ErrNoQuestionsAvailable):
			ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "No questions available for this topic yet"})
		default:
			log.Error().Err(err).Uint64("topicID", topicID).Msg("StartTest: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to start test"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, test)
}

// SubmitTest godoc
// @Summary Submit answers for a mock test
// @Description Scores the submitted answers, reveals the answer key and folds the result into the leaderboard. A test can be submitted once.
// @Tags Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param public_id path string true "Public test ID"
// @Param request body dto.SubmitTestRequest true "Selected options per question"
// @Success 200 {object} dto.SubmissionResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Test belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 409 {object} dto.ErrorResponse "Test already submitted"
// @Router /tests/{public_id}/submit [post]
func (c *TestController) SubmitTest(ctx *gin.Context) {
	publicID := ctx.Param("public_id")

	var req dto.SubmitTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitTest: failed to bind request")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	currentUser, ok := middleware.UserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	result, err := c.submissionService.SubmitTest(currentUser.ID, publicID, req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Test not found"})
		case errors.Is(err, service.ErrTestAccessDenied):
			ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Test belongs to another user"})
		case errors.Is(err, service.ErrTestAlreadySubmitted):
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Test already submitted"})
		default:
			log.Error().Err(err).Str("publicID", publicID).Msg("SubmitTest: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to submit test"})
		}
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// GetTest godoc
// @Summary Get a mock test
// @Description Returns the test with its questions. Correct options and explanations appear only after submission.
// @Tags Tests
// @Produce json
// @Security BearerAuth
// @Param public_id path string true "Public test ID"
// @Success 200 {object} dto.MockTestDTO
// @Failure 403 {object} dto.ErrorResponse "Test belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{public_id} [get]
func (c *TestController) GetTest(ctx *gin.Context) {
	publicID := ctx.Param("public_id")

	currentUser, ok := middleware.UserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	test, err := c.mockTestService.GetTestForUser(currentUser.ID, publicID)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Test not found"})
		case errors.Is(err, service.ErrTestAccessDenied):
			ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Test belongs to another user"})
		default:
			log.Error().Err(err).Str("publicID", publicID).Msg("GetTest: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve test"})
		}
		return
	}

	ctx.JSON(http.StatusOK, test)
}

// ListTests godoc
// @Summary List the caller's mock tests
// @Description Returns the caller's tests, newest first.
// @Tags Tests
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of tests to return (default 20)"
// @Success 200 {array} dto.MockTestSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid limit format"
// @Router /tests [get]
func (c *TestController) ListTests(ctx *gin.Context) {
	limit := defaultTestListLimit
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

	tests, err := c.mockTestService.ListTestsForUser(currentUser.ID, limit)
	if err != nil {
		log.Error().Err(err).Uint("userID", currentUser.ID).Msg("ListTests: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve tests"})
		return
	}

	ctx.JSON(http.StatusOK, tests)
}
