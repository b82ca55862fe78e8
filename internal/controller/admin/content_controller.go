package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Anandakumar9/Ask-Anand-sub000/internal/dto"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/service"
)

// ContentController manages the catalog and the previous year question
// bank. All routes require the admin role.
type ContentController struct {
	contentService service.ContentService
}

func NewContentController(contentService service.ContentService) *ContentController {
	return &ContentController{contentService: contentService}
}

// CreateExam godoc
// @Summary (Admin) Create an exam
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateExamRequest true "Exam name and description"
// @Success 201 {object} model.Exam
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /admin/exams [post]
func (c *ContentController) CreateExam(ctx *gin.Context) {
	var req dto.CreateExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateExam: failed to bind request")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	exam, err := c.contentService.CreateExam(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateExam: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Failed to create exam: " + err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, exam)
}

// CreateSubject godoc
// @Summary (Admin) Create a subject under an exam
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSubjectRequest true "Parent exam and subject name"
// @Success 201 {object} model.Subject
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /admin/subjects [post]
func (c *ContentController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateSubject: failed to bind request")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	subject, err := c.contentService.CreateSubject(req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Exam not found"})
			return
		}
		log.Error().Err(err).Uint("examID", req.ExamID).Msg("Admin CreateSubject: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Failed to create subject: " + err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, subject)
}

// CreateTopic godoc
// @Summary (Admin) Create a topic under a subject
// @Description The topic description feeds semantic retrieval when generating questions, so a couple of scoping sentences helps quality.
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTopicRequest true "Parent subject, topic name and description"
// @Success 201 {object} model.Topic
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /admin/topics [post]
func (c *ContentController) CreateTopic(ctx *gin.Context) {
	var req dto.CreateTopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateTopic: failed to bind request")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	topic, err := c.contentService.CreateTopic(req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Subject not found"})
			return
		}
		log.Error().Err(err).Uint("subjectID", req.SubjectID).Msg("Admin CreateTopic: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Failed to create topic: " + err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, topic)
}

// ImportQuestions godoc
// @Summary (Admin) Bulk import previous year questions
// @Description Imports questions into a topic's bank. Invalid rows are rejected individually with a reason; the rest are stored.
// @Tags Admin - Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ImportQuestionsRequest true "Target topic and question rows"
// @Success 200 {object} dto.ImportResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Topic not found"
// @Router /admin/questions/import [post]
func (c *ContentController) ImportQuestions(ctx *gin.Context) {
	var req dto.ImportQuestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin ImportQuestions: failed to bind request")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := c.contentService.ImportQuestions(req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Topic not found"})
			return
		}
		log.Error().Err(err).Uint("topicID", req.TopicID).Msg("Admin ImportQuestions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to import questions: " + err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// ListQuestions godoc
// @Summary (Admin) List a topic's questions
// @Description Lists the stored questions of a topic, filtered by source ("previous_year" or "ai_generated").
// @Tags Admin - Content
// @Produce json
// @Security BearerAuth
// @Param topic_id path int true "Topic ID"
// @Param source query string false "Question source filter" Enums(previous_year, ai_generated) default(previous_year)
// @Success 200 {array} model.Question
// @Failure 400 {object} dto.ErrorResponse "Invalid topic ID format"
// @Failure 404 {object} dto.ErrorResponse "Topic not found"
// @Router /admin/topics/{topic_id}/questions [get]
func (c *ContentController) ListQuestions(ctx *gin.Context) {
	topicID, err := strconv.ParseUint(ctx.Param("topic_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid topic ID format"})
		return
	}
	source := ctx.DefaultQuery("source", "previous_year")

	questions, err := c.contentService.ListQuestions(uint(topicID), source)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Topic not found"})
			return
		}
		log.Error().Err(err).Uint64("topicID", topicID).Msg("Admin ListQuestions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve questions"})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}
