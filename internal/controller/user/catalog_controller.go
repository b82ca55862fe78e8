package user

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

// CatalogController serves the read side of the exam, subject and topic
// hierarchy students browse before starting a test.
type CatalogController struct {
	contentService service.ContentService
}

func NewCatalogController(contentService service.ContentService) *CatalogController {
	return &CatalogController{contentService: contentService}
}

// ListExams godoc
// @Summary List all exams
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Exam
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams [get]
func (c *CatalogController) ListExams(ctx *gin.Context) {
	exams, err := c.contentService.ListExams()
	if err != nil {
		log.Error().Err(err).Msg("ListExams: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve exams"})
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// ListSubjects godoc
// @Summary List subjects of an exam
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param exam_id path int true "Exam ID"
// @Success 200 {array} model.Subject
// @Failure 400 {object} dto.ErrorResponse "Invalid exam ID format"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{exam_id}/subjects [get]
func (c *CatalogController) ListSubjects(ctx *gin.Context) {
	examID, err := strconv.ParseUint(ctx.Param("exam_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid exam ID format"})
		return
	}

	subjects, err := c.contentService.ListSubjects(uint(examID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Exam not found"})
			return
		}
		log.Error().Err(err).Uint64("examID", examID).Msg("ListSubjects: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve subjects"})
		return
	}
	ctx.JSON(http.StatusOK, subjects)
}

// ListTopics godoc
// @Summary List topics of a subject
// @Description Each topic reports how many previous year questions its bank holds.
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param subject_id path int true "Subject ID"
// @Success 200 {array} dto.TopicDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid subject ID format"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /subjects/{subject_id}/topics [get]
func (c *CatalogController) ListTopics(ctx *gin.Context) {
	subjectID, err := strconv.ParseUint(ctx.Param("subject_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid subject ID format"})
		return
	}

	topics, err := c.contentService.ListTopics(uint(subjectID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Subject not found"})
			return
		}
		log.Error().Err(err).Uint64("subjectID", subjectID).Msg("ListTopics: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve topics"})
		return
	}
	ctx.JSON(http.StatusOK, topics)
}

// GetTopic godoc
// @Summary Get a topic
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param topic_id path int true "Topic ID"
// @Success 200 {object} dto.TopicDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid topic ID format"
// @Failure 404 {object} dto.ErrorResponse "Topic not found"
// @Router /topics/{topic_id} [get]
func (c *CatalogController) GetTopic(ctx *gin.Context) {
	topicID, err := strconv.ParseUint(ctx.Param("topic_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid topic ID format"})
		return
	}

	topic, err := c.contentService.GetTopic(uint(topicID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Topic not found"})
			return
		}
		log.Error().Err(err).Uint64("topicID", topicID).Msg("GetTopic: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve topic"})
		return
	}
	ctx.JSON(http.StatusOK, topic)
}
