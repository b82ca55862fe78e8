package service

import (
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/Anandakumar9/Ask-Anand-sub000/internal/dto"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/model"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/repository"
)

// StudySessionService tracks study sessions and kicks off question
// pre-generation for the topic being studied.
type StudySessionService interface {
	StartSession(userID uint, req dto.StartStudySessionRequest) (*dto.StudySessionDTO, error)
	EndSession(userID, sessionID uint) (*dto.StudySessionDTO, error)
	ListSessions(userID uint, limit int) ([]dto.StudySessionDTO, error)
}

type studySessionService struct {
	sessionRepo repository.StudySessionRepository
	topicRepo   repository.TopicRepository
	scheduler   PreGenerationScheduler
}

func NewStudySessionService(
	sessionRepo repository.StudySessionRepository,
	topicRepo repository.TopicRepository,
	scheduler PreGenerationScheduler,
) StudySessionService {
	return &studySessionService{
		sessionRepo: sessionRepo,
		topicRepo:   topicRepo,
		scheduler:   scheduler,
	}
}

func (s *studySessionService) StartSession(userID uint, req dto.StartStudySessionRequest) (*dto.StudySessionDTO, error) {
	// 1. The topic must exist before we open a session on it.
	topic, err := s.topicRepo.FindByID(req.TopicID)
	if err != nil {
		return nil, err
	}

	// 2. Record the session.
	session := model.StudySession{
		UserID:         userID,
		TopicID:        req.TopicID,
		PlannedMinutes: req.PlannedMinutes,
		Status:         model.StudySessionStatusActive,
		StartedAt:      time.Now(),
	}
	if err := s.sessionRepo.Create(&session); err != nil {
		return nil, err
	}

	// 3. Queue pre-generation for this topic. The scheduler declines short
	// sessions and topics it is already working on.
	queued := s.scheduler.Trigger(req.TopicID, time.Duration(req.PlannedMinutes)*time.Minute)
	if queued {
		session.PreGenQueued = true
		if err := s.sessionRepo.Update(&session); err != nil {
			log.Warn().Err(err).Uint("sessionID", session.ID).Msg("StartSession: failed to record pre-generation flag")
		}
	}

	log.Info().
		Uint("userID", userID).
		Uint("topicID", req.TopicID).
		Uint("sessionID", session.ID).
		Int("plannedMinutes", req.PlannedMinutes).
		Bool("preGenQueued", queued).
		Msg("StartSession: study session started")

	session.Topic = *topic
	return newStudySessionDTO(&session), nil
}

func (s *studySessionService) EndSession(userID, sessionID uint) (*dto.StudySessionDTO, error) {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrSessionAccessDenied
	}
	if session.Status != model.StudySessionStatusActive {
		return nil, ErrSessionAlreadyEnded
	}

	now := time.Now()
	session.Status = model.StudySessionStatusCompleted
	session.EndedAt = &now
	if err := s.sessionRepo.Update(session); err != nil {
		return nil, err
	}

	log.Info().
		Uint("userID", userID).
		Uint("sessionID", session.ID).
		Msg("EndSession: study session ended")

	return newStudySessionDTO(session), nil
}

func (s *studySessionService) ListSessions(userID uint, limit int) ([]dto.StudySessionDTO, error) {
	sessions, err := s.sessionRepo.FindByUser(userID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]dto.StudySessionDTO, 0, len(sessions))
	for i := range sessions {
		result = append(result, *newStudySessionDTO(&sessions[i]))
	}
	return result, nil
}

func newStudySessionDTO(session *model.StudySession) *dto.StudySessionDTO {
	var sessionDTO dto.StudySessionDTO
	if err := copier.Copy(&sessionDTO, session); err != nil {
		log.Error().Err(err).Uint("sessionID", session.ID).Msg("Failed to copy study session")
	}
	sessionDTO.TopicName = session.Topic.Name
	return &sessionDTO
}
