package user

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Anandakumar9/Ask-Anand-sub000/internal/dto"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/middleware"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/model"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/service"
)

const testSecret = "controller-test-secret"

type stubUserRepo struct{}

func (stubUserRepo) FindOrCreateByExternalID(externalID, email, name, role string) (*model.User, error) {
	return &model.User{ID: 7, ExternalID: externalID, Email: email, Name: name, Role: role}, nil
}

func (stubUserRepo) FindByID(id uint) (*model.User, error) { return &model.User{ID: id}, nil }

func (stubUserRepo) Update(*model.User) error { return nil }

type stubOrchestrator struct {
	result *dto.MockTestDTO
	err    error

	lastUserID  uint
	lastTopicID uint
	lastReq     dto.StartTestRequest
}

func (s *stubOrchestrator) StartTest(_ context.Context, userID, topicID uint, req dto.StartTestRequest) (*dto.MockTestDTO, error) {
	s.lastUserID = userID
	s.lastTopicID = topicID
	s.lastReq = req
	return s.result, s.err
}

func (s *stubOrchestrator) BuildMix(context.Context, uint, int, float64) (*service.MixResult, error) {
	return nil, nil
}

type stubSubmission struct {
	result *dto.SubmissionResultDTO
	err    error
}

func (s *stubSubmission) SubmitTest(uint, string, dto.SubmitTestRequest) (*dto.SubmissionResultDTO, error) {
	return s.result, s.err
}

type stubMockTests struct {
	test      *dto.MockTestDTO
	summaries []dto.MockTestSummaryDTO
	err       error
}

func (s *stubMockTests) GetTestForUser(uint, string) (*dto.MockTestDTO, error) {
	return s.test, s.err
}

func (s *stubMockTests) ListTestsForUser(uint, int) ([]dto.MockTestSummaryDTO, error) {
	return s.summaries, s.err
}

func newTestRouter(ctrl *TestController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1", middleware.Auth(testSecret, stubUserRepo{}))
	api.POST("/topics/:topic_id/tests", ctrl.StartTest)
	api.GET("/tests", ctrl.ListTests)
	api.GET("/tests/:public_id", ctrl.GetTest)
	api.POST("/tests/:public_id/submit", ctrl.SubmitTest)
	return r
}

func bearerToken(t *testing.T) string {
	t.Helper()
	claims := &middleware.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "auth0|student",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return "Bearer " + token
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestStartTestCreatesAndReturnsTest(t *testing.T) {
	orchestrator := &stubOrchestrator{result: &dto.MockTestDTO{PublicID: "pub-1", RequestedCount: 10, ActualCount: 10}}
	ctrl := NewTestController(orchestrator, &stubSubmission{}, &stubMockTests{})
	router := newTestRouter(ctrl)

	w := doJSON(t, router, http.MethodPost, "/api/v1/topics/3/tests", dto.StartTestRequest{Count: 10})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var got dto.MockTestDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "pub-1", got.PublicID)
	assert.Equal(t, uint(7), orchestrator.lastUserID)
	assert.Equal(t, uint(3), orchestrator.lastTopicID)
	assert.Equal(t, 10, orchestrator.lastReq.Count)
}

func TestStartTestStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"topic missing", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"no questions", service.ErrNoQuestionsAvailable, http.StatusServiceUnavailable},
		{"other failure", context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := NewTestController(&stubOrchestrator{err: tc.err}, &stubSubmission{}, &stubMockTests{})
			router := newTestRouter(ctrl)

			w := doJSON(t, router, http.MethodPost, "/api/v1/topics/3/tests", dto.StartTestRequest{Count: 10})
			require.Equal(t, tc.want, w.Code, w.Body.String())
		})
	}
}

func TestStartTestValidatesInput(t *testing.T) {
	ctrl := NewTestController(&stubOrchestrator{}, &stubSubmission{}, &stubMockTests{})
	router := newTestRouter(ctrl)

	w := doJSON(t, router, http.MethodPost, "/api/v1/topics/abc/tests", dto.StartTestRequest{Count: 10})
	assert.Equal(t, http.StatusBadRequest, w.Code, "non-numeric topic id")

	w = doJSON(t, router, http.MethodPost, "/api/v1/topics/3/tests", map[string]int{"count": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code, "zero count")

	w = doJSON(t, router, http.MethodPost, "/api/v1/topics/3/tests", map[string]interface{}{"count": 10, "ratio": 1.5})
	assert.Equal(t, http.StatusBadRequest, w.Code, "ratio above 1")
}

func TestSubmitTestStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unknown test", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"foreign test", service.ErrTestAccessDenied, http.StatusForbidden},
		{"already submitted", service.ErrTestAlreadySubmitted, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := NewTestController(&stubOrchestrator{}, &stubSubmission{err: tc.err}, &stubMockTests{})
			router := newTestRouter(ctrl)

			body := dto.SubmitTestRequest{Answers: []dto.AnswerSubmission{{QuestionID: 1, SelectedOption: "A"}}}
			w := doJSON(t, router, http.MethodPost, "/api/v1/tests/pub-1/submit", body)
			require.Equal(t, tc.want, w.Code, w.Body.String())
		})
	}
}

func TestSubmitTestReturnsScore(t *testing.T) {
	submission := &stubSubmission{result: &dto.SubmissionResultDTO{PublicID: "pub-1", Score: 80, Grade: "A"}}
	ctrl := NewTestController(&stubOrchestrator{}, submission, &stubMockTests{})
	router := newTestRouter(ctrl)

	body := dto.SubmitTestRequest{Answers: []dto.AnswerSubmission{{QuestionID: 1, SelectedOption: "A"}}}
	w := doJSON(t, router, http.MethodPost, "/api/v1/tests/pub-1/submit", body)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var got dto.SubmissionResultDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, float64(80), got.Score)
	assert.Equal(t, "A", got.Grade)
}

func TestSubmitTestRejectsInvalidOption(t *testing.T) {
	ctrl := NewTestController(&stubOrchestrator{}, &stubSubmission{}, &stubMockTests{})
	router := newTestRouter(ctrl)

	body := dto.SubmitTestRequest{Answers: []dto.AnswerSubmission{{QuestionID: 1, SelectedOption: "E"}}}
	w := doJSON(t, router, http.MethodPost, "/api/v1/tests/pub-1/submit", body)
	assert.Equal(t, http.StatusBadRequest, w.Code, "selected option E must be rejected")
}

func TestGetTestStatusCodes(t *testing.T) {
	ctrl := NewTestController(&stubOrchestrator{}, &stubSubmission{}, &stubMockTests{err: service.ErrTestAccessDenied})
	router := newTestRouter(ctrl)
	w := doJSON(t, router, http.MethodGet, "/api/v1/tests/pub-1", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	ctrl = NewTestController(&stubOrchestrator{}, &stubSubmission{}, &stubMockTests{err: gorm.ErrRecordNotFound})
	router = newTestRouter(ctrl)
	w = doJSON(t, router, http.MethodGet, "/api/v1/tests/pub-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListTestsValidatesLimit(t *testing.T) {
	ctrl := NewTestController(&stubOrchestrator{}, &stubSubmission{}, &stubMockTests{summaries: []dto.MockTestSummaryDTO{}})
	router := newTestRouter(ctrl)

	w := doJSON(t, router, http.MethodGet, "/api/v1/tests?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "non-numeric limit")

	w = doJSON(t, router, http.MethodGet, "/api/v1/tests?limit=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "zero limit")

	w = doJSON(t, router, http.MethodGet, "/api/v1/tests", nil)
	assert.Equal(t, http.StatusOK, w.Code, "default limit")
}

func TestRoutesRequireAuthentication(t *testing.T) {
	ctrl := NewTestController(&stubOrchestrator{}, &stubSubmission{}, &stubMockTests{})
	router := newTestRouter(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tests", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code, "requests without a token must be rejected")
}
