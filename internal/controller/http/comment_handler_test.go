package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogium/internal/entity"
	"blogium/internal/policy"
	"blogium/internal/usecase"
	"blogium/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCommentUseCase is a mock implementation of usecase.CommentUseCase
type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) CreateComment(postID, viewerID, text string) (*entity.Comment, error) {
	args := m.Called(postID, viewerID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) UpdateComment(commentID, viewerID, text string) (*entity.Comment, policy.Decision, error) {
	args := m.Called(commentID, viewerID, text)
	if args.Get(0) == nil {
		return nil, args.Get(1).(policy.Decision), args.Error(2)
	}
	return args.Get(0).(*entity.Comment), args.Get(1).(policy.Decision), args.Error(2)
}

func (m *MockCommentUseCase) DeleteComment(commentID, viewerID string) (policy.Decision, error) {
	args := m.Called(commentID, viewerID)
	return args.Get(0).(policy.Decision), args.Error(1)
}

var _ usecase.CommentUseCase = (*MockCommentUseCase)(nil)

func TestCreateComment_Success(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/comments", func(c *gin.Context) {
		c.Set("user_id", "viewer-1")
		handler.CreateComment(c)
	})

	comment := &entity.Comment{ID: "comment-1", Text: "Nice one", PostID: "post-1", AuthorID: "viewer-1"}
	mockUseCase.On("CreateComment", "post-1", "viewer-1", "Nice one").Return(comment, nil)

	body := `{"text":"Nice one"}`
	rec := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-1/comments", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var response map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &response)
	assert.Equal(t, "Nice one", response["text"])

	mockUseCase.AssertExpectations(t)
}

func TestCreateComment_HiddenPostNotFound(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/comments", func(c *gin.Context) {
		c.Set("user_id", "viewer-1")
		handler.CreateComment(c)
	})

	mockUseCase.On("CreateComment", "post-1", "viewer-1", "Probe").Return(nil, usecase.ErrNotFound)

	body := `{"text":"Probe"}`
	rec := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-1/comments", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCreateComment_MissingText(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/comments", handler.CreateComment)

	rec := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-1/comments", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockUseCase.AssertNotCalled(t, "CreateComment", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateComment_NonOwnerRedirected(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/comments/:id", func(c *gin.Context) {
		c.Set("user_id", "intruder-1")
		handler.UpdateComment(c)
	})

	dec := policy.Decision{RedirectTo: policy.PostDetailPath("post-1")}
	mockUseCase.On("UpdateComment", "comment-1", "intruder-1", "Hijack").Return(nil, dec, nil)

	body := `{"text":"Hijack"}`
	rec := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/comments/comment-1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, policy.PostDetailPath("post-1"), rec.Header().Get("Location"))
	mockUseCase.AssertExpectations(t)
}

func TestDeleteComment_OwnerSuccess(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/comments/:id", func(c *gin.Context) {
		c.Set("user_id", "viewer-1")
		handler.DeleteComment(c)
	})

	mockUseCase.On("DeleteComment", "comment-1", "viewer-1").Return(policy.Decision{Allowed: true}, nil)

	rec := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/comments/comment-1", nil)

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockUseCase.AssertExpectations(t)
}
