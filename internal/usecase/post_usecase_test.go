package usecase

import (
	"errors"
	"testing"
	"time"

	"blogium/internal/entity"
	"blogium/internal/policy"
	"blogium/internal/repo/persistent"
	"blogium/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPostRepository is a mock implementation of persistent.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(post *entity.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(id string) (*entity.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) List(f persistent.PostFilter) ([]*entity.Post, error) {
	args := m.Called(f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostRepository) Update(post *entity.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ persistent.PostRepository = (*MockPostRepository)(nil)

// MockCommentRepository is a mock implementation of persistent.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *entity.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(id string) (*entity.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByPost(postID string) ([]*entity.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) CountByPost(postID string) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentRepository) Update(comment *entity.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ persistent.CommentRepository = (*MockCommentRepository)(nil)

func newTestPostUseCase(postRepo *MockPostRepository, commentRepo *MockCommentRepository) PostUseCase {
	return NewPostUseCase(postRepo, commentRepo, nil, nil, logger.New())
}

func publishedPost(id, authorID string) *entity.Post {
	return &entity.Post{
		ID:          id,
		Title:       "Post " + id,
		PubDate:     time.Now().Add(-time.Hour),
		IsPublished: true,
		AuthorID:    authorID,
	}
}

func TestListPosts_FiltersHiddenPosts(t *testing.T) {
	postRepo := new(MockPostRepository)
	commentRepo := new(MockCommentRepository)
	uc := newTestPostUseCase(postRepo, commentRepo)

	visible := publishedPost("post-1", "author-1")
	draft := publishedPost("post-2", "author-1")
	draft.IsPublished = false
	scheduled := publishedPost("post-3", "author-1")
	scheduled.PubDate = time.Now().Add(time.Hour)

	postRepo.On("List", persistent.PostFilter{}).Return([]*entity.Post{visible, draft, scheduled}, nil)

	posts, w, err := uc.ListPosts("viewer-1", 1)

	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, "post-1", posts[0].ID)
	assert.Equal(t, 1, w.TotalItems)
	postRepo.AssertExpectations(t)
}

func TestListPosts_NoAuthorBypassOnFeed(t *testing.T) {
	postRepo := new(MockPostRepository)
	commentRepo := new(MockCommentRepository)
	uc := newTestPostUseCase(postRepo, commentRepo)

	draft := publishedPost("post-1", "author-1")
	draft.IsPublished = false

	postRepo.On("List", persistent.PostFilter{}).Return([]*entity.Post{draft}, nil)

	posts, _, err := uc.ListPosts("author-1", 1)

	assert.NoError(t, err)
	assert.Empty(t, posts)
	postRepo.AssertExpectations(t)
}

func TestGetPost_VisibleToAnonymous(t *testing.T) {
	postRepo := new(MockPostRepository)
	commentRepo := new(MockCommentRepository)
	uc := newTestPostUseCase(postRepo, commentRepo)

	post := publishedPost("post-1", "author-1")
	comments := []*entity.Comment{{ID: "comment-1", PostID: "post-1"}}

	postRepo.On("GetByID", "post-1").Return(post, nil)
	commentRepo.On("ListByPost", "post-1").Return(comments, nil)

	got, gotComments, err := uc.GetPost("post-1", "")

	assert.NoError(t, err)
	assert.Equal(t, "post-1", got.ID)
	assert.Len(t, gotComments, 1)
	postRepo.AssertExpectations(t)
	commentRepo.AssertExpectations(t)
}

func TestGetPost_DraftHiddenFromOthers(t *testing.T) {
	postRepo := new(MockPostRepository)
	commentRepo := new(MockCommentRepository)
	uc := newTestPostUseCase(postRepo, commentRepo)

	draft := publishedPost("post-1", "author-1")
	draft.IsPublished = false

	postRepo.On("GetByID", "post-1").Return(draft, nil)

	_, _, err := uc.GetPost("post-1", "viewer-1")

	assert.ErrorIs(t, err, ErrNotFound)
	commentRepo.AssertNotCalled(t, "ListByPost", mock.Anything)
}

func TestGetPost_DraftVisibleToAuthor(t *testing.T) {
	postRepo := new(MockPostRepository)
	commentRepo := new(MockCommentRepository)
	uc := newTestPostUseCase(postRepo, commentRepo)

	draft := publishedPost("post-1", "author-1")
	draft.IsPublished = false

	postRepo.On("GetByID", "post-1").Return(draft, nil)
	commentRepo.On("ListByPost", "post-1").Return([]*entity.Comment{}, nil)

	got, _, err := uc.GetPost("post-1", "author-1")

	assert.NoError(t, err)
	assert.Equal(t, "post-1", got.ID)
}

func TestGetPost_UnpublishedCategoryHidesFromAuthor(t *testing.T) {
	postRepo := new(MockPostRepository)
	commentRepo := new(MockCommentRepository)
	uc := newTestPostUseCase(postRepo, commentRepo)

	categoryID := "category-1"
	post := publishedPost("post-1", "author-1")
	post.CategoryID = &categoryID
	post.Category = &entity.Category{ID: categoryID, IsPublished: false}

	postRepo.On("GetByID", "post-1").Return(post, nil)

	_, _, err := uc.GetPost("post-1", "author-1")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetPost_NotFound(t *testing.T) {
	postRepo := new(MockPostRepository)
	commentRepo := new(MockCommentRepository)
	uc := newTestPostUseCase(postRepo, commentRepo)

	postRepo.On("GetByID", "missing").Return(nil, persistent.ErrNotFound)

	_, _, err := uc.GetPost("missing", "")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreatePost_DefaultsPubDate(t *testing.T) {
	postRepo := new(MockPostRepository)
	commentRepo := new(MockCommentRepository)
	uc := newTestPostUseCase(postRepo, commentRepo)

	postRepo.On("Create", mock.AnythingOfType("*entity.Post")).Return(nil)

	post, err := uc.CreatePost("author-1", CreatePostInput{
		Title:       "Fresh",
		Text:        "Body",
		IsPublished: false,
	})

	assert.NoError(t, err)
	assert.Equal(t, "author-1", post.AuthorID)
	assert.False(t, post.PubDate.IsZero())
	postRepo.AssertExpectations(t)
}

func TestUpdatePost_OwnerAllowed(t *testing.T) {
	postRepo := new(MockPostRepository)
	commentRepo := new(MockCommentRepository)
	uc := newTestPostUseCase(postRepo, commentRepo)

	post := publishedPost("post-1", "author-1")
	postRepo.On("GetByID", "post-1").Return(post, nil)
	postRepo.On("Update", mock.AnythingOfType("*entity.Post")).Return(nil)

	title := "Renamed"
	got, dec, err := uc.UpdatePost("post-1", "author-1", UpdatePostInput{Title: &title})

	assert.NoError(t, err)
	assert.True(t, dec.Allowed)
	assert.Equal(t, "Renamed", got.Title)
	postRepo.AssertExpectations(t)
}

func TestUpdatePost_NonOwnerRedirectedToDetail(t *testing.T) {
	postRepo := new(MockPostRepository)
	commentRepo := new(MockCommentRepository)
	uc := newTestPostUseCase(postRepo, commentRepo)

	post := publishedPost("post-1", "author-1")
	postRepo.On("GetByID", "post-1").Return(post, nil)

	title := "Hijacked"
	_, dec, err := uc.UpdatePost("post-1", "intruder-1", UpdatePostInput{Title: &title})

	assert.NoError(t, err)
	assert.False(t, dec.Allowed)
	assert.Equal(t, policy.PostDetailPath("post-1"), dec.RedirectTo)
	postRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpdatePost_AnonymousRedirectedToLogin(t *testing.T) {
	postRepo := new(MockPostRepository)
	commentRepo := new(MockCommentRepository)
	uc := newTestPostUseCase(postRepo, commentRepo)

	post := publishedPost("post-1", "author-1")
	postRepo.On("GetByID", "post-1").Return(post, nil)

	title := "Anon"
	_, dec, err := uc.UpdatePost("post-1", "", UpdatePostInput{Title: &title})

	assert.NoError(t, err)
	assert.False(t, dec.Allowed)
	assert.Equal(t, policy.LoginPath, dec.RedirectTo)
}

func TestUpdatePost_HiddenPostNotFoundForNonOwner(t *testing.T) {
	postRepo := new(MockPostRepository)
	commentRepo := new(MockCommentRepository)
	uc := newTestPostUseCase(postRepo, commentRepo)

	draft := publishedPost("post-1", "author-1")
	draft.IsPublished = false
	postRepo.On("GetByID", "post-1").Return(draft, nil)

	title := "Probe"
	_, _, err := uc.UpdatePost("post-1", "intruder-1", UpdatePostInput{Title: &title})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePost_OwnerReachesHiddenCategoryPost(t *testing.T) {
	postRepo := new(MockPostRepository)
	commentRepo := new(MockCommentRepository)
	uc := newTestPostUseCase(postRepo, commentRepo)

	categoryID := "category-1"
	post := publishedPost("post-1", "author-1")
	post.CategoryID = &categoryID
	post.Category = &entity.Category{ID: categoryID, IsPublished: false}

	postRepo.On("GetByID", "post-1").Return(post, nil)
	postRepo.On("Update", mock.AnythingOfType("*entity.Post")).Return(nil)

	title := "Still mine"
	got, dec, err := uc.UpdatePost("post-1", "author-1", UpdatePostInput{Title: &title})

	assert.NoError(t, err)
	assert.True(t, dec.Allowed)
	assert.Equal(t, "Still mine", got.Title)
}

func TestDeletePost_OwnerAllowed(t *testing.T) {
	postRepo := new(MockPostRepository)
	commentRepo := new(MockCommentRepository)
	uc := newTestPostUseCase(postRepo, commentRepo)

	post := publishedPost("post-1", "author-1")
	postRepo.On("GetByID", "post-1").Return(post, nil)
	postRepo.On("Delete", "post-1").Return(nil)

	dec, err := uc.DeletePost("post-1", "author-1")

	assert.NoError(t, err)
	assert.True(t, dec.Allowed)
	postRepo.AssertExpectations(t)
}

func TestDeletePost_NonOwnerDenied(t *testing.T) {
	postRepo := new(MockPostRepository)
	commentRepo := new(MockCommentRepository)
	uc := newTestPostUseCase(postRepo, commentRepo)

	post := publishedPost("post-1", "author-1")
	postRepo.On("GetByID", "post-1").Return(post, nil)

	dec, err := uc.DeletePost("post-1", "intruder-1")

	assert.NoError(t, err)
	assert.False(t, dec.Allowed)
	postRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestDeletePost_RepoError(t *testing.T) {
	postRepo := new(MockPostRepository)
	commentRepo := new(MockCommentRepository)
	uc := newTestPostUseCase(postRepo, commentRepo)

	post := publishedPost("post-1", "author-1")
	postRepo.On("GetByID", "post-1").Return(post, nil)
	postRepo.On("Delete", "post-1").Return(errors.New("connection reset"))

	_, err := uc.DeletePost("post-1", "author-1")

	assert.Error(t, err)
}
