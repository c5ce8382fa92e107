package usecase

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"blogium/internal/entity"
	"blogium/internal/policy"
	"blogium/internal/repo/persistent"
	"blogium/internal/visibility"
	"blogium/pkg/logger"
	"blogium/pkg/pagination"
	"blogium/pkg/queue"
	"blogium/pkg/s3"

	"github.com/google/uuid"
)

type CreatePostInput struct {
	Title       string
	Text        string
	PubDate     time.Time
	IsPublished bool
	CategoryID  *string
	LocationID  *string
	Image       *multipart.FileHeader
}

// UpdatePostInput fields left nil are not changed.
type UpdatePostInput struct {
	Title       *string
	Text        *string
	PubDate     *time.Time
	IsPublished *bool
	CategoryID  *string
	LocationID  *string
	Image       *multipart.FileHeader
}

type PostUseCase interface {
	ListPosts(viewerID string, page int) ([]*entity.Post, pagination.Window, error)
	GetPost(postID, viewerID string) (*entity.Post, []*entity.Comment, error)
	CreatePost(viewerID string, in CreatePostInput) (*entity.Post, error)
	UpdatePost(postID, viewerID string, in UpdatePostInput) (*entity.Post, policy.Decision, error)
	DeletePost(postID, viewerID string) (policy.Decision, error)
}

type postUseCase struct {
	postRepo    persistent.PostRepository
	commentRepo persistent.CommentRepository
	s3Client    *s3.Client
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	commentRepo persistent.CommentRepository,
	s3Client *s3.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		s3Client:    s3Client,
		queueClient: queueClient,
		logger:      logger,
	}
}

// ListPosts is the public feed: only publicly visible posts, newest first,
// fixed page size of ten.
func (uc *postUseCase) ListPosts(viewerID string, page int) ([]*entity.Post, pagination.Window, error) {
	posts, err := uc.postRepo.List(persistent.PostFilter{})
	if err != nil {
		return nil, pagination.Window{}, err
	}

	visible := visibility.FilterPosts(posts, viewerID, false, time.Now())
	w := pagination.Paginate(len(visible), page, pagination.DefaultPageSize)
	return visible[w.Start:w.End], w, nil
}

// GetPost returns the post with its comments oldest first. Posts the viewer
// may not see are reported as not found, never as forbidden.
func (uc *postUseCase) GetPost(postID, viewerID string) (*entity.Post, []*entity.Comment, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	if !visibility.VisibleTo(post, viewerID, time.Now()) {
		return nil, nil, ErrNotFound
	}

	comments, err := uc.commentRepo.ListByPost(post.ID)
	if err != nil {
		return nil, nil, err
	}

	return post, comments, nil
}

func (uc *postUseCase) CreatePost(viewerID string, in CreatePostInput) (*entity.Post, error) {
	post := &entity.Post{
		Title:       in.Title,
		Text:        in.Text,
		PubDate:     in.PubDate,
		IsPublished: in.IsPublished,
		AuthorID:    viewerID,
		CategoryID:  in.CategoryID,
		LocationID:  in.LocationID,
	}
	if post.PubDate.IsZero() {
		post.PubDate = time.Now()
	}

	if in.Image != nil {
		imageURL, err := uc.uploadImage(viewerID, in.Image)
		if err != nil {
			return nil, err
		}
		post.ImageURL = imageURL
	}

	if err := uc.postRepo.Create(post); err != nil {
		uc.logger.Error("Failed to create post: %v", err)
		return nil, err
	}

	if uc.queueClient != nil && post.IsPublished {
		go uc.publishPostEvent(post)
	}

	return post, nil
}

func (uc *postUseCase) UpdatePost(postID, viewerID string, in UpdatePostInput) (*entity.Post, policy.Decision, error) {
	post, err := uc.getForMutation(postID, viewerID)
	if err != nil {
		return nil, policy.Decision{}, err
	}

	dec := policy.AuthorizeMutation(post.AuthorID, post.ID, viewerID)
	if !dec.Allowed {
		return nil, dec, nil
	}

	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Text != nil {
		post.Text = *in.Text
	}
	if in.PubDate != nil {
		post.PubDate = *in.PubDate
	}
	if in.IsPublished != nil {
		post.IsPublished = *in.IsPublished
	}
	if in.CategoryID != nil {
		post.CategoryID = in.CategoryID
	}
	if in.LocationID != nil {
		post.LocationID = in.LocationID
	}
	if in.Image != nil {
		imageURL, err := uc.uploadImage(viewerID, in.Image)
		if err != nil {
			return nil, policy.Decision{}, err
		}
		post.ImageURL = imageURL
	}

	if err := uc.postRepo.Update(post); err != nil {
		uc.logger.Error("Failed to update post: %v", err)
		return nil, policy.Decision{}, err
	}

	return post, dec, nil
}

// DeletePost removes the post and, through the repository transaction, its
// comments.
func (uc *postUseCase) DeletePost(postID, viewerID string) (policy.Decision, error) {
	post, err := uc.getForMutation(postID, viewerID)
	if err != nil {
		return policy.Decision{}, err
	}

	dec := policy.AuthorizeMutation(post.AuthorID, post.ID, viewerID)
	if !dec.Allowed {
		return dec, nil
	}

	if err := uc.postRepo.Delete(post.ID); err != nil {
		uc.logger.Error("Failed to delete post: %v", err)
		return policy.Decision{}, err
	}

	return dec, nil
}

// getForMutation resolves the target of an edit or delete. Non-owners only
// learn about posts they could see anyway; the owner always reaches the
// authorization step, even when an unpublished category hides the post from
// listings.
func (uc *postUseCase) getForMutation(postID, viewerID string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if post.AuthorID != viewerID && !visibility.VisibleTo(post, viewerID, time.Now()) {
		return nil, ErrNotFound
	}

	return post, nil
}

func (uc *postUseCase) uploadImage(userID string, file *multipart.FileHeader) (string, error) {
	if uc.s3Client == nil {
		return "", fmt.Errorf("image uploads are not configured")
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	key := fmt.Sprintf("post_image/%s/%s%s", userID, uuid.New().String(), filepath.Ext(file.Filename))
	imageURL, err := uc.s3Client.UploadFile(key, src, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return imageURL, nil
}

func (uc *postUseCase) publishPostEvent(post *entity.Post) {
	event := map[string]interface{}{
		"type":      "post_published",
		"post_id":   post.ID,
		"author_id": post.AuthorID,
		"pub_date":  post.PubDate,
	}
	if err := uc.queueClient.PublishEvent(queue.RoutingKeyPostPublished, event); err != nil {
		uc.logger.Error("Failed to publish post event: %v (post_id=%s)", err, post.ID)
	}
}
