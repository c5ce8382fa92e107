package usecase

import (
	"errors"
	"time"

	"blogium/internal/entity"
	"blogium/internal/policy"
	"blogium/internal/repo/persistent"
	"blogium/internal/visibility"
	"blogium/pkg/logger"
	"blogium/pkg/queue"
)

type CommentUseCase interface {
	CreateComment(postID, viewerID, text string) (*entity.Comment, error)
	UpdateComment(commentID, viewerID, text string) (*entity.Comment, policy.Decision, error)
	DeleteComment(commentID, viewerID string) (policy.Decision, error)
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	postRepo    persistent.PostRepository
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	postRepo persistent.PostRepository,
	queueClient *queue.Client,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		queueClient: queueClient,
		logger:      logger,
	}
}

// CreateComment attaches a comment to a post the viewer can see. Commenting
// on a hidden post reports not found, same as viewing it.
func (uc *commentUseCase) CreateComment(postID, viewerID, text string) (*entity.Comment, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !visibility.VisibleTo(post, viewerID, time.Now()) {
		return nil, ErrNotFound
	}

	comment := &entity.Comment{
		Text:     text,
		PostID:   post.ID,
		AuthorID: viewerID,
	}

	if err := uc.commentRepo.Create(comment); err != nil {
		uc.logger.Error("Failed to create comment: %v", err)
		return nil, err
	}

	if uc.queueClient != nil {
		go uc.publishCommentEvent(comment)
	}

	return comment, nil
}

func (uc *commentUseCase) UpdateComment(commentID, viewerID, text string) (*entity.Comment, policy.Decision, error) {
	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, policy.Decision{}, ErrNotFound
		}
		return nil, policy.Decision{}, err
	}

	dec := policy.AuthorizeMutation(comment.AuthorID, comment.PostID, viewerID)
	if !dec.Allowed {
		return nil, dec, nil
	}

	comment.Text = text
	if err := uc.commentRepo.Update(comment); err != nil {
		uc.logger.Error("Failed to update comment: %v", err)
		return nil, policy.Decision{}, err
	}

	return comment, dec, nil
}

func (uc *commentUseCase) DeleteComment(commentID, viewerID string) (policy.Decision, error) {
	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return policy.Decision{}, ErrNotFound
		}
		return policy.Decision{}, err
	}

	dec := policy.AuthorizeMutation(comment.AuthorID, comment.PostID, viewerID)
	if !dec.Allowed {
		return dec, nil
	}

	if err := uc.commentRepo.Delete(comment.ID); err != nil {
		uc.logger.Error("Failed to delete comment: %v", err)
		return policy.Decision{}, err
	}

	return dec, nil
}

func (uc *commentUseCase) publishCommentEvent(comment *entity.Comment) {
	event := map[string]interface{}{
		"type":       "comment_created",
		"comment_id": comment.ID,
		"post_id":    comment.PostID,
		"author_id":  comment.AuthorID,
	}
	if err := uc.queueClient.PublishEvent(queue.RoutingKeyCommentCreated, event); err != nil {
		uc.logger.Error("Failed to publish comment event: %v (comment_id=%s)", err, comment.ID)
	}
}
