package usecase

import (
	"errors"
	"time"

	"blogium/internal/entity"
	"blogium/internal/repo/persistent"
	"blogium/internal/visibility"
	"blogium/pkg/logger"
	"blogium/pkg/pagination"
)

// UpdateProfileInput fields left nil are not changed.
type UpdateProfileInput struct {
	Username  *string
	FirstName *string
	LastName  *string
	Email     *string
}

type ProfileUseCase interface {
	GetProfile(username, viewerID string, page int) (*entity.User, []*entity.Post, pagination.Window, error)
	UpdateProfile(userID string, in UpdateProfileInput) (*entity.User, error)
}

type profileUseCase struct {
	userRepo persistent.UserRepository
	postRepo persistent.PostRepository
	logger   *logger.Logger
}

func NewProfileUseCase(
	userRepo persistent.UserRepository,
	postRepo persistent.PostRepository,
	logger *logger.Logger,
) ProfileUseCase {
	return &profileUseCase{
		userRepo: userRepo,
		postRepo: postRepo,
		logger:   logger,
	}
}

// GetProfile resolves a public author page. The hidden-post bypass is
// requested for every viewer, but since the base set is already restricted
// to the profile owner's posts it only takes effect when the viewer is that
// owner.
func (uc *profileUseCase) GetProfile(username, viewerID string, page int) (*entity.User, []*entity.Post, pagination.Window, error) {
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, nil, pagination.Window{}, ErrNotFound
		}
		return nil, nil, pagination.Window{}, err
	}
	user.Password = ""

	posts, err := uc.postRepo.List(persistent.PostFilter{AuthorID: user.ID})
	if err != nil {
		return nil, nil, pagination.Window{}, err
	}

	visible := visibility.FilterPosts(posts, viewerID, true, time.Now())
	w := pagination.Paginate(len(visible), page, pagination.DefaultPageSize)
	return user, visible[w.Start:w.End], w, nil
}

func (uc *profileUseCase) UpdateProfile(userID string, in UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if in.Username != nil && *in.Username != user.Username {
		if _, err := uc.userRepo.GetByUsername(*in.Username); err == nil {
			return nil, ErrUsernameTaken
		}
		user.Username = *in.Username
	}
	if in.Email != nil && *in.Email != user.Email {
		if _, err := uc.userRepo.GetByEmail(*in.Email); err == nil {
			return nil, ErrEmailTaken
		}
		user.Email = *in.Email
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}

	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update profile: %v", err)
		return nil, err
	}

	user.Password = ""
	return user, nil
}
