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

type CategoryInput struct {
	Title       string
	Description string
	Slug        string
	IsPublished bool
}

type CategoryUseCase interface {
	GetBySlug(slug, viewerID string, page int) (*entity.Category, []*entity.Post, pagination.Window, error)
	List() ([]*entity.Category, error)
	Create(in CategoryInput) (*entity.Category, error)
	Update(id string, in CategoryInput) (*entity.Category, error)
	Delete(id string) error
}

type categoryUseCase struct {
	categoryRepo persistent.CategoryRepository
	postRepo     persistent.PostRepository
	logger       *logger.Logger
}

func NewCategoryUseCase(
	categoryRepo persistent.CategoryRepository,
	postRepo persistent.PostRepository,
	logger *logger.Logger,
) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: categoryRepo,
		postRepo:     postRepo,
		logger:       logger,
	}
}

// GetBySlug resolves a category page with its visible posts. Unpublished
// categories are not found for every identity; there is no owner bypass for
// categories.
func (uc *categoryUseCase) GetBySlug(slug, viewerID string, page int) (*entity.Category, []*entity.Post, pagination.Window, error) {
	category, err := uc.categoryRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, nil, pagination.Window{}, ErrNotFound
		}
		return nil, nil, pagination.Window{}, err
	}

	if !category.IsPublished {
		return nil, nil, pagination.Window{}, ErrNotFound
	}

	posts, err := uc.postRepo.List(persistent.PostFilter{CategoryID: category.ID})
	if err != nil {
		return nil, nil, pagination.Window{}, err
	}

	visible := visibility.FilterPosts(posts, viewerID, false, time.Now())
	w := pagination.Paginate(len(visible), page, pagination.DefaultPageSize)
	return category, visible[w.Start:w.End], w, nil
}

func (uc *categoryUseCase) List() ([]*entity.Category, error) {
	return uc.categoryRepo.List(true)
}

func (uc *categoryUseCase) Create(in CategoryInput) (*entity.Category, error) {
	if _, err := uc.categoryRepo.GetBySlug(in.Slug); err == nil {
		return nil, ErrSlugTaken
	}

	category := &entity.Category{
		Title:       in.Title,
		Description: in.Description,
		Slug:        in.Slug,
		IsPublished: in.IsPublished,
	}

	if err := uc.categoryRepo.Create(category); err != nil {
		uc.logger.Error("Failed to create category: %v", err)
		return nil, err
	}
	return category, nil
}

func (uc *categoryUseCase) Update(id string, in CategoryInput) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if in.Slug != category.Slug {
		if _, err := uc.categoryRepo.GetBySlug(in.Slug); err == nil {
			return nil, ErrSlugTaken
		}
	}

	category.Title = in.Title
	category.Description = in.Description
	category.Slug = in.Slug
	category.IsPublished = in.IsPublished

	if err := uc.categoryRepo.Update(category); err != nil {
		uc.logger.Error("Failed to update category: %v", err)
		return nil, err
	}
	return category, nil
}

// Delete removes the category; referencing posts keep existing with the
// reference cleared.
func (uc *categoryUseCase) Delete(id string) error {
	err := uc.categoryRepo.Delete(id)
	if errors.Is(err, persistent.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
