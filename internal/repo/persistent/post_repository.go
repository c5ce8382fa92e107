package persistent

import (
	"errors"

	"blogium/internal/entity"
	"blogium/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

const commentCountSelect = "posts.*, (SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id AND comments.deleted_at IS NULL) AS comment_count"

// PostFilter narrows the base set of posts a listing starts from. Zero
// values mean "no restriction". Visibility gating is not the repository's
// concern; it happens in the visibility package.
type PostFilter struct {
	AuthorID   string
	CategoryID string
}

type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	List(f PostFilter) ([]*entity.Post, error)
	Update(post *entity.Post) error
	Delete(id string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	if postModel.ID == "" {
		postModel.ID = uuid.New().String()
	}
	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(id string) (*entity.Post, error) {
	var postModel model.PostModel
	err := r.db.
		Select(commentCountSelect).
		Preload("Author").
		Preload("Location").
		Preload("Category").
		Where("posts.id = ?", id).
		First(&postModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

// List fetches the base set with author, location and category resolved and
// comment counts attached in the same round trip. Ordered by publication
// time descending with insertion order breaking ties.
func (r *postRepository) List(f PostFilter) ([]*entity.Post, error) {
	query := r.db.
		Model(&model.PostModel{}).
		Select(commentCountSelect).
		Preload("Author").
		Preload("Location").
		Preload("Category").
		Order("posts.pub_date DESC, posts.created_at ASC")

	if f.AuthorID != "" {
		query = query.Where("posts.author_id = ?", f.AuthorID)
	}
	if f.CategoryID != "" {
		query = query.Where("posts.category_id = ?", f.CategoryID)
	}

	var postModels []model.PostModel
	if err := query.Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *postRepository) Update(post *entity.Post) error {
	postModel := ToPostModel(post)
	return r.db.Save(postModel).Error
}

// Delete removes the post and its comments in one transaction.
func (r *postRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.CommentModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.PostModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
