package http

import (
	"errors"
	"net/http"

	"blogium/internal/entity"
	"blogium/internal/usecase"
	"blogium/pkg/pagination"

	"github.com/gin-gonic/gin"
)

// respondError maps use case sentinel errors to HTTP statuses. Unknown
// errors are reported as internal without leaking detail.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, usecase.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
	case errors.Is(err, usecase.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Username already in use"})
	case errors.Is(err, usecase.ErrSlugTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	case errors.Is(err, usecase.ErrAccountDeactivated):
		c.JSON(http.StatusForbidden, gin.H{"error": "Account is deactivated"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func paginationResponse(w pagination.Window) gin.H {
	return gin.H{
		"page":         w.Page,
		"total_pages":  w.TotalPages,
		"total_items":  w.TotalItems,
		"has_next":     w.HasNext,
		"has_previous": w.HasPrevious,
	}
}

func formatPostResponse(post *entity.Post) gin.H {
	response := gin.H{
		"id":            post.ID,
		"title":         post.Title,
		"text":          post.Text,
		"pub_date":      post.PubDate,
		"is_published":  post.IsPublished,
		"author_id":     post.AuthorID,
		"comment_count": post.CommentCount,
		"created_at":    post.CreatedAt,
		"updated_at":    post.UpdatedAt,
	}

	if post.Author != nil {
		response["author"] = gin.H{
			"id":       post.Author.ID,
			"username": post.Author.Username,
		}
	}
	if post.Category != nil {
		response["category"] = gin.H{
			"id":    post.Category.ID,
			"title": post.Category.Title,
			"slug":  post.Category.Slug,
		}
	}
	if post.Location != nil {
		response["location"] = gin.H{
			"id":   post.Location.ID,
			"name": post.Location.Name,
		}
	}
	if post.ImageURL != "" {
		response["image_url"] = post.ImageURL
	}

	return response
}

func formatPostList(posts []*entity.Post) []gin.H {
	result := make([]gin.H, len(posts))
	for i, post := range posts {
		result[i] = formatPostResponse(post)
	}
	return result
}

func formatCommentResponse(comment *entity.Comment) gin.H {
	response := gin.H{
		"id":         comment.ID,
		"text":       comment.Text,
		"post_id":    comment.PostID,
		"author_id":  comment.AuthorID,
		"created_at": comment.CreatedAt,
		"updated_at": comment.UpdatedAt,
	}
	if comment.Author != nil {
		response["author"] = gin.H{
			"id":       comment.Author.ID,
			"username": comment.Author.Username,
		}
	}
	return response
}
