package http

import (
	"net/http"

	"blogium/internal/usecase"
	"blogium/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		logger:         logger,
	}
}

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// CreateComment godoc
// @Summary      Comment on a post
// @Description  Add a comment to a visible post. Hidden posts report not found.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body CommentRequest true "Comment text"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	postID := c.Param("id")
	viewerID := c.GetString("user_id")

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentUseCase.CreateComment(postID, viewerID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, formatCommentResponse(comment))
}

// UpdateComment godoc
// @Summary      Edit a comment
// @Description  Edit a comment. Only the comment's author may edit; other users are redirected to the owning post.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Param        request body CommentRequest true "Comment text"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	commentID := c.Param("id")
	viewerID := c.GetString("user_id")

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, dec, err := h.commentUseCase.UpdateComment(commentID, viewerID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	if !dec.Allowed {
		c.Redirect(http.StatusSeeOther, dec.RedirectTo)
		return
	}

	c.JSON(http.StatusOK, formatCommentResponse(comment))
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Delete a comment. Only the comment's author may delete; other users are redirected to the owning post.
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID := c.Param("id")
	viewerID := c.GetString("user_id")

	dec, err := h.commentUseCase.DeleteComment(commentID, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !dec.Allowed {
		c.Redirect(http.StatusSeeOther, dec.RedirectTo)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}
