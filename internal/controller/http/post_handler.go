package http

import (
	"net/http"
	"strconv"
	"time"

	"blogium/internal/usecase"
	"blogium/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

type CreatePostRequest struct {
	Title       string  `form:"title" binding:"required,max=256"`
	Text        string  `form:"text" binding:"required"`
	PubDate     string  `form:"pub_date"`
	IsPublished *bool   `form:"is_published"`
	CategoryID  *string `form:"category_id"`
	LocationID  *string `form:"location_id"`
}

type UpdatePostRequest struct {
	Title       *string `form:"title" binding:"omitempty,max=256"`
	Text        *string `form:"text"`
	PubDate     *string `form:"pub_date"`
	IsPublished *bool   `form:"is_published"`
	CategoryID  *string `form:"category_id"`
	LocationID  *string `form:"location_id"`
}

// ListPosts godoc
// @Summary      List posts
// @Description  Public feed of published posts, newest first, ten per page
// @Tags         posts
// @Produce      json
// @Param        page query int false "Page number"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	viewerID := c.GetString("user_id")

	posts, w, err := h.postUseCase.ListPosts(viewerID, pageParam(c))
	if err != nil {
		h.logger.Error("Failed to list posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":      formatPostList(posts),
		"pagination": paginationResponse(w),
	})
}

// GetPost godoc
// @Summary      Get post by ID
// @Description  Post details with its comments, oldest comment first
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	postID := c.Param("id")
	viewerID := c.GetString("user_id")

	post, comments, err := h.postUseCase.GetPost(postID, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	commentList := make([]gin.H, len(comments))
	for i, comment := range comments {
		commentList[i] = formatCommentResponse(comment)
	}

	response := formatPostResponse(post)
	response["comments"] = commentList

	c.JSON(http.StatusOK, response)
}

// CreatePost godoc
// @Summary      Create a post
// @Description  Create a post, optionally with an image. Omitted pub_date defaults to now; a future pub_date schedules the post.
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Post title"
// @Param        text formData string true "Post body"
// @Param        pub_date formData string false "Publication time (RFC 3339)"
// @Param        is_published formData bool false "Published flag"
// @Param        category_id formData string false "Category ID"
// @Param        location_id formData string false "Location ID"
// @Param        image formData file false "Post image (jpg/jpeg/png)"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	viewerID := c.GetString("user_id")

	var req CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := usecase.CreatePostInput{
		Title:       req.Title,
		Text:        req.Text,
		IsPublished: true,
		CategoryID:  req.CategoryID,
		LocationID:  req.LocationID,
	}
	if req.IsPublished != nil {
		in.IsPublished = *req.IsPublished
	}
	if req.PubDate != "" {
		pubDate, err := time.Parse(time.RFC3339, req.PubDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "pub_date must be RFC 3339"})
			return
		}
		in.PubDate = pubDate
	}
	if file, err := c.FormFile("image"); err == nil {
		in.Image = file
	}

	post, err := h.postUseCase.CreatePost(viewerID, in)
	if err != nil {
		h.logger.Error("Failed to create post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, formatPostResponse(post))
}

// UpdatePost godoc
// @Summary      Update a post
// @Description  Edit a post. Only the author may edit; other users are redirected to the post's detail page.
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	postID := c.Param("id")
	viewerID := c.GetString("user_id")

	var req UpdatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := usecase.UpdatePostInput{
		Title:       req.Title,
		Text:        req.Text,
		IsPublished: req.IsPublished,
		CategoryID:  req.CategoryID,
		LocationID:  req.LocationID,
	}
	if req.PubDate != nil {
		pubDate, err := time.Parse(time.RFC3339, *req.PubDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "pub_date must be RFC 3339"})
			return
		}
		in.PubDate = &pubDate
	}
	if file, err := c.FormFile("image"); err == nil {
		in.Image = file
	}

	post, dec, err := h.postUseCase.UpdatePost(postID, viewerID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	if !dec.Allowed {
		c.Redirect(http.StatusSeeOther, dec.RedirectTo)
		return
	}

	c.JSON(http.StatusOK, formatPostResponse(post))
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Delete a post and its comments. Only the author may delete; other users are redirected to the post's detail page.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID := c.Param("id")
	viewerID := c.GetString("user_id")

	dec, err := h.postUseCase.DeletePost(postID, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !dec.Allowed {
		c.Redirect(http.StatusSeeOther, dec.RedirectTo)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}
