package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pspk/internal/models"
	"pspk/internal/services"
)

type PostHandler struct {
	posts services.FeaturedPostService
}

func NewPostHandler(posts services.FeaturedPostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// ListPublished serves the public site.
func (h *PostHandler) ListPublished(c *gin.Context) {
	posts, err := h.posts.ListPublished()
	if err != nil {
		respondServiceError(c, err, "posts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "posts": posts})
}

// ListAll includes unpublished drafts; admin only.
func (h *PostHandler) ListAll(c *gin.Context) {
	posts, err := h.posts.ListAll()
	if err != nil {
		respondServiceError(c, err, "posts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "posts": posts})
}

type postRequest struct {
	Title        string `json:"title" binding:"required"`
	Excerpt      string `json:"excerpt"`
	Content      string `json:"content"`
	ImageURL     string `json:"image_url"`
	LinkURL      string `json:"link_url"`
	IsFeatured   bool   `json:"is_featured"`
	IsPublished  bool   `json:"is_published"`
	DisplayOrder int    `json:"display_order"`
}

func (r *postRequest) toModel() *models.FeaturedPost {
	return &models.FeaturedPost{
		Title:        r.Title,
		Excerpt:      r.Excerpt,
		Content:      r.Content,
		ImageURL:     r.ImageURL,
		LinkURL:      r.LinkURL,
		IsFeatured:   r.IsFeatured,
		IsPublished:  r.IsPublished,
		DisplayOrder: r.DisplayOrder,
	}
}

func (h *PostHandler) Create(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	post := req.toModel()
	if err := h.posts.Create(post); err != nil {
		respondServiceError(c, err, "posts")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "post": post})
}

func (h *PostHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	post := req.toModel()
	post.ID = id
	if err := h.posts.Update(post); err != nil {
		respondServiceError(c, err, "posts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "post": post})
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}
	if err := h.posts.Delete(id); err != nil {
		respondServiceError(c, err, "posts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
