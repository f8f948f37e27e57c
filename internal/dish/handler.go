package dish

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func dishID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// --------------------------------------------------
// GET /api/dishes
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []*Dish{}
	}
	c.JSON(http.StatusOK, items)
}

// --------------------------------------------------
// POST /api/dishes (protected)
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Notes string `json:"notes"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	d, err := h.service.Create(c.Request.Context(), req.Name, req.Notes)
	if err != nil {
		if errors.Is(err, ErrNameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "dish already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, d)
}

// --------------------------------------------------
// PUT /api/dishes/:id (protected)
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	id, ok := dishID(c)
	if !ok {
		return
	}

	var req struct {
		Name  string `json:"name" binding:"required"`
		Notes string `json:"notes"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	d, err := h.service.Update(c.Request.Context(), id, req.Name, req.Notes)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, d)
}

// --------------------------------------------------
// DELETE /api/dishes/:id (protected)
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	id, ok := dishID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --------------------------------------------------
// GET /api/dishes/:id/ingredients
// --------------------------------------------------
func (h *Handler) GetComposition(c *gin.Context) {
	id, ok := dishID(c)
	if !ok {
		return
	}

	lines, err := h.service.GetComposition(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if lines == nil {
		lines = []*Line{}
	}
	c.JSON(http.StatusOK, lines)
}

// --------------------------------------------------
// PUT /api/dishes/:id/ingredients (protected)
// --------------------------------------------------
func (h *Handler) SetComposition(c *gin.Context) {
	id, ok := dishID(c)
	if !ok {
		return
	}

	var req struct {
		Items []LineInput `json:"items"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	lines, err := h.service.SetComposition(c.Request.Context(), id, req.Items)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
		case errors.Is(err, ErrUnknownIngredient):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, lines)
}

// --------------------------------------------------
// POST /api/dishes/:id/photo (protected, multipart)
// --------------------------------------------------
func (h *Handler) UploadPhoto(c *gin.Context) {
	id, ok := dishID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo is required"})
		return
	}
	defer file.Close()

	url, err := h.service.UploadPhoto(
		c.Request.Context(),
		id,
		file,
		header.Filename,
		header.Header.Get("Content-Type"),
	)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}
