package ingredient

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

type ingredientRequest struct {
	Name          string   `json:"name" binding:"required"`
	Unit          string   `json:"unit"`
	UnitPrice     *float64 `json:"unit_price"`
	PriceCurrency string   `json:"price_currency"`
}

// --------------------------------------------------
// GET /api/ingredients
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []*Ingredient{}
	}
	c.JSON(http.StatusOK, items)
}

// --------------------------------------------------
// POST /api/ingredients (protected)
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req ingredientRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ing, err := h.service.Create(c.Request.Context(), req.Name, req.Unit, req.UnitPrice, req.PriceCurrency)
	if err != nil {
		if errors.Is(err, ErrNameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ingredient already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ing)
}

// --------------------------------------------------
// PUT /api/ingredients/:id (protected)
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req ingredientRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ing, err := h.service.Update(c.Request.Context(), id, req.Name, req.Unit, req.UnitPrice, req.PriceCurrency)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ing)
}

// --------------------------------------------------
// DELETE /api/ingredients/:id (protected)
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		case errors.Is(err, ErrReferenced):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "cannot delete ingredient because it is still referenced, remove it from dishes first",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
