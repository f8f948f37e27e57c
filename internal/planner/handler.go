package planner

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

// --------------------------------------------------
// GET /api/day/:date
// --------------------------------------------------
func (h *Handler) ResolveDay(c *gin.Context) {
	meals, err := h.service.ResolveDay(c.Request.Context(), c.Param("date"))
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, meals)
}

// --------------------------------------------------
// GET /api/calendar?year=YYYY&month=M
// --------------------------------------------------
func (h *Handler) Calendar(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year is required"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month is required"})
		return
	}

	cal, err := h.service.Calendar(c.Request.Context(), year, month)
	if err != nil {
		if errors.Is(err, ErrInvalidMonth) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be 1..12"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cal)
}

// --------------------------------------------------
// GET /api/shopping?start=YYYY-MM-DD&end=YYYY-MM-DD
// --------------------------------------------------
func (h *Handler) Shopping(c *gin.Context) {
	list, err := h.service.Shopping(c.Request.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "start/end must be YYYY-MM-DD"})
		case errors.Is(err, ErrInvalidRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": "end must be >= start"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, list)
}
