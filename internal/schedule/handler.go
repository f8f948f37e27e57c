package schedule

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
// GET /api/cycle
// --------------------------------------------------
func (h *Handler) GetCycle(c *gin.Context) {
	days, err := h.service.GetCycle(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, days)
}

// --------------------------------------------------
// PUT /api/cycle/:day_index (protected)
// --------------------------------------------------
func (h *Handler) SetCycleDay(c *gin.Context) {
	dayIndex, err := strconv.Atoi(c.Param("day_index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "day_index must be 1..28"})
		return
	}

	var refs SlotRefs
	if err := c.BindJSON(&refs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	day, err := h.service.SetCycleDay(c.Request.Context(), dayIndex, refs)
	if err != nil {
		if errors.Is(err, ErrBadDayIndex) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "day_index must be 1..28"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, day)
}

// --------------------------------------------------
// GET /api/overrides?year=YYYY&month=M
// --------------------------------------------------
func (h *Handler) ListOverrides(c *gin.Context) {
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

	overrides, err := h.service.ListMonthOverrides(c.Request.Context(), year, month)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be 1..12"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if overrides == nil {
		overrides = []*DayOverride{}
	}
	c.JSON(http.StatusOK, overrides)
}

// --------------------------------------------------
// PUT /api/override/:date (protected)
// --------------------------------------------------
func (h *Handler) SetOverride(c *gin.Context) {
	var refs SlotRefs
	if err := c.BindJSON(&refs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	o, err := h.service.SetOverride(c.Request.Context(), c.Param("date"), refs)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, o)
}

// --------------------------------------------------
// DELETE /api/override/:date (protected)
// --------------------------------------------------
func (h *Handler) ClearOverride(c *gin.Context) {
	if err := h.service.ClearOverride(c.Request.Context(), c.Param("date")); err != nil {
		if errors.Is(err, ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
