package handler

import (
	"net/http"

	"aqarsearch/internal/model"
	"aqarsearch/internal/service"

	"github.com/gin-gonic/gin"
)

// FilterHandler exposes the per-session filter state: draft edits, apply,
// and reset.
type FilterHandler struct {
	sessions *service.FilterSessions
}

// NewFilterHandler creates a new filter handler
func NewFilterHandler(sessions *service.FilterSessions) *FilterHandler {
	return &FilterHandler{sessions: sessions}
}

// filterStateView is the wire shape of a session's filter state.
type filterStateView struct {
	Draft       model.FilterCriteria `json:"draft"`
	Applied     model.FilterCriteria `json:"applied"`
	HasSearched bool                 `json:"has_searched"`
}

func sessionID(c *gin.Context) string {
	return c.Query("session_id")
}

// Get handles GET /api/v1/filters
func (h *FilterHandler) Get(c *gin.Context) {
	state := h.sessions.Get(sessionID(c))
	c.JSON(http.StatusOK, filterStateView{
		Draft:       state.Draft(),
		Applied:     state.Applied(),
		HasSearched: state.HasSearched(),
	})
}

// Patch handles PATCH /api/v1/filters. It merges into the draft snapshot only.
func (h *FilterHandler) Patch(c *gin.Context) {
	var patch model.FilterPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	state := h.sessions.Get(sessionID(c))
	state.SetDraftFilters(patch)
	c.JSON(http.StatusOK, filterStateView{
		Draft:       state.Draft(),
		Applied:     state.Applied(),
		HasSearched: state.HasSearched(),
	})
}

// Apply handles POST /api/v1/filters/apply
func (h *FilterHandler) Apply(c *gin.Context) {
	state := h.sessions.Get(sessionID(c))
	state.ApplyFilters()
	c.JSON(http.StatusOK, filterStateView{
		Draft:       state.Draft(),
		Applied:     state.Applied(),
		HasSearched: state.HasSearched(),
	})
}

// Reset handles POST /api/v1/filters/reset
func (h *FilterHandler) Reset(c *gin.Context) {
	state := h.sessions.Get(sessionID(c))
	state.ResetFilters()
	c.JSON(http.StatusOK, filterStateView{
		Draft:       state.Draft(),
		Applied:     state.Applied(),
		HasSearched: state.HasSearched(),
	})
}
