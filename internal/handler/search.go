package handler

import (
	"net/http"
	"strconv"

	"aqarsearch/internal/model"
	"aqarsearch/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles search-related HTTP requests
type SearchHandler struct {
	searchService *service.SearchService
	sessions      *service.FilterSessions
	defaultLimit  int
	maxLimit      int
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService *service.SearchService, sessions *service.FilterSessions, defaultLimit, maxLimit int) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		sessions:      sessions,
		defaultLimit:  defaultLimit,
		maxLimit:      maxLimit,
	}
}

// Search handles POST /api/v1/search
func (h *SearchHandler) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = h.defaultLimit
	}
	if limit > h.maxLimit {
		limit = h.maxLimit
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	state := h.sessions.Get(req.SessionID)
	if req.Filters != nil {
		state.SetDraftFilters(*req.Filters)
		state.ApplyFilters()
	}
	state.SetQuery(req.Query)

	response, err := h.searchService.Search(c.Request.Context(), state, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// SemanticSearch handles POST /api/v1/search/semantic
func (h *SearchHandler) SemanticSearch(c *gin.Context) {
	var req model.SemanticSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = h.defaultLimit
	}
	if limit > h.maxLimit {
		limit = h.maxLimit
	}

	state := h.sessions.Get(req.SessionID)
	results, err := h.searchService.SemanticSearch(c.Request.Context(), req.Embedding, state, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Semantic search failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results, "total": len(results)})
}

// GetProperty handles GET /api/v1/properties/:id
func (h *SearchHandler) GetProperty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property ID"})
		return
	}

	property, err := h.searchService.GetProperty(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get property: " + err.Error()})
		return
	}
	if property == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	c.JSON(http.StatusOK, property)
}
