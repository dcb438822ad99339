package handler

import (
	"net/http"

	"aqarsearch/internal/model"
	"aqarsearch/internal/service"

	"github.com/gin-gonic/gin"
)

// AssistantHandler handles conversational search requests
type AssistantHandler struct {
	assistant     *service.AssistantClient
	searchService *service.SearchService
	sessions      *service.FilterSessions
	defaultLimit  int
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(assistant *service.AssistantClient, searchService *service.SearchService, sessions *service.FilterSessions, defaultLimit int) *AssistantHandler {
	return &AssistantHandler{
		assistant:     assistant,
		searchService: searchService,
		sessions:      sessions,
		defaultLimit:  defaultLimit,
	}
}

// Search handles POST /api/v1/assistant/search. The assistant backend
// extracts structured criteria from the utterance; those criteria sync into
// the session's filter state as an implicit apply, then the normal search
// pipeline runs.
func (h *AssistantHandler) Search(c *gin.Context) {
	var req model.AssistantSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	criteria, err := h.assistant.ExtractCriteria(c.Request.Context(), req.Utterance, req.Language)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Assistant failed: " + err.Error()})
		return
	}

	state := h.sessions.Get(req.SessionID)
	state.SyncFromExternalCriteria(*criteria)

	response, err := h.searchService.Search(c.Request.Context(), state, h.defaultLimit, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.AssistantSearchResponse{
		Criteria: criteria,
		Search:   response,
	})
}
