package handler

import (
	"net/http"

	"aqarsearch/internal/model"
	"aqarsearch/internal/service"

	"github.com/gin-gonic/gin"
)

// FavoritesHandler handles favorite-related HTTP requests
type FavoritesHandler struct {
	searchService *service.SearchService
}

// NewFavoritesHandler creates a new favorites handler
func NewFavoritesHandler(searchService *service.SearchService) *FavoritesHandler {
	return &FavoritesHandler{searchService: searchService}
}

// Toggle handles POST /api/v1/favorites
func (h *FavoritesHandler) Toggle(c *gin.Context) {
	var req model.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	favorited, err := h.searchService.ToggleFavorite(c.Request.Context(), req.UserID, req.PropertyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle favorite: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.FavoriteResponse{Success: true, Favorited: favorited})
}

// List handles GET /api/v1/favorites
func (h *FavoritesHandler) List(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	properties, err := h.searchService.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list favorites: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": properties, "total": len(properties)})
}
