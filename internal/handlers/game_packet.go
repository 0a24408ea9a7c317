package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/game-journal-api/internal/dto"
	apierrors "github.com/yukikurage/game-journal-api/internal/errors"
	"github.com/yukikurage/game-journal-api/internal/middleware"
	"github.com/yukikurage/game-journal-api/internal/services"
	"github.com/yukikurage/game-journal-api/internal/utils"
)

// GamePacketHandler serves the game list and catalog lookups.
type GamePacketHandler struct {
	gamePacketService *services.GamePacketService
	catalogService    *services.CatalogService
}

// NewGamePacketHandler creates a new GamePacketHandler.
func NewGamePacketHandler(gamePacketService *services.GamePacketService, catalogService *services.CatalogService) *GamePacketHandler {
	return &GamePacketHandler{
		gamePacketService: gamePacketService,
		catalogService:    catalogService,
	}
}

// List returns the current user's games, newest first
func (h *GamePacketHandler) List(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	packets, err := h.gamePacketService.List(userID)
	if err != nil {
		_ = c.Error(err)
		apierrors.InternalError(c, "Failed to fetch games")
		return
	}

	c.JSON(http.StatusOK, dto.ToGamePacketDTOs(packets))
}

// Create adds a game to the current user's list
func (h *GamePacketHandler) Create(c *gin.Context) {
	type CreateGamePacketRequest struct {
		Title      string `json:"title"`
		SteamAppID *int64 `json:"steamAppId"`
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req CreateGamePacketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	packet, err := h.gamePacketService.Create(services.CreateGamePacketInput{
		UserID:     userID,
		Title:      req.Title,
		SteamAppID: req.SteamAppID,
	})
	if err != nil {
		if errors.Is(err, services.ErrTitleRequired) {
			apierrors.BadRequest(c, "Title is required")
			return
		}
		_ = c.Error(err)
		apierrors.InternalError(c, "Failed to create game")
		return
	}

	c.JSON(http.StatusCreated, dto.ToGamePacketDTO(*packet))
}

// Delete removes a game and its notes. Unknown or foreign ids succeed without effect.
func (h *GamePacketHandler) Delete(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid game id")
		return
	}

	if err := h.gamePacketService.Delete(userID, id); err != nil {
		_ = c.Error(err)
		apierrors.InternalError(c, "Failed to delete game")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Game deleted"})
}

// Recommended searches the catalog for q, or builds a top list without the
// user's own games when q is blank
func (h *GamePacketHandler) Recommended(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	limit := utils.GetLimitParam(c)

	if term := strings.TrimSpace(c.Query("q")); term != "" {
		c.JSON(http.StatusOK, h.catalogService.SearchByTerm(c.Request.Context(), term, limit))
		return
	}

	owned, err := h.gamePacketService.OwnedSteamAppIDs(userID)
	if err != nil {
		_ = c.Error(err)
		apierrors.InternalError(c, "Failed to fetch recommendations")
		return
	}

	c.JSON(http.StatusOK, h.catalogService.TopRecommendations(c.Request.Context(), limit, owned))
}

// CatalogGame returns the store details of one app
func (h *GamePacketHandler) CatalogGame(c *gin.Context) {
	appID, err := strconv.ParseInt(c.Param("appId"), 10, 64)
	if err != nil || appID <= 0 {
		apierrors.BadRequest(c, "Invalid app id")
		return
	}

	details, err := h.catalogService.AppDetails(c.Request.Context(), appID)
	if err != nil {
		if errors.Is(err, services.ErrCatalogGameNotFound) {
			apierrors.NotFound(c, "Game not found")
			return
		}
		_ = c.Error(err)
		apierrors.InternalError(c, "Failed to fetch game details")
		return
	}

	c.JSON(http.StatusOK, details)
}
