package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"marquee/internal/models"

	"github.com/gin-gonic/gin"
)

const sessionsCatalog = "sessions"

// Sessions handlers

// CreateSession - POST /api/sessions
// Создать сеанс
func (h *Handlers) CreateSession(c *gin.Context) {
	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.services.Sessions.Create(c.Request.Context(), &req)
	if err != nil {
		slog.Error("Failed to create session", "error", err)
		respondError(c, err, "Failed to create session")
		return
	}

	h.invalidateSessionsCache(c)

	c.JSON(http.StatusCreated, session)
}

// ListSessions - GET /api/sessions
// Получить афишу сеансов. Афиша запрашивается на каждую витрину,
// а меняется только при редактировании расписания, поэтому
// отдается из кеша как сырой JSON.
func (h *Handlers) ListSessions(c *gin.Context) {
	if h.cacheClient != nil {
		rawJSON, err := h.cacheClient.GetCatalogRaw(c.Request.Context(), sessionsCatalog)
		if err == nil {
			c.Data(http.StatusOK, "application/json", rawJSON)
			return
		}
		// Cache miss or error - continue to fetch from database
	}

	sessions, err := h.services.Sessions.List(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list sessions", "error", err)
		respondError(c, err, "Failed to list sessions")
		return
	}

	if sessions == nil {
		sessions = []models.Session{}
	}

	if h.cacheClient != nil {
		if body, err := json.Marshal(sessions); err == nil {
			if err := h.cacheClient.SetCatalogRaw(c.Request.Context(), sessionsCatalog, body); err != nil {
				slog.Warn("Failed to cache sessions listing", "error", err)
			}
		}
	}

	c.JSON(http.StatusOK, sessions)
}

// GetSession - GET /api/sessions/:id
// Получить сеанс по ID
func (h *Handlers) GetSession(c *gin.Context) {
	session, err := h.services.Sessions.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get session")
		return
	}

	c.JSON(http.StatusOK, session)
}

// GetSessionSeats - GET /api/sessions/:id/seats
// Получить карту мест сеанса с занятостью
func (h *Handlers) GetSessionSeats(c *gin.Context) {
	seatMap, err := h.services.Sessions.SeatMap(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get session seats")
		return
	}

	c.JSON(http.StatusOK, seatMap)
}

// UpdateSession - PUT /api/sessions/:id
// Обновить сеанс
func (h *Handlers) UpdateSession(c *gin.Context) {
	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.services.Sessions.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		slog.Error("Failed to update session", "error", err, "session_id", c.Param("id"))
		respondError(c, err, "Failed to update session")
		return
	}

	h.invalidateSessionsCache(c)

	c.JSON(http.StatusOK, session)
}

// DeleteSession - DELETE /api/sessions/:id
// Удалить сеанс
func (h *Handlers) DeleteSession(c *gin.Context) {
	if err := h.services.Sessions.Delete(c.Request.Context(), c.Param("id")); err != nil {
		slog.Error("Failed to delete session", "error", err, "session_id", c.Param("id"))
		respondError(c, err, "Failed to delete session")
		return
	}

	h.invalidateSessionsCache(c)

	c.Status(http.StatusNoContent)
}

func (h *Handlers) invalidateSessionsCache(c *gin.Context) {
	if h.cacheClient == nil {
		return
	}
	if err := h.cacheClient.InvalidateCatalog(c.Request.Context(), sessionsCatalog); err != nil {
		slog.Warn("Failed to invalidate sessions cache", "error", err)
	}
}
