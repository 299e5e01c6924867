package handlers

import (
	"log/slog"
	"net/http"

	"marquee/internal/models"

	"github.com/gin-gonic/gin"
)

// Rooms handlers

// CreateRoom - POST /api/rooms
// Создать зал
func (h *Handlers) CreateRoom(c *gin.Context) {
	var req models.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.services.Rooms.Create(c.Request.Context(), &req)
	if err != nil {
		slog.Error("Failed to create room", "error", err)
		respondError(c, err, "Failed to create room")
		return
	}

	c.JSON(http.StatusCreated, room)
}

// ListRooms - GET /api/rooms
// Получить список залов
func (h *Handlers) ListRooms(c *gin.Context) {
	rooms, err := h.services.Rooms.List(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list rooms", "error", err)
		respondError(c, err, "Failed to list rooms")
		return
	}

	if rooms == nil {
		rooms = []models.Room{}
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoom - GET /api/rooms/:id
// Получить зал по ID
func (h *Handlers) GetRoom(c *gin.Context) {
	room, err := h.services.Rooms.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get room")
		return
	}

	c.JSON(http.StatusOK, room)
}

// GetRoomSeats - GET /api/rooms/:id/seats
// Получить производную карту мест зала
func (h *Handlers) GetRoomSeats(c *gin.Context) {
	seats, err := h.services.Rooms.SeatLayout(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get room seats")
		return
	}

	c.JSON(http.StatusOK, gin.H{"seats": seats})
}

// UpdateRoom - PUT /api/rooms/:id
// Обновить зал
func (h *Handlers) UpdateRoom(c *gin.Context) {
	var req models.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.services.Rooms.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		slog.Error("Failed to update room", "error", err, "room_id", c.Param("id"))
		respondError(c, err, "Failed to update room")
		return
	}

	c.JSON(http.StatusOK, room)
}

// DeleteRoom - DELETE /api/rooms/:id
// Удалить зал
func (h *Handlers) DeleteRoom(c *gin.Context) {
	if err := h.services.Rooms.Delete(c.Request.Context(), c.Param("id")); err != nil {
		slog.Error("Failed to delete room", "error", err, "room_id", c.Param("id"))
		respondError(c, err, "Failed to delete room")
		return
	}

	c.Status(http.StatusNoContent)
}
