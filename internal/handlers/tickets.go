package handlers

import (
	"log/slog"
	"net/http"

	"marquee/internal/models"

	"github.com/gin-gonic/gin"
)

// Tickets handlers

// SellTicket - POST /api/tickets
// Продать билет, с валидацией места и расчетом стоимости
func (h *Handlers) SellTicket(c *gin.Context) {
	var req models.SellTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Tickets.Sell(c.Request.Context(), &req)
	if err != nil {
		slog.Error("Failed to sell ticket", "error", err, "session_id", req.SessionID, "seat", req.SeatLabel)
		respondError(c, err, "Failed to sell ticket")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListTickets - GET /api/tickets
// Получить список билетов, опционально по сеансу
func (h *Handlers) ListTickets(c *gin.Context) {
	sessionID := c.Query("session_id")

	tickets, err := h.services.Tickets.List(c.Request.Context(), sessionID)
	if err != nil {
		slog.Error("Failed to list tickets", "error", err)
		respondError(c, err, "Failed to list tickets")
		return
	}

	if tickets == nil {
		tickets = []models.Ticket{}
	}
	c.JSON(http.StatusOK, tickets)
}

// GetTicket - GET /api/tickets/:id
// Получить билет по ID
func (h *Handlers) GetTicket(c *gin.Context) {
	ticket, err := h.services.Tickets.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get ticket")
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// UpdateTicket - PUT /api/tickets/:id
// Обновить билет, повторяя все проверки продажи
func (h *Handlers) UpdateTicket(c *gin.Context) {
	var req models.SellTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Tickets.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		slog.Error("Failed to update ticket", "error", err, "ticket_id", c.Param("id"))
		respondError(c, err, "Failed to update ticket")
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteTicket - DELETE /api/tickets/:id
// Отменить билет
func (h *Handlers) DeleteTicket(c *gin.Context) {
	if err := h.services.Tickets.Delete(c.Request.Context(), c.Param("id")); err != nil {
		slog.Error("Failed to delete ticket", "error", err, "ticket_id", c.Param("id"))
		respondError(c, err, "Failed to delete ticket")
		return
	}

	c.Status(http.StatusNoContent)
}
