package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"marquee/internal/models"

	"github.com/gin-gonic/gin"
)

const snacksCatalog = "snacks"

// Snacks handlers

// CreateSnack - POST /api/snacks
// Создать ланч или комбо
func (h *Handlers) CreateSnack(c *gin.Context) {
	var req models.CreateSnackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snack, err := h.services.Snacks.Create(c.Request.Context(), &req)
	if err != nil {
		slog.Error("Failed to create snack", "error", err)
		respondError(c, err, "Failed to create snack")
		return
	}

	h.invalidateSnacksCache(c)

	c.JSON(http.StatusCreated, snack)
}

// ListSnacks - GET /api/snacks
// Получить каталог ланчей. Каталог маленький и меняется редко,
// поэтому отдается из кеша как сырой JSON.
func (h *Handlers) ListSnacks(c *gin.Context) {
	if h.cacheClient != nil {
		rawJSON, err := h.cacheClient.GetCatalogRaw(c.Request.Context(), snacksCatalog)
		if err == nil {
			c.Data(http.StatusOK, "application/json", rawJSON)
			return
		}
		// Cache miss or error - continue to fetch from database
	}

	snacks, err := h.services.Snacks.List(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list snacks", "error", err)
		respondError(c, err, "Failed to list snacks")
		return
	}

	if snacks == nil {
		snacks = []models.Snack{}
	}

	if h.cacheClient != nil {
		if body, err := json.Marshal(snacks); err == nil {
			if err := h.cacheClient.SetCatalogRaw(c.Request.Context(), snacksCatalog, body); err != nil {
				slog.Warn("Failed to cache snacks catalog", "error", err)
			}
		}
	}

	c.JSON(http.StatusOK, snacks)
}

// GetSnack - GET /api/snacks/:id
// Получить ланч по ID
func (h *Handlers) GetSnack(c *gin.Context) {
	snack, err := h.services.Snacks.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get snack")
		return
	}

	c.JSON(http.StatusOK, snack)
}

// UpdateSnack - PUT /api/snacks/:id
// Обновить ланч
func (h *Handlers) UpdateSnack(c *gin.Context) {
	var req models.CreateSnackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snack, err := h.services.Snacks.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		slog.Error("Failed to update snack", "error", err, "snack_id", c.Param("id"))
		respondError(c, err, "Failed to update snack")
		return
	}

	h.invalidateSnacksCache(c)

	c.JSON(http.StatusOK, snack)
}

// DeleteSnack - DELETE /api/snacks/:id
// Удалить ланч
func (h *Handlers) DeleteSnack(c *gin.Context) {
	if err := h.services.Snacks.Delete(c.Request.Context(), c.Param("id")); err != nil {
		slog.Error("Failed to delete snack", "error", err, "snack_id", c.Param("id"))
		respondError(c, err, "Failed to delete snack")
		return
	}

	h.invalidateSnacksCache(c)

	c.Status(http.StatusNoContent)
}

func (h *Handlers) invalidateSnacksCache(c *gin.Context) {
	if h.cacheClient == nil {
		return
	}
	if err := h.cacheClient.InvalidateCatalog(c.Request.Context(), snacksCatalog); err != nil {
		slog.Warn("Failed to invalidate snacks cache", "error", err)
	}
}
