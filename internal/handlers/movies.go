package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"marquee/internal/models"

	"github.com/gin-gonic/gin"
)

// Movies handlers

// CreateMovie - POST /api/movies
// Создать фильм
func (h *Handlers) CreateMovie(c *gin.Context) {
	var req models.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movie, err := h.services.Movies.Create(c.Request.Context(), &req)
	if err != nil {
		slog.Error("Failed to create movie", "error", err)
		respondError(c, err, "Failed to create movie")
		return
	}

	c.JSON(http.StatusCreated, movie)
}

// ListMovies - GET /api/movies
// Получить список фильмов
func (h *Handlers) ListMovies(c *gin.Context) {
	query := c.Query("query")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	if page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be >= 1"})
		return
	}
	if pageSize < 1 || pageSize > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pageSize must be between 1 and 100"})
		return
	}

	movies, err := h.services.Movies.List(c.Request.Context(), query, page, pageSize)
	if err != nil {
		slog.Error("Failed to list movies", "error", err)
		respondError(c, err, "Failed to list movies")
		return
	}

	if movies == nil {
		movies = []models.Movie{}
	}
	c.JSON(http.StatusOK, movies)
}

// GetMovie - GET /api/movies/:id
// Получить фильм по ID
func (h *Handlers) GetMovie(c *gin.Context) {
	movie, err := h.services.Movies.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get movie")
		return
	}

	c.JSON(http.StatusOK, movie)
}

// UpdateMovie - PUT /api/movies/:id
// Обновить фильм
func (h *Handlers) UpdateMovie(c *gin.Context) {
	var req models.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movie, err := h.services.Movies.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		slog.Error("Failed to update movie", "error", err, "movie_id", c.Param("id"))
		respondError(c, err, "Failed to update movie")
		return
	}

	c.JSON(http.StatusOK, movie)
}

// DeleteMovie - DELETE /api/movies/:id
// Удалить фильм
func (h *Handlers) DeleteMovie(c *gin.Context) {
	if err := h.services.Movies.Delete(c.Request.Context(), c.Param("id")); err != nil {
		slog.Error("Failed to delete movie", "error", err, "movie_id", c.Param("id"))
		respondError(c, err, "Failed to delete movie")
		return
	}

	c.Status(http.StatusNoContent)
}
