package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "marquee/internal/errors"
	"marquee/internal/service"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewHandlers(&service.Services{}, nil)

	api := r.Group("/api")
	{
		movies := api.Group("/movies")
		{
			movies.POST("", h.CreateMovie)
			movies.GET("", h.ListMovies)
		}

		tickets := api.Group("/tickets")
		{
			tickets.POST("", h.SellTicket)
		}
	}

	return r
}

func TestCreateMovieRejectsMalformedJSON(t *testing.T) {
	r := setupRouter()

	req, _ := http.NewRequest("POST", "/api/movies", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateMovieRejectsMissingBody(t *testing.T) {
	r := setupRouter()

	// Обязательные поля отсутствуют, binding должен отклонить запрос
	req, _ := http.NewRequest("POST", "/api/movies", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListMoviesPaginationValidation(t *testing.T) {
	r := setupRouter()

	req, _ := http.NewRequest("GET", "/api/movies?page=0", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	req, _ = http.NewRequest("GET", "/api/movies?pageSize=500", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSellTicketRejectsMalformedJSON(t *testing.T) {
	r := setupRouter()

	req, _ := http.NewRequest("POST", "/api/tickets", bytes.NewBufferString("not json at all"))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRespondErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"missing field", apperrors.E(apperrors.KindMissingField, "title is required"), http.StatusUnprocessableEntity},
		{"invalid customer id", apperrors.E(apperrors.KindInvalidCustomerID, "bad CPF"), http.StatusUnprocessableEntity},
		{"invalid seat", apperrors.E(apperrors.KindInvalidSeat, "seat outside room"), http.StatusUnprocessableEntity},
		{"seat taken", apperrors.E(apperrors.KindSeatTaken, "seat taken"), http.StatusConflict},
		{"capacity exceeded", apperrors.E(apperrors.KindCapacityExceeded, "room full"), http.StatusConflict},
		{"conflict", apperrors.E(apperrors.KindConflict, "has sessions"), http.StatusConflict},
		{"not found", apperrors.E(apperrors.KindNotFound, "movie not found"), http.StatusNotFound},
		{"upstream failure", apperrors.E(apperrors.KindUpstreamFailure, "search down"), http.StatusBadGateway},
		{"plain error", errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tc.err, "generic message")

			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestRespondErrorHidesInternalDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, errors.New("pq: connection refused"), "Failed to list movies")

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Failed to list movies", body["error"])
}

func TestRespondErrorIncludesFieldMessages(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	err := apperrors.FieldErrors(apperrors.KindMissingField, map[string]string{
		"title": "title is required",
	})
	respondError(c, err, "generic message")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Kind   string            `json:"kind"`
		Fields map[string]string `json:"fields"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "missing_field", body.Kind)
	assert.Equal(t, "title is required", body.Fields["title"])
}
