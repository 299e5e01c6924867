package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"marquee/internal/models"
)

// TestClient provides methods for testing the API
type TestClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewTestClient creates a new test client
func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// makeRequest makes an HTTP request and returns the response
func (c *TestClient) makeRequest(t *testing.T, method, path string, body interface{}) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reqBody)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to make request: %v", err)
	}

	return resp
}

// HealthCheck verifies the API is up
func (c *TestClient) HealthCheck(t *testing.T) {
	resp := c.makeRequest(t, "GET", "/health", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
}

func decodeBody[T any](t *testing.T, resp *http.Response, expectedStatus int) T {
	t.Helper()
	defer resp.Body.Close()

	var zero T
	if resp.StatusCode != expectedStatus {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status %d, got %d. Body: %s", expectedStatus, resp.StatusCode, string(body))
		return zero
	}

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return out
}

// CreateMovie creates a movie and returns it
func (c *TestClient) CreateMovie(t *testing.T, req models.CreateMovieRequest) models.Movie {
	resp := c.makeRequest(t, "POST", "/api/movies", req)
	return decodeBody[models.Movie](t, resp, http.StatusCreated)
}

// ListMovies lists all movies
func (c *TestClient) ListMovies(t *testing.T) []models.Movie {
	resp := c.makeRequest(t, "GET", "/api/movies", nil)
	return decodeBody[[]models.Movie](t, resp, http.StatusOK)
}

// CreateRoom creates a room and returns it
func (c *TestClient) CreateRoom(t *testing.T, req models.CreateRoomRequest) models.Room {
	resp := c.makeRequest(t, "POST", "/api/rooms", req)
	return decodeBody[models.Room](t, resp, http.StatusCreated)
}

// CreateSession creates a session and returns it
func (c *TestClient) CreateSession(t *testing.T, req models.CreateSessionRequest) models.Session {
	resp := c.makeRequest(t, "POST", "/api/sessions", req)
	return decodeBody[models.Session](t, resp, http.StatusCreated)
}

// ListSessions lists the session schedule
func (c *TestClient) ListSessions(t *testing.T) []models.Session {
	resp := c.makeRequest(t, "GET", "/api/sessions", nil)
	return decodeBody[[]models.Session](t, resp, http.StatusOK)
}

// DeleteSession removes a session
func (c *TestClient) DeleteSession(t *testing.T, sessionID string) {
	resp := c.makeRequest(t, "DELETE", "/api/sessions/"+sessionID, nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 204, got %d. Body: %s", resp.StatusCode, string(body))
	}
}

// DeleteSessionExpectingStatus removes a session and asserts the response status
func (c *TestClient) DeleteSessionExpectingStatus(t *testing.T, sessionID string, expectedStatus int) {
	resp := c.makeRequest(t, "DELETE", "/api/sessions/"+sessionID, nil)
	defer resp.Body.Close()

	if resp.StatusCode != expectedStatus {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status %d, got %d. Body: %s", expectedStatus, resp.StatusCode, string(body))
	}
}

// GetSeatMap returns the seat map of a session
func (c *TestClient) GetSeatMap(t *testing.T, sessionID string) models.SeatMapResponse {
	resp := c.makeRequest(t, "GET", fmt.Sprintf("/api/sessions/%s/seats", sessionID), nil)
	return decodeBody[models.SeatMapResponse](t, resp, http.StatusOK)
}

// SellTicket sells a ticket expecting success
func (c *TestClient) SellTicket(t *testing.T, req models.SellTicketRequest) models.SellTicketResponse {
	resp := c.makeRequest(t, "POST", "/api/tickets", req)
	return decodeBody[models.SellTicketResponse](t, resp, http.StatusCreated)
}

// SellTicketExpectingStatus sells a ticket and asserts the response status
func (c *TestClient) SellTicketExpectingStatus(t *testing.T, req models.SellTicketRequest, expectedStatus int) {
	resp := c.makeRequest(t, "POST", "/api/tickets", req)
	defer resp.Body.Close()

	if resp.StatusCode != expectedStatus {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status %d, got %d. Body: %s", expectedStatus, resp.StatusCode, string(body))
	}
}

// UpdateTicket edits a ticket expecting success
func (c *TestClient) UpdateTicket(t *testing.T, ticketID string, req models.SellTicketRequest) models.SellTicketResponse {
	resp := c.makeRequest(t, "PUT", "/api/tickets/"+ticketID, req)
	return decodeBody[models.SellTicketResponse](t, resp, http.StatusOK)
}

// UpdateTicketExpectingStatus edits a ticket and asserts the response status
func (c *TestClient) UpdateTicketExpectingStatus(t *testing.T, ticketID string, req models.SellTicketRequest, expectedStatus int) {
	resp := c.makeRequest(t, "PUT", "/api/tickets/"+ticketID, req)
	defer resp.Body.Close()

	if resp.StatusCode != expectedStatus {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status %d, got %d. Body: %s", expectedStatus, resp.StatusCode, string(body))
	}
}

// DeleteTicket cancels a ticket
func (c *TestClient) DeleteTicket(t *testing.T, ticketID string) {
	resp := c.makeRequest(t, "DELETE", "/api/tickets/"+ticketID, nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 204, got %d. Body: %s", resp.StatusCode, string(body))
	}
}

// CreateSnack creates a snack and returns it
func (c *TestClient) CreateSnack(t *testing.T, req models.CreateSnackRequest) models.Snack {
	resp := c.makeRequest(t, "POST", "/api/snacks", req)
	return decodeBody[models.Snack](t, resp, http.StatusCreated)
}

// ListSnacks lists the snack catalog
func (c *TestClient) ListSnacks(t *testing.T) []models.Snack {
	resp := c.makeRequest(t, "GET", "/api/snacks", nil)
	return decodeBody[[]models.Snack](t, resp, http.StatusOK)
}
