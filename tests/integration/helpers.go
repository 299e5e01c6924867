package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"marquee/internal/models"
)

const (
	APIBaseURL = "http://localhost:8080"
)

// RequireServer skips the test when no API server is listening
func RequireServer(t *testing.T) *TestClient {
	t.Helper()

	client := NewTestClient(APIBaseURL)
	resp, err := (&http.Client{Timeout: 2 * time.Second}).Get(APIBaseURL + "/health")
	if err != nil {
		t.Skipf("API server not running at %s: %v", APIBaseURL, err)
	}
	resp.Body.Close()

	return client
}

// NewSessionFixture creates a movie, a room with the given capacity and
// a session scheduled for tomorrow, returning the session
func NewSessionFixture(t *testing.T, client *TestClient, capacity int, basePrice float64) models.Session {
	t.Helper()

	movie := client.CreateMovie(t, models.CreateMovieRequest{
		Title:       fmt.Sprintf("Filme de Teste %d", time.Now().UnixNano()),
		Genre:       "Drama",
		Rating:      "12",
		DurationMin: 100,
		PremiereAt:  time.Now().Format("2006-01-02"),
		Description: "Filme criado automaticamente para testes de integração.",
	})

	room := client.CreateRoom(t, models.CreateRoomRequest{
		Name:     fmt.Sprintf("Sala %d", time.Now().UnixNano()%100000),
		Capacity: capacity,
		RoomType: models.RoomType2D,
	})

	return client.CreateSession(t, models.CreateSessionRequest{
		MovieID:   movie.ID,
		RoomID:    room.ID,
		StartsAt:  time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		BasePrice: basePrice,
		Language:  models.LanguageDubbed,
		Format:    models.Format2D,
	})
}

// NewTicketRequest builds a valid sale request for the session
func NewTicketRequest(sessionID, seat string) models.SellTicketRequest {
	return models.SellTicketRequest{
		SessionID:     sessionID,
		CustomerName:  "Maria Oliveira",
		CustomerDoc:   "123.456.789-09",
		SeatLabel:     seat,
		PaymentMethod: models.PaymentCard,
		FareType:      models.FareFull,
	}
}

// AssertSeatOccupied verifies seat occupancy in a seat map
func AssertSeatOccupied(t *testing.T, seatMap models.SeatMapResponse, label string, expected bool) {
	t.Helper()

	for _, seat := range seatMap.Seats {
		if seat.Label == label {
			if seat.Occupied != expected {
				t.Fatalf("Seat %s occupied=%v, expected %v", label, seat.Occupied, expected)
			}
			return
		}
	}
	t.Fatalf("Seat %s not found in seat map", label)
}

// LogTestStep logs a test step
func LogTestStep(t *testing.T, step string, args ...interface{}) {
	t.Logf("🔹 "+step, args...)
}

// LogTestResult logs a test result
func LogTestResult(t *testing.T, result string, args ...interface{}) {
	t.Logf("✅ "+result, args...)
}
