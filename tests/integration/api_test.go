package integration

import (
	"testing"
	"time"

	"marquee/internal/models"
)

// TestAPI_HealthCheck tests the API health endpoint
func TestAPI_HealthCheck(t *testing.T) {
	client := RequireServer(t)

	LogTestStep(t, "Testing API health check")
	client.HealthCheck(t)
	LogTestResult(t, "API is healthy and responding")
}

// TestAPI_MovieCRUD walks a movie through its whole lifecycle
func TestAPI_MovieCRUD(t *testing.T) {
	client := RequireServer(t)

	LogTestStep(t, "Creating movie")
	movie := client.CreateMovie(t, models.CreateMovieRequest{
		Title:       "Horizonte Perdido",
		Genre:       "Ficção Científica",
		Rating:      "12",
		DurationMin: 142,
		PremiereAt:  time.Now().Format("2006-01-02"),
		Description: "Uma expedição encontra uma cidade esquecida no fundo do oceano.",
	})

	if movie.ID == "" {
		t.Fatal("Expected created movie to have an ID")
	}
	if movie.Title != "Horizonte Perdido" {
		t.Fatalf("Expected title to round-trip, got %q", movie.Title)
	}

	LogTestStep(t, "Listing movies")
	movies := client.ListMovies(t)

	found := false
	for _, m := range movies {
		if m.ID == movie.ID {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("Created movie %s not found in listing", movie.ID)
	}

	LogTestResult(t, "Movie lifecycle OK, %d movies listed", len(movies))
}

// TestAPI_SessionSeatMap verifies the derived seat map of a fresh session
func TestAPI_SessionSeatMap(t *testing.T) {
	client := RequireServer(t)

	LogTestStep(t, "Creating session with capacity 25")
	session := NewSessionFixture(t, client, 25, 20.00)

	seatMap := client.GetSeatMap(t, session.ID)

	if seatMap.Capacity != 25 {
		t.Fatalf("Expected capacity 25, got %d", seatMap.Capacity)
	}
	if len(seatMap.Seats) != 25 {
		t.Fatalf("Expected 25 seats in map, got %d", len(seatMap.Seats))
	}
	if seatMap.Sold != 0 || seatMap.Remaining != 25 {
		t.Fatalf("Expected empty session, got sold=%d remaining=%d", seatMap.Sold, seatMap.Remaining)
	}

	// Capacity 25 gives 3 seats per row, so the map starts A1..A3, B1..
	if seatMap.Seats[0].Label != "A1" || seatMap.Seats[3].Label != "B1" {
		t.Fatalf("Unexpected seat ordering: %s, %s", seatMap.Seats[0].Label, seatMap.Seats[3].Label)
	}

	LogTestResult(t, "Seat map derived correctly for capacity 25")
}

// TestAPI_SessionScheduleFresh verifies the schedule listing picks up a new
// session immediately, including when the listing is served from cache
func TestAPI_SessionScheduleFresh(t *testing.T) {
	client := RequireServer(t)

	LogTestStep(t, "Warming schedule listing")
	client.ListSessions(t)

	LogTestStep(t, "Creating session")
	session := NewSessionFixture(t, client, 30, 18.00)

	LogTestStep(t, "Listing schedule again")
	sessions := client.ListSessions(t)

	found := false
	for _, s := range sessions {
		if s.ID == session.ID {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("Created session %s not found in schedule listing", session.ID)
	}

	LogTestResult(t, "Schedule reflects new session, %d sessions listed", len(sessions))
}

// TestAPI_SnackCatalog covers the snack catalog listing
func TestAPI_SnackCatalog(t *testing.T) {
	client := RequireServer(t)

	LogTestStep(t, "Creating snack")
	snack := client.CreateSnack(t, models.CreateSnackRequest{
		Name:        "Pipoca Doce",
		Description: "Balde médio de pipoca caramelizada",
		UnitPrice:   15.00,
		UnitCount:   1,
	})

	if snack.ID == "" {
		t.Fatal("Expected created snack to have an ID")
	}

	LogTestStep(t, "Listing snacks")
	snacks := client.ListSnacks(t)

	found := false
	for _, s := range snacks {
		if s.ID == snack.ID {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("Created snack %s not found in catalog", snack.ID)
	}

	LogTestResult(t, "Snack catalog contains %d items", len(snacks))
}
