package integration

import (
	"net/http"
	"testing"

	"marquee/internal/models"
)

// TestSales_FullFlow sells a ticket with snacks and checks pricing and
// seat occupancy end to end
func TestSales_FullFlow(t *testing.T) {
	client := RequireServer(t)

	LogTestStep(t, "Creating session fixture")
	session := NewSessionFixture(t, client, 30, 20.00)

	snack := client.CreateSnack(t, models.CreateSnackRequest{
		Name:      "Pipoca Média",
		UnitPrice: 10.00,
		UnitCount: 1,
	})

	LogTestStep(t, "Selling half-fare ticket with snacks")
	req := NewTicketRequest(session.ID, "A1")
	req.FareType = models.FareHalf
	req.Snacks = []models.TicketSnackInput{{SnackID: snack.ID, Quantity: 2}}

	sale := client.SellTicket(t, req)

	if sale.TicketPrice != 10.00 {
		t.Fatalf("Half fare of 20.00 should be 10.00, got %.2f", sale.TicketPrice)
	}
	if sale.SnackSubtotal != 20.00 {
		t.Fatalf("Two snacks at 10.00 should be 20.00, got %.2f", sale.SnackSubtotal)
	}
	if sale.OrderTotal != 30.00 {
		t.Fatalf("Order total should be 30.00, got %.2f", sale.OrderTotal)
	}
	if sale.Ticket.CustomerDoc != "12345678909" {
		t.Fatalf("CPF should be stored as bare digits, got %q", sale.Ticket.CustomerDoc)
	}

	LogTestStep(t, "Checking seat map reflects the sale")
	seatMap := client.GetSeatMap(t, session.ID)
	AssertSeatOccupied(t, seatMap, "A1", true)
	if seatMap.Sold != 1 {
		t.Fatalf("Expected 1 sold seat, got %d", seatMap.Sold)
	}

	LogTestResult(t, "Sale flow completed, order total %.2f", sale.OrderTotal)
}

// TestSales_SeatConflicts covers duplicate seat and bad seat rejections
func TestSales_SeatConflicts(t *testing.T) {
	client := RequireServer(t)

	session := NewSessionFixture(t, client, 30, 20.00)

	LogTestStep(t, "Selling seat B2")
	client.SellTicket(t, NewTicketRequest(session.ID, "B2"))

	LogTestStep(t, "Second sale of B2 must conflict")
	client.SellTicketExpectingStatus(t, NewTicketRequest(session.ID, "B2"), http.StatusConflict)

	LogTestStep(t, "Lowercase b2 is the same seat")
	client.SellTicketExpectingStatus(t, NewTicketRequest(session.ID, "b2"), http.StatusConflict)

	LogTestStep(t, "Seat outside the room is rejected")
	client.SellTicketExpectingStatus(t, NewTicketRequest(session.ID, "Z99"), http.StatusUnprocessableEntity)

	LogTestResult(t, "Seat conflict handling OK")
}

// TestSales_CapacityExhaustion fills a tiny room and checks the next
// sale is refused
func TestSales_CapacityExhaustion(t *testing.T) {
	client := RequireServer(t)

	session := NewSessionFixture(t, client, 5, 15.00)

	// Capacity 5 gives one seat per row: A1..E1
	seats := []string{"A1", "B1", "C1", "D1", "E1"}
	for _, seat := range seats {
		client.SellTicket(t, NewTicketRequest(session.ID, seat))
	}

	LogTestStep(t, "Session is full, any further sale must be refused")
	client.SellTicketExpectingStatus(t, NewTicketRequest(session.ID, "A1"), http.StatusConflict)

	seatMap := client.GetSeatMap(t, session.ID)
	if seatMap.Remaining != 0 {
		t.Fatalf("Expected no remaining seats, got %d", seatMap.Remaining)
	}

	LogTestResult(t, "Capacity exhaustion handled")
}

// TestSales_EditKeepsOwnSeat verifies a ticket can be edited without
// tripping over its own seat, even at full capacity
func TestSales_EditKeepsOwnSeat(t *testing.T) {
	client := RequireServer(t)

	session := NewSessionFixture(t, client, 5, 15.00)

	var last models.SellTicketResponse
	for _, seat := range []string{"A1", "B1", "C1", "D1", "E1"} {
		last = client.SellTicket(t, NewTicketRequest(session.ID, seat))
	}

	LogTestStep(t, "Editing the last ticket, keeping seat E1")
	edit := NewTicketRequest(session.ID, "E1")
	edit.CustomerName = "Carlos Pereira"
	updated := client.UpdateTicket(t, last.Ticket.ID, edit)

	if updated.Ticket.CustomerName != "Carlos Pereira" {
		t.Fatalf("Expected updated name, got %q", updated.Ticket.CustomerName)
	}
	if updated.Ticket.SeatLabel != "E1" {
		t.Fatalf("Expected seat E1, got %q", updated.Ticket.SeatLabel)
	}

	LogTestStep(t, "Moving the ticket to an occupied seat must conflict")
	client.UpdateTicketExpectingStatus(t, last.Ticket.ID, NewTicketRequest(session.ID, "A1"), http.StatusConflict)

	LogTestResult(t, "Ticket edit semantics OK")
}

// TestSales_InvalidCustomerDoc rejects malformed CPF values
func TestSales_InvalidCustomerDoc(t *testing.T) {
	client := RequireServer(t)

	session := NewSessionFixture(t, client, 10, 18.00)

	req := NewTicketRequest(session.ID, "A1")
	req.CustomerDoc = "123"
	client.SellTicketExpectingStatus(t, req, http.StatusUnprocessableEntity)

	req = NewTicketRequest(session.ID, "A1")
	req.CustomerDoc = "abc.def.ghi-jk"
	client.SellTicketExpectingStatus(t, req, http.StatusUnprocessableEntity)

	LogTestResult(t, "CPF validation OK")
}

// TestSales_CancelFreesSeat deletes a ticket and checks the seat opens up
func TestSales_CancelFreesSeat(t *testing.T) {
	client := RequireServer(t)

	session := NewSessionFixture(t, client, 10, 18.00)

	sale := client.SellTicket(t, NewTicketRequest(session.ID, "A2"))
	client.DeleteTicket(t, sale.Ticket.ID)

	seatMap := client.GetSeatMap(t, session.ID)
	AssertSeatOccupied(t, seatMap, "A2", false)

	LogTestStep(t, "Seat can be sold again after cancellation")
	client.SellTicket(t, NewTicketRequest(session.ID, "A2"))

	LogTestResult(t, "Cancellation frees the seat")
}

// TestSales_SessionDeleteBlockedBySales keeps sessions with sold tickets
// from being removed until every sale is cancelled
func TestSales_SessionDeleteBlockedBySales(t *testing.T) {
	client := RequireServer(t)

	session := NewSessionFixture(t, client, 10, 18.00)
	sale := client.SellTicket(t, NewTicketRequest(session.ID, "A1"))

	LogTestStep(t, "Deleting a session with a sold ticket must conflict")
	client.DeleteSessionExpectingStatus(t, session.ID, http.StatusConflict)

	LogTestStep(t, "Cancelling the sale unblocks the delete")
	client.DeleteTicket(t, sale.Ticket.ID)
	client.DeleteSession(t, session.ID)

	LogTestResult(t, "Session delete respects sold tickets")
}
