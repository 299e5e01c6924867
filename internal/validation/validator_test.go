package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "marquee/internal/errors"
	"marquee/internal/models"
)

func TestNormalizeCPF(t *testing.T) {
	assert.Equal(t, "12345678901", NormalizeCPF("123.456.789-01"))
	assert.Equal(t, "12345678901", NormalizeCPF("12345678901"))
	assert.Equal(t, "", NormalizeCPF("abc"))
}

func TestValidCPF(t *testing.T) {
	assert.True(t, ValidCPF("123.456.789-01"))
	assert.True(t, ValidCPF("12345678901"))

	// letters and other punctuation are rejected before stripping
	assert.False(t, ValidCPF("123.456.789-0a"))
	assert.False(t, ValidCPF("123 456 789 01"))

	// wrong digit count
	assert.False(t, ValidCPF("123.456.789"))
	assert.False(t, ValidCPF("123.456.789-012"))
	assert.False(t, ValidCPF(""))
}

func TestNormalizeSeat(t *testing.T) {
	assert.Equal(t, "A1", NormalizeSeat("a1"))
	assert.Equal(t, "B12", NormalizeSeat(" b12 "))
}

func validTicketRequest() models.SellTicketRequest {
	return models.SellTicketRequest{
		SessionID:     "sess-1",
		CustomerName:  "Maria Silva",
		CustomerDoc:   "123.456.789-01",
		SeatLabel:     "a1",
		PaymentMethod: models.PaymentPix,
		FareType:      models.FareHalf,
	}
}

func TestValidateTicketOK(t *testing.T) {
	req := validTicketRequest()
	r := ValidateTicket(&req)
	assert.True(t, r.Valid())
	assert.NoError(t, r.Err())
}

func TestValidateTicketMissingFields(t *testing.T) {
	req := models.SellTicketRequest{}
	r := ValidateTicket(&req)
	assert.False(t, r.Valid())
	for _, field := range []string{"session_id", "customer_name", "customer_doc", "seat_label", "payment_method", "fare_type"} {
		assert.Contains(t, r.Fields, field)
	}
}

func TestValidateTicketInvalidCPFKind(t *testing.T) {
	req := validTicketRequest()
	req.CustomerDoc = "123.456.78x-01"
	err := ValidateTicket(&req).Err()
	assert.Equal(t, apperrors.KindInvalidCustomerID, apperrors.KindOf(err))
}

func TestValidateTicketMissingFieldKind(t *testing.T) {
	req := validTicketRequest()
	req.CustomerName = ""
	err := ValidateTicket(&req).Err()
	assert.Equal(t, apperrors.KindMissingField, apperrors.KindOf(err))
}

func TestValidateTicketSeatFormat(t *testing.T) {
	for _, seat := range []string{"", "A", "1A", "AA1", "A123456"} {
		req := validTicketRequest()
		req.SeatLabel = seat
		r := ValidateTicket(&req)
		assert.Contains(t, r.Fields, "seat_label", "seat %q", seat)
	}
}

func TestValidateRoom(t *testing.T) {
	r := ValidateRoom(&models.CreateRoomRequest{Name: "Sala 1", Capacity: 80, RoomType: "IMAX"})
	assert.True(t, r.Valid())

	r = ValidateRoom(&models.CreateRoomRequest{Name: "Sala 1", Capacity: 0, RoomType: "4DX"})
	assert.Contains(t, r.Fields, "capacity")
	assert.Contains(t, r.Fields, "room_type")
}

func TestValidateSession(t *testing.T) {
	r := ValidateSession(&models.CreateSessionRequest{
		MovieID:   "m1",
		RoomID:    "r1",
		StartsAt:  "2030-01-02T20:00:00Z",
		BasePrice: 25,
		Language:  models.LanguageDubbed,
		Format:    models.Format3D,
	}, true)
	assert.True(t, r.Valid())

	// past session rejected on create but allowed on update
	past := &models.CreateSessionRequest{
		MovieID:   "m1",
		RoomID:    "r1",
		StartsAt:  "2020-01-02T20:00:00Z",
		BasePrice: 25,
		Language:  models.LanguageSubtitled,
		Format:    models.Format2D,
	}
	assert.Contains(t, ValidateSession(past, true).Fields, "starts_at")
	assert.True(t, ValidateSession(past, false).Valid())
}

func TestValidateMovie(t *testing.T) {
	r := ValidateMovie(&models.CreateMovieRequest{
		Title:       "O Auto da Compadecida",
		Genre:       "Comedy",
		Rating:      "12",
		DurationMin: 104,
		PremiereAt:  "2000-09-10",
		Description: "Duas pessoas e suas aventuras pelo sertão.",
	})
	assert.True(t, r.Valid())

	r = ValidateMovie(&models.CreateMovieRequest{Title: "X", Description: "short"})
	assert.Contains(t, r.Fields, "genre")
	assert.Contains(t, r.Fields, "duration_min")
	assert.Contains(t, r.Fields, "description")
}

func TestValidateSnack(t *testing.T) {
	r := ValidateSnack(&models.CreateSnackRequest{Name: "Pipoca", UnitPrice: 12.5, UnitCount: 1})
	assert.True(t, r.Valid())

	r = ValidateSnack(&models.CreateSnackRequest{UnitPrice: -1})
	assert.Contains(t, r.Fields, "name")
	assert.Contains(t, r.Fields, "unit_price")
	assert.Contains(t, r.Fields, "unit_count")
}
