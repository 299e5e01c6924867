package validation

import (
	"regexp"
	"strings"
	"time"

	apperrors "marquee/internal/errors"
	"marquee/internal/models"
)

// Result собирает ошибки валидации формы по имени поля
type Result struct {
	Fields map[string]string
}

func (r *Result) add(field, message string) {
	if r.Fields == nil {
		r.Fields = make(map[string]string)
	}
	if _, taken := r.Fields[field]; !taken {
		r.Fields[field] = message
	}
}

// Valid reports whether no field failed
func (r Result) Valid() bool {
	return len(r.Fields) == 0
}

// Err converts the result into a domain error, or nil when valid.
// The kind reflects the most specific failure present.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	kind := apperrors.KindMissingField
	if msg, ok := r.Fields["customer_doc"]; ok && msg == msgInvalidCPF {
		kind = apperrors.KindInvalidCustomerID
	}
	return apperrors.FieldErrors(kind, r.Fields)
}

var (
	seatLabelRe = regexp.MustCompile(`^[A-Za-z]\d+$`)
	cpfInputRe  = regexp.MustCompile(`^[\d.-]+$`)
	nonDigitRe  = regexp.MustCompile(`\D`)
)

const msgInvalidCPF = "CPF must have 11 digits, grouped only with dots and hyphens"

// NormalizeCPF strips every non-digit character for storage
func NormalizeCPF(input string) string {
	return nonDigitRe.ReplaceAllString(input, "")
}

// ValidCPF checks the display-formatted value before stripping: only
// digits plus the conventional dot/hyphen grouping are allowed, and the
// stripped value must be exactly 11 digits
func ValidCPF(input string) bool {
	input = strings.TrimSpace(input)
	if input == "" || !cpfInputRe.MatchString(input) {
		return false
	}
	return len(NormalizeCPF(input)) == 11
}

// NormalizeSeat uppercases a seat label before any comparison
func NormalizeSeat(label string) string {
	return strings.ToUpper(strings.TrimSpace(label))
}

// ValidateMovie проверяет поля фильма
func ValidateMovie(req *models.CreateMovieRequest) Result {
	var r Result
	title := strings.TrimSpace(req.Title)
	if title == "" {
		r.add("title", "title is required")
	} else if len(title) > 100 {
		r.add("title", "title must be at most 100 characters")
	}
	if strings.TrimSpace(req.Genre) == "" {
		r.add("genre", "genre is required")
	}
	if strings.TrimSpace(req.Rating) == "" {
		r.add("rating", "rating is required")
	}
	if req.DurationMin < 1 || req.DurationMin > 500 {
		r.add("duration_min", "duration must be between 1 and 500 minutes")
	}
	if strings.TrimSpace(req.PremiereAt) == "" {
		r.add("premiere_at", "premiere date is required")
	} else if _, err := ParseDate(req.PremiereAt); err != nil {
		r.add("premiere_at", "premiere date must be YYYY-MM-DD or RFC 3339")
	}
	if n := len(strings.TrimSpace(req.Description)); n < 10 || n > 500 {
		r.add("description", "description must be between 10 and 500 characters")
	}
	return r
}

// ValidateRoom проверяет поля зала
func ValidateRoom(req *models.CreateRoomRequest) Result {
	var r Result
	name := strings.TrimSpace(req.Name)
	if name == "" {
		r.add("name", "name is required")
	} else if len(name) > 50 {
		r.add("name", "name must be at most 50 characters")
	}
	if req.Capacity < 1 || req.Capacity > 1000 {
		r.add("capacity", "capacity must be between 1 and 1000")
	}
	switch req.RoomType {
	case models.RoomType2D, models.RoomType3D, models.RoomTypeIMAX:
	default:
		r.add("room_type", "room type must be one of 2D, 3D, IMAX")
	}
	return r
}

// ValidateSession проверяет поля сеанса; при создании дата не может
// быть в прошлом
func ValidateSession(req *models.CreateSessionRequest, isCreate bool) Result {
	var r Result
	if strings.TrimSpace(req.MovieID) == "" {
		r.add("movie_id", "movie is required")
	}
	if strings.TrimSpace(req.RoomID) == "" {
		r.add("room_id", "room is required")
	}
	if strings.TrimSpace(req.StartsAt) == "" {
		r.add("starts_at", "date and time are required")
	} else if startsAt, err := ParseDateTime(req.StartsAt); err != nil {
		r.add("starts_at", "date must be RFC 3339")
	} else if isCreate && startsAt.Before(time.Now()) {
		r.add("starts_at", "session date cannot be in the past")
	}
	if req.BasePrice < 0 || req.BasePrice > 500 {
		r.add("base_price", "price must be between 0 and 500")
	}
	switch req.Language {
	case models.LanguageDubbed, models.LanguageSubtitled:
	default:
		r.add("language", "language must be Dubbed or Subtitled")
	}
	switch req.Format {
	case models.Format2D, models.Format3D:
	default:
		r.add("format", "format must be 2D or 3D")
	}
	return r
}

// ValidateTicket проверяет поля билета перед любой записью
func ValidateTicket(req *models.SellTicketRequest) Result {
	var r Result
	if strings.TrimSpace(req.SessionID) == "" {
		r.add("session_id", "session is required")
	}
	name := strings.TrimSpace(req.CustomerName)
	if len(name) < 3 {
		r.add("customer_name", "customer name must have at least 3 characters")
	} else if len(name) > 100 {
		r.add("customer_name", "customer name must be at most 100 characters")
	}
	if !ValidCPF(req.CustomerDoc) {
		r.add("customer_doc", msgInvalidCPF)
	}
	seat := NormalizeSeat(req.SeatLabel)
	if len(seat) < 2 || len(seat) > 5 || !seatLabelRe.MatchString(seat) {
		r.add("seat_label", "seat label must be a row letter plus number, e.g. A10")
	}
	switch req.PaymentMethod {
	case models.PaymentCard, models.PaymentPix, models.PaymentCash:
	default:
		r.add("payment_method", "payment method must be one of Card, Pix, Cash")
	}
	switch req.FareType {
	case models.FareFull, models.FareHalf:
	default:
		r.add("fare_type", "fare type must be Full or Half")
	}
	for _, line := range req.Snacks {
		if strings.TrimSpace(line.SnackID) == "" {
			r.add("snacks", "snack lines need a snack id")
			break
		}
	}
	return r
}

// ValidateSnack проверяет поля ланча
func ValidateSnack(req *models.CreateSnackRequest) Result {
	var r Result
	if strings.TrimSpace(req.Name) == "" {
		r.add("name", "name is required")
	}
	if req.UnitPrice < 0 {
		r.add("unit_price", "unit price cannot be negative")
	}
	if req.UnitCount < 1 {
		r.add("unit_count", "unit count must be at least 1")
	}
	return r
}

// ParseDateTime accepts RFC 3339 or a bare date, interpreting the
// latter at noon to sidestep timezone boundary shifts
func ParseDateTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04", value); err == nil {
		return t, nil
	}
	return ParseDate(value)
}

// ParseDate parses a YYYY-MM-DD date at noon local time
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return t.Add(12 * time.Hour), nil
}
