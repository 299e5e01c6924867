package models

// CreateMovieRequest - модель для создания фильма
type CreateMovieRequest struct {
	Title       string `json:"title" binding:"required"`
	Genre       string `json:"genre" binding:"required"`
	Rating      string `json:"rating" binding:"required"`
	DurationMin int    `json:"duration_min" binding:"required"`
	PremiereAt  string `json:"premiere_at" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// CreateRoomRequest - модель для создания зала
type CreateRoomRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"required"`
	RoomType string `json:"room_type" binding:"required"`
}

// CreateSessionRequest - модель для создания сеанса
type CreateSessionRequest struct {
	MovieID   string  `json:"movie_id" binding:"required"`
	RoomID    string  `json:"room_id" binding:"required"`
	StartsAt  string  `json:"starts_at" binding:"required"`
	BasePrice float64 `json:"base_price"`
	Language  string  `json:"language" binding:"required"`
	Format    string  `json:"format" binding:"required"`
}

// TicketSnackInput - строка корзины ланчей в запросе продажи
type TicketSnackInput struct {
	SnackID  string `json:"snack_id" binding:"required"`
	Quantity int    `json:"quantity"`
}

// SellTicketRequest - модель для продажи (и редактирования) билета
type SellTicketRequest struct {
	SessionID     string             `json:"session_id"`
	CustomerName  string             `json:"customer_name"`
	CustomerDoc   string             `json:"customer_doc"`
	SeatLabel     string             `json:"seat_label"`
	PaymentMethod string             `json:"payment_method"`
	FareType      string             `json:"fare_type"`
	Snacks        []TicketSnackInput `json:"snacks,omitempty"`
}

// CreateSnackRequest - модель для создания ланча/комбо
type CreateSnackRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	UnitCount   int     `json:"unit_count"`
}

// SellTicketResponse - ответ на продажу билета с расчетом стоимости
type SellTicketResponse struct {
	Ticket        Ticket  `json:"ticket"`
	TicketPrice   float64 `json:"ticket_price"`
	SnackSubtotal float64 `json:"snack_subtotal"`
	OrderTotal    float64 `json:"order_total"`
}

// SeatStatus - статус одного места в карте зала
type SeatStatus struct {
	Label    string `json:"label"`
	Row      string `json:"row"`
	Number   int    `json:"number"`
	Occupied bool   `json:"occupied"`
}

// SeatMapResponse - карта мест сеанса, производная от вместимости зала
type SeatMapResponse struct {
	SessionID string       `json:"session_id"`
	RoomID    string       `json:"room_id"`
	Capacity  int          `json:"capacity"`
	Sold      int          `json:"sold"`
	Remaining int          `json:"remaining"`
	Seats     []SeatStatus `json:"seats"`
}
