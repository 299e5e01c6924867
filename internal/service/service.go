package service

import (
	"marquee/internal/messaging"
	"marquee/internal/repository"
	"marquee/internal/search"
)

type Services struct {
	Movies   *MovieService
	Rooms    *RoomService
	Sessions *SessionService
	Tickets  *TicketService
	Snacks   *SnackService
}

func NewServices(repos *repository.Repositories, natsClient *messaging.NATSClient, searchClient *search.ElasticsearchClient) *Services {
	movieService := NewMovieService(repos.Movies, repos.Sessions, natsClient, searchClient)
	roomService := NewRoomService(repos.Rooms)
	sessionService := NewSessionService(repos.Sessions, repos.Movies, repos.Rooms, repos.Tickets)
	ticketService := NewTicketService(repos.Tickets, repos.Sessions, repos.Rooms, repos.Snacks, natsClient)
	snackService := NewSnackService(repos.Snacks)

	return &Services{
		Movies:   movieService,
		Rooms:    roomService,
		Sessions: sessionService,
		Tickets:  ticketService,
		Snacks:   snackService,
	}
}
