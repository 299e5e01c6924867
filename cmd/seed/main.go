package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"marquee/internal/config"
	"marquee/internal/database"
	"marquee/internal/logger"
	"marquee/internal/models"
	"marquee/internal/repository"
)

var (
	withSessions = flag.Bool("sessions", true, "Schedule sample sessions for the seeded movies")
	daysAhead    = flag.Int("days", 7, "How many days of sessions to schedule")
)

type Seeder struct {
	repos *repository.Repositories
}

func main() {
	flag.Parse()

	logger.Init("info", "text")
	slog.Info("Starting catalog seeder...")

	cfg := config.Load()
	db, err := database.Connect(cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	seeder := &Seeder{repos: repository.NewRepositories(db)}

	if err := seeder.Run(context.Background()); err != nil {
		slog.Error("Seeding failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Seeding completed successfully!")
}

func (s *Seeder) Run(ctx context.Context) error {
	movies, err := s.seedMovies(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed movies: %w", err)
	}

	rooms, err := s.seedRooms(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed rooms: %w", err)
	}

	if err := s.seedSnacks(ctx); err != nil {
		return fmt.Errorf("failed to seed snacks: %w", err)
	}

	if *withSessions {
		if err := s.seedSessions(ctx, movies, rooms); err != nil {
			return fmt.Errorf("failed to seed sessions: %w", err)
		}
	}

	return nil
}

func (s *Seeder) seedMovies(ctx context.Context) ([]models.Movie, error) {
	premiere := time.Now().Add(-30 * 24 * time.Hour)

	samples := []models.Movie{
		{
			Title:       "Cidade Invisível",
			Genre:       "Fantasia",
			Rating:      "14",
			DurationMin: 124,
			PremiereAt:  premiere,
			Description: "Um detetive descobre um mundo de criaturas do folclore vivendo entre nós.",
		},
		{
			Title:       "O Último Trem",
			Genre:       "Drama",
			Rating:      "12",
			DurationMin: 108,
			PremiereAt:  premiere.Add(7 * 24 * time.Hour),
			Description: "Dois irmãos atravessam o país para reencontrar o pai que nunca conheceram.",
		},
		{
			Title:       "Operação Vertente",
			Genre:       "Ação",
			Rating:      "16",
			DurationMin: 131,
			PremiereAt:  premiere.Add(14 * 24 * time.Hour),
			Description: "Uma agente infiltrada precisa desmontar uma rede criminosa antes do amanhecer.",
		},
	}

	movies := make([]models.Movie, 0, len(samples))
	for i := range samples {
		movie := samples[i]
		if err := s.repos.Movies.Create(ctx, &movie); err != nil {
			return nil, err
		}
		slog.Info("Seeded movie", "title", movie.Title, "id", movie.ID)
		movies = append(movies, movie)
	}

	return movies, nil
}

func (s *Seeder) seedRooms(ctx context.Context) ([]models.Room, error) {
	samples := []models.Room{
		{Name: "Sala 1", Capacity: 60, RoomType: models.RoomType2D},
		{Name: "Sala 2", Capacity: 45, RoomType: models.RoomType3D},
		{Name: "Sala IMAX", Capacity: 120, RoomType: models.RoomTypeIMAX},
	}

	rooms := make([]models.Room, 0, len(samples))
	for i := range samples {
		room := samples[i]
		if err := s.repos.Rooms.Create(ctx, &room); err != nil {
			return nil, err
		}
		slog.Info("Seeded room", "name", room.Name, "capacity", room.Capacity)
		rooms = append(rooms, room)
	}

	return rooms, nil
}

func (s *Seeder) seedSnacks(ctx context.Context) error {
	samples := []models.Snack{
		{Name: "Pipoca Grande", Description: "Pipoca salgada no balde grande", UnitPrice: 18.00, UnitCount: 1},
		{Name: "Refrigerante 500ml", Description: "Copo de refrigerante com gelo", UnitPrice: 9.50, UnitCount: 1},
		{Name: "Combo Casal", Description: "Duas pipocas médias e dois refrigerantes", UnitPrice: 42.00, UnitCount: 4},
	}

	for i := range samples {
		snack := samples[i]
		if err := s.repos.Snacks.Create(ctx, &snack); err != nil {
			return err
		}
		slog.Info("Seeded snack", "name", snack.Name, "price", snack.UnitPrice)
	}

	return nil
}

// seedSessions schedules each movie once per day across the rooms
func (s *Seeder) seedSessions(ctx context.Context, movies []models.Movie, rooms []models.Room) error {
	if len(movies) == 0 || len(rooms) == 0 {
		return nil
	}

	tomorrow := time.Now().Add(24 * time.Hour)
	base := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, time.Local)

	count := 0
	for day := 0; day < *daysAhead; day++ {
		for i, movie := range movies {
			room := rooms[(day+i)%len(rooms)]
			session := &models.Session{
				MovieID:   movie.ID,
				RoomID:    room.ID,
				StartsAt:  base.Add(time.Duration(day)*24*time.Hour + time.Duration(18+i*2)*time.Hour),
				BasePrice: 20.00,
				Language:  models.LanguageDubbed,
				Format:    models.Format2D,
			}
			if room.RoomType != models.RoomType2D {
				session.Format = models.Format3D
				session.BasePrice = 28.00
			}
			if err := s.repos.Sessions.Create(ctx, session); err != nil {
				return err
			}
			count++
		}
	}

	slog.Info("Seeded sessions", "count", count, "days", *daysAhead)
	return nil
}
