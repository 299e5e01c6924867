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
	"marquee/internal/repository"
	"marquee/internal/search"
)

func main() {
	var pageSize int
	flag.IntVar(&pageSize, "batch", 100, "How many movies to read per page")
	flag.Parse()

	logger.Init("info", "text")
	slog.Info("Starting movie index synchronization")

	cfg := config.Load()

	esCfg := config.LoadElasticsearchConfig()
	if esCfg.URL == "" {
		slog.Error("ELASTICSEARCH_URL is not set, nothing to sync to")
		os.Exit(1)
	}

	slog.Info("Connecting to database")
	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer db.Close()

	movieRepo := repository.NewMovieRepository(db)

	searchClient, err := search.NewElasticsearchClient(esCfg)
	if err != nil {
		logger.Fatal("Failed to connect to Elasticsearch", "error", err)
	}

	if err := syncMovies(context.Background(), movieRepo, searchClient, pageSize); err != nil {
		logger.Fatal("Movie index synchronization failed", "error", err)
	}

	slog.Info("Movie index synchronization completed successfully")
}

// syncMovies pages through the movie catalog and reindexes every row
func syncMovies(ctx context.Context, movieRepo *repository.MovieRepository, searchClient *search.ElasticsearchClient, pageSize int) error {
	start := time.Now()
	indexed := 0

	for page := 1; ; page++ {
		movies, err := movieRepo.List(ctx, "", page, pageSize)
		if err != nil {
			return fmt.Errorf("failed to list movies: %w", err)
		}
		if len(movies) == 0 {
			break
		}

		for i := range movies {
			if err := searchClient.IndexMovie(ctx, &movies[i]); err != nil {
				return fmt.Errorf("failed to index movie %s: %w", movies[i].ID, err)
			}
			indexed++
		}

		slog.Info("Indexed movie batch", "page", page, "count", len(movies))

		if len(movies) < pageSize {
			break
		}
	}

	slog.Info("Reindex finished", "movies", indexed, "took", time.Since(start))
	return nil
}
