package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"kanzanso-wellness-service/internal/app"
	"kanzanso-wellness-service/internal/config"
	"kanzanso-wellness-service/internal/domain"
	"kanzanso-wellness-service/internal/infra/memory"
	pgloader "kanzanso-wellness-service/internal/infra/postgres"
	rediskv "kanzanso-wellness-service/internal/infra/redis"
	"kanzanso-wellness-service/internal/questionbank"
	"kanzanso-wellness-service/internal/remote"
	"kanzanso-wellness-service/internal/store"
	transport "kanzanso-wellness-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the wellness server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	// KV holds the local fallback copies. Redis when configured so they
	// survive restarts, in-memory otherwise.
	var kv store.KV = memory.NewKV()
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		kv = rediskv.NewKV(redisClient, cfg.Redis.Prefix)
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
	}

	var loader questionbank.Loader = questionbank.NewStaticLoader(questionbank.Catalog())
	if pool != nil {
		loader = pgloader.NewQuestionLoader(pool)
	}
	quizTTL := config.TTLDuration(cfg.Quiz.TTL, 10*time.Minute)
	bank := questionbank.NewCachedRepository(loader, quizTTL)

	upstreamTimeout := config.TTLDuration(cfg.Upstream.Timeout, 10*time.Second)
	client := remote.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Token, upstreamTimeout)

	results := store.New[domain.QuizResult, *domain.QuizResult](
		"quiz-result", app.QuizResultsKey, remote.NewCollection[domain.QuizResult](client, "/api/quiz-results"), kv)
	todos := store.New[domain.Todo, *domain.Todo](
		"todo", app.TodosKey, remote.NewCollection[domain.Todo](client, "/api/todos"), kv)
	gratitude := store.New[domain.GratitudeEntry, *domain.GratitudeEntry](
		"gratitude", app.GratitudeKey, remote.NewCollection[domain.GratitudeEntry](client, "/api/gratitude"), kv)
	favorites := store.New[domain.FavoriteQuote, *domain.FavoriteQuote](
		"favorite", app.FavoritesKey, remote.NewCollection[domain.FavoriteQuote](client, "/api/favorites"), kv)

	// Startup probe: when the upstream is already known to be down the
	// stores skip the doomed first request and open in fallback mode.
	if cfg.Upstream.BaseURL == "" {
		log.Printf("no upstream configured, serving from local store")
		for _, s := range []interface{ MarkFallback() }{results, todos, gratitude, favorites} {
			s.MarkFallback()
		}
	} else {
		probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := client.Ping(probeCtx); err != nil {
			log.Printf("upstream probe failed: %v", err)
			for _, s := range []interface{ MarkFallback() }{results, todos, gratitude, favorites} {
				s.MarkFallback()
			}
		}
		cancel()
	}

	quizService := app.NewQuizService(bank, results)
	handler := transport.NewHandler(
		quizService,
		app.NewTodoService(todos),
		app.NewGratitudeService(gratitude),
		app.NewFavoriteService(favorites),
	)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting wellness service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
