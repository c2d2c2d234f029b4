package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/attendance-system/db"
	"github.com/frahmantamala/attendance-system/internal"
	"github.com/frahmantamala/attendance-system/internal/transport/openapi"
	"github.com/frahmantamala/attendance-system/internal/transport/rest"
	"github.com/frahmantamala/attendance-system/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

const (
	dbDriver        = "pgx"
	shutdownTimeout = 30 * time.Second
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("Server failed to start", "error", err)
			_ = deps.DB.Close()
			os.Exit(1)
		}
	}

	if err := deps.DB.Close(); err != nil {
		deps.Logger.Error("Database close error", "error", err)
	}
	deps.Logger.Info("Server stopped")
}

func initializeDependencies(ctx context.Context) (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.Init(config.Observability.Logging.Format, config.Observability.Logging.Level)

	// a broken embedded document should stop the server before it listens
	if _, err := openapi.Load(ctx); err != nil {
		return nil, err
	}

	conn, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if config.Database.AutoMigrate {
		if err := db.Migrate(ctx, conn.DB, db.DialectPostgres, log); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}

	router := rest.NewRouter(conn, rest.NewHandlers(conn, log), config.Server.Origins(), log)

	return &Dependencies{
		Config: config,
		Logger: log,
		DB:     conn,
		Router: router,
	}, nil
}

// initDB opens the pgx-backed pool and verifies it with a ping.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	conn, err := sqlx.Open(dbDriver, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := internal.WithTimeout(context.Background(), 0)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}
