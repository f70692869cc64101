package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"dashboard/cmd"
	httpin "dashboard/internal/adapters/in/http"
	"dashboard/internal/adapters/out/postgres/journalrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//	@title			Dispatch console API
//	@version		1.0
//	@description	Order status and driver assignment for platform admins.
//	@BasePath		/

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := newLogger(configs.LogLevel)

	gormDB, err := openJournal(configs)
	if err != nil {
		log.Fatalf("Error opening journal database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatal(err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatal("Failed to start jobs:", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, logger, configs.HTTPPort)
	app.Shutdown()
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

// openJournal connects to postgres when DB_HOST is set and returns nil otherwise.
func openJournal(configs cmd.Config) (*gorm.DB, error) {
	if !configs.JournalEnabled() {
		return nil, nil
	}

	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err = journalrepo.Migrate(gormDB); err != nil {
		return nil, fmt.Errorf("migrate journal: %w", err)
	}
	return gormDB, nil
}

func startWebServer(app *cmd.CompositionRoot, logger *slog.Logger, port string) {
	e := httpin.NewEcho(app.CreateServer(), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
