package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"swiftdrop/cmd"
	"swiftdrop/internal/adapters/out/postgres"
	"swiftdrop/internal/pkg/logger"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	os.Exit(start())
}

// start returns the process exit code so deferred cleanup, including the
// final log flush, runs before the process exits.
func start() int {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		return 1
	}

	log := logger.New(configs.LogLevel)
	defer func() {
		_ = log.Sync()
	}()

	if err = run(configs, log); err != nil {
		log.Error("application stopped with error", zap.Error(err))
		return 1
	}
	return 0
}

func run(configs cmd.Config, log *zap.Logger) error {
	db, err := postgres.Open(postgres.Options{
		Driver:     configs.DBDriver,
		Host:       configs.DBHost,
		Port:       configs.DBPort,
		User:       configs.DBUser,
		Password:   configs.DBPassword,
		Name:       configs.DBName,
		SslMode:    configs.DBSslMode,
		SQLitePath: configs.SQLitePath,
		LogLevel:   gormLogLevel(configs.LogLevel),
		Logger:     log,
	})
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := postgres.Close(db); closeErr != nil {
			log.Warn("failed to close database", zap.Error(closeErr))
		}
	}()

	if err = postgres.Migrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	app, err := cmd.NewCompositionRoot(configs, db, log)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			log.Warn("failed to close event producer", zap.Error(closeErr))
		}
	}()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := app.CreateRouter()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("port", configs.HTTPPort))
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case err = <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}

func gormLogLevel(level string) gormlogger.LogLevel {
	if level == "debug" {
		return gormlogger.Info
	}
	return gormlogger.Warn
}
