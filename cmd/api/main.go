package main

import (
	"accountsdesk/cmd/internal/config"
	"accountsdesk/cmd/internal/domain/sqlite"
	"accountsdesk/cmd/internal/domain/sqlite/repository"
	"accountsdesk/cmd/internal/http/handler"
	"accountsdesk/cmd/internal/service"
	"accountsdesk/cmd/internal/utils/uid"
	"accountsdesk/cmd/internal/utils/validators"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	validate := validator.New()
	validators.Register(validate)

	// Loads env vars depending on environment
	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	uid.Init(cfg.MachineID)

	// Init SQLite
	db, err := sqlite.Init(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to init database: %v", err)
	}

	if cfg.SeedDemo {
		if err = sqlite.SeedDemo(db); err != nil {
			log.Fatalf("failed to seed demo data: %v", err)
		}
	}

	// Getting repos
	accountRepo := repository.NewAccountRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Getting services
	accountService := service.NewAccountService(accountRepo, validate)
	orderService := service.NewOrderService(orderRepo, validate)

	e := handler.NewServer(accountService, orderService)

	go func() {
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("failed to shut down server: %v", err)
	}
}
