package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/api-sage/ledger-core/internal/adapter/http/controller"
	"github.com/api-sage/ledger-core/internal/adapter/http/middleware"
	"github.com/api-sage/ledger-core/internal/adapter/http/router"
	"github.com/api-sage/ledger-core/internal/adapter/repository/memory"
	"github.com/api-sage/ledger-core/internal/config"
	"github.com/api-sage/ledger-core/internal/logger"
	"github.com/api-sage/ledger-core/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger.Init(cfg.LogLevel)

	accountStore := memory.NewAccountStore()
	transactionStore := memory.NewTransactionStore()

	accountService := services.NewAccountService(accountStore)
	transactionService := services.NewTransactionService(transactionStore, accountService)
	businessService := services.NewBusinessService(accountService, transactionService)
	transferService := services.NewTransferService(accountService, transactionService)

	authMiddleware := middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKeyHash)

	mux := router.New(
		controller.NewAccountController(accountService, transactionService),
		controller.NewTransactionController(transactionService, cfg.DefaultPageSize),
		controller.NewBusinessController(businessService, transferService),
		authMiddleware,
	)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	go func() {
		logger.Info("ledger server listening", logger.Fields{"addr": cfg.HTTPAddr})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}

	logger.Info("ledger server stopped", nil)
}
