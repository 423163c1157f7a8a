package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/heartmarshall/expensio-backend/internal/adapter/amqp"
	"github.com/heartmarshall/expensio-backend/internal/adapter/postgres"
	budgetrepo "github.com/heartmarshall/expensio-backend/internal/adapter/postgres/budget"
	categoryrepo "github.com/heartmarshall/expensio-backend/internal/adapter/postgres/category"
	expenserepo "github.com/heartmarshall/expensio-backend/internal/adapter/postgres/expense"
	reimbursementrepo "github.com/heartmarshall/expensio-backend/internal/adapter/postgres/reimbursement"
	"github.com/heartmarshall/expensio-backend/internal/auth"
	"github.com/heartmarshall/expensio-backend/internal/config"
	"github.com/heartmarshall/expensio-backend/internal/service/budget"
	"github.com/heartmarshall/expensio-backend/internal/service/expense"
	"github.com/heartmarshall/expensio-backend/internal/service/reimbursement"
	"github.com/heartmarshall/expensio-backend/internal/service/report"
	"github.com/heartmarshall/expensio-backend/internal/transport/middleware"
	"github.com/heartmarshall/expensio-backend/internal/transport/rest"
)

// notifier is the outbound notification dependency shared by the services.
type notifier interface {
	NotifyUser(ctx context.Context, employeeID, message string) error
	NotifyRole(ctx context.Context, role, message string) error
}

// Run wires the whole backend together and serves HTTP until ctx is
// cancelled. It owns the lifecycle of every adapter it opens.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := NewLogger(cfg.Log)
	log.Info("starting expensio backend",
		"version", Version,
		"commit", Commit,
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	budgetRepo := budgetrepo.New(pool)
	categoryRepo := categoryrepo.New(pool)
	expenseRepo := expenserepo.New(pool)
	reimbursementRepo := reimbursementrepo.New(pool)

	var notify notifier
	if cfg.AMQP.Disabled {
		log.Info("amqp disabled, notifications are a no-op")
		notify = amqp.NopNotifier{}
	} else {
		client, err := amqp.NewClient(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue)
		if err != nil {
			return fmt.Errorf("connect amqp: %w", err)
		}
		defer client.Close()
		notify = client
	}

	budgetSvc := budget.NewService(log, budgetRepo, categoryRepo, txManager, budget.WindowPolicy{
		Enforce:  cfg.Budget.EnforceSetWindow,
		Location: cfg.SetWindowLocation(),
	})
	expenseSvc := expense.NewService(log, expenseRepo, categoryRepo, budgetSvc, txManager, notify)
	reimbursementSvc := reimbursement.NewService(log, reimbursementRepo, expenseRepo, txManager, notify)
	reportSvc := report.NewService(log, budgetRepo)

	router := rest.NewRouter(rest.RouterDeps{
		Health:         rest.NewHealthHandler(pool, Version),
		Categories:     rest.NewCategoryHandler(categoryRepo, log),
		Budgets:        rest.NewBudgetHandler(budgetSvc, reportSvc, log),
		Expenses:       rest.NewExpenseHandler(expenseSvc, log),
		Reimbursements: rest.NewReimbursementHandler(reimbursementSvc, log),
	})

	verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
	mws := []middleware.Middleware{
		middleware.Recovery(log),
		middleware.RequestID,
		middleware.Logger(log),
		middleware.CORS(cfg.CORS),
	}
	if cfg.Server.RateLimitPerMinute > 0 {
		limiter := middleware.NewRateLimiter(5 * time.Minute)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.Server.RateLimitPerMinute))
	}
	mws = append(mws, middleware.Auth(verifier))
	handler := middleware.Chain(mws...)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}
