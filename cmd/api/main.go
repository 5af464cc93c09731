package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/tranqh/moneypot/internal/config"
	"github.com/tranqh/moneypot/internal/database"
	"github.com/tranqh/moneypot/internal/debt"
	debtStore "github.com/tranqh/moneypot/internal/debt/store"
	"github.com/tranqh/moneypot/internal/event"
	"github.com/tranqh/moneypot/internal/export"
	"github.com/tranqh/moneypot/internal/filedb"
	"github.com/tranqh/moneypot/internal/fund"
	fundStore "github.com/tranqh/moneypot/internal/fund/store"
	moneypotHttp "github.com/tranqh/moneypot/internal/http"
	dashboardHandler "github.com/tranqh/moneypot/internal/http/dashboard"
	debtHandler "github.com/tranqh/moneypot/internal/http/debt"
	exportHandler "github.com/tranqh/moneypot/internal/http/export"
	fundHandler "github.com/tranqh/moneypot/internal/http/fund"
	importHandler "github.com/tranqh/moneypot/internal/http/importcsv"
	txHandler "github.com/tranqh/moneypot/internal/http/transaction"
	"github.com/tranqh/moneypot/internal/importer"
	"github.com/tranqh/moneypot/internal/reconcile"
	reconcileStore "github.com/tranqh/moneypot/internal/reconcile/store"
	"github.com/tranqh/moneypot/internal/transaction"
	txStore "github.com/tranqh/moneypot/internal/transaction/store"
)

type backend struct {
	transactions transaction.Repository
	debts        debt.Repository
	funds        fund.Repository
	committer    reconcile.Committer
	close        func() error
}

func openBackend(cfg *config.Config) (*backend, error) {
	switch cfg.Storage.Backend {
	case "file":
		db, err := filedb.Open(cfg.Storage.DataDir)
		if err != nil {
			if !errors.Is(err, filedb.ErrCorruptData) {
				return nil, err
			}

			// Corrupt files were moved aside; the store is usable.
			slog.Warn("recovered from corrupt data files", "error", err)
		}

		return &backend{
			transactions: filedb.NewTransactionStore(db),
			debts:        filedb.NewDebtStore(db),
			funds:        filedb.NewFundStore(db),
			committer:    filedb.NewCommitter(db),
			close:        func() error { return nil },
		}, nil

	case "postgres":
		db, err := database.New(cfg.ConnectionString())
		if err != nil {
			return nil, err
		}

		return &backend{
			transactions: txStore.New(db),
			debts:        debtStore.New(db),
			funds:        fundStore.New(db),
			committer:    reconcileStore.NewCommitter(db),
			close:        db.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func schedulePolicy(cfg *config.Config) (debt.SchedulePolicy, error) {
	switch cfg.Ledger.ScheduleStep {
	case "fixed30":
		return debt.StepFixed30, nil
	case "calendar":
		return debt.StepCalendarMonth, nil
	default:
		return "", fmt.Errorf("unknown schedule step %q", cfg.Ledger.ScheduleStep)
	}
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	be, err := openBackend(cfg)
	if err != nil {
		slog.Error("failed to open storage backend", "error", err)
		os.Exit(1)
	}
	defer be.close()

	policy, err := schedulePolicy(cfg)
	if err != nil {
		slog.Error("invalid schedule config", "error", err)
		os.Exit(1)
	}

	bus := event.NewBus()
	bus.Subscribe(func(e event.Event) {
		slog.Debug("ledger changed", "kind", e.Kind, "entity", e.EntityID)
	})

	var (
		transactionService = transaction.NewService(be.transactions)
		debtService        = debt.NewService(be.debts, policy)
		fundService        = fund.NewService(be.funds)
		reconcileService   = reconcile.NewService(transactionService, debtService, fundService, be.committer, bus)
		importService      = importer.NewService()
		exportService      = export.NewService(transactionService, debtService)
	)

	var (
		transactionH = txHandler.NewHandler(reconcileService)
		debtH        = debtHandler.NewHandler(reconcileService)
		fundH        = fundHandler.NewHandler(reconcileService)
		dashboardH   = dashboardHandler.NewHandler(reconcileService)
		importH      = importHandler.NewHandler(importService, reconcileService)
		exportH      = exportHandler.NewHandler(exportService)
	)

	router := moneypotHttp.New(transactionH, debtH, fundH, dashboardH, importH, exportH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port, "backend", cfg.Storage.Backend)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
