package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/budgetwise/internal/cli"
	"github.com/alexanderramin/budgetwise/internal/config"
	"github.com/alexanderramin/budgetwise/internal/db"
	"github.com/alexanderramin/budgetwise/internal/metrics"
	"github.com/alexanderramin/budgetwise/internal/repository"
	"github.com/alexanderramin/budgetwise/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.Log.UseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	var recorder metrics.Recorder = metrics.Nop{}
	if cfg.Metrics.Textfile != "" {
		recorder = metrics.NewTextfile(cfg.Metrics.Textfile)
	}

	itemRepo := repository.NewSQLiteItemRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Items:  service.NewItemService(itemRepo, observer),
		Import: service.NewImportService(uow, observer),
		Allocation: service.NewAllocationService(itemRepo, service.AllocationConfig{
			NodeLimit: cfg.Solver.NodeLimit,
			Metrics:   recorder,
		}, observer),
		DefaultEmergencyType: cfg.Emergency.DefaultType,
	}

	// Prompts need a terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
