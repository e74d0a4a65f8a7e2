package app

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"shelftrack/config"
	"shelftrack/logger"
	"shelftrack/service"
)

func CLI(args []string) int {
	var app appEnv
	if err := app.fromArgs(args); err != nil {
		fmt.Println(err)
		return 2
	}

	if err := app.run(); err != nil {
		logger.Error("Runtime error", "error", err)
		return 1
	}
	return 0
}

type appEnv struct {
	config *config.Config
	dbPath string
	in     io.Reader
	out    io.Writer
}

func (app *appEnv) fromArgs(args []string) error {
	fl := flag.NewFlagSet("shelftrack", flag.ContinueOnError)

	// Load default config
	cfg := config.Load()

	// CLI flags override environment variables
	dbPath := cfg.Database.Path
	fl.StringVar(&dbPath, "db", cfg.Database.Path, "Path to the bookstore database")

	if err := fl.Parse(args); err != nil {
		fl.Usage()
		return err
	}

	app.config = cfg
	app.dbPath = dbPath
	app.in = os.Stdin
	app.out = os.Stdout

	return nil
}

func (app *appEnv) run() error {
	// Initialize logger
	logger.Init(app.config.LogLevel)

	svc := service.New(app.dbPath)

	ctx := context.Background()
	if err := svc.Setup(ctx); err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}

	newMenu(svc, app.in, app.out).Run(ctx)
	return nil
}
