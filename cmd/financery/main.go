package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"financery/internal/api"
	"financery/internal/config"
	"financery/internal/log"
	"financery/internal/store"
	"financery/internal/ui"
	"financery/internal/workflow"
)

func main() {
	// .env file is optional
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns stdout, so logs go to a file.
	logger, closer, err := log.NewFile(cfg.LogFile, log.ParseLevel(cfg.LogLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	logger.Info("starting financery",
		log.FieldOperation, log.OpStartup,
		"api_url", cfg.APIBaseURL,
		"timeout", cfg.HTTPTimeout.String())

	client := api.New(cfg.APIBaseURL, cfg.HTTPTimeout, logger)
	st := store.New()
	form := workflow.New(client, st, logger,
		workflow.WithNotify(func(err error) {
			logger.Warn("workflow alert", log.FieldError, err.Error())
		}))

	program := tea.NewProgram(ui.New(client, st, form, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("program failed", log.FieldError, err.Error())
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("stopped", log.FieldOperation, log.OpShutdown)
}
