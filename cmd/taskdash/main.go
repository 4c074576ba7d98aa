package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskdash/internal/assist"
	"github.com/sandeepkv93/taskdash/internal/config"
	"github.com/sandeepkv93/taskdash/internal/storage"
	"github.com/sandeepkv93/taskdash/internal/store"
	"github.com/sandeepkv93/taskdash/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "taskdash failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dir, err := appDir()
	if err != nil {
		return err
	}

	cfg, err := config.LoadOrCreate(filepath.Join(dir, config.DefaultConfigFileName))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPath := cfg.DBPath
	if !filepath.IsAbs(dbPath) {
		dbPath = filepath.Join(dir, dbPath)
	}
	repo, err := storage.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer repo.Close()

	s := store.New(repo)
	s.Load(context.Background())

	apiKey := config.APIKey()
	parser := assist.NewGeminiParser(apiKey, assist.WithModel(cfg.GeminiModel))

	m := update.NewModel(s, parser, cfg.Keys)
	m.AssistReady = apiKey != ""

	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

func appDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	dir := filepath.Join(base, "taskdash")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	return dir, nil
}
