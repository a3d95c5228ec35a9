package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/zikim/zikim/internal/config"
	"github.com/zikim/zikim/internal/database"
	"github.com/zikim/zikim/internal/database/repository"
	"github.com/zikim/zikim/internal/draft"
	"github.com/zikim/zikim/internal/issue"
	"github.com/zikim/zikim/internal/llm"
	"github.com/zikim/zikim/internal/logging"
	"github.com/zikim/zikim/internal/service"
	"github.com/zikim/zikim/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Log.Path), 0o755); err != nil {
		log.Fatalf("mkdir log dir: %v", err)
	}
	logger, err := logging.New(cfg.Log.Path)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	addrRepo := repository.NewAddressRepo(db)
	reportRepo := repository.NewReportRepo(db)

	advisor := newAdvisor(cfg, logger)

	addressSvc := &service.AddressService{Addresses: addrRepo, Log: logger}
	issueSvc := &service.IssueService{DB: db, Reports: reportRepo, Log: logger}
	historySvc := &service.HistoryService{Reports: reportRepo}

	app := tui.New(ctx, cfg, draft.NewStore(),
		tui.Repos{Addresses: addrRepo, Reports: reportRepo},
		tui.Services{Address: addressSvc, Issue: issueSvc, History: historySvc},
		advisor, issue.NewScheduler(), logger,
	)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}

// newAdvisor picks the opinion provider: OpenAI when configured with a key,
// otherwise the built-in offline heuristic.
func newAdvisor(cfg config.Config, logger *zap.Logger) llm.Advisor {
	if strings.EqualFold(strings.TrimSpace(cfg.LLM.Provider), "openai") {
		if key := cfg.ResolveAPIKey(); key != "" {
			a, err := llm.NewOpenAIAdvisor(key, cfg.LLM.Model, cfg.LLM.BaseURL)
			if err == nil {
				return a
			}
			logger.Warn("openai advisor unavailable, using heuristic", zap.Error(err))
		}
	}
	return llm.NewHeuristicAdvisor()
}
