package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"time"

	"go-linkedin-jobhunter/internal/browser"
	"go-linkedin-jobhunter/internal/config"
	"go-linkedin-jobhunter/internal/crawler"
	"go-linkedin-jobhunter/internal/export"
	"go-linkedin-jobhunter/internal/reporter"
	"go-linkedin-jobhunter/internal/store"
)

func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	//load config
	cfg, err := config.Load(config.DefaultMappings())
	if err != nil {
		logger.Fatalf("❌ Failed to load config: %v", err)
	}
	logger.Printf("🔧 Config loaded. Keyword: %q, locations: %v, date filter: %s",
		cfg.Keyword, cfg.Locations, cfg.DateFilter)

	//optional telegram run report
	var tg *reporter.TelegramReporter
	if cfg.TelegramToken != "" {
		tg, err = reporter.NewTelegramReporter(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			logger.Fatalf("❌ Failed to init Telegram reporter: %v", err)
		}
		logger.Println("🤖 Telegram reporter initialized")
	}

	//open durable store
	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		logger.Fatalf("❌ Failed to open database: %v", err)
	}
	defer db.Close()

	//setup context: interruptible, bounded to 30 mins
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 30*time.Minute)
	defer cancel()

	logger.Println("🚀 Starting LinkedIn job crawl...")

	//init browser
	mgr, err := browser.NewManager(cfg.Headless)
	if err != nil {
		logger.Fatalf("❌ Failed to init browser: %v", err)
	}
	defer mgr.Close()

	c := crawler.New(cfg, mgr, db, export.NewWriter(cfg.OutputPath, logger), logger)

	result, err := c.Run(ctx)
	if err != nil {
		var authErr *crawler.AuthError
		if errors.As(err, &authErr) {
			if tg != nil {
				_ = tg.SendError(err)
			}
			logger.Fatalf("❌ Run aborted: %v", err)
		}
		logger.Printf("❌ Run finished with error: %v", err)
	}

	if tg != nil && result != nil {
		if err := tg.SendRunSummary(*result); err != nil {
			logger.Printf("⚠️ Failed to send Telegram summary: %v", err)
		}
	}

	logger.Println("🏁 Execution finished.")
}
