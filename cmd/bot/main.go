package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"profitbot/internal/adapters/discord"
	"profitbot/internal/adapters/telegram"
	"profitbot/internal/application"
	"profitbot/internal/config"
	"profitbot/internal/infrastructure/database"
	"profitbot/internal/infrastructure/i18n"
	"profitbot/internal/infrastructure/memory"
	"profitbot/internal/ports/output"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

func main() {
	envFile := pflag.String("env-file", "", "path to a .env file (default: ./.env when present)")
	skipMigrations := pflag.Bool("skip-migrations", false, "do not apply database migrations at startup")
	pflag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var users output.UserRepository
	if cfg.UseDatabase() {
		if !*skipMigrations {
			if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
				log.Fatalf("❌ Database migration failed: %v", err)
			}
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("❌ Database initialization failed: %v", err)
		}
		defer pool.Close()
		users = database.NewUserRepository(pool)
	} else {
		log.Println("⚠️ DATABASE_URL not set, user preferences are kept in memory.")
		users = memory.NewUserRepository()
	}

	catalog, err := i18n.NewCatalog(i18n.Options{
		DefaultLanguage: cfg.DefaultLanguage,
		Rounding:        cfg.RoundingMode,
		LocalesDir:      cfg.LocalesDir,
	})
	if err != nil {
		log.Fatalf("❌ Message catalog error: %v", err)
	}
	profit := application.NewProfitService(users, catalog, cfg.DefaultLanguage)

	g, gctx := errgroup.WithContext(ctx)
	if cfg.DiscordToken != "" {
		bot, err := discord.NewBot(cfg, profit)
		if err != nil {
			log.Fatalf("❌ Discord bot error: %v", err)
		}
		g.Go(func() error { return bot.Start(gctx) })
	}
	if cfg.TelegramToken != "" {
		bot, err := telegram.NewBot(cfg, profit)
		if err != nil {
			log.Fatalf("❌ Telegram bot error: %v", err)
		}
		g.Go(func() error { return bot.Start(gctx) })
	}

	if err := g.Wait(); err != nil {
		log.Printf("❌ Bot stopped with error: %v", err)
		os.Exit(1)
	}
}
