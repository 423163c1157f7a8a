// Command seeder populates the spend-category directory. Categories are
// read-only at runtime, so this is the only writer for that table. It is
// intended to be run once per environment, not as part of the main server.
//
// Flags:
//
//	--categories  comma-separated category names (default: the standard set)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/expensio-backend/internal/adapter/postgres"
	"github.com/heartmarshall/expensio-backend/internal/adapter/postgres/category"
	"github.com/heartmarshall/expensio-backend/internal/app"
	"github.com/heartmarshall/expensio-backend/internal/config"
	"github.com/heartmarshall/expensio-backend/internal/domain"
)

var defaultCategories = []string{
	"Travel",
	"Food",
	"Office Supplies",
	"Training",
	"Software",
	"Miscellaneous",
}

func main() {
	categoriesFlag := flag.String("categories", "", "comma-separated category names (default: the standard set)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	names := defaultCategories
	if *categoriesFlag != "" {
		names = nil
		for _, name := range strings.Split(*categoriesFlag, ",") {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				names = append(names, trimmed)
			}
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	categoryRepo := category.New(pool)

	var created, skipped int
	for _, name := range names {
		_, err := categoryRepo.Create(ctx, name)
		switch {
		case err == nil:
			created++
		case errors.Is(err, domain.ErrAlreadyExists):
			skipped++
		default:
			logger.Error("create category",
				slog.String("name", name),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}

	logger.Info("seeding complete",
		slog.Int("created", created),
		slog.Int("skipped", skipped),
	)
}
