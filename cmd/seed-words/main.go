// Command seed-words loads a sample vocabulary graph into the database so
// the traversal endpoints have something to walk during local development.
// Safe to re-run: existing words and relations are kept.
package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"github.com/lexigraph/lexigraph/domain/relations"
	"github.com/lexigraph/lexigraph/domain/words"
	"github.com/lexigraph/lexigraph/internal/config"
	"github.com/lexigraph/lexigraph/pkg/logger"
)

type seedRelation struct {
	source   string
	target   string
	strength float64
	relType  string
}

var seedWords = []string{
	"happy", "glad", "joyful", "cheerful", "content",
	"sad", "unhappy", "gloomy", "miserable",
	"big", "large", "huge", "enormous",
	"small", "little", "tiny",
	"fast", "quick", "rapid", "slow",
}

var seedRelations = []seedRelation{
	{"happy", "glad", 0.9, "synonym"},
	{"happy", "joyful", 0.85, "synonym"},
	{"happy", "cheerful", 0.8, "synonym"},
	{"glad", "content", 0.6, "synonym"},
	{"joyful", "cheerful", 0.75, "synonym"},
	{"happy", "sad", 0.95, "antonym"},
	{"sad", "unhappy", 0.9, "synonym"},
	{"sad", "gloomy", 0.7, "synonym"},
	{"sad", "miserable", 0.65, "synonym"},
	{"unhappy", "miserable", 0.6, "synonym"},
	{"big", "large", 0.95, "synonym"},
	{"big", "huge", 0.8, "synonym"},
	{"large", "enormous", 0.7, "synonym"},
	{"huge", "enormous", 0.85, "synonym"},
	{"big", "small", 0.95, "antonym"},
	{"small", "little", 0.9, "synonym"},
	{"small", "tiny", 0.8, "synonym"},
	{"little", "tiny", 0.75, "synonym"},
	{"fast", "quick", 0.95, "synonym"},
	{"fast", "rapid", 0.85, "synonym"},
	{"quick", "rapid", 0.8, "synonym"},
	{"fast", "slow", 0.95, "antonym"},
}

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	log := logger.NewLogger().With(logger.Scope("seed-words"))

	cfg, err := config.NewConfig(log)
	if err != nil {
		log.Error("load config", logger.Error(err))
		os.Exit(1)
	}

	pgxCfg, err := pgx.ParseConfig(cfg.Database.DSN())
	if err != nil {
		log.Error("parse database config", logger.Error(err))
		os.Exit(1)
	}
	sqldb := stdlib.OpenDB(*pgxCfg)
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seed(ctx, db, log); err != nil {
		log.Error("seed failed", logger.Error(err))
		os.Exit(1)
	}
	log.Info("seed complete")
}

func seed(ctx context.Context, db *bun.DB, log *slog.Logger) error {
	ids := make(map[string]int64, len(seedWords))

	for _, text := range seedWords {
		normalized := strings.ToLower(strings.TrimSpace(text))
		w := &words.Word{Text: text, NormalizedText: normalized}
		_, err := db.NewInsert().
			Model(w).
			On("CONFLICT (normalized_text) DO UPDATE").
			Set("updated_at = now()").
			Returning("id").
			Exec(ctx)
		if err != nil {
			return err
		}
		ids[text] = w.ID
	}
	log.Info("words seeded", slog.Int("count", len(ids)))

	inserted := 0
	for _, r := range seedRelations {
		relType := r.relType
		rel := &relations.WordRelation{
			SourceWordID: ids[r.source],
			TargetWordID: ids[r.target],
			Strength:     r.strength,
			RelationType: &relType,
		}
		res, err := db.NewInsert().
			Model(rel).
			On("CONFLICT (source_word_id, target_word_id) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}
	log.Info("relations seeded", slog.Int("inserted", inserted), slog.Int("total", len(seedRelations)))
	return nil
}
