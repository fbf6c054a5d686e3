package main

import (
	"database/sql"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/hint-server/internal/config"
	"github.com/robalobadob/wordle/apps/hint-server/internal/db"
	"github.com/robalobadob/wordle/apps/hint-server/internal/httpserver"
	"github.com/robalobadob/wordle/apps/hint-server/internal/store"
	"github.com/robalobadob/wordle/apps/hint-server/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	dict, err := words.Load(cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.WordsFile).Msg("failed to load word list")
	}
	log.Info().Int("words", dict.Len()).Msg("dictionary loaded")

	// Users always live in SQLite; STORE only decides where boards go.
	dsn := cfg.DBPath
	if cfg.Store == "memory" {
		dsn = db.MemoryDSN
	}
	conn, err := db.Open(dsn)
	if err != nil {
		log.Fatal().Err(err).Str("dsn", dsn).Msg("failed to open database")
	}
	defer conn.Close()
	if err := db.Migrate(conn); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	srv := httpserver.New(cfg, dict, pickStore(cfg, conn), conn)
	log.Info().Str("port", cfg.Port).Str("store", cfg.Store).Msg("starting hint-server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func pickStore(cfg config.Config, conn *sql.DB) store.Store {
	if cfg.Store == "memory" {
		return store.NewMemoryStore()
	}
	return store.NewSQLStore(conn)
}
