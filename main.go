package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cortado-games/tessera/config"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}

	// expvar counters for long tournament runs.
	go func() {
		if err := http.ListenAndServe("localhost:8088", nil); err != nil {
			log.Debug().Err(err).Msg("debug server not started")
		}
	}()

	sc := newShellController(cfg)
	if cfg.DefaultLexicon != "" {
		if err := sc.loadLexicon(cfg.DefaultLexicon); err != nil {
			log.Warn().Err(err).Msg("default lexicon not loaded")
		}
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go sc.loop(sig)
	<-sig
	log.Info().Msg("bye!")
}
