package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"fragma/internal/relay"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	debug := flag.Bool("debug", false, "log every fragment movement")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Str("app", "fragma-relay").Logger().Level(level)

	srv := relay.NewServer(log)
	log.Info().Str("addr", *addr).Msg("relay listening")
	if err := http.ListenAndServe(*addr, srv.Router()); err != nil {
		log.Fatal().Err(err).Msg("relay stopped")
	}
}
