package app

import (
	"fragma/internal/domain"
	"fragma/internal/relay"
	emittersvc "fragma/internal/services/emitter"
	receiversvc "fragma/internal/services/receiver"
	"fragma/internal/store"
)

// Wire bundles the store, relay client and services for the CLI.
type Wire struct {
	Config   Config
	Store    domain.StateStore
	Relay    *relay.HTTP
	Emitter  *emittersvc.Service
	Receiver *receiversvc.Service
}

// NewWire constructs the dependency graph from cfg. Emitter and Receiver are
// nil when no relay URL is configured; provisioning and status work offline.
func NewWire(cfg Config) (*Wire, error) {
	fileStore := store.NewFileStore(cfg.Home)

	w := &Wire{
		Config: cfg,
		Store:  fileStore,
	}
	if cfg.RelayURL != "" {
		w.Relay = relay.NewHTTP(cfg.RelayURL)
		w.Emitter = emittersvc.New(fileStore, w.Relay, cfg.Channel)
		w.Receiver = receiversvc.New(fileStore, w.Relay, cfg.Channel, cfg.WindowSize)
	}
	return w, nil
}
