package relay

import (
	"io"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// MaxFragmentBytes bounds what the relay will queue per fragment. Fragments
// are small fixed-length strings; anything larger is not protocol traffic.
const MaxFragmentBytes = 1024

// Server keeps an in-memory FIFO of fragments per channel.
type Server struct {
	log zerolog.Logger

	mu     sync.Mutex
	queues map[string][][]byte
}

// NewServer returns a relay server logging through log.
func NewServer(log zerolog.Logger) *Server {
	return &Server{
		log:    log,
		queues: make(map[string][][]byte),
	}
}

// Router mounts the relay routes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.health)
	r.Post("/channel/{channel}", s.push)
	r.Get("/channel/{channel}", s.pull)
	return r
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) push(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	channel := chi.URLParam(r, "channel")

	frag, err := io.ReadAll(io.LimitReader(r.Body, MaxFragmentBytes+1))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(frag) == 0 || len(frag) > MaxFragmentBytes {
		http.Error(w, "fragment size out of range", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.queues[channel] = append(s.queues[channel], frag)
	depth := len(s.queues[channel])
	s.mu.Unlock()

	s.log.Debug().Str("channel", channel).Int("bytes", len(frag)).Int("depth", depth).Msg("fragment queued")
	w.WriteHeader(http.StatusOK)
}

func (s *Server) pull(w http.ResponseWriter, r *http.Request) {
	channel := chi.URLParam(r, "channel")

	s.mu.Lock()
	q := s.queues[channel]
	var frag []byte
	if len(q) > 0 {
		frag = q[0]
		s.queues[channel] = q[1:]
	}
	s.mu.Unlock()

	if frag == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	s.log.Debug().Str("channel", channel).Int("bytes", len(frag)).Msg("fragment delivered")
	w.Header().Set("Content-Type", "application/octet-stream")
	_, _ = w.Write(frag)
}
