// Package httpapi serves the batch interface over HTTP and websockets.
package httpapi

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/acherm/agentic-chessengine-latex-TeXCCChess/internal/game"
)

// maxRequestBytes bounds a request body or websocket message.
const maxRequestBytes = 1 << 20

// Server routes play requests to game.Play.
type Server struct {
	router    *mux.Router
	upgrader  websocket.Upgrader
	snapshots game.SnapshotStore
	log       zerolog.Logger
}

// NewServer builds the router. snapshots may be nil. Access logs are written
// to accessLog in Apache combined format when it is non-nil.
func NewServer(snapshots game.SnapshotStore, log zerolog.Logger, accessLog io.Writer) *Server {
	s := &Server{
		router:    mux.NewRouter(),
		snapshots: snapshots,
		log:       log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}

	if accessLog != nil {
		s.router.Use(func(next http.Handler) http.Handler {
			return handlers.CombinedLoggingHandler(accessLog, next)
		})
	}
	s.router.Use(handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{log})))

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/healthz", s.healthHandler).Methods(http.MethodGet)
	api.HandleFunc("/play", s.playHandler).Methods(http.MethodPost)
	s.router.HandleFunc("/ws", s.wsHandler)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) play(req game.Request) game.Report {
	opts := []game.Option{game.WithLogger(s.log)}
	if s.snapshots != nil {
		opts = append(opts, game.WithSnapshots(s.snapshots))
	}
	rep := game.Play(req, opts...)
	s.log.Info().
		Int("plies", len(req.Moves)).
		Int("level", req.Level).
		Str("status", rep.Status.String()).
		Str("engine_move", rep.EngineMove).
		Str("error_kind", rep.ErrorKind).
		Msg("play")
	return rep
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// playHandler answers POST /api/play. Rejected moves are part of a normal
// report; only an undecodable body is a client error.
func (s *Server) playHandler(w http.ResponseWriter, r *http.Request) {
	var req game.Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, s.play(req))
}

// wsHandler answers each Request message on the socket with a Report.
func (s *Server) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket upgrade")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxRequestBytes)
	s.log.Debug().Str("remote", conn.RemoteAddr().String()).Msg("websocket connected")

	for {
		var req game.Request
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Warn().Err(err).Msg("websocket read")
			}
			return
		}
		if err := conn.WriteJSON(s.play(req)); err != nil {
			s.log.Warn().Err(err).Msg("websocket write")
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// recoveryLogger adapts zerolog to handlers.RecoveryHandlerLogger.
type recoveryLogger struct {
	log zerolog.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.log.Error().Interface("panic", v).Msg("handler panic")
}
