// Package serve implements a stand-in for the FastLogin service API, so the
// dashboard can be developed and demoed without the real thing. It serves
// the same envelope and field names, with counters that actually move as
// requests come in.
package serve

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/easilogin/easidesk/internal/config"
	"github.com/easilogin/easidesk/internal/logger"
)

// Server is the stub HTTP server.
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	store      *Store
	cfg        config.ServeConfig
	log        logger.Logger
}

// NewServer creates a stub server backed by the given store.
func NewServer(store *Store, cfg config.ServeConfig, log logger.Logger) *Server {
	s := &Server{
		router: chi.NewRouter(),
		store:  store,
		cfg:    cfg,
		log:    log,
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures the HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Use(middleware.RealIP)
	s.router.Use(s.countRequests)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/metrics", s.handleMetrics)
	s.router.Get("/getData/SSOLOGIN", s.handleAccountList)
	s.router.Get("/getData/SSOLOGIN/{userid}", s.handleLogin)
	s.router.Get("/savedata", s.handleSaveData)
}

// Router exposes the handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// countRequests feeds every request into the per-minute ring buckets, so a
// dashboard pointed at the stub shows live-moving numbers.
func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.store.Record()
		next.ServeHTTP(w, r)
	})
}

// envelope is the service's standard response wrapper.
type envelope struct {
	Message    string      `json:"message"`
	StatusCode string      `json:"statusCode"`
	Data       interface{} `json:"data,omitempty"`
}

// metricsPayload mirrors the real service's /metrics data object, including
// fields the dashboard ignores.
type metricsPayload struct {
	Service       servicePayload `json:"service"`
	AccountsTotal int            `json:"accounts_total"`
	CachedLogins  int            `json:"cached_logins"`
	Requests24h   int            `json:"requests_24h"`
	ActiveTokens  int            `json:"active_tokens"`
	InvalidTokens int            `json:"invalid_tokens"`
	Requests5m    int            `json:"requests_5m"`
	UpdatedAt     string         `json:"updated_at"`
	Logs          []logPayload   `json:"logs"`
}

type servicePayload struct {
	Running bool   `json:"running"`
	Address string `json:"address"`
	Port    int    `json:"port"`
}

type logPayload struct {
	Text  string `json:"text"`
	Time  string `json:"time"`
	Level string `json:"level"`
}

type accountPayload struct {
	Nickname string `json:"pt_nickname"`
	AppID    string `json:"pt_appid"`
	UserID   string `json:"pt_userid"`
	Username string `json:"pt_username"`
	PhotoURL string `json:"pt_photourl"`
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	m := s.store.Metrics()

	logs := make([]logPayload, len(m.Logs))
	for i, l := range m.Logs {
		logs[i] = logPayload{Text: l.Text, Time: l.Time, Level: l.Level}
	}

	s.writeJSON(w, http.StatusOK, envelope{
		Message:    "success",
		StatusCode: "200",
		Data: metricsPayload{
			Service: servicePayload{
				Running: true,
				Address: s.cfg.Addr,
				Port:    s.cfg.Port,
			},
			AccountsTotal: m.AccountsTotal,
			CachedLogins:  m.CachedLogins,
			Requests24h:   m.Requests24h,
			ActiveTokens:  m.ActiveTokens,
			Requests5m:    m.Requests5m,
			UpdatedAt:     m.UpdatedAt,
			Logs:          logs,
		},
	})
}

func (s *Server) handleAccountList(w http.ResponseWriter, r *http.Request) {
	accounts := s.store.Accounts()

	data := make([]accountPayload, len(accounts))
	for i, a := range accounts {
		data[i] = accountPayload{
			Nickname: a.Nickname,
			AppID:    a.UserID,
			UserID:   a.UserID,
			Username: a.RealName,
			PhotoURL: a.PhotoURL,
		}
	}

	s.writeJSON(w, http.StatusOK, envelope{Message: "success", StatusCode: "200", Data: data})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userid")

	if !s.store.RecordLogin(userID) {
		s.writeJSON(w, http.StatusNotFound, envelope{Message: "user_not_found", StatusCode: "404"})
		return
	}

	s.writeJSON(w, http.StatusOK, envelope{Message: "success", StatusCode: "200"})
}

func (s *Server) handleSaveData(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, envelope{Message: "success", StatusCode: "200"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response: %v", err)
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Addr, s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.log.Info("stub API listening on http://%s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
