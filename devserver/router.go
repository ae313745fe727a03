package devserver

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/giovan110109-blip/homePageuUni/devserver/internal/recovery"
	"github.com/giovan110109-blip/homePageuUni/devserver/internal/respond"
)

// Server is an in-process implementation of the homepage backend API,
// mounted under /api.
type Server struct {
	router   *mux.Router
	sessions *sessions
	faults   *faults
}

// New builds a server over fx.
func New(fx Fixtures, log zerolog.Logger) *Server {
	s := &Server{
		sessions: newSessions(fx.Accounts),
		faults:   newFaults(),
	}
	s.router = buildRouter(&handlers{fx: fx, sessions: s.sessions}, s.faults, log)
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// FailNext makes the next n requests to path (e.g. "/api/site-info") answer
// with status. n <= 0 clears the fault.
func (s *Server) FailNext(path string, status, n int) { s.faults.add(path, status, n) }

// NewQRToken opens a pending QR login, as the desktop site would.
func (s *Server) NewQRToken() string { return s.sessions.newQR() }

// buildRouter wires HTTP routes to handlers.
func buildRouter(h *handlers, f *faults, log zerolog.Logger) *mux.Router {
	root := mux.NewRouter()
	root.Use(recovery.New(log))
	root.Use(observe(log))

	root.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := root.PathPrefix("/api").Subrouter()
	api.Use(f.middleware)

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respond.WriteOK(w, map[string]string{"status": "healthy", "timestamp": time.Now().Format(time.RFC3339)})
	}).Methods("GET")

	// Content
	api.HandleFunc("/site-info", h.siteInfo).Methods("GET")
	api.HandleFunc("/messages", h.messages).Methods("GET")
	api.HandleFunc("/comments", h.comments).Methods("GET")
	api.HandleFunc("/photos", h.photos).Methods("GET")
	api.HandleFunc("/photos/{id}", h.photoDetail).Methods("GET")

	// Auth
	api.HandleFunc("/auth/wechat-login", h.wechatLogin).Methods("POST")
	api.HandleFunc("/auth/me", h.me).Methods("GET")
	api.HandleFunc("/auth/update-userinfo", h.updateUserInfo).Methods("POST")
	api.HandleFunc("/auth/bind-account", h.bindAccount).Methods("POST")
	api.HandleFunc("/auth/logout", h.logout).Methods("POST")
	api.HandleFunc("/auth/qr-code", h.newQR).Methods("POST")
	api.HandleFunc("/auth/qr-code/{token}", h.qrStatus).Methods("GET")
	api.HandleFunc("/auth/scan-qr", h.scanQR).Methods("POST")
	api.HandleFunc("/auth/confirm-qr", h.confirmQR).Methods("POST")

	api.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond.WriteNotFound(w, "route not found")
	})
	return root
}
