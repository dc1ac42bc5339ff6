// Package http provides the local preview server for the generated site.
package http

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server serves a generated site directory as static files.
type Server struct {
	Addr string
	Dir  string

	srv *http.Server
	ln  net.Listener
}

// NewServer creates a preview server for the given site directory.
func NewServer(addr, dir string) *Server {
	return &Server{Addr: addr, Dir: dir}
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Handle("/*", http.FileServer(http.Dir(s.Dir)))
	return r
}

// Open begins listening. The returned address is the bound address, which
// differs from Addr when the port was 0.
func (s *Server) Open() (string, error) {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return "", err
	}
	s.ln = ln
	s.srv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Serve returns http.ErrServerClosed after Close; nothing to report.
	go func() { _ = s.srv.Serve(ln) }()

	return ln.Addr().String(), nil
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	if s.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
