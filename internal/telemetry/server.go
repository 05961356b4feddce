package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Server is the optional telemetry listener.
type Server struct {
	Hub *Hub

	srv *http.Server
	ln  net.Listener
}

// NewServer prepares a server for addr (for example "127.0.0.1:8090"). Nothing listens until Start.
func NewServer(addr string, hub *Hub) *Server {
	return &Server{
		Hub: hub,
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(hub),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start binds the address and serves in the background. Bind errors are returned;
// later serve errors go to the hub's log.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("telemetry listen %s: %w", s.srv.Addr, err)
	}
	s.ln = ln
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Hub.logf("[telemetry] serve error: %v", err)
		}
	}()
	return nil
}

// Addr returns the bound address, or the configured one before Start.
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.srv.Addr
}

// Shutdown disconnects websocket clients and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	s.Hub.closeAll()
	if s.ln == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
