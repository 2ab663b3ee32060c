// Package serve runs the local development server a live-reload deploy
// points the native app at.
package serve

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	gopsnet "github.com/shirou/gopsutil/v3/net"

	"github.com/nurdun/ionic-cli/internal/project"
	"github.com/nurdun/ionic-cli/internal/ui"
)

// Details describes how a started dev server can be reached.
type Details struct {
	// Protocol is empty when the default (http) applies.
	Protocol        string
	ExternalAddress string
	Port            int

	// Reachable reports whether ExternalAddress is expected to be
	// reachable from the deployment target. Loopback binds are not.
	Reachable bool
}

// Options for one serve session.
type Options struct {
	Address        string
	Port           string
	LivereloadPort string
	DevLoggerPort  string
	ConsoleLogs    bool
	ServerLogs     bool
}

// Server hosts the asset server, the live-reload channel, and the device
// console log sink.
type Server struct {
	project *project.Project

	mu      sync.Mutex
	clients map[string]*websocket.Conn
}

// New creates a Server for the given project.
func New(p *project.Project) *Server {
	return &Server{project: p, clients: make(map[string]*websocket.Conn)}
}

// Serve starts the listeners and returns once they are accepting
// connections. The listeners live until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, opts Options) (Details, error) {
	port, err := strconv.Atoi(opts.Port)
	if err != nil {
		return Details{}, fmt.Errorf("invalid port %q: %w", opts.Port, err)
	}
	for _, p := range []string{opts.Port, opts.LivereloadPort, opts.DevLoggerPort} {
		if err := ensurePortFree(p); err != nil {
			return Details{}, err
		}
	}

	assetMux := http.NewServeMux()
	assetMux.Handle("/", http.FileServer(http.Dir(s.project.AssetDir())))
	if err := s.listen(ctx, opts.Address, opts.Port, assetMux, opts.ServerLogs); err != nil {
		return Details{}, err
	}

	lrMux := http.NewServeMux()
	lrMux.HandleFunc("/__livereload", s.handleLivereload)
	if err := s.listen(ctx, opts.Address, opts.LivereloadPort, lrMux, false); err != nil {
		return Details{}, err
	}

	logMux := http.NewServeMux()
	logMux.HandleFunc("/__console", s.handleConsole(opts.ConsoleLogs))
	if err := s.listen(ctx, opts.Address, opts.DevLoggerPort, logMux, false); err != nil {
		return Details{}, err
	}

	go s.watch(ctx)

	external, reachable := ExternalAddress(opts.Address)
	return Details{ExternalAddress: external, Port: port, Reachable: reachable}, nil
}

// listen binds addr:port and serves handler in the background. Returning
// only after the listener is up lets the caller treat the server as
// confirmed running.
func (s *Server) listen(ctx context.Context, addr, port string, handler http.Handler, logRequests bool) error {
	ln, err := net.Listen("tcp", net.JoinHostPort(addr, port))
	if err != nil {
		return fmt.Errorf("bind %s:%s: %w", addr, port, err)
	}
	if logRequests {
		handler = requestLogger(handler)
	}
	srv := &http.Server{Handler: handler}
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()
	go func() { _ = srv.Serve(ln) }()
	return nil
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ui.Info("serve: " + r.Method + " " + r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

func (s *Server) handleLivereload(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	id := uuid.NewString()
	s.mu.Lock()
	s.clients[id] = conn
	s.mu.Unlock()

	// Close frames are only processed during reads, so keep a discard
	// read loop per connection and unregister when it errors out.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.remove(id)
				return
			}
		}
	}()
}

func (s *Server) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if conn, ok := s.clients[id]; ok {
		_ = conn.Close()
		delete(s.clients, id)
	}
}

// Broadcast tells every connected client to reload.
func (s *Server) Broadcast() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, conn := range s.clients {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"command":"reload"}`)); err != nil {
			_ = conn.Close()
			delete(s.clients, id)
		}
	}
}

func (s *Server) handleConsole(enabled bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, 1<<16))
		if err == nil && enabled && len(body) > 0 {
			fmt.Fprintf(os.Stdout, "[console] %s\n", body)
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ensurePortFree fails fast when another process already listens on port,
// instead of reusing whatever stale server occupies it.
func ensurePortFree(port string) error {
	p, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", port, err)
	}
	conns, err := gopsnet.Connections("tcp")
	if err != nil {
		// Port scan is best effort; bind will still surface a conflict.
		return nil
	}
	for _, c := range conns {
		if c.Status == "LISTEN" && int(c.Laddr.Port) == p {
			return fmt.Errorf("port %d is already in use (pid %d); stop the stale server or pass a different --port", p, c.Pid)
		}
	}
	return nil
}

// ExternalAddress resolves the address a device should use to reach a
// server bound to bind. Loopback binds are never reachable from a device.
func ExternalAddress(bind string) (addr string, reachable bool) {
	ip := net.ParseIP(bind)
	if ip != nil && ip.IsLoopback() {
		return bind, false
	}
	if ip != nil && !ip.IsUnspecified() {
		return bind, true
	}
	// Bind-all: advertise the first global unicast IPv4.
	ifaces, err := net.Interfaces()
	if err == nil {
		for _, iface := range ifaces {
			if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
				continue
			}
			addrs, err := iface.Addrs()
			if err != nil {
				continue
			}
			for _, a := range addrs {
				ipn, ok := a.(*net.IPNet)
				if !ok || ipn.IP.To4() == nil || !ipn.IP.IsGlobalUnicast() {
					continue
				}
				return ipn.IP.String(), true
			}
		}
	}
	return "127.0.0.1", false
}
