package server

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"syscall"
	"webgui-server/internal/handler"
	"webgui-server/internal/metrics"
)

// DefaultPort is used when no port argument is given on the command line.
const DefaultPort = 8080

// ErrPortInUse reports that the requested TCP port already has a listener.
var ErrPortInUse = errors.New("port already in use")

// Config carries the settings resolved from the command line.
type Config struct {
	Port int
	Dir  string
}

// Server serves GUI assets from a single directory over HTTP.
type Server struct {
	cfg     Config
	http    *http.Server
	ln      net.Listener
	metrics *metrics.Metrics
}

// New validates the asset directory and assembles a server around it.
func New(cfg Config, m *metrics.Metrics) (*Server, error) {
	info, err := os.Stat(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("asset directory %s: %w", cfg.Dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("asset directory %s: not a directory", cfg.Dir)
	}

	return &Server{
		cfg: cfg,
		http: &http.Server{
			Handler: handler.NewGUIHandler(cfg.Dir, m),
		},
		metrics: m,
	}, nil
}

// Listen claims the configured TCP port. A port that already has a listener
// is reported as ErrPortInUse; port 0 binds an ephemeral port, which Port
// and URL then reflect.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return fmt.Errorf("port %d: %w", s.cfg.Port, ErrPortInUse)
		}
		return fmt.Errorf("bind port %d: %w", s.cfg.Port, err)
	}
	s.ln = ln
	return nil
}

// Serve blocks handling requests on the claimed listener until Close is
// called or the listener fails. A stop initiated by Close reports nil.
func (s *Server) Serve() error {
	if s.ln == nil {
		return errors.New("server is not listening")
	}
	if err := s.http.Serve(s.ln); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close stops the listener and any active connections.
func (s *Server) Close() error {
	return s.http.Close()
}

// Port reports the port the server is bound to. Before Listen this is the
// configured port; after Listen it is the port actually claimed.
func (s *Server) Port() int {
	if s.ln != nil {
		if addr, ok := s.ln.Addr().(*net.TCPAddr); ok {
			return addr.Port
		}
	}
	return s.cfg.Port
}

// URL reports the address to open the GUI at.
func (s *Server) URL() string {
	return fmt.Sprintf("http://localhost:%d", s.Port())
}

// Dir reports the directory assets are served from.
func (s *Server) Dir() string {
	return s.cfg.Dir
}

// Metrics exposes the request counters collected while serving.
func (s *Server) Metrics() *metrics.Metrics {
	return s.metrics
}

// ParsePort converts a command line port argument, accepting only values
// that fit a TCP port.
func ParsePort(arg string) (int, error) {
	port, err := strconv.ParseUint(arg, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid port %q: must be an integer between 0 and 65535", arg)
	}
	return int(port), nil
}

// DefaultAssetDir resolves the directory containing the running executable,
// which is where the GUI assets are deployed alongside the binary.
func DefaultAssetDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}
	return filepath.Dir(resolved), nil
}
