package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"webgui-server/internal/browser"
	"webgui-server/internal/metrics"
	"webgui-server/internal/server"
)

func main() {
	dir := flag.String("dir", "", "directory to serve (default: the executable's directory)")
	noBrowser := flag.Bool("no-browser", false, "do not open the default browser on startup")
	flag.Parse()

	// Resolve the port from the optional positional argument
	port := server.DefaultPort
	if arg := flag.Arg(0); arg != "" {
		p, err := server.ParsePort(arg)
		if err != nil {
			log.Printf("❌ Invalid port number: %s", arg)
			log.Fatalf("Usage: %s [flags] [port]", os.Args[0])
		}
		port = p
	}

	// Resolve the asset directory
	baseDir := *dir
	if baseDir == "" {
		d, err := server.DefaultAssetDir()
		if err != nil {
			log.Fatalf("❌ Could not resolve asset directory: %v", err)
		}
		baseDir = d
	}
	absDir, err := filepath.Abs(baseDir)
	if err != nil {
		log.Fatalf("❌ Could not resolve asset directory: %v", err)
	}

	log.Println("🚀 Starting Web GUI server")
	log.Printf("📁 Serving from: %s", absDir)
	log.Printf("🌐 Port: %d", port)

	// Initialize metrics
	metricsInstance := metrics.NewMetrics()

	srv, err := server.New(server.Config{Port: port, Dir: absDir}, metricsInstance)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	if err := srv.Listen(); err != nil {
		if errors.Is(err, server.ErrPortInUse) {
			log.Printf("❌ Port %d is already in use", port)
			log.Fatal("Try a different port or stop the existing server")
		}
		log.Fatalf("❌ Server error: %v", err)
	}

	log.Printf("✅ Server running at: %s", srv.URL())
	log.Printf("🔗 Open in browser: %s", srv.URL())
	log.Println("Press Ctrl+C to stop the server")

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve()
	}()

	if !*noBrowser {
		if err := browser.Open(srv.URL()); err != nil {
			log.Printf("⚠️  Could not open browser automatically: %v", err)
			log.Printf("   Please open %s manually", srv.URL())
		} else {
			log.Println("🌐 Browser opened automatically")
		}
	}

	select {
	case <-sigChan:
		log.Println("🛑 Server stopped by user")
		if err := srv.Close(); err != nil {
			log.Printf("error closing server: %v", err)
		}
		snapshot := metricsInstance.GetSnapshot()
		log.Printf("served %d requests (%d not found, %d bytes)",
			snapshot["total_requests"], snapshot["not_found_requests"], snapshot["bytes_sent"])
	case err := <-serveErr:
		if err != nil {
			log.Fatalf("❌ Server error: %v", err)
		}
	}
}
