package main

import (
	_ "embed"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/tomz197/blimp/internal/config"
	"github.com/tomz197/blimp/internal/logging"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

func main() {
	logger, err := logging.New(logging.Options{
		File:   config.GetEnv("BLIMP_LOG_FILE", ""),
		Level:  config.GetEnv("BLIMP_LOG_LEVEL", "info"),
		Stderr: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")

	addr := net.JoinHostPort(host, port)
	logger.Info("starting web server", zap.String("addr", "http://"+addr), zap.String("sshHost", sshHost))
	if err := http.ListenAndServe(addr, landingPage(sshHost)); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

// landingPage serves the instructions page with the SSH host filled in.
func landingPage(sshHost string) http.Handler {
	page := strings.ReplaceAll(htmlPage, "{{.SSHHost}}", sshHost)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})
}
