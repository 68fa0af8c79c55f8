package tracesnap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/theoremus-urban-solutions/tracesnap/config"
	"github.com/theoremus-urban-solutions/tracesnap/internal"
)

var (
	server *http.Server
)

// NewRouter returns the API routes. workers is passed to every matcher;
// 0 means one per CPU.
func NewRouter(workers int) *mux.Router {
	h := newSnapHandler(workers)
	r := mux.NewRouter()
	r.HandleFunc("/api/health", handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/snap", h.handleSnap).Methods(http.MethodPost)
	return r
}

// StartServer starts listening in the background on the configured port.
func StartServer(cfg config.AppConfig) {
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server = &http.Server{
		Addr:              addr,
		Handler:           NewRouter(cfg.Snap.Workers),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			internal.Errorf("server error: %v", err)
			os.Exit(1)
		}
	}()
	internal.Infof("server listening on %s", addr)
}

// HandleGracefulShutdown blocks until SIGINT or SIGTERM and then shuts the
// server down.
func HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	internal.Infof("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			internal.Errorf("server shutdown error: %v", err)
		} else {
			internal.Infof("server shut down successfully")
		}
	}
}
