package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/pointdeck/pointdeck/cliparse"
	"github.com/pointdeck/pointdeck/middleware"
	"github.com/pointdeck/pointdeck/router"
	"github.com/pointdeck/pointdeck/session"
	"github.com/pointdeck/pointdeck/store"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Room store owns all state and its own background sweeper
	st := store.New(store.Options{
		MaxLifetime:   cfg.MaxLifetime,
		IdleLimit:     cfg.IdleLimit,
		SweepInterval: cfg.SweepInterval,
	})
	defer st.Close()

	sess := session.New(st)

	// Budget of 5 req/s with a burst of 10 per client on the rate-limited
	// routes (room creation and joins)
	rl := middleware.NewRateLimiter(rate.Limit(5), 10, 2*time.Minute)
	defer rl.Stop()

	mux := router.NewRouter(sess, rl)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
