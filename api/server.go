package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

// Serve listens on the configured address until SIGINT or SIGTERM.
func (app *Application) Serve() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return app.run(ctx)
}

// run serves until ctx is done, then shuts the server down gracefully.
func (app *Application) run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         app.Config.Addr,
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  app.Config.ReadTimeout,
		WriteTimeout: app.Config.WriteTimeout,
	}
	shutdownErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
		case <-done:
			return
		}
		log.Printf("shutting down server %v", app.Config.Addr)

		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		shutdownErr <- srv.Shutdown(sctx)
	}()

	log.Printf("starting server on %v", app.Config.Addr)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownErr
	if err != nil {
		return err
	}

	log.Printf("stopped server %v", app.Config.Addr)

	return nil
}
