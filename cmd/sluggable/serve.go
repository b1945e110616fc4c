package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sluggable/pkg/slugroute"
)

// Server timeouts.
const (
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20
)

type serveOptions struct {
	addr            string
	shutdownTimeout time.Duration
}

// NewServeCommand serves documents over HTTP.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve documents over HTTP",
		Long: `Serve documents as JSON at GET /{type}/{slug-or-id}.

Old and differently cased slugs are answered with a 301 to the live slug.
GET /livez and GET /readyz report process and dependency health.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(rootOpts, cmd.ErrOrStderr(), slog.LevelInfo)

			rt, err := openRuntime(cmd.Context(), rootOpts, log, requirements{registry: true})
			if err != nil {
				return err
			}
			defer rt.Close()

			return runServer(cmd.Context(), opts, newRouter(rt), log)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().DurationVar(&opts.shutdownTimeout, "shutdown-timeout", 30*time.Second, "graceful shutdown timeout")
	return cmd
}

func newRouter(rt *runtime) http.Handler {
	r := chi.NewRouter()
	r.Use(slugroute.RequestID, slugroute.Recover(rt.log))

	r.Get("/livez", slugroute.Liveness)
	r.Get("/readyz", slugroute.Readiness(rt.checks, rt.log))
	r.Method(http.MethodGet, "/{type}/{slug}", slugroute.Handler(rt.repo, slugroute.WithLogger(rt.log)))

	return r
}

// runServer serves h until ctx is cancelled or SIGINT/SIGTERM arrives, then
// shuts down gracefully.
func runServer(ctx context.Context, opts *serveOptions, h http.Handler, log *slog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	server := &http.Server{
		Handler:           h,
		ReadTimeout:       defaultReadTimeout,
		WriteTimeout:      defaultWriteTimeout,
		IdleTimeout:       defaultIdleTimeout,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		MaxHeaderBytes:    defaultMaxHeaderBytes,
	}

	ln, err := net.Listen("tcp", opts.addr)
	if err != nil {
		return commandError("listen on "+opts.addr, err)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), opts.shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", slog.Any("error", err))
		return err
	}
	log.Info("shutdown completed")
	return nil
}
