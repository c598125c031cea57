package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/tsawler/polarity"
	"github.com/tsawler/polarity/internal/server"
)

func cmdServe() *commander.Command {
	var opts options
	var addr string

	cmd := &commander.Command{
		UsageLine: "serve [-addr :8080] [-model dir]",
		Short:     "serve the classifiers over HTTP",
		Flag:      *flag.NewFlagSet("serve", flag.ExitOnError),
	}
	opts.register(&cmd.Flag)
	cmd.Flag.StringVar(&addr, "addr", envString("POLARITY_ADDR", ":8080"), "listen address")

	cmd.Run = func(cmd *commander.Command, args []string) error {
		log, cfg := opts.setup()
		if !opts.verbose {
			gin.SetMode(gin.ReleaseMode)
		}

		a := polarity.NewAnalyzer()
		m, closeStore, err := opts.loadModel(a, cfg, log)
		if err != nil {
			return err
		}
		defer closeStore()

		classifiers, err := m.Classifiers(opts.tagger(m, a, log))
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              addr,
			Handler:           server.New(classifiers, log).SetupRouter(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errc := make(chan error, 1)
		go func() {
			log.Info("[Server] listening", slog.String("addr", addr))
			errc <- srv.ListenAndServe()
		}()

		select {
		case err := <-errc:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info("[Server] shutting down")
		return srv.Shutdown(shutdownCtx)
	}
	return cmd
}
