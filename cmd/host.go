package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dunossauro/dunoslide"
	"github.com/dunossauro/dunoslide/config"
	"github.com/dunossauro/dunoslide/server"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var (
	bind      string
	port      int
	themeName string
	openURL   bool
	watch     bool
)

var hostCmd = &cobra.Command{
	Use:   "host [FILE]",
	Short: "serve a presentation with live reload on every request",
	Long: `serve a presentation with live reload on every request.

The document is read again on every page load, so edits show up on refresh.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := args[0]
		cfg, err := config.Load(profile)
		if err != nil {
			return err
		}
		logger := newLogger()
		e, err := newEngine(cfg, logger, themeName)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if watch {
			w, err := newWatcher(e, f, cmd.OutOrStdout(), logger)
			if err != nil {
				return err
			}
			defer w.Close()
			go w.Run(ctx)
		}
		return serve(ctx, cmd, cfg, server.FromFile(e, f), e, logger)
	},
}

func serve(ctx context.Context, cmd *cobra.Command, cfg *config.Config, src server.Source, e *dunoslide.Engine, logger *slog.Logger) error {
	b, p := listenAddr(cfg, bind, port, cmd.Flags().Changed("bind"), cmd.Flags().Changed("port"))
	srv, err := server.New(e, src, server.WithAddr(b, p), server.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := srv.Start(); err != nil {
		return err
	}
	cmd.Printf("Serving on %s (theme: %s)\n", srv.URL(), srv.Theme().Name)
	if openURL {
		if err := browser.OpenURL(srv.URL()); err != nil {
			logger.Warn("failed to open browser", slog.String("error", err.Error()))
		}
	}
	if err := srv.Serve(ctx); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&bind, "bind", "", server.DefaultBind, "address to bind")
	cmd.Flags().IntVarP(&port, "port", "p", server.DefaultPort, "port to listen on")
	cmd.Flags().StringVarP(&themeName, "theme", "t", "", "theme overriding the one set in the document")
	cmd.Flags().BoolVarP(&openURL, "open", "", false, "open the presentation in a browser")
}

func init() {
	rootCmd.AddCommand(hostCmd)
	addServeFlags(hostCmd)
	hostCmd.Flags().BoolVarP(&watch, "watch", "w", false, "validate the document whenever it is saved")
}
