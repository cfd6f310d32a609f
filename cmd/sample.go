package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/dunossauro/dunoslide"
	"github.com/dunossauro/dunoslide/config"
	"github.com/dunossauro/dunoslide/server"
	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "serve the built-in sample presentation",
	Long:  `serve the built-in sample presentation.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
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
		return serve(ctx, cmd, cfg, server.FromBytes(e, dunoslide.Sample, dunoslide.FormatTOML), e, logger)
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
	addServeFlags(sampleCmd)
}
