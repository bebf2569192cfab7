// Package cmd — serve command.
package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/easyread/api"
	"github.com/gaurav-prasanna/easyread/core/logging"
	"github.com/gaurav-prasanna/easyread/core/rewrite"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the rewrite API over HTTP",
	Long: `Serve exposes POST /api/rewrite, POST /api/rewrite-html and GET /health.

Example:
  easyread serve --addr :8080`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg := api.DefaultConfig()
		cfg.Addr = flagAddr
		log := logging.L()
		return api.NewServer(cfg, rewrite.New(log), log).ListenAndServe(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&flagAddr, "addr", api.DefaultConfig().Addr, "Listen address")
}
