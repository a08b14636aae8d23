package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexiusacademia/gosection/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Serve section analysis over HTTP.

Endpoints:
  GET  /api/shapes                  - Catalog of shape kinds
  POST /api/section/properties      - Properties of a section (JSON body)
  POST /api/section/report/{format} - PDF or xlsx report of a section

Requests are rate limited per client (GOSECTION_RATE, GOSECTION_BURST).

Examples:
  gosection serve
  gosection serve --addr :9090`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("addr") {
			cfg.Addr = serveAddr
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		return server.New(cfg).Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from GOSECTION_ADDR or :8080)")
}
