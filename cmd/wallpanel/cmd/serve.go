package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/piwi3910/WallPanel/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the layout planner over HTTP",
	Long: `Run the JSON API. Endpoints:
  GET  /healthz             liveness probe
  POST /api/layout          layout request in, layout result out
  POST /api/layout/csv      cut list as CSV
  POST /api/layout/xlsx     workbook
  POST /api/layout/chart    efficiency chart as HTML

Request fields that are omitted take the defaults from the settings file.

Examples:
  wallpanel serve
  wallpanel serve --addr :9090
  curl -d '{"wall":{"width":4800,"height":2700}}' localhost:8080/api/layout`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from settings, :8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := serveAddr
	if addr == "" {
		addr = cfg.ServerAddr
	}
	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg).Run(ctx, addr)
}
