// Package serve runs the HTTP paste form and JSON API
package serve

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"paylist/cmd/root"
	"paylist/internal/generator"
	"paylist/internal/logging"
	"paylist/internal/server"
)

var (
	host string
	port int
)

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the paste form and transfer-list API over HTTP",
	Long: `Serve starts an HTTP server with a paste form for the invoice and
business-trip tables, a JSON preview endpoint and a transfer-file download
endpoint.`,
	Run: serveFunc,
}

func init() {
	Cmd.Flags().StringVar(&host, "host", "", "Bind address (overrides config)")
	Cmd.Flags().IntVar(&port, "port", 0, "Port (overrides config)")
}

func serveFunc(cmd *cobra.Command, args []string) {
	opts, err := generator.OptionsFromConfig(root.Cfg)
	if err != nil {
		root.Log.Fatalf("Invalid configuration: %v", err)
	}

	bindHost := root.Cfg.Server.Host
	if host != "" {
		bindHost = host
	}
	bindPort := root.Cfg.Server.Port
	if port != 0 {
		bindPort = port
	}

	gen := generator.New(opts, root.Log)
	handler := server.NewHandler(gen, opts.OutputDelimiter, root.Log)

	gin.SetMode(gin.ReleaseMode)
	engine := server.Router(handler, root.Log)

	addr := fmt.Sprintf("%s:%d", bindHost, bindPort)
	root.Log.Info("Server starting", logging.Field{Key: "addr", Value: addr})
	if err := engine.Run(addr); err != nil {
		root.Log.Fatalf("Server failed: %v", err)
	}
}
