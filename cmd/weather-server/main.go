// cmd/weather-server/main.go
// MCP server exposing weather lookup tools backed by the Open-Meteo API.
package main

import (
	"os"

	"weather-mcp/internal/appconfig"
	"weather-mcp/internal/logger"
	"weather-mcp/pkg/mcp"
	"weather-mcp/pkg/openmeteo"
	"weather-mcp/pkg/weather"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	serverName    = "weather-mcp"
	serverVersion = "1.0.0"
)

var (
	configPath string
	listenAddr string
)

var rootCmd = &cobra.Command{
	Use:   "weather-server",
	Short: "MCP server for weather lookups via Open-Meteo",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := appconfig.Load(configPath)
		if err != nil {
			return err
		}
		if listenAddr != "" {
			cfg.ListenAddr = listenAddr
		}
		logger.Setup(cfg.Debug)

		client := openmeteo.NewClient(cfg.ProviderURL, cfg.Timezone, cfg.RequestTimeout())
		service := weather.NewService(client, openmeteo.Location{
			Latitude:  cfg.Latitude,
			Longitude: cfg.Longitude,
		})

		server := mcp.NewServer(serverName, serverVersion, cfg.RequestTimeout())
		if err := server.RegisterTools(service.Registrations()); err != nil {
			return err
		}

		return server.ListenAndServe(cfg.ListenAddr)
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to the config file")
	rootCmd.Flags().StringVar(&listenAddr, "listen", "", "listen address, overrides the configured value")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Errorf("weather-server: %v", err)
		os.Exit(1)
	}
}
