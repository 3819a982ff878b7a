// The server binary is the file-variant application: it loads its settings
// from a JSON document (degrading to defaults when the file is missing),
// prints a sample processed record and the current status, then serves the
// status over HTTP until interrupted.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/avdorokhov/devops-demo/internal/clock"
	"github.com/avdorokhov/devops-demo/internal/config"
	handlerhttp "github.com/avdorokhov/devops-demo/internal/handler/http"
	"github.com/avdorokhov/devops-demo/internal/logger"
	"github.com/avdorokhov/devops-demo/internal/server"
	"github.com/avdorokhov/devops-demo/internal/service"
	"github.com/avdorokhov/devops-demo/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("demo-server", true)

	if err := run(log); err != nil {
		log.Err(err).Msg("application error")
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	cfg, err := config.GetServerConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	settings := config.LoadFile(cfg.ConfigPath, log)
	if !config.Validate(settings) {
		log.Warn().Msg("settings missing required keys, safe fallbacks apply")
	}

	log.Info().Str("version", settings.Version()).Msg("application initialized")

	if debug, _ := utils.SafeGet(settings, "debug", false).(bool); debug {
		log.Debug().Any("settings", settings).Msg("debug mode enabled")
	}

	clk := clock.System()
	services := service.NewServices(settings, clk, log)

	sample := map[string]any{
		"user_id":   12345,
		"action":    "login",
		"timestamp": clock.Timestamp(clk),
	}
	record := services.ProcessingService.Process(context.Background(), sample)
	if err := printJSON(record); err != nil {
		return err
	}

	status := services.StatusService.GetStatus(context.Background())
	fmt.Print("\nApplication Status: ")
	if err := printJSON(status); err != nil {
		return err
	}

	handlers := handlerhttp.NewHandler(services, log)
	srv := server.NewServer(handlers.Init(), cfg, log)
	srv.RunServer()

	return nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}

	fmt.Println(string(out))
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
