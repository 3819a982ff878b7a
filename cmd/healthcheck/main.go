// The healthcheck binary probes a running server's status endpoint.
// It exits 0 when the server reports a healthy status and 1 otherwise,
// which makes it usable directly as a pipeline or container health probe.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/avdorokhov/devops-demo/internal/client"
	"github.com/avdorokhov/devops-demo/internal/logger"
	"github.com/avdorokhov/devops-demo/models"
)

func main() {
	os.Exit(run())
}

func run() int {
	var baseURL string
	var timeout time.Duration

	flag.StringVar(&baseURL, "url", "http://localhost:8080", "Server base URL")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "Request timeout (e.g., 5s, 1m)")
	flag.Parse()

	log := logger.NewLogger("healthcheck", false)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	status, err := client.NewStatusClient(baseURL).Fetch(ctx)
	if err != nil {
		log.Err(err).Str("url", baseURL).Msg("error fetching status")
		return 1
	}

	if status.Status != models.StatusHealthy {
		log.Error().Str("status", status.Status).Msg("server is not healthy")
		return 1
	}

	log.Info().
		Str("version", status.Version).
		Str("environment", status.Environment).
		Msg("server is healthy")

	return 0
}
