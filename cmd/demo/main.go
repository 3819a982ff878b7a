// The demo binary is the environment-variant application: it resolves its
// settings from environment variables with fixed defaults and prints a
// short greeting.
package main

import (
	"fmt"
	"os"

	"github.com/avdorokhov/devops-demo/internal/clock"
	"github.com/avdorokhov/devops-demo/internal/config"
	"github.com/avdorokhov/devops-demo/internal/utils"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		return 1
	}

	clk := clock.System()

	fmt.Println("=== Simple Project Demo ===")
	fmt.Printf("Version: %s\n", cfg.Version)
	fmt.Printf("Environment: %s\n", cfg.Environment)
	fmt.Printf("Started at: %s\n", clock.Timestamp(clk))

	message := "Hello from the DevOps Git demo!"
	fmt.Printf("\n%s\n", utils.FormatMessage(message, cfg.MessagePrefix))

	if cfg.Debug {
		fmt.Println("\nDebug info:")
		fmt.Printf("- %s\n", cfg)
		fmt.Println("- Application running: ok")
	}

	return 0
}
