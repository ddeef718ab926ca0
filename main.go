package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/stewardhq/steward/src/components"
	configService "github.com/stewardhq/steward/src/config"
	"github.com/stewardhq/steward/src/log"
	"github.com/stewardhq/steward/src/models"
)

const VERSION = "1.0"

func main() {

	if len(os.Args) < 2 {
		fmt.Println("Usage: steward [version|run <name> <port>]")
		return
	}
	action := os.Args[1]

	// Credentials and overrides can live in a .env file next to the
	// binary, convenient during development.
	godotenv.Load()

	switch action {
	case "version":
		fmt.Println("You are currently running Steward " + VERSION)

	case "run":
		{
			if len(os.Args) < 4 {
				fmt.Println("Usage: steward run <name> <port>")
				return
			}
			name := os.Args[2]
			port := os.Args[3]

			// Read the config on start, and pass it to the other
			// functions and features. Please note that this might be
			// changed when saving or updating the configuration through
			// the REST api.
			var configuration models.Configuration
			configuration.Name = name

			configService.OpenConfig(".", &configuration)
			configService.OverrideWithEnvironmentVariables(&configuration)

			// Set timezone and logging.
			timezone, _ := time.LoadLocation(configuration.Config.Timezone)
			if timezone == nil {
				timezone = time.UTC
			}
			logLevel := os.Getenv("LOG_LEVEL")
			if logLevel == "" {
				logLevel = "info"
			}
			log.Log.Init(logLevel, "./data", timezone)

			// Bootstrapping the tools and the REST api.
			var communication models.Communication
			components.Bootstrap(port, &configuration, &communication)
		}
	default:
		fmt.Println("Sorry I don't understand :(")
	}
}
