// Command function runs the Chat function locally under the Functions
// Framework, the same way Cloud Functions serves it.
package main

import (
	"log"
	"os"

	_ "quickchat"
	"quickchat/config"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
)

func main() {
	cfg := config.LoadConfig()

	// With a target set the framework serves the function on every path, which
	// the router needs.
	if os.Getenv("FUNCTION_TARGET") == "" {
		os.Setenv("FUNCTION_TARGET", cfg.FunctionTarget)
	}

	port := cfg.AppPort
	if p := os.Getenv("PORT"); p != "" {
		port = p
	}

	log.Printf("Starting function %s on port %s", os.Getenv("FUNCTION_TARGET"), port)
	if err := funcframework.Start(port); err != nil {
		log.Fatalf("funcframework.Start: %v\n", err)
	}
}
