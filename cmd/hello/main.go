// Command hello serves a plain text greeting on every path.
package main

import (
	"notekeeper/internal/config"
	"notekeeper/internal/server"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	cfg := config.Load()
	app := server.NewHelloServer()

	log.Infof("Server running on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("http server error: %v", err)
	}
}
