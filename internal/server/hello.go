package server

import "github.com/gofiber/fiber/v2"

// NewHelloServer answers every request with a plain text greeting.
func NewHelloServer() *fiber.App {
	app := fiber.New(fiber.Config{
		ServerHeader:          "notekeeper",
		AppName:               "notekeeper-hello",
		DisableStartupMessage: true,
	})
	app.Use(func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlain)
		return c.SendString("Hello World")
	})
	return app
}
