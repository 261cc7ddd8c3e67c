package main

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"spikerun/config"
	"spikerun/internal/room"
	"spikerun/logger"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	manager := room.NewManager(cfg.HazardInterval)
	gateway := room.NewGateway(manager)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(cors.New())

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws", websocket.New(gateway.Handle))

	app.Get("/api/rooms", func(c *fiber.Ctx) error {
		return c.JSON(manager.List())
	})

	app.Get("/room/:code", func(c *fiber.Ctx) error {
		r, ok := manager.Get(c.Params("code"))
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "room not found"})
		}
		return c.JSON(r.Snapshot())
	})

	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	log.Info().Str("addr", cfg.Addr).Msg("server listening")
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
