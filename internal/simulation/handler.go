package simulation

import (
	"github.com/gofiber/fiber/v2"

	"ruin-platform/internal/cache"
)

func RegisterRoutes(r fiber.Router, service *Service) {

	r.Post("/sim/run", func(c *fiber.Ctx) error {

		var body RunRequest
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(400)
		}

		run, err := service.Run(body)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(run)
	})

	r.Post("/sim/queue", func(c *fiber.Ctx) error {

		var body RunRequest
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(400)
		}

		if err := service.Enqueue(body); err != nil {
			status := 400
			if err == ErrQueueFull {
				status = 503
			}
			return c.Status(status).JSON(fiber.Map{"error": err.Error()})
		}

		return c.Status(202).JSON(fiber.Map{"status": "queued"})
	})

	r.Get("/sim/runs", func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 20)

		runs, err := service.List(limit)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(runs)
	})

	r.Get("/sim/runs/:id", func(c *fiber.Ctx) error {
		id := c.Params("id")

		if cached, err := cache.Get("run:" + id); err == nil {
			c.Set("Content-Type", "application/json")
			return c.SendString(cached)
		}

		run, err := service.Get(id)
		if err != nil {
			return c.Status(404).JSON(fiber.Map{"error": "not found"})
		}
		return c.JSON(run)
	})

	r.Get("/sim/board", func(c *fiber.Ctx) error {
		n := c.QueryInt("n", 10)
		return c.JSON(service.Board(n))
	})
}

func RegisterAdminRoutes(r fiber.Router, service *Service) {

	r.Post("/seed/rotate", func(c *fiber.Ctx) error {
		retired, newHash := service.RotateSeed()

		return c.JSON(fiber.Map{
			"retired_seed": retired,
			"seed_hash":    newHash,
		})
	})
}
