package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"gameku_backend/internals/configs"
	database "gameku_backend/internals/databases"
	"gameku_backend/internals/features/users/auth/scheduler"
	"gameku_backend/internals/middlewares"
	"gameku_backend/internals/route"
	"gameku_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		AppName:      "gameku_backend",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	})

	app.Use(requestid.New())
	app.Use(compress.New())
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app)

	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	seeds.Run(database.DB)

	stop := make(chan struct{})
	scheduler.StartTokenCleanup(database.DB, time.Hour, stop)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	route.SetupRoutes(app, database.DB)

	port := configs.GetEnv("PORT", "3000")

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("❌ Server stopped: %v", err)
		}
	}()
	log.Printf("✅ Server listening on :%s", port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[INFO] Shutting down...")
	close(stop)
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("❌ Shutdown error: %v", err)
	}
	log.Println("✅ Server stopped cleanly")
}
