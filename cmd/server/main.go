package main

import (
	"flag"
	"strings"

	"github.com/benbeisheim/hotseat-chess/internal/config"
	"github.com/benbeisheim/hotseat-chess/internal/controller"
	"github.com/benbeisheim/hotseat-chess/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

var (
	cfgPath    = flag.String("config", "", "path to a config file (defaults to the XDG config location)")
	initConfig = flag.Bool("init-config", false, "write the effective config to the XDG config location and exit")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(cfg.Level())

	if *initConfig {
		if err := cfg.Save(); err != nil {
			log.Fatal(err)
		}
		log.Info("config written")
		return
	}

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.Server.AllowOrigins, ", "),
		AllowHeaders:     "Origin, Content-Type, Accept, X-Client-ID",
		AllowMethods:     "GET, POST, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// Initialize services
	gameManager := service.NewGameManager()
	gameService := service.NewGameService(gameManager)

	controller.RegisterRoutes(app, gameService, controller.RouteConfig{
		ReadBufferSize:  cfg.WebSocket.ReadBufferSize,
		WriteBufferSize: cfg.WebSocket.WriteBufferSize,
		Origins:         cfg.Server.AllowOrigins,
	})

	log.Infof("listening on %s", cfg.Server.Addr)
	log.Fatal(app.Listen(cfg.Server.Addr))
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.InitConfig()
}
