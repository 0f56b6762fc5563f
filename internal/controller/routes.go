package controller

import (
	"github.com/benbeisheim/hotseat-chess/internal/middleware"
	"github.com/benbeisheim/hotseat-chess/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type RouteConfig struct {
	ReadBufferSize  int
	WriteBufferSize int
	Origins         []string
}

func RegisterRoutes(app *fiber.App, gameService *service.GameService, cfg RouteConfig) {
	gameController := NewGameController(gameService)
	wsController := NewWebSocketController(gameService)

	// Set up WebSocket routes
	app.Get("/ws/game/:gameId",
		middleware.EnsureClientID(),
		middleware.WebSocketUpgrade(),
		websocket.New(wsController.HandleConnection, websocket.Config{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			Origins:         cfg.Origins,
		}),
	)

	// Set up REST routes
	api := app.Group("/api", middleware.EnsureClientID())

	// Game routes
	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Delete("/:gameId", gameController.DeleteGame)
	gameRoutes.Get("/:gameId/moves", gameController.GetMoves)
	gameRoutes.Post("/:gameId/start", gameController.StartGame)
	gameRoutes.Post("/:gameId/reset", gameController.ResetGame)
	gameRoutes.Post("/:gameId/select", gameController.SelectSquare)
}
