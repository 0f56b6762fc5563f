package controller

import (
	"errors"

	"github.com/benbeisheim/hotseat-chess/internal/model"
	"github.com/benbeisheim/hotseat-chess/internal/service"
	"github.com/benbeisheim/hotseat-chess/internal/ws"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	log.Infof("client %v created game %s", c.Locals("clientID"), gameID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	if err := gc.gameService.DeleteGame(c.Params("gameId")); err != nil {
		return gameError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return gameError(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) StartGame(c *fiber.Ctx) error {
	gameState, err := gc.gameService.StartGame(c.Params("gameId"))
	if err != nil {
		return gameError(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) ResetGame(c *fiber.Ctx) error {
	gameState, err := gc.gameService.ResetGame(c.Params("gameId"))
	if err != nil {
		return gameError(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) SelectSquare(c *fiber.Ctx) error {
	var payload ws.SelectPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid select body",
		})
	}

	gameState, err := gc.gameService.SelectSquare(c.Params("gameId"), model.Position{Row: payload.Row, Col: payload.Col})
	if err != nil {
		return gameError(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) GetMoves(c *fiber.Ctx) error {
	moves, err := gc.gameService.MoveLog(c.Params("gameId"))
	if err != nil {
		return gameError(c, err)
	}
	return c.JSON(moves)
}

func gameError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrGameNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	log.Errorf("request %s %s failed: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Failed to process game request",
	})
}
