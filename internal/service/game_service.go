package service

import (
	"fmt"

	"github.com/benbeisheim/hotseat-chess/internal/model"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame() (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	return gameID, nil
}

func (gs *GameService) DeleteGame(gameID string) error {
	return gs.gameManager.DeleteGame(gameID)
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.GetState(), nil
}

func (gs *GameService) StartGame(gameID string) (model.GameState, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.Start(), nil
}

func (gs *GameService) ResetGame(gameID string) (model.GameState, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.Reset(), nil
}

func (gs *GameService) SelectSquare(gameID string, pos model.Position) (model.GameState, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.SelectSquare(pos), nil
}

// MoveLog renders the game's move history for display.
func (gs *GameService) MoveLog(gameID string) ([]string, error) {
	state, err := gs.GetGameState(gameID)
	if err != nil {
		return nil, err
	}
	moves := make([]string, 0, len(state.Moves))
	for i, move := range state.Moves {
		moves = append(moves, fmt.Sprintf("%d. %s", i+1, move))
	}
	return moves, nil
}

func (gs *GameService) RegisterConnection(gameID string, clientID string, sub model.Subscriber) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(clientID, sub)
}

func (gs *GameService) UnregisterConnection(gameID string, clientID string) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(clientID)
}
