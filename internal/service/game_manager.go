// service/game_manager.go
package service

import (
	"errors"
	"sync"

	"github.com/benbeisheim/hotseat-chess/internal/model"
	"github.com/gofiber/fiber/v2/log"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
)

type GameManager struct {
	games map[string]*model.Game
	mu    sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		games: make(map[string]*model.Game),
	}
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return ErrGameExists
	}

	gm.games[gameID] = model.NewGame(gameID)
	log.Infof("created game %s", gameID)
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}

	return game, nil
}

func (gm *GameManager) DeleteGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; !exists {
		return ErrGameNotFound
	}
	delete(gm.games, gameID)
	log.Infof("deleted game %s", gameID)
	return nil
}

func (gm *GameManager) GameCount() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}
