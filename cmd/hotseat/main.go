package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/benbeisheim/hotseat-chess/internal/config"
	"github.com/benbeisheim/hotseat-chess/internal/model"
	"github.com/benbeisheim/hotseat-chess/internal/render"
	"github.com/gofiber/fiber/v2/log"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	noColor  = flag.Bool("no-color", false, "disable colored output")
	cfgPath  = flag.String("config", "", "path to a config file (defaults to the XDG config location)")
	errQuit  = errors.New("quit")
	helpText = "commands: <square> (e.g. e2) select/move, start, reset, moves, help, quit"
)

func main() {
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		log.Error(err)
		os.Exit(exitErr)
	}
	log.SetLevel(cfg.Level())

	opts := render.Options{
		Color:      cfg.Terminal.Color && !*noColor,
		ShowCoords: cfg.Terminal.ShowCoords,
	}
	if err := run(os.Stdin, os.Stdout, render.NewRenderer(opts)); err != nil {
		log.Error(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.InitConfig()
}

// run drives one local game from line-oriented input until EOF or quit.
func run(in io.Reader, out io.Writer, r *render.Renderer) error {
	game := model.NewGame("local")
	state := game.GetState()
	if err := draw(out, r, state); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		next, err := handleCommand(game, strings.TrimSpace(scanner.Text()), out)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		state = next
		if err := draw(out, r, state); err != nil {
			return err
		}
	}
}

func handleCommand(game *model.Game, cmd string, out io.Writer) (model.GameState, error) {
	switch strings.ToLower(cmd) {
	case "quit", "exit":
		return model.GameState{}, errQuit
	case "start":
		return game.Start(), nil
	case "reset":
		return game.Reset(), nil
	case "moves":
		state := game.GetState()
		for i, move := range state.Moves {
			fmt.Fprintf(out, "%d. %s\n", i+1, move)
		}
		return state, nil
	case "", "help":
		return model.GameState{}, errors.New(helpText)
	}

	pos, err := model.ParsePosition(strings.ToLower(cmd))
	if err != nil {
		return model.GameState{}, fmt.Errorf("%q: %w; %s", cmd, err, helpText)
	}
	return game.SelectSquare(pos), nil
}

func draw(out io.Writer, r *render.Renderer, state model.GameState) error {
	if err := r.Board(out, state); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, render.Status(state))
	return err
}
