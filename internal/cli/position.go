package cli

import (
	"barragoon/internal/game"
	"barragoon/internal/render"
)

// loadGame resolves a position argument. An explicit fen wins; otherwise
// name is looked up in the library, defaulting to the start position.
func (app *App) loadGame(name, fen string) (*game.Game, error) {
	if fen != "" {
		return game.FromFEN(fen)
	}
	if name == "" {
		name = "startpos"
	}

	stored, err := app.Library.Get(name)
	if err != nil {
		return nil, err
	}
	return game.FromFEN(stored)
}

// renderer builds a board renderer from the output configuration.
func (app *App) renderer() *render.Renderer {
	out := app.Config.Output
	return render.New(out.Style, out.Color, out.Coordinates)
}
