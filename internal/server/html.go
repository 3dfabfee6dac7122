package server

import (
	"html/template"
	"net/http"
	"sort"

	"barragoon/internal/game"
)

var pageTemplates = template.Must(template.New("pages").Parse(`
{{define "index"}}<!DOCTYPE html>
<html>
<head><title>barragoon</title></head>
<body>
<h1>barragoon</h1>
<p><a href="/board">Start position</a></p>
<h2>Games</h2>
{{if .Games}}
<ul>
{{range .Games}}<li><a href="/games/{{.}}">{{.}}</a></li>
{{end}}</ul>
{{else}}<p>No games yet. POST /games to start one.</p>{{end}}
</body>
</html>{{end}}

{{define "board"}}<!DOCTYPE html>
<html>
<head>
<title>barragoon</title>
<style>
table.board { border-collapse: collapse; }
table.board td {
  width: 2.2em; height: 2.2em;
  text-align: center; font-family: monospace; font-size: 1.2em;
  border: 1px solid #444;
}
td.light { background: #f0d9b5; }
td.dark { background: #b58863; }
td.white-tile { color: #fafafa; text-shadow: 0 0 2px #000; }
td.brown-tile { color: #5b3a1a; }
td.barragoon { color: #1a6b5b; }
th { font-family: monospace; font-weight: normal; }
</style>
</head>
<body>
<table class="board">
{{range .Rows}}<tr><th>{{.Rank}}</th>
{{range .Cells}}<td class="{{.Class}}">{{.Char}}</td>{{end}}</tr>
{{end}}<tr><th></th><th>a</th><th>b</th><th>c</th><th>d</th><th>e</th><th>f</th><th>g</th></tr>
</table>
<p>Turn: {{.Turn}}</p>
<p>FEN: <code>{{.FEN}}</code></p>
</body>
</html>{{end}}
`))

type boardCell struct {
	Char  string
	Class string
}

type boardRow struct {
	Rank  int
	Cells []boardCell
}

type boardPage struct {
	FEN  string
	Turn string
	Rows []boardRow
}

func boardPageOf(g *game.Game) boardPage {
	page := boardPage{
		FEN:  g.FEN(),
		Turn: g.Turn().String(),
	}

	for rank := game.BoardHeight - 1; rank >= 0; rank-- {
		row := boardRow{Rank: rank + 1}
		for file := 0; file < game.BoardWidth; file++ {
			sq := g.At(game.Coord(rank, file))

			class := "light"
			if (rank+file)%2 != 0 {
				class = "dark"
			}
			switch sq.Kind {
			case game.SquareTile:
				if sq.Tile.Player == game.White {
					class += " white-tile"
				} else {
					class += " brown-tile"
				}
			case game.SquareBarragoon:
				class += " barragoon"
			}

			char := ""
			if !sq.IsEmpty() {
				char = string(sq.FENChar())
			}
			row.Cells = append(row.Cells, boardCell{Char: char, Class: class})
		}
		page.Rows = append(page.Rows, row)
	}

	return page
}

// GET / lists the active games.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	s.mu.Unlock()
	sort.Strings(ids)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, "index", map[string]any{"Games": ids}); err != nil {
		s.logger.Error().Err(err).Msg("Failed to render index")
	}
}

// GET /board renders a position as an HTML board. The fen query parameter
// overrides the default start position.
func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	g := game.New()

	if fen := r.URL.Query().Get("fen"); fen != "" {
		parsed, err := game.FromFEN(fen)
		if err != nil {
			http.Error(w, "invalid fen", http.StatusBadRequest)
			return
		}
		g = parsed
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, "board", boardPageOf(g)); err != nil {
		s.logger.Error().Err(err).Msg("Failed to render board")
	}
}
