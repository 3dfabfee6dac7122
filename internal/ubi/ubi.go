// Package ubi implements the Universal Barragoon Interface, the line
// protocol a GUI or match runner uses to drive the engine.
//
// The protocol is a handshake followed by position setup:
//
//	> ubi
//	< id name barragoon v0.1.0 author ...
//	< ubiok
//	> isready
//	< readyok
//	> position startpos
//	> position fen 7/7/7/7/3Z3/7/7/7/7 w moves Zd5d7
//	> exit
//
// [Handler] is the protocol state machine; [Loop] runs it over an
// io.Reader/io.Writer pair until EOF, an exit command, or context
// cancellation. Neither ever terminates the process.
package ubi

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"barragoon/internal/buildinfo"
	"barragoon/internal/game"
)

// State is the handler's position in the protocol handshake.
type State uint8

const (
	// StateUninitialized is the state before the ubi greeting.
	StateUninitialized State = iota
	// StateWaitingForReady follows the greeting, awaiting isready.
	StateWaitingForReady
	// StateReady means the handshake is complete.
	StateReady
	// StatePositionSet means a position has been loaded.
	StatePositionSet
)

// Handler is the UBI protocol state machine.
//
// Handler is driven one line at a time through [Handler.Handle] and keeps
// the current game position. Use [NewHandler] to create one.
type Handler struct {
	state  State
	game   *game.Game
	name   string
	author string
}

// NewHandler returns a handler in [StateUninitialized] with an empty board,
// identifying itself with the built-in engine name and author.
func NewHandler() *Handler {
	return NewNamedHandler(buildinfo.EngineName, buildinfo.AuthorName)
}

// NewNamedHandler is like [NewHandler] with a custom identity for the
// protocol greeting. Empty strings fall back to the built-in values.
func NewNamedHandler(name, author string) *Handler {
	if name == "" {
		name = buildinfo.EngineName
	}
	if author == "" {
		author = buildinfo.AuthorName
	}
	return &Handler{
		state:  StateUninitialized,
		game:   game.NewEmpty(),
		name:   name,
		author: author,
	}
}

// State returns the handler's protocol state.
func (h *Handler) State() State {
	return h.state
}

// Game returns the handler's current position.
func (h *Handler) Game() *game.Game {
	return h.game
}

// Handle processes one input line and returns the replies to send, plus
// whether the session should end. Blank lines produce no replies; unknown
// commands produce a single "Unknown command" reply.
func (h *Handler) Handle(line string) (replies []string, quit bool) {
	args := strings.Fields(strings.TrimSpace(line))
	if len(args) == 0 {
		return nil, false
	}

	switch args[0] {
	case "ubi":
		return h.greet(), false
	case "isready":
		return h.ready(), false
	case "position":
		return h.position(args[1:]), false
	case "exit":
		return nil, true
	default:
		return []string{"Unknown command"}, false
	}
}

func (h *Handler) greet() []string {
	if h.state != StateUninitialized {
		return nil
	}
	h.state = StateWaitingForReady

	id := fmt.Sprintf("id name %s v%s author %s", h.name, buildinfo.Version(), h.author)
	return []string{id, "ubiok"}
}

func (h *Handler) ready() []string {
	switch h.state {
	case StateUninitialized:
		return nil
	case StateWaitingForReady:
		h.state = StateReady
	}
	return []string{"readyok"}
}

// position loads a position: "startpos" or "fen <fields...>", optionally
// followed by "moves <move...>" applied in order.
func (h *Handler) position(args []string) []string {
	if len(args) == 0 {
		return nil
	}

	var moves []string

	switch args[0] {
	case "startpos":
		h.game = game.New()
		moves = movesArgs(args[1:])
	case "fen":
		fenFields, rest := splitAtMoves(args[1:])
		g, err := game.FromFEN(strings.Join(fenFields, " "))
		if err != nil {
			return []string{fmt.Sprintf("invalid fen: %v", err)}
		}
		h.game = g
		moves = rest
	default:
		return nil
	}

	for _, s := range moves {
		m, err := h.game.MoveFromString(s)
		if err != nil {
			return []string{fmt.Sprintf("invalid move %s: %v", s, err)}
		}
		if err := h.game.Apply(m); err != nil {
			return []string{fmt.Sprintf("invalid move %s: %v", s, err)}
		}
	}

	h.state = StatePositionSet
	return nil
}

// splitAtMoves splits args into the part before a "moves" token and the
// part after it.
func splitAtMoves(args []string) (before, after []string) {
	for i, a := range args {
		if a == "moves" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

// movesArgs returns the move list following a leading "moves" token, if any.
func movesArgs(args []string) []string {
	if len(args) > 0 && args[0] == "moves" {
		return args[1:]
	}
	return nil
}

// Loop runs the protocol over in/out until EOF, an exit command, or
// context cancellation. Input errors are returned; write errors are
// returned as soon as they occur.
func Loop(ctx context.Context, in io.Reader, out io.Writer) error {
	return NewHandler().Loop(ctx, in, out)
}

// Loop runs this handler's protocol session over in/out.
func (h *Handler) Loop(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		replies, quit := h.Handle(scanner.Text())
		for _, reply := range replies {
			if _, err := fmt.Fprintln(out, reply); err != nil {
				return fmt.Errorf("write reply: %w", err)
			}
		}
		if quit {
			return nil
		}
	}

	return scanner.Err()
}
