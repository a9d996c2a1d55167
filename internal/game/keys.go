package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridsnake/internal/snake"
)

// Action is what a key press asks the game to do.
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionConfirm // start or restart
	ActionPause
	ActionQuit
)

// Command is a decoded key press.
type Command struct {
	Action    Action
	Direction snake.Direction // Set for ActionMove
}

func move(d snake.Direction) Command {
	return Command{Action: ActionMove, Direction: d}
}

// keyCommands maps special keys.
var keyCommands = map[tcell.Key]Command{
	tcell.KeyUp:     move(snake.DirUp),
	tcell.KeyDown:   move(snake.DirDown),
	tcell.KeyLeft:   move(snake.DirLeft),
	tcell.KeyRight:  move(snake.DirRight),
	tcell.KeyEnter:  {Action: ActionConfirm},
	tcell.KeyEscape: {Action: ActionQuit},
	tcell.KeyCtrlC:  {Action: ActionQuit},
}

// runeCommands maps character keys.
var runeCommands = map[rune]Command{
	'w': move(snake.DirUp),
	'W': move(snake.DirUp),
	's': move(snake.DirDown),
	'S': move(snake.DirDown),
	'a': move(snake.DirLeft),
	'A': move(snake.DirLeft),
	'd': move(snake.DirRight),
	'D': move(snake.DirRight),
	' ': {Action: ActionConfirm},
	'p': {Action: ActionPause},
	'P': {Action: ActionPause},
	'q': {Action: ActionQuit},
	'Q': {Action: ActionQuit},
}

// CommandFor decodes a key event.
func CommandFor(ev *tcell.EventKey) Command {
	if ev.Key() == tcell.KeyRune {
		return runeCommands[ev.Rune()]
	}
	return keyCommands[ev.Key()]
}
