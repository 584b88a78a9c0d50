package term

import "github.com/gdamore/tcell/v2"

// Command is an action requested from the keyboard.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdPause
	CmdStep
	CmdReset
	CmdPanLeft
	CmdPanRight
	CmdPanUp
	CmdPanDown
)

// commandFor maps a key press to a Command.
func commandFor(key tcell.Key, r rune) Command {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CmdQuit
	case tcell.KeyLeft:
		return CmdPanLeft
	case tcell.KeyRight:
		return CmdPanRight
	case tcell.KeyUp:
		return CmdPanUp
	case tcell.KeyDown:
		return CmdPanDown
	case tcell.KeyRune:
		switch r {
		case 'q':
			return CmdQuit
		case ' ':
			return CmdPause
		case 'n':
			return CmdStep
		case 'r':
			return CmdReset
		case 'h':
			return CmdPanLeft
		case 'l':
			return CmdPanRight
		case 'k':
			return CmdPanUp
		case 'j':
			return CmdPanDown
		}
	}
	return CmdNone
}
