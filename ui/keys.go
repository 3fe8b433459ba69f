package ui

import (
	"unicode"

	"crypto-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

// TerminalKey decodes a terminal key press into either an arrow identifier
// for the game or a menu command
func TerminalKey(key tcell.Key, r rune) (arrow string, cmd Command) {
	switch key {
	case tcell.KeyUp:
		return types.KeyArrowUp, CmdNone
	case tcell.KeyDown:
		return types.KeyArrowDown, CmdNone
	case tcell.KeyLeft:
		return types.KeyArrowLeft, CmdNone
	case tcell.KeyRight:
		return types.KeyArrowRight, CmdNone
	case tcell.KeyEnter:
		return "", CmdStart
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return "", CmdQuit
	case tcell.KeyRune:
		return "", runeCommand(r)
	}
	return "", CmdNone
}

func runeCommand(r rune) Command {
	switch unicode.ToLower(r) {
	case ' ':
		return CmdStart
	case 'q':
		return CmdQuit
	case 'a':
		return CmdAutopilot
	case '1':
		return CmdDifficulty1
	case '2':
		return CmdDifficulty2
	case '3':
		return CmdDifficulty3
	case '4':
		return CmdDifficulty4
	}
	return CmdNone
}
