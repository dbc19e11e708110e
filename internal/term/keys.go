package term

import (
	"snake/internal/app"

	"github.com/gdamore/tcell/v2"
)

// keyState treats every key event seen during a frame as held for that frame.
// Terminals report presses and auto-repeat, never releases.
type keyState map[app.Key]bool

// Pressed implements app.Input.
func (k keyState) Pressed(key app.Key) bool { return k[key] }

func (k keyState) handle(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		k[app.KeyUp] = true
	case tcell.KeyDown:
		k[app.KeyDown] = true
	case tcell.KeyLeft:
		k[app.KeyLeft] = true
	case tcell.KeyRight:
		k[app.KeyRight] = true
	case tcell.KeyEnter:
		k[app.KeyConfirm] = true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k[app.KeyQuit] = true
	case tcell.KeyRune:
		if ev.Rune() == 'q' || ev.Rune() == 'Q' {
			k[app.KeyQuit] = true
		}
	}
}

func (k keyState) reset() {
	clear(k)
}
