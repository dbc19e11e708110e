// Package term runs a game session on a character terminal.
package term

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"snake/internal/app"
	"snake/internal/snake"

	"github.com/gdamore/tcell/v2"
)

// cellWidth is the number of terminal columns one board cell spans, which
// keeps cells roughly square in most fonts.
const cellWidth = 2

// Host presents a Session on a tcell.Screen.
type Host struct {
	screen  tcell.Screen
	session *app.Session
	keys    keyState
	styles  []tcell.Style
	border  tcell.Style
	status  tcell.Style
}

// New builds a host for an initialized screen.
func New(screen tcell.Screen, session *app.Session) *Host {
	h := &Host{
		screen:  screen,
		session: session,
		keys:    keyState{},
		border:  tcell.StyleDefault.Foreground(tcell.ColorGray),
		status:  tcell.StyleDefault,
	}
	for _, px := range snake.Palette() {
		h.styles = append(h.styles, tcell.StyleDefault.Background(tcell.NewHexColor(int32(px&0xFFFFFF))))
	}
	return h
}

// Step folds the events gathered since the last frame into key state, runs
// one session update and redraws.
func (h *Host) Step(events []tcell.Event) (snake.Outcome, error) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			h.keys.handle(ev)
		case *tcell.EventResize:
			h.screen.Sync()
		}
	}
	out, err := h.session.Update(h.keys)
	h.keys.reset()
	if err != nil {
		return out, err
	}
	h.Draw()
	return out, nil
}

// MinSize reports the terminal size needed to show the board, its border,
// the length readout and the prompt row.
func (h *Host) MinSize() (int, int) {
	n := h.session.Game().Grid().N
	w := max(n*cellWidth+2, len([]rune(app.LostPrompt)))
	return w, n + 4
}

// Draw paints the board, its border, the length readout and, after a death,
// the prompt on the row below. A terminal too small for all of that gets a
// single line asking for more room instead of a clipped board.
func (h *Host) Draw() {
	game := h.session.Game()
	n := game.Grid().N
	h.screen.Clear()

	if w, ht := h.screen.Size(); !h.fits(w, ht) {
		mw, mh := h.MinSize()
		h.drawText(0, 0, fmt.Sprintf("terminal too small: need %dx%d, have %dx%d", mw, mh, w, ht))
		h.screen.Show()
		return
	}

	h.drawBorder(n*cellWidth+2, n+2)
	for i, c := range game.Cells() {
		row, col := game.Grid().RowCol(i)
		style := h.styles[len(h.styles)-1]
		if int(c) < len(h.styles) {
			style = h.styles[c]
		}
		for k := 0; k < cellWidth; k++ {
			h.screen.SetContent(1+col*cellWidth+k, 1+row, ' ', nil, style)
		}
	}

	h.drawText(0, n+2, "length "+strconv.Itoa(game.Len()))
	if prompt := h.session.Prompt(); prompt != "" {
		h.drawText(0, n+3, prompt)
	}
	h.screen.Show()
}

func (h *Host) fits(w, ht int) bool {
	mw, mh := h.MinSize()
	return w >= mw && ht >= mh
}

func (h *Host) drawBorder(w, ht int) {
	for x := 1; x < w-1; x++ {
		h.screen.SetContent(x, 0, tcell.RuneHLine, nil, h.border)
		h.screen.SetContent(x, ht-1, tcell.RuneHLine, nil, h.border)
	}
	for y := 1; y < ht-1; y++ {
		h.screen.SetContent(0, y, tcell.RuneVLine, nil, h.border)
		h.screen.SetContent(w-1, y, tcell.RuneVLine, nil, h.border)
	}
	h.screen.SetContent(0, 0, tcell.RuneULCorner, nil, h.border)
	h.screen.SetContent(w-1, 0, tcell.RuneURCorner, nil, h.border)
	h.screen.SetContent(0, ht-1, tcell.RuneLLCorner, nil, h.border)
	h.screen.SetContent(w-1, ht-1, tcell.RuneLRCorner, nil, h.border)
}

func (h *Host) drawText(x, y int, s string) {
	for i, r := range []rune(s) {
		h.screen.SetContent(x+i, y, r, nil, h.status)
	}
}

// Run drives the session at fps frames per second until the player quits,
// the screen shuts down or ctx is cancelled. Quitting is not an error.
func (h *Host) Run(ctx context.Context, fps int) error {
	if fps <= 0 {
		fps = 60
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	var pending []tcell.Event
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			pending = append(pending, ev)
		case <-ticker.C:
			_, err := h.Step(pending)
			pending = pending[:0]
			if errors.Is(err, app.ErrQuit) {
				return nil
			}
			if err != nil {
				return err
			}
		}
	}
}
