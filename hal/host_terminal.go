//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TerminalConfig controls the terminal runner.
type TerminalConfig struct {
	Hz int
	// Scale samples every Scale-th pixel; 1 draws the display at full size.
	Scale int
}

// RunTerminal renders the framebuffer into the terminal using half-block
// cells (two pixel rows per cell). It returns when ctx is done or the
// user presses Escape, q or Ctrl-C.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg TerminalConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 2
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()

	h := New().(*hostHAL)
	step := newApp(h)

	quit := make(chan struct{})
	go func() {
		defer close(quit)
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()

	tv := &termView{fb: h.fb, scale: cfg.Scale}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-quit:
			return nil
		case <-t.C:
			h.t.advance()
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tv.draw(screen)
			screen.Show()
		}
	}
}

type termView struct {
	fb      *hostFramebuffer
	scale   int
	scratch []byte
}

func (v *termView) draw(screen tcell.Screen) {
	if v.scratch == nil {
		v.scratch = make([]byte, len(v.fb.buf))
	}
	v.fb.snapshotRGB565(v.scratch)

	cols := v.fb.width / v.scale
	rows := v.fb.height / v.scale / 2
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			x := cx * v.scale
			top := v.at(x, cy*2*v.scale)
			bottom := v.at(x, (cy*2+1)*v.scale)
			st := tcell.StyleDefault.Foreground(top).Background(bottom)
			screen.SetContent(cx, cy, '▀', nil, st)
		}
	}
}

func (v *termView) at(x, y int) tcell.Color {
	off := y*v.fb.stride + x*2
	if off < 0 || off+1 >= len(v.scratch) {
		return tcell.ColorBlack
	}
	r, g, b := RGB888From565(uint16(v.scratch[off]) | uint16(v.scratch[off+1])<<8)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
