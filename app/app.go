package app

import (
	"errors"
	"fmt"

	"plotter/glyph"
	"plotter/hal"
	"plotter/internal/buildinfo"
	"plotter/plot"
)

// plotter owns the view and everything drawn each frame.
type plotter struct {
	log    hal.Logger
	fb     hal.Framebuffer
	d      *fbDisplay
	events <-chan hal.KeyEvent

	cfg    Config
	m      plot.Mapper
	view   plot.ViewRect
	fns    []plot.Function
	scale  *readout
	frames uint64
}

// New checks the HAL against cfg and returns the per-frame step. atlas may
// be nil, in which case the scale is drawn as text.
func New(h hal.HAL, cfg Config, atlas *glyph.Atlas) (hal.Step, error) {
	p, err := newPlotter(h, cfg, atlas)
	if err != nil {
		return nil, err
	}
	return p.step, nil
}

func newPlotter(h hal.HAL, cfg Config, atlas *glyph.Atlas) (*plotter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("plotter: %w", err)
	}
	if h == nil {
		return nil, errors.New("plotter: no HAL")
	}
	p := &plotter{
		log: h.Logger(),
		cfg: cfg,
		m:   plot.Mapper{Width: cfg.Width, Height: cfg.Height},
		fns: plot.Functions(),
	}

	if disp := h.Display(); disp != nil {
		p.fb = disp.Framebuffer()
	}
	if p.fb == nil {
		return nil, errors.New("plotter: no framebuffer")
	}
	if p.fb.Format() != hal.PixelFormatRGB565 {
		return nil, errors.New("plotter: unsupported framebuffer format")
	}
	if p.fb.Width() != cfg.Width || p.fb.Height() != cfg.Height {
		return nil, fmt.Errorf("plotter: framebuffer is %dx%d, want %dx%d",
			p.fb.Width(), p.fb.Height(), cfg.Width, cfg.Height)
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			p.events = kbd.Events()
		}
	}
	if p.events == nil {
		return nil, errors.New("plotter: no keyboard")
	}

	view, err := plot.SetScale(cfg.Scale)
	if err != nil {
		return nil, fmt.Errorf("plotter: %w", err)
	}
	p.view = view
	p.d = newFBDisplay(p.fb)
	p.scale = newReadout(atlas, cfg.Digits)

	p.logf("%s", buildinfo.Line())
	p.logf("plotter: %dx%d, view %v, %d functions", cfg.Width, cfg.Height, p.view, len(p.fns))
	return p, nil
}

func (p *plotter) logf(format string, args ...any) {
	if p.log == nil {
		return
	}
	p.log.WriteLineString(fmt.Sprintf(format, args...))
}

// step draws one frame, presents it and then applies every pending key
// press. Quit returns hal.ErrQuit before anything else is drawn.
func (p *plotter) step() error {
	p.render()
	if err := p.d.Display(); err != nil {
		return fmt.Errorf("plotter: present frame %d: %w", p.frames, err)
	}
	p.frames++
	return p.drainInput()
}

func (p *plotter) render() {
	p.fb.ClearRGB(0, 0, 0)
	p.scale.draw(p.d, p.view.Scale())
	plot.DrawGrid(p.d, p.m.Width, p.m.Height, plot.ColorAxis)
	plot.TraceAll(p.d, p.m, p.view, p.fns)
}

func (p *plotter) drainInput() error {
	for {
		select {
		case ev := <-p.events:
			if err := p.handle(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (p *plotter) handle(ev hal.KeyEvent) error {
	cmd := commandFor(ev)
	switch cmd.kind {
	case cmdNone:
		return nil
	case cmdQuit:
		p.logf("plotter: quit (%s) after %d frames", ev.Code, p.frames)
		return hal.ErrQuit
	}
	view, msg, err := cmd.apply(p.view, p.cfg.Presets)
	if err != nil {
		p.logf("plotter: key %s ignored: %v", ev.Code, err)
		return nil
	}
	p.view = view
	p.logf("plotter: %s", msg)
	return nil
}
