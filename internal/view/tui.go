package view

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"golife/internal/core"
	"golife/pkg/grid"
	"golife/pkg/life"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

// TUIOptions configures the interactive terminal session.
type TUIOptions struct {
	Interval time.Duration
	Toroidal bool
}

type binding struct {
	key     interface{}
	name    string
	descr   string
	handler func(v *gocui.View) error
	view    string
}

// TUI is an interactive gocui frontend around a single world. All world
// mutation happens on the gocui main loop so the core stays single-writer.
type TUI struct {
	world *life.World
	opts  TUIOptions
	g     *gocui.Gui
	k     []binding

	running  bool
	stepTime time.Duration
	quit     chan struct{}

	liveFiller string
	deadFiller string
}

// NewTUI builds the terminal UI for the provided world.
func NewTUI(world *life.World, opts TUIOptions) (*TUI, error) {
	if opts.Interval <= 0 {
		opts.Interval = 100 * time.Millisecond
	}
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, err
	}
	g.Mouse = true

	t := &TUI{
		world:      world,
		opts:       opts,
		g:          g,
		quit:       make(chan struct{}),
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
	}
	t.k = []binding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'n', "N", "Next step", t.cmdStep, ""},
		{'r', "R", "Run", t.cmdRun, ""},
		{'s', "S", "Stop", t.cmdStop, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'w', "W", "Settle with random", t.cmdRandomize, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle the cell", t.cmdToggle, "battlefield"},
	}
	g.SetManagerFunc(t.layout)
	for _, kb := range t.k {
		h := kb.handler
		if err := g.SetKeybinding(kb.view, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			g.Close()
			return nil, err
		}
	}
	return t, nil
}

// Run starts the step pacer and blocks in the gocui main loop until exit.
func (t *TUI) Run() error {
	go t.pace()
	err := t.g.MainLoop()
	close(t.quit)
	t.g.Close()
	if err == gocui.ErrQuit {
		return nil
	}
	return err
}

// pace posts one step per interval onto the main loop while running.
func (t *TUI) pace() {
	stepper := core.NewFixedStep(t.opts.Interval)
	tick := t.opts.Interval / 4
	if tick <= 0 {
		tick = time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	for {
		select {
		case <-t.quit:
			return
		case <-ticker.C:
			if !stepper.ShouldStep() {
				continue
			}
			t.g.Update(func(*gocui.Gui) error {
				if t.running {
					t.stepOnce()
				}
				return nil
			})
		}
	}
}

func (t *TUI) stepOnce() {
	start := time.Now()
	t.world.Step(t.opts.Toroidal)
	t.stepTime = time.Since(start)
	t.refresh()
}

func (t *TUI) refresh() {
	t.renderField()
	t.renderStatus()
}

func (t *TUI) renderField() {
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View("battlefield")
		if err != nil {
			return err
		}
		v.Clear()

		state := t.world.State()
		cells := state.Cells()
		maxW, maxH := v.Size()
		cropped := state.Width() > maxW || state.Height() > maxH

		var b bytes.Buffer
		for y := 0; y < state.Height() && y < maxH; y++ {
			if y != 0 {
				b.WriteByte('\n')
			}
			if cropped && y == maxH-1 {
				b.WriteString(aurora.Red("The field is larger than the viewing area").String())
				break
			}
			for x := 0; x < state.Width() && x < maxW; x++ {
				if cells[y*state.Width()+x] == grid.Alive {
					b.WriteString(t.liveFiller)
				} else {
					b.WriteString(t.deadFiller)
				}
			}
		}
		fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *TUI) renderStatus() {
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View("status")
		if err != nil {
			return nil
		}
		v.Clear()
		mode := aurora.Colorize("waiting", aurora.BlueFg).String()
		if t.running {
			mode = aurora.Colorize("running", aurora.CyanFg).String()
		}
		fmt.Fprintln(v, t.renderProp("Generation", "%v", t.world.Generation()))
		fmt.Fprintln(v, t.renderProp("Live cells", "%v", t.world.AliveCells()))
		fmt.Fprintln(v, t.renderProp("Step time", "%v", t.stepTime.Round(time.Microsecond)))
		fmt.Fprintln(v, t.renderProp("Mode", "%v", mode))
		return nil
	})
}

func (t *TUI) renderConfiguration() {
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View("configuration")
		if err != nil {
			return nil
		}
		v.Clear()
		fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", t.world.Width(), t.world.Height()))
		fmt.Fprintln(v, t.renderProp("Interval", "%v", t.opts.Interval))
		fmt.Fprintln(v, t.renderProp("Toroidal", "%v", t.opts.Toroidal))
		return nil
	})
}

func (t *TUI) renderProp(name, format string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+format, values...)
}

func (t *TUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 26
	minWindowHeight := 14

	if maxY < minWindowHeight {
		if err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			return err
		}
		g.DeleteView("configuration")
		g.DeleteView("status")
		g.DeleteView("battlefield")
		return nil
	}
	if err := t.headerLayout(g, 2, "Conway's Game of Life"); err != nil {
		return err
	}

	split := 2 + (maxY-4-2)/2
	if v, err := g.SetView("configuration", 0, 2, leftColumnWidth, split); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, split+1, leftColumnWidth, maxY-4); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("battlefield", leftColumnWidth+1, 2, maxX-1, maxY-4); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Battle Field"
		v.Frame = true
	}
	t.renderField()

	if v, err := g.SetView("help", -1, maxY-4, maxX, maxY-2); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		var b strings.Builder
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		fmt.Fprintln(v, b.String())
	}
	return nil
}

func (t *TUI) headerLayout(g *gocui.Gui, height int, text string) error {
	maxX, _ := g.Size()
	v, err := g.SetView("header", -1, -1, maxX+1, height)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	if v == nil {
		return nil
	}
	if err == gocui.ErrUnknownView {
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
	}
	v.Clear()
	pad := (maxX - len(text)) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintln(v, strings.Repeat(" ", pad)+text)
	return nil
}

func (t *TUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *TUI) cmdStep(_ *gocui.View) error {
	if !t.running {
		t.stepOnce()
	}
	return nil
}

func (t *TUI) cmdRun(_ *gocui.View) error {
	t.running = true
	t.renderStatus()
	return nil
}

func (t *TUI) cmdStop(_ *gocui.View) error {
	t.running = false
	t.renderStatus()
	return nil
}

func (t *TUI) cmdClear(_ *gocui.View) error {
	t.running = false
	t.world.Clear()
	t.refresh()
	return nil
}

func (t *TUI) cmdRandomize(_ *gocui.View) error {
	t.world.Randomize(time.Now().UnixNano())
	t.refresh()
	return nil
}

func (t *TUI) cmdToggle(v *gocui.View) error {
	cx, cy := v.Cursor()
	if err := t.world.Toggle(cx, cy); err != nil {
		// click landed outside the field
		return nil
	}
	t.refresh()
	return nil
}
