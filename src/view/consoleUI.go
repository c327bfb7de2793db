package view

import (
	"bytes"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"simlife/src/universe"
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

type ConsoleUI struct {
	u universe.Universe
	g *gocui.Gui
	k []keyBindings

	liveFiller string
	deadFiller string
	seed       int64
	density    float64
}

//delaySteps are the delays switched by '+' and '-'
var delaySteps = []time.Duration{
	0,
	10 * time.Millisecond,
	50 * time.Millisecond,
	100 * time.Millisecond,
	250 * time.Millisecond,
	500 * time.Millisecond,
	time.Second,
}

var (
	runningStateDescr = map[universe.RunningState]string{
		universe.RunningStateManual:   aurora.Colorize("waiting", aurora.BlueFg).String(),
		universe.RunningStateRun:      aurora.Colorize("running", aurora.CyanFg).String(),
		universe.RunningStateFinished: aurora.Colorize("finished", aurora.RedFg).String(),
	}
)

//NewViewTerminal creates the interactive terminal viewer
//seed and density are used by the "Settle with random" command
func NewViewTerminal(seed int64, density float64) *ConsoleUI {

	var err error
	t := ConsoleUI{
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
		seed:       seed,
		density:    density,
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.g.Mouse = true
	t.k = []keyBindings{
		{gocui.KeyCtrlC,
			"^C",
			"Exit",
			t.cmdQuit,
			""},
		{'n',
			"N",
			"Next step",
			t.cmdNextRound,
			""},
		{'r',
			"R",
			"Run",
			t.cmdRun,
			""},
		{'s',
			"S",
			"Stop",
			t.cmdStop,
			""},
		{'c',
			"C",
			"Clear",
			t.cmdClear,
			""},
		{'w',
			"W",
			"Settle with random",
			t.cmdSettleWithRandom,
			""},
		{'+',
			"+",
			"Faster",
			t.cmdFaster,
			""},
		{'-',
			"-",
			"Slower",
			t.cmdSlower,
			""},
		{gocui.MouseLeft,
			"LMB",
			"Give life",
			t.cmdGiveLife,
			"battlefield"},
		{gocui.MouseRight,
			"RMB",
			"Take life",
			t.cmdTakeLife,
			"battlefield"},
	}
	t.g.SetManagerFunc(t.layout)

	t.initKeyBindings(t.k)

	return &t
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

func (t *ConsoleUI) Register(u universe.Universe) {
	t.u = u
}

func (t *ConsoleUI) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
}

func (t *ConsoleUI) Refresh(st universe.Status) {
	t.renderField(t.u.Snapshot())
	t.renderConfiguration(st)
	t.renderStatus(st)
}

func (t *ConsoleUI) renderField(grid *universe.Grid) {
	field := fieldLines(grid, t.liveFiller, t.deadFiller)
	t.g.Update(func(g *gocui.Gui) error {
		v, e := g.View("battlefield")
		if e != nil {
			return e
		}
		//the entire field is redrawing at once now
		v.Clear()

		crop := false
		maxW, maxH := v.Size()
		if grid.Width() > maxW || grid.Height() > maxH {
			crop = true
		}

		var b bytes.Buffer
		for i, l := range field {
			//discard the data outside the view area
			if i >= maxH {
				break
			}
			//line feed char
			if i != 0 {
				b.WriteByte(10)
			}
			if crop && i == (maxH-1) {
				b.WriteString(aurora.Red("The field size is larger than the viewing area").BgBlack().String())
				break
			}
			for j, c := range l {
				if j >= maxW {
					break
				}
				b.WriteString(c)
			}
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

//fieldLines converts the grid to the rows of fillers
func fieldLines(grid *universe.Grid, live string, dead string) [][]string {
	lines := make([][]string, grid.Height())
	for y := range lines {
		lines[y] = make([]string, grid.Width())
		for x := range lines[y] {
			if alive, _ := grid.Get(x, y); alive {
				lines[y][x] = live
			} else {
				lines[y][x] = dead
			}
		}
	}
	return lines
}

func (t *ConsoleUI) renderStatus(s universe.Status) {
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := g.View("status"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", s.Generation))
			_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", s.LiveCells))
			_, _ = fmt.Fprintln(v, t.renderProp("Evaluation time", "%v", s.IterationTime.Round(time.Microsecond)))
			_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", runningStateDescr[s.RunningMode]))
		}
		return nil
	})
}

func (t *ConsoleUI) renderConfiguration(s universe.Status) {
	//it needs to call Update when calls from goroutine
	c := t.u.Options()
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := g.View("configuration"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", c.Width, c.Height))
			_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", s.Delay))
			_, _ = fmt.Fprintln(v, t.renderProp("Engine", "%v", c.Engine))
			if c.MaxSteps > 0 {
				_, _ = fmt.Fprintln(v, t.renderProp("Iterations", "%v steps", c.MaxSteps))
			}
		}
		return nil
	})
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

const (
	headerTitle     = "This is \"The Life\" game simulation"
	headerHeight    = 3
	leftColumnWidth = 28
	minWindowWidth  = 48
	minWindowHeight = 20
)

//rect is the view corners in gocui coordinates
type rect struct {
	x0, y0, x1, y1 int
}

//panel is the view below the header
type panel struct {
	name  string
	title string
	frame bool
	init  func(v *gocui.View)
}

//screenRects splits the terminal into the views
//returns nil when the terminal can't hold them
func screenRects(maxX int, maxY int) map[string]rect {
	if maxX < minWindowWidth || maxY < minWindowHeight {
		return nil
	}
	bottom := maxY - 5
	middle := headerHeight + (bottom-headerHeight)/2
	return map[string]rect{
		"header":        {-1, -1, maxX + 1, headerHeight},
		"configuration": {0, headerHeight, leftColumnWidth, middle},
		"status":        {0, middle + 1, leftColumnWidth, bottom},
		"battlefield":   {leftColumnWidth + 1, headerHeight, maxX - 1, bottom},
		"help":          {-1, bottom, maxX, maxY - 3},
	}
}

//headerLine centers text in the width, text which doesn't fit is cut
func headerLine(text string, width int, height int) string {
	if width < 0 {
		width = 0
	}
	if len(text) > width {
		text = text[:width]
	}
	return strings.Repeat("\n", height/2+1) + strings.Repeat(" ", (width-len(text))/2) + text
}

//helpLine lists the key bindings
func helpLine(k []keyBindings) string {
	b := bytes.Buffer{}
	b.WriteString("KEYBINDINGS: ")
	for i, kb := range k {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(aurora.Green(kb.name).String())
		b.WriteString(": ")
		b.WriteString(kb.descr)
	}
	return b.String()
}

func (t *ConsoleUI) panels() []panel {
	return []panel{
		{"configuration", "Configuration", true, func(_ *gocui.View) { t.renderConfiguration(t.u.Status()) }},
		{"status", "Status", true, func(_ *gocui.View) { t.renderStatus(t.u.Status()) }},
		{"battlefield", "Battle Field", true, nil},
		{"help", "", false, func(v *gocui.View) { _, _ = fmt.Fprintln(v, helpLine(t.k)) }},
	}
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	rects := screenRects(maxX, maxY)
	if rects == nil {
		for _, p := range t.panels() {
			_ = g.DeleteView(p.name)
		}
		return t.header(g, rect{-1, -1, maxX + 1, maxY}, "Terminal is too small")
	}
	if err := t.header(g, rects["header"], headerTitle); err != nil {
		return err
	}
	for _, p := range t.panels() {
		r := rects[p.name]
		v, err := g.SetView(p.name, r.x0, r.y0, r.x1, r.y1)
		if err == nil {
			continue
		}
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = p.title
		v.Frame = p.frame
		if p.init != nil {
			p.init(v)
		}
	}
	t.renderField(t.u.Snapshot())
	return nil
}

func (t *ConsoleUI) header(g *gocui.Gui, r rect, text string) error {
	v, err := g.SetView("header", r.x0, r.y0, r.x1, r.y1)
	if err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
	}
	v.Clear()
	_, _ = fmt.Fprintln(v, headerLine(text, r.x1-1, r.y1))
	return nil
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdNextRound(_ *gocui.View) error {
	t.u.Advance()
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	if t.u.IsRunning() {
		return nil
	}
	return t.u.Run(t.u.Delay())
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	t.u.Stop()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.u.Reset()
	return nil
}

func (t *ConsoleUI) cmdSettleWithRandom(_ *gocui.View) error {
	t.seed++
	return t.u.SettleRandom(t.seed, t.density)
}

func (t *ConsoleUI) cmdFaster(_ *gocui.View) error {
	return t.u.SetDelay(nextDelay(t.u.Delay(), -1))
}

func (t *ConsoleUI) cmdSlower(_ *gocui.View) error {
	return t.u.SetDelay(nextDelay(t.u.Delay(), 1))
}

//nextDelay returns the neighbour of d in delaySteps in the given direction
func nextDelay(d time.Duration, dir int) time.Duration {
	i := sort.Search(len(delaySteps), func(i int) bool { return delaySteps[i] >= d })
	switch {
	case dir < 0 && i > 0:
		return delaySteps[i-1]
	case dir < 0:
		return delaySteps[0]
	case i < len(delaySteps) && delaySteps[i] == d:
		i++
	}
	if i >= len(delaySteps) {
		return delaySteps[len(delaySteps)-1]
	}
	return delaySteps[i]
}

func (t *ConsoleUI) cmdGiveLife(v *gocui.View) error {
	return t.toggle(v, true)
}

func (t *ConsoleUI) cmdTakeLife(v *gocui.View) error {
	return t.toggle(v, false)
}

//toggle settles or kills the cell under the cursor, clicks outside the field are ignored
func (t *ConsoleUI) toggle(v *gocui.View, alive bool) error {
	cx, cy := v.Cursor()
	if err := t.u.Toggle(cx, cy, alive); err != nil && !errors.Is(err, universe.ErrOutOfRange) {
		return err
	}
	return nil
}
