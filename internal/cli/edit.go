package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hmibuilder/pkg/editor"
	"github.com/matzehuels/hmibuilder/pkg/geom"
	"github.com/matzehuels/hmibuilder/pkg/layout"
	"github.com/matzehuels/hmibuilder/pkg/scene"
)

// editCommand opens the interactive terminal editor.
func (c *CLI) editCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [layout]",
		Short: "Edit a layout interactively in the terminal",
		Long: `Edit a layout with the mouse and keyboard. Each terminal cell covers
[tui] cell_width × cell_height canvas pixels.

  left drag    move (shift: leave a container's contents behind)
  right drag   resize
  arrows       nudge (ctrl: ten steps, shift: detach)
  tab          select the next element
  h / v        cycle horizontal / vertical alignment
  f / b        bring to front / send to back
  x, delete    delete
  esc          cancel the drag and clear the selection
  w            write the layout
  q            quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEdit(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runEdit(ctx context.Context, path string) error {
	store, err := c.loadStore(path, true)
	if err != nil {
		return err
	}
	m := c.newEditModel(path, store)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run editor: %w", err)
	}
	if m.dirty {
		printWarning("Quit with unsaved changes")
	}
	return nil
}

// =============================================================================
// editModel - Interactive canvas
// =============================================================================

// The canvas is drawn below a one-line title inside a one-cell border.
const (
	canvasLeft = 1
	canvasTop  = 2
)

// editModel is the bubbletea model of the terminal editor. It is a pointer
// model so the editor's bell callback can write the status line.
type editModel struct {
	path  string
	ed    *editor.Editor
	save  func() error
	cellW float64
	cellH float64

	status string
	warn   bool
	dirty  bool
}

func (c *CLI) newEditModel(path string, store *layout.Store) *editModel {
	m := &editModel{
		path:  path,
		cellW: c.Config.TUI.CellWidth,
		cellH: c.Config.TUI.CellHeight,
	}
	// The alternate screen owns the terminal; editor events are not logged.
	m.ed = c.newEditor(store,
		editor.WithLogger(log.New(io.Discard)),
		editor.WithBell(func(op string) { m.warnf("%s had no effect", op) }),
	)
	m.save = func() error { return scene.Save(path, store) }
	return m
}

func (m *editModel) Init() tea.Cmd {
	return nil
}

func (m *editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.status, m.warn = "", false
		return m, m.key(msg.String())
	case tea.MouseMsg:
		m.mouse(msg)
	}
	return m, nil
}

func (m *editModel) key(k string) tea.Cmd {
	sel := m.ed.Selected()
	switch k {
	case "q", "ctrl+c":
		return tea.Quit
	case "esc":
		m.ed.Cancel()
	case "w":
		if err := m.save(); err != nil {
			m.warnf("write failed: %v", err)
			return nil
		}
		m.dirty = false
		m.status = "wrote " + m.path
	case "tab":
		m.selectNext()
	case "f":
		m.mark(m.ed.ToFront(sel))
	case "b":
		m.mark(m.ed.ToBack(sel))
	case "x", "delete":
		m.mark(len(m.ed.Delete(sel)) > 0)
	case "h", "v":
		if sel == nil {
			m.warnf("nothing selected")
			return nil
		}
		h, v := sel.H.Align(), sel.V.Align()
		if k == "h" {
			h = h.Cycle(sel.CanStretchH())
		} else {
			v = v.Cycle(sel.CanStretchV())
		}
		m.ed.Reanchor(sel, h, v)
		m.mark(true)
	default:
		if dir, big, detach, ok := parseArrow(k); ok {
			_, moved := m.ed.Nudge(sel, dir, big, detach)
			m.mark(moved)
		}
	}
	return nil
}

// parseArrow decodes "left", "ctrl+left", "shift+up", "ctrl+shift+down" and
// so on.
func parseArrow(k string) (dir editor.Direction, big, detach bool, ok bool) {
	for {
		switch {
		case strings.HasPrefix(k, "ctrl+"):
			big, k = true, strings.TrimPrefix(k, "ctrl+")
			continue
		case strings.HasPrefix(k, "shift+"):
			detach, k = true, strings.TrimPrefix(k, "shift+")
			continue
		}
		break
	}
	dir, err := editor.ParseDirection(k)
	return dir, big, detach, err == nil
}

func (m *editModel) mouse(msg tea.MouseMsg) {
	p := m.point(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		var b editor.Button
		switch msg.Button {
		case tea.MouseButtonLeft:
			b = editor.ButtonLeft
		case tea.MouseButtonRight:
			b = editor.ButtonRight
		default:
			return
		}
		m.status, m.warn = "", false
		var mods editor.Modifiers
		if msg.Shift {
			mods |= editor.ModShift
		}
		if msg.Ctrl {
			mods |= editor.ModCtrl
		}
		m.ed.PointerDown(p, b, mods)
	case tea.MouseActionMotion:
		if u, ok := m.ed.PointerMove(p, msg.Button != tea.MouseButtonNone); ok && !u.Delta.IsZero() {
			m.dirty = true
		}
	case tea.MouseActionRelease:
		m.ed.PointerUp(p)
	}
}

// point maps a terminal cell to the canvas pixel at its centre.
func (m *editModel) point(x, y int) geom.Point {
	return geom.Point{
		X: (float64(x-canvasLeft) + 0.5) * m.cellW,
		Y: (float64(y-canvasTop) + 0.5) * m.cellH,
	}
}

func (m *editModel) selectNext() {
	elements := m.ed.Store().Elements()
	if len(elements) == 0 {
		m.warnf("no elements")
		return
	}
	next := elements[0]
	for i, e := range elements {
		if e == m.ed.Selected() && i+1 < len(elements) {
			next = elements[i+1]
		}
	}
	m.ed.Select(next)
}

func (m *editModel) mark(changed bool) {
	if changed {
		m.dirty = true
	}
}

func (m *editModel) warnf(format string, args ...any) {
	m.status, m.warn = fmt.Sprintf(format, args...), true
}

// =============================================================================
// Rendering
// =============================================================================

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellElement
	cellContainer
	cellSelected
	cellGuide
)

var cellStyles = map[cellKind]lipgloss.Style{
	cellEmpty:     lipgloss.NewStyle(),
	cellElement:   lipgloss.NewStyle().Foreground(colorWhite),
	cellContainer: lipgloss.NewStyle().Foreground(colorGray),
	cellSelected:  lipgloss.NewStyle().Foreground(colorCyan).Bold(true),
	cellGuide:     lipgloss.NewStyle().Foreground(colorBlue),
}

var canvasFrame = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorDim)

type cell struct {
	r    rune
	kind cellKind
}

// grid rasterises the canvas back to front.
func (m *editModel) grid() [][]cell {
	canvas := m.ed.Store().Canvas()
	cols := int(math.Ceil(canvas.W / m.cellW))
	rows := int(math.Ceil(canvas.H / m.cellH))
	g := make([][]cell, rows)
	for y := range g {
		g[y] = make([]cell, cols)
		for x := range g[y] {
			g[y][x] = cell{r: ' '}
		}
	}

	for _, e := range m.ed.Store().Elements() {
		kind := cellElement
		switch {
		case e == m.ed.Selected():
			kind = cellSelected
		case e.IsContainer():
			kind = cellContainer
		}
		m.drawBox(g, m.ed.Store().Box(e), e.Name, kind, e.IsContainer())
	}

	guides := m.ed.Guides()
	if guides.Vertical.Active {
		x := int(guides.Vertical.Position / m.cellW)
		for y := range g {
			setGuide(g, x, y, '┊')
		}
	}
	if guides.Horizontal.Active {
		y := int(guides.Horizontal.Position / m.cellH)
		for x := 0; x < cols; x++ {
			setGuide(g, x, y, '┈')
		}
	}
	return g
}

func (m *editModel) drawBox(g [][]cell, r geom.Rect, name string, kind cellKind, dashed bool) {
	x0, y0 := int(r.Left/m.cellW), int(r.Top/m.cellH)
	x1 := max(x0, int(math.Ceil(r.Right()/m.cellW))-1)
	y1 := max(y0, int(math.Ceil(r.Bottom()/m.cellH))-1)

	hz, vt := '─', '│'
	if dashed {
		hz, vt = '╌', '╎'
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			ch := ' '
			switch {
			case y0 == y1 && x == x0:
				ch = '['
			case y0 == y1 && x == x1:
				ch = ']'
			case y0 == y1:
				ch = hz
			case x == x0 && y == y0:
				ch = '┌'
			case x == x1 && y == y0:
				ch = '┐'
			case x == x0 && y == y1:
				ch = '└'
			case x == x1 && y == y1:
				ch = '┘'
			case y == y0 || y == y1:
				ch = hz
			case x == x0 || x == x1:
				ch = vt
			}
			set(g, x, y, cell{r: ch, kind: kind})
		}
	}
	for i, ch := range []rune(name) {
		x := x0 + 1 + i
		if x >= x1 {
			break
		}
		set(g, x, y0, cell{r: ch, kind: kind})
	}
}

func set(g [][]cell, x, y int, c cell) {
	if y >= 0 && y < len(g) && x >= 0 && x < len(g[y]) {
		g[y][x] = c
	}
}

// setGuide draws a guide cell on empty canvas only.
func setGuide(g [][]cell, x, y int, r rune) {
	if y >= 0 && y < len(g) && x >= 0 && x < len(g[y]) && g[y][x].kind == cellEmpty {
		g[y][x] = cell{r: r, kind: cellGuide}
	}
}

func (m *editModel) View() string {
	var b strings.Builder

	title := StyleTitle.Render(appName) + " " + StyleValue.Render(m.path)
	if m.dirty {
		title += StyleWarning.Render(" •")
	}
	b.WriteString(title)
	b.WriteString("\n")

	var body strings.Builder
	for y, row := range m.grid() {
		if y > 0 {
			body.WriteString("\n")
		}
		for x := 0; x < len(row); {
			kind := row[x].kind
			var run strings.Builder
			for ; x < len(row) && row[x].kind == kind; x++ {
				run.WriteRune(row[x].r)
			}
			body.WriteString(cellStyles[kind].Render(run.String()))
		}
	}
	b.WriteString(canvasFrame.Render(body.String()))
	b.WriteString("\n")

	if sel := m.ed.Selected(); sel != nil {
		b.WriteString(StyleHighlight.Render(sel.Name) + " " +
			StyleDim.Render(fmt.Sprintf("%s  %s  %s  %s", sel.Kind, sel.H, sel.V, formatBox(m.ed.Store().Box(sel)))))
	} else {
		b.WriteString(StyleDim.Render("nothing selected"))
	}
	b.WriteString("  " + StyleDim.Render(m.ed.State().String()))
	b.WriteString("\n")

	switch {
	case m.warn:
		b.WriteString(StyleWarning.Render(m.status))
	case m.status != "":
		b.WriteString(StyleDim.Render(m.status))
	default:
		b.WriteString(StyleDim.Render("drag to move · right-drag to resize · arrows nudge · h/v align · w write · q quit"))
	}
	return b.String()
}
