package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hmibuilder/pkg/anchor"
	"github.com/matzehuels/hmibuilder/pkg/editor"
	"github.com/matzehuels/hmibuilder/pkg/errors"
	"github.com/matzehuels/hmibuilder/pkg/geom"
	"github.com/matzehuels/hmibuilder/pkg/layout"
)

// =============================================================================
// new / list
// =============================================================================

// newCommand creates an empty layout document.
func (c *CLI) newCommand() *cobra.Command {
	var (
		width, height float64
		force         bool
	)

	cmd := &cobra.Command{
		Use:   "new [layout.json|.toml|.yaml]",
		Short: "Create an empty layout document",
		Long: `Create an empty layout document. The canvas size defaults to the [canvas]
section of the settings file; --width and --height override it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if fileExists(path) && !force {
				return errors.New(errors.ErrCodeInvalidPath, "%s already exists (use --force to overwrite)", path)
			}
			size := c.Config.CanvasSize()
			if width > 0 {
				size.W = width
			}
			if height > 0 {
				size.H = height
			}
			ed := c.newEditor(layout.NewStore(size))
			if err := c.saveDocument(path, ed); err != nil {
				return err
			}
			printSuccess("Created %g×%g canvas", size.W, size.H)
			printFile(path)
			printNewline()
			printNextStep("Add an element", appName+" add "+path+" button")
			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", 0, "canvas width in pixels (default from config)")
	cmd.Flags().Float64Var(&height, "height", 0, "canvas height in pixels (default from config)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	return cmd
}

// listCommand prints every element back to front.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list [layout]",
		Aliases: []string{"ls"},
		Short:   "List the elements of a layout",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := c.openDocument(args[0])
			if err != nil {
				return err
			}
			store := ed.Store()
			canvas := store.Canvas()

			printKeyValue("Canvas", fmt.Sprintf("%g×%g", canvas.W, canvas.H))
			if store.Len() == 0 {
				printInfo("No elements")
				return nil
			}
			fmt.Println(elementTable(store))

			containers := 0
			for _, e := range store.Elements() {
				if e.IsContainer() {
					containers++
				}
			}
			printCounts(store.Len(), "elements", containers, "containers")
			return nil
		},
	}
}

// elementTable renders the store back to front. Containers are highlighted.
func elementTable(store *layout.Store) string {
	elements := store.Elements()
	rows := make([][]string, len(elements))
	for i, e := range elements {
		rows[i] = []string{e.Name, string(e.Kind), e.H.String(), e.V.String(), formatBox(store.Box(e))}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Kind", "Horizontal", "Vertical", "Box").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			if row < 0 || row >= len(elements) {
				return base
			}
			if col == 0 && elements[row].IsContainer() {
				return base.Foreground(colorCyan)
			}
			if col >= 2 {
				return base.Foreground(colorGray)
			}
			return base
		}).
		Render()
}

// =============================================================================
// add / rename / delete
// =============================================================================

// addCommand inserts a new element at the paste offset.
func (c *CLI) addCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [layout] [kind] [name]",
		Short: "Add an element to a layout",
		Long: `Add an element near the top-left corner of the canvas, anchored to the
start of both axes with the kind's initial size. Without a name, or with an
invalid one, the element is named after its kind (button1, button2, ...).`,
		Args:              cobra.RangeArgs(2, 3),
		ValidArgsFunction: completeKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := layout.ParseKind(args[1])
			if err != nil {
				return err
			}
			name := ""
			if len(args) == 3 {
				name = args[2]
			}

			ed, err := c.openDocument(args[0])
			if err != nil {
				return err
			}
			el, err := ed.AddNew(kind, name)
			if err != nil {
				return err
			}
			if err := c.saveDocument(args[0], ed); err != nil {
				return err
			}
			printSuccess("Added %s %s", kind, StyleHighlight.Render(el.Name))
			printDetail("%s", formatBox(ed.Store().Box(el)))
			return nil
		},
	}
	return cmd
}

func (c *CLI) renameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename [layout] [element] [name]",
		Short: "Rename an element",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.editElement(args[0], args[1], func(ed *editor.Editor, el *layout.Element) error {
				old := el.Name
				got := ed.Rename(el, args[2])
				printSuccess("Renamed %s to %s", old, StyleHighlight.Render(got))
				if got != args[2] {
					printDetail("%q was taken or not a usable identifier", args[2])
				}
				return nil
			})
		},
	}
}

func (c *CLI) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete [layout] [element]",
		Aliases: []string{"rm"},
		Short:   "Delete an element and everything inside it",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.editElement(args[0], args[1], func(ed *editor.Editor, el *layout.Element) error {
				removed := ed.Delete(el)
				printSuccess("Deleted %s", el.Name)
				for _, r := range removed {
					if r != el {
						printDetail("with %s", r.Name)
					}
				}
				return nil
			})
		},
	}
}

// =============================================================================
// align / nudge / front / back
// =============================================================================

func (c *CLI) alignCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "align [layout] [element] [horizontal] [vertical]",
		Short: "Re-anchor an element without moving it",
		Long: `Switch an element to new alignment modes. The rendered box stays where it is;
only the offsets it is stored as change.

Horizontal: left (start), center, right (end), stretch
Vertical:   top (start), middle (center), bottom (end), stretch`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := anchor.ParseAlign(args[2])
			if err != nil {
				return errors.New(errors.ErrCodeInvalidAlign, "%v", err)
			}
			v, err := anchor.ParseAlign(args[3])
			if err != nil {
				return errors.New(errors.ErrCodeInvalidAlign, "%v", err)
			}
			return c.editElement(args[0], args[1], func(ed *editor.Editor, el *layout.Element) error {
				ed.Reanchor(el, h, v)
				printSuccess("Aligned %s %s/%s", StyleHighlight.Render(el.Name), el.H.Align().Horizontal(), el.V.Align().Vertical())
				printDetail("%s  %s", el.H, el.V)
				return nil
			})
		},
	}
}

func (c *CLI) nudgeCommand() *cobra.Command {
	var (
		big, detach bool
		times       int
	)

	cmd := &cobra.Command{
		Use:   "nudge [layout] [element] [left|right|up|down]",
		Short: "Move an element by one nudge step",
		Long: `Move an element by the configured nudge step, or ten steps with --big.
Nudges clamp and flip at the canvas edges like pointer drags. A container
carries everything inside it unless --detach is given.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := editor.ParseDirection(args[2])
			if err != nil {
				return err
			}
			if times < 1 {
				return errors.New(errors.ErrCodeInvalidInput, "--times must be at least 1, got %d", times)
			}
			return c.editElement(args[0], args[1], func(ed *editor.Editor, el *layout.Element) error {
				var total geom.Point
				for i := 0; i < times; i++ {
					d, ok := ed.Nudge(el, dir, big, detach)
					if !ok {
						break
					}
					total = total.Add(d)
				}
				printSuccess("Nudged %s by %g,%g", StyleHighlight.Render(el.Name), total.X, total.Y)
				printDetail("%s", formatBox(ed.Store().Box(el)))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&big, "big", false, "move ten steps")
	cmd.Flags().BoolVar(&detach, "detach", false, "leave a container's contents in place")
	cmd.Flags().IntVarP(&times, "times", "n", 1, "repeat the nudge")

	return cmd
}

func (c *CLI) frontCommand() *cobra.Command {
	return c.restackCommand("front", "Raise an element above everything else", (*editor.Editor).ToFront)
}

func (c *CLI) backCommand() *cobra.Command {
	return c.restackCommand("back", "Lower an element below everything else", (*editor.Editor).ToBack)
}

func (c *CLI) restackCommand(use, short string, fn func(*editor.Editor, *layout.Element) bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [layout] [element]",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.editElement(args[0], args[1], func(ed *editor.Editor, el *layout.Element) error {
				if fn(ed, el) {
					printSuccess("Moved %s to the %s", StyleHighlight.Render(el.Name), use)
				}
				return nil
			})
		},
	}
}
