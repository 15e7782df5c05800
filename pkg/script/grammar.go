package script

import (
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/matzehuels/hmibuilder/pkg/errors"
)

var (
	scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "Newline", Pattern: `[\r\n]+`},
		{Name: "Whitespace", Pattern: `[ \t]+`},
		{Name: "Number", Pattern: `[-+]?\d+(?:\.\d+)?`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	})

	scriptParser = participle.MustBuild[Script](
		participle.Lexer(scriptLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(2),
	)
)

// Script is a parsed gesture script.
type Script struct {
	Statements []*Statement `parser:"( @@ | Newline )*"`
}

// Statement is one script command. Exactly one command field is set.
type Statement struct {
	Pos lexer.Position `parser:""`

	Canvas  *Size      `parser:"  'canvas' @@"`
	Add     *Add       `parser:"| 'add' @@"`
	Select  *Ref       `parser:"| 'select' @@"`
	Press   *Press     `parser:"| 'press' @@"`
	Move    *Point     `parser:"| 'move' @@"`
	Release bool       `parser:"| @'release'"`
	Cancel  bool       `parser:"| @'cancel'"`
	Lost    bool       `parser:"| @'lost'"`
	Nudge   *Nudge     `parser:"| 'nudge' @@"`
	Align   *AlignPair `parser:"| 'align' @@"`
	Front   bool       `parser:"| @'front'"`
	Back    bool       `parser:"| @'back'"`
	Delete  bool       `parser:"| @'delete'"`
	Rename  *Ref       `parser:"| 'rename' @@"`
	Expect  *Expect    `parser:"| 'expect' @@"`
}

// Size is a canvas size.
type Size struct {
	W float64 `parser:"@Number"`
	H float64 `parser:"@Number"`
}

// Point is a pointer position.
type Point struct {
	X float64 `parser:"@Number"`
	Y float64 `parser:"@Number"`
}

// Ref names an element.
type Ref struct {
	Name string `parser:"@Ident"`
}

// Add creates an element of Kind, optionally named.
type Add struct {
	Kind string `parser:"@Ident"`
	Name string `parser:"@Ident?"`
}

// Press is a pointer press.
type Press struct {
	Button string `parser:"@( 'left' | 'right' )"`
	At     Point  `parser:"@@"`
	Shift  bool   `parser:"@'shift'?"`
}

// Nudge is an arrow-key nudge of the selection.
type Nudge struct {
	Dir   string   `parser:"@( 'left' | 'right' | 'up' | 'down' )"`
	Flags []string `parser:"@( 'big' | 'detach' )*"`
}

// AlignPair is a horizontal and a vertical mode name.
type AlignPair struct {
	H string `parser:"@Ident"`
	V string `parser:"@Ident"`
}

// Expect asserts either an element's rendered box or its modes.
type Expect struct {
	Name  string     `parser:"@Ident"`
	Align *AlignPair `parser:"( 'align' @@ )?"`
	Box   *Box       `parser:"@@?"`
}

// Box is an expected rendered box.
type Box struct {
	X float64 `parser:"@Number"`
	Y float64 `parser:"@Number"`
	W float64 `parser:"@Number"`
	H float64 `parser:"@Number"`
}

// Parse reads a script from r. name is used in error positions.
func Parse(name string, r io.Reader) (*Script, error) {
	s, err := scriptParser.Parse(name, r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScript, err, "parse %s", name)
	}
	return s, nil
}

// ParseString parses a script held in memory.
func ParseString(name, src string) (*Script, error) {
	s, err := scriptParser.ParseString(name, src)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScript, err, "parse %s", name)
	}
	return s, nil
}
