package layout

import (
	"testing"

	"github.com/matzehuels/hmibuilder/pkg/errors"
)

func TestCatalogCapabilities(t *testing.T) {
	tests := []struct {
		kind      Kind
		width     bool
		height    bool
		container bool
		autoH     bool
	}{
		{KindText, false, false, false, true},
		{KindRadio, false, false, false, true},
		{KindTextBox, true, false, false, true},
		{KindDropdown, true, false, false, true},
		{KindButton, true, true, false, false},
		{KindSlider, true, true, false, false},
		{KindGroup, true, true, true, false},
		{KindBorder, true, true, true, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			info, ok := tt.kind.Info()
			if !ok {
				t.Fatalf("Info(%s) missing", tt.kind)
			}
			c := info.Caps
			if c.ResizeWidth != tt.width || c.ResizeHeight != tt.height || c.Container != tt.container {
				t.Errorf("Caps = %+v", c)
			}
			if info.Height.IsAuto() != tt.autoH {
				t.Errorf("Height auto = %v, want %v", info.Height.IsAuto(), tt.autoH)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	if k, err := ParseKind("listbox"); err != nil || k != KindListBox {
		t.Errorf("ParseKind(listbox) = %v, %v", k, err)
	}
	if _, err := ParseKind("canvas"); !errors.Is(err, errors.ErrCodeInvalidKind) {
		t.Errorf("ParseKind(canvas) error = %v, want %s", err, errors.ErrCodeInvalidKind)
	}
	if got := len(Kinds()); got != 13 {
		t.Errorf("len(Kinds()) = %d, want 13", got)
	}
}
