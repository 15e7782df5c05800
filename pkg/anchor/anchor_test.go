package anchor

import (
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		p         Placement
		extent    float64
		intrinsic float64
		want      Span
	}{
		{"start explicit", AtStart(40, Px(100)), 400, 0, Span{40, 100}},
		{"start auto", AtStart(12, Auto), 400, 30, Span{12, 30}},
		{"end", AtEnd(60, Px(100)), 400, 0, Span{240, 100}},
		{"center zero offset", Centered(0, Px(100)), 400, 0, Span{150, 100}},
		{"center pseudo offset", Centered(-220, Px(100)), 400, 0, Span{40, 100}},
		{"stretch", Stretched(40, 60), 400, 0, Span{40, 300}},
		{"stretch overlapping", Stretched(300, 200), 400, 0, Span{300, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Resolve(tt.extent, tt.intrinsic)
			if got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRealignPreservesSpan(t *testing.T) {
	origins := []Placement{
		AtStart(40, Px(100)),
		Centered(-220, Px(100)),
		AtEnd(260, Px(100)),
		Stretched(40, 260),
	}
	const extent = 400
	want := Span{40, 100}

	for _, from := range origins {
		for _, to := range Aligns {
			t.Run(from.Align().String()+"->"+to.String(), func(t *testing.T) {
				got := from.Realign(to, extent, 0)
				if got.Align() != to {
					t.Fatalf("Align() = %v, want %v", got.Align(), to)
				}
				if span := got.Resolve(extent, 0); span != want {
					t.Errorf("Resolve() = %+v, want %+v", span, want)
				}
			})
		}
	}
}

func TestRealignStoredNumbers(t *testing.T) {
	src := AtStart(40, Px(100))

	if got := src.Realign(End, 400, 0).Offset(); got != 260 {
		t.Errorf("End offset = %v, want 260", got)
	}
	if got := src.Realign(Center, 400, 0).Offset(); got != -220 {
		t.Errorf("Center offset = %v, want -220", got)
	}
	s, e, ok := src.Realign(Stretch, 400, 0).Stretch()
	if !ok || s != 40 || e != 260 {
		t.Errorf("Stretch() = (%v, %v, %v), want (40, 260, true)", s, e, ok)
	}
}

func TestRealignSizeHandling(t *testing.T) {
	t.Run("from stretch becomes explicit", func(t *testing.T) {
		got := Stretched(40, 260).Realign(Start, 400, 0)
		v, ok := got.Size().Value()
		if !ok || v != 100 {
			t.Errorf("Size() = %v, want 100", got.Size())
		}
	})

	t.Run("auto survives non-stretch", func(t *testing.T) {
		got := AtStart(10, Auto).Realign(End, 400, 30)
		if !got.Size().IsAuto() {
			t.Errorf("Size() = %v, want auto", got.Size())
		}
		if got.Offset() != 360 {
			t.Errorf("Offset() = %v, want 360", got.Offset())
		}
	})

	t.Run("to stretch drops size", func(t *testing.T) {
		got := AtStart(10, Px(50)).Realign(Stretch, 400, 0)
		if !got.Size().IsAuto() {
			t.Errorf("Size() = %v, want auto", got.Size())
		}
	})
}

func TestRealignRounding(t *testing.T) {
	tests := []struct {
		name string
		p    Placement
		to   Align
		want float64
	}{
		{"half up", AtEnd(10.5, Px(100)), Start, 290},               // 289.5
		{"negative whole", AtStart(0, Px(100)), Center, -300},       // 0 - 300
		{"negative half", AtEnd(302.5, Px(100)), Start, -2},         // -2.5
		{"fraction above half", AtStart(10.4, Px(100)), End, 290},   // 289.6
		{"fraction below half", AtStart(10.6, Px(100)), End, 289},   // 289.4
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Realign(tt.to, 400, 0).Offset()
			if got != tt.want {
				t.Errorf("Offset() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRealignClampsStretch(t *testing.T) {
	// 10.5 and 389.5 both round up, leaving a size of -1.
	got := AtStart(10.5, Px(0)).Realign(Stretch, 400, 0)
	s, e, _ := got.Stretch()
	if s != 11 || e != 389 {
		t.Errorf("Stretch() = (%v, %v), want (11, 389)", s, e)
	}
	if size := got.Resolve(400, 0).Size; size != 0 {
		t.Errorf("size = %v, want 0", size)
	}
}

func TestRealignSameMode(t *testing.T) {
	p := Centered(3.7, Px(12))
	if got := p.Realign(Center, 400, 0); got != p {
		t.Errorf("Realign(Center) = %v, want %v", got, p)
	}
}

func TestShift(t *testing.T) {
	tests := []struct {
		name string
		p    Placement
	}{
		{"start", AtStart(40, Px(100))},
		{"center", Centered(-220, Px(100))},
		{"end", AtEnd(260, Px(100))},
		{"stretch", Stretched(40, 260)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.p.Resolve(400, 0)
			after := tt.p.Shift(10).Resolve(400, 0)
			if after.Start != before.Start+10 || after.Size != before.Size {
				t.Errorf("Shift(10) span = %+v, want start %v size %v", after, before.Start+10, before.Size)
			}
		})
	}
}

func TestMargins(t *testing.T) {
	tests := []struct {
		p          Placement
		start, end float64
	}{
		{AtStart(5, Auto), 5, 0},
		{Centered(5, Auto), 5, 0},
		{AtEnd(7, Auto), 0, 7},
		{Stretched(3, 4), 3, 4},
	}
	for _, tt := range tests {
		t.Run(tt.p.String(), func(t *testing.T) {
			s, e := tt.p.Margins()
			if s != tt.start || e != tt.end {
				t.Errorf("Margins() = (%v, %v), want (%v, %v)", s, e, tt.start, tt.end)
			}
		})
	}
}

func TestParseAlign(t *testing.T) {
	tests := []struct {
		in      string
		want    Align
		wantErr bool
	}{
		{"start", Start, false},
		{"Left", Start, false},
		{"top", Start, false},
		{"middle", Center, false},
		{"right", End, false},
		{"bottom", End, false},
		{"STRETCH", Stretch, false},
		{"diagonal", Start, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlign(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAlign(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseAlign(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAlignNames(t *testing.T) {
	if got := End.Horizontal(); got != "right" {
		t.Errorf("End.Horizontal() = %q, want right", got)
	}
	if got := Start.Vertical(); got != "top" {
		t.Errorf("Start.Vertical() = %q, want top", got)
	}
	if got := Stretch.Next(); got != Start {
		t.Errorf("Stretch.Next() = %v, want start", got)
	}
}

func TestCycle(t *testing.T) {
	tests := []struct {
		from    Align
		stretch bool
		want    Align
	}{
		{Start, true, Center},
		{End, true, Stretch},
		{Stretch, true, Start},
		{End, false, Start},
		{Center, false, End},
	}
	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			if got := tt.from.Cycle(tt.stretch); got != tt.want {
				t.Errorf("%v.Cycle(%v) = %v, want %v", tt.from, tt.stretch, got, tt.want)
			}
		})
	}
}
