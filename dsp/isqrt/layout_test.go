package isqrt

import (
	"errors"
	"testing"
)

func tinyLayout() Layout {
	return Layout{
		Width:         4,
		High:          Segment{Offset: 2, Width: 2},
		Mid:           Segment{Offset: 1, Width: 2},
		Low:           Segment{Offset: 0, Width: 2},
		HighOverrides: 2,
		MidOverrides:  2,
		PassMask:      DefaultPassMask,
	}
}

func TestShippedLayouts(t *testing.T) {
	tests := []struct {
		name          string
		layout        Layout
		width         int
		upper, lower  int
		high, mid     int
		highEntries   int
		midLowEntries int
	}{
		{"23-bit", Layout23(), 23, 2, 2, 4, 4, 512, 512},
		{"24-bit", Layout24(), 24, 1, 1, 2, 2, 256, 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := tt.layout
			if err := l.Validate(); err != nil {
				t.Fatalf("Validate() = %v", err)
			}
			if l.Width != tt.width {
				t.Errorf("Width = %d, want %d", l.Width, tt.width)
			}
			if l.UpperOverlap() != tt.upper || l.LowerOverlap() != tt.lower {
				t.Errorf("overlaps = %d/%d, want %d/%d", l.UpperOverlap(), l.LowerOverlap(), tt.upper, tt.lower)
			}
			if l.HighOverrides != tt.high || l.MidOverrides != tt.mid {
				t.Errorf("overrides = %d/%d, want %d/%d", l.HighOverrides, l.MidOverrides, tt.high, tt.mid)
			}
			if l.High.Size() != tt.highEntries || l.Mid.Size() != tt.midLowEntries || l.Low.Size() != tt.midLowEntries {
				t.Errorf("sizes = %d/%d/%d", l.High.Size(), l.Mid.Size(), l.Low.Size())
			}
			if l.PassMask != DefaultPassMask {
				t.Errorf("PassMask = %#x, want %#x", l.PassMask, DefaultPassMask)
			}
		})
	}
}

func TestLayoutOptions(t *testing.T) {
	l := Layout24(WithOverrides(4, 3), WithPassMask(0x1fff), nil)
	if l.HighOverrides != 4 || l.MidOverrides != 3 {
		t.Errorf("overrides = %d/%d, want 4/3", l.HighOverrides, l.MidOverrides)
	}
	if l.PassMask != 0x1fff {
		t.Errorf("PassMask = %#x, want 0x1fff", l.PassMask)
	}
}

//nolint:funlen
func TestLayoutValidate(t *testing.T) {
	mutate := func(base Layout, fn func(*Layout)) Layout {
		fn(&base)
		return base
	}

	tests := []struct {
		name    string
		layout  Layout
		wantErr error
	}{
		{"23-bit", Layout23(), nil},
		{"24-bit", Layout24(), nil},
		{"tiny", tinyLayout(), nil},
		{"zero width", mutate(Layout24(), func(l *Layout) { l.Width = 0 }), ErrWidth},
		{"too wide", mutate(Layout24(), func(l *Layout) { l.Width = 33 }), ErrWidth},
		{"empty segment", mutate(Layout24(), func(l *Layout) { l.Low.Width = 0 }), ErrSegmentWidth},
		{"huge segment", mutate(Layout24(), func(l *Layout) { l.High.Width = 17 }), ErrSegmentWidth},
		{"low not at zero", mutate(Layout24(), func(l *Layout) { l.Low.Offset = 1 }), ErrLowOffset},
		{"offsets equal", mutate(Layout24(), func(l *Layout) { l.Mid.Offset = 16 }), ErrOffsetOrder},
		{"offsets swapped", mutate(Layout24(), func(l *Layout) { l.High.Offset = 4 }), ErrOffsetOrder},
		{"top short", mutate(Layout24(), func(l *Layout) { l.Width = 25 }), ErrTopCoverage},
		{"top long", mutate(Layout23(), func(l *Layout) { l.Width = 22 }), ErrTopCoverage},
		{"gap high/mid", mutate(Layout24(), func(l *Layout) { l.Mid.Width = 8 }), ErrOverlap},
		{"gap mid/low", mutate(Layout24(), func(l *Layout) { l.Low.Width = 8 }), ErrOverlap},
		{"overlap too wide", mutate(Layout24(), func(l *Layout) { l.Mid.Width = 11 }), ErrOverlap},
		{"overlap swallows high", mutate(tinyLayout(), func(l *Layout) { l.Mid.Width = 3 }), ErrOverlap},
		{"too many overrides", Layout24(WithOverrides(257, 2)), ErrOverrideCount},
		{"negative overrides", Layout24(WithOverrides(2, -1)), ErrOverrideCount},
		{"all overridden", Layout24(WithOverrides(256, 512)), nil},
		{"narrow pass mask", Layout24(WithPassMask(0xff)), ErrPassMask},
		{"exact pass mask", Layout24(WithPassMask(0xfff)), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.layout.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLayoutSplit(t *testing.T) {
	l := Layout24()
	// 5000 = 0x1388
	hi, mid, lo := l.Split(5000)
	if hi != 0 || mid != 0x13 || lo != 0x188 {
		t.Errorf("Split(5000) = [%#x,%#x,%#x], want [0,0x13,0x188]", hi, mid, lo)
	}

	if l.Max() != 1<<24-1 {
		t.Errorf("Max() = %d", l.Max())
	}
}
