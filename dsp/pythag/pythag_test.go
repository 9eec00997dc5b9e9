package pythag

import (
	"bytes"
	"errors"
	"testing"

	"github.com/zaitcev/airspy-yoga/internal/testutil"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		bits     int
		i, q     uint32
		want     uint32
		describe string
	}{
		{7, 64, 64, 0, "origin"},
		{7, 67, 68, 5, "3-4-5"},
		{7, 61, 60, 5, "negative 3-4-5"},
		{7, 0, 0, 90, "most negative corner"},
		{7, 127, 127, 89, "most positive corner"},
		{12, 2048, 0, 2048, "12-bit axis"},
		{12, 0, 0, 2896, "12-bit corner"},
	}

	for _, tt := range tests {
		if got := Distance(tt.bits, tt.i, tt.q); got != tt.want {
			t.Errorf("%s: Distance(%d, %d, %d) = %d, want %d", tt.describe, tt.bits, tt.i, tt.q, got, tt.want)
		}
	}
}

func TestTable(t *testing.T) {
	dist, err := Table(7, ModeDistance)
	if err != nil {
		t.Fatal(err)
	}
	if len(dist) != Len(7, ModeDistance) || len(dist) != 128*128 {
		t.Fatalf("len = %d, want %d", len(dist), 128*128)
	}
	if dist[64*128+64] != 0 || dist[67*128+68] != 5 {
		t.Errorf("unexpected entries: %d %d", dist[64*128+64], dist[67*128+68])
	}

	// The table is symmetric in i and q.
	for i := range 128 {
		for q := range 128 {
			if dist[i*128+q] != dist[q*128+i] {
				t.Fatalf("asymmetric at (%d, %d)", i, q)
			}
		}
	}

	sq, err := Table(8, ModeSqrt)
	if err != nil {
		t.Fatal(err)
	}
	if len(sq) != 256 || sq[255] != 15 || sq[16] != 4 {
		t.Errorf("sqrt table: len=%d [16]=%d [255]=%d", len(sq), sq[16], sq[255])
	}
}

func TestBits(t *testing.T) {
	for bits := MinBits; bits <= MaxBits; bits++ {
		if err := Validate(bits); err != nil {
			t.Errorf("Validate(%d) = %v", bits, err)
		}
	}

	for _, bits := range []int{0, 6, 13} {
		if err := Validate(bits); !errors.Is(err, ErrBits) {
			t.Errorf("Validate(%d) = %v, want %v", bits, err, ErrBits)
		}
		if _, err := Table(bits, ModeSqrt); !errors.Is(err, ErrBits) {
			t.Errorf("Table(%d): err = %v, want %v", bits, err, ErrBits)
		}
		if err := WriteC(&bytes.Buffer{}, bits, ModeSqrt); !errors.Is(err, ErrBits) {
			t.Errorf("WriteC(%d): err = %v, want %v", bits, err, ErrBits)
		}
	}
}

func TestWriteCSqrt(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteC(&buf, 7, ModeSqrt); err != nil {
		t.Fatal(err)
	}

	lines := testutil.Lines(buf.Bytes())
	if len(lines) != 128+2 {
		t.Fatalf("line count = %d, want %d", len(lines), 130)
	}
	testutil.RequireLines(t, lines, map[int]string{
		0:  "{",
		1:  "  0,",
		5:  "  2,",
		-2: "  11",
		-1: "}",
	})
}

func TestWriteCDistance(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteC(&buf, 7, ModeDistance); err != nil {
		t.Fatal(err)
	}

	lines := testutil.Lines(buf.Bytes())
	if want := 2 + 128 + 128*128; len(lines) != want {
		t.Fatalf("line count = %d, want %d", len(lines), want)
	}
	testutil.RequireLines(t, lines, map[int]string{
		0:       "{",
		1:       "  // 0",
		2:       "  90,",
		2 + 128: "  // 1",
		-3:      "  88,",
		-2:      "  89",
		-1:      "}",
	})
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteCPropagatesError(t *testing.T) {
	if err := WriteC(failWriter{}, 7, ModeSqrt); err == nil {
		t.Fatal("expected write error")
	}
}
