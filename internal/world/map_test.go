package world

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samdwyer/verbonia/internal/geom"
)

func TestNewMapDimensions(t *testing.T) {
	rows := [][]Tile{
		{TileWall, TileWall, TileWall},
		{TileWall, TileFloor, TileWall},
	}

	m, err := NewMap(rows)
	if err != nil {
		t.Fatalf("NewMap() failed: %v", err)
	}
	if m.Size() != geom.Sz(3, 2) {
		t.Errorf("Size() = %v, want 3x2", m.Size())
	}
	if got := m.At(geom.Pt(1, 1)); got != TileFloor {
		t.Errorf("At(1,1) = %v, want floor", got)
	}
	if got := m.At(geom.Pt(5, 5)); got != TileEmpty {
		t.Errorf("At(5,5) = %v, want empty outside the map", got)
	}
}

func TestNewMapRejectsRaggedRows(t *testing.T) {
	rows := [][]Tile{
		{TileFloor, TileFloor},
		{TileFloor, TileFloor},
		{TileFloor},
	}

	m, err := NewMap(rows)
	if m != nil {
		t.Error("NewMap() should not return a map for ragged rows")
	}
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("NewMap() error = %v, want ErrDimensionMismatch", err)
	}

	var dimErr *DimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("NewMap() error should be a *DimensionError, got %T", err)
	}
	if dimErr.Row != 2 || dimErr.Width != 1 || dimErr.Expected != 2 {
		t.Errorf("DimensionError = %+v, want row 2 width 1 expected 2", dimErr)
	}
}

func TestNewMapRejectsEmpty(t *testing.T) {
	if _, err := NewMap(nil); !errors.Is(err, ErrEmptyMap) {
		t.Errorf("NewMap(nil) error = %v, want ErrEmptyMap", err)
	}
	if _, err := NewMap([][]Tile{{}}); !errors.Is(err, ErrEmptyMap) {
		t.Errorf("NewMap([[]]) error = %v, want ErrEmptyMap", err)
	}
}

func TestFromString(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		width  int
		height int
	}{
		{"single row", "....", 4, 1},
		{"square", "###\n#.#\n###", 3, 3},
		{"trailing newline", "#,\n,#\n", 2, 2},
		{"blank lines skipped", "\n##\n\n..\n", 2, 2},
		{"crlf", "#.#\r\n.,.\r\n", 3, 2},
		{"empty tiles", "   \n # ", 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := FromString(tt.text)
			if err != nil {
				t.Fatalf("FromString() failed: %v", err)
			}
			if m.Width() != tt.width || m.Height() != tt.height {
				t.Errorf("FromString() size = %dx%d, want %dx%d", m.Width(), m.Height(), tt.width, tt.height)
			}

			var lines []string
			for _, l := range strings.Split(strings.ReplaceAll(tt.text, "\r", ""), "\n") {
				if l != "" {
					lines = append(lines, l)
				}
			}
			for y, line := range lines {
				for x, ch := range line {
					want, _ := TileFromRune(ch)
					if got := m.At(geom.Pt(x, y)); got != want {
						t.Errorf("At(%d,%d) = %v, want %v", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestFromStringErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
		line int
	}{
		{"short row", "###\n##\n###", ErrDimensionMismatch, 2},
		{"long row after blank", "##\n\n###", ErrDimensionMismatch, 3},
		{"unknown glyph", "##\n#x", ErrUnknownTile, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := FromString(tt.text)
			if m != nil {
				t.Error("FromString() should not return a map on error")
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("FromString() error = %v, want %v", err, tt.want)
			}
			var buildErr *BuildError
			if !errors.As(err, &buildErr) {
				t.Fatalf("FromString() error should be a *BuildError, got %T", err)
			}
			if buildErr.Line != tt.line {
				t.Errorf("BuildError.Line = %d, want %d", buildErr.Line, tt.line)
			}
		})
	}

	if _, err := FromString("\n\n"); !errors.Is(err, ErrEmptyMap) {
		t.Errorf("FromString(blank) error = %v, want ErrEmptyMap", err)
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cave.txt")
	if err := os.WriteFile(path, []byte("#####\n#...#\n#####\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	m, err := FromFile(context.Background(), path)
	if err != nil {
		t.Fatalf("FromFile() failed: %v", err)
	}
	if m.Size() != geom.Sz(5, 3) {
		t.Errorf("FromFile() size = %v, want 5x3", m.Size())
	}
	if got := m.String(); got != "#####\n#...#\n#####" {
		t.Errorf("String() = %q", got)
	}

	if _, err := FromFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("FromFile() should fail for a missing file")
	}
}

func TestRegion(t *testing.T) {
	m, err := FromString("abcd")
	if err == nil || m != nil {
		t.Fatal("FromString() should reject letters")
	}

	m, err = FromString("#.,#\n.#.,\n,,..")
	if err != nil {
		t.Fatalf("FromString() failed: %v", err)
	}

	rows := m.Region(geom.NewRect(1, 1, 3, 2))
	if len(rows) != 2 || len(rows[0]) != 3 {
		t.Fatalf("Region() = %dx%d, want 3x2", len(rows[0]), len(rows))
	}
	if rows[0][0] != TileWall || rows[1][2] != TileFloor {
		t.Errorf("Region() corners = %v %v, want wall floor", rows[0][0], rows[1][2])
	}
}

func TestRegionOutOfBoundsPanics(t *testing.T) {
	m, err := Filled(5, 5, TileFloor)
	if err != nil {
		t.Fatalf("Filled() failed: %v", err)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Region() should panic outside the map")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "5x5") {
			t.Errorf("panic = %v, want diagnostic with map size", r)
		}
	}()
	m.Region(geom.NewRect(3, 0, 3, 5))
}
