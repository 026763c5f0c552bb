package world

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/verbonia/internal/telemetry"
)

// ErrUnknownTile is returned when a text map contains a character with no tile.
var ErrUnknownTile = errors.New("world: unknown tile character")

// BuildError locates a text map failure. Line is 1-based and counts blank lines.
type BuildError struct {
	Line int
	Err  error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("world: map line %d: %v", e.Line, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// FromGrid builds a map from an already decoded tile grid.
func FromGrid(rows [][]Tile) (*Map, error) {
	return NewMap(rows)
}

// FromString builds a map from its text form: one line per row, one character per tile.
// Blank lines are skipped.
func FromString(text string) (*Map, error) {
	return FromReader(strings.NewReader(text))
}

// FromReader reads a text map from r. See FromString.
func FromReader(r io.Reader) (*Map, error) {
	var rows [][]Tile
	width := -1
	lineNo := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		n := utf8.RuneCountInString(line)
		if width < 0 {
			width = n
		} else if n != width {
			return nil, &BuildError{
				Line: lineNo,
				Err:  &DimensionError{Row: len(rows), Width: n, Expected: width},
			}
		}

		row := make([]Tile, 0, n)
		col := 0
		for _, ch := range line {
			col++
			tile, ok := TileFromRune(ch)
			if !ok {
				return nil, &BuildError{
					Line: lineNo,
					Err:  fmt.Errorf("%w %q at column %d", ErrUnknownTile, ch, col),
				}
			}
			row = append(row, tile)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("world: failed to read map: %w", err)
	}

	return NewMap(rows)
}

// FromFile loads a text map from disk.
func FromFile(ctx context.Context, path string) (*Map, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "map.load")
	defer span.End()
	span.SetAttributes(attribute.String("map.path", path))

	f, err := os.Open(path)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("world: failed to open map %s: %w", path, err)
	}
	defer f.Close()

	m, err := FromReader(f)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	span.SetAttributes(
		attribute.Int("map.width", m.Width()),
		attribute.Int("map.height", m.Height()),
	)
	return m, nil
}
