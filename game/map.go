package game

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// Spawn is a player start position and the map character that placed it.
type Spawn struct {
	Symbol rune
	Pos    Position
}

// Map is the static layout of a game: the island, the lighthouses and the
// player spawns.
type Map struct {
	Island      [][]bool // [y][x], y = 0 is the bottom row
	Lighthouses []Position
	Spawns      []Spawn // ordered by Symbol
}

// ParseMap reads the text map format: one row per line, '#' water, '!'
// lighthouse, ' ' island, any other character an island cell where that
// player spawns. Lines are read in reverse, so the file's last line becomes
// y = 0.
func ParseMap(r io.Reader) (*Map, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read map: %w", err)
	}
	if len(lines) == 0 {
		return nil, gameErrorf("map is empty")
	}

	m := &Map{}
	for y := range lines {
		line := []rune(lines[len(lines)-1-y])
		row := make([]bool, len(line))
		for x, c := range line {
			pos := Position{X: x, Y: y}
			switch c {
			case '#':
			case '!':
				row[x] = true
				m.Lighthouses = append(m.Lighthouses, pos)
			case ' ':
				row[x] = true
			default:
				row[x] = true
				m.Spawns = append(m.Spawns, Spawn{Symbol: c, Pos: pos})
			}
		}
		m.Island = append(m.Island, row)
	}
	slices.SortStableFunc(m.Spawns, func(a, b Spawn) int { return int(a.Symbol) - int(b.Symbol) })

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func LoadMap(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open map: %w", err)
	}
	defer f.Close()
	return ParseMap(f)
}

// Validate checks that rows share one width and the border is water.
func (m *Map) Validate() error {
	if len(m.Island) == 0 || len(m.Island[0]) == 0 {
		return gameErrorf("map is empty")
	}
	w := len(m.Island[0])
	for y, row := range m.Island {
		if len(row) != w {
			return gameErrorf("all map rows must have the same width: row %d has %d cells, want %d", y, len(row), w)
		}
	}
	top := len(m.Island) - 1
	for x := 0; x < w; x++ {
		if m.Island[0][x] || m.Island[top][x] {
			return gameErrorf("map border must not be part of island: column %d", x)
		}
	}
	for y, row := range m.Island {
		if row[0] || row[w-1] {
			return gameErrorf("map border must not be part of island: row %d", y)
		}
	}
	return nil
}
