// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/colorslide/internal/puzzle"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Rows     []string          `yaml:"rows"`
	Tokens   []YAMLToken       `yaml:"tokens"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLToken is one starting token placement.
type YAMLToken struct {
	Row   int    `yaml:"row"`
	Col   int    `yaml:"col"`
	Color string `yaml:"color"`
}

// Level is a parsed and validated level plus file metadata.
type Level struct {
	Level    *puzzle.Level
	Metadata map[string]string
}

// ParseYAML parses and validates a YAML level file.
// Row symbols: '.' empty, '#' wall, 'A'..'G' goals; spaces are ignored.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	rows, err := parseRows(yl.Rows)
	if err != nil {
		return Level{}, err
	}

	tokens := make([]puzzle.Token, 0, len(yl.Tokens))
	for i, t := range yl.Tokens {
		color, ok := puzzle.ParseColor(t.Color)
		if !ok {
			return Level{}, fmt.Errorf("token %d: unknown color %q", i, t.Color)
		}
		tokens = append(tokens, puzzle.Token{Color: color, Pos: puzzle.At(t.Row, t.Col)})
	}

	lvl, err := puzzle.NewLevel(yl.ID, yl.Name, rows, tokens)
	if err != nil {
		return Level{}, err
	}

	return Level{Level: lvl, Metadata: yl.Metadata}, nil
}

func parseRows(lines []string) ([][]puzzle.Cell, error) {
	rows := make([][]puzzle.Cell, 0, len(lines))
	for r, line := range lines {
		line = strings.ReplaceAll(line, " ", "")
		row := make([]puzzle.Cell, 0, len(line))
		for _, sym := range line {
			cell, ok := puzzle.ParseCell(sym)
			if !ok {
				return nil, fmt.Errorf("row %d: unknown cell symbol %q", r, sym)
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// MarshalYAML encodes a level back into the file format.
func MarshalYAML(lvl *puzzle.Level, metadata map[string]string) ([]byte, error) {
	yl := YAMLLevel{
		ID:       lvl.ID(),
		Name:     lvl.Name(),
		Rows:     strings.Split(lvl.String(), "\n"),
		Metadata: metadata,
	}
	for _, t := range lvl.InitialTokens() {
		yl.Tokens = append(yl.Tokens, YAMLToken{Row: t.Pos.Row, Col: t.Pos.Col, Color: t.Color.String()})
	}
	return yaml.Marshal(yl)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
