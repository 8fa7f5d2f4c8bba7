// Package notation parses and formats moves written as row-column tokens
// joined by dashes, e.g. "3C-4D" or "3C-5E-7C".
package notation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"checkers/internal/board"
)

// ErrSyntax is wrapped by every parse failure.
var ErrSyntax = errors.New("invalid move syntax")

const separator = "-"

// ParseCoordinate reads a single token such as "3C". The column letter is
// case insensitive.
func ParseCoordinate(s string) (board.Coordinate, error) {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) != 2 {
		return board.Coordinate{}, fmt.Errorf("%w: %q: want a row digit and a column letter", ErrSyntax, s)
	}
	if runes[0] < '1' || runes[0] > '8' {
		return board.Coordinate{}, fmt.Errorf("%w: %q: row must be 1-8", ErrSyntax, s)
	}
	col, ok := board.ColumnFromLetter(unicode.ToUpper(runes[1]))
	if !ok {
		return board.Coordinate{}, fmt.Errorf("%w: %q: column must be A-H", ErrSyntax, s)
	}
	return board.At(int(runes[0]-'0'), col), nil
}

// ParseMove reads a two-token simple move or a three-token capture chain.
func ParseMove(s string) ([]board.Coordinate, error) {
	tokens := strings.Split(strings.TrimSpace(s), separator)
	if len(tokens) != 2 && len(tokens) != 3 {
		return nil, fmt.Errorf("%w: %q: want 2 or 3 squares joined by %q", ErrSyntax, s, separator)
	}
	path := make([]board.Coordinate, len(tokens))
	for i, tok := range tokens {
		c, err := ParseCoordinate(tok)
		if err != nil {
			return nil, err
		}
		path[i] = c
	}
	return path, nil
}

// Format joins coordinates into notation.
func Format(path ...board.Coordinate) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = c.String()
	}
	return strings.Join(parts, separator)
}

// FormatAll renders each coordinate as its own token.
func FormatAll(cs []board.Coordinate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}
