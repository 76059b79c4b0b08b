package monitors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidPosition = errors.New("position must be x,y where x and y are integers")

// ParsePosition parses "x,y". Spaces around either number are ignored.
func ParsePosition(s string) (Position, error) {
	xStr, yStr, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok || strings.Contains(yStr, ",") {
		return Position{}, fmt.Errorf("%q: %w", s, ErrInvalidPosition)
	}

	x, err := strconv.Atoi(strings.TrimSpace(xStr))
	if err != nil {
		return Position{}, fmt.Errorf("%q: %w", s, ErrInvalidPosition)
	}
	y, err := strconv.Atoi(strings.TrimSpace(yStr))
	if err != nil {
		return Position{}, fmt.Errorf("%q: %w", s, ErrInvalidPosition)
	}

	return Position{X: x, Y: y}, nil
}

// ValidatePosition accepts an empty string or anything ParsePosition accepts.
func ValidatePosition(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := ParsePosition(s)
	return err
}
