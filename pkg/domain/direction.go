package domain

import "fmt"

// Direction is the head move applied after a symbol has been written.
type Direction int

const (
	Right Direction = iota
	Left
)

// String returns the keyword used by the configuration grammar.
func (d Direction) String() string {
	switch d {
	case Right:
		return "RIGHT"
	case Left:
		return "LEFT"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Delta is the signed head displacement of the move.
func (d Direction) Delta() int {
	if d == Left {
		return -1
	}
	return 1
}

// ParseDirection converts a grammar keyword into a Direction.
// Keywords are case sensitive.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "RIGHT":
		return Right, nil
	case "LEFT":
		return Left, nil
	}
	return Right, fmt.Errorf("unknown direction %q", s)
}

// MarshalText implements encoding.TextMarshaler so directions serialize as keywords.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
