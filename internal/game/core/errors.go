package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDifficulty  = errors.New("invalid difficulty")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

// WrapCellError annotates err with the operation and cell it concerns.
// The sentinel stays reachable through errors.Is.
func WrapCellError(op string, c Coordinate, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %s: %w", op, c, err)
}
