package layout

import (
	"errors"
	"fmt"
)

// Name identifies one of the fixed layout choices
type Name int

const (
	Tree Name = iota
	Accordion
	Landscape
)

// Count is the number of layout choices
const Count = 3

// Choices lists every layout in cycle order
var Choices = [Count]Name{Tree, Accordion, Landscape}

var names = [Count]string{"Tree", "Accordion", "Landscape"}

func (n Name) String() string {
	if !n.Valid() {
		return "unknown"
	}
	return names[n]
}

// Valid reports whether n is one of Choices
func (n Name) Valid() bool {
	return n >= 0 && int(n) < Count
}

// ErrInvalidLayout matches every *InvalidLayoutError via errors.Is
var ErrInvalidLayout = errors.New("invalid layout")

// InvalidLayoutError is returned when a layout name is not one of Choices
type InvalidLayoutError struct {
	Choice string
}

func (e *InvalidLayoutError) Error() string {
	return fmt.Sprintf("invalid layout choice `%s`", e.Choice)
}

func (e *InvalidLayoutError) Is(target error) bool {
	return target == ErrInvalidLayout
}

// IndexOf returns the position of choice in Choices, or -1 if it is not there
func IndexOf(choice string) int {
	for i, name := range names {
		if name == choice {
			return i
		}
	}
	return -1
}

// Parse turns a display name back into a Name
func Parse(choice string) (Name, error) {
	idx := IndexOf(choice)
	if idx == -1 {
		return 0, &InvalidLayoutError{Choice: choice}
	}
	return Choices[idx], nil
}
