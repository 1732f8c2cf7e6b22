package types

import "fmt"

// Location is one place a hylite was written
type Location struct {
	File string
	Line int // 1-based
}

// String formats the location as file:line
func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}
