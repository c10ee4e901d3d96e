package domain

import "fmt"

// PathOp is a 2-D path command.
type PathOp uint8

const (
	OpMove PathOp = iota
	OpLine
)

// String returns the SVG command letter.
func (op PathOp) String() string {
	if op == OpMove {
		return "M"
	}
	return "L"
}

func (op PathOp) MarshalText() ([]byte, error) {
	if op == OpMove {
		return []byte("MOVE"), nil
	}
	return []byte("LINE"), nil
}

// PathSegment is one command of a timeline polyline.
type PathSegment struct {
	Op PathOp  `json:"op"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

func (op *PathOp) UnmarshalText(b []byte) error {
	switch string(b) {
	case "MOVE", "M":
		*op = OpMove
	case "LINE", "L":
		*op = OpLine
	default:
		return fmt.Errorf("unknown path op %q", b)
	}
	return nil
}
