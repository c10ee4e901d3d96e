package timeline

import (
	"strconv"
	"strings"

	"github.com/99minutos/eld-logs/internal/core/domain"
)

// PathData renders segments as an SVG path "d" attribute, e.g.
// "M 240 100 L 360 100 L 360 0".
func PathData(segments []domain.PathSegment) string {
	var b strings.Builder
	for i, seg := range segments {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(seg.Op.String())
		b.WriteByte(' ')
		b.WriteString(formatCoord(seg.X))
		b.WriteByte(' ')
		b.WriteString(formatCoord(seg.Y))
	}
	return b.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// GridLine is a horizontal status line of the log grid.
type GridLine struct {
	Status domain.DutyStatus `json:"status"`
	Label  string            `json:"label"`
	Y      float64           `json:"y"`
}

// HourTick is a vertical hour marker of the log grid.
type HourTick struct {
	Hour int     `json:"hour"`
	X    float64 `json:"x"`
}

// GridLayout holds the static geometry drawn behind a path.
type GridLayout struct {
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Lines  []GridLine `json:"lines"`
	Ticks  []HourTick `json:"ticks"`
}

// Grid returns the four status lines and the 25 hour ticks (0 through 24)
// for frame.
func Grid(frame Frame) GridLayout {
	statuses := []domain.DutyStatus{
		domain.StatusOffDuty,
		domain.StatusSleeper,
		domain.StatusDriving,
		domain.StatusOnDuty,
	}

	layout := GridLayout{
		Width:  frame.Width,
		Height: frame.Height,
		Lines:  make([]GridLine, 0, len(statuses)),
		Ticks:  make([]HourTick, 0, 25),
	}
	for _, s := range statuses {
		y, _ := frame.Y(s)
		layout.Lines = append(layout.Lines, GridLine{Status: s, Label: s.Label(), Y: y})
	}
	for h := 0; h <= 24; h++ {
		layout.Ticks = append(layout.Ticks, HourTick{Hour: h, X: float64(h) * frame.Width / 24})
	}
	return layout
}
