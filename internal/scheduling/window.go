package scheduling

import (
	"clinic-scheduling-service/pkg/clock"
)

// endOfDay caps the first segment of a midnight-crossing window.
var endOfDay = clock.MustParse("23:59")

// Segment is one contiguous stretch of a working period within a single
// UTC calendar day. End is the hard boundary: no slot may extend past it.
type Segment struct {
	Start clock.Time
	End   clock.Time
}

// Window is a doctor's UTC working period for one weekday. A window whose
// end is at or before its start crosses UTC midnight: the period began as a
// continuous local-time shift and wrapped during UTC conversion. The
// distinction is carried here as state so callers never re-derive it by
// comparing time strings.
type Window struct {
	start           clock.Time
	end             clock.Time
	crossesMidnight bool
}

func NewWindow(start, end clock.Time) Window {
	return Window{
		start:           start,
		end:             end,
		crossesMidnight: !start.Before(end),
	}
}

func (w Window) Start() clock.Time     { return w.start }
func (w Window) End() clock.Time       { return w.end }
func (w Window) CrossesMidnight() bool { return w.crossesMidnight }

// Segments splits the window into per-day stretches. A same-day window is
// a single segment. A midnight-crossing window yields the evening stretch
// up to 23:59 and the overnight stretch from 00:00; both belong to the one
// schedule of the date the shift starts on.
func (w Window) Segments() []Segment {
	if !w.crossesMidnight {
		return []Segment{{Start: w.start, End: w.end}}
	}
	return []Segment{
		{Start: w.start, End: endOfDay},
		{Start: clock.Time{}, End: w.end},
	}
}
