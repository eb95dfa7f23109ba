package scheduling

import (
	"clinic-scheduling-service/pkg/clock"
)

// Slot is one bookable interval produced by segmentation. Start and End
// are UTC wall-clock times; an overnight slot set keeps both halves on
// the schedule of the date the shift starts.
type Slot struct {
	Start clock.Time
	End   clock.Time
}

// SegmentSlots walks a segment emitting slots of slotDuration minutes,
// advancing the cursor by slotDuration+breakDuration between slots. The
// final slot of the segment is truncated to end exactly on the boundary
// rather than dropped, so every minute of the working window stays
// covered. Iteration stops once the cursor reaches or passes the boundary;
// no zero-length or negative slot is ever emitted.
func SegmentSlots(seg Segment, slotDuration, breakDuration int) []Slot {
	if slotDuration <= 0 {
		return nil
	}

	var slots []Slot
	cursor := seg.Start.Minutes()
	boundary := seg.End.Minutes()

	for cursor < boundary {
		end := cursor + slotDuration
		if end >= boundary {
			slots = append(slots, Slot{Start: clock.FromMinutes(cursor), End: seg.End})
			break
		}
		slots = append(slots, Slot{Start: clock.FromMinutes(cursor), End: clock.FromMinutes(end)})
		cursor = end + breakDuration
	}

	return slots
}

// WindowSlots segments every stretch of the window in order. For a
// midnight-crossing window the result is the concatenation of the evening
// and overnight passes; all slots belong to the same schedule date.
func WindowSlots(w Window, slotDuration, breakDuration int) []Slot {
	var slots []Slot
	for _, seg := range w.Segments() {
		slots = append(slots, SegmentSlots(seg, slotDuration, breakDuration)...)
	}
	return slots
}
