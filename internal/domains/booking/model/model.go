package model

const (
	EntityName = "booking"
)

// Slot is a reserved time interval on a given date for a specific room.
// Date and times are plain strings ("2006-01-02", "15:04"); lexicographic
// comparison of those formats matches chronological order.
type Slot struct {
	CustomerName string
	Date         string
	StartTime    string
	EndTime      string
}

// ConflictsWith reports whether s collides with an existing slot. Slots on
// different dates never collide. On the same date the start boundary is closed
// and the end boundary is open against the existing start, so back-to-back
// slots (s.StartTime == existing.EndTime or s.EndTime == existing.StartTime)
// are both allowed.
func (s Slot) ConflictsWith(existing Slot) bool {
	if s.Date != existing.Date {
		return false
	}

	return (s.StartTime >= existing.StartTime && s.StartTime < existing.EndTime) ||
		(s.EndTime > existing.StartTime && s.EndTime <= existing.EndTime)
}

// Record is the denormalized global ledger entry for one successful booking:
// the slot plus the identity of the room it was booked against. Records are
// append-only and never mutated.
type Record struct {
	RoomID   int
	RoomName string
	Slot
}
