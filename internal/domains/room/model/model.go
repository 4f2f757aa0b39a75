package model

import (
	"encoding/json"

	bookingModel "venue/internal/domains/booking/model"
)

const (
	EntityName = "room"
)

// Room is a bookable resource. Ids are assigned by the store from a monotonic
// counter; a room is never mutated after creation except for appended slots,
// and never deleted. Amenities is an opaque JSON value (list or text), stored
// as received.
type Room struct {
	ID             int
	RoomName       string
	SeatsAvailable int
	Amenities      json.RawMessage
	PricePerHour   float64
	Bookings       []bookingModel.Slot
}
