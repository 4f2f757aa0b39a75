package dto

import (
	"encoding/json"

	bookingDto "venue/internal/domains/booking/model/dto"
	"venue/internal/domains/room/model"
)

// CreateRoomRequest carries the create-room payload. The required tags encode
// the coarse presence policy: a seatsAvailable or pricePerHour of zero is
// rejected as missing, exactly as the API has always behaved.
type CreateRoomRequest struct {
	RoomName       string          `json:"roomName"       validate:"required"`
	SeatsAvailable int             `json:"seatsAvailable" validate:"required"`
	Amenities      json.RawMessage `json:"amenities"      validate:"required,notfalsy"`
	PricePerHour   float64         `json:"pricePerHour"   validate:"required"`
}

func (c *CreateRoomRequest) ToModel() model.Room {
	return model.Room{
		RoomName:       c.RoomName,
		SeatsAvailable: c.SeatsAvailable,
		Amenities:      c.Amenities,
		PricePerHour:   c.PricePerHour,
	}
}

type RoomResponse struct {
	ID             int                       `json:"id"`
	RoomName       string                    `json:"roomName"`
	SeatsAvailable int                       `json:"seatsAvailable"`
	Amenities      json.RawMessage           `json:"amenities"`
	PricePerHour   float64                   `json:"pricePerHour"`
	Bookings       []bookingDto.SlotResponse `json:"bookings"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomName = model.RoomName
	r.SeatsAvailable = model.SeatsAvailable
	r.Amenities = model.Amenities
	r.PricePerHour = model.PricePerHour
	r.Bookings = bookingDto.SlotsFromModels(model.Bookings)
}

// CreateRoomResponse is the published 201 envelope for create-room.
type CreateRoomResponse struct {
	Message string       `json:"message"`
	Room    RoomResponse `json:"room"`
}

// RoomSummary is the rooms-listing projection: name and slots only, no id,
// capacity, amenities or price.
type RoomSummary struct {
	RoomName string                    `json:"roomName"`
	Bookings []bookingDto.SlotResponse `json:"bookings"`
}

func SummariesFromModels(models []model.Room) []RoomSummary {
	summaries := make([]RoomSummary, len(models))
	for i, mod := range models {
		summaries[i].RoomName = mod.RoomName
		summaries[i].Bookings = bookingDto.SlotsFromModels(mod.Bookings)
	}

	return summaries
}
