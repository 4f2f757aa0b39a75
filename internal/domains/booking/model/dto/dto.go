package dto

import (
	"venue/internal/domains/booking/model"
)

// CreateBookingRequest carries the book-room payload. Every field is required
// in the coarse sense the API has always used: zero values count as missing.
type CreateBookingRequest struct {
	CustomerName string `json:"customerName" validate:"required"`
	Date         string `json:"date"         validate:"required"`
	StartTime    string `json:"startTime"    validate:"required"`
	EndTime      string `json:"endTime"      validate:"required"`
	RoomID       int    `json:"roomId"       validate:"required"`
}

func (c *CreateBookingRequest) ToModel() model.Slot {
	return model.Slot{
		CustomerName: c.CustomerName,
		Date:         c.Date,
		StartTime:    c.StartTime,
		EndTime:      c.EndTime,
	}
}

type SlotResponse struct {
	CustomerName string `json:"customerName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

func (r *SlotResponse) FromModel(model model.Slot) {
	r.CustomerName = model.CustomerName
	r.Date = model.Date
	r.StartTime = model.StartTime
	r.EndTime = model.EndTime
}

func SlotsFromModels(models []model.Slot) []SlotResponse {
	slots := make([]SlotResponse, len(models))
	for i, mod := range models {
		slots[i].FromModel(mod)
	}

	return slots
}

// CreateBookingResponse is the published 201 envelope for book-room.
type CreateBookingResponse struct {
	Message string       `json:"message"`
	Booking SlotResponse `json:"booking"`
}

// RecordResponse is one global ledger entry as exposed by the customers listing.
type RecordResponse struct {
	RoomID       int    `json:"roomId"`
	RoomName     string `json:"roomName"`
	CustomerName string `json:"customerName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

func (r *RecordResponse) FromModel(model model.Record) {
	r.RoomID = model.RoomID
	r.RoomName = model.RoomName
	r.CustomerName = model.CustomerName
	r.Date = model.Date
	r.StartTime = model.StartTime
	r.EndTime = model.EndTime
}

func RecordsFromModels(models []model.Record) []RecordResponse {
	records := make([]RecordResponse, len(models))
	for i, mod := range models {
		records[i].FromModel(mod)
	}

	return records
}
