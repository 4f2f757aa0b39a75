// Package memstore holds the booking ledger: the in-process storage of record
// for rooms and bookings. State lives only in memory and is lost on restart.
package memstore

import (
	"errors"
	"sync"

	bookingModel "venue/internal/domains/booking/model"
	roomModel "venue/internal/domains/room/model"
)

// ErrRoomNotFound is returned when a booking references an unknown room id.
var ErrRoomNotFound = errors.New("room not found")

// ErrSlotTaken is returned when a slot collides with an existing booking.
var ErrSlotTaken = errors.New("slot collides with an existing booking")

// Store owns the two collections: rooms (each carrying its own slots) and the
// global booking ledger. One lock guards both plus the id counter, so the
// overlap scan and the double append in InsertBooking form a single critical
// section and readers never observe a half-written booking.
type Store struct {
	mu         sync.RWMutex
	rooms      []roomModel.Room
	records    []bookingModel.Record
	nextRoomID int
}

func New() *Store {
	return &Store{
		rooms:   []roomModel.Room{},
		records: []bookingModel.Record{},
	}
}

// InsertRoom assigns the next sequential id, stores the room with an empty
// slot list and returns it. The counter is independent of len(rooms), so ids
// stay unique even if deletion is ever introduced.
func (s *Store) InsertRoom(room roomModel.Room) roomModel.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextRoomID++
	room.ID = s.nextRoomID
	room.Bookings = []bookingModel.Slot{}
	s.rooms = append(s.rooms, room)

	return room
}

// Rooms returns a snapshot of all rooms in creation order. Slot slices are
// copied so callers never share backing arrays with the store.
func (s *Store) Rooms() []roomModel.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rooms := make([]roomModel.Room, len(s.rooms))
	copy(rooms, s.rooms)

	for i := range rooms {
		bookings := make([]bookingModel.Slot, len(rooms[i].Bookings))
		copy(bookings, rooms[i].Bookings)
		rooms[i].Bookings = bookings
	}

	return rooms
}

// InsertBooking appends the slot to its room and the matching record to the
// global ledger. Exactly one record is written per accepted slot; a rejected
// slot leaves both collections untouched.
func (s *Store) InsertBooking(roomID int, slot bookingModel.Slot) (bookingModel.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.rooms {
		if s.rooms[i].ID == roomID {
			idx = i

			break
		}
	}

	if idx < 0 {
		return bookingModel.Record{}, ErrRoomNotFound
	}

	room := &s.rooms[idx]
	for _, existing := range room.Bookings {
		if slot.ConflictsWith(existing) {
			return bookingModel.Record{}, ErrSlotTaken
		}
	}

	room.Bookings = append(room.Bookings, slot)

	record := bookingModel.Record{
		RoomID:   room.ID,
		RoomName: room.RoomName,
		Slot:     slot,
	}
	s.records = append(s.records, record)

	return record, nil
}

// Records returns a snapshot of the global booking ledger in insertion order.
func (s *Store) Records() []bookingModel.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]bookingModel.Record, len(s.records))
	copy(records, s.records)

	return records
}
