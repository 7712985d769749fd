package helper

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"restaurant_manager/model"
	"restaurant_manager/utils"
)

func at(day, hour, minute int) time.Time {
	// 2024-01-01 is a Monday
	return time.Date(2024, time.January, day, hour, minute, 0, 0, time.UTC)
}

func scheduled(hours ...model.OpeningHour) model.Kitchen {
	return model.Kitchen{IsWeeklyTimingOn: true, OpeningHours: hours}
}

func TestIsKitchenOpen_ManualMode(t *testing.T) {
	instants := []time.Time{at(1, 0, 0), at(1, 12, 30), at(6, 23, 59)}
	for _, flag := range []bool{true, false} {
		kitchen := model.Kitchen{
			IsOpen:           flag,
			IsWeeklyTimingOn: false,
			OpeningHours: []model.OpeningHour{
				{DayOfWeek: model.Monday, OpenTime: "09:00", CloseTime: "10:00", Timezone: "+00:00"},
			},
		}
		for _, now := range instants {
			open, err := IsKitchenOpen(kitchen, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if open != flag {
				t.Fatalf("manual flag %v at %s: got %v", flag, now, open)
			}
		}
	}
}

func TestIsKitchenOpen_Schedule(t *testing.T) {
	monday := model.OpeningHour{DayOfWeek: model.Monday, OpenTime: "09:00", CloseTime: "18:00", Timezone: "+00:00"}
	friday := model.OpeningHour{DayOfWeek: model.Friday, OpenTime: "22:00", CloseTime: "02:00", Timezone: "+00:00"}
	saturday := model.OpeningHour{DayOfWeek: model.Saturday, OpenTime: "10:00", CloseTime: "20:00", Timezone: "+00:00"}

	tests := []struct {
		name    string
		kitchen model.Kitchen
		now     time.Time
		want    bool
	}{
		{"monday inside", scheduled(monday), at(1, 10, 0), true},
		{"monday after close", scheduled(monday), at(1, 19, 0), false},
		{"tuesday has no entry", scheduled(monday), at(2, 10, 0), false},
		{"open bound inclusive", scheduled(monday), at(1, 9, 0), true},
		{"close bound inclusive", scheduled(monday), at(1, 18, 0), true},
		{"one minute after close", scheduled(monday), at(1, 18, 1), false},
		{"one minute before open", scheduled(monday), at(1, 8, 59), false},
		{"overnight before midnight", scheduled(friday), at(5, 23, 0), true},
		{"overnight after midnight", scheduled(friday), at(6, 1, 0), true},
		{"overnight close inclusive", scheduled(friday), at(6, 2, 0), true},
		{"overnight after close", scheduled(friday), at(6, 3, 0), false},
		{"overnight early friday", scheduled(friday), at(5, 1, 0), false},
		{"carry over next to own entry", scheduled(friday, saturday), at(6, 1, 0), true},
		{"own entry next to carry over", scheduled(friday, saturday), at(6, 11, 0), true},
		{"gap between windows", scheduled(friday, saturday), at(6, 5, 0), false},
		{"no entries", scheduled(), at(1, 10, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsKitchenOpen(tt.kitchen, tt.now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("IsKitchenOpen at %s = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestIsKitchenOpen_TimezoneOffset(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		hour     *model.OpeningHour // defaults to Monday 09:00-18:00 in timezone
		now      time.Time
		want     bool
	}{
		{"ahead of utc opens earlier", "+03:00", nil, at(1, 6, 30), true},
		{"ahead of utc closes earlier", "+03:00", nil, at(1, 15, 30), false},
		{"behind utc opens later", "-05:00", nil, at(1, 14, 0), true},
		{"behind utc one minute early", "-05:00", nil, at(1, 13, 59), false},
		{"behind utc local close", "-05:00", nil, at(1, 23, 0), true},
		{"half hour offset", "+05:30", nil, at(1, 3, 29), false},
		{"half hour offset at open", "+05:30", nil, at(1, 3, 30), true},
		// Monday 22:30 UTC is Tuesday 01:30 at +03:00, but the row is picked by the UTC day
		{"local next day row is not consulted", "+03:00", &model.OpeningHour{DayOfWeek: model.Tuesday, OpenTime: "00:00", CloseTime: "02:00", Timezone: "+03:00"}, at(1, 22, 30), false},
		{"utc day row read on the local clock", "+03:00", &model.OpeningHour{DayOfWeek: model.Monday, OpenTime: "00:00", CloseTime: "02:00", Timezone: "+03:00"}, at(1, 22, 30), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour := model.OpeningHour{DayOfWeek: model.Monday, OpenTime: "09:00", CloseTime: "18:00", Timezone: tt.timezone}
			if tt.hour != nil {
				hour = *tt.hour
			}
			got, err := IsKitchenOpen(scheduled(hour), tt.now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("IsKitchenOpen(%s) at %s = %v, want %v", tt.timezone, tt.now, got, tt.want)
			}
		})
	}
}

func TestIsKitchenOpen_MalformedTimezone(t *testing.T) {
	kitchen := scheduled(model.OpeningHour{DayOfWeek: model.Monday, OpenTime: "09:00", CloseTime: "18:00", Timezone: "GMT+3"})
	_, err := IsKitchenOpen(kitchen, at(1, 10, 0))
	if !errors.Is(err, ErrInvalidTimezone) {
		t.Fatalf("expected ErrInvalidTimezone, got %v", err)
	}
}

func TestParseTimezoneOffset(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"+00:00", 0, false},
		{"-00:00", 0, false},
		{"+05:30", 5*time.Hour + 30*time.Minute, false},
		{"-03:15", -(3*time.Hour + 15*time.Minute), false},
		{"+14:00", 14 * time.Hour, false},
		{"+15:00", 0, true},
		{"+03:60", 0, true},
		{"05:00", 0, true},
		{"+5:00", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimezoneOffset(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTimezone) {
					t.Fatalf("expected ErrInvalidTimezone, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	valid := map[string][2]int{"00:00": {0, 0}, "09:05": {9, 5}, "23:59": {23, 59}}
	for in, want := range valid {
		hour, minute, err := ParseClock(in)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", in, err)
		}
		if hour != want[0] || minute != want[1] {
			t.Fatalf("ParseClock(%q) = %d:%d", in, hour, minute)
		}
	}

	for _, in := range []string{"24:00", "9:00", "12:60", "noon", ""} {
		if _, _, err := ParseClock(in); !errors.Is(err, ErrInvalidClock) {
			t.Fatalf("ParseClock(%q): expected ErrInvalidClock, got %v", in, err)
		}
	}
}

func TestGetKitchenStatus(t *testing.T) {
	db := newTestDB(t)
	kitchen := model.Kitchen{Name: "Grill", IsWeeklyTimingOn: true}
	mustCreate(t, db, &kitchen)
	mustCreate(t, db, &model.OpeningHour{KitchenId: kitchen.ID, DayOfWeek: model.Monday, OpenTime: "09:00", CloseTime: "18:00", Timezone: "+00:00"})

	open, err := GetKitchenStatus(db, kitchen.ID, at(1, 12, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !open {
		t.Fatalf("expected kitchen to be open on monday noon")
	}

	_, err = GetKitchenStatus(db, kitchen.ID+100, at(1, 12, 0))
	if utils.StatusOf(err) != http.StatusNotFound {
		t.Fatalf("expected 404 for a missing kitchen, got %v", err)
	}
}
