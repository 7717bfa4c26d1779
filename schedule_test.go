package main

import (
	"testing"
	"time"
)

func TestBuildDailySchedule(t *testing.T) {
	slots := buildDailySchedule()
	if len(slots) != 24 {
		t.Fatalf("expected 24 slots, got %d", len(slots))
	}

	if slots[0].Time != "00h00 - 01h00" {
		t.Errorf("first slot time = %q", slots[0].Time)
	}
	if slots[23].Time != "23h00 - 00h00" {
		t.Errorf("last slot time = %q", slots[23].Time)
	}

	for i, slot := range slots {
		wantType := "playlist"
		if i >= 18 || i < 4 {
			wantType = "set"
		}
		if slot.Type != wantType {
			t.Errorf("slot %d type = %q, want %q", i, slot.Type, wantType)
		}
		if slot.Title == "" || slot.Detail == "" {
			t.Errorf("slot %d missing title or detail", i)
		}
	}
}

func TestIsCurrentSlot(t *testing.T) {
	tests := []struct {
		name      string
		timeRange string
		minute    int
		want      bool
	}{
		{"start of slot", "10h00 - 11h00", 10 * 60, true},
		{"middle of slot", "10h00 - 11h00", 10*60 + 30, true},
		{"end is exclusive", "10h00 - 11h00", 11 * 60, false},
		{"before slot", "10h00 - 11h00", 9*60 + 59, false},
		{"last slot at 23:59", "23h00 - 00h00", 23*60 + 59, true},
		{"last slot at 23:00", "23h00 - 00h00", 23 * 60, true},
		{"last slot not live after midnight", "23h00 - 00h00", 1, false},
		{"first slot at 00:01", "00h00 - 01h00", 1, true},
		{"first slot at midnight", "00h00 - 01h00", 0, true},
	}

	for _, tt := range tests {
		if got := isCurrentSlot(tt.timeRange, tt.minute); got != tt.want {
			t.Errorf("%s: isCurrentSlot(%q, %d) = %v, want %v",
				tt.name, tt.timeRange, tt.minute, got, tt.want)
		}
	}
}

func TestProgramGuideCurrentSlot(t *testing.T) {
	g := NewProgramGuide()
	g.now = func() time.Time {
		return time.Date(2024, 6, 1, 23, 59, 0, 0, time.Local)
	}
	g.updateClock()

	slot, live := g.CurrentSlot()
	if !live {
		t.Fatal("expected a live slot at 23:59")
	}
	if slot.Time != "23h00 - 00h00" {
		t.Errorf("live slot = %q, want 23h00 - 00h00", slot.Time)
	}

	g.now = func() time.Time {
		return time.Date(2024, 6, 2, 0, 1, 0, 0, time.Local)
	}
	g.updateClock()

	slot, live = g.CurrentSlot()
	if !live {
		t.Fatal("expected a live slot at 00:01")
	}
	if slot.Time != "00h00 - 01h00" {
		t.Errorf("live slot = %q, want 00h00 - 01h00", slot.Time)
	}
}
