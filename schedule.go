// this file builds the 24h program grid and tracks which slot is live
package main

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

func buildDailySchedule() []ScheduleSlot {
	schedule := make([]ScheduleSlot, 0, 24)
	for i := 0; i < 24; i++ {
		slotType := "playlist"
		if i >= 18 || i < 4 {
			slotType = "set"
		}
		schedule = append(schedule, ScheduleSlot{
			Time:   fmt.Sprintf("%02dh00 - %02dh00", i, (i+1)%24),
			Title:  scheduleTitles[i],
			Type:   slotType,
			Detail: scheduleDetails[i],
		})
	}
	return schedule
}

// parseSlotTime turns "23h00" into minutes since midnight.
func parseSlotTime(s string) int {
	parts := strings.SplitN(s, "h", 2)
	h, _ := strconv.Atoi(parts[0])
	m := 0
	if len(parts) == 2 {
		m, _ = strconv.Atoi(parts[1])
	}
	return h*60 + m
}

// isCurrentSlot reports whether minuteOfDay falls in the slot's
// [start, end) range. An end of 00h00 means end of day, not start,
// so the last slot runs through midnight.
func isCurrentSlot(timeRange string, minuteOfDay int) bool {
	parts := strings.SplitN(timeRange, " - ", 2)
	if len(parts) != 2 {
		return false
	}
	start := parseSlotTime(parts[0])
	end := parseSlotTime(parts[1])
	if end == 0 && start != 0 {
		end = 24 * 60
	}
	return minuteOfDay >= start && minuteOfDay < end
}

// ProgramGuide re-reads the wall clock every minute so handlers can
// mark the live slot without touching time themselves.
type ProgramGuide struct {
	slots  []ScheduleSlot
	ticker *time.Ticker
	done   chan struct{}
	now    func() time.Time

	mu          sync.Mutex
	minuteOfDay int
}

func NewProgramGuide() *ProgramGuide {
	g := &ProgramGuide{
		slots: buildDailySchedule(),
		done:  make(chan struct{}),
		now:   time.Now,
	}
	g.updateClock()
	return g
}

func (g *ProgramGuide) Start() {
	g.ticker = time.NewTicker(time.Minute)
	go func() {
		for {
			select {
			case <-g.ticker.C:
				g.updateClock()
			case <-g.done:
				return
			}
		}
	}()
}

func (g *ProgramGuide) updateClock() {
	t := g.now()
	g.mu.Lock()
	g.minuteOfDay = t.Hour()*60 + t.Minute()
	g.mu.Unlock()
}

func (g *ProgramGuide) MinuteOfDay() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.minuteOfDay
}

func (g *ProgramGuide) Slots() []ScheduleSlot {
	out := make([]ScheduleSlot, len(g.slots))
	copy(out, g.slots)
	return out
}

// CurrentSlot returns the live slot for the guide's current minute.
func (g *ProgramGuide) CurrentSlot() (ScheduleSlot, bool) {
	minute := g.MinuteOfDay()
	for _, slot := range g.slots {
		if isCurrentSlot(slot.Time, minute) {
			return slot, true
		}
	}
	return ScheduleSlot{}, false
}

func (g *ProgramGuide) Stop() {
	if g.ticker != nil {
		g.ticker.Stop()
	}
	close(g.done)
}
