package analytics

import (
	"sort"
	"time"

	"shift-tracker/internal/shared/numeric"
)

const (
	WindowDays = 7
	dateLayout = "2006-01-02"
	msPerHour  = 3_600_000
)

type DailyStat struct {
	Date     string  `json:"date"`
	AvgHours float64 `json:"avg_hours"`
	ClockIns int     `json:"clock_ins"`
}

type StaffHours struct {
	Email      string  `json:"email"`
	TotalHours float64 `json:"total_hours"`
}

type DashboardStats struct {
	DailyStats       []DailyStat  `json:"daily_stats"`
	StaffWeeklyHours []StaffHours `json:"staff_weekly_hours"`
	WindowStart      time.Time    `json:"window_start"`
	// WindowEnd is the instant the aggregate was computed at; a cached
	// response can trail the request by up to StatsCacheTTL.
	WindowEnd        time.Time    `json:"window_end"`
	Timezone         string       `json:"timezone"`
}

// WindowStart is midnight, in loc, six calendar days before now.
func WindowStart(now time.Time, loc *time.Location) time.Time {
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d-(WindowDays-1), 0, 0, 0, 0, loc)
}

func hoursBetween(start, end time.Time) float64 {
	return float64(end.Sub(start).Milliseconds()) / msPerHour
}

// ComputeStats aggregates shifts whose clock-in lies in
// [WindowStart(now), now]. Records outside the window are ignored. The result
// always holds exactly seven daily buckets in ascending date order; open
// shifts count as clock-ins but contribute no hours.
func ComputeStats(shifts []ShiftRecord, now time.Time, loc *time.Location) DashboardStats {
	if loc == nil {
		loc = time.UTC
	}
	start := WindowStart(now, loc)

	type bucket struct {
		hours float64
		count int
	}
	buckets := make(map[string]*bucket, WindowDays)
	dates := make([]string, 0, WindowDays)
	for i := 0; i < WindowDays; i++ {
		key := start.AddDate(0, 0, i).Format(dateLayout)
		buckets[key] = &bucket{}
		dates = append(dates, key)
	}

	staffHours := make(map[string]float64)
	for _, s := range shifts {
		if s.ClockIn.Before(start) || s.ClockIn.After(now) {
			continue
		}

		b, ok := buckets[s.ClockIn.In(loc).Format(dateLayout)]
		if !ok {
			continue
		}
		b.count++

		if s.ClockOut == nil {
			continue
		}
		h := hoursBetween(s.ClockIn, *s.ClockOut)
		b.hours += h
		staffHours[s.Email] += h
	}

	daily := make([]DailyStat, 0, WindowDays)
	for _, date := range dates {
		b := buckets[date]
		avg := 0.0
		if b.count > 0 {
			avg = numeric.Round2(b.hours / float64(b.count))
		}
		daily = append(daily, DailyStat{Date: date, AvgHours: avg, ClockIns: b.count})
	}

	staff := make([]StaffHours, 0, len(staffHours))
	for email, total := range staffHours {
		staff = append(staff, StaffHours{Email: email, TotalHours: numeric.Round2(total)})
	}
	sort.Slice(staff, func(i, j int) bool { return staff[i].Email < staff[j].Email })

	return DashboardStats{
		DailyStats:       daily,
		StaffWeeklyHours: staff,
		WindowStart:      start,
		WindowEnd:        now.In(loc),
		Timezone:         loc.String(),
	}
}
