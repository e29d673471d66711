package analytics_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"shift-tracker/internal/analytics"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday 11 March 2026, 12:00 UTC.
var now = time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)

func closedShift(email string, in time.Time, d time.Duration) analytics.ShiftRecord {
	out := in.Add(d)
	return analytics.ShiftRecord{ShiftID: uuid.New(), UserID: uuid.New(), Email: email, ClockIn: in, ClockOut: &out}
}

func openShift(email string, in time.Time) analytics.ShiftRecord {
	return analytics.ShiftRecord{ShiftID: uuid.New(), UserID: uuid.New(), Email: email, ClockIn: in}
}

func bucket(t *testing.T, stats analytics.DashboardStats, date string) analytics.DailyStat {
	t.Helper()
	for _, d := range stats.DailyStats {
		if d.Date == date {
			return d
		}
	}
	t.Fatalf("no bucket for %s", date)
	return analytics.DailyStat{}
}

func TestComputeStats_EmptyWindowHasSevenBuckets(t *testing.T) {
	stats := analytics.ComputeStats(nil, now, time.UTC)

	require.Len(t, stats.DailyStats, 7)
	want := []string{"2026-03-05", "2026-03-06", "2026-03-07", "2026-03-08", "2026-03-09", "2026-03-10", "2026-03-11"}
	for i, d := range stats.DailyStats {
		assert.Equal(t, want[i], d.Date)
		assert.Equal(t, 0, d.ClockIns)
		assert.Equal(t, 0.0, d.AvgHours)
	}
	assert.Empty(t, stats.StaffWeeklyHours)
	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), stats.WindowStart)
}

func TestComputeStats_MondayDayShift(t *testing.T) {
	monday := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	stats := analytics.ComputeStats([]analytics.ShiftRecord{
		closedShift("carer@example.org", monday, 8*time.Hour),
	}, now, time.UTC)

	require.Len(t, stats.StaffWeeklyHours, 1)
	assert.Equal(t, analytics.StaffHours{Email: "carer@example.org", TotalHours: 8}, stats.StaffWeeklyHours[0])

	mon := bucket(t, stats, "2026-03-09")
	assert.Equal(t, 1, mon.ClockIns)
	assert.Equal(t, 8.0, mon.AvgHours)
}

func TestComputeStats_OpenShiftsCountButAccrueNothing(t *testing.T) {
	today := time.Date(2026, 3, 11, 7, 0, 0, 0, time.UTC)
	stats := analytics.ComputeStats([]analytics.ShiftRecord{
		closedShift("a@example.org", today, 4*time.Hour),
		openShift("b@example.org", today.Add(time.Hour)),
	}, now, time.UTC)

	day := bucket(t, stats, "2026-03-11")
	assert.Equal(t, 2, day.ClockIns)
	assert.Equal(t, 2.0, day.AvgHours)

	require.Len(t, stats.StaffWeeklyHours, 1)
	assert.Equal(t, "a@example.org", stats.StaffWeeklyHours[0].Email)
}

func TestComputeStats_WindowBoundaries(t *testing.T) {
	start := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	stats := analytics.ComputeStats([]analytics.ShiftRecord{
		closedShift("edge@example.org", start, time.Hour),
		closedShift("early@example.org", start.Add(-time.Second), time.Hour),
		openShift("future@example.org", now.Add(time.Minute)),
	}, now, time.UTC)

	assert.Equal(t, 1, bucket(t, stats, "2026-03-05").ClockIns)
	require.Len(t, stats.StaffWeeklyHours, 1)
	assert.Equal(t, "edge@example.org", stats.StaffWeeklyHours[0].Email)

	total := 0
	for _, d := range stats.DailyStats {
		total += d.ClockIns
	}
	assert.Equal(t, 1, total)
}

func TestComputeStats_StaffSortedAndAveraged(t *testing.T) {
	tue := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	stats := analytics.ComputeStats([]analytics.ShiftRecord{
		closedShift("zoe@example.org", tue, 5*time.Hour),
		closedShift("adam@example.org", tue.Add(time.Hour), 2*time.Hour+20*time.Minute),
		closedShift("zoe@example.org", tue.Add(-24*time.Hour), 3*time.Hour),
	}, now, time.UTC)

	require.Len(t, stats.StaffWeeklyHours, 2)
	assert.Equal(t, analytics.StaffHours{Email: "adam@example.org", TotalHours: 2.33}, stats.StaffWeeklyHours[0])
	assert.Equal(t, analytics.StaffHours{Email: "zoe@example.org", TotalHours: 8}, stats.StaffWeeklyHours[1])

	assert.Equal(t, 3.67, bucket(t, stats, "2026-03-10").AvgHours)
}

func TestComputeStats_BucketsInConfiguredZone(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	late := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)

	stats := analytics.ComputeStats([]analytics.ShiftRecord{
		closedShift("night@example.org", late, time.Hour),
	}, now, ist)

	assert.Equal(t, 1, bucket(t, stats, "2026-03-11").ClockIns)
	assert.Equal(t, 0, bucket(t, stats, "2026-03-10").ClockIns)
	assert.Equal(t, "IST", stats.Timezone)
}

func TestComputeStats_StaffHoursSumMatchesClosedShiftDurations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	emails := []string{"a@example.org", "b@example.org", "c@example.org", "d@example.org"}
	start := analytics.WindowStart(now, time.UTC)

	for round := 0; round < 50; round++ {
		var records []analytics.ShiftRecord
		want := 0.0
		for i := 0; i < 1+rng.Intn(40); i++ {
			in := start.Add(time.Duration(rng.Int63n(int64(now.Sub(start)))))
			email := emails[rng.Intn(len(emails))]
			if rng.Intn(5) == 0 {
				records = append(records, openShift(email, in))
				continue
			}
			d := time.Duration(rng.Int63n(int64(14 * time.Hour)))
			records = append(records, closedShift(email, in, d))
			want += float64(d.Milliseconds()) / 3_600_000
		}

		stats := analytics.ComputeStats(records, now, time.UTC)
		require.Len(t, stats.DailyStats, 7)

		got := 0.0
		for _, s := range stats.StaffWeeklyHours {
			got += s.TotalHours
		}
		// Each per-staff total is rounded once.
		assert.LessOrEqual(t, math.Abs(got-want), 0.005*float64(len(stats.StaffWeeklyHours))+1e-9)
	}
}
