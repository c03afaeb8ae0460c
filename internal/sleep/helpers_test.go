package sleep

import (
	"time"

	"github.com/noctura/circadian-api/internal/domain"
)

// vitalsDay builds one day of vitals: wake at wakeHour on date, bed at
// bedHour (interpreted as the previous evening when >= 12), and the
// given total sleep time recorded as light-sleep minutes. Times are
// UTC so clock extraction is exact.
func vitalsDay(date string, bedHour, wakeHour, tstHours float64) domain.DailyVitals {
	day, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		panic("bad test date: " + date)
	}

	wake := day.Add(time.Duration(wakeHour * float64(time.Hour)))
	bedDay := day
	if bedHour >= 12 {
		bedDay = day.AddDate(0, 0, -1)
	}
	bed := bedDay.Add(time.Duration(bedHour * float64(time.Hour)))

	return domain.DailyVitals{
		Date:         date,
		SleepStart:   domain.EpochMillis(bed.UnixMilli()),
		SleepEnd:     domain.EpochMillis(wake.UnixMilli()),
		LightMinutes: tstHours * 60,
	}
}

// vitalsRun builds count consecutive days ending at endDate, all with
// the same schedule.
func vitalsRun(endDate string, count int, bedHour, wakeHour, tstHours float64) []domain.DailyVitals {
	end, err := time.Parse(domain.DateLayout, endDate)
	if err != nil {
		panic("bad test date: " + endDate)
	}

	history := make([]domain.DailyVitals, 0, count)
	for i := 0; i < count; i++ {
		date := end.AddDate(0, 0, -i).Format(domain.DateLayout)
		history = append(history, vitalsDay(date, bedHour, wakeHour, tstHours))
	}
	return history
}

func floatNear(got, want, tolerance float64) bool {
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}
