package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/noctura/circadian-api/internal/domain"
)

// entryFor builds one stored vitals row with a given schedule: wake at
// wakeHour on date (UTC), bed the previous evening when bedHour >= 12,
// and the total sleep time recorded as light-sleep minutes.
func entryFor(userID uuid.UUID, date string, bedHour, wakeHour, tstHours float64) *domain.VitalsEntry {
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

	return &domain.VitalsEntry{
		ID:           uuid.New(),
		UserID:       userID,
		Date:         date,
		SleepStart:   bed.UnixMilli(),
		SleepEnd:     wake.UnixMilli(),
		LightMinutes: tstHours * 60,
		Timezone:     "UTC",
	}
}

// seedNights stores count consecutive nights ending at endDate.
func seedNights(repo *MockVitalsRepository, userID uuid.UUID, endDate string, count int, bedHour, wakeHour, tstHours float64) {
	end, err := time.Parse(domain.DateLayout, endDate)
	if err != nil {
		panic("bad test date: " + endDate)
	}
	for i := 0; i < count; i++ {
		date := end.AddDate(0, 0, -i).Format(domain.DateLayout)
		if err := repo.Upsert(context.Background(), entryFor(userID, date, bedHour, wakeHour, tstHours)); err != nil {
			panic(err)
		}
	}
}

// seedUser registers a user and returns its ID.
func seedUser(repo *MockUserRepository, timezone string) uuid.UUID {
	user := &domain.User{ID: uuid.New(), Timezone: timezone}
	if err := repo.Create(context.Background(), user); err != nil {
		panic(err)
	}
	return user.ID
}
