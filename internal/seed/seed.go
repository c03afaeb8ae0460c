package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/noctura/circadian-api/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const seededDays = 60

// demoUser pairs a fixed UUID with a sleep pattern so the seeded data
// produces recognizably different chronotypes.
type demoUser struct {
	id       uuid.UUID
	timezone string
	// Weeknight bedtime and wake time, fractional hours
	bedHour  float64
	wakeHour float64
	// Free nights (Fri/Sat/Sun) shift later and run longer
	freeShift float64
	freeExtra float64
}

var demoUsers = []demoUser{
	// Early bird: 21:45 bed, 05:30 wake
	{uuid.MustParse("11111111-1111-1111-1111-111111111111"), "Europe/Amsterdam", 21.75, 5.5, 0.5, 0.75},
	// Intermediate: 23:00 bed, 06:45 wake
	{uuid.MustParse("22222222-2222-2222-2222-222222222222"), "America/New_York", 23.0, 6.75, 1.0, 1.0},
	// Night owl: 01:30 bed, 09:15 wake
	{uuid.MustParse("33333333-3333-3333-3333-333333333333"), "Asia/Tokyo", 25.5, 9.25, 1.0, 1.25},
	// Chronically short sleeper: normal timing, under 6.5h most nights
	{uuid.MustParse("44444444-4444-4444-4444-444444444444"), "Australia/Sydney", 24.0, 6.0, 1.5, 2.0},
}

// Run seeds the database with demo users and two months of vitals.
// Safe to call multiple times.
func Run(db *gorm.DB, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := db.AutoMigrate(&domain.User{}, &domain.VitalsEntry{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	rng := rand.New(rand.NewSource(42))
	for _, du := range demoUsers {
		user := domain.User{ID: du.id, Timezone: du.timezone}
		if err := db.Where("id = ?", du.id).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", du.id, err)
		}
		if err := seedVitalsForUser(db, du, rng); err != nil {
			return err
		}
		logger.Info("seeded demo user",
			zap.String("user_id", du.id.String()),
			zap.String("timezone", du.timezone))
	}

	return nil
}

func seedVitalsForUser(db *gorm.DB, du demoUser, rng *rand.Rand) error {
	loc, err := time.LoadLocation(du.timezone)
	if err != nil {
		loc = time.UTC
	}

	now := time.Now().In(loc)
	for i := 1; i <= seededDays; i++ {
		day := now.AddDate(0, 0, -i)
		date := day.Format(domain.DateLayout)

		bedHour := du.bedHour + jitter(rng, 0.3)
		wakeHour := du.wakeHour + jitter(rng, 0.2)
		switch day.Weekday() {
		case time.Saturday, time.Sunday, time.Monday:
			// The night ending on these mornings is a free night.
			bedHour += du.freeShift
			wakeHour += du.freeExtra + jitter(rng, 0.4)
		}

		// Bedtime falls on the previous evening when before midnight.
		prev := day.AddDate(0, 0, -1)
		sleepStart := clockToTime(prev, bedHour, loc)
		sleepEnd := clockToTime(day, wakeHour, loc)
		if !sleepEnd.After(sleepStart) {
			sleepEnd = sleepEnd.Add(24 * time.Hour)
		}

		inBed := sleepEnd.Sub(sleepStart).Minutes()
		awake := 10 + rng.Float64()*25
		asleep := inBed - awake
		if asleep < 0 {
			asleep = inBed
			awake = 0
		}
		deep := asleep * (0.18 + rng.Float64()*0.06)
		rem := asleep * (0.20 + rng.Float64()*0.06)
		light := asleep - deep - rem

		entry := domain.VitalsEntry{
			UserID:        du.id,
			Date:          date,
			SleepStart:    sleepStart.UnixMilli(),
			SleepEnd:      sleepEnd.UnixMilli(),
			DeepMinutes:   round1(deep),
			RemMinutes:    round1(rem),
			LightMinutes:  round1(light),
			AwakeMinutes:  round1(awake),
			SleepScore:    scoreFor(asleep/60, rng),
			RecoveryScore: scoreFor(asleep/60, rng),
			Timezone:      du.timezone,
		}

		err := db.Where("user_id = ? AND date = ?", du.id, date).
			FirstOrCreate(&entry).Error
		if err != nil {
			return fmt.Errorf("failed to create vitals for %s on %s: %w", du.id, date, err)
		}
	}
	return nil
}

// clockToTime places a fractional clock hour on a calendar day. Hours
// past 24 roll into the next day.
func clockToTime(day time.Time, hour float64, loc *time.Location) time.Time {
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	return midnight.Add(time.Duration(hour * float64(time.Hour)))
}

func jitter(rng *rand.Rand, spread float64) float64 {
	return (rng.Float64()*2 - 1) * spread
}

// scoreFor maps hours slept onto a plausible 0-100 device score.
func scoreFor(hours float64, rng *rand.Rand) float64 {
	base := 45 + hours*6
	score := base + jitter(rng, 8)
	if score > 98 {
		score = 98
	}
	if score < 20 {
		score = 20
	}
	return round1(score)
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
