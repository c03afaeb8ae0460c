package domain

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date format used for vitals entries,
// interpreted in the user's local day.
const DateLayout = "2006-01-02"

// EpochMillis is an absolute instant in epoch milliseconds. Sync payloads
// deliver it either as a JSON number or as a numeric string (big-integer
// database columns serialize as strings), so it coerces both. Malformed
// values coerce to zero and are filtered out before any computation.
type EpochMillis int64

func (m *EpochMillis) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*m = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*m = 0
		return nil
	}
	*m = EpochMillis(int64(f))
	return nil
}

func (m EpochMillis) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(m), 10)), nil
}

// Valid reports whether the value is a usable timestamp.
func (m EpochMillis) Valid() bool {
	return m > 0
}

// Time converts to a time.Time instant.
func (m EpochMillis) Time() time.Time {
	return time.UnixMilli(int64(m)).UTC()
}

// DailyVitals is one calendar day of wearable or manually entered sleep
// data, as consumed by the sleep engine. It is immutable from the
// engine's point of view: computations read it, never write it.
type DailyVitals struct {
	// Calendar date (YYYY-MM-DD) in the user's local day
	Date string `json:"date"`
	// Sleep onset instant, epoch milliseconds
	SleepStart EpochMillis `json:"sleep_start"`
	// Wake instant, epoch milliseconds
	SleepEnd EpochMillis `json:"sleep_end"`
	// Per-stage minutes
	DeepMinutes  float64 `json:"deep_minutes"`
	RemMinutes   float64 `json:"rem_minutes"`
	LightMinutes float64 `json:"light_minutes"`
	AwakeMinutes float64 `json:"awake_minutes"`
	// Device-reported scores (0-100, 0 = absent)
	SleepScore    float64 `json:"sleep_score"`
	RecoveryScore float64 `json:"recovery_score"`
	// IANA timezone the day was recorded in; invalid values fall back to UTC
	Timezone string `json:"timezone,omitempty"`
}

// Day parses the calendar date. ok is false for malformed dates.
func (v DailyVitals) Day() (time.Time, bool) {
	t, err := time.Parse(DateLayout, v.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Location resolves the entry's timezone, falling back to UTC.
func (v DailyVitals) Location() *time.Location {
	if v.Timezone != "" {
		if loc, err := time.LoadLocation(v.Timezone); err == nil {
			return loc
		}
	}
	return time.UTC
}

// VitalsEntry is the persisted form of a day of vitals. One row per
// (user, date); re-ingesting a date replaces the row.
type VitalsEntry struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_vitals_user_date" json:"user_id"`
	Date          string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_vitals_user_date" json:"date"`
	SleepStart    int64     `gorm:"type:bigint;not null;default:0" json:"sleep_start"`
	SleepEnd      int64     `gorm:"type:bigint;not null;default:0" json:"sleep_end"`
	DeepMinutes   float64   `gorm:"not null;default:0" json:"deep_minutes"`
	RemMinutes    float64   `gorm:"not null;default:0" json:"rem_minutes"`
	LightMinutes  float64   `gorm:"not null;default:0" json:"light_minutes"`
	AwakeMinutes  float64   `gorm:"not null;default:0" json:"awake_minutes"`
	SleepScore    float64   `gorm:"not null;default:0" json:"sleep_score"`
	RecoveryScore float64   `gorm:"not null;default:0" json:"recovery_score"`
	Timezone      string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (VitalsEntry) TableName() string {
	return "vitals_entries"
}

// ToDailyVitals converts the stored row into the engine's input shape.
func (e *VitalsEntry) ToDailyVitals() DailyVitals {
	return DailyVitals{
		Date:          e.Date,
		SleepStart:    EpochMillis(e.SleepStart),
		SleepEnd:      EpochMillis(e.SleepEnd),
		DeepMinutes:   e.DeepMinutes,
		RemMinutes:    e.RemMinutes,
		LightMinutes:  e.LightMinutes,
		AwakeMinutes:  e.AwakeMinutes,
		SleepScore:    e.SleepScore,
		RecoveryScore: e.RecoveryScore,
		Timezone:      e.Timezone,
	}
}

// UpsertVitalsRequest is the request body for ingesting a day of vitals.
// @Description One calendar day of sleep vitals from a wearable or manual entry.
type UpsertVitalsRequest struct {
	// Calendar date in the user's local day
	Date string `json:"date" validate:"required,caldate" example:"2024-01-15"`
	// Sleep onset, epoch milliseconds (number or numeric string)
	SleepStart EpochMillis `json:"sleep_start" example:"1705359600000"`
	// Wake time, epoch milliseconds (number or numeric string)
	SleepEnd EpochMillis `json:"sleep_end" example:"1705386600000"`
	// Deep sleep minutes
	DeepMinutes float64 `json:"deep_minutes" validate:"gte=0" example:"95"`
	// REM sleep minutes
	RemMinutes float64 `json:"rem_minutes" validate:"gte=0" example:"110"`
	// Light sleep minutes
	LightMinutes float64 `json:"light_minutes" validate:"gte=0" example:"230"`
	// Awake minutes inside the sleep window
	AwakeMinutes float64 `json:"awake_minutes" validate:"gte=0" example:"25"`
	// Device sleep score (0-100)
	SleepScore float64 `json:"sleep_score" validate:"gte=0,lte=100" example:"82"`
	// Device recovery score (0-100)
	RecoveryScore float64 `json:"recovery_score" validate:"gte=0,lte=100" example:"74"`
	// Optional IANA timezone override (defaults to the user's timezone)
	Timezone *string `json:"timezone,omitempty" validate:"omitempty,timezone" example:"Europe/Prague"`
}

// VitalsResponse is the response body for vitals endpoints.
// @Description Stored day of sleep vitals.
type VitalsResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Date          string    `json:"date" example:"2024-01-15"`
	SleepStart    int64     `json:"sleep_start" example:"1705359600000"`
	SleepEnd      int64     `json:"sleep_end" example:"1705386600000"`
	DeepMinutes   float64   `json:"deep_minutes"`
	RemMinutes    float64   `json:"rem_minutes"`
	LightMinutes  float64   `json:"light_minutes"`
	AwakeMinutes  float64   `json:"awake_minutes"`
	SleepScore    float64   `json:"sleep_score"`
	RecoveryScore float64   `json:"recovery_score"`
	Timezone      string    `json:"timezone"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (e *VitalsEntry) ToResponse() VitalsResponse {
	return VitalsResponse{
		ID:            e.ID,
		UserID:        e.UserID,
		Date:          e.Date,
		SleepStart:    e.SleepStart,
		SleepEnd:      e.SleepEnd,
		DeepMinutes:   e.DeepMinutes,
		RemMinutes:    e.RemMinutes,
		LightMinutes:  e.LightMinutes,
		AwakeMinutes:  e.AwakeMinutes,
		SleepScore:    e.SleepScore,
		RecoveryScore: e.RecoveryScore,
		Timezone:      e.Timezone,
		UpdatedAt:     e.UpdatedAt,
	}
}

// VitalsListResponse is the response body for listing vitals entries.
// @Description Paginated list of vitals entries, newest first.
type VitalsListResponse struct {
	Data       []VitalsResponse   `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains cursor pagination metadata.
type PaginationResponse struct {
	NextCursor string `json:"next_cursor,omitempty"`
	HasMore    bool   `json:"has_more"`
}

// VitalsFilter contains filter parameters for listing vitals entries.
type VitalsFilter struct {
	From   string // inclusive YYYY-MM-DD
	To     string // inclusive YYYY-MM-DD
	Limit  int
	Cursor string
}
