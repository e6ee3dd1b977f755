// file: internals/features/school/attendance/service/geofence_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Sekolah fiktif di Lagos
var school = &GeoPoint{Latitude: 6.5244, Longitude: 3.3792}

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 9, hour, min, 0, 0, time.UTC)
}

func TestEvaluate_InsideRadius(t *testing.T) {
	d := Evaluate(EvaluateInput{
		Claimed:      &GeoPoint{Latitude: 6.5245, Longitude: 3.3793}, // ±15m
		School:       school,
		RadiusMeters: 200,
		LateTime:     "08:00",
		Now:          at(7, 30),
	})
	assert.True(t, d.Accepted)
	assert.Equal(t, "present", d.Status)
}

func TestEvaluate_BeyondRadius(t *testing.T) {
	d := Evaluate(EvaluateInput{
		Claimed:      &GeoPoint{Latitude: 6.5400, Longitude: 3.3792}, // ±1.7km utara
		School:       school,
		RadiusMeters: 200,
		LateTime:     "08:00",
		Now:          at(7, 30),
	})
	assert.False(t, d.Accepted)
	assert.Contains(t, d.Reason, "away from school")
}

// Batas non-strict: jarak == radius tetap diterima.
func TestEvaluate_ExactRadiusBoundary(t *testing.T) {
	claimed := &GeoPoint{Latitude: 6.5260, Longitude: 3.3792}
	dist := HaversineMeters(claimed.Latitude, claimed.Longitude, school.Latitude, school.Longitude)

	d := Evaluate(EvaluateInput{
		Claimed:      claimed,
		School:       school,
		RadiusMeters: dist, // persis di garis
		LateTime:     "08:00",
		Now:          at(7, 30),
	})
	assert.True(t, d.Accepted)

	d = Evaluate(EvaluateInput{
		Claimed:      claimed,
		School:       school,
		RadiusMeters: dist - 0.5, // sedikit di luar
		LateTime:     "08:00",
		Now:          at(7, 30),
	})
	assert.False(t, d.Accepted)
}

func TestEvaluate_WindowHours(t *testing.T) {
	base := EvaluateInput{
		Claimed:      school,
		School:       school,
		RadiusMeters: 200,
		LateTime:     "08:00",
	}

	base.Now = at(5, 59)
	assert.False(t, Evaluate(base).Accepted, "sebelum 06:00 ditolak")

	base.Now = at(6, 0)
	assert.True(t, Evaluate(base).Accepted, "06:00 tepat diterima")

	base.Now = at(11, 59)
	assert.True(t, Evaluate(base).Accepted)

	base.Now = at(12, 0)
	assert.False(t, Evaluate(base).Accepted, "12:00 sudah di luar jendela")
}

// Geofence valid tidak menyelamatkan scan di luar jendela jam.
func TestEvaluate_WindowBeatsGeofence(t *testing.T) {
	d := Evaluate(EvaluateInput{
		Claimed:      school,
		School:       school,
		RadiusMeters: 200,
		LateTime:     "08:00",
		Now:          at(13, 0),
	})
	assert.False(t, d.Accepted)
}

func TestEvaluate_IPFallback(t *testing.T) {
	// tanpa koordinat device, titik IP 2km dari sekolah → diterima (< 10km)
	d := Evaluate(EvaluateInput{
		School:       school,
		RadiusMeters: 200,
		IPResolved:   &GeoPoint{Latitude: 6.5424, Longitude: 3.3792},
		LateTime:     "08:00",
		Now:          at(7, 0),
	})
	assert.True(t, d.Accepted)

	// titik IP ±20km → ditolak
	d = Evaluate(EvaluateInput{
		School:       school,
		RadiusMeters: 200,
		IPResolved:   &GeoPoint{Latitude: 6.7044, Longitude: 3.3792},
		LateTime:     "08:00",
		Now:          at(7, 0),
	})
	assert.False(t, d.Accepted)
}

// Lookup IP gagal (nil) → fail-open, tanpa cek lokasi.
func TestEvaluate_IPLookupFailOpen(t *testing.T) {
	d := Evaluate(EvaluateInput{
		School:       school,
		RadiusMeters: 200,
		IPResolved:   nil,
		LateTime:     "08:00",
		Now:          at(7, 0),
	})
	assert.True(t, d.Accepted)
}

func TestEvaluate_PresentVsLate(t *testing.T) {
	in := EvaluateInput{
		Claimed:      school,
		School:       school,
		RadiusMeters: 200,
		LateTime:     "08:00",
	}

	in.Now = at(7, 45)
	assert.Equal(t, "present", Evaluate(in).Status)

	// tepat di batas masih present (non-strict)
	in.Now = at(8, 0)
	assert.Equal(t, "present", Evaluate(in).Status)

	in.Now = at(8, 1)
	assert.Equal(t, "late", Evaluate(in).Status)
}

func TestHaversine_ZeroDistance(t *testing.T) {
	assert.InDelta(t, 0, HaversineMeters(6.5244, 3.3792, 6.5244, 3.3792), 0.001)
}

func TestHaversine_KnownDistance(t *testing.T) {
	// 1 derajat latitude ≈ 111.19 km
	dist := HaversineMeters(6.0, 3.0, 7.0, 3.0)
	assert.InDelta(t, 111194, dist, 200)
}
