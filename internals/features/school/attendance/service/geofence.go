// file: internals/features/school/attendance/service/geofence.go
package service

import (
	"fmt"
	"math"
	"time"
)

const (
	// Radius bumi (meter) untuk haversine.
	earthRadiusMeters = 6371000.0

	// Batas maksimum untuk fallback lokasi-IP (meter).
	ipFallbackMaxMeters = 10000.0

	// Jendela jam absensi [06:00, 12:00).
	windowOpenHour  = 6
	windowCloseHour = 12
)

type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// EvaluateInput adalah satu keputusan sinkron per scan.
type EvaluateInput struct {
	Claimed      *GeoPoint // koordinat dari device (boleh nil)
	School       *GeoPoint // koordinat sekolah dari settings (boleh nil)
	RadiusMeters float64
	IPResolved   *GeoPoint // hasil lookup geolocation IP; nil = fail-open
	LateTime     string    // "HH:MM" dari settings
	Now          time.Time
}

type Decision struct {
	Accepted bool
	Reason   string // terisi saat ditolak
	Status   string // present|late saat diterima
}

// Evaluate memutuskan accept/reject + status untuk satu scan.
// Aturan:
//   - jam dinding di luar [06:00, 12:00) → tolak, apapun hasil geofence;
//   - koordinat device + sekolah tersedia → haversine; jarak > radius → tolak
//     (jarak == radius diterima, pembanding non-strict);
//   - tanpa koordinat device → pakai titik hasil lookup IP bila ada; lebih
//     dari 10 km → tolak; lookup gagal/nil → TIDAK ada cek lokasi (fail-open,
//     kelonggaran yang disengaja);
//   - status: now <= lateTime ⇒ present, selebihnya late.
func Evaluate(in EvaluateInput) Decision {
	hour := in.Now.Hour()
	if hour < windowOpenHour || hour >= windowCloseHour {
		return Decision{Reason: "Attendance can only be marked between 06:00 and 12:00"}
	}

	if in.School != nil {
		if in.Claimed != nil {
			dist := HaversineMeters(in.Claimed.Latitude, in.Claimed.Longitude, in.School.Latitude, in.School.Longitude)
			if dist > in.RadiusMeters {
				return Decision{Reason: fmt.Sprintf("You are %.0fm away from school (allowed %.0fm)", dist, in.RadiusMeters)}
			}
		} else if in.IPResolved != nil {
			dist := HaversineMeters(in.IPResolved.Latitude, in.IPResolved.Longitude, in.School.Latitude, in.School.Longitude)
			if dist > ipFallbackMaxMeters {
				return Decision{Reason: "Your network location is too far from school"}
			}
		}
		// IPResolved nil → fail-open: tanpa cek lokasi tambahan
	}

	return Decision{Accepted: true, Status: statusFor(in.Now, in.LateTime)}
}

// HaversineMeters menghitung jarak great-circle dua koordinat (meter).
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// statusFor membandingkan jam scan dengan batas terlambat "HH:MM"
// (di-anchor ke tanggal hari itu, timezone mengikuti Now).
func statusFor(now time.Time, lateTime string) string {
	lateAt, err := parseLateAt(now, lateTime)
	if err != nil {
		// settings korup → anggap present, jangan hukum siswa
		return "present"
	}
	if now.After(lateAt) {
		return "late"
	}
	return "present"
}

func parseLateAt(now time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location()), nil
}
