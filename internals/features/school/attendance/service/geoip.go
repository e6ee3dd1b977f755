// file: internals/features/school/attendance/service/geoip.go
package service

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

// GeoIPResolver me-resolve alamat IP ke koordinat. Implementasi boleh
// gagal — caller memperlakukan kegagalan sebagai fail-open (tanpa cek
// lokasi tambahan), bukan penolakan.
type GeoIPResolver interface {
	Resolve(ctx context.Context, ip string) (*GeoPoint, error)
}

// HTTPGeoIPResolver memakai API gaya ip-api.com: GET {base}/{ip}
// → {"status":"success","lat":..,"lon":..}
type HTTPGeoIPResolver struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPGeoIPResolver(baseURL string) *HTTPGeoIPResolver {
	return &HTTPGeoIPResolver{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 3 * time.Second},
	}
}

type geoIPResponse struct {
	Status string  `json:"status"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
}

func (r *HTTPGeoIPResolver) Resolve(ctx context.Context, ip string) (*GeoPoint, error) {
	// IP privat/loopback tidak pernah ter-resolve publik
	parsed := net.ParseIP(ip)
	if parsed == nil || parsed.IsLoopback() || parsed.IsPrivate() {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s", r.BaseURL, ip), nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geoip: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return nil, err
	}

	var out geoIPResponse
	if err := sonic.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	if out.Status != "success" {
		return nil, nil
	}
	return &GeoPoint{Latitude: out.Lat, Longitude: out.Lon}, nil
}
