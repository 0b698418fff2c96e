// Package location resolves the client's city with a best-effort fallback
// chain: device coordinates reverse-geocoded, then IP-based lookup, then a
// fixed default city. Lookup failures are swallowed, never surfaced.
package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ReverseGeocoder resolves a city from device coordinates.
type ReverseGeocoder interface {
	CityFor(ctx context.Context, latitude, longitude float64) (string, error)
}

// IPLocator resolves a city from the client's IP address.
type IPLocator interface {
	CityFor(ctx context.Context, ip string) (string, error)
}

// Service runs the detection chain.
type Service interface {
	Detect(ctx context.Context, req DetectRequest) string
}

// DetectRequest carries whatever the client could supply. Coordinates are
// optional; the chain skips the geocoding stage without them.
type DetectRequest struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	IP        string   `json:"-"`
}

// DefaultLocationService implements Service.
type DefaultLocationService struct {
	Geocoder    ReverseGeocoder
	IPLookup    IPLocator
	DefaultCity string
	Logger      *zap.Logger
}

// Detect never fails: each stage's failure triggers the next, and the final
// fallback is the configured default city.
func (s *DefaultLocationService) Detect(ctx context.Context, req DetectRequest) string {
	if req.Latitude != nil && req.Longitude != nil {
		city, err := s.Geocoder.CityFor(ctx, *req.Latitude, *req.Longitude)
		if err == nil && city != "" {
			return city
		}
		if err != nil {
			s.Logger.Warn("reverse geocoding failed, falling back to IP lookup", zap.Error(err))
		}
	}

	if req.IP != "" {
		city, err := s.IPLookup.CityFor(ctx, req.IP)
		if err == nil && city != "" {
			return city
		}
		if err != nil {
			s.Logger.Warn("IP geolocation failed, using default city", zap.Error(err))
		}
	}

	return s.DefaultCity
}

// BigDataCloudGeocoder reverse-geocodes coordinates via bigdatacloud.net.
// The stage has a hard timeout enforced by the HTTP client.
type BigDataCloudGeocoder struct {
	Client *http.Client
}

func NewBigDataCloudGeocoder(timeout time.Duration) *BigDataCloudGeocoder {
	return &BigDataCloudGeocoder{Client: &http.Client{Timeout: timeout}}
}

func (g *BigDataCloudGeocoder) CityFor(ctx context.Context, latitude, longitude float64) (string, error) {
	url := fmt.Sprintf(
		"https://api.bigdatacloud.net/data/reverse-geocode-client?latitude=%f&longitude=%f&localityLanguage=en",
		latitude, longitude)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := g.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocode returned status %d", resp.StatusCode)
	}

	var payload struct {
		City     string `json:"city"`
		Locality string `json:"locality"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	if payload.City != "" {
		return payload.City, nil
	}
	return payload.Locality, nil
}

// IPAPILocator looks up the client IP via ipapi.co.
type IPAPILocator struct {
	Client *http.Client
}

func NewIPAPILocator(timeout time.Duration) *IPAPILocator {
	return &IPAPILocator{Client: &http.Client{Timeout: timeout}}
}

func (l *IPAPILocator) CityFor(ctx context.Context, ip string) (string, error) {
	url := fmt.Sprintf("https://ipapi.co/%s/json/", ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := l.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("IP geolocation returned status %d", resp.StatusCode)
	}

	var payload struct {
		City string `json:"city"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	return payload.City, nil
}
