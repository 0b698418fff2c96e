package location

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeGeocoder struct {
	city string
	err  error
}

func (f *fakeGeocoder) CityFor(ctx context.Context, lat, lng float64) (string, error) {
	return f.city, f.err
}

type fakeIPLocator struct {
	city string
	err  error
}

func (f *fakeIPLocator) CityFor(ctx context.Context, ip string) (string, error) {
	return f.city, f.err
}

func f64(v float64) *float64 { return &v }

func TestDetectFallbackChain(t *testing.T) {
	ctx := context.Background()

	newService := func(geo ReverseGeocoder, ip IPLocator) *DefaultLocationService {
		return &DefaultLocationService{
			Geocoder:    geo,
			IPLookup:    ip,
			DefaultCity: "Mumbai",
			Logger:      zap.NewNop(),
		}
	}

	t.Run("CoordinatesResolveDirectly", func(t *testing.T) {
		svc := newService(&fakeGeocoder{city: "Pune"}, &fakeIPLocator{city: "Delhi"})
		city := svc.Detect(ctx, DetectRequest{Latitude: f64(18.52), Longitude: f64(73.86), IP: "1.2.3.4"})
		assert.Equal(t, "Pune", city)
	})

	t.Run("GeocodeFailureFallsBackToIP", func(t *testing.T) {
		svc := newService(&fakeGeocoder{err: errors.New("timeout")}, &fakeIPLocator{city: "Delhi"})
		city := svc.Detect(ctx, DetectRequest{Latitude: f64(18.52), Longitude: f64(73.86), IP: "1.2.3.4"})
		assert.Equal(t, "Delhi", city)
	})

	t.Run("NoCoordinatesSkipsGeocoding", func(t *testing.T) {
		svc := newService(&fakeGeocoder{city: "Pune"}, &fakeIPLocator{city: "Delhi"})
		city := svc.Detect(ctx, DetectRequest{IP: "1.2.3.4"})
		assert.Equal(t, "Delhi", city)
	})

	t.Run("AllStagesFailYieldDefaultCity", func(t *testing.T) {
		svc := newService(&fakeGeocoder{err: errors.New("down")}, &fakeIPLocator{err: errors.New("down")})
		city := svc.Detect(ctx, DetectRequest{Latitude: f64(1), Longitude: f64(2), IP: "1.2.3.4"})
		assert.Equal(t, "Mumbai", city)
	})

	t.Run("EmptyCityTreatedAsFailure", func(t *testing.T) {
		svc := newService(&fakeGeocoder{city: ""}, &fakeIPLocator{city: ""})
		city := svc.Detect(ctx, DetectRequest{Latitude: f64(1), Longitude: f64(2), IP: "1.2.3.4"})
		assert.Equal(t, "Mumbai", city)
	})
}
