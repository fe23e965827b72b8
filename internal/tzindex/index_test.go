package tzindex

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZoneIDKnownCities(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lon  float64
		zone string
	}{
		{"Warsaw", 52.2297, 21.0122, "Europe/Warsaw"},
		{"Tokyo", 35.6762, 139.6503, "Asia/Tokyo"},
		{"New York", 40.7128, -74.0060, "America/New_York"},
	}

	ix := Shared()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zone, ok := ix.ZoneID(tt.lat, tt.lon)
			assert.True(t, ok)
			assert.Equal(t, tt.zone, zone)
		})
	}
}

func TestZoneIDOpenOcean(t *testing.T) {
	// Middle of the South Pacific is outside every zone polygon.
	_, ok := Shared().ZoneID(-48.876667, -123.393333)
	assert.False(t, ok)
}

func TestConcurrentFirstUse(t *testing.T) {
	ix := &Index{}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			zone, ok := ix.ZoneID(52.2297, 21.0122)
			assert.True(t, ok)
			assert.Equal(t, "Europe/Warsaw", zone)
		}()
	}
	wg.Wait()
}
