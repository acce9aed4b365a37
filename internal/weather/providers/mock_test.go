package providers

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/property-weather/internal/weather"
)

func TestMockCoordinates_Deterministic(t *testing.T) {
	lat1, lon1 := mockCoordinates("Phoenix")
	lat2, lon2 := mockCoordinates("Phoenix")
	assert.Equal(t, lat1, lat2)
	assert.Equal(t, lon1, lon2)

	// Case-insensitive on the city name.
	lat3, lon3 := mockCoordinates("PHOENIX")
	assert.Equal(t, lat1, lat3)
	assert.Equal(t, lon1, lon3)

	assert.Equal(t, 41.321, lat1)
	assert.Equal(t, -101.171, lon1)
}

func TestMockCoordinates_DifferentCities(t *testing.T) {
	latP, lonP := mockCoordinates("Phoenix")
	latM, lonM := mockCoordinates("Miami")
	assert.NotEqual(t, latP, latM)
	assert.NotEqual(t, lonP, lonM)
}

func TestMockCoordinates_Bounds(t *testing.T) {
	for _, city := range []string{"", "a", "Phoenix", "Miami", "Truth or Consequences", "Llanfair", "São Paulo"} {
		lat, lon := mockCoordinates(city)
		assert.GreaterOrEqual(t, lat, 24.0, city)
		assert.Less(t, lat, 49.0, city)
		assert.GreaterOrEqual(t, lon, -125.0, city)
		assert.Less(t, lon, -66.0, city)
	}
}

func TestMock_Current(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 6, 1, 21, 5, 0, 0, time.UTC))
	m := NewMock(clock)

	snap, err := m.Current(context.Background(), weather.Query{City: "Phoenix", State: "AZ", ZipCode: "85001"})
	require.NoError(t, err)

	assert.Equal(t, weather.Request{Type: "City", Query: "Phoenix, AZ 85001", Language: "en", Unit: "m"}, snap.Request)

	loc := snap.Location
	assert.Equal(t, "Phoenix", loc.Name)
	assert.Equal(t, "AZ", loc.Region)
	assert.Equal(t, "United States of America", loc.Country)
	assert.Equal(t, "America/Phoenix", loc.TimezoneID)
	assert.Equal(t, "-7.0", loc.UTCOffset)
	assert.Equal(t, "2024-06-01 14:05", loc.Localtime)
	assert.Equal(t, clock.Now().Unix(), loc.LocaltimeEpoch)

	lat, err := strconv.ParseFloat(loc.Lat, 64)
	require.NoError(t, err)
	assert.Equal(t, 41.321, lat)

	cur := snap.Current
	assert.Equal(t, "02:05 PM", cur.ObservationTime)
	assert.Equal(t, []string{mockIcon}, cur.WeatherIcons)
	assert.Equal(t, []string{"Sunny"}, cur.WeatherDescriptions)
	assert.Equal(t, "SW", cur.WindDir)
	assert.Equal(t, 1013, cur.Pressure)
	assert.Zero(t, cur.Precip)
	assert.Equal(t, 10, cur.Visibility)
	assert.Equal(t, "yes", cur.IsDay)
}

func TestMock_Current_RandomFieldsBounded(t *testing.T) {
	m := NewMock(clockwork.NewFakeClock())
	for i := 0; i < 200; i++ {
		snap, err := m.Current(context.Background(), weather.Query{City: "Miami", State: "FL", ZipCode: "33101"})
		require.NoError(t, err)
		c := snap.Current
		assert.True(t, c.Temperature >= 10 && c.Temperature <= 40, "temperature %d", c.Temperature)
		assert.True(t, c.Feelslike >= 10 && c.Feelslike <= 40, "feelslike %d", c.Feelslike)
		assert.True(t, c.WindSpeed >= 5 && c.WindSpeed <= 25, "wind speed %d", c.WindSpeed)
		assert.True(t, c.WindDegree >= 0 && c.WindDegree <= 360, "wind degree %d", c.WindDegree)
		assert.True(t, c.Humidity >= 30 && c.Humidity <= 80, "humidity %d", c.Humidity)
		assert.True(t, c.Cloudcover >= 0 && c.Cloudcover <= 30, "cloudcover %d", c.Cloudcover)
		assert.True(t, c.UVIndex >= 0 && c.UVIndex <= 10, "uv %d", c.UVIndex)
	}
}

func TestTimezoneFor(t *testing.T) {
	assert.Equal(t, timezone{"America/Phoenix", "-7.0"}, timezoneFor("AZ"))
	assert.Equal(t, timezone{"America/Chicago", "-6.0"}, timezoneFor("tx"))
	assert.Equal(t, defaultTimezone, timezoneFor("VT"))
	assert.Equal(t, defaultTimezone, timezoneFor(""))
}

func TestForCredential(t *testing.T) {
	assert.Equal(t, weather.ModeMock, ForCredential("mock", Options{}).Mode())
	assert.Equal(t, weather.ModeMock, ForCredential("demo", Options{}).Mode())
	assert.Equal(t, weather.ModeLive, ForCredential("Mock", Options{}).Mode())
	assert.Equal(t, weather.ModeLive, ForCredential("abc123", Options{}).Mode())

	live, ok := ForCredential("abc123", Options{}).(*Weatherstack)
	require.True(t, ok)
	assert.Equal(t, DefaultWeatherstackURL, live.baseURL)
	assert.Equal(t, DefaultTimeout, live.client.Timeout)
}
