package providers

import (
	"context"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // mock local times must not depend on the host zoneinfo

	"github.com/jonboulle/clockwork"

	"github.com/i474232898/property-weather/internal/common"
	"github.com/i474232898/property-weather/internal/weather"
)

const (
	mockCountry     = "United States of America"
	mockIcon        = "https://cdn.worldweatheronline.com/images/wsymbols01_png_64/wsymbol_0001_sunny.png"
	mockDescription = "Sunny"
	mockWeatherCode = 113
)

type timezone struct {
	id        string
	utcOffset string
}

var defaultTimezone = timezone{id: "America/New_York", utcOffset: "-5.0"}

var stateTimezones = map[string]timezone{
	"AZ": {"America/Phoenix", "-7.0"},
	"CA": {"America/Los_Angeles", "-8.0"},
	"NV": {"America/Los_Angeles", "-8.0"},
	"OR": {"America/Los_Angeles", "-8.0"},
	"WA": {"America/Los_Angeles", "-8.0"},
	"CO": {"America/Denver", "-7.0"},
	"UT": {"America/Denver", "-7.0"},
	"NM": {"America/Denver", "-7.0"},
	"MT": {"America/Denver", "-7.0"},
	"ID": {"America/Denver", "-7.0"},
	"WY": {"America/Denver", "-7.0"},
	"TX": {"America/Chicago", "-6.0"},
	"IL": {"America/Chicago", "-6.0"},
	"MN": {"America/Chicago", "-6.0"},
	"MO": {"America/Chicago", "-6.0"},
	"LA": {"America/Chicago", "-6.0"},
	"WI": {"America/Chicago", "-6.0"},
	"OK": {"America/Chicago", "-6.0"},
	"KS": {"America/Chicago", "-6.0"},
	"HI": {"Pacific/Honolulu", "-10.0"},
	"AK": {"America/Anchorage", "-9.0"},
}

// Mock implements weather.Provider without touching the network. Coordinates
// are a pure function of the city name; conditions vary within fixed bounds.
type Mock struct {
	clock clockwork.Clock
}

// NewMock creates the synthetic provider. A nil clock uses real time.
func NewMock(clock clockwork.Clock) *Mock {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Mock{clock: clock}
}

func (m *Mock) Mode() weather.Mode {
	return weather.ModeMock
}

func (m *Mock) Ping(context.Context) error {
	return nil
}

func (m *Mock) Current(_ context.Context, q weather.Query) (weather.Snapshot, error) {
	lat, lon := mockCoordinates(q.City)
	tz := timezoneFor(q.State)

	loc, err := time.LoadLocation(tz.id)
	if err != nil {
		loc = time.UTC
	}
	now := m.clock.Now().In(loc)

	return weather.Snapshot{
		Request: weather.Request{
			Type:     "City",
			Query:    q.String(),
			Language: "en",
			Unit:     "m",
		},
		Location: weather.Location{
			Name:           q.City,
			Country:        mockCountry,
			Region:         q.State,
			Lat:            strconv.FormatFloat(lat, 'f', 3, 64),
			Lon:            strconv.FormatFloat(lon, 'f', 3, 64),
			TimezoneID:     tz.id,
			Localtime:      now.Format("2006-01-02 15:04"),
			LocaltimeEpoch: now.Unix(),
			UTCOffset:      tz.utcOffset,
		},
		Current: weather.Current{
			ObservationTime:     now.Format("03:04 PM"),
			Temperature:         between(10, 40),
			WeatherCode:         mockWeatherCode,
			WeatherIcons:        []string{mockIcon},
			WeatherDescriptions: []string{mockDescription},
			WindSpeed:           between(5, 25),
			WindDegree:          between(0, 360),
			WindDir:             "SW",
			Pressure:            1013,
			Precip:              0,
			Humidity:            between(30, 80),
			Cloudcover:          between(0, 30),
			Feelslike:           between(10, 40),
			UVIndex:             between(0, 10),
			Visibility:          10,
			IsDay:               "yes",
		},
	}, nil
}

// mockCoordinates maps a city name onto the contiguous US bounding box:
// latitude in [24, 49), longitude in [-125, -66).
func mockCoordinates(city string) (lat, lon float64) {
	h := int64(common.HashString(strings.ToLower(city)))
	if h < 0 {
		h = -h
	}
	lat = 24 + float64(h%25000)/1000
	lon = -125 + float64((h/25000)%59000)/1000
	return round3(lat), round3(lon)
}

func timezoneFor(state string) timezone {
	if tz, ok := stateTimezones[strings.ToUpper(state)]; ok {
		return tz
	}
	return defaultTimezone
}

// between returns a uniform integer in [lo, hi].
func between(lo, hi int) int {
	return lo + rand.Intn(hi-lo+1)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
