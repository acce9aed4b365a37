package weather

import (
	"fmt"
	"math"
	"strconv"
)

// Query identifies the place a snapshot is requested for.
type Query struct {
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// String returns the free-text location query sent to the provider,
// e.g. "Phoenix, AZ 85001".
func (q Query) String() string {
	return fmt.Sprintf("%s, %s %s", q.City, q.State, q.ZipCode)
}

// Snapshot is the weather-conditions record attached to a property. Field
// names follow the provider wire format so the snapshot can be stored and
// served as received.
type Snapshot struct {
	Request  Request  `json:"request"`
	Location Location `json:"location"`
	Current  Current  `json:"current"`
}

// Request echoes the query the provider answered.
type Request struct {
	Type     string `json:"type"`
	Query    string `json:"query"`
	Language string `json:"language"`
	Unit     string `json:"unit"`
}

// Location is the place the provider resolved the query to.
// Lat and Lon are decimal strings on the wire.
type Location struct {
	Name           string `json:"name"`
	Country        string `json:"country"`
	Region         string `json:"region"`
	Lat            string `json:"lat"`
	Lon            string `json:"lon"`
	TimezoneID     string `json:"timezone_id"`
	Localtime      string `json:"localtime"`
	LocaltimeEpoch int64  `json:"localtime_epoch"`
	UTCOffset      string `json:"utc_offset"`
}

// Current holds the observed conditions. Temperatures are degrees Celsius.
type Current struct {
	ObservationTime     string   `json:"observation_time"`
	Temperature         int      `json:"temperature"`
	WeatherCode         int      `json:"weather_code"`
	WeatherIcons        []string `json:"weather_icons"`
	WeatherDescriptions []string `json:"weather_descriptions"`
	WindSpeed           int      `json:"wind_speed"`
	WindDegree          int      `json:"wind_degree"`
	WindDir             string   `json:"wind_dir"`
	Pressure            int      `json:"pressure"`
	Precip              float64  `json:"precip"`
	Humidity            int      `json:"humidity"`
	Cloudcover          int      `json:"cloudcover"`
	Feelslike           int      `json:"feelslike"`
	UVIndex             int      `json:"uv_index"`
	Visibility          int      `json:"visibility"`
	IsDay               string   `json:"is_day"`
}

// Coordinates parses the location latitude and longitude. Both must be
// finite numbers.
func (s Snapshot) Coordinates() (lat, lon float64, err error) {
	lat, err = parseCoordinate("latitude", s.Location.Lat)
	if err != nil {
		return 0, 0, err
	}
	lon, err = parseCoordinate("longitude", s.Location.Lon)
	if err != nil {
		return 0, 0, err
	}
	return lat, lon, nil
}

func parseCoordinate(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid %s %q: not a finite number", name, raw)
	}
	return v, nil
}
