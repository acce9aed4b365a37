package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryString(t *testing.T) {
	q := Query{City: "Phoenix", State: "AZ", ZipCode: "85001"}
	assert.Equal(t, "Phoenix, AZ 85001", q.String())
}

func TestSnapshotCoordinates(t *testing.T) {
	snap := Snapshot{Location: Location{Lat: "33.448", Lon: "-112.074"}}
	lat, lon, err := snap.Coordinates()
	require.NoError(t, err)
	assert.Equal(t, 33.448, lat)
	assert.Equal(t, -112.074, lon)
}

func TestSnapshotCoordinates_Invalid(t *testing.T) {
	cases := map[string]Location{
		"empty lat":    {Lat: "", Lon: "1"},
		"text lon":     {Lat: "1", Lon: "west"},
		"nan lat":      {Lat: "NaN", Lon: "1"},
		"infinite lon": {Lat: "1", Lon: "+Inf"},
	}
	for name, loc := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := Snapshot{Location: loc}.Coordinates()
			require.Error(t, err)
		})
	}
}

func TestIsTransport(t *testing.T) {
	assert.True(t, IsTransport(NewFetchError(KindTimeout, 0, nil, "timed out")))
	assert.True(t, IsTransport(NewFetchError(KindTransport, 0, nil, "network error")))
	assert.False(t, IsTransport(NewFetchError(KindProvider, 101, nil, "invalid key")))
	assert.False(t, IsTransport(NewFetchError(KindHTTPStatus, 401, nil, "invalid key")))
	assert.False(t, IsTransport(NewFetchError(KindIncomplete, 0, nil, "no location")))
}
