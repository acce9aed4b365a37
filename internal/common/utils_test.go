package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasAny(t *testing.T) {
	assert.True(t, HasAny("Client.Timeout exceeded while awaiting headers", "timeout"))
	assert.True(t, HasAny("dial tcp: connection refused", "deadline", "refused"))
	assert.False(t, HasAny("bad gateway", "timeout"))
	assert.False(t, HasAny("anything"))
}

func TestHashString(t *testing.T) {
	assert.Equal(t, int32(0), HashString(""))
	assert.Equal(t, int32(97), HashString("a"))
	assert.Equal(t, int32(-595742321), HashString("phoenix"))
	assert.Equal(t, int32(103888545), HashString("miami"))
	assert.Equal(t, HashString("denver"), HashString("denver"))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "san", EscapeLike("san"))
	assert.Equal(t, `100\%`, EscapeLike("100%"))
	assert.Equal(t, `a\_b`, EscapeLike("a_b"))
	assert.Equal(t, `c:\\x`, EscapeLike(`c:\x`))
}
