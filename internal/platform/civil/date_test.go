package civil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndString(t *testing.T) {
	d, err := Parse(" 2024-03-01 ")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", d.String())

	_, err = Parse("01/03/2024")
	assert.Error(t, err)
}

func TestToday_UsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	now := time.Date(2024, 3, 1, 22, 0, 0, 0, loc) // 2024-03-02 03:00 UTC
	assert.Equal(t, "2024-03-02", Today(now).String())
}

func TestScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan("2024-05-05"))
	assert.Equal(t, "2024-05-05", d.String())

	require.NoError(t, d.Scan([]byte("2024-05-06 00:00:00")))
	assert.Equal(t, "2024-05-06", d.String())

	require.NoError(t, d.Scan(time.Date(2024, 5, 7, 13, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-05-07", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestZeroValue(t *testing.T) {
	var d Date

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	v, err := d.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
