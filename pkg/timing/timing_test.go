package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{42 * time.Nanosecond, "42ns"},
		{999 * time.Nanosecond, "999ns"},
		{1 * time.Microsecond, "1μs"},
		{1500 * time.Nanosecond, "1μs"}, // truncated, not rounded
		{999 * time.Microsecond, "999μs"},
		{1 * time.Millisecond, "1ms"},
		{250 * time.Millisecond, "250ms"},
		{1 * time.Second, "1s"},
		{90 * time.Second, "90s"},
	}

	for _, c := range cases {
		got := Format(c.d)
		assert.Equal(t, c.want, got.Formatted)
		assert.Equal(t, c.d.Nanoseconds(), got.Raw, "raw value must be preserved verbatim")
	}
}

func TestSince(t *testing.T) {
	e := Since(time.Now().Add(-10 * time.Millisecond))
	assert.GreaterOrEqual(t, e.Raw, int64(10*time.Millisecond))
	assert.NotEmpty(t, e.Formatted)
}
