package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClock(t *testing.T) {
	cases := map[int]string{
		0:    "000:00",
		10:   "000:10",
		55:   "000:55",
		60:   "001:00",
		1375: "022:55",
		6005: "100:05",
	}
	for in, want := range cases {
		assert.Equal(t, want, Clock(in), "time %d", in)
	}
}

func TestStamp(t *testing.T) {
	assert.Equal(t, "001:40 red headquarter was taken", Stamp(100, "red headquarter was taken"))
}
