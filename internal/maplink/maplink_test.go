package maplink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForLocation(t *testing.T) {
	assert.Equal(t,
		"https://www.google.com/maps/search/?api=1&query=Al+Majaz+3%2C+Sharjah",
		ForLocation("Al Majaz 3, Sharjah"))
}

func TestForLocationEmpty(t *testing.T) {
	assert.Empty(t, ForLocation(""))
}
