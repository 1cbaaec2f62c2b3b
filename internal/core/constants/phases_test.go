package constants

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampZoom(t *testing.T) {
	assert.Equal(t, DefaultZoom, ClampZoom(0))
	assert.Equal(t, DefaultZoom, ClampZoom(-1))
	assert.Equal(t, DefaultZoom, ClampZoom(math.NaN()))
	assert.Equal(t, MinZoom, ClampZoom(0.5))
	assert.Equal(t, 150.0, ClampZoom(150))
	assert.Equal(t, MaxZoom, ClampZoom(math.Inf(1)))
}
