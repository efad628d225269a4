package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateGrowth(t *testing.T) {
	assert.Equal(t, 0.0, CalculateGrowth(0, 0))
	assert.Equal(t, 100.0, CalculateGrowth(50, 0))
	assert.Equal(t, 25.0, CalculateGrowth(125, 100))
	assert.Equal(t, -50.0, CalculateGrowth(50, 100))
}
