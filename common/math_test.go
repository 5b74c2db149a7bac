package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign(t *testing.T) {
	assert.Equal(t, -1.0, Sign(-0.5))
	assert.Equal(t, 1.0, Sign(0))
	assert.Equal(t, 1.0, Sign(3))
}
