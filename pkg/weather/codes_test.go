package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeCodeKnown(t *testing.T) {
	assert.Equal(t, "Onbewolkt", DescribeCode(0))
	assert.Equal(t, "Bewolkt", DescribeCode(3))
	assert.Equal(t, "Regen", DescribeCode(63))
	assert.Equal(t, "Onweer", DescribeCode(95))
}

func TestDescribeCodeUnknownFallsBack(t *testing.T) {
	for _, code := range []int{-1, 4, 42, 250, 9999} {
		desc := DescribeCode(code)
		assert.Equal(t, UnknownDescription, desc, "code %d", code)
		assert.NotEmpty(t, desc)
	}
}
