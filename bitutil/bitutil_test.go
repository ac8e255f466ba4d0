package bitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetClearCheckToggle(t *testing.T) {
	assert.Equal(t, 1, Set(0, 0))
	assert.Equal(t, 2, Set(0, 1))
	assert.Equal(t, 4, Set(0, 2))

	assert.Equal(t, 0, Clear(1, 0))
	assert.Equal(t, 0, Clear(2, 1))
	assert.Equal(t, 0, Clear(4, 2))

	assert.True(t, Check(0b001, 0))
	assert.True(t, Check(0b010, 1))
	assert.False(t, Check(0b000000, 5))

	assert.Equal(t, 0b011, Toggle(0b010, 0))
	assert.Equal(t, 0b000, Toggle(0b010, 1))
	assert.Equal(t, 0b110, Toggle(0b010, 2))

	assert.Equal(t, uint64(1)<<63, Set(uint64(0), 63))
}

func TestCount(t *testing.T) {
	assert.Equal(t, 2, Count(0b011))
	assert.Equal(t, 3, Count(0b11010))
	assert.Equal(t, 8, Count(int8(-1)))
	assert.Equal(t, 16, Count(int16(-1)))
	assert.Equal(t, 64, Count(int64(-1)))
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 16, Width[int16]())
	assert.Equal(t, 32, Width[int32]())
	assert.Equal(t, 64, Width[int64]())
	assert.Equal(t, 16, Width[uint16]())
	assert.Equal(t, 32, Width[uint32]())
	assert.Equal(t, 64, Width[uint64]())
}
