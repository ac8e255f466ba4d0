package either

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fetchStatus(bit int) Either[int, error] {
	if bit < 0 {
		return Right[int](errors.New("machine has an error"))
	}
	return Left[int, error](bit)
}

func TestLeftAccessors(t *testing.T) {
	e := fetchStatus(3)
	assert.True(t, e.IsLeft())
	assert.False(t, e.IsRight())

	v, ok := e.Left()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	r, ok := e.Right()
	assert.False(t, ok)
	assert.Nil(t, r)
}

func TestRightAccessors(t *testing.T) {
	e := fetchStatus(-1)
	assert.True(t, e.IsRight())

	_, ok := e.Left()
	assert.False(t, ok)

	err, ok := e.Right()
	assert.True(t, ok)
	assert.EqualError(t, err, "machine has an error")
}

func TestZeroValueIsLeft(t *testing.T) {
	var e Either[string, int]
	v, ok := e.Left()
	assert.True(t, ok)
	assert.Equal(t, "", v)
	assert.Equal(t, "Left()", e.String())
}

func TestFold(t *testing.T) {
	toString := func(e Either[int, string]) string {
		return Fold(e, strconv.Itoa, func(s string) string { return "err:" + s })
	}
	assert.Equal(t, "7", toString(Left[int, string](7)))
	assert.Equal(t, "err:boom", toString(Right[int]("boom")))
	assert.Equal(t, "Right(boom)", Right[int]("boom").String())
}
