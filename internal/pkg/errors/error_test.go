package xerrors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapf(t *testing.T) {
	err := Wrapf(ErrNotFound, "client %d", 42)

	assert.EqualError(t, err, "client 42: resource not found")
	assert.True(t, Is(err, ErrNotFound))
	assert.Nil(t, Wrapf(nil, "client %d", 42))
}
