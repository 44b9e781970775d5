package util

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
)

func TestNewULID(t *testing.T) {
	id := NewULID()

	assert.Len(t, id, 26)
	_, err := ulid.ParseStrict(id)
	assert.NoError(t, err)

	// Two consecutive ids are distinct
	assert.NotEqual(t, id, NewULID())
}
