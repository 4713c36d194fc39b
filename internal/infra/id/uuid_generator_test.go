package id

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUUIDGenerator_NewID(t *testing.T) {
	gen := NewUUIDGenerator()

	id := gen.NewID()
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, uuid.Version(4), id.Version())
	assert.Equal(t, uuid.RFC4122, id.Variant())
}

func TestUUIDGenerator_Uniqueness(t *testing.T) {
	gen := NewUUIDGenerator()

	const n = 100000
	seen := make(map[uuid.UUID]struct{}, n)
	for i := 0; i < n; i++ {
		id := gen.NewID()
		_, dup := seen[id]
		assert.False(t, dup, "generated duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
