package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddNeighborRejectsSelfLoop(t *testing.T) {
	// the guard runs before any db access, so no connection is needed
	s := NewBeaconStore(nil)

	err := s.AddNeighbor("acct-1", "acct-1")
	assert.Equal(t, ErrSelfReference, err)
}
