package store

import (
	"fmt"

	"github.com/lib/pq"

	"github.com/beacon-app/beacon-api/schema"
)

// postgres unique_violation
const uniqueViolation = "23505"

var ErrSelfReference = fmt.Errorf("an account cannot be its own neighbor")

// AddNeighbor inserts one direction of a neighbor relationship. Inserting
// an edge that already exists is a silent no-op; mutual visibility needs
// the reverse edge inserted explicitly by the other flow.
func (s *BeaconStore) AddNeighbor(accountNumber, neighborNumber string) error {
	if accountNumber == neighborNumber {
		return ErrSelfReference
	}

	edge := schema.NeighborEdge{
		AccountNumber:  accountNumber,
		NeighborNumber: neighborNumber,
	}

	if err := s.ormDB.Create(&edge).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return nil
		}
		return err
	}

	return nil
}

// ListNeighbors returns the outgoing edges of an account
func (s *BeaconStore) ListNeighbors(accountNumber string) ([]schema.NeighborEdge, error) {
	edges := []schema.NeighborEdge{}

	if err := s.ormDB.
		Where("account_number = ?", accountNumber).
		Order("created_at").
		Find(&edges).Error; err != nil {
		return nil, err
	}

	return edges, nil
}
