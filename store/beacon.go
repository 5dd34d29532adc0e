package store

import (
	"github.com/jinzhu/gorm"

	"github.com/beacon-app/beacon-api/schema"
)

// beacon main datastore
type BeaconCore interface {
	Ping() error

	// Account
	CreateAccount(accountNumber string) (*schema.Account, error)
	GetAccount(accountNumber string) (*schema.Account, error)
	UpdateAccountGeoPosition(accountNumber string, latitude, longitude float64) error
	AssignPublicTag(accountNumber string) (string, error)

	// Neighbor graph
	AddNeighbor(accountNumber, neighborNumber string) error
	ListNeighbors(accountNumber string) ([]schema.NeighborEdge, error)

	// Community resources
	PostResource(accountNumber, resourceType, title, description string, location schema.Location) (*schema.CommunityResource, error)
	GetResource(resourceID string) (*schema.CommunityResource, error)
	ClaimResource(resourceID, claimer string) error
	CompleteResource(resourceID, owner string) error
	ListNearbyResources(location schema.Location, radiusKm float64) ([]schema.CommunityResource, error)
}

// BeaconStore is an implementation of BeaconCore
type BeaconStore struct {
	ormDB *gorm.DB
}

func NewBeaconStore(ormDB *gorm.DB) *BeaconStore {
	return &BeaconStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *BeaconStore) Ping() error {
	return s.ormDB.DB().Ping()
}
