package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	ResourceOffering   = "offering"
	ResourceRequesting = "requesting"
)

const (
	CommunityResourceActive    = "active"
	CommunityResourceClaimed   = "claimed"
	CommunityResourceCompleted = "completed"
)

// NeighborEdge is one direction of a neighbor relationship. Mutual
// visibility requires two edges; the system never symmetrizes on its own.
// The pair is unique and self-loops are rejected before insert.
type NeighborEdge struct {
	AccountNumber  string    `json:"account_number" gorm:"primary_key"`
	NeighborNumber string    `json:"neighbor_number" gorm:"primary_key"`
	CreatedAt      time.Time `json:"created_at"`
}

// CommunityResource is something a user offers to or requests from nearby
// users. It is never deleted; its lifecycle is the status chain
// active -> claimed -> completed with no other transition permitted.
type CommunityResource struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	AccountNumber string    `json:"account_number"`
	Type          string    `json:"type"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Status        string    `json:"status" sql:"default:'active'"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Claimer       string    `json:"claimer,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (r CommunityResource) Location() Location {
	return Location{
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
}
