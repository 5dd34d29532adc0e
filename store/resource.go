package store

import (
	"fmt"
	"sort"

	"github.com/jinzhu/gorm"

	"github.com/beacon-app/beacon-api/geo"
	"github.com/beacon-app/beacon-api/schema"
)

var (
	ErrInvalidResourceType    = fmt.Errorf("resource type must be offering or requesting")
	ErrInvalidStateTransition = fmt.Errorf("the resource is not in a state that permits this transition")
	ErrResourceNotFound       = fmt.Errorf("community resource not found")
)

// PostResource creates a community resource. Every resource starts active.
func (s *BeaconStore) PostResource(accountNumber, resourceType, title, description string, location schema.Location) (*schema.CommunityResource, error) {
	if resourceType != schema.ResourceOffering && resourceType != schema.ResourceRequesting {
		return nil, ErrInvalidResourceType
	}

	resource := schema.CommunityResource{
		AccountNumber: accountNumber,
		Type:          resourceType,
		Title:         title,
		Description:   description,
		Status:        schema.CommunityResourceActive,
		Latitude:      location.Latitude,
		Longitude:     location.Longitude,
	}

	if err := s.ormDB.Create(&resource).Error; err != nil {
		return nil, err
	}

	return &resource, nil
}

func (s *BeaconStore) GetResource(resourceID string) (*schema.CommunityResource, error) {
	var resource schema.CommunityResource

	if err := s.ormDB.Where("id = ?", resourceID).First(&resource).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}

	return &resource, nil
}

// ClaimResource moves a resource from active to claimed. The conditional
// update is the guard: claiming anything not currently active, including a
// second claim of the same resource, affects zero rows and is rejected.
func (s *BeaconStore) ClaimResource(resourceID, claimer string) error {
	result := s.ormDB.Model(schema.CommunityResource{}).
		Where("id = ? AND status = ?", resourceID, schema.CommunityResourceActive).
		Updates(map[string]interface{}{
			"status":  schema.CommunityResourceClaimed,
			"claimer": claimer,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrInvalidStateTransition
	}

	return nil
}

// CompleteResource moves a resource from claimed to completed. Only the
// posting account may complete it.
func (s *BeaconStore) CompleteResource(resourceID, owner string) error {
	result := s.ormDB.Model(schema.CommunityResource{}).
		Where("id = ? AND status = ? AND account_number = ?", resourceID, schema.CommunityResourceClaimed, owner).
		Update("status", schema.CommunityResourceCompleted)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrInvalidStateTransition
	}

	return nil
}

// ListNearbyResources returns active and claimed resources within radiusKm
// of the given location, nearest first. Completed resources stay out of
// the listing but are never deleted.
func (s *BeaconStore) ListNearbyResources(location schema.Location, radiusKm float64) ([]schema.CommunityResource, error) {
	all := []schema.CommunityResource{}

	if err := s.ormDB.
		Where("status IN (?)", []string{schema.CommunityResourceActive, schema.CommunityResourceClaimed}).
		Find(&all).Error; err != nil {
		return nil, err
	}

	nearby := []schema.CommunityResource{}
	distances := map[string]float64{}
	for _, r := range all {
		d := geo.DistanceKm(location, r.Location())
		if d > radiusKm {
			continue
		}
		distances[r.ID.String()] = d
		nearby = append(nearby, r)
	}

	sort.Slice(nearby, func(i, j int) bool {
		di := distances[nearby[i].ID.String()]
		dj := distances[nearby[j].ID.String()]
		if di != dj {
			return di < dj
		}
		return nearby[i].ID.String() < nearby[j].ID.String()
	})

	return nearby, nil
}
