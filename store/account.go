package store

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/beacon-app/beacon-api/schema"
)

const (
	publicTagBytes = 3 // hex-encodes to 6 characters
	maxTagAttempts = 5
)

var (
	ErrAccountTaken           = fmt.Errorf("the account has been registered")
	ErrAccountNotFound        = fmt.Errorf("account not found")
	ErrTagAssignmentExhausted = fmt.Errorf("public tag assignment gave up after too many collisions")
)

// CreateAccount registers an account into the beacon system
func (s *BeaconStore) CreateAccount(accountNumber string) (*schema.Account, error) {
	a := schema.Account{
		AccountNumber: accountNumber,
		State: schema.ActivityState{
			LastActiveTime: time.Now(),
		},
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return nil, ErrAccountTaken
		}
		return nil, err
	}

	return &a, nil
}

// GetAccount returns an account instance of a given account number
func (s *BeaconStore) GetAccount(accountNumber string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("account_number = ?", accountNumber).First(&a).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

// UpdateAccountGeoPosition updates the last known location of an account
func (s *BeaconStore) UpdateAccountGeoPosition(accountNumber string, latitude, longitude float64) error {
	var a schema.Account
	if err := s.ormDB.Where("account_number = ?", accountNumber).First(&a).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return ErrAccountNotFound
		}
		return err
	}

	a.State.LastActiveTime = time.Now()
	a.State.LastLocation = &schema.Location{
		Latitude:  latitude,
		Longitude: longitude,
	}

	return s.ormDB.Save(&a).Error
}

// AssignPublicTag gives an account its shareable 6-character tag. Accounts
// that already carry a tag keep it; the call is a no-op returning the
// existing value. Tag collisions are resolved by regenerating, bounded by
// maxTagAttempts so a degenerate tag space cannot loop forever. The unique
// index on public_tag is the arbiter when two assignments race.
func (s *BeaconStore) AssignPublicTag(accountNumber string) (string, error) {
	a, err := s.GetAccount(accountNumber)
	if err != nil {
		return "", err
	}
	if a.PublicTag != nil {
		return *a.PublicTag, nil
	}

	for attempt := 0; attempt < maxTagAttempts; attempt++ {
		tag, err := generatePublicTag()
		if err != nil {
			return "", err
		}

		result := s.ormDB.Model(schema.Account{}).
			Where("account_number = ? AND public_tag IS NULL", accountNumber).
			Update("public_tag", tag)
		if result.Error != nil {
			if pqErr, ok := result.Error.(*pq.Error); ok && pqErr.Code == uniqueViolation {
				continue
			}
			return "", result.Error
		}

		// another call won the race and tagged this account first
		if result.RowsAffected == 0 {
			a, err := s.GetAccount(accountNumber)
			if err != nil {
				return "", err
			}
			if a.PublicTag == nil {
				return "", ErrAccountNotFound
			}
			return *a.PublicTag, nil
		}

		return tag, nil
	}

	return "", ErrTagAssignmentExhausted
}

// generatePublicTag returns 6 uppercase hex characters
func generatePublicTag() (string, error) {
	b := make([]byte, publicTagBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}
