package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// ActivityState keeps the last known activity of an account. Stored as a
// jsonb column.
type ActivityState struct {
	LastActiveTime time.Time `json:"last_active_time"`
	LastLocation   *Location `json:"location"`
}

func (u ActivityState) Value() (driver.Value, error) {
	return json.Marshal(u)
}

func (u *ActivityState) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, u)
}

// Account is a registered mobile client. PublicTag is the shareable
// 6-character identifier used by community flows; it is nil until assigned
// and immutable afterwards.
type Account struct {
	AccountNumber string        `json:"account_number" gorm:"primary_key"`
	PublicTag     *string       `json:"public_tag,omitempty" gorm:"unique_index"`
	State         ActivityState `json:"state" gorm:"type:jsonb;not null;default '{}'"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
