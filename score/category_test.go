package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beacon-app/beacon-api/schema"
)

func TestCategorizeMedical(t *testing.T) {
	category, label := Categorize("hospital")
	assert.Equal(t, schema.ResourceCategoryMedical, category)
	assert.Equal(t, "Hospital", label)

	category, label = Categorize("clinic")
	assert.Equal(t, schema.ResourceCategoryMedical, category)
	assert.Equal(t, "Clinic", label)
}

func TestCategorizeEmergency(t *testing.T) {
	category, label := Categorize("fire_station")
	assert.Equal(t, schema.ResourceCategoryEmergency, category)
	assert.Equal(t, "Fire Station", label)

	category, label = Categorize("police")
	assert.Equal(t, schema.ResourceCategoryEmergency, category)
	assert.Equal(t, "Police", label)

	category, label = Categorize("ambulance")
	assert.Equal(t, schema.ResourceCategoryEmergency, category)
	assert.Equal(t, "Ambulance", label)
}

func TestCategorizeSupplies(t *testing.T) {
	category, label := Categorize("supply")
	assert.Equal(t, schema.ResourceCategorySupplies, category)
	assert.Equal(t, "Supplies", label)

	category, label = Categorize("pharmacy")
	assert.Equal(t, schema.ResourceCategorySupplies, category)
	assert.Equal(t, "Pharmacy", label)

	category, label = Categorize("supermarket")
	assert.Equal(t, schema.ResourceCategorySupplies, category)
	assert.Equal(t, "Supermarket", label)
}

func TestCategorizeDefaultsToShelter(t *testing.T) {
	for _, rawType := range []string{"", "shelter", "warming_center", "whatever"} {
		category, label := Categorize(rawType)
		assert.Equal(t, schema.ResourceCategoryShelter, category, rawType)
		assert.Equal(t, "Emergency Shelter", label, rawType)
	}
}

func TestCategorizeCaseInsensitive(t *testing.T) {
	category, label := Categorize("HOSPITAL")
	assert.Equal(t, schema.ResourceCategoryMedical, category)
	assert.Equal(t, "Hospital", label)
}
