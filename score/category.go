package score

import (
	"strings"

	"github.com/beacon-app/beacon-api/schema"
)

// Categorize maps a raw resource type string onto one of the four
// client-facing categories and its display label. The mapping is total:
// every input, including the empty string, maps to exactly one category and
// anything unrecognized counts as a shelter.
func Categorize(rawType string) (schema.ResourceCategory, string) {
	switch strings.ToLower(rawType) {
	case "hospital", "clinic":
		return schema.ResourceCategoryMedical, capitalize(rawType)
	case "fire_station":
		return schema.ResourceCategoryEmergency, "Fire Station"
	case "police", "ambulance":
		return schema.ResourceCategoryEmergency, capitalize(rawType)
	case "supply":
		return schema.ResourceCategorySupplies, "Supplies"
	case "pharmacy", "supermarket":
		return schema.ResourceCategorySupplies, capitalize(rawType)
	default:
		return schema.ResourceCategoryShelter, "Emergency Shelter"
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToLower(s)
	return strings.ToUpper(s[:1]) + s[1:]
}
