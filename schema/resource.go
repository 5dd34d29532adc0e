package schema

const ShelterCollection = "shelter"

type ResourceCategory string

const (
	ResourceCategoryShelter   ResourceCategory = "shelter"
	ResourceCategoryMedical   ResourceCategory = "medical"
	ResourceCategoryEmergency ResourceCategory = "emergency"
	ResourceCategorySupplies  ResourceCategory = "supplies"
)

type ResourceStatus string

const (
	ResourceStatusOpen    ResourceStatus = "open"
	ResourceStatusLimited ResourceStatus = "limited"
	ResourceStatusClosed  ResourceStatus = "closed"
	ResourceStatusUnknown ResourceStatus = "unknown"
)

// ResourceRecord is a shelter, medical facility or supply point as served
// to clients. RawType is whatever the backing store recorded; Category and
// Label are derived from it and are always populated before a record leaves
// the overview aggregator, as are Latitude/Longitude and DistanceKm.
type ResourceRecord struct {
	ID       string         `json:"id" bson:"id"`
	Name     string         `json:"name" bson:"name"`
	Address  string         `json:"address" bson:"address"`
	Phone    string         `json:"phone,omitempty" bson:"phone"`
	Capacity int            `json:"capacity,omitempty" bson:"capacity"`
	RawType  string         `json:"-" bson:"raw_type"`
	Status   ResourceStatus `json:"status" bson:"status"`
	Point    *GeoJSON       `json:"-" bson:"location"`

	Latitude   float64          `json:"lat" bson:"-"`
	Longitude  float64          `json:"lon" bson:"-"`
	Category   ResourceCategory `json:"type" bson:"-"`
	Label      string           `json:"label" bson:"-"`
	DistanceKm float64          `json:"dist_km" bson:"-"`
}

func (r ResourceRecord) Location() Location {
	return r.Point.Location()
}

// ResourceList wraps the resource section of an overview payload.
type ResourceList struct {
	Items []ResourceRecord `json:"items"`
}

// OverviewResult is the combined radius-bounded payload returned to a
// client. Both lists are sorted ascending by distance.
type OverviewResult struct {
	Hazards   []HazardRecord `json:"hazards"`
	Resources ResourceList   `json:"resources"`
}
