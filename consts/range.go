package consts

// Overview radii are bounded: the engine targets a single active session
// looking around itself, not planet-scale indexing.
const (
	MIN_RADIUS_KM = 1.0
	MAX_RADIUS_KM = 500.0

	// default overview radius when the client omits one
	DEFAULT_RADIUS_KM = 50.0

	// how far around a user community resources are listed by default
	COMMUNITY_DISTANCE_RANGE_KM = 50.0
)
