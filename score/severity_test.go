package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beacon-app/beacon-api/schema"
)

func TestClassifySeverityCritical(t *testing.T) {
	assert.Equal(t, schema.HazardSeverityCritical, ClassifySeverity(6))
	assert.Equal(t, schema.HazardSeverityCritical, ClassifySeverity(6.2))
	assert.Equal(t, schema.HazardSeverityCritical, ClassifySeverity(9.5))
}

func TestClassifySeverityHigh(t *testing.T) {
	assert.Equal(t, schema.HazardSeverityHigh, ClassifySeverity(4.5))
	assert.Equal(t, schema.HazardSeverityHigh, ClassifySeverity(5.9))
}

func TestClassifySeverityModerate(t *testing.T) {
	assert.Equal(t, schema.HazardSeverityModerate, ClassifySeverity(4.4))
	assert.Equal(t, schema.HazardSeverityModerate, ClassifySeverity(2.1))
	assert.Equal(t, schema.HazardSeverityModerate, ClassifySeverity(0))
	assert.Equal(t, schema.HazardSeverityModerate, ClassifySeverity(-1))
}
