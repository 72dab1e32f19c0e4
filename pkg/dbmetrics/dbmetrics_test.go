package dbmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("SELECT doctor_id FROM doctor_settings_snapshots"))
	assert.Equal(t, "insert", operation("  INSERT INTO t (a) VALUES ($1)"))
	assert.Equal(t, "unknown", operation("   "))
}
