package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelResolvesKnownKeys(t *testing.T) {
	assert.Equal(t, "Appointments", Label(KeyAppointments))
	assert.Equal(t, "Activity logs", Label(KeyLogs))
}

func TestLabelFallsBackToIdentity(t *testing.T) {
	assert.Equal(t, "unknown-key", Label("unknown-key"))
	assert.Equal(t, "", Label(""))
}

func TestCatalogCoversAllKnownKeys(t *testing.T) {
	entries := Catalog()
	assert.Len(t, entries, len(labels))
	for _, entry := range entries {
		assert.Equal(t, labels[entry.Key], entry.Label)
	}
}
