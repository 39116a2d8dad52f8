package permission

// Keys of all permissions known to the portal
const (
	KeyAppointments = "appointments"
	KeyLogs         = "logs"
	KeyRooms        = "rooms"
	KeyUsers        = "users"
)

var labels = map[string]string{
	KeyAppointments: "Appointments",
	KeyLogs:         "Activity logs",
	KeyRooms:        "Rooms",
	KeyUsers:        "Users",
}

// CatalogEntry represents a single known permission key together with its human-readable label
type CatalogEntry struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Label returns the human-readable label of a permission key.
// The lookup is total: unknown keys are returned unchanged.
func Label(key string) string {
	if label, ok := labels[key]; ok {
		return label
	}
	return key
}

// Catalog returns all known permission keys with their labels
func Catalog() []CatalogEntry {
	entries := []CatalogEntry{
		{Key: KeyAppointments},
		{Key: KeyLogs},
		{Key: KeyRooms},
		{Key: KeyUsers},
	}
	for i := range entries {
		entries[i].Label = Label(entries[i].Key)
	}
	return entries
}
