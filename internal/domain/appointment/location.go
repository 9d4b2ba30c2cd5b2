package appointment

// ===============================
// Locations
// ===============================

type Location string

const (
	LocationSegrate Location = "Segrate"
	LocationMilan   Location = "Milan"
)

// Locations lists the salons an appointment can be booked at.
var Locations = []Location{LocationSegrate, LocationMilan}

func IsValidLocation(s string) bool {
	for _, l := range Locations {
		if string(l) == s {
			return true
		}
	}
	return false
}
