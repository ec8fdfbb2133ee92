package models

import "time"

// DefaultSeed returns the bootstrap repeater records written to an empty
// store on first access. Bootstrap data, not test fixtures; callers may
// supply their own seed (or none) instead.
func DefaultSeed() []Repeater {
	now := time.Now().UTC()
	return []Repeater{
		{
			ID:             "1",
			Callsign:       "PY2ABC/R",
			Frequency:      "145.750",
			Offset:         "-0.600",
			CTCSS:          "88.5",
			Location:       "São Paulo, SP",
			Latitude:       -23.5505,
			Longitude:      -46.6333,
			Power:          "25W",
			Coverage:       "50km",
			Status:         StatusActive,
			Owner:          "PY2ABC",
			Notes:          "Repetidora metropolitana de São Paulo",
			CreatedAt:      now,
			UpdatedAt:      now,
			CreatedBy:      "PY2ABC",
			LastModifiedBy: "PY2ABC",
		},
		{
			ID:             "2",
			Callsign:       "PY2DEF/R",
			Frequency:      "146.850",
			Offset:         "-0.600",
			CTCSS:          "103.5",
			Location:       "Rio de Janeiro, RJ",
			Latitude:       -22.9068,
			Longitude:      -43.1729,
			Power:          "50W",
			Coverage:       "80km",
			Status:         StatusActive,
			Owner:          "PY2DEF",
			Notes:          "Cobertura da região metropolitana do Rio",
			CreatedAt:      now,
			UpdatedAt:      now,
			CreatedBy:      "PY2DEF",
			LastModifiedBy: "PY2DEF",
		},
	}
}
