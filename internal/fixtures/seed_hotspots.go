package fixtures

import (
	"github.com/codescan-io/sonarqube-sub000/internal/entities"
)

// DefaultHotspots returns the seeded hotspots. Keys prefixed b1- live on branch b1.
func DefaultHotspots() []entities.Hotspot {
	return []entities.Hotspot{
		MockHotspot(func(h *entities.Hotspot) {
			h.Assignee = "John Doe"
			h.Key = "b1-test-1"
			h.Branch = "b1"
			h.Message = "'F' is a magic number."
		}),
		MockHotspot(func(h *entities.Hotspot) {
			h.Assignee = "John Doe"
			h.Key = "b1-test-2"
			h.Branch = "b1"
		}),
		MockHotspot(func(h *entities.Hotspot) {
			h.Key = "test-1"
			h.Status = entities.HotspotToReview
		}),
		MockHotspot(func(h *entities.Hotspot) {
			h.Key = "test-2"
			h.Status = entities.HotspotToReview
			h.Message = "'2' is a magic number."
		}),
	}
}
