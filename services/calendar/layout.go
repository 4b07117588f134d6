package calendar

import (
	"sort"
	"time"

	"xscheduler/models"
)

// minBlockHeightMinutes keeps very short appointments visible in the grid.
const minBlockHeightMinutes = 15

// AssignLanes lays out the appointments of one day column. Overlapping
// appointments get distinct 0-based lane indices (first-fit, smallest
// free lane), and each block's LaneCount ends up as the peak concurrency
// seen at any point while the block was active — later arrivals in the
// same cluster revise earlier blocks upward. An appointment ending
// exactly when the next begins is not concurrent with it.
//
// dayStart anchors StartOffsetMinutes; callers pass midnight of the
// containing day.
func AssignLanes(appointments []models.Appointment, dayStart time.Time) []models.LayoutBlock {
	if len(appointments) == 0 {
		return []models.LayoutBlock{}
	}

	sorted := make([]models.Appointment, len(appointments))
	copy(sorted, appointments)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].Start.Equal(sorted[j].Start) {
			return sorted[i].Start.Before(sorted[j].Start)
		}
		return sorted[i].End.Before(sorted[j].End)
	})

	blocks := make([]models.LayoutBlock, 0, len(sorted))

	type activeBlock struct {
		index int // into blocks
		end   time.Time
		lane  int
	}
	var active []activeBlock

	for _, apt := range sorted {
		// Evict blocks that ended at or before this start.
		kept := active[:0]
		for _, a := range active {
			if a.end.After(apt.Start) {
				kept = append(kept, a)
			}
		}
		active = kept

		// First-fit: smallest lane not held by a still-active block.
		used := make(map[int]bool, len(active))
		for _, a := range active {
			used[a.lane] = true
		}
		lane := 0
		for used[lane] {
			lane++
		}

		height := int(apt.End.Sub(apt.Start).Minutes())
		if height < minBlockHeightMinutes {
			height = minBlockHeightMinutes
		}
		blocks = append(blocks, models.LayoutBlock{
			AppointmentID:      apt.ID,
			ProviderID:         apt.ProviderID,
			StartOffsetMinutes: int(apt.Start.Sub(dayStart).Minutes()),
			HeightMinutes:      height,
			LaneIndex:          lane,
			LaneCount:          0,
		})
		active = append(active, activeBlock{index: len(blocks) - 1, end: apt.End, lane: lane})

		// Every block active right now has witnessed this concurrency.
		if n := len(active); n > 0 {
			for _, a := range active {
				if blocks[a.index].LaneCount < n {
					blocks[a.index].LaneCount = n
				}
			}
		}
	}
	return blocks
}
