package availability

import "campusbook/models"

// SlotMinutes is the fixed grid granularity.
const SlotMinutes = 30

// GenerateSlots produces the ordered slot grid covering [dayStart, dayEnd)
// in fixed 30-minute windows. A trailing remainder shorter than one window
// is dropped. dayEnd <= dayStart yields an empty grid, not an error.
// Pure; no side effects.
func GenerateSlots(dayStart, dayEnd int) []models.Slot {
	slots := []models.Slot{}
	for cursor := dayStart; cursor+SlotMinutes <= dayEnd; cursor += SlotMinutes {
		slots = append(slots, models.Slot{
			Start:  cursor,
			End:    cursor + SlotMinutes,
			Label:  models.FormatClock(cursor) + "-" + models.FormatClock(cursor+SlotMinutes),
			Status: models.SlotAvailable,
		})
	}
	return slots
}
