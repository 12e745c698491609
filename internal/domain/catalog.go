package domain

// ItemKind distinguishes menus from add-on options
type ItemKind string

const (
	ItemKindMenu   ItemKind = "menu"
	ItemKindOption ItemKind = "option"
)

// ServiceItem represents a bookable menu or option from the salon catalog.
// WorkingMinutes is the staff's hands-on time; ReservedMinutes is the full
// seat occupancy including passive wait (dye processing, drying). A zero
// ReservedMinutes means the item occupies exactly its working time.
type ServiceItem struct {
	ID              int64
	SalonID         int64
	Kind            ItemKind
	Name            string
	Categories      []string // one for regular items, several for set menus
	WorkingMinutes  int
	ReservedMinutes int
	Price           float64
}

// OccupancyMinutes returns the effective seat occupancy of one unit.
// Never less than WorkingMinutes.
func (s *ServiceItem) OccupancyMinutes() int {
	if s.ReservedMinutes < s.WorkingMinutes {
		return s.WorkingMinutes
	}
	return s.ReservedMinutes
}

// IsSet returns true if the item spans several menu categories
func (s *ServiceItem) IsSet() bool {
	return len(s.Categories) > 1
}

// SelectionLine is one selected catalog item with its quantity.
// A reservation draft holds at most one line per item; repeated selection
// increments the quantity instead of adding a line.
type SelectionLine struct {
	ItemID   int64
	Quantity int
}

// DurationTotals is the aggregated duration and price of a selection
type DurationTotals struct {
	WorkingMinutes  int
	ReservedMinutes int
	DiffMinutes     int // passive wait share, always >= 0
	TotalPrice      float64
}

// AggregateDurations sums working and occupancy minutes over the selection.
// Lines whose item is missing from the catalog contribute nothing: a
// partially loaded catalog must degrade the estimate, not fail it.
func AggregateDurations(lines []SelectionLine, catalog map[int64]*ServiceItem) DurationTotals {
	var totals DurationTotals

	for _, line := range lines {
		item, ok := catalog[line.ItemID]
		if !ok || item == nil {
			continue
		}

		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}

		totals.WorkingMinutes += item.WorkingMinutes * qty
		totals.ReservedMinutes += item.OccupancyMinutes() * qty
		totals.TotalPrice += item.Price * float64(qty)
	}

	totals.DiffMinutes = totals.ReservedMinutes - totals.WorkingMinutes
	if totals.DiffMinutes < 0 {
		totals.DiffMinutes = 0
	}

	return totals
}

// SelectionConflict describes a category collision between selected items
type SelectionConflict struct {
	Category       string
	ExistingItemID int64
	CandidateID    int64
}

// FindSelectionConflict returns the first category collision the candidate
// would introduce, or nil if it combines with the current selection.
// A regular item occupies its single category; a set item occupies every
// category it spans.
func FindSelectionConflict(selected []*ServiceItem, candidate *ServiceItem) *SelectionConflict {
	if candidate == nil {
		return nil
	}

	occupied := make(map[string]int64, len(selected))
	for _, item := range selected {
		if item == nil || item.ID == candidate.ID {
			continue
		}
		for _, category := range item.Categories {
			occupied[category] = item.ID
		}
	}

	for _, category := range candidate.Categories {
		if existingID, ok := occupied[category]; ok {
			return &SelectionConflict{
				Category:       category,
				ExistingItemID: existingID,
				CandidateID:    candidate.ID,
			}
		}
	}

	return nil
}
