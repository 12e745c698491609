package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() map[int64]*ServiceItem {
	return map[int64]*ServiceItem{
		1: {
			ID:              1,
			Kind:            ItemKindMenu,
			Name:            "Cut",
			Categories:      []string{"cut"},
			WorkingMinutes:  40,
			ReservedMinutes: 40,
			Price:           3000,
		},
		2: {
			ID:              2,
			Kind:            ItemKindMenu,
			Name:            "Color",
			Categories:      []string{"color"},
			WorkingMinutes:  30,
			ReservedMinutes: 90, // dye processing wait
			Price:           7000,
		},
		3: {
			ID:              3,
			Kind:            ItemKindMenu,
			Name:            "Cut + Color Set",
			Categories:      []string{"cut", "color"},
			WorkingMinutes:  60,
			ReservedMinutes: 120,
			Price:           9000,
		},
		10: {
			ID:              10,
			Kind:            ItemKindOption,
			Name:            "Head Spa",
			Categories:      []string{"spa"},
			WorkingMinutes:  20,
			ReservedMinutes: 0, // occupies exactly its working time
			Price:           1500,
		},
	}
}

func TestServiceItem_OccupancyMinutes(t *testing.T) {
	catalog := testCatalog()

	// reserved >= working uses reserved
	assert.Equal(t, 90, catalog[2].OccupancyMinutes())
	// zero reserved falls back to working time
	assert.Equal(t, 20, catalog[10].OccupancyMinutes())
}

func TestAggregateDurations(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name  string
		lines []SelectionLine
		want  DurationTotals
	}{
		{
			name:  "empty selection",
			lines: nil,
			want:  DurationTotals{},
		},
		{
			name:  "single menu without wait",
			lines: []SelectionLine{{ItemID: 1, Quantity: 1}},
			want:  DurationTotals{WorkingMinutes: 40, ReservedMinutes: 40, DiffMinutes: 0, TotalPrice: 3000},
		},
		{
			name:  "menu with passive wait",
			lines: []SelectionLine{{ItemID: 2, Quantity: 1}},
			want:  DurationTotals{WorkingMinutes: 30, ReservedMinutes: 90, DiffMinutes: 60, TotalPrice: 7000},
		},
		{
			name:  "quantity multiplies",
			lines: []SelectionLine{{ItemID: 1, Quantity: 2}},
			want:  DurationTotals{WorkingMinutes: 80, ReservedMinutes: 80, DiffMinutes: 0, TotalPrice: 6000},
		},
		{
			name:  "zero quantity counts as one",
			lines: []SelectionLine{{ItemID: 1, Quantity: 0}},
			want:  DurationTotals{WorkingMinutes: 40, ReservedMinutes: 40, DiffMinutes: 0, TotalPrice: 3000},
		},
		{
			name:  "missing item contributes nothing",
			lines: []SelectionLine{{ItemID: 1, Quantity: 1}, {ItemID: 99, Quantity: 3}},
			want:  DurationTotals{WorkingMinutes: 40, ReservedMinutes: 40, DiffMinutes: 0, TotalPrice: 3000},
		},
		{
			name: "mixed menu and option",
			lines: []SelectionLine{
				{ItemID: 2, Quantity: 1},
				{ItemID: 10, Quantity: 1},
			},
			want: DurationTotals{WorkingMinutes: 50, ReservedMinutes: 110, DiffMinutes: 60, TotalPrice: 8500},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AggregateDurations(tt.lines, catalog))
		})
	}
}

func TestFindSelectionConflict(t *testing.T) {
	catalog := testCatalog()

	t.Run("no conflict between different categories", func(t *testing.T) {
		conflict := FindSelectionConflict([]*ServiceItem{catalog[1]}, catalog[2])
		assert.Nil(t, conflict)
	})

	t.Run("same category conflicts", func(t *testing.T) {
		other := &ServiceItem{ID: 5, Categories: []string{"cut"}}
		conflict := FindSelectionConflict([]*ServiceItem{catalog[1]}, other)
		require.NotNil(t, conflict)
		assert.Equal(t, "cut", conflict.Category)
		assert.Equal(t, int64(1), conflict.ExistingItemID)
		assert.Equal(t, int64(5), conflict.CandidateID)
	})

	t.Run("set menu conflicts with any of its categories", func(t *testing.T) {
		conflict := FindSelectionConflict([]*ServiceItem{catalog[2]}, catalog[3])
		require.NotNil(t, conflict)
		assert.Equal(t, "color", conflict.Category)
	})

	t.Run("candidate already selected is skipped", func(t *testing.T) {
		conflict := FindSelectionConflict([]*ServiceItem{catalog[1]}, catalog[1])
		assert.Nil(t, conflict)
	})

	t.Run("nil candidate", func(t *testing.T) {
		assert.Nil(t, FindSelectionConflict([]*ServiceItem{catalog[1]}, nil))
	})
}
