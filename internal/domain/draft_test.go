package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingDraft_AddMenu(t *testing.T) {
	draft := NewBookingDraft(1)

	draft, err := draft.AddMenu(10)
	require.NoError(t, err)
	require.Len(t, draft.Menus, 1)
	assert.Equal(t, SelectionLine{ItemID: 10, Quantity: 1}, draft.Menus[0])

	// repeated selection increments quantity instead of adding a line
	draft, err = draft.AddMenu(10)
	require.NoError(t, err)
	require.Len(t, draft.Menus, 1)
	assert.Equal(t, 2, draft.Menus[0].Quantity)
}

func TestBookingDraft_AddMenu_LineLimit(t *testing.T) {
	draft := NewBookingDraft(1)

	var err error
	for i := 0; i < MaxMenuLines; i++ {
		draft, err = draft.AddMenu(int64(i + 1))
		require.NoError(t, err)
	}

	_, err = draft.AddMenu(int64(MaxMenuLines + 1))
	assert.ErrorIs(t, err, ErrTooManyMenuLines)
}

func TestBookingDraft_AddMenu_QuantityLimit(t *testing.T) {
	draft := NewBookingDraft(1)

	var err error
	for i := 0; i < MaxLineQuantity; i++ {
		draft, err = draft.AddMenu(10)
		require.NoError(t, err)
	}

	_, err = draft.AddMenu(10)
	assert.ErrorIs(t, err, ErrTooManyMenuLines)
}

func TestBookingDraft_RemoveMenu(t *testing.T) {
	draft := NewBookingDraft(1)

	draft, err := draft.AddMenu(10)
	require.NoError(t, err)
	draft, err = draft.AddMenu(10)
	require.NoError(t, err)

	// quantity decrements first
	draft, err = draft.RemoveMenu(10)
	require.NoError(t, err)
	require.Len(t, draft.Menus, 1)
	assert.Equal(t, 1, draft.Menus[0].Quantity)

	// line disappears at zero
	draft, err = draft.RemoveMenu(10)
	require.NoError(t, err)
	assert.Empty(t, draft.Menus)

	// removing an unselected item fails
	_, err = draft.RemoveMenu(10)
	assert.ErrorIs(t, err, ErrLineNotSelected)
}

func TestBookingDraft_AddOption_LineLimit(t *testing.T) {
	draft := NewBookingDraft(1)

	var err error
	for i := 0; i < MaxOptionLines; i++ {
		draft, err = draft.AddOption(int64(100 + i))
		require.NoError(t, err)
	}

	_, err = draft.AddOption(999)
	assert.ErrorIs(t, err, ErrTooManyOptionLines)
}

func TestBookingDraft_WindowResets(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	window, err := NewTimeWindow(date, Interval{Start: 600, End: 660})
	require.NoError(t, err)

	base := NewBookingDraft(1).SetStaff(7).SetDate(date)
	base, addErr := base.AddMenu(10)
	require.NoError(t, addErr)
	base = base.SelectWindow(window)
	require.NotNil(t, base.Window)

	t.Run("changing staff resets window", func(t *testing.T) {
		next := base.SetStaff(8)
		assert.Nil(t, next.Window)
	})

	t.Run("changing date resets window", func(t *testing.T) {
		next := base.SetDate(date.AddDate(0, 0, 1))
		assert.Nil(t, next.Window)
	})

	t.Run("changing selection resets window", func(t *testing.T) {
		next, err := base.AddMenu(11)
		require.NoError(t, err)
		assert.Nil(t, next.Window)

		next, err = base.RemoveMenu(10)
		require.NoError(t, err)
		assert.Nil(t, next.Window)

		next, err = base.AddOption(100)
		require.NoError(t, err)
		assert.Nil(t, next.Window)
	})

	t.Run("original draft is not mutated", func(t *testing.T) {
		_ = base.SetStaff(8)
		require.NotNil(t, base.Window)
		assert.Equal(t, int64(7), *base.StaffID)
	})
}

func TestBookingDraft_IsReadyForSlots(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	draft := NewBookingDraft(1)
	assert.False(t, draft.IsReadyForSlots())

	draft = draft.SetStaff(7)
	assert.False(t, draft.IsReadyForSlots())

	draft = draft.SetDate(date)
	assert.False(t, draft.IsReadyForSlots())

	draft, err := draft.AddMenu(10)
	require.NoError(t, err)
	assert.True(t, draft.IsReadyForSlots())
}

func TestBookingDraft_Totals(t *testing.T) {
	catalog := testCatalog()

	draft := NewBookingDraft(1)
	draft, err := draft.AddMenu(2)
	require.NoError(t, err)
	draft, err = draft.AddOption(10)
	require.NoError(t, err)

	totals := draft.Totals(catalog)
	assert.Equal(t, 50, totals.WorkingMinutes)
	assert.Equal(t, 110, totals.ReservedMinutes)
	assert.Equal(t, 60, totals.DiffMinutes)
	assert.Equal(t, 8500.0, totals.TotalPrice)
}
