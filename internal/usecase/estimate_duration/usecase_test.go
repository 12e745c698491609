package estimate_duration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	directory "github.com/m04kA/SMC-SalonService/internal/integrations/salondirectory"
)

type stubDirectoryClient struct {
	items []*directory.MenuItem
	err   error
}

func (s *stubDirectoryClient) GetMenuItems(_ context.Context, _ int64) ([]*directory.MenuItem, error) {
	return s.items, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testItems() []*directory.MenuItem {
	return []*directory.MenuItem{
		{ID: 1, SalonID: 1, Kind: "menu", Name: "Cut", Categories: []string{"cut"}, WorkingMinutes: 40, ReservedMinutes: 40, Price: 3000},
		{ID: 2, SalonID: 1, Kind: "menu", Name: "Color", Categories: []string{"color"}, WorkingMinutes: 30, ReservedMinutes: 90, Price: 7000},
		{ID: 10, SalonID: 1, Kind: "option", Name: "Head Spa", Categories: []string{"spa"}, WorkingMinutes: 20, Price: 1500},
	}
}

func TestExecute_Aggregation(t *testing.T) {
	uc := NewUseCase(&stubDirectoryClient{items: testItems()}, nopLogger{})

	tests := []struct {
		name string
		req  *Request
		want *Response
	}{
		{
			name: "empty selection yields zero totals",
			req:  &Request{SalonID: 1},
			want: &Response{SalonID: 1},
		},
		{
			name: "single menu",
			req:  &Request{SalonID: 1, Menus: []Line{{ItemID: 1, Quantity: 1}}},
			want: &Response{SalonID: 1, WorkingMinutes: 40, ReservedMinutes: 40, TotalPrice: 3000},
		},
		{
			name: "menu with passive wait exposes diff",
			req:  &Request{SalonID: 1, Menus: []Line{{ItemID: 2, Quantity: 1}}},
			want: &Response{SalonID: 1, WorkingMinutes: 30, ReservedMinutes: 90, DiffMinutes: 60, TotalPrice: 7000},
		},
		{
			name: "menus and options combined",
			req: &Request{
				SalonID: 1,
				Menus:   []Line{{ItemID: 2, Quantity: 1}},
				Options: []Line{{ItemID: 10, Quantity: 2}},
			},
			want: &Response{SalonID: 1, WorkingMinutes: 70, ReservedMinutes: 130, DiffMinutes: 60, TotalPrice: 10000},
		},
		{
			name: "unknown item contributes nothing",
			req:  &Request{SalonID: 1, Menus: []Line{{ItemID: 1, Quantity: 1}, {ItemID: 99, Quantity: 1}}},
			want: &Response{SalonID: 1, WorkingMinutes: 40, ReservedMinutes: 40, TotalPrice: 3000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp)
		})
	}
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&stubDirectoryClient{items: testItems()}, nopLogger{})

	tooMany := make([]Line, domain.MaxMenuLines+1)
	for i := range tooMany {
		tooMany[i] = Line{ItemID: int64(i + 1), Quantity: 1}
	}

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "zero salon ID", req: &Request{SalonID: 0}},
		{name: "too many menu lines", req: &Request{SalonID: 1, Menus: tooMany}},
		{name: "zero quantity", req: &Request{SalonID: 1, Menus: []Line{{ItemID: 1, Quantity: 0}}}},
		{name: "quantity above limit", req: &Request{SalonID: 1, Menus: []Line{{ItemID: 1, Quantity: domain.MaxLineQuantity + 1}}}},
		{name: "duplicate line", req: &Request{SalonID: 1, Menus: []Line{{ItemID: 1, Quantity: 1}, {ItemID: 1, Quantity: 2}}}},
		{name: "negative item ID", req: &Request{SalonID: 1, Options: []Line{{ItemID: -1, Quantity: 1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_SalonNotFound(t *testing.T) {
	uc := NewUseCase(&stubDirectoryClient{err: directory.ErrSalonNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SalonID: 1, Menus: []Line{{ItemID: 1, Quantity: 1}}})
	assert.ErrorIs(t, err, ErrSalonNotFound)
}
