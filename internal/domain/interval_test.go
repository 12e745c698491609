package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			name: "disjoint intervals",
			a:    Interval{Start: 600, End: 660},
			b:    Interval{Start: 720, End: 780},
			want: false,
		},
		{
			name: "partial overlap",
			a:    Interval{Start: 600, End: 690},
			b:    Interval{Start: 660, End: 720},
			want: true,
		},
		{
			name: "touching boundaries do not overlap",
			a:    Interval{Start: 600, End: 660},
			b:    Interval{Start: 660, End: 720},
			want: false,
		},
		{
			name: "contained interval",
			a:    Interval{Start: 600, End: 720},
			b:    Interval{Start: 630, End: 660},
			want: true,
		},
		{
			name: "identical intervals",
			a:    Interval{Start: 600, End: 660},
			b:    Interval{Start: 600, End: 660},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// overlap is symmetric
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestInterval_Length(t *testing.T) {
	assert.Equal(t, 60, Interval{Start: 600, End: 660}.Length())
	assert.Equal(t, 0, Interval{Start: 660, End: 660}.Length())
	assert.Equal(t, 0, Interval{Start: 660, End: 600}.Length())
}

func TestInterval_Clip(t *testing.T) {
	bounds := Interval{Start: 540, End: 1080}

	assert.Equal(t, Interval{Start: 540, End: 660}, Interval{Start: 480, End: 660}.Clip(bounds))
	assert.Equal(t, Interval{Start: 1020, End: 1080}, Interval{Start: 1020, End: 1140}.Clip(bounds))
	assert.Equal(t, Interval{Start: 600, End: 660}, Interval{Start: 600, End: 660}.Clip(bounds))
}

func TestMergeIntervals(t *testing.T) {
	tests := []struct {
		name      string
		intervals []Interval
		want      []Interval
	}{
		{
			name:      "empty input",
			intervals: nil,
			want:      nil,
		},
		{
			name:      "drops empty intervals",
			intervals: []Interval{{Start: 600, End: 600}, {Start: 700, End: 650}},
			want:      nil,
		},
		{
			name:      "unsorted disjoint intervals are sorted",
			intervals: []Interval{{Start: 720, End: 780}, {Start: 600, End: 660}},
			want:      []Interval{{Start: 600, End: 660}, {Start: 720, End: 780}},
		},
		{
			name:      "overlapping intervals merge",
			intervals: []Interval{{Start: 600, End: 690}, {Start: 660, End: 720}},
			want:      []Interval{{Start: 600, End: 720}},
		},
		{
			name:      "touching intervals merge",
			intervals: []Interval{{Start: 600, End: 660}, {Start: 660, End: 720}},
			want:      []Interval{{Start: 600, End: 720}},
		},
		{
			name:      "contained interval is absorbed",
			intervals: []Interval{{Start: 600, End: 720}, {Start: 630, End: 660}},
			want:      []Interval{{Start: 600, End: 720}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergeIntervals(tt.intervals))
		})
	}
}

func TestSubtractIntervals(t *testing.T) {
	tests := []struct {
		name string
		base []Interval
		cuts []Interval
		want []Interval
	}{
		{
			name: "no cuts keeps base",
			base: []Interval{{Start: 600, End: 1080}},
			cuts: nil,
			want: []Interval{{Start: 600, End: 1080}},
		},
		{
			name: "cut inside splits base in two",
			base: []Interval{{Start: 600, End: 1080}},
			cuts: []Interval{{Start: 780, End: 840}},
			want: []Interval{{Start: 600, End: 780}, {Start: 840, End: 1080}},
		},
		{
			name: "cut at the start trims",
			base: []Interval{{Start: 600, End: 1080}},
			cuts: []Interval{{Start: 540, End: 660}},
			want: []Interval{{Start: 660, End: 1080}},
		},
		{
			name: "cut covering base removes it",
			base: []Interval{{Start: 600, End: 1080}},
			cuts: []Interval{{Start: 540, End: 1140}},
			want: []Interval{},
		},
		{
			name: "touching cut does not trim",
			base: []Interval{{Start: 600, End: 1080}},
			cuts: []Interval{{Start: 540, End: 600}, {Start: 1080, End: 1140}},
			want: []Interval{{Start: 600, End: 1080}},
		},
		{
			name: "overlapping cuts are merged before subtraction",
			base: []Interval{{Start: 600, End: 1080}},
			cuts: []Interval{{Start: 700, End: 780}, {Start: 760, End: 840}},
			want: []Interval{{Start: 600, End: 700}, {Start: 840, End: 1080}},
		},
		{
			name: "multiple cuts carve several holes",
			base: []Interval{{Start: 540, End: 1200}},
			cuts: []Interval{{Start: 600, End: 660}, {Start: 780, End: 840}, {Start: 1080, End: 1140}},
			want: []Interval{
				{Start: 540, End: 600},
				{Start: 660, End: 780},
				{Start: 840, End: 1080},
				{Start: 1140, End: 1200},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SubtractIntervals(tt.base, tt.cuts))
		})
	}
}

// Subtracting the same cuts twice must not change the result further.
func TestSubtractIntervals_Idempotent(t *testing.T) {
	base := []Interval{{Start: 540, End: 1200}}
	cuts := []Interval{{Start: 600, End: 660}, {Start: 780, End: 840}}

	once := SubtractIntervals(base, cuts)
	twice := SubtractIntervals(once, cuts)

	assert.Equal(t, once, twice)
}
