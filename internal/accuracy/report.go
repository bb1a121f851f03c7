package accuracy

import (
	"sort"
	"strconv"
)

// GroupKey identifies the overall group or one (dimension, value) pair.
type GroupKey struct {
	Dimension Dimension
	Value     string
}

// OverallKey is the key of the group containing every item.
var OverallKey = GroupKey{}

// IsOverall reports whether the key is the overall group.
func (k GroupKey) IsOverall() bool {
	return k.Dimension == ""
}

// Group is one entry of a report view.
type Group struct {
	Key   GroupKey
	Tally Tally
}

// Accuracy returns the group's accuracy.
func (g Group) Accuracy() Accuracy {
	return g.Tally.Accuracy()
}

// Report maps group keys to tallies. The zero value is an empty report.
type Report struct {
	dims    []Dimension
	tallies map[GroupKey]Tally
}

func newReport(dims []Dimension) Report {
	return Report{
		dims:    append([]Dimension(nil), dims...),
		tallies: map[GroupKey]Tally{OverallKey: {}},
	}
}

// Dimensions returns the dimensions the report groups on, in report order.
func (r Report) Dimensions() []Dimension {
	return append([]Dimension(nil), r.dims...)
}

// Overall returns the tally across all items.
func (r Report) Overall() Tally {
	return r.tallies[OverallKey]
}

// Tally returns the tally of one group.
func (r Report) Tally(key GroupKey) (Tally, bool) {
	tally, ok := r.tallies[key]
	return tally, ok
}

// Groups returns the groups of one dimension ordered by value.
func (r Report) Groups(dim Dimension) []Group {
	groups := make([]Group, 0)
	for key, tally := range r.tallies {
		if key.Dimension == dim && !key.IsOverall() {
			groups = append(groups, Group{Key: key, Tally: tally})
		}
	}
	sort.Slice(groups, func(i, j int) bool {
		return lessValue(dim, groups[i].Key.Value, groups[j].Key.Value)
	})
	return groups
}

// Len returns the number of groups including overall.
func (r Report) Len() int {
	if r.tallies == nil {
		return 1
	}
	return len(r.tallies)
}

// Merge returns a report whose tallies are the pairwise sums of r and other.
func (r Report) Merge(other Report) Report {
	merged := newReport(unionDims(r.dims, other.dims))
	for key, tally := range r.tallies {
		merged.tallies[key] = merged.tallies[key].Merge(tally)
	}
	for key, tally := range other.tallies {
		merged.tallies[key] = merged.tallies[key].Merge(tally)
	}
	return merged
}

// Equal reports whether both reports hold the same tallies.
func (r Report) Equal(other Report) bool {
	if r.Overall() != other.Overall() {
		return false
	}
	if r.Len() != other.Len() {
		return false
	}
	for key, tally := range r.tallies {
		if got, ok := other.tallies[key]; !ok || got != tally {
			return false
		}
	}
	return true
}

func (r *Report) add(key GroupKey, correct bool) {
	r.tallies[key] = r.tallies[key].Add(correct)
}

func lessValue(dim Dimension, a, b string) bool {
	if dim == DimFrameCount {
		left, errLeft := strconv.Atoi(a)
		right, errRight := strconv.Atoi(b)
		if errLeft == nil && errRight == nil {
			return left < right
		}
	}
	return a < b
}

func unionDims(a, b []Dimension) []Dimension {
	out := make([]Dimension, 0, len(Dimensions))
	for _, dim := range Dimensions {
		if containsDim(a, dim) || containsDim(b, dim) {
			out = append(out, dim)
		}
	}
	return out
}
