package models

import "fmt"

// SplitMode selects how a quick split assigns cost to each person.
type SplitMode string

const (
	// ModeSimple divides the total evenly among everyone.
	ModeSimple SplitMode = "simple"
	// ModeAdvanced uses the Cost recorded on each entry.
	ModeAdvanced SplitMode = "advanced"
)

// Valid reports whether m is a known mode.
func (m SplitMode) Valid() bool {
	return m == ModeSimple || m == ModeAdvanced
}

// SplitEntry is one row of the quick split form.
type SplitEntry struct {
	ID   int
	Name string

	// Paid is what this person already put in.
	Paid float64

	// Cost is this person's share of the total. Only used in advanced mode.
	Cost float64

	// Locked marks a row the user does not want to edit.
	Locked bool
}

// QuickSplit is a single shared total with the people splitting it.
type QuickSplit struct {
	// ID identifies a saved split. Empty for one-off calculations.
	ID string

	TotalAmount     float64
	TotalNoOfPeople int
	Mode            SplitMode
	People          []SplitEntry

	// UpdatedAt is the Unix timestamp of the last save.
	UpdatedAt int64
}

// ResizePeople returns a people list with exactly max(1, n) entries.
//
// When the length already matches, a copy of people is returned unchanged.
// Otherwise every entry is reset to a blank "person-N" row, unless keep is
// set, in which case existing rows are preserved up to the new length.
// IDs are renumbered from 1 either way.
func ResizePeople(people []SplitEntry, n int, keep bool) []SplitEntry {
	target := max(1, n)
	if len(people) == target {
		out := make([]SplitEntry, len(people))
		copy(out, people)
		return out
	}

	out := make([]SplitEntry, target)
	for i := range out {
		if keep && i < len(people) {
			out[i] = people[i]
		} else {
			out[i] = SplitEntry{Name: fmt.Sprintf("person-%d", i+1)}
		}
		out[i].ID = i + 1
	}
	return out
}
