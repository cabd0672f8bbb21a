package patient

import (
	"sort"
	"strings"
)

// SortKey selects the column a patient listing is ordered by.
type SortKey string

const (
	SortByID     SortKey = "id"
	SortByName   SortKey = "name"
	SortByAge    SortKey = "age"
	SortByStatus SortKey = "status"
)

// ValidSortKey reports whether k names a sortable column.
func ValidSortKey(k SortKey) bool {
	switch k {
	case SortByID, SortByName, SortByAge, SortByStatus:
		return true
	}
	return false
}

type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// Sort orders patients by key without mutating the input. Equal keys keep
// their input order. String columns compare case-insensitively; age compares
// numerically.
func Sort(patients []*Patient, key SortKey, dir Direction) []*Patient {
	out := append([]*Patient(nil), patients...)

	less := func(a, b *Patient) bool {
		switch key {
		case SortByName:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		case SortByAge:
			return a.Demographics.Age < b.Demographics.Age
		case SortByStatus:
			return strings.ToLower(string(a.Status)) < strings.ToLower(string(b.Status))
		default:
			return strings.ToLower(a.ID) < strings.ToLower(b.ID)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if dir == Descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// SortState tracks the listing's current column and direction across clicks.
type SortState struct {
	Key       SortKey   `json:"key"`
	Direction Direction `json:"direction"`
}

// Click applies a column-header click: repeating the active key flips the
// direction, a new key starts ascending.
func (s SortState) Click(key SortKey) SortState {
	if s.Key == key {
		if s.Direction == Ascending {
			s.Direction = Descending
		} else {
			s.Direction = Ascending
		}
		return s
	}
	return SortState{Key: key, Direction: Ascending}
}

// Apply sorts patients by the state's column and direction.
func (s SortState) Apply(patients []*Patient) []*Patient {
	return Sort(patients, s.Key, s.Direction)
}
