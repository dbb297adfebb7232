package model

// Selection tracks the blocks currently chosen by the player.
// It holds identities only; the grid owns the blocks themselves.
type Selection struct {
	ids []BlockID
}

// NewSelection creates an empty selection
func NewSelection() *Selection {
	return &Selection{}
}

// Toggle adds the identity if absent, or removes it if present.
// Returns true if the identity is selected after the call.
func (s *Selection) Toggle(id BlockID) bool {
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return false
		}
	}
	s.ids = append(s.ids, id)
	return true
}

// Contains returns true if the identity is currently selected
func (s *Selection) Contains(id BlockID) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Len returns the number of selected identities
func (s *Selection) Len() int {
	return len(s.ids)
}

// IDs returns a copy of the selected identities in insertion order
func (s *Selection) IDs() []BlockID {
	out := make([]BlockID, len(s.ids))
	copy(out, s.ids)
	return out
}

// Clear empties the selection
func (s *Selection) Clear() {
	s.ids = s.ids[:0]
}

// Sum returns the arithmetic sum of the selected blocks' values.
// Identities not present in the grid contribute nothing.
func (s *Selection) Sum(grid *Grid) int {
	sum := 0
	for _, id := range s.ids {
		if b := grid.BlockByID(id); b != nil {
			sum += b.Value
		}
	}
	return sum
}
