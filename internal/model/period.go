package model

// Period is a generated month or week grid represented uniformly: an anchor
// day, the ordered list of days covered, and the number of leading padding
// entries (always zero for weeks). Periods are created by the grid generator
// and never mutated afterwards.
type Period struct {
	ID             string
	Anchor         IndexKey
	Days           []IndexKey
	LeadingPadding int
}

// First returns the first day of the period, or the zero key when the period
// is empty.
func (p Period) First() IndexKey {
	if len(p.Days) == 0 {
		return IndexKey{}
	}
	return p.Days[0]
}

// Last returns the last day of the period, or the zero key when the period
// is empty.
func (p Period) Last() IndexKey {
	if len(p.Days) == 0 {
		return IndexKey{}
	}
	return p.Days[len(p.Days)-1]
}

// Contains reports whether the given day falls inside the period.
func (p Period) Contains(key IndexKey) bool {
	for _, day := range p.Days {
		if day == key {
			return true
		}
	}
	return false
}
