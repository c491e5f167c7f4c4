package matchmaker

// Tag identifies a single quiz option. Rules match on tags, never on option text.
type Tag string

const (
	TagA Tag = "A" // high salary, global career
	TagB Tag = "B" // big apartment, cheap street food
	TagC Tag = "C" // English-speaking friends
	TagD Tag = "D" // learn Mandarin by force
	TagE Tag = "E" // futuristic megacity
	TagF Tag = "F" // mountains, lakes, slower pace
)

// AllTags returns every tag in question order.
func AllTags() []Tag {
	return []Tag{TagA, TagB, TagC, TagD, TagE, TagF}
}

// Valid reports whether t belongs to the closed tag set.
func (t Tag) Valid() bool {
	switch t {
	case TagA, TagB, TagC, TagD, TagE, TagF:
		return true
	}
	return false
}

// ParseTag converts a single letter (case-insensitive) to a Tag.
func ParseTag(s string) (Tag, bool) {
	if len(s) != 1 {
		return "", false
	}
	c := s[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	t := Tag(string(c))
	if !t.Valid() {
		return "", false
	}
	return t, true
}

// tagSet is the set of tags collected in an AnswerSet.
type tagSet map[Tag]bool

// containsAll reports whether every tag in want is present.
func (s tagSet) containsAll(want []Tag) bool {
	for _, t := range want {
		if !s[t] {
			return false
		}
	}
	return true
}
