package entities

// SelectionKind tells single-select answers apart from multi-select ones.
type SelectionKind int

const (
	SelectionSingle SelectionKind = iota + 1
	SelectionMultiple
)

// Selection is the value confirmed by the user for one question: either a
// single option or a set of options. The zero value is an empty selection.
type Selection struct {
	kind   SelectionKind
	values []string
}

// Single builds a single-select selection.
func Single(value string) Selection {
	return Selection{kind: SelectionSingle, values: []string{value}}
}

// Multiple builds a multi-select selection. Duplicate values are collapsed,
// the first occurrence order is kept.
func Multiple(values ...string) Selection {
	seen := make(map[string]struct{}, len(values))
	set := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		set = append(set, v)
	}
	return Selection{kind: SelectionMultiple, values: set}
}

// Kind returns the selection kind, zero for an empty selection.
func (s Selection) Kind() SelectionKind {
	return s.kind
}

// IsMultiple reports whether the selection is a set of options.
func (s Selection) IsMultiple() bool {
	return s.kind == SelectionMultiple
}

// IsZero reports whether nothing was selected.
func (s Selection) IsZero() bool {
	return s.kind == 0
}

// Value returns the chosen option of a single selection.
func (s Selection) Value() string {
	if s.kind != SelectionSingle {
		return ""
	}
	return s.values[0]
}

// Values returns a copy of all chosen options.
func (s Selection) Values() []string {
	out := make([]string, len(s.values))
	copy(out, s.values)
	return out
}

// Len returns the number of chosen options.
func (s Selection) Len() int {
	return len(s.values)
}

// Contains reports whether option is part of the selection.
func (s Selection) Contains(option string) bool {
	for _, v := range s.values {
		if v == option {
			return true
		}
	}
	return false
}

// IsCorrect compares the selection with the set of correct options.
// A set selection must equal the correct set exactly, order and duplicates
// aside. A single selection must be a member of the correct set.
func (s Selection) IsCorrect(correct []string) bool {
	if s.kind == SelectionMultiple {
		if len(s.values) != len(correct) {
			return false
		}
		for _, v := range s.values {
			if !containsString(correct, v) {
				return false
			}
		}
		for _, c := range correct {
			if !containsString(s.values, c) {
				return false
			}
		}
		return true
	}

	if s.kind == SelectionSingle {
		return containsString(correct, s.values[0])
	}

	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
