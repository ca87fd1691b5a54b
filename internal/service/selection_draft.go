package service

import (
	"fmt"
	"slices"

	"github.com/aliskhannn/bilingual-quiz/internal/domain/entities"
)

// SelectionDraft holds the not yet confirmed choice for one question.
// Options are tracked by index so the draft survives a language switch.
type SelectionDraft struct {
	optionCount int
	required    int
	multiple    bool
	chosen      []int // option indices in the order they were picked
}

// NewSelectionDraft creates an empty draft for q.
func NewSelectionDraft(q entities.LocalizedQuestion) *SelectionDraft {
	return &SelectionDraft{
		optionCount: len(q.Options),
		required:    len(q.CorrectAnswers),
		multiple:    q.Multiple,
	}
}

// Choose selects the option at index. Single-select drafts replace the
// previous choice; multi-select drafts toggle the option and ignore picks
// beyond the required count.
func (d *SelectionDraft) Choose(index int) {
	if index < 0 || index >= d.optionCount {
		return
	}

	if !d.multiple {
		d.chosen = []int{index}
		return
	}

	if i := slices.Index(d.chosen, index); i >= 0 {
		d.chosen = slices.Delete(d.chosen, i, i+1)
		return
	}
	if len(d.chosen) >= d.required {
		return
	}
	d.chosen = append(d.chosen, index)
}

// IsChosen reports whether the option at index is part of the draft.
func (d *SelectionDraft) IsChosen(index int) bool {
	return slices.Contains(d.chosen, index)
}

// Chosen returns the picked option indices.
func (d *SelectionDraft) Chosen() []int {
	return slices.Clone(d.chosen)
}

// Required returns how many options a confirmable draft must hold.
func (d *SelectionDraft) Required() int {
	if !d.multiple {
		return 1
	}
	return d.required
}

// CanConfirm reports whether the draft passes the selection-count guard.
func (d *SelectionDraft) CanConfirm() bool {
	if len(d.chosen) == 0 {
		return false
	}
	return !d.multiple || len(d.chosen) == d.required
}

// Selection converts the draft into a selection using the option texts of q.
func (d *SelectionDraft) Selection(q entities.LocalizedQuestion) (entities.Selection, error) {
	if !d.CanConfirm() {
		return entities.Selection{}, fmt.Errorf("%w: chose %d of %d", ErrInvalidSelectionCount, len(d.chosen), d.Required())
	}

	values := make([]string, 0, len(d.chosen))
	for _, i := range d.chosen {
		if i >= len(q.Options) {
			return entities.Selection{}, fmt.Errorf("%w: option %d", ErrQuestionOutOfRange, i)
		}
		values = append(values, q.Options[i])
	}

	if d.multiple {
		return entities.Multiple(values...), nil
	}
	return entities.Single(values[0]), nil
}
