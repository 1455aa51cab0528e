package domain

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Step is a page of the wizard.
type Step int

const (
	StepEntry Step = iota
	StepForm
	StepSelection
	StepKit
)

// TotalSteps is the denominator of the progress indicator.
const TotalSteps = 4

func (s Step) String() string {
	switch s {
	case StepEntry:
		return "entry"
	case StepForm:
		return "form"
	case StepSelection:
		return "selection"
	case StepKit:
		return "kit"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

func (s Step) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Step) UnmarshalText(b []byte) error {
	v, err := ParseStep(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func ParseStep(s string) (Step, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "entry":
		return StepEntry, nil
	case "form":
		return StepForm, nil
	case "selection":
		return StepSelection, nil
	case "kit":
		return StepKit, nil
	}
	return StepEntry, fmt.Errorf("unknown step %q", s)
}

// ValidStepTransitions lists, for each step, the steps it may move to. Every
// step may return to Entry, which resets the campaign.
var ValidStepTransitions = map[Step][]Step{
	StepEntry:     {StepForm},
	StepForm:      {StepSelection, StepEntry},
	StepSelection: {StepKit, StepForm, StepEntry},
	StepKit:       {StepSelection, StepEntry},
}

func CanTransition(from, to Step) bool {
	allowed, ok := ValidStepTransitions[from]
	if !ok {
		return false
	}
	return slices.Contains(allowed, to)
}

// PreviousStep is the target of backward navigation.
func PreviousStep(s Step) (Step, bool) {
	switch s {
	case StepEntry:
		return StepEntry, false
	case StepForm:
		return StepEntry, true
	case StepSelection:
		return StepForm, true
	case StepKit:
		return StepSelection, true
	}
	return StepEntry, false
}

// Guard is the outcome of entering a step.
type Guard struct {
	// Step is where the user actually lands.
	Step Step
	// Redirected is set when Step differs from the requested one because a
	// prerequisite is missing.
	Redirected bool
	// Pending means the step is shown in its waiting state.
	Pending bool
}

// EntryGuard evaluates the prerequisites of target against the session.
// Selection without options sends the user back to Form unless generation
// is still running. Kit without a full selection falls back to the
// Selection guard; Kit without an audience tip is shown as pending.
func EntryGuard(target Step, s Session) Guard {
	switch target {
	case StepEntry, StepForm:
		return Guard{Step: target}
	case StepSelection:
		if s.Options.Empty() {
			if s.Loading {
				return Guard{Step: StepSelection, Pending: true}
			}
			return Guard{Step: StepForm, Redirected: true}
		}
		return Guard{Step: StepSelection}
	case StepKit:
		if !s.Selected.Complete() {
			g := EntryGuard(StepSelection, s)
			g.Redirected = true
			return g
		}
		if s.AudienceTip == nil {
			return Guard{Step: StepKit, Pending: true}
		}
		return Guard{Step: StepKit}
	}
	return Guard{Step: StepEntry, Redirected: true}
}

// Progress is the "step N of 4" indicator.
type Progress struct {
	Step    int `json:"step"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// ProgressFor maps a step to its indicator. Generation in progress counts as
// the second step.
func ProgressFor(s Step, loading bool) Progress {
	n := 0
	switch s {
	case StepEntry:
		n = 0
	case StepForm:
		n = 1
		if loading {
			n = 2
		}
	case StepSelection:
		n = 3
	case StepKit:
		n = 4
	}
	return Progress{
		Step:    n,
		Total:   TotalSteps,
		Percent: int(math.Round(float64(n) / TotalSteps * 100)),
	}
}
