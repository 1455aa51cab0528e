// Package session holds the state of one wizard run.
package session

import (
	"sync"

	"adkit/internal/core/domain"
)

// Store owns a domain.Session and applies every mutation under a lock, so a
// reader never sees a half-applied update. Snapshot returns deep copies;
// callers may keep them without further locking.
type Store struct {
	mu sync.Mutex
	s  domain.Session

	// epoch changes on every Reset so a generation started before a reset
	// cannot write into the new campaign.
	epoch uint64
}

// NewStore returns a store holding a fresh session.
func NewStore() *Store {
	return &Store{s: domain.NewSession()}
}

func (st *Store) Snapshot() domain.Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.s.Clone()
}

// SetFormInput replaces the form input with edit applied to the current one
// and returns the resulting session. When edit fails the form is left as it
// was.
func (st *Store) SetFormInput(edit func(in domain.FormInput) (domain.FormInput, error)) (domain.Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	next, err := edit(st.s.Form.Clone())
	if err != nil {
		return domain.Session{}, err
	}
	st.s.Form = next.Clone()
	return st.s.Clone(), nil
}

// SelectCopy picks the copy with the given id. Unknown ids leave the
// selection untouched; the result reports whether a copy was found.
func (st *Store) SelectCopy(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	for _, c := range st.s.Options.Copies {
		if c.ID == id {
			st.s.Selected.Copy = &domain.SelectedCopy{Title: c.Title, Description: c.Description}
			return true
		}
	}
	return false
}

// SelectImage picks the image with the given id, same policy as SelectCopy.
func (st *Store) SelectImage(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	for _, img := range st.s.Options.Images {
		if img.ID == id {
			st.s.Selected.ImageURL = img.URL
			return true
		}
	}
	return false
}

// BeginLoading sets the loading flag unless it is already set. The token
// identifies this generation for ApplyGeneration and EndLoading; ok is false
// when another generation holds the flag.
func (st *Store) BeginLoading() (token uint64, ok bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.s.Loading {
		return 0, false
	}
	st.s.Loading = true
	return st.epoch, true
}

// ApplyGeneration stores a generation result, clears the loading flag and
// moves to the selection step in one update. It does nothing when the
// session was reset after the generation began.
func (st *Store) ApplyGeneration(token uint64, opts domain.AdOptionSet, tip domain.AudienceTip) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if token != st.epoch {
		return false
	}
	st.s.Options = opts.Clone()
	t := tip.Clone()
	st.s.AudienceTip = &t
	st.s.Loading = false
	st.s.Step = domain.StepSelection
	return true
}

// EndLoading clears the flag taken by BeginLoading, unless a reset already
// did. A session moved to the selection step while waiting on a generation
// that produced nothing goes back to the form.
func (st *Store) EndLoading(token uint64) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if token != st.epoch {
		return
	}
	st.s.Loading = false
	if st.s.Step == domain.StepSelection && st.s.Options.Empty() {
		st.s.Step = domain.StepForm
	}
}

func (st *Store) Step() domain.Step {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.s.Step
}

// SetStep moves the session to the step chosen by next from the current
// state and returns the resulting session. On error the step is unchanged.
func (st *Store) SetStep(next func(s domain.Session) (domain.Step, error)) (domain.Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	step, err := next(st.s)
	if err != nil {
		return domain.Session{}, err
	}
	st.s.Step = step
	return st.s.Clone(), nil
}

// Reset puts every field back to its initial value and the user back on
// the entry step.
func (st *Store) Reset() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s = domain.NewSession()
	st.epoch++
}
