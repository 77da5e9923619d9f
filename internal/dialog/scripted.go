package dialog

import (
	"context"
	"sync"
)

// Shown records one dialog that was displayed.
type Shown struct {
	Title   string
	Message string
}

// Scripted is a Prompter that replays queued answers and records what was shown.
// It is safe for concurrent use.
type Scripted struct {
	mu       sync.Mutex
	confirms []bool
	answers  []string
	alerts   []Shown
	asked    []Shown
}

// NewScripted returns a Scripted prompter with the given Ask answers queued.
func NewScripted(answers ...string) *Scripted {
	return &Scripted{answers: answers}
}

// QueueConfirm appends answers for upcoming Confirm calls.
func (s *Scripted) QueueConfirm(answers ...bool) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirms = append(s.confirms, answers...)
	return s
}

// QueueAnswers appends answers for upcoming Ask calls.
func (s *Scripted) QueueAnswers(answers ...string) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers = append(s.answers, answers...)
	return s
}

// Confirm pops the next queued confirmation, or returns ErrNoInput.
func (s *Scripted) Confirm(ctx context.Context, title, message string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.asked = append(s.asked, Shown{Title: title, Message: message})
	if len(s.confirms) == 0 {
		return false, ErrNoInput
	}
	answer := s.confirms[0]
	s.confirms = s.confirms[1:]
	return answer, nil
}

// Alert records the alert.
func (s *Scripted) Alert(ctx context.Context, title, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = append(s.alerts, Shown{Title: title, Message: message})
	return nil
}

// Ask pops the next queued answer, or returns ErrNoInput.
func (s *Scripted) Ask(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.answers) == 0 {
		return "", ErrNoInput
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

// Alerts returns the alerts shown so far.
func (s *Scripted) Alerts() []Shown {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Shown(nil), s.alerts...)
}

// Confirmations returns the confirmation questions asked so far.
func (s *Scripted) Confirmations() []Shown {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Shown(nil), s.asked...)
}

// LastAlert returns the most recent alert, or the zero value when none was shown.
func (s *Scripted) LastAlert() Shown {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.alerts) == 0 {
		return Shown{}
	}
	return s.alerts[len(s.alerts)-1]
}
