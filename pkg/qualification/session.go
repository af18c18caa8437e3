package qualification

import (
	"encoding/json"
	"fmt"
	"time"
)

// Qualification states.
const (
	StateInProgress = "IN_PROGRESS"
	StateCompleted  = "COMPLETED"
)

// Selection is the answer to one step: a single option id for single-select
// steps, a set of option ids for multi-select steps.
type Selection struct {
	Single   string   `json:"single,omitempty"`
	Multiple []string `json:"multiple,omitempty"`
}

// OptionIds flattens the selection into the list of chosen option ids.
func (s Selection) OptionIds() []string {
	if len(s.Multiple) > 0 {
		return s.Multiple
	}
	if s.Single != "" {
		return []string{s.Single}
	}
	return nil
}

// UnmarshalJSON accepts both the wire forms the flow layer sends:
// "opt-id" and ["opt-a", "opt-b"].
func (s *Selection) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		s.Single = single
		s.Multiple = nil
		return nil
	}
	var multiple []string
	if err := json.Unmarshal(data, &multiple); err == nil {
		s.Single = ""
		s.Multiple = multiple
		return nil
	}
	// Stored form: the struct itself.
	type raw Selection
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("selection must be an option id or a list of option ids")
	}
	*s = Selection(r)
	return nil
}

// MarshalJSON keeps the stored struct form so Redis round-trips are lossless.
func (s Selection) MarshalJSON() ([]byte, error) {
	type raw Selection
	return json.Marshal(raw(s))
}

// Answers maps step id to the selection recorded for that step.
type Answers map[int]Selection

// Session is the per-conversation qualification state. The category is fixed
// once qualification starts; answers accumulate one step at a time.
type Session struct {
	SessionId   string     `json:"session_id"`
	Category    string     `json:"category"`
	Language    string     `json:"language"`
	Answers     Answers    `json:"answers"`
	CurrentStep int        `json:"current_step"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// NewSession starts a fresh session at step 1, replacing any prior state
// for the same id.
func NewSession(sessionId, category, language string, now time.Time) *Session {
	return &Session{
		SessionId:   sessionId,
		Category:    category,
		Language:    language,
		Answers:     make(Answers),
		CurrentStep: 1,
		StartedAt:   now,
	}
}

// Clone returns a deep copy. Stores that keep sessions in process memory
// hand out clones so readers never share the Answers map with a writer.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	clone := *s
	clone.Answers = make(Answers, len(s.Answers))
	for step, selection := range s.Answers {
		clone.Answers[step] = selection
	}
	if s.CompletedAt != nil {
		completedAt := *s.CompletedAt
		clone.CompletedAt = &completedAt
	}
	return &clone
}

// Completed reports whether the qualification finished all steps.
func (s *Session) Completed() bool {
	return s.CompletedAt != nil
}

// State returns the lifecycle state label for logging and the admin API.
func (s *Session) State() string {
	if s.Completed() {
		return StateCompleted
	}
	return StateInProgress
}
