package qualification

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSelectionUnmarshalForms(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantIds []string
	}{
		{"bare option id", `"oily"`, []string{"oily"}},
		{"list of option ids", `["shine","volume"]`, []string{"shine", "volume"}},
		{"stored struct form", `{"single":"oily"}`, []string{"oily"}},
		{"empty list", `[]`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Selection
			if err := json.Unmarshal([]byte(tt.payload), &s); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.payload, err)
			}
			got := s.OptionIds()
			if len(got) != len(tt.wantIds) {
				t.Fatalf("OptionIds() = %v, want %v", got, tt.wantIds)
			}
			for i := range got {
				if got[i] != tt.wantIds[i] {
					t.Errorf("OptionIds() = %v, want %v", got, tt.wantIds)
				}
			}
		})
	}
}

func TestSelectionUnmarshalRejectsGarbage(t *testing.T) {
	var s Selection
	if err := json.Unmarshal([]byte(`42`), &s); err == nil {
		t.Error("expected an error for a numeric selection")
	}
}

func TestSessionClone(t *testing.T) {
	now := time.Now()
	original := NewSession("sess-1", "hair", "en", now)
	original.Answers[1] = Selection{Single: "oily"}
	original.CompletedAt = &now

	clone := original.Clone()
	clone.Answers[2] = Selection{Single: "dryness"}
	*clone.CompletedAt = now.Add(time.Minute)

	if _, ok := original.Answers[2]; ok {
		t.Error("clone shares the Answers map with the original")
	}
	if !original.CompletedAt.Equal(now) {
		t.Error("clone shares CompletedAt with the original")
	}
	if clone.Answers[1].Single != "oily" {
		t.Error("clone lost the original's answers")
	}

	var absent *Session
	if absent.Clone() != nil {
		t.Error("Clone of nil must be nil")
	}
}

func TestSessionLifecycle(t *testing.T) {
	now := time.Now()
	s := NewSession("sess-1", "hair", "en", now)

	if s.CurrentStep != 1 {
		t.Errorf("CurrentStep = %d, want 1", s.CurrentStep)
	}
	if s.Completed() || s.State() != StateInProgress {
		t.Errorf("fresh session state = %s", s.State())
	}

	done := now.Add(time.Minute)
	s.CompletedAt = &done
	if !s.Completed() || s.State() != StateCompleted {
		t.Errorf("completed session state = %s", s.State())
	}
}
