package domain

import "testing"

func TestStateName(t *testing.T) {
	if got := (Task{}).StateName(); got != StateIncomplete {
		t.Errorf("new task state = %q, want %q", got, StateIncomplete)
	}
	if got := (Task{IsComplete: true}).StateName(); got != StateCompleted {
		t.Errorf("completed task state = %q, want %q", got, StateCompleted)
	}
}
