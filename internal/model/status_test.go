package model

import "testing"

func TestJobStatusString(t *testing.T) {
	if JobStatusPending.String() != "Pending" {
		t.Errorf("Expected 'Pending', got %s", JobStatusPending.String())
	}
	if JobStatusConverting.String() != "Converting" {
		t.Errorf("Expected 'Converting', got %s", JobStatusConverting.String())
	}
}

func TestJobStatusIsActive(t *testing.T) {
	tests := []struct {
		status   JobStatus
		expected bool
	}{
		{JobStatusPending, false},
		{JobStatusStarting, true},
		{JobStatusProcessing, true},
		{JobStatusConverting, true},
		{JobStatusCompleted, false},
		{JobStatusPartial, false},
		{JobStatusError, false},
	}

	for _, test := range tests {
		if test.status.IsActive() != test.expected {
			t.Errorf("IsActive(%s) = %v, expected %v", test.status, test.status.IsActive(), test.expected)
		}
	}
}

func TestJobStatusIsFinished(t *testing.T) {
	tests := []struct {
		status   JobStatus
		expected bool
	}{
		{JobStatusPending, false},
		{JobStatusStarting, false},
		{JobStatusProcessing, false},
		{JobStatusConverting, false},
		{JobStatusCompleted, true},
		{JobStatusPartial, true},
		{JobStatusError, true},
	}

	for _, test := range tests {
		if test.status.IsFinished() != test.expected {
			t.Errorf("IsFinished(%s) = %v, expected %v", test.status, test.status.IsFinished(), test.expected)
		}
	}
}
