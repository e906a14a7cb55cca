package service

import (
	"context"
	"errors"
	"testing"
)

func TestRenameRejectsWhitespaceWithoutWriting(t *testing.T) {
	// no repository wired: if the whitespace check ever reached the store,
	// this would panic instead of returning ErrEmptyName
	s := NewProfileService(nil, nil)

	for _, name := range []string{"", "   ", "\t\n "} {
		_, err := s.Rename(context.Background(), 1, name)
		if !errors.Is(err, ErrEmptyName) {
			t.Errorf("Rename(%q) error = %v, want ErrEmptyName", name, err)
		}
	}
}

func TestRecordDonationRejectsNonPositiveAmount(t *testing.T) {
	s := NewProfileService(nil, nil)

	for _, amount := range []float64{0, -5} {
		_, err := s.RecordDonation(context.Background(), "ABC123", amount)
		if !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("RecordDonation(amount=%v) error = %v, want ErrInvalidAmount", amount, err)
		}
	}
}
