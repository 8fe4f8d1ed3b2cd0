package model

import "testing"

func TestTotalPointsWithNegativeEntries(t *testing.T) {
	entries := []PerformancePoint{
		{Points: 20, Reason: "completed onboarding tasks"},
		{Points: -5, Reason: "missed standup"},
	}
	if got := TotalPoints(entries); got != 15 {
		t.Fatalf("expected total 15, got %d", got)
	}
}

func TestTotalPointsEmpty(t *testing.T) {
	if got := TotalPoints(nil); got != 0 {
		t.Fatalf("expected 0 for no entries, got %d", got)
	}
}

func TestEligibleForReferral(t *testing.T) {
	if !EligibleForReferral(40 + 35) {
		t.Fatal("75 points should be eligible")
	}
	if EligibleForReferral(40 + 20) {
		t.Fatal("60 points should not be eligible")
	}
	if !EligibleForReferral(ReferralPointThreshold) {
		t.Fatal("threshold itself should be eligible")
	}
}
