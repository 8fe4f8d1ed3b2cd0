package model

import (
	"testing"
	"time"
)

func TestDisplayStatusCompletedAfterInterview(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)

	referral := InterviewReferral{Status: ReferralStatusPending, InterviewDate: &past}
	if got := referral.DisplayStatus(now); got != ReferralStatusCompleted {
		t.Fatalf("expected COMPLETED for past interview, got %s", got)
	}

	// 投影不回写存储的状态
	if referral.Status != ReferralStatusPending {
		t.Fatalf("stored status must stay %s, got %s", ReferralStatusPending, referral.Status)
	}
}

func TestDisplayStatusPendingBeforeInterview(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)

	referral := InterviewReferral{Status: ReferralStatusPending, InterviewDate: &future}
	if got := referral.DisplayStatus(now); got != ReferralStatusPending {
		t.Fatalf("expected Pending for future interview, got %s", got)
	}
}

func TestDisplayStatusWithoutInterviewDate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	referral := InterviewReferral{Status: ReferralStatusPending}
	if got := referral.DisplayStatus(now); got != ReferralStatusPending {
		t.Fatalf("expected Pending without interview date, got %s", got)
	}
}
