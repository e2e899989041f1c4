package service

import (
	"context"
)

type BookingNotification struct {
	TutorEmail    string
	TutorName     string
	ParentName    string
	Subject       string
	ScheduledDate string
	ScheduledTime string
	Price         float64
}

// NotifyResult reports what happened to a dispatch attempt. Skipped means no
// provider credential was configured and no network call was made.
type NotifyResult struct {
	Sent    bool
	Skipped bool
	Reason  string
}

// BookingNotifier must never panic past this boundary; callers treat every
// outcome as best-effort.
type BookingNotifier interface {
	SendBookingNotification(ctx context.Context, n BookingNotification) (*NotifyResult, error)
}
