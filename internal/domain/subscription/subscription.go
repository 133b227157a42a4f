package subscription

import (
	"strings"
	"time"

	"referral-pricing/internal/domain/money"
)

type Status string

const (
	StatusActive            Status = "active"
	StatusTrialing          Status = "trialing"
	StatusPastDue           Status = "past_due"
	StatusUnpaid            Status = "unpaid"
	StatusPaused            Status = "paused"
	StatusOnHold            Status = "on-hold"
	StatusIncomplete        Status = "incomplete"
	StatusIncompleteExpired Status = "incomplete_expired"
	StatusCanceled          Status = "canceled"
	StatusCancelled         Status = "cancelled"
	StatusExpired           Status = "expired"
)

func NewStatus(s string) Status {
	return Status(strings.ToLower(strings.TrimSpace(s)))
}

func (s Status) String() string {
	return string(s)
}

// IsBillable reports whether the subscription is in a state where a price change may be applied.
func (s Status) IsBillable() bool {
	return s == StatusActive
}

// IsTerminated is true for states a subscription never leaves.
func (s Status) IsTerminated() bool {
	switch s {
	case StatusCanceled, StatusCancelled, StatusExpired, StatusIncompleteExpired:
		return true
	default:
		return false
	}
}

// Snapshot is the billing system's view of a subscription at read time.
type Snapshot struct {
	ID              string
	Status          Status
	Price           money.Money
	Currency        string
	NextPaymentDate time.Time
	CustomerID      string
}

type EventKind string

const (
	EventPaymentDue       EventKind = "payment_due"
	EventPaymentCompleted EventKind = "payment_completed"
	EventTerminated       EventKind = "subscription_terminated"
)

func (k EventKind) IsValid() bool {
	switch k {
	case EventPaymentDue, EventPaymentCompleted, EventTerminated:
		return true
	default:
		return false
	}
}

// IsBillingMoment reports whether the event marks the point where a scheduled price change is applied.
func (k EventKind) IsBillingMoment() bool {
	return k == EventPaymentDue || k == EventPaymentCompleted
}

// Event is a billing notification already reduced to what the scheduler reacts to.
type Event struct {
	Kind           EventKind
	SubscriptionID string
	Reason         string
}
