package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Schedule errors
	ErrScheduleNotFound = errors.New("scheduled price change not found")
	ErrAlreadyScheduled = errors.New("price change already scheduled for subscription")

	// Referral validation errors
	ErrInvalidReferral       = errors.New("invalid referral context")
	ErrSelfReferral          = errors.New("self referral is not allowed")
	ErrReferrerNotActive     = errors.New("referrer subscription is not active")
	ErrSubscriptionNotFound  = errors.New("subscription not found")
	ErrBillingUnavailable    = errors.New("billing interface unavailable")
	ErrInvalidBillingEvent   = errors.New("invalid billing event")
	ErrWebhookSignature      = errors.New("webhook signature verification failed")
	ErrInvalidCursor         = errors.New("invalid cursor")
	ErrInvalidStatusFilter   = errors.New("invalid status filter")
	ErrRetrySweepAlreadyBusy = errors.New("retry sweep already running")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
