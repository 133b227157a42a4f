package pricechange

type Status string

const (
	StatusPending   Status = "pending"
	StatusApplied   Status = "applied"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApplied, StatusFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusApplied || s == StatusFailed || s == StatusCancelled
}

type Action string

const (
	ActionApplyReduction Action = "apply_reduction"
)

func (a Action) String() string {
	return string(a)
}

func (a Action) IsValid() bool {
	return a == ActionApplyReduction
}

type ExecutionStatus string

const (
	ExecutionSuccess   ExecutionStatus = "success"
	ExecutionFailed    ExecutionStatus = "failed"
	ExecutionCancelled ExecutionStatus = "cancelled"
)

func (s ExecutionStatus) String() string {
	return string(s)
}

// Metadata keys shared by schedule rows and history details
const (
	MetaContributingProducts = "contributing_product_ids"
	MetaCalculation          = "calculation"
	MetaLastError            = "last_error"
	MetaLastErrorAt          = "last_error_at"
	MetaFailureKind          = "failure_kind"
	MetaCancellationReason   = "cancellation_reason"
	MetaReferredCustomerID   = "referred_customer_id"
	MetaReferrerCustomerID   = "referrer_customer_id"
	MetaRetryCount           = "retry_count"
	MetaAppliedAt            = "applied_at"
	MetaLivePrice            = "live_price"
	MetaRecovered            = "recovered"
)
