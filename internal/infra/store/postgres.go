package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"referral-pricing/internal/domain/pricechange"
	"referral-pricing/internal/infra"
	"referral-pricing/internal/pkg/clock"
	"referral-pricing/internal/pkg/errs"
	"referral-pricing/internal/usecase/commands"
	"referral-pricing/internal/usecase/shared"

	"github.com/google/uuid"
)

const defaultCandidateBatch int32 = 500

type Options struct {
	Timeout          time.Duration
	HistoryRetention int
	CandidateBatch   int32
}

// PostgresScheduleStore implements commands.ScheduleStore on top of the unit of work.
// Status transitions, their history row and the outcome job commit together.
type PostgresScheduleStore struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	policy pricechange.RetryPolicy
	opts   Options
	logger *slog.Logger
}

func NewPostgresScheduleStore(
	uow shared.UnitOfWork,
	clk clock.Clock,
	policy pricechange.RetryPolicy,
	opts Options,
	logger *slog.Logger,
) *PostgresScheduleStore {
	if opts.CandidateBatch <= 0 {
		opts.CandidateBatch = defaultCandidateBatch
	}
	return &PostgresScheduleStore{
		uow:    uow,
		clock:  clk,
		policy: policy,
		opts:   opts,
		logger: logger,
	}
}

func (s *PostgresScheduleStore) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opts.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.opts.Timeout)
}

func (s *PostgresScheduleStore) CreatePending(ctx context.Context, entry *pricechange.ScheduledPriceChange) (uuid.UUID, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.PriceChanges().Create(ctx, tx.DB(), entry)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, errs.ErrAlreadyScheduled)
		}
		return uuid.Nil, errs.Mark(errs.Wrap(err, "create pending price change"), errs.ErrDatabaseOperationFailed)
	}
	return entry.ID(), nil
}

func (s *PostgresScheduleStore) GetPending(ctx context.Context, subscriptionID string) (*pricechange.ScheduledPriceChange, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	entry, err := s.uow.Reads().PendingBySubscription(ctx, subscriptionID)
	if err != nil {
		return nil, s.lookupErr(err, "get pending price change")
	}
	return entry, nil
}

func (s *PostgresScheduleStore) GetByID(ctx context.Context, id uuid.UUID) (*pricechange.ScheduledPriceChange, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	entry, err := s.uow.Reads().PriceChangeByID(ctx, id)
	if err != nil {
		return nil, s.lookupErr(err, "get price change")
	}
	return entry, nil
}

func (s *PostgresScheduleStore) lookupErr(err error, msg string) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrScheduleNotFound)
	}
	return errs.Mark(errs.Wrap(err, msg), errs.ErrDatabaseOperationFailed)
}

// Claim takes the apply lease; the returned entry carries the bumped version.
func (s *PostgresScheduleStore) Claim(ctx context.Context, entry *pricechange.ScheduledPriceChange, leaseUntil time.Time) (*pricechange.ScheduledPriceChange, bool, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	var won bool
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, err := tx.PriceChanges().Claim(ctx, tx.DB(), entry.ID(), entry.Version(), leaseUntil, s.clock.Now())
		won = ok
		return err
	})
	if err != nil {
		return nil, false, errs.Mark(errs.Wrap(err, "claim price change"), errs.ErrDatabaseOperationFailed)
	}
	if !won {
		return entry, false, nil
	}
	return entry.WithClaim(leaseUntil), true, nil
}

// Release drops the lease early. A lost row means someone else already moved it on.
func (s *PostgresScheduleStore) Release(ctx context.Context, entry *pricechange.ScheduledPriceChange) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.PriceChanges().Release(ctx, tx.DB(), entry.ID(), entry.Version())
		return err
	})
	if err != nil {
		return errs.Mark(errs.Wrap(err, "release price change claim"), errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (s *PostgresScheduleStore) MarkApplied(ctx context.Context, entry *pricechange.ScheduledPriceChange, appliedAt time.Time, recovered bool) (commands.TransitionResult, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	rec := pricechange.NewSuccessHistory(entry, appliedAt, recovered)
	outcome := pricechange.NewOutcome(entry, pricechange.StatusApplied, "", appliedAt)

	var won bool
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		won = false
		ok, err := tx.PriceChanges().MarkApplied(ctx, tx.DB(), entry.ID(), entry.Version(), appliedAt)
		if err != nil || !ok {
			return err
		}
		won = true
		if err := tx.History().Append(ctx, tx.DB(), rec); err != nil {
			return err
		}
		return s.enqueueOutcome(ctx, tx, outcome)
	})
	if err != nil {
		return commands.TransitionResult{}, errs.Mark(errs.Wrap(err, "mark price change applied"), errs.ErrDatabaseOperationFailed)
	}
	if !won {
		return commands.TransitionResult{Won: false}, nil
	}

	s.prune(ctx, entry.ReferrerSubscriptionID())
	return commands.TransitionResult{Won: true, Status: pricechange.StatusApplied, RetryCount: entry.RetryCount()}, nil
}

func (s *PostgresScheduleStore) MarkFailed(ctx context.Context, req commands.FailureRequest) (commands.TransitionResult, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	entry := req.Entry
	now := s.clock.Now()
	next, err := entry.NextFailure(req.Message, req.Kind, req.Permanent, s.policy.MaxAttempts, now)
	if err != nil {
		return commands.TransitionResult{Won: false}, nil
	}
	rec := pricechange.NewFailureHistory(entry, req.Message, req.Kind, next, req.LivePrice, now)
	terminal := next.Status.IsTerminal()

	var won bool
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		won = false
		ok, err := tx.PriceChanges().MarkFailed(ctx, tx.DB(), entry.ID(), entry.Version(), next, now)
		if err != nil || !ok {
			return err
		}
		won = true
		if err := tx.History().Append(ctx, tx.DB(), rec); err != nil {
			return err
		}
		if !terminal {
			return nil
		}
		return s.enqueueOutcome(ctx, tx, pricechange.NewOutcome(entry, pricechange.StatusFailed, req.Message, now))
	})
	if err != nil {
		return commands.TransitionResult{}, errs.Mark(errs.Wrap(err, "mark price change failed"), errs.ErrDatabaseOperationFailed)
	}
	if !won {
		return commands.TransitionResult{Won: false}, nil
	}

	s.prune(ctx, entry.ReferrerSubscriptionID())
	return commands.TransitionResult{Won: true, Status: next.Status, RetryCount: next.RetryCount}, nil
}

// MarkCancelled is conditional on status only, so a cancellation committed first always beats an apply.
func (s *PostgresScheduleStore) MarkCancelled(ctx context.Context, entry *pricechange.ScheduledPriceChange, reason string) (commands.TransitionResult, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	now := s.clock.Now()
	rec := pricechange.NewCancelledHistory(entry, reason, now)
	meta := entry.CancellationMetadata(reason)

	var won bool
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		won = false
		ok, err := tx.PriceChanges().MarkCancelled(ctx, tx.DB(), entry.ID(), meta, now)
		if err != nil || !ok {
			return err
		}
		won = true
		if err := tx.History().Append(ctx, tx.DB(), rec); err != nil {
			return err
		}
		return s.enqueueOutcome(ctx, tx, pricechange.NewOutcome(entry, pricechange.StatusCancelled, reason, now))
	})
	if err != nil {
		return commands.TransitionResult{}, errs.Mark(errs.Wrap(err, "mark price change cancelled"), errs.ErrDatabaseOperationFailed)
	}
	if !won {
		return commands.TransitionResult{Won: false}, nil
	}

	s.prune(ctx, entry.ReferrerSubscriptionID())
	return commands.TransitionResult{Won: true, Status: pricechange.StatusCancelled, RetryCount: entry.RetryCount()}, nil
}

// ListRetryCandidates returns pending, unclaimed entries whose backoff window has elapsed.
func (s *PostgresScheduleStore) ListRetryCandidates(ctx context.Context, now time.Time) ([]*pricechange.ScheduledPriceChange, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	rows, err := s.uow.Reads().RetryCandidates(ctx, now, s.opts.CandidateBatch)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "list retry candidates"), errs.ErrDatabaseOperationFailed)
	}
	due := make([]*pricechange.ScheduledPriceChange, 0, len(rows))
	for _, e := range rows {
		if e.IsClaimedAt(now) {
			continue
		}
		if s.policy.IsDue(e.RetryCount(), e.UpdatedAt(), now) {
			due = append(due, e)
		}
	}
	return due, nil
}

func (s *PostgresScheduleStore) AppendHistory(ctx context.Context, rec pricechange.HistoryRecord) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.History().Append(ctx, tx.DB(), rec)
	})
	if err != nil {
		return errs.Mark(errs.Wrap(err, "append price change history"), errs.ErrDatabaseOperationFailed)
	}
	s.prune(ctx, rec.ReferrerSubscriptionID)
	return nil
}

func (s *PostgresScheduleStore) enqueueOutcome(ctx context.Context, tx shared.Tx, outcome pricechange.Outcome) error {
	payload, err := json.Marshal(outcome)
	if err != nil {
		return errs.Wrap(err, "encode outcome payload")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), shared.NotificationKindOutcome, outcome.Status.String(), payload, outcome.OccurredAt)
}

// prune is best effort; the transition has already committed.
func (s *PostgresScheduleStore) prune(ctx context.Context, subscriptionID string) {
	if s.opts.HistoryRetention <= 0 {
		return
	}
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.History().Prune(ctx, tx.DB(), subscriptionID, int32(s.opts.HistoryRetention))
		return err
	})
	if err != nil {
		s.logger.WarnContext(ctx, "price change history prune failed",
			"subscription_id", subscriptionID,
			"error", err)
	}
}

var _ commands.ScheduleStore = (*PostgresScheduleStore)(nil)
