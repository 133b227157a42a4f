package components

import (
	"referral-pricing/internal/domain/money"
	"referral-pricing/internal/domain/pricechange"
	"referral-pricing/internal/infra/alert"
	"referral-pricing/internal/infra/billing"
	"referral-pricing/internal/infra/metrics"
	"referral-pricing/internal/pkg/clock"
	"referral-pricing/internal/pkg/config"
	"referral-pricing/internal/pkg/errs"
	"referral-pricing/internal/usecase/commands"
	"referral-pricing/internal/usecase/queries"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecasePortsModule,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewRetryPolicy,
	NewSchedulerOptions,
	fx.Annotate(
		NewReductionCalculator,
		fx.As(new(pricechange.ReductionCalculator)),
	),
)

var usecasePortsModule = fx.Module("usecase/ports",
	fx.Provide(
		func(g *billing.StripeGateway) commands.BillingGateway { return g },
		func(a *alert.Alerter) commands.Alerter { return a },
		func(m *metrics.SchedulerMetrics) commands.Metrics { return m },
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPriceChangeScheduler,
		commands.NewReferralPricingCoordinator,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPriceChangeQueries,
	),
)

func NewRetryPolicy(cfg config.Config) pricechange.RetryPolicy {
	return pricechange.RetryPolicy{
		MaxAttempts: cfg.Scheduler.MaxAttempts,
		Initial:     cfg.Scheduler.RetryBackoffInitial,
		Multiplier:  cfg.Scheduler.RetryBackoffMultiplier,
		Max:         cfg.Scheduler.RetryBackoffMax,
	}
}

func NewSchedulerOptions(cfg config.Config) (commands.SchedulerOptions, error) {
	tolerance, err := money.Parse(cfg.Scheduler.PriceTolerance)
	if err != nil {
		return commands.SchedulerOptions{}, errs.Wrap(err, "invalid SCHEDULER_PRICE_TOLERANCE")
	}
	return commands.SchedulerOptions{
		PriceTolerance:   tolerance,
		DriftIsPermanent: cfg.Scheduler.DriftIsPermanent,
		BillingTimeout:   cfg.Scheduler.BillingTimeout,
		StoreTimeout:     cfg.Scheduler.StoreTimeout,
		SweepConcurrency: cfg.Scheduler.RetrySweepConcurrency,
	}, nil
}

func NewReductionCalculator(cfg config.Config) (*pricechange.DefaultReductionCalculator, error) {
	rate, err := decimal.NewFromString(cfg.Pricing.ReductionRate)
	if err != nil {
		return nil, errs.Wrap(err, "invalid PRICING_REDUCTION_RATE")
	}
	rule, err := pricechange.NewPercentOfContributionRule(rate)
	if err != nil {
		return nil, errs.Wrap(err, "invalid PRICING_REDUCTION_RATE")
	}
	return pricechange.NewDefaultReductionCalculator(rule), nil
}
