package converter

import (
	"referral-pricing/internal/domain/money"
	"referral-pricing/internal/domain/pricechange"
	sqlc "referral-pricing/internal/infra/sqlc/generated"
	"referral-pricing/internal/pkg/errs"
	"referral-pricing/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func PriceChangeToCreateParams(e *pricechange.ScheduledPriceChange) (sqlc.CreateScheduledPriceChangeParams, error) {
	meta, err := pgconv.MapToJSON(e.Metadata())
	if err != nil {
		return sqlc.CreateScheduledPriceChangeParams{}, err
	}
	return sqlc.CreateScheduledPriceChangeParams{
		ID:                     e.ID(),
		ReferrerSubscriptionID: e.ReferrerSubscriptionID(),
		ReferredOrderID:        e.ReferredOrderID(),
		Action:                 e.Action().String(),
		OriginalPrice:          MoneyToNumeric(e.OriginalPrice()),
		NewPrice:               MoneyToNumeric(e.NewPrice()),
		ReductionAmount:        MoneyToNumeric(e.ReductionAmount()),
		ReductionPercentage:    pgconv.DecimalToNumeric(e.ReductionPercentage()),
		ReferredContribution:   MoneyToNumeric(e.ReferredContribution()),
		ScheduledDate:          pgconv.TimeToPgtype(e.ScheduledDate()),
		Metadata:               meta,
		CreatedAt:              pgconv.TimeToPgtype(e.CreatedAt()),
	}, nil
}

func PriceChangeFromRow(row sqlc.ScheduledPriceChanges) (*pricechange.ScheduledPriceChange, error) {
	original, err := MoneyFromNumeric("original_price", row.OriginalPrice)
	if err != nil {
		return nil, err
	}
	newPrice, err := MoneyFromNumeric("new_price", row.NewPrice)
	if err != nil {
		return nil, err
	}
	reduction, err := MoneyFromNumeric("reduction_amount", row.ReductionAmount)
	if err != nil {
		return nil, err
	}
	contribution, err := MoneyFromNumeric("referred_contribution", row.ReferredContribution)
	if err != nil {
		return nil, err
	}
	percentage, err := pgconv.DecimalFromNumeric(row.ReductionPercentage)
	if err != nil {
		return nil, errs.Wrap(err, "reduction_percentage")
	}
	meta, err := pgconv.MapFromJSON(row.Metadata)
	if err != nil {
		return nil, errs.Wrap(err, "metadata")
	}

	return pricechange.ReconstructScheduledPriceChange(pricechange.ReconstructParams{
		ID:                     row.ID,
		ReferrerSubscriptionID: row.ReferrerSubscriptionID,
		ReferredOrderID:        row.ReferredOrderID,
		Action:                 pricechange.Action(row.Action),
		OriginalPrice:          original,
		NewPrice:               newPrice,
		ReductionAmount:        reduction,
		ReductionPercentage:    percentage,
		ReferredContribution:   contribution,
		ScheduledDate:          pgconv.TimeFromPgtype(row.ScheduledDate),
		Status:                 pricechange.Status(row.Status),
		RetryCount:             int(row.RetryCount),
		Metadata:               meta,
		CreatedAt:              pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:              pgconv.TimeFromPgtype(row.UpdatedAt),
		AppliedDate:            pgconv.TimePtrFromPgtype(row.AppliedDate),
		Version:                row.Version,
		ClaimedUntil:           pgconv.TimePtrFromPgtype(row.ClaimedUntil),
	}), nil
}

func PriceChangesFromRows(rows []sqlc.ScheduledPriceChanges) ([]*pricechange.ScheduledPriceChange, error) {
	out := make([]*pricechange.ScheduledPriceChange, 0, len(rows))
	for _, row := range rows {
		e, err := PriceChangeFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func HistoryToCreateParams(rec pricechange.HistoryRecord) (sqlc.CreatePriceChangeHistoryParams, error) {
	details, err := pgconv.MapToJSON(rec.ExecutionDetails)
	if err != nil {
		return sqlc.CreatePriceChangeHistoryParams{}, err
	}
	return sqlc.CreatePriceChangeHistoryParams{
		ID:                     rec.ID,
		ReferrerSubscriptionID: rec.ReferrerSubscriptionID,
		ReferredOrderID:        rec.ReferredOrderID,
		Action:                 rec.Action.String(),
		PriceBefore:            MoneyToNumeric(rec.PriceBefore),
		PriceAfter:             MoneyToNumeric(rec.PriceAfter),
		ReductionAmount:        MoneyToNumeric(rec.ReductionAmount),
		ExecutionStatus:        rec.ExecutionStatus.String(),
		ExecutionDetails:       details,
		UserNotified:           rec.UserNotified,
		CreatedAt:              pgconv.TimeToPgtype(rec.CreatedAt),
	}, nil
}

// Money columns are numeric(12,2); values are rounded before binding.
func MoneyToNumeric(m money.Money) pgtype.Numeric {
	return pgconv.DecimalToNumeric(m.Round().Decimal())
}

func MoneyFromNumeric(column string, n pgtype.Numeric) (money.Money, error) {
	d, err := pgconv.DecimalFromNumeric(n)
	if err != nil {
		return money.Money{}, errs.Wrap(err, column)
	}
	return money.New(d), nil
}
