//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"referral-pricing/internal/domain/money"
	"referral-pricing/internal/domain/pricechange"
	"referral-pricing/internal/infra"
	"referral-pricing/internal/infra/repository"
	"referral-pricing/internal/infra/repository/converter"
	sqlc "referral-pricing/internal/infra/sqlc/generated"
	"referral-pricing/tests/common/builder"
	repositorymock "referral-pricing/tests/mock/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHistoryRepository_Append(t *testing.T) {
	ctx := context.Background()
	entry := builder.NewPriceChangeBuilder().BuildDomain()
	live := money.MustParse("120.00")
	next := pricechange.FailureTransition{RetryCount: 1, Status: pricechange.StatusFailed}
	rec := pricechange.NewFailureHistory(entry, "price drift", pricechange.FailureDrift, next, &live, repoNow)

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockHistoryWriteQueries, sqlc.DBTX)
		expectedError bool
	}{
		{
			name: "success: failure row written with live price",
			setupMock: func(mock *repositorymock.MockHistoryWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreatePriceChangeHistory(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreatePriceChangeHistoryParams) error {
						assert.Equal(t, rec.ID, arg.ID)
						assert.Equal(t, "failed", arg.ExecutionStatus)
						assert.Equal(t, converter.MoneyToNumeric(live), arg.PriceBefore)
						assert.Equal(t, converter.MoneyToNumeric(live), arg.PriceAfter)
						assert.Contains(t, string(arg.ExecutionDetails), `"failure_kind":"price_drift"`)
						assert.Contains(t, string(arg.ExecutionDetails), `"terminal":true`)
						assert.False(t, arg.UserNotified)
						return nil
					})
			},
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockHistoryWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreatePriceChangeHistory(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockHistoryWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewHistoryRepository(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			err := repo.Append(ctx, mockDB, rec)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestHistoryRepository_Prune(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockHistoryWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewHistoryRepository(mockQueries, mockDB)

	mockQueries.EXPECT().PrunePriceChangeHistory(ctx, mockDB, sqlc.PrunePriceChangeHistoryParams{
		ReferrerSubscriptionID: "sub_referrer",
		Keep:                   100,
	}).Return(int64(4), nil)

	n, err := repo.Prune(ctx, mockDB, "sub_referrer", 100)

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestHistoryRepository_MarkNotified(t *testing.T) {
	ctx := context.Background()
	entry := builder.NewPriceChangeBuilder().BuildDomain()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockHistoryWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewHistoryRepository(mockQueries, mockDB)

		mockQueries.EXPECT().MarkHistoryUserNotified(ctx, mockDB, sqlc.MarkHistoryUserNotifiedParams{
			ScheduleID:      entry.ID().String(),
			ExecutionStatus: "success",
		}).Return(int64(1), nil)

		n, err := repo.MarkNotified(ctx, mockDB, entry.ID(), pricechange.ExecutionSuccess)

		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockHistoryWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewHistoryRepository(mockQueries, mockDB)

		mockQueries.EXPECT().MarkHistoryUserNotified(ctx, mockDB, gomock.Any()).Return(int64(0), errors.New("timeout"))

		_, err := repo.MarkNotified(ctx, mockDB, entry.ID(), pricechange.ExecutionCancelled)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
