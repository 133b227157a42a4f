//go:build e2e

package e2e

import (
	"context"
	"sync"
	"time"

	"referral-pricing/internal/domain/money"
	"referral-pricing/internal/domain/subscription"
	"referral-pricing/internal/pkg/errs"
)

// FakeBilling stands in for Stripe so e2e runs never leave the process.
type FakeBilling struct {
	mu          sync.Mutex
	subs        map[string]subscription.Snapshot
	setCalls    map[string]int
	setAttempts map[string]int
	setFailures map[string]fakeFailure
}

type fakeFailure struct {
	remaining int
	err       error
}

func NewFakeBilling() *FakeBilling {
	return &FakeBilling{
		subs:        map[string]subscription.Snapshot{},
		setCalls:    map[string]int{},
		setAttempts: map[string]int{},
		setFailures: map[string]fakeFailure{},
	}
}

func (f *FakeBilling) Put(snap subscription.Snapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subs[snap.ID] = snap
}

// PutActive registers an active monthly subscription billed next week.
func (f *FakeBilling) PutActive(id, customerID, price string) {
	f.Put(subscription.Snapshot{
		ID:              id,
		Status:          subscription.StatusActive,
		Price:           money.MustParse(price),
		Currency:        "eur",
		NextPaymentDate: time.Now().Add(7 * 24 * time.Hour).UTC().Truncate(time.Second),
		CustomerID:      customerID,
	})
}

func (f *FakeBilling) Price(id string) money.Money {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.subs[id].Price
}

// SetPriceCalls counts price writes that went through.
func (f *FakeBilling) SetPriceCalls(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.setCalls[id]
}

// SetPriceAttempts counts every price write, failed ones included.
func (f *FakeBilling) SetPriceAttempts(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.setAttempts[id]
}

// FailSetPrice makes the next n price writes for id return err.
func (f *FakeBilling) FailSetPrice(id string, n int, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setFailures[id] = fakeFailure{remaining: n, err: err}
}

func (f *FakeBilling) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subs = map[string]subscription.Snapshot{}
	f.setCalls = map[string]int{}
	f.setAttempts = map[string]int{}
	f.setFailures = map[string]fakeFailure{}
}

func (f *FakeBilling) GetSubscription(_ context.Context, subscriptionID string) (subscription.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	snap, ok := f.subs[subscriptionID]
	if !ok {
		return subscription.Snapshot{}, errs.Mark(errs.Newf("no such subscription: %s", subscriptionID), errs.ErrSubscriptionNotFound)
	}
	return snap, nil
}

func (f *FakeBilling) SetSubscriptionPrice(_ context.Context, subscriptionID string, newPrice money.Money, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	snap, ok := f.subs[subscriptionID]
	if !ok {
		return errs.Mark(errs.Newf("no such subscription: %s", subscriptionID), errs.ErrSubscriptionNotFound)
	}
	f.setAttempts[subscriptionID]++
	if fail := f.setFailures[subscriptionID]; fail.remaining > 0 {
		fail.remaining--
		f.setFailures[subscriptionID] = fail
		return fail.err
	}
	snap.Price = newPrice
	f.subs[subscriptionID] = snap
	f.setCalls[subscriptionID]++
	return nil
}
