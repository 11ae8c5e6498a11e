// Package vaultsim provides an in-process yield vault used for development
// mode and tests. Yield never accrues on its own: tests drive appreciation
// explicitly through AccrueYield.
package vaultsim

import (
	"context"
	"errors"
	"sync"

	"github.com/feevault-network/feevault-daemon/pkg/mathutil"
)

var (
	// ErrInsufficientBalance is returned when a withdrawal exceeds what the
	// vault holds for the asset.
	ErrInsufficientBalance = errors.New("vaultsim: insufficient balance")
)

// Service simulates the external yield vault: it custodies supplied amounts
// per asset and reports a balance that grows when yield is accrued.
type Service struct {
	balances map[string]uint64

	lock *sync.RWMutex
}

// NewService returns an empty vault simulator.
func NewService() *Service {
	return &Service{
		balances: map[string]uint64{},
		lock:     &sync.RWMutex{},
	}
}

func (s *Service) Supply(_ context.Context, asset string, amount uint64) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	balance, err := mathutil.CheckedAdd(s.balances[asset], amount)
	if err != nil {
		return err
	}
	s.balances[asset] = balance
	return nil
}

func (s *Service) Withdraw(
	_ context.Context, asset string, amount uint64,
) (uint64, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	balance, err := mathutil.CheckedSub(s.balances[asset], amount)
	if err != nil {
		return 0, ErrInsufficientBalance
	}
	s.balances[asset] = balance
	return amount, nil
}

func (s *Service) ReportedBalance(
	_ context.Context, asset string,
) (uint64, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.balances[asset], nil
}

// AccrueYield grows the vault's reported balance for the asset by the given
// basis points, simulating the passage of time.
func (s *Service) AccrueYield(asset string, basisPoints uint64) {
	s.lock.Lock()
	defer s.lock.Unlock()

	balance := s.balances[asset]
	gain, _ := mathutil.ToUint64(mathutil.MulDivTrunc(
		mathutil.FromUint64(balance),
		mathutil.FromUint64(basisPoints),
		mathutil.FromUint64(10_000),
	))
	s.balances[asset] = balance + gain
}
