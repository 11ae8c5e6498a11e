// Package settlementsim provides a development-mode settlement platform
// that only records transfers. In production the settlement platform is the
// host system calling into the daemon, and delivering funds is its job.
package settlementsim

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Transfer is one delivery the settlement platform was asked to perform.
type Transfer struct {
	Asset    string
	Receiver string
	Amount   uint64
}

// Service implements the SettlementService contract in memory.
type Service struct {
	transfers []Transfer

	lock *sync.RWMutex
}

// NewService returns an empty settlement simulator.
func NewService() *Service {
	return &Service{
		transfers: make([]Transfer, 0),
		lock:      &sync.RWMutex{},
	}
}

func (s *Service) TransferOut(
	_ context.Context, asset, receiver string, amount uint64,
) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.transfers = append(s.transfers, Transfer{
		Asset:    asset,
		Receiver: receiver,
		Amount:   amount,
	})

	log.WithFields(log.Fields{
		"asset":    asset,
		"receiver": receiver,
		"amount":   amount,
	}).Debug("settlement transfer")

	return nil
}

// Transfers returns all deliveries performed so far.
func (s *Service) Transfers() []Transfer {
	s.lock.RLock()
	defer s.lock.RUnlock()

	list := make([]Transfer, len(s.transfers))
	copy(list, s.transfers)
	return list
}
