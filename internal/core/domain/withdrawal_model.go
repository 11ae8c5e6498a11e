package domain

import (
	"time"

	"github.com/google/uuid"
)

// Withdrawal is the audit record of a single claim payout, used to follow
// funds withdrawal statistics. It never participates in payout math.
type Withdrawal struct {
	ID       string
	Asset    string
	Receiver string
	// Shares burnt in the escrow for this payout.
	Shares uint64
	// AmountReleased is what the vault actually released, which may differ
	// from the escrow's estimate.
	AmountReleased uint64
	// Operator marks payouts of the operator share.
	Operator  bool
	Timestamp uint64
}

// NewWithdrawal returns a withdrawal record with a fresh id and the current
// timestamp.
func NewWithdrawal(
	asset, receiver string, shares, amountReleased uint64, operator bool,
) *Withdrawal {
	return &Withdrawal{
		ID:             uuid.New().String(),
		Asset:          asset,
		Receiver:       receiver,
		Shares:         shares,
		AmountReleased: amountReleased,
		Operator:       operator,
		Timestamp:      uint64(time.Now().Unix()),
	}
}
