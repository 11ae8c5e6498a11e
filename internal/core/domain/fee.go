package domain

// FeeSplit is the outcome of skimming the fee off a trade's input amount.
type FeeSplit struct {
	// FeeTotal is the whole skimmed fee, 0.1% of the input, truncated.
	FeeTotal uint64
	// OperatorShare is the half of the fee earmarked for the module
	// operator, truncated.
	OperatorShare uint64
	// ParticipantShare is the remainder of the fee distributed to traders
	// in proportion to contributed volume.
	ParticipantShare uint64
}

// SplitTradeFee computes the fee skimmed off a trade input amount and splits
// it between the operator and the participants. The participant share is
// computed as feeTotal - operatorShare rather than a second halving, so that
// OperatorShare + ParticipantShare == FeeTotal holds exactly: on odd fees the
// spare unit goes to the participants.
func SplitTradeFee(tradeInputAmount uint64) FeeSplit {
	feeTotal := tradeInputAmount / FeeDivisor
	operatorShare := feeTotal / 2
	return FeeSplit{
		FeeTotal:         feeTotal,
		OperatorShare:    operatorShare,
		ParticipantShare: feeTotal - operatorShare,
	}
}
