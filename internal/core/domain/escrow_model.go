package domain

// Escrow tracks how many shares the module owns in the external yield vault
// for one asset. The vault's reported balance for those shares grows over
// time as yield accrues, so the share price is strictly non-decreasing; this
// is an assumed property of the vault, not enforced here.
//
// Reward units credited by the Ledger and vault shares are a deliberately
// coupled unit system inherited from the reference design: every unit of
// reward corresponds 1:1 to one escrow share minted at deposit time, so the
// appreciation between injection and claim accrues to whoever claims.
type Escrow struct {
	// Asset the escrow custodies, in hex format.
	Asset string
	// ShareToken is the vault-share token identity bound to the asset at
	// module setup.
	ShareToken string
	// VaultShares is the total amount of shares the module owns in the
	// vault's internal accounting.
	VaultShares uint64
}

// NewEscrow returns an empty escrow binding the asset to its vault share
// token.
func NewEscrow(asset, shareToken string) (*Escrow, error) {
	if !isValidAsset(asset) {
		return nil, ErrInvalidAsset
	}
	if !isValidAsset(shareToken) {
		return nil, ErrInvalidShareToken
	}
	return &Escrow{Asset: asset, ShareToken: shareToken}, nil
}

// Copy returns a copy of the escrow.
func (e *Escrow) Copy() *Escrow {
	copied := *e
	return &copied
}
