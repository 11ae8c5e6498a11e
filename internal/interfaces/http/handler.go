package httpinterface

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/feevault-network/feevault-daemon/internal/core/application"
	"github.com/feevault-network/feevault-daemon/internal/core/domain"
	"github.com/go-chi/chi/v5"
)

// RequesterHeader carries the identity invoking an owner-gated endpoint.
// The settlement platform fronting this daemon is expected to have
// authenticated it already.
const RequesterHeader = "X-Feevault-Requester"

type tradeRequest struct {
	Participant string `json:"participant"`
	Asset       string `json:"asset"`
	Amount      uint64 `json:"amount"`
}

type claimRequest struct {
	Participant string `json:"participant"`
	Asset       string `json:"asset"`
}

type operatorClaimRequest struct {
	Asset string `json:"asset"`
}

type supportAssetRequest struct {
	Asset      string `json:"asset"`
	ShareToken string `json:"shareToken"`
}

type transferOwnershipRequest struct {
	NewOwner string `json:"newOwner"`
}

type claimReply struct {
	AmountPaid uint64 `json:"amountPaid"`
}

type pendingRewardReply struct {
	Participant string `json:"participant"`
	Asset       string `json:"asset"`
	Amount      uint64 `json:"amount"`
	Unit        string `json:"unit"`
}

type assetInfoReply struct {
	Asset           string `json:"asset"`
	ShareToken      string `json:"shareToken"`
	Halted          bool   `json:"halted"`
	TotalVolume     uint64 `json:"totalVolume"`
	OperatorAccrued uint64 `json:"operatorAccrued"`
	TotalFeeAccrued uint64 `json:"totalFeeAccrued"`
	VaultShares     uint64 `json:"vaultShares"`
}

type withdrawalReply struct {
	ID             string `json:"id"`
	Asset          string `json:"asset"`
	Receiver       string `json:"receiver"`
	Shares         uint64 `json:"shares"`
	AmountReleased uint64 `json:"amountReleased"`
	Operator       bool   `json:"operator"`
	Timestamp      uint64 `json:"timestamp"`
}

type errorReply struct {
	Error string `json:"error"`
}

func (s *Service) handleTrade(w http.ResponseWriter, r *http.Request) {
	req := tradeRequest{}
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := s.rewardSvc.OnTrade(
		r.Context(), req.Participant, req.Asset, req.Amount,
	); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}

func (s *Service) handleClaim(w http.ResponseWriter, r *http.Request) {
	req := claimRequest{}
	if !decodeJSON(w, r, &req) {
		return
	}

	paid, err := s.rewardSvc.OnClaim(r.Context(), req.Participant, req.Asset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, claimReply{AmountPaid: paid})
}

func (s *Service) handleOperatorClaim(w http.ResponseWriter, r *http.Request) {
	req := operatorClaimRequest{}
	if !decodeJSON(w, r, &req) {
		return
	}

	paid, err := s.operatorSvc.ClaimOperatorFee(
		r.Context(), requester(r), req.Asset,
	)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, claimReply{AmountPaid: paid})
}

func (s *Service) handleSupportAsset(w http.ResponseWriter, r *http.Request) {
	req := supportAssetRequest{}
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := s.operatorSvc.SupportAsset(
		r.Context(), requester(r), req.Asset, req.ShareToken,
	); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, struct{}{})
}

func (s *Service) handleTransferOwnership(w http.ResponseWriter, r *http.Request) {
	req := transferOwnershipRequest{}
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := s.operatorSvc.TransferOwnership(
		r.Context(), requester(r), req.NewOwner,
	); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}

func (s *Service) handlePendingReward(w http.ResponseWriter, r *http.Request) {
	asset := chi.URLParam(r, "asset")
	participant := chi.URLParam(r, "participant")
	unit := r.URL.Query().Get("unit")

	var amount uint64
	var err error
	switch unit {
	case "", "reward":
		unit = "reward"
		amount, err = s.rewardSvc.PendingReward(r.Context(), participant, asset)
	case "underlying":
		amount, err = s.rewardSvc.PendingRewardInUnderlying(
			r.Context(), participant, asset,
		)
	default:
		writeJSON(w, http.StatusBadRequest, errorReply{
			Error: "unit must be either reward or underlying",
		})
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pendingRewardReply{
		Participant: participant,
		Asset:       asset,
		Amount:      amount,
		Unit:        unit,
	})
}

func (s *Service) handleListAssets(w http.ResponseWriter, r *http.Request) {
	infos, err := s.operatorSvc.ListAssets(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	list := make([]assetInfoReply, 0, len(infos))
	for _, info := range infos {
		list = append(list, assetInfoReply{
			Asset:           info.Asset,
			ShareToken:      info.ShareToken,
			Halted:          info.Halted,
			TotalVolume:     info.TotalVolume,
			OperatorAccrued: info.OperatorAccrued,
			TotalFeeAccrued: info.TotalFeeAccrued,
			VaultShares:     info.VaultShares,
		})
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Service) handleListWithdrawals(w http.ResponseWriter, r *http.Request) {
	asset := chi.URLParam(r, "asset")

	withdrawals, err := s.operatorSvc.ListWithdrawals(
		r.Context(), requester(r), asset,
	)
	if err != nil {
		writeError(w, err)
		return
	}

	list := make([]withdrawalReply, 0, len(withdrawals))
	for _, wd := range withdrawals {
		list = append(list, withdrawalReply{
			ID:             wd.ID,
			Asset:          wd.Asset,
			Receiver:       wd.Receiver,
			Shares:         wd.Shares,
			AmountReleased: wd.AmountReleased,
			Operator:       wd.Operator,
			Timestamp:      wd.Timestamp,
		})
	}
	writeJSON(w, http.StatusOK, list)
}

func requester(r *http.Request) string {
	return r.Header.Get(RequesterHeader)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorReply{Error: "invalid json body"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// nolint
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusForError(err), errorReply{Error: err.Error()})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, application.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, application.ErrAssetNotSupported):
		return http.StatusNotFound
	case errors.Is(err, application.ErrAssetAlreadySupported):
		return http.StatusConflict
	case errors.Is(err, application.ErrAssetHalted):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidAsset),
		errors.Is(err, domain.ErrInvalidShareToken),
		errors.Is(err, domain.ErrInvalidParticipant),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, application.ErrInvalidOwner):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
