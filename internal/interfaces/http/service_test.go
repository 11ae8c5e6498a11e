package httpinterface_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/feevault-network/feevault-daemon/internal/core/application"
	httpinterface "github.com/feevault-network/feevault-daemon/internal/interfaces/http"
	"github.com/feevault-network/feevault-daemon/internal/infrastructure/settlement/settlementsim"
	"github.com/feevault-network/feevault-daemon/internal/infrastructure/storage/db/inmemory"
	"github.com/feevault-network/feevault-daemon/internal/infrastructure/vault/vaultsim"
	"github.com/stretchr/testify/require"
)

const (
	asset      = "0000000000000000000000000000000000000000000000000000000000000000"
	shareToken = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	owner      = "module-owner"
	alice      = "alice"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	ledgerRepo := inmemory.NewLedgerRepositoryImpl()
	escrowRepo := inmemory.NewEscrowRepositoryImpl()
	withdrawalRepo := inmemory.NewWithdrawalRepositoryImpl()
	vault := vaultsim.NewService()
	settlement := settlementsim.NewService()

	rewardSvc := application.NewRewardService(
		ledgerRepo, escrowRepo, withdrawalRepo, vault, settlement,
	)
	operatorSvc, err := application.NewOperatorService(
		ledgerRepo, escrowRepo, withdrawalRepo, rewardSvc, owner,
	)
	require.NoError(t, err)

	server := httptest.NewServer(
		httpinterface.NewService(rewardSvc, operatorSvc).Router(),
	)
	t.Cleanup(server.Close)
	return server
}

func doJSON(
	t *testing.T, server *httptest.Server,
	method, path, requester string, body interface{},
) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, server.URL+path, &buf)
	require.NoError(t, err)
	if requester != "" {
		req.Header.Set(httpinterface.RequesterHeader, requester)
	}

	res, err := server.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(res.Body)
	require.NoError(t, err)
	return res.StatusCode, out.Bytes()
}

func TestHTTPLifecycle(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	status, _ := doJSON(t, server, http.MethodPost, "/v1/operator/assets", owner,
		map[string]string{"asset": asset, "shareToken": shareToken})
	require.Equal(t, http.StatusCreated, status)

	// A duplicate binding is rejected.
	status, _ = doJSON(t, server, http.MethodPost, "/v1/operator/assets", owner,
		map[string]string{"asset": asset, "shareToken": shareToken})
	require.Equal(t, http.StatusConflict, status)

	for i := 0; i < 2; i++ {
		status, _ = doJSON(t, server, http.MethodPost, "/v1/trades", "",
			map[string]interface{}{
				"participant": alice, "asset": asset, "amount": 1_000_000,
			})
		require.Equal(t, http.StatusOK, status)
	}

	path := fmt.Sprintf("/v1/rewards/%s/%s", asset, alice)
	status, body := doJSON(t, server, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, status)
	pending := struct {
		Amount uint64 `json:"amount"`
		Unit   string `json:"unit"`
	}{}
	require.NoError(t, json.Unmarshal(body, &pending))
	// The second trade injects 500 against a total volume alice fully owns.
	require.Equal(t, uint64(500), pending.Amount)
	require.Equal(t, "reward", pending.Unit)

	status, body = doJSON(t, server, http.MethodGet, path+"?unit=underlying", "", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &pending))
	require.Equal(t, uint64(500), pending.Amount)
	require.Equal(t, "underlying", pending.Unit)

	status, body = doJSON(t, server, http.MethodPost, "/v1/claims", "",
		map[string]string{"participant": alice, "asset": asset})
	require.Equal(t, http.StatusOK, status)
	claim := struct {
		AmountPaid uint64 `json:"amountPaid"`
	}{}
	require.NoError(t, json.Unmarshal(body, &claim))
	require.Equal(t, uint64(500), claim.AmountPaid)

	status, body = doJSON(t, server, http.MethodPost, "/v1/operator/claims", owner,
		map[string]string{"asset": asset})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &claim))
	require.Equal(t, uint64(1500), claim.AmountPaid)

	status, body = doJSON(t, server, http.MethodGet,
		"/v1/operator/withdrawals/"+asset, owner, nil)
	require.Equal(t, http.StatusOK, status)
	withdrawals := []struct {
		Receiver string `json:"receiver"`
		Operator bool   `json:"operator"`
	}{}
	require.NoError(t, json.Unmarshal(body, &withdrawals))
	require.Len(t, withdrawals, 2)
	require.Equal(t, alice, withdrawals[0].Receiver)
	require.True(t, withdrawals[1].Operator)

	status, body = doJSON(t, server, http.MethodGet, "/v1/assets", "", nil)
	require.Equal(t, http.StatusOK, status)
	infos := []struct {
		Asset       string `json:"asset"`
		TotalVolume uint64 `json:"totalVolume"`
	}{}
	require.NoError(t, json.Unmarshal(body, &infos))
	require.Len(t, infos, 1)
	require.Equal(t, asset, infos[0].Asset)
	require.Equal(t, uint64(2_000_000), infos[0].TotalVolume)
}

func TestHTTPErrorMapping(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	// Unsupported asset.
	status, _ := doJSON(t, server, http.MethodPost, "/v1/trades", "",
		map[string]interface{}{
			"participant": alice, "asset": asset, "amount": 1000,
		})
	require.Equal(t, http.StatusNotFound, status)

	// Owner gate.
	status, _ = doJSON(t, server, http.MethodPost, "/v1/operator/assets", "intruder",
		map[string]string{"asset": asset, "shareToken": shareToken})
	require.Equal(t, http.StatusForbidden, status)

	// Invalid asset identifier.
	status, _ = doJSON(t, server, http.MethodPost, "/v1/operator/assets", owner,
		map[string]string{"asset": "garbage", "shareToken": shareToken})
	require.Equal(t, http.StatusBadRequest, status)

	// Malformed body.
	req, err := http.NewRequest(
		http.MethodPost, server.URL+"/v1/trades",
		bytes.NewBufferString("{not json"),
	)
	require.NoError(t, err)
	res, err := server.Client().Do(req)
	require.NoError(t, err)
	res.Body.Close()
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Bad unit selector.
	path := fmt.Sprintf("/v1/rewards/%s/%s?unit=shares", asset, alice)
	status, _ = doJSON(t, server, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusBadRequest, status)
}
