// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-property-dex/internal/config"
	"github.com/MKhiriev/go-property-dex/internal/logger"
	"github.com/MKhiriev/go-property-dex/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rpcHandler answers a single JSON-RPC request. It returns either a result
// or an error object.
type rpcHandler func(t *testing.T, method string, params []json.RawMessage) (any, *ProviderError)

func newRPCServer(t *testing.T, handle rpcHandler) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req struct {
			JSONRPC string            `json:"jsonrpc"`
			ID      uint64            `json:"id"`
			Method  string            `json:"method"`
			Params  []json.RawMessage `json:"params"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2.0", req.JSONRPC)
		assert.NotZero(t, req.ID)

		result, rpcErr := handle(t, req.Method, req.Params)
		resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
		if rpcErr != nil {
			resp["error"] = rpcErr
		} else {
			resp["result"] = result
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// newTestProvider creates a jsonRPCProvider pointed at the test server.
func newTestProvider(t *testing.T, serverURL string) *jsonRPCProvider {
	t.Helper()
	p, err := NewWalletProvider(config.ClientWallet{
		ProviderURL:    serverURL,
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.(*jsonRPCProvider)
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewWalletProvider_NoURLMeansNoProvider(t *testing.T) {
	p, err := NewWalletProvider(config.ClientWallet{}, logger.Nop())

	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestNewWalletProvider_InvalidURL(t *testing.T) {
	_, err := NewWalletProvider(config.ClientWallet{ProviderURL: "http://"}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeURL(t *testing.T) {
	got, err := normalizeURL(" 127.0.0.1:8545/ ", "http")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8545", got)

	got, err = normalizeURL("localhost:8546/events", "ws")
	require.NoError(t, err)
	assert.Equal(t, "ws://localhost:8546/events", got)

	_, err = normalizeURL("", "http")
	assert.Error(t, err)
}

// ── accounts ────────────────────────────────────────────────────────────────

func TestAccounts_Success(t *testing.T) {
	srv := newRPCServer(t, func(t *testing.T, method string, params []json.RawMessage) (any, *ProviderError) {
		assert.Equal(t, "eth_accounts", method)
		assert.Empty(t, params)
		return []string{"0xabc0000000000000000000000000000000000001"}, nil
	})

	got, err := newTestProvider(t, srv.URL).Accounts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"0xabc0000000000000000000000000000000000001"}, got)
}

func TestAccounts_Empty(t *testing.T) {
	srv := newRPCServer(t, func(t *testing.T, method string, params []json.RawMessage) (any, *ProviderError) {
		return []string{}, nil
	})

	got, err := newTestProvider(t, srv.URL).Accounts(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRequestAccounts_UserRejected(t *testing.T) {
	srv := newRPCServer(t, func(t *testing.T, method string, params []json.RawMessage) (any, *ProviderError) {
		assert.Equal(t, "eth_requestAccounts", method)
		return nil, &ProviderError{Code: CodeUserRejected, Message: "User rejected the request."}
	})

	_, err := newTestProvider(t, srv.URL).RequestAccounts(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUserRejected)

	var providerErr *ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, CodeUserRejected, providerErr.Code)
}

// RequestAccounts waits for the user, so the request timeout must not apply.
func TestRequestAccounts_NotBoundedByRequestTimeout(t *testing.T) {
	srv := newRPCServer(t, func(t *testing.T, method string, params []json.RawMessage) (any, *ProviderError) {
		time.Sleep(150 * time.Millisecond)
		return []string{"0xabc0000000000000000000000000000000000001"}, nil
	})

	p := newTestProvider(t, srv.URL)
	p.timeout = 50 * time.Millisecond

	got, err := p.RequestAccounts(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestAccounts_BoundedByRequestTimeout(t *testing.T) {
	srv := newRPCServer(t, func(t *testing.T, method string, params []json.RawMessage) (any, *ProviderError) {
		time.Sleep(200 * time.Millisecond)
		return []string{}, nil
	})

	p := newTestProvider(t, srv.URL)
	p.timeout = 20 * time.Millisecond

	_, err := p.Accounts(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// ── chain ───────────────────────────────────────────────────────────────────

func TestChainID_DecodesHex(t *testing.T) {
	srv := newRPCServer(t, func(t *testing.T, method string, params []json.RawMessage) (any, *ProviderError) {
		assert.Equal(t, "eth_chainId", method)
		return "0x2105", nil
	})

	got, err := newTestProvider(t, srv.URL).ChainID(context.Background())

	require.NoError(t, err)
	assert.Equal(t, uint64(8453), got)
}

func TestChainID_InvalidHex(t *testing.T) {
	srv := newRPCServer(t, func(t *testing.T, method string, params []json.RawMessage) (any, *ProviderError) {
		return "base", nil
	})

	_, err := newTestProvider(t, srv.URL).ChainID(context.Background())

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestSwitchChain_SendsHexChainID(t *testing.T) {
	srv := newRPCServer(t, func(t *testing.T, method string, params []json.RawMessage) (any, *ProviderError) {
		assert.Equal(t, "wallet_switchEthereumChain", method)
		assert.Len(t, params, 1)
		assert.JSONEq(t, `{"chainId":"0x2105"}`, string(params[0]))
		return nil, nil
	})

	err := newTestProvider(t, srv.URL).SwitchChain(context.Background(), 8453)

	assert.NoError(t, err)
}

func TestSwitchChain_ChainNotAdded(t *testing.T) {
	srv := newRPCServer(t, func(t *testing.T, method string, params []json.RawMessage) (any, *ProviderError) {
		return nil, &ProviderError{Code: CodeUnrecognizedChainID, Message: "Unrecognized chain ID"}
	})

	err := newTestProvider(t, srv.URL).SwitchChain(context.Background(), 8453)

	assert.ErrorIs(t, err, ErrChainNotAdded)
	assert.NotErrorIs(t, err, ErrUserRejected)
}

func TestAddChain_SendsNetworkDescription(t *testing.T) {
	srv := newRPCServer(t, func(t *testing.T, method string, params []json.RawMessage) (any, *ProviderError) {
		assert.Equal(t, "wallet_addEthereumChain", method)
		assert.Len(t, params, 1)
		assert.JSONEq(t, `{
			"chainId": "0x2105",
			"chainName": "Base",
			"nativeCurrency": {"name": "ETH", "symbol": "ETH", "decimals": 18},
			"rpcUrls": ["https://mainnet.base.org"],
			"blockExplorerUrls": ["https://basescan.org"]
		}`, string(params[0]))
		return nil, nil
	})

	err := newTestProvider(t, srv.URL).AddChain(context.Background(), models.Network{
		ChainID:        8453,
		Name:           "Base",
		NativeCurrency: models.NativeCurrency{Name: "ETH", Symbol: "ETH", Decimals: 18},
		RPCURL:         "https://mainnet.base.org",
		ExplorerURL:    "https://basescan.org",
	})

	assert.NoError(t, err)
}

// ── balance / call ──────────────────────────────────────────────────────────

func TestBalance_Success(t *testing.T) {
	srv := newRPCServer(t, func(t *testing.T, method string, params []json.RawMessage) (any, *ProviderError) {
		assert.Equal(t, "eth_getBalance", method)
		assert.Len(t, params, 2)
		assert.JSONEq(t, `"0xabc0000000000000000000000000000000000001"`, string(params[0]))
		assert.JSONEq(t, `"latest"`, string(params[1]))
		return "0x14d1120d7b160000", nil // 1.5 ether
	})

	got, err := newTestProvider(t, srv.URL).Balance(context.Background(), "0xabc0000000000000000000000000000000000001")

	require.NoError(t, err)
	want, _ := new(big.Int).SetString("1500000000000000000", 10)
	assert.Equal(t, 0, want.Cmp(got))
}

func TestCall_EncodesAndDecodesData(t *testing.T) {
	srv := newRPCServer(t, func(t *testing.T, method string, params []json.RawMessage) (any, *ProviderError) {
		assert.Equal(t, "eth_call", method)
		assert.Len(t, params, 2)
		assert.JSONEq(t, `{"to":"0x61Dd008F1582631Aa68645fF92a1a5ECAedBeD19","data":"0x313ce567"}`, string(params[0]))
		return "0x0000000000000000000000000000000000000000000000000000000000000012", nil
	})

	got, err := newTestProvider(t, srv.URL).Call(context.Background(),
		"0x61Dd008F1582631Aa68645fF92a1a5ECAedBeD19", []byte{0x31, 0x3c, 0xe5, 0x67})

	require.NoError(t, err)
	require.Len(t, got, 32)
	assert.Equal(t, byte(18), got[31])
}

// ── transport errors ────────────────────────────────────────────────────────

func TestCall_ProviderUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestProvider(t, url).Accounts(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestCall_HTTPStatusErrors(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusBadRequest, want: ErrBadRequest},
		{status: http.StatusNotFound, want: ErrNotFound},
		{status: http.StatusInternalServerError, want: ErrInternalServerError},
		{status: http.StatusBadGateway, want: ErrProviderUnavailable},
		{status: http.StatusServiceUnavailable, want: ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("boom"))
			}))
			defer srv.Close()

			_, err := newTestProvider(t, srv.URL).ChainID(context.Background())

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCall_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := newTestProvider(t, srv.URL).ChainID(context.Background())

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestCall_CanceledContext(t *testing.T) {
	srv := newRPCServer(t, func(t *testing.T, method string, params []json.RawMessage) (any, *ProviderError) {
		return []string{}, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestProvider(t, srv.URL).RequestAccounts(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestSubscribe_NoEventsURL(t *testing.T) {
	srv := newRPCServer(t, func(t *testing.T, method string, params []json.RawMessage) (any, *ProviderError) {
		return nil, nil
	})

	events, err := newTestProvider(t, srv.URL).Subscribe(context.Background())

	require.NoError(t, err)
	assert.Nil(t, events)
}

func TestProviderError_Is(t *testing.T) {
	assert.ErrorIs(t, &ProviderError{Code: CodeUserRejected}, ErrUserRejected)
	assert.ErrorIs(t, &ProviderError{Code: CodeUnrecognizedChainID}, ErrChainNotAdded)
	assert.ErrorIs(t, &ProviderError{Code: CodeUnsupportedMethod}, ErrUnsupportedMethod)
	assert.ErrorIs(t, &ProviderError{Code: CodeDisconnected}, ErrProviderUnavailable)
	assert.NotErrorIs(t, &ProviderError{Code: -32603}, ErrUserRejected)
	assert.Equal(t, "provider error 4001: denied", (&ProviderError{Code: 4001, Message: "denied"}).Error())
}
