// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-property-dex/internal/adapter"
	"github.com/MKhiriev/go-property-dex/internal/logger"
	"github.com/MKhiriev/go-property-dex/internal/mock"
	"github.com/MKhiriev/go-property-dex/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testAccount      = "0x1111111111111111111111111111111111111111"
	testOtherAccount = "0x2222222222222222222222222222222222222222"
	testChainID      = 8453
)

var (
	testNetwork = models.Network{
		ChainID: testChainID,
		Name:    "Base",
		NativeCurrency: models.NativeCurrency{
			Name:     "Ether",
			Symbol:   "ETH",
			Decimals: 18,
		},
		RPCURL:      "https://mainnet.base.org",
		ExplorerURL: "https://basescan.org",
	}
	testContracts = models.Contracts{
		GovernanceToken: "0x61Dd00000000000000000000000000000000eD19",
		StableToken:     "0x8335000000000000000000000000000000002913",
		TokenCreator:    "0x01A3000000000000000000000000000000000256",
	}
)

// fakeProvider is a scripted wallet. RequestAccounts authorizes the scripted
// accounts so later Accounts calls see them, like a real wallet does.
type fakeProvider struct {
	mu sync.Mutex

	authorized   []string
	grant        []string
	requestErr   error
	requestGate  chan struct{}
	chainID      uint64
	chainUnknown bool
	switchErr    error
	addErr       error
	native       *big.Int
	balanceErr   error
	events       chan models.ProviderEvent

	requestCalls   int
	switchCalls    int
	addCalls       int
	balanceCalls   int
	subscribeCalls int
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		grant:   []string{testAccount},
		chainID: testChainID,
		native:  mustBig("1500000000000000000"),
		events:  make(chan models.ProviderEvent, 8),
	}
}

func (f *fakeProvider) Accounts(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.authorized...), nil
}

func (f *fakeProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	f.requestCalls++
	gate := f.requestGate
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.requestErr != nil {
		return nil, f.requestErr
	}
	f.authorized = append([]string(nil), f.grant...)
	return append([]string(nil), f.grant...), nil
}

func (f *fakeProvider) ChainID(_ context.Context) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.chainID, nil
}

func (f *fakeProvider) SwitchChain(_ context.Context, chainID uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.switchCalls++
	if f.switchErr != nil {
		return f.switchErr
	}
	if f.chainUnknown {
		return &adapter.ProviderError{Code: adapter.CodeUnrecognizedChainID, Message: "Unrecognized chain ID"}
	}
	f.chainID = chainID
	return nil
}

func (f *fakeProvider) AddChain(_ context.Context, _ models.Network) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addCalls++
	if f.addErr != nil {
		return f.addErr
	}
	f.chainUnknown = false
	return nil
}

func (f *fakeProvider) Balance(_ context.Context, _ string) (*big.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.balanceCalls++
	if f.balanceErr != nil {
		return nil, f.balanceErr
	}
	return new(big.Int).Set(f.native), nil
}

func (f *fakeProvider) Call(_ context.Context, _ string, _ []byte) ([]byte, error) {
	return nil, adapter.ErrUnsupportedMethod
}

func (f *fakeProvider) Subscribe(_ context.Context) (<-chan models.ProviderEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subscribeCalls++
	return f.events, nil
}

// restartEvents closes the current event stream and returns the one handed
// out on the next Subscribe.
func (f *fakeProvider) restartEvents() chan models.ProviderEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	old := f.events
	f.events = make(chan models.ProviderEvent, 8)
	close(old)
	return f.events
}

func (f *fakeProvider) subscriptions() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.subscribeCalls
}

func (f *fakeProvider) Close() error { return nil }

func (f *fakeProvider) set(fn func(f *fakeProvider)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}

func (f *fakeProvider) counts() (request, switches, adds, balances int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requestCalls, f.switchCalls, f.addCalls, f.balanceCalls
}

type tokenState struct {
	decimals uint8
	balance  *big.Int
}

// fakeTokens serves decimals and balances per token address.
type fakeTokens struct {
	mu     sync.Mutex
	tokens map[string]tokenState
	err    error
	// hang makes Decimals block until its context is canceled.
	hang   bool
	hanged int
}

func newFakeTokens() *fakeTokens {
	return &fakeTokens{tokens: map[string]tokenState{
		testContracts.GovernanceToken: {decimals: 18, balance: mustBig("2000000000000000000")},
		testContracts.StableToken:     {decimals: 6, balance: mustBig("3000000")},
	}}
}

func (f *fakeTokens) Decimals(ctx context.Context, token string) (uint8, error) {
	f.mu.Lock()
	if f.hang {
		f.hanged++
		f.mu.Unlock()
		<-ctx.Done()
		return 0, ctx.Err()
	}
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return f.tokens[token].decimals, nil
}

func (f *fakeTokens) Symbol(_ context.Context, _ string) (string, error) {
	return "", adapter.ErrUnsupportedMethod
}

func (f *fakeTokens) BalanceOf(_ context.Context, token, _ string) (*big.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return new(big.Int).Set(f.tokens[token].balance), nil
}

func (f *fakeTokens) setBalance(token, raw string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st := f.tokens[token]
	st.balance = mustBig(raw)
	f.tokens[token] = st
}

func (f *fakeTokens) setHang(hang bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hang = hang
}

func (f *fakeTokens) hangingCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hanged
}

func (f *fakeTokens) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func mustBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad big int " + s)
	}
	return v
}

// startWalletService runs the control loop until the test ends.
func startWalletService(t *testing.T, provider adapter.WalletProvider, tokens adapter.TokenReader) WalletService {
	t.Helper()
	return runWalletService(t, NewWalletService(provider, tokens, testNetwork, testContracts, logger.Nop()))
}

func runWalletService(t *testing.T, svc WalletService) WalletService {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = svc.Run(ctx)
	}()

	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Error("session manager did not stop")
		}
	})
	return svc
}

// waitForUpdate reads updates until one with reason arrives.
func waitForUpdate(t *testing.T, svc WalletService, reason models.UpdateReason) models.SessionUpdate {
	t.Helper()

	timeout := time.After(2 * time.Second)
	for {
		select {
		case u := <-svc.Updates():
			if u.Reason == reason {
				return u
			}
		case <-timeout:
			t.Fatalf("no %s update received", reason)
			return models.SessionUpdate{}
		}
	}
}

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// ── Connect ──────────────────────────────────────────────────────────────────

func TestWalletService_Connect_ReadsBalances(t *testing.T) {
	svc := startWalletService(t, newFakeProvider(), newFakeTokens())

	session, err := svc.Connect(testCtx(t))
	require.NoError(t, err)

	assert.True(t, session.Connected)
	assert.Equal(t, testAccount, session.Address)
	assert.Equal(t, uint64(testChainID), session.ChainID)
	assert.Equal(t, models.Balances{Native: "1.5", GovernanceToken: "2.0", StableToken: "3.0"}, session.Balances)
	assert.Equal(t, session, svc.Session())

	u := waitForUpdate(t, svc, models.ReasonConnected)
	assert.Equal(t, session, u.Session)
	assert.NoError(t, u.Err)
}

func TestWalletService_Connect_NoProvider(t *testing.T) {
	svc := startWalletService(t, nil, nil)

	session, err := svc.Connect(testCtx(t))
	require.ErrorIs(t, err, ErrProviderUnavailable)
	assert.Equal(t, models.DefaultSession(), session)

	u := waitForUpdate(t, svc, models.ReasonConnectFailed)
	assert.ErrorIs(t, u.Err, ErrProviderUnavailable)
}

func TestWalletService_Connect_UserRejected(t *testing.T) {
	p := newFakeProvider()
	p.requestErr = &adapter.ProviderError{Code: adapter.CodeUserRejected, Message: "User rejected the request."}
	svc := startWalletService(t, p, newFakeTokens())

	_, err := svc.Connect(testCtx(t))
	require.ErrorIs(t, err, ErrUserRejected)
	assert.Equal(t, models.DefaultSession(), svc.Session())
}

func TestWalletService_Connect_SwitchRejected_StaysDisconnected(t *testing.T) {
	p := newFakeProvider()
	p.chainID = 1
	p.switchErr = &adapter.ProviderError{Code: adapter.CodeUserRejected, Message: "User rejected the request."}
	svc := startWalletService(t, p, newFakeTokens())

	_, err := svc.Connect(testCtx(t))
	require.ErrorIs(t, err, ErrWrongNetwork)
	assert.ErrorIs(t, err, ErrUserRejected)
	assert.Equal(t, models.DefaultSession(), svc.Session())

	_, switches, adds, balances := p.counts()
	assert.Equal(t, 1, switches)
	assert.Equal(t, 0, adds)
	assert.Equal(t, 0, balances, "balances must not be read on the wrong network")
}

func TestWalletService_Connect_UnknownChain_AddsThenSwitches(t *testing.T) {
	p := newFakeProvider()
	p.chainID = 1
	p.chainUnknown = true
	svc := startWalletService(t, p, newFakeTokens())

	session, err := svc.Connect(testCtx(t))
	require.NoError(t, err)
	assert.True(t, session.Connected)
	assert.Equal(t, uint64(testChainID), session.ChainID)

	_, switches, adds, _ := p.counts()
	assert.Equal(t, 2, switches)
	assert.Equal(t, 1, adds)
}

func TestWalletService_Connect_AddChainFails(t *testing.T) {
	p := newFakeProvider()
	p.chainID = 1
	p.chainUnknown = true
	p.addErr = &adapter.ProviderError{Code: adapter.CodeUserRejected, Message: "rejected"}
	svc := startWalletService(t, p, newFakeTokens())

	_, err := svc.Connect(testCtx(t))
	require.ErrorIs(t, err, ErrWrongNetwork)
	assert.False(t, svc.Session().Connected)
}

func TestWalletService_Connect_BalanceReadFailure_NothingCommitted(t *testing.T) {
	tokens := newFakeTokens()
	tokens.setErr(errors.New("execution reverted"))
	svc := startWalletService(t, newFakeProvider(), tokens)

	_, err := svc.Connect(testCtx(t))
	require.ErrorIs(t, err, ErrBalanceRead)
	assert.Equal(t, models.DefaultSession(), svc.Session())
}

func TestWalletService_Connect_ConcurrentCallsCoalesce(t *testing.T) {
	p := newFakeProvider()
	gate := make(chan struct{})
	p.requestGate = gate
	svc := startWalletService(t, p, newFakeTokens())
	ctx := testCtx(t)

	const callers = 3
	var wg sync.WaitGroup
	results := make([]models.Session, callers)
	errs := make([]error, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = svc.Connect(ctx)
		}()
	}

	require.Eventually(t, func() bool {
		request, _, _, _ := p.counts()
		return request >= 1
	}, time.Second, 5*time.Millisecond)
	// give the remaining callers time to queue behind the first attempt
	time.Sleep(20 * time.Millisecond)
	close(gate)
	wg.Wait()

	request, _, _, _ := p.counts()
	assert.Equal(t, 1, request, "one authorization prompt for all callers")
	for i := range callers {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0], results[i])
	}
	assert.True(t, results[0].Connected)
}

// ── Disconnect ───────────────────────────────────────────────────────────────

func TestWalletService_Disconnect_RestoresDefaults(t *testing.T) {
	svc := startWalletService(t, newFakeProvider(), newFakeTokens())
	ctx := testCtx(t)

	_, err := svc.Connect(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Disconnect(ctx))
	assert.Equal(t, models.DefaultSession(), svc.Session())

	u := waitForUpdate(t, svc, models.ReasonDisconnected)
	assert.Equal(t, models.DefaultSession(), u.Session)
}

func TestWalletService_Disconnect_CancelsInFlightConnect(t *testing.T) {
	p := newFakeProvider()
	p.requestGate = make(chan struct{})
	svc := startWalletService(t, p, newFakeTokens())
	ctx := testCtx(t)

	errCh := make(chan error, 1)
	go func() {
		_, err := svc.Connect(ctx)
		errCh <- err
	}()

	require.Eventually(t, func() bool {
		request, _, _, _ := p.counts()
		return request == 1
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, svc.Disconnect(ctx))

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, ErrConnectCanceled)
	case <-time.After(time.Second):
		t.Fatal("connect was not answered after disconnect")
	}
	assert.Equal(t, models.DefaultSession(), svc.Session())
}

// ── RefreshBalances ──────────────────────────────────────────────────────────

func TestWalletService_RefreshBalances_DisconnectedIsNoop(t *testing.T) {
	p := newFakeProvider()
	svc := startWalletService(t, p, newFakeTokens())

	require.NoError(t, svc.RefreshBalances(testCtx(t)))
	assert.Equal(t, models.DefaultSession(), svc.Session())

	_, _, _, balances := p.counts()
	assert.Equal(t, 0, balances)
}

func TestWalletService_RefreshBalances_OverwritesOnlyBalances(t *testing.T) {
	tokens := newFakeTokens()
	svc := startWalletService(t, newFakeProvider(), tokens)
	ctx := testCtx(t)

	before, err := svc.Connect(ctx)
	require.NoError(t, err)

	tokens.setBalance(testContracts.StableToken, "12500000")
	require.NoError(t, svc.RefreshBalances(ctx))

	after := svc.Session()
	assert.Equal(t, before.Address, after.Address)
	assert.Equal(t, before.ChainID, after.ChainID)
	assert.Equal(t, "12.5", after.Balances.StableToken)
	assert.Equal(t, before.Balances.Native, after.Balances.Native)

	waitForUpdate(t, svc, models.ReasonBalancesRefreshed)
}

func TestWalletService_RefreshBalances_FailureKeepsLastBalances(t *testing.T) {
	p := newFakeProvider()
	svc := startWalletService(t, p, newFakeTokens())
	ctx := testCtx(t)

	before, err := svc.Connect(ctx)
	require.NoError(t, err)

	p.set(func(f *fakeProvider) { f.balanceErr = errors.New("timeout") })
	err = svc.RefreshBalances(ctx)
	require.ErrorIs(t, err, ErrBalanceRead)
	assert.Equal(t, before, svc.Session())

	u := waitForUpdate(t, svc, models.ReasonRefreshFailed)
	assert.ErrorIs(t, u.Err, ErrBalanceRead)
	assert.Equal(t, before, u.Session)
}

func TestWalletService_RefreshBalances_AnsweredByReconnect(t *testing.T) {
	p := newFakeProvider()
	tokens := newFakeTokens()
	svc := startWalletService(t, p, tokens)
	ctx := testCtx(t)

	_, err := svc.Connect(ctx)
	require.NoError(t, err)
	waitForUpdate(t, svc, models.ReasonConnected)

	tokens.setHang(true)
	refreshed := make(chan error, 1)
	go func() { refreshed <- svc.RefreshBalances(ctx) }()
	require.Eventually(t, func() bool { return tokens.hangingCalls() == 1 }, time.Second, 5*time.Millisecond)

	gate := make(chan struct{})
	p.set(func(f *fakeProvider) {
		f.grant = []string{testOtherAccount}
		f.requestGate = gate
	})
	p.events <- models.ProviderEvent{Kind: models.AccountsChanged, Accounts: []string{testOtherAccount}}
	require.Eventually(t, func() bool {
		request, _, _, _ := p.counts()
		return request == 2
	}, time.Second, 5*time.Millisecond)

	tokens.setHang(false)
	close(gate)

	select {
	case err := <-refreshed:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("refresh caller was not answered after the reconnect")
	}

	session := svc.Session()
	assert.Equal(t, testOtherAccount, session.Address)
	assert.Equal(t, models.Balances{Native: "1.5", GovernanceToken: "2.0", StableToken: "3.0"}, session.Balances)

	// a later refresh starts a fresh attempt
	require.NoError(t, svc.RefreshBalances(ctx))
}

// ── Auto-connect ─────────────────────────────────────────────────────────────

func TestWalletService_AutoConnect_AuthorizedAccount(t *testing.T) {
	p := newFakeProvider()
	p.authorized = []string{testAccount}
	svc := startWalletService(t, p, newFakeTokens())

	u := waitForUpdate(t, svc, models.ReasonConnected)
	assert.True(t, u.Session.Connected)
	assert.Equal(t, testAccount, u.Session.Address)
}

func TestWalletService_AutoConnect_NoAccounts_NoPrompt(t *testing.T) {
	p := newFakeProvider()
	svc := startWalletService(t, p, newFakeTokens())

	// any command is served after the startup probe was started
	require.NoError(t, svc.RefreshBalances(testCtx(t)))
	time.Sleep(20 * time.Millisecond)

	request, _, _, _ := p.counts()
	assert.Equal(t, 0, request)
	assert.Equal(t, models.DefaultSession(), svc.Session())
}

// ── Provider events ──────────────────────────────────────────────────────────

func TestWalletService_AccountsChangedEmpty_Disconnects(t *testing.T) {
	p := newFakeProvider()
	svc := startWalletService(t, p, newFakeTokens())

	_, err := svc.Connect(testCtx(t))
	require.NoError(t, err)

	p.events <- models.ProviderEvent{Kind: models.AccountsChanged}

	u := waitForUpdate(t, svc, models.ReasonDisconnected)
	assert.NoError(t, u.Err)
	assert.Equal(t, models.DefaultSession(), u.Session)
	assert.Equal(t, models.DefaultSession(), svc.Session())
}

func TestWalletService_AccountsChanged_Reconnects(t *testing.T) {
	p := newFakeProvider()
	svc := startWalletService(t, p, newFakeTokens())

	_, err := svc.Connect(testCtx(t))
	require.NoError(t, err)
	waitForUpdate(t, svc, models.ReasonConnected)

	p.set(func(f *fakeProvider) { f.grant = []string{testOtherAccount} })
	p.events <- models.ProviderEvent{Kind: models.AccountsChanged, Accounts: []string{testOtherAccount}}

	u := waitForUpdate(t, svc, models.ReasonConnected)
	assert.Equal(t, testOtherAccount, u.Session.Address)
	assert.Equal(t, testOtherAccount, svc.Session().Address)
}

func TestWalletService_AccountsChanged_SameAccountIgnored(t *testing.T) {
	p := newFakeProvider()
	svc := startWalletService(t, p, newFakeTokens())

	_, err := svc.Connect(testCtx(t))
	require.NoError(t, err)

	p.events <- models.ProviderEvent{Kind: models.AccountsChanged, Accounts: []string{testAccount}}
	require.NoError(t, svc.RefreshBalances(testCtx(t)))

	request, _, _, _ := p.counts()
	assert.Equal(t, 1, request)
}

func TestWalletService_ChainChanged_ReloadsSession(t *testing.T) {
	p := newFakeProvider()
	svc := startWalletService(t, p, newFakeTokens())

	_, err := svc.Connect(testCtx(t))
	require.NoError(t, err)
	waitForUpdate(t, svc, models.ReasonConnected)

	p.events <- models.ProviderEvent{Kind: models.ChainChanged, ChainID: testChainID}

	reloaded := waitForUpdate(t, svc, models.ReasonReloaded)
	assert.Equal(t, models.DefaultSession(), reloaded.Session)

	reconnected := waitForUpdate(t, svc, models.ReasonConnected)
	assert.True(t, reconnected.Session.Connected)
}

func TestWalletService_ProviderDisconnected_Disconnects(t *testing.T) {
	p := newFakeProvider()
	svc := startWalletService(t, p, newFakeTokens())

	_, err := svc.Connect(testCtx(t))
	require.NoError(t, err)

	p.events <- models.ProviderEvent{Kind: models.ProviderDisconnected}

	waitForUpdate(t, svc, models.ReasonDisconnected)
	assert.False(t, svc.Session().Connected)
}

func TestWalletService_EventStreamClosed_Resubscribes(t *testing.T) {
	p := newFakeProvider()
	w := NewWalletService(p, newFakeTokens(), testNetwork, testContracts, logger.Nop()).(*walletService)
	w.resubscribeDelay = 10 * time.Millisecond
	svc := runWalletService(t, w)

	_, err := svc.Connect(testCtx(t))
	require.NoError(t, err)
	require.Equal(t, 1, p.subscriptions())

	events := p.restartEvents()
	require.Eventually(t, func() bool { return p.subscriptions() == 2 }, time.Second, 5*time.Millisecond)

	events <- models.ProviderEvent{Kind: models.AccountsChanged}
	waitForUpdate(t, svc, models.ReasonDisconnected)
	assert.Equal(t, models.DefaultSession(), svc.Session())
}

func TestWalletService_SubscribeFailure_Retries(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockWalletProvider(ctrl)
	resubscribed := make(chan struct{})

	provider.EXPECT().Accounts(gomock.Any()).Return(nil, nil).AnyTimes()
	gomock.InOrder(
		provider.EXPECT().Subscribe(gomock.Any()).Return(nil, errors.New("dial tcp: connection refused")),
		provider.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(context.Context) (<-chan models.ProviderEvent, error) {
			close(resubscribed)
			return make(chan models.ProviderEvent), nil
		}),
	)

	w := NewWalletService(provider, newFakeTokens(), testNetwork, testContracts, logger.Nop()).(*walletService)
	w.resubscribeDelay = 10 * time.Millisecond
	runWalletService(t, w)

	select {
	case <-resubscribed:
	case <-time.After(time.Second):
		t.Fatal("event stream was not reopened after a failed subscribe")
	}
}

// ── Lifecycle ────────────────────────────────────────────────────────────────

func TestWalletService_Stopped_ReturnsErrManagerStopped(t *testing.T) {
	svc := NewWalletService(newFakeProvider(), newFakeTokens(), testNetwork, testContracts, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()
	cancel()
	require.NoError(t, <-done)

	_, err := svc.Connect(context.Background())
	assert.ErrorIs(t, err, ErrManagerStopped)
	assert.ErrorIs(t, svc.Disconnect(context.Background()), ErrManagerStopped)
}

func TestWalletService_Run_Twice(t *testing.T) {
	svc := startWalletService(t, newFakeProvider(), newFakeTokens())

	// wait until the first Run serves commands
	require.NoError(t, svc.RefreshBalances(testCtx(t)))
	assert.ErrorIs(t, svc.Run(context.Background()), ErrAlreadyRunning)
}

func TestWalletService_Publish_DropsOldest(t *testing.T) {
	svc := NewWalletService(nil, nil, testNetwork, testContracts, logger.Nop()).(*walletService)

	total := defaultUpdatesBuffer + 4
	for i := range total {
		svc.publish(models.SessionUpdate{Session: models.Session{ChainID: uint64(i)}})
	}

	first := <-svc.Updates()
	assert.Equal(t, uint64(4), first.Session.ChainID)
	assert.Len(t, svc.Updates(), defaultUpdatesBuffer-1)
}

// ── gomock provider ──────────────────────────────────────────────────────────

func TestWalletService_Connect_CallSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockWalletProvider(ctrl)
	tokens := mock.NewMockTokenReader(ctrl)

	provider.EXPECT().Subscribe(gomock.Any()).Return(nil, nil)
	provider.EXPECT().Accounts(gomock.Any()).Return(nil, nil)

	gomock.InOrder(
		provider.EXPECT().RequestAccounts(gomock.Any()).Return([]string{testAccount}, nil),
		provider.EXPECT().ChainID(gomock.Any()).Return(uint64(10), nil),
		provider.EXPECT().SwitchChain(gomock.Any(), uint64(testChainID)).
			Return(&adapter.ProviderError{Code: adapter.CodeUnrecognizedChainID}),
		provider.EXPECT().AddChain(gomock.Any(), testNetwork).Return(nil),
		provider.EXPECT().SwitchChain(gomock.Any(), uint64(testChainID)).Return(nil),
		provider.EXPECT().Balance(gomock.Any(), testAccount).Return(mustBig("0"), nil),
		tokens.EXPECT().Decimals(gomock.Any(), testContracts.GovernanceToken).Return(uint8(18), nil),
		tokens.EXPECT().BalanceOf(gomock.Any(), testContracts.GovernanceToken, testAccount).Return(mustBig("0"), nil),
		tokens.EXPECT().Decimals(gomock.Any(), testContracts.StableToken).Return(uint8(6), nil),
		tokens.EXPECT().BalanceOf(gomock.Any(), testContracts.StableToken, testAccount).Return(mustBig("0"), nil),
	)

	svc := startWalletService(t, provider, tokens)

	session, err := svc.Connect(testCtx(t))
	require.NoError(t, err)
	assert.Equal(t, uint64(testChainID), session.ChainID)
	assert.Equal(t, models.Balances{Native: "0.0", GovernanceToken: "0.0", StableToken: "0.0"}, session.Balances)
}
