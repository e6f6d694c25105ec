// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-property-dex/internal/adapter"
	"github.com/MKhiriev/go-property-dex/internal/logger"
	"github.com/MKhiriev/go-property-dex/internal/utils"
	"github.com/MKhiriev/go-property-dex/models"
)

// defaultUpdatesBuffer is the capacity of the Updates channel.
const defaultUpdatesBuffer = 16

// Delays between attempts to reopen the provider event stream. The delay
// doubles after every failed attempt and resets once an event arrives.
const (
	defaultResubscribeDelay = time.Second
	maxResubscribeDelay     = 30 * time.Second
)

type commandKind int

const (
	cmdConnect commandKind = iota + 1
	cmdDisconnect
	cmdRefresh
)

type command struct {
	kind  commandKind
	reply chan commandResult
}

type commandResult struct {
	session models.Session
	err     error
}

// attempt is a connect or refresh running outside the control loop. Every
// caller waiting for it is answered when it completes or is superseded.
type attempt struct {
	gen     uint64
	silent  bool
	cancel  context.CancelFunc
	waiters []chan commandResult
}

func (a *attempt) answer(session models.Session, err error) {
	for _, w := range a.waiters {
		w <- commandResult{session: session, err: err}
	}
	a.waiters = nil
}

type attemptOutcome struct {
	gen      uint64
	session  models.Session
	balances models.Balances
	err      error
}

// loopState is owned by the control loop goroutine.
type loopState struct {
	session models.Session
	gen     uint64
	connect *attempt
	refresh *attempt
}

type walletService struct {
	provider  adapter.WalletProvider
	tokens    adapter.TokenReader
	network   models.Network
	contracts models.Contracts
	logger    *logger.Logger

	resubscribeDelay time.Duration

	commands chan command
	outcomes chan attemptOutcome
	updates  chan models.SessionUpdate
	done     chan struct{}
	started  atomic.Bool
	wg       sync.WaitGroup

	mu      sync.RWMutex
	current models.Session
}

// NewWalletService creates the session manager. provider may be nil, in
// which case every connect fails with ErrProviderUnavailable. The manager is
// idle until Run is called.
func NewWalletService(
	provider adapter.WalletProvider,
	tokens adapter.TokenReader,
	network models.Network,
	contracts models.Contracts,
	logger *logger.Logger,
) WalletService {
	if tokens == nil {
		tokens = adapter.NewTokenReader(provider)
	}

	return &walletService{
		provider:  provider,
		tokens:    tokens,
		network:   network,
		contracts: contracts,
		logger:    logger,

		resubscribeDelay: defaultResubscribeDelay,

		commands: make(chan command),
		outcomes: make(chan attemptOutcome),
		updates:  make(chan models.SessionUpdate, defaultUpdatesBuffer),
		done:     make(chan struct{}),
		current:  models.DefaultSession(),
	}
}

// Run implements WalletService.
func (s *walletService) Run(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	log := s.logger.GetChildLogger()
	log.Info().Str("func", "walletService.Run").Uint64("chain_id", s.network.ChainID).Msg("session manager started")

	st := &loopState{session: models.DefaultSession()}
	delay := s.resubscribeDelay
	var resubscribe <-chan time.Time

	events, retry := s.subscribe(ctx)
	if retry {
		resubscribe = time.After(delay)
	}
	s.startConnect(ctx, st, true, nil)

	for {
		select {
		case <-ctx.Done():
			s.shutdown(st)
			log.Info().Str("func", "walletService.Run").Msg("session manager stopped")
			return nil

		case cmd := <-s.commands:
			s.handleCommand(ctx, st, cmd)

		case out := <-s.outcomes:
			s.handleOutcome(st, out)

		case ev, ok := <-events:
			if !ok {
				log.Warn().Str("func", "walletService.Run").Dur("retry_in", delay).Msg("provider event stream closed")
				events = nil
				resubscribe = time.After(delay)
				delay = min(2*delay, maxResubscribeDelay)
				continue
			}
			delay = s.resubscribeDelay
			s.handleEvent(ctx, st, ev)

		case <-resubscribe:
			resubscribe = nil
			events, retry = s.subscribe(ctx)
			if retry {
				resubscribe = time.After(delay)
				delay = min(2*delay, maxResubscribeDelay)
			}
		}
	}
}

// Connect implements WalletService.
func (s *walletService) Connect(ctx context.Context) (models.Session, error) {
	res, err := s.request(ctx, cmdConnect)
	if err != nil {
		return s.Session(), err
	}
	return res.session, res.err
}

// Disconnect implements WalletService.
func (s *walletService) Disconnect(ctx context.Context) error {
	_, err := s.request(ctx, cmdDisconnect)
	return err
}

// RefreshBalances implements WalletService.
func (s *walletService) RefreshBalances(ctx context.Context) error {
	res, err := s.request(ctx, cmdRefresh)
	if err != nil {
		return err
	}
	return res.err
}

// Session implements WalletService.
func (s *walletService) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Updates implements WalletService.
func (s *walletService) Updates() <-chan models.SessionUpdate {
	return s.updates
}

// request sends a command to the control loop and waits for its answer.
func (s *walletService) request(ctx context.Context, kind commandKind) (commandResult, error) {
	reply := make(chan commandResult, 1)

	select {
	case s.commands <- command{kind: kind, reply: reply}:
	case <-ctx.Done():
		return commandResult{}, ctx.Err()
	case <-s.done:
		return commandResult{}, ErrManagerStopped
	}

	select {
	case res := <-reply:
		return res, nil
	case <-ctx.Done():
		return commandResult{}, ctx.Err()
	case <-s.done:
		return commandResult{}, ErrManagerStopped
	}
}

// subscribe opens the provider event stream. retry reports a failed attempt;
// a provider without notifications returns a nil stream and no retry.
func (s *walletService) subscribe(ctx context.Context) (events <-chan models.ProviderEvent, retry bool) {
	if s.provider == nil {
		return nil, false
	}

	events, err := s.provider.Subscribe(ctx)
	if err != nil {
		s.logger.Warn().Str("func", "walletService.subscribe").Err(err).Msg("provider notifications unavailable")
		return nil, true
	}
	return events, false
}

func (s *walletService) handleCommand(ctx context.Context, st *loopState, cmd command) {
	switch cmd.kind {
	case cmdConnect:
		if st.connect != nil && !st.connect.silent {
			st.connect.waiters = append(st.connect.waiters, cmd.reply)
			return
		}
		// A silent probe never prompts; an explicit request replaces it.
		var waiters []chan commandResult
		if st.connect != nil {
			waiters = s.cancelAttempt(st, st.connect)
		}
		s.startConnect(ctx, st, false, append(waiters, cmd.reply))

	case cmdDisconnect:
		s.reset(st, models.ReasonDisconnected, false)
		cmd.reply <- commandResult{session: st.session}

	case cmdRefresh:
		if !st.session.Connected {
			cmd.reply <- commandResult{session: st.session}
			return
		}
		if st.refresh != nil {
			st.refresh.waiters = append(st.refresh.waiters, cmd.reply)
			return
		}
		s.startRefresh(ctx, st, cmd.reply)
	}
}

func (s *walletService) handleEvent(ctx context.Context, st *loopState, ev models.ProviderEvent) {
	log := s.logger.GetChildLogger()

	switch ev.Kind {
	case models.AccountsChanged:
		if len(ev.Accounts) == 0 {
			if st.session.Connected || st.connect != nil {
				log.Info().Str("func", "walletService.handleEvent").Msg("wallet reported no accounts, disconnecting")
				s.reset(st, models.ReasonDisconnected, false)
			}
			return
		}
		if !st.session.Connected || strings.EqualFold(ev.Accounts[0], st.session.Address) {
			return
		}
		log.Info().Str("func", "walletService.handleEvent").
			Str("account", utils.ShortAddress(ev.Accounts[0])).
			Msg("account changed, reconnecting")

		var waiters []chan commandResult
		if st.connect != nil {
			waiters = s.cancelAttempt(st, st.connect)
		}
		s.startConnect(ctx, st, false, waiters)

	case models.ChainChanged:
		log.Info().Str("func", "walletService.handleEvent").Uint64("chain_id", ev.ChainID).Msg("chain changed, reloading session")
		waiters := s.reset(st, models.ReasonReloaded, true)
		s.startConnect(ctx, st, true, waiters)

	case models.ProviderDisconnected:
		if st.session.Connected || st.connect != nil {
			log.Info().Str("func", "walletService.handleEvent").Msg("provider disconnected")
			s.reset(st, models.ReasonDisconnected, false)
		}
	}
}

func (s *walletService) handleOutcome(st *loopState, out attemptOutcome) {
	log := s.logger.GetChildLogger()

	switch {
	case st.connect != nil && st.connect.gen == out.gen:
		a := st.connect
		st.connect = nil
		a.cancel()

		if out.err != nil {
			if a.silent && (errors.Is(out.err, ErrNoAccounts) || errors.Is(out.err, ErrProviderUnavailable)) {
				log.Debug().Str("func", "walletService.handleOutcome").Err(out.err).Msg("auto-connect skipped, staying disconnected")
				a.answer(st.session, out.err)
				return
			}
			log.Error().Str("func", "walletService.handleOutcome").Err(out.err).Msg("connect failed")
			s.publish(models.SessionUpdate{Session: st.session, Reason: models.ReasonConnectFailed, Err: out.err})
			a.answer(st.session, out.err)
			return
		}

		var refreshWaiters []chan commandResult
		if st.refresh != nil {
			refreshWaiters = s.cancelAttempt(st, st.refresh)
		}
		s.commit(st, out.session)
		log.Info().Str("func", "walletService.handleOutcome").
			Str("address", utils.ShortAddress(out.session.Address)).
			Msg("wallet connected")
		s.publish(models.SessionUpdate{Session: st.session, Reason: models.ReasonConnected})
		a.answer(st.session, nil)
		// the new session carries freshly read balances
		for _, ch := range refreshWaiters {
			ch <- commandResult{session: st.session}
		}

	case st.refresh != nil && st.refresh.gen == out.gen:
		a := st.refresh
		st.refresh = nil
		a.cancel()

		if out.err != nil {
			log.Error().Str("func", "walletService.handleOutcome").Err(out.err).Msg("balance refresh failed, keeping last known balances")
			s.publish(models.SessionUpdate{Session: st.session, Reason: models.ReasonRefreshFailed, Err: out.err})
			a.answer(st.session, out.err)
			return
		}

		session := st.session
		session.Balances = out.balances
		s.commit(st, session)
		s.publish(models.SessionUpdate{Session: st.session, Reason: models.ReasonBalancesRefreshed})
		a.answer(st.session, nil)

	default:
		log.Debug().Str("func", "walletService.handleOutcome").Uint64("gen", out.gen).Msg("discarding stale result")
	}
}

// reset cancels in-flight work and returns the session to its defaults.
// With keepWaiters the callers waiting on a cancelled connect are returned
// instead of being answered, so they can follow the next attempt.
func (s *walletService) reset(st *loopState, reason models.UpdateReason, keepWaiters bool) []chan commandResult {
	var waiters []chan commandResult

	if st.connect != nil {
		w := s.cancelAttempt(st, st.connect)
		if keepWaiters {
			waiters = w
		} else {
			for _, ch := range w {
				ch <- commandResult{session: models.DefaultSession(), err: ErrConnectCanceled}
			}
		}
	}
	if st.refresh != nil {
		for _, ch := range s.cancelAttempt(st, st.refresh) {
			ch <- commandResult{session: models.DefaultSession()}
		}
	}

	s.commit(st, models.DefaultSession())
	s.publish(models.SessionUpdate{Session: st.session, Reason: reason})

	return waiters
}

// cancelAttempt stops a and detaches it from the loop state. Its outcome, if
// it still arrives, is discarded.
func (s *walletService) cancelAttempt(st *loopState, a *attempt) []chan commandResult {
	a.cancel()
	switch a {
	case st.connect:
		st.connect = nil
	case st.refresh:
		st.refresh = nil
	}

	waiters := a.waiters
	a.waiters = nil
	return waiters
}

func (s *walletService) commit(st *loopState, session models.Session) {
	st.session = session

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()
}

// publish delivers u without blocking the loop, dropping the oldest pending
// update when the channel is full.
func (s *walletService) publish(u models.SessionUpdate) {
	for {
		select {
		case s.updates <- u:
			return
		default:
		}

		select {
		case <-s.updates:
		default:
		}
	}
}

func (s *walletService) shutdown(st *loopState) {
	if st.connect != nil {
		a := st.connect
		for _, ch := range s.cancelAttempt(st, a) {
			ch <- commandResult{session: st.session, err: ErrManagerStopped}
		}
	}
	if st.refresh != nil {
		a := st.refresh
		for _, ch := range s.cancelAttempt(st, a) {
			ch <- commandResult{session: st.session, err: ErrManagerStopped}
		}
	}

	s.wg.Wait()
	close(s.done)
}

func (s *walletService) startConnect(ctx context.Context, st *loopState, silent bool, waiters []chan commandResult) {
	st.gen++
	attemptCtx, cancel := context.WithCancel(ctx)
	a := &attempt{gen: st.gen, silent: silent, cancel: cancel, waiters: waiters}
	st.connect = a

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		session, err := s.connect(attemptCtx, silent)
		s.deliver(attemptCtx, attemptOutcome{gen: a.gen, session: session, err: err})
	}()
}

func (s *walletService) startRefresh(ctx context.Context, st *loopState, reply chan commandResult) {
	st.gen++
	attemptCtx, cancel := context.WithCancel(ctx)
	a := &attempt{gen: st.gen, cancel: cancel, waiters: []chan commandResult{reply}}
	st.refresh = a

	address := st.session.Address
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		balances, err := s.readBalances(attemptCtx, address)
		s.deliver(attemptCtx, attemptOutcome{gen: a.gen, balances: balances, err: err})
	}()
}

func (s *walletService) deliver(ctx context.Context, out attemptOutcome) {
	select {
	case s.outcomes <- out:
	case <-ctx.Done():
	}
}

// connect runs the connect sequence. Nothing is committed here; the control
// loop stores the returned session.
func (s *walletService) connect(ctx context.Context, silent bool) (models.Session, error) {
	if s.provider == nil {
		return models.Session{}, ErrProviderUnavailable
	}

	if silent {
		accounts, err := s.provider.Accounts(ctx)
		if err != nil {
			return models.Session{}, fmt.Errorf("read authorized accounts: %w", mapAdapterError(err))
		}
		if len(accounts) == 0 {
			return models.Session{}, ErrNoAccounts
		}
	}

	accounts, err := s.provider.RequestAccounts(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("request accounts: %w", mapAdapterError(err))
	}
	if len(accounts) == 0 {
		return models.Session{}, ErrNoAccounts
	}
	address := accounts[0]

	chainID, err := s.provider.ChainID(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("read chain id: %w", mapAdapterError(err))
	}

	if chainID != s.network.ChainID {
		s.logger.Info().Str("func", "walletService.connect").
			Uint64("chain_id", chainID).
			Uint64("required_chain_id", s.network.ChainID).
			Msg("wallet on another network, requesting switch")

		if err := s.ensureNetwork(ctx); err != nil {
			return models.Session{}, fmt.Errorf("%w: %w", ErrWrongNetwork, mapAdapterError(err))
		}
		chainID = s.network.ChainID
	}

	balances, err := s.readBalances(ctx, address)
	if err != nil {
		return models.Session{}, err
	}

	return models.Session{
		Connected: true,
		Address:   address,
		ChainID:   chainID,
		Balances:  balances,
	}, nil
}

// ensureNetwork switches the wallet to the required chain, registering the
// chain first when the wallet does not know it.
func (s *walletService) ensureNetwork(ctx context.Context) error {
	err := s.provider.SwitchChain(ctx, s.network.ChainID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, adapter.ErrChainNotAdded) {
		return fmt.Errorf("switch chain: %w", err)
	}

	if err := s.provider.AddChain(ctx, s.network); err != nil {
		return fmt.Errorf("add chain: %w", err)
	}
	if err := s.provider.SwitchChain(ctx, s.network.ChainID); err != nil {
		return fmt.Errorf("switch chain after add: %w", err)
	}
	return nil
}

func (s *walletService) readBalances(ctx context.Context, address string) (models.Balances, error) {
	if s.provider == nil {
		return models.Balances{}, fmt.Errorf("%w: %w", ErrBalanceRead, ErrProviderUnavailable)
	}

	native, err := s.provider.Balance(ctx, address)
	if err != nil {
		return models.Balances{}, fmt.Errorf("%w: native: %w", ErrBalanceRead, err)
	}

	governance, err := s.tokenBalance(ctx, s.contracts.GovernanceToken, address)
	if err != nil {
		return models.Balances{}, fmt.Errorf("%w: governance token: %w", ErrBalanceRead, err)
	}

	stable, err := s.tokenBalance(ctx, s.contracts.StableToken, address)
	if err != nil {
		return models.Balances{}, fmt.Errorf("%w: stable token: %w", ErrBalanceRead, err)
	}

	return models.Balances{
		Native:          utils.FormatUnits(native, s.network.NativeCurrency.Decimals),
		GovernanceToken: governance,
		StableToken:     stable,
	}, nil
}

func (s *walletService) tokenBalance(ctx context.Context, token, owner string) (string, error) {
	decimals, err := s.tokens.Decimals(ctx, token)
	if err != nil {
		return "", fmt.Errorf("decimals: %w", err)
	}

	var raw *big.Int
	raw, err = s.tokens.BalanceOf(ctx, token, owner)
	if err != nil {
		return "", fmt.Errorf("balanceOf: %w", err)
	}

	return utils.FormatUnits(raw, decimals), nil
}
