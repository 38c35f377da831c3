// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package staking

import (
	"container/list"
	"errors"
	"fmt"
	"sync"

	"github.com/ChainSafe/gossamer-offences/dot/types"
	"github.com/ChainSafe/gossamer-offences/internal/log"
	"github.com/ChainSafe/gossamer-offences/lib/offences"
	"github.com/holiman/uint256"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "staking"))

// DefaultSlashRewardFraction is the share of the slashed amount paid to reporters.
var DefaultSlashRewardFraction = types.PerbillFromPercent(10)

// ErrInjectedFailure is the error returned for accounts set with SetFailure and a nil error.
var ErrInjectedFailure = errors.New("injected failure")

type slashKey struct {
	stash   types.AccountID
	session types.SessionIndex
}

// ledger is the state captured by a transaction.
type ledger struct {
	balances  map[types.AccountID]*uint256.Int
	slashed   map[types.AccountID]*uint256.Int
	fractions map[slashKey]types.Perbill
	// slashedInTransaction is the amount slashed since the transaction started.
	slashedInTransaction *uint256.Int
}

func newLedger() *ledger {
	return &ledger{
		balances:             make(map[types.AccountID]*uint256.Int),
		slashed:              make(map[types.AccountID]*uint256.Int),
		fractions:            make(map[slashKey]types.Perbill),
		slashedInTransaction: new(uint256.Int),
	}
}

func (l *ledger) snapshot() *ledger {
	snapshot := &ledger{
		balances:             make(map[types.AccountID]*uint256.Int, len(l.balances)),
		slashed:              make(map[types.AccountID]*uint256.Int, len(l.slashed)),
		fractions:            make(map[slashKey]types.Perbill, len(l.fractions)),
		slashedInTransaction: new(uint256.Int),
	}
	for account, balance := range l.balances {
		snapshot.balances[account] = new(uint256.Int).Set(balance)
	}
	for account, amount := range l.slashed {
		snapshot.slashed[account] = new(uint256.Int).Set(amount)
	}
	for key, fraction := range l.fractions {
		snapshot.fractions[key] = fraction
	}
	return snapshot
}

func (l *ledger) balance(account types.AccountID) *uint256.Int {
	balance, ok := l.balances[account]
	if !ok {
		return new(uint256.Int)
	}
	return balance
}

// slash removes up to amount from the account balance and returns the amount removed.
func (l *ledger) slash(account types.AccountID, amount *uint256.Int) *uint256.Int {
	balance := l.balance(account)
	removed := new(uint256.Int).Set(amount)
	if removed.Gt(balance) {
		removed.Set(balance)
	}

	l.balances[account] = new(uint256.Int).Sub(balance, removed)
	total, ok := l.slashed[account]
	if !ok {
		total = new(uint256.Int)
	}
	l.slashed[account] = new(uint256.Int).Add(total, removed)
	l.slashedInTransaction.Add(l.slashedInTransaction, removed)
	return removed
}

func (l *ledger) credit(account types.AccountID, amount *uint256.Int) {
	l.balances[account] = new(uint256.Int).Add(l.balance(account), amount)
}

// InMemoryStaking is an in-memory staking ledger with nested transactions.
type InMemoryStaking struct {
	mtx            sync.RWMutex
	transactions   *list.List
	rewardFraction types.Perbill
	failures       map[types.AccountID]error
}

var _ offences.Staking = (*InMemoryStaking)(nil)

// NewInMemoryStaking returns an empty staking ledger paying rewardFraction of
// the slashed amount to reporters.
func NewInMemoryStaking(rewardFraction types.Perbill) *InMemoryStaking {
	transactions := list.New()
	transactions.PushBack(newLedger())
	return &InMemoryStaking{
		transactions:   transactions,
		rewardFraction: rewardFraction,
		failures:       make(map[types.AccountID]error),
	}
}

func (s *InMemoryStaking) current() *ledger {
	return s.transactions.Back().Value.(*ledger)
}

// StartTransaction begins a new nested transaction
// which will either be committed or rolled back at a later time.
func (s *InMemoryStaking) StartTransaction() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.transactions.PushBack(s.current().snapshot())
}

// RollbackTransaction discards all changes made since StartTransaction was called.
func (s *InMemoryStaking) RollbackTransaction() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.transactions.Len() <= 1 {
		panic("no transactions to rollback")
	}

	s.transactions.Remove(s.transactions.Back())
}

// CommitTransaction keeps all changes made since StartTransaction was called.
func (s *InMemoryStaking) CommitTransaction() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.transactions.Len() <= 1 {
		panic("no transactions to commit")
	}

	committed := s.transactions.Remove(s.transactions.Back()).(*ledger)
	parent := s.transactions.Back().Value.(*ledger)
	committed.slashedInTransaction.Add(parent.slashedInTransaction, committed.slashedInTransaction)
	s.transactions.Back().Value = committed
}

// SetBalance sets the free balance of the account.
func (s *InMemoryStaking) SetBalance(account types.AccountID, balance *uint256.Int) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.current().balances[account] = new(uint256.Int).Set(balance)
}

// Bond sets the balances of the stash and its nominators to their exposure.
func (s *InMemoryStaking) Bond(identification types.FullIdentification) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	current := s.current()
	if identification.Exposure.Own != nil {
		current.balances[identification.Stash] = new(uint256.Int).Set(identification.Exposure.Own)
	}
	for _, other := range identification.Exposure.Others {
		if other.Value != nil {
			current.balances[other.Who] = new(uint256.Int).Set(other.Value)
		}
	}
}

// SetFailure makes ApplySlash of the stash and RewardReporters paying the account
// fail with err, or ErrInjectedFailure if err is nil.
func (s *InMemoryStaking) SetFailure(account types.AccountID, err error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err == nil {
		err = ErrInjectedFailure
	}
	s.failures[account] = err
}

// ApplySlash slashes the own stake and nominator stakes of the offender by the
// increase of the fraction over the highest fraction applied in the session.
func (s *InMemoryStaking) ApplySlash(offender types.IdentificationTuple, fraction types.Perbill,
	session types.SessionIndex) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	stash := offender.FullIdentification.Stash
	if err := s.failures[stash]; err != nil {
		return fmt.Errorf("slashing %s: %w", stash, err)
	}

	current := s.current()
	key := slashKey{stash: stash, session: session}
	previous := current.fractions[key]
	if fraction <= previous {
		logger.Debugf("stash %s already slashed by %s in session %d", stash, previous, session)
		return nil
	}
	current.fractions[key] = fraction

	exposure := offender.FullIdentification.Exposure
	removed := current.slash(stash, slashIncrease(exposure.Own, previous, fraction))
	for _, other := range exposure.Others {
		removed.Add(removed, current.slash(other.Who, slashIncrease(other.Value, previous, fraction)))
	}

	logger.Debugf("slashed %s by %s in session %d: %s removed", stash, fraction, session, removed)
	return nil
}

func slashIncrease(stake *uint256.Int, previous, fraction types.Perbill) *uint256.Int {
	if stake == nil {
		return new(uint256.Int)
	}
	amount := fraction.MulBalance(stake)
	return amount.Sub(amount, previous.MulBalance(stake))
}

// RewardReporters pays the reward fraction of the amount slashed in the current
// transaction to the reporters, split evenly.
func (s *InMemoryStaking) RewardReporters(reporters []types.AccountID, fraction types.Perbill) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if len(reporters) == 0 || fraction.IsZero() {
		return nil
	}

	for _, reporter := range reporters {
		if err := s.failures[reporter]; err != nil {
			return fmt.Errorf("rewarding %s: %w", reporter, err)
		}
	}

	current := s.current()
	reward := s.rewardFraction.MulBalance(current.slashedInTransaction)
	share := new(uint256.Int).Div(reward, uint256.NewInt(uint64(len(reporters))))
	if share.IsZero() {
		return nil
	}

	for _, reporter := range reporters {
		current.credit(reporter, share)
	}
	return nil
}

// Balance returns the free balance of the account.
func (s *InMemoryStaking) Balance(account types.AccountID) *uint256.Int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return new(uint256.Int).Set(s.current().balance(account))
}

// Slashed returns the highest fraction the stash was slashed by in the session.
func (s *InMemoryStaking) Slashed(stash types.AccountID, session types.SessionIndex) types.Perbill {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return s.current().fractions[slashKey{stash: stash, session: session}]
}

// TotalSlashed returns the amount slashed from the account so far.
func (s *InMemoryStaking) TotalSlashed(account types.AccountID) *uint256.Int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	total, ok := s.current().slashed[account]
	if !ok {
		return new(uint256.Int)
	}
	return new(uint256.Int).Set(total)
}

// SetLogLevel sets the level of the staking logger.
func SetLogLevel(level log.Level) {
	logger.Patch(log.SetLevel(level))
}
