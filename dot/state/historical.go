// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/gossamer-offences/dot/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

const historicalTablePrefix = "historical"

// DefaultHistoryDepth is the number of sessions kept, 28 eras of 6 sessions.
const DefaultHistoryDepth uint32 = 168

var (
	sessionKeyPrefix = []byte("session")
	oldestSessionKey = []byte("oldest_session")
	latestSessionKey = []byte("latest_session")
)

var (
	// ErrSessionNotAppended is returned when storing a session at or below the latest stored session.
	ErrSessionNotAppended = errors.New("session index is not above the latest stored session")
	// ErrSessionNotFound is returned when the validators of a session are not stored.
	ErrSessionNotFound = errors.New("session not found")
	// ErrNoSessions is returned when no session was stored yet.
	ErrNoSessions = errors.New("no sessions stored")
)

func encodeSessionIndex(index types.SessionIndex) []byte {
	encoded := make([]byte, 4)
	binary.LittleEndian.PutUint32(encoded, uint32(index))
	return encoded
}

func sessionKey(index types.SessionIndex) []byte {
	return bytes.Join([][]byte{sessionKeyPrefix, encodeSessionIndex(index)}, nil)
}

// SessionValidator is a member of the validator set of a session.
type SessionValidator struct {
	Authority          types.AuthorityID
	FullIdentification types.FullIdentification
}

type sessionValidators []SessionValidator

func (v sessionValidators) Encode(encoder scale.Encoder) error {
	err := types.EncodeLength(encoder, len(v))
	if err != nil {
		return err
	}
	for _, validator := range v {
		err = types.IdentificationTuple(validator).Encode(encoder)
		if err != nil {
			return err
		}
	}
	return nil
}

func (v *sessionValidators) Decode(decoder scale.Decoder) error {
	count, err := types.DecodeLength(decoder)
	if err != nil {
		return fmt.Errorf("decoding validator count: %w", err)
	}

	*v = nil
	for i := uint64(0); i < count; i++ {
		var validator types.IdentificationTuple
		err = validator.Decode(decoder)
		if err != nil {
			return fmt.Errorf("decoding validator %d: %w", i, err)
		}
		*v = append(*v, SessionValidator(validator))
	}
	return nil
}

// HistoricalState keeps the validator sets of the last sessions so offences
// can be attributed to the identification an offender had when it offended.
type HistoricalState struct {
	lock  sync.RWMutex
	db    chaindb.Database
	depth uint32
}

// NewHistoricalState returns a HistoricalState keeping depth sessions,
// or DefaultHistoryDepth sessions if depth is zero.
func NewHistoricalState(db chaindb.Database, depth uint32) *HistoricalState {
	if depth == 0 {
		depth = DefaultHistoryDepth
	}
	return &HistoricalState{
		db:    chaindb.NewTable(db, historicalTablePrefix),
		depth: depth,
	}
}

// StoreSession stores the validators of the session, which must be above the latest
// stored session. Sessions falling out of the history depth are pruned in the same batch.
func (s *HistoricalState) StoreSession(index types.SessionIndex, validators []SessionValidator) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	oldest, latest, found, err := s.bounds()
	if err != nil {
		return err
	}
	if found && index <= latest {
		return fmt.Errorf("%w: session %d, latest %d", ErrSessionNotAppended, index, latest)
	}

	encoded, err := types.Encode(sessionValidators(validators))
	if err != nil {
		return fmt.Errorf("encoding validators of session %d: %w", index, err)
	}

	newOldest := index
	if found {
		newOldest = oldest
	}
	if uint32(index) >= s.depth {
		lowestKept := index - types.SessionIndex(s.depth) + 1
		if lowestKept > newOldest {
			newOldest = lowestKept
		}
	}

	batch := s.db.NewBatch()
	err = batch.Put(sessionKey(index), encoded)
	if err != nil {
		return fmt.Errorf("while batch putting session %d: %w", index, err)
	}

	if found {
		err = deleteSessions(batch, oldest, newOldest)
		if err != nil {
			return err
		}
	}

	err = putBounds(batch, newOldest, index)
	if err != nil {
		return err
	}

	return batch.Flush()
}

// PruneBelow removes the sessions below the index.
func (s *HistoricalState) PruneBelow(index types.SessionIndex) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	oldest, latest, found, err := s.bounds()
	if err != nil {
		return err
	}
	if !found || index <= oldest {
		return nil
	}

	newOldest := index
	if newOldest > latest {
		newOldest = latest + 1
	}

	batch := s.db.NewBatch()
	err = deleteSessions(batch, oldest, newOldest)
	if err != nil {
		return err
	}

	err = putBounds(batch, newOldest, latest)
	if err != nil {
		return err
	}

	return batch.Flush()
}

// Validators returns the validators of the session.
func (s *HistoricalState) Validators(session types.SessionIndex) ([]SessionValidator, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.validators(session)
}

// FullIdentification returns the identification of the authority in the session,
// or nil if the authority was not a validator or the session is not stored.
func (s *HistoricalState) FullIdentification(session types.SessionIndex,
	authority types.AuthorityID) (*types.FullIdentification, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	validators, err := s.validators(session)
	if errors.Is(err, ErrSessionNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	for _, validator := range validators {
		if validator.Authority == authority {
			identification := validator.FullIdentification
			return &identification, nil
		}
	}
	return nil, nil
}

// Authority returns the authority at the index of the validator set of the session,
// or nil if the index is out of range or the session is not stored.
func (s *HistoricalState) Authority(session types.SessionIndex, index uint32) (*types.AuthorityID, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	validators, err := s.validators(session)
	if errors.Is(err, ErrSessionNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	if uint64(index) >= uint64(len(validators)) {
		return nil, nil
	}
	authority := validators[index].Authority
	return &authority, nil
}

// ValidatorSetCount returns the number of validators of the session,
// or 0 if the session is not stored.
func (s *HistoricalState) ValidatorSetCount(session types.SessionIndex) (uint32, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	validators, err := s.validators(session)
	if errors.Is(err, ErrSessionNotFound) {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	return uint32(len(validators)), nil
}

// OldestSession returns the oldest stored session.
func (s *HistoricalState) OldestSession() (types.SessionIndex, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	oldest, _, found, err := s.bounds()
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrNoSessions
	}
	return oldest, nil
}

// LatestSession returns the latest stored session.
func (s *HistoricalState) LatestSession() (types.SessionIndex, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	_, latest, found, err := s.bounds()
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrNoSessions
	}
	return latest, nil
}

func (s *HistoricalState) validators(session types.SessionIndex) ([]SessionValidator, error) {
	encoded, err := s.db.Get(sessionKey(session))
	if errors.Is(err, chaindb.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrSessionNotFound, session)
	} else if err != nil {
		return nil, fmt.Errorf("getting session %d: %w", session, err)
	}

	var validators sessionValidators
	err = types.DecodeExact(encoded, &validators)
	if err != nil {
		return nil, fmt.Errorf("decoding validators of session %d: %w", session, err)
	}
	return validators, nil
}

func (s *HistoricalState) bounds() (oldest, latest types.SessionIndex, found bool, err error) {
	latestEncoded, err := s.db.Get(latestSessionKey)
	if errors.Is(err, chaindb.ErrKeyNotFound) {
		return 0, 0, false, nil
	} else if err != nil {
		return 0, 0, false, fmt.Errorf("getting latest session: %w", err)
	}

	oldestEncoded, err := s.db.Get(oldestSessionKey)
	if err != nil {
		return 0, 0, false, fmt.Errorf("getting oldest session: %w", err)
	}

	oldest = types.SessionIndex(binary.LittleEndian.Uint32(oldestEncoded))
	latest = types.SessionIndex(binary.LittleEndian.Uint32(latestEncoded))
	return oldest, latest, true, nil
}

func putBounds(batch chaindb.Batch, oldest, latest types.SessionIndex) error {
	err := batch.Put(oldestSessionKey, encodeSessionIndex(oldest))
	if err != nil {
		return fmt.Errorf("while batch putting oldest session: %w", err)
	}

	err = batch.Put(latestSessionKey, encodeSessionIndex(latest))
	if err != nil {
		return fmt.Errorf("while batch putting latest session: %w", err)
	}
	return nil
}

// deleteSessions deletes the sessions in [from, to).
func deleteSessions(batch chaindb.Batch, from, to types.SessionIndex) error {
	for index := from; index < to; index++ {
		err := batch.Del(sessionKey(index))
		if err != nil {
			return fmt.Errorf("while batch deleting session %d: %w", index, err)
		}
	}
	return nil
}
