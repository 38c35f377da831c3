// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"testing"

	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/gossamer-offences/lib/utils"
	"github.com/stretchr/testify/require"
)

// NewInMemoryDB creates a new in-memory database closed when the test ends.
func NewInMemoryDB(t *testing.T) chaindb.Database {
	db, err := utils.SetupDatabase(t.TempDir(), true)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}
