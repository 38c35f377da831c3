// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package services

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE . Service,Logger
