// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	ErrNotFound          = errors.New("ErrNotFound")
	ErrAmount            = errors.New("ErrAmount")
	ErrAmountOverflow    = errors.New("ErrAmountOverflow")
	ErrNoBalance         = errors.New("ErrNoBalance")
	ErrSendSameToRecv    = errors.New("ErrSendSameToRecv")
	ErrInvalidAddress    = errors.New("ErrInvalidAddress")
	ErrActionNotSupport  = errors.New("ErrActionNotSupport")
	ErrDBBackendNotFound = errors.New("ErrDBBackendNotFound")

	// rps
	ErrInvalidStake       = errors.New("ErrInvalidStake")
	ErrGameCreateAmount   = errors.New("ErrGameCreateAmount")
	ErrInvalidContestant  = errors.New("ErrInvalidContestant")
	ErrGameNotFound       = errors.New("ErrGameNotFound")
	ErrWrongState         = errors.New("ErrWrongState")
	ErrUnauthorized       = errors.New("ErrUnauthorized")
	ErrAlreadyCommitted   = errors.New("ErrAlreadyCommitted")
	ErrAlreadyRevealed    = errors.New("ErrAlreadyRevealed")
	ErrInvalidMove        = errors.New("ErrInvalidMove")
	ErrInsufficientStake  = errors.New("ErrInsufficientStake")
	ErrCommitmentMismatch = errors.New("ErrCommitmentMismatch")
	ErrInvalidHashType    = errors.New("ErrInvalidHashType")
)
