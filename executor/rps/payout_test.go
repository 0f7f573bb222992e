// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rps

import (
	"math"
	"testing"

	"github.com/33cn/rps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettle(t *testing.T) {
	const bet = 100
	tests := []struct {
		a, b     types.Move
		toA, toB uint64
	}{
		{types.Rock, types.Rock, bet, bet},
		{types.Paper, types.Paper, bet, bet},
		{types.Scissors, types.Scissors, bet, bet},
		{types.Rock, types.Scissors, 2 * bet, 0},
		{types.Scissors, types.Paper, 2 * bet, 0},
		{types.Paper, types.Rock, 2 * bet, 0},
		{types.Scissors, types.Rock, 0, 2 * bet},
		{types.Paper, types.Scissors, 0, 2 * bet},
		{types.Rock, types.Paper, 0, 2 * bet},
	}
	for _, tt := range tests {
		toA, toB, err := Settle(tt.a, tt.b, bet)
		require.Nil(t, err)
		assert.Equal(t, tt.toA, toA, "%s vs %s", tt.a, tt.b)
		assert.Equal(t, tt.toB, toB, "%s vs %s", tt.a, tt.b)
		assert.Equal(t, uint64(2*bet), toA+toB)
	}
}

func TestSettleConservation(t *testing.T) {
	moves := []types.Move{types.Rock, types.Paper, types.Scissors}
	for _, bet := range []uint64{1, 7, types.Coin, math.MaxUint64 / 2} {
		for _, a := range moves {
			for _, b := range moves {
				toA, toB, err := Settle(a, b, bet)
				require.Nil(t, err)
				assert.Equal(t, 2*bet, toA+toB)
				assert.Equal(t, Beats(a, b), toA > toB)
			}
		}
	}
}

func TestSettleErrors(t *testing.T) {
	_, _, err := Settle(types.MoveNone, types.Rock, 1)
	assert.Equal(t, types.ErrInvalidMove, err)
	_, _, err = Settle(types.Rock, types.Move(4), 1)
	assert.Equal(t, types.ErrInvalidMove, err)
	_, _, err = Settle(types.Rock, types.Paper, math.MaxUint64/2+1)
	assert.Equal(t, types.ErrAmountOverflow, err)
}

func TestBeats(t *testing.T) {
	assert.True(t, Beats(types.Rock, types.Scissors))
	assert.True(t, Beats(types.Scissors, types.Paper))
	assert.True(t, Beats(types.Paper, types.Rock))
	assert.False(t, Beats(types.Rock, types.Rock))
	assert.False(t, Beats(types.Scissors, types.Rock))
	assert.False(t, Beats(types.MoveNone, types.MoveNone))
}
