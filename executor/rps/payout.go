// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rps

import (
	"github.com/33cn/rps/types"
)

// 石头赢剪刀, 剪刀赢布, 布赢石头
var beats = map[types.Move]types.Move{
	types.Rock:     types.Scissors,
	types.Scissors: types.Paper,
	types.Paper:    types.Rock,
}

// Beats reports whether a wins against b.
func Beats(a, b types.Move) bool {
	return a.IsValid() && beats[a] == b
}

// Settle 计算两个玩家各自应得的金额, toA + toB == 2*bet
func Settle(a, b types.Move, bet uint64) (toA, toB uint64, err error) {
	if !a.IsValid() || !b.IsValid() {
		return 0, 0, types.ErrInvalidMove
	}
	pot, err := types.SafeMul(bet, 2)
	if err != nil {
		return 0, 0, err
	}
	switch {
	case a == b:
		return bet, bet, nil
	case Beats(a, b):
		return pot, 0, nil
	default:
		return 0, pot, nil
	}
}
