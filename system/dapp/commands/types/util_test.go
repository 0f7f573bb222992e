// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/33cn/rps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmountValue2Display(t *testing.T) {
	assert.Equal(t, "1.0000", FormatAmountValue2Display(types.Coin))
	assert.Equal(t, "1.2346", FormatAmountValue2Display(123456789))
	assert.Equal(t, "0.0000", FormatAmountValue2Display(0))
}

func TestFormatAmountDisplay2Value(t *testing.T) {
	v, err := FormatAmountDisplay2Value("1.5")
	require.NoError(t, err)
	assert.Equal(t, uint64(150000000), v)

	v, err = FormatAmountDisplay2Value("0.00000001")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)

	for _, bad := range []string{"", "abc", "0", "-1", "0.000000001", "1e9"} {
		_, err = FormatAmountDisplay2Value(bad)
		assert.ErrorIs(t, err, types.ErrAmount, bad)
	}
}

func TestDecodeGame(t *testing.T) {
	game := types.NewGame(3, "a", "b", types.Coin)
	game.SetStatus(types.GameRevealed)
	game.HashType = "sha256"
	game.Commitments[0].Hash = []byte{0xab}
	game.Commitments[0].Revealed = int32(types.Rock)
	game.Commitments[1].Hash = []byte{0xcd}
	game.Commitments[1].Revealed = int32(types.Paper)
	game.Amounts = []uint64{0, 2 * types.Coin}
	r := DecodeGame(game)
	assert.Equal(t, uint64(3), r.ID)
	assert.Equal(t, [2]string{"a", "b"}, r.Players)
	assert.Equal(t, "0xab", r.Commitments[0].Hash)
	assert.Equal(t, types.Paper.String(), r.Commitments[1].Revealed)
	assert.Equal(t, [2]string{"0.0000", "2.0000"}, r.Amounts)
	assert.Equal(t, types.GameRevealed.String(), r.Status)

	// 没有提交的一方不显示
	game = types.NewGame(4, "a", "b", types.Coin)
	game.Commitments[1].Hash = []byte{0xcd}
	r = DecodeGame(game)
	assert.Nil(t, r.Commitments[0])
	assert.Equal(t, "0xcd", r.Commitments[1].Hash)
	assert.Empty(t, r.Commitments[1].Revealed)
	assert.Equal(t, [2]string{}, r.Amounts)
}

func TestDecodeReceipt(t *testing.T) {
	receipt := &types.Receipt{Ty: types.ExecOk, Logs: []*types.ReceiptLog{
		{Ty: types.TyLogRpsJoin, Log: types.Encode(&types.ReceiptGame{GameId: 9})},
		{Ty: types.TyLogExecFrozen, Log: types.Encode(&types.ReceiptExecAccountTransfer{ExecAddr: "x"})},
	}}
	r := DecodeReceipt(receipt)
	require.Len(t, r.Logs, 2)
	assert.Equal(t, "LogRpsJoin", r.Logs[0].TyName)
	assert.Equal(t, uint64(9), r.Logs[0].Log.(*types.ReceiptGame).GameId)
	assert.Equal(t, "LogExecFrozen", r.Logs[1].TyName)
}
