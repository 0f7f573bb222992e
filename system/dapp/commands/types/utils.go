// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"math/big"

	"github.com/33cn/rps/common"
	"github.com/33cn/rps/types"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// 显示、输入的精度
const amountPrecision = 8

var coin = decimal.New(1, amountPrecision)

// FormatAmountValue2Display 将传输、计算的amount值格式化成显示值
func FormatAmountValue2Display(amount uint64) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(amount), -amountPrecision).StringFixed(4)
}

// FormatAmountDisplay2Value 将显示、输入的amount值格式话成传输、计算值
func FormatAmountDisplay2Value(amount string) (uint64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, errors.Wrapf(types.ErrAmount, "parse %s", amount)
	}
	if d.Sign() <= 0 {
		return 0, errors.Wrapf(types.ErrAmount, "%s must be positive", amount)
	}
	d = d.Mul(coin)
	if !d.Equal(d.Truncate(0)) {
		return 0, errors.Wrapf(types.ErrAmount, "%s has more than %d decimal places", amount, amountPrecision)
	}
	value := d.BigInt()
	if !value.IsUint64() || !types.CheckAmount(value.Uint64()) {
		return 0, errors.Wrapf(types.ErrAmount, "%s out of range", amount)
	}
	return value.Uint64(), nil
}

// GetAmountValue 将命令行中的amount值转换成uint64
func GetAmountValue(cmd *cobra.Command, field string) (uint64, error) {
	amount, _ := cmd.Flags().GetString(field)
	return FormatAmountDisplay2Value(amount)
}

// DecodeAccount decode account func
func DecodeAccount(acc *types.Account) *AccountResult {
	return &AccountResult{
		Addr:     acc.Addr,
		Currency: acc.Currency,
		Balance:  FormatAmountValue2Display(acc.Balance),
		Frozen:   FormatAmountValue2Display(acc.Frozen),
	}
}

// DecodeGame 转换成显示格式
func DecodeGame(game *types.Game) *GameResult {
	status := game.GameStatus()
	result := &GameResult{
		ID:         game.GameId,
		Status:     status.String(),
		UIState:    types.UIStateOf(status).String(),
		Bet:        FormatAmountValue2Display(game.Bet),
		Escrowed:   FormatAmountValue2Display(game.Escrowed),
		HashType:   game.HashType,
		CreateTime: game.CreateTime,
		JoinTime:   game.JoinTime,
		CommitTime: game.CommitTime,
		RevealTime: game.RevealTime,
	}
	copy(result.Players[:], game.Players)
	for i := range result.Commitments {
		c := game.Commitment(i)
		if !c.IsCommitted() {
			continue
		}
		result.Commitments[i] = &CommitmentResult{Hash: common.ToHex(c.Hash)}
		if c.IsRevealed() {
			result.Commitments[i].Revealed = c.RevealedMove().String()
		}
	}
	if status == types.GameRevealed && len(game.Amounts) == 2 {
		result.Amounts = [2]string{FormatAmountValue2Display(game.Amounts[0]), FormatAmountValue2Display(game.Amounts[1])}
	}
	return result
}

// DecodeReceipt 把 receipt 中的日志解码成可读的格式
func DecodeReceipt(receipt *types.Receipt) *ReceiptResult {
	result := &ReceiptResult{Ty: receipt.Ty}
	for _, l := range receipt.Logs {
		item := &ReceiptLogResult{Ty: l.Ty, TyName: types.GetLogName(l.Ty)}
		switch l.Ty {
		case types.TyLogRpsCreate, types.TyLogRpsJoin, types.TyLogRpsCommit, types.TyLogRpsReveal:
			var gamelog types.ReceiptGame
			if err := types.Decode(l.Log, &gamelog); err == nil {
				item.Log = &gamelog
			}
		default:
			var raw json.RawMessage = l.Log
			item.Log = raw
		}
		result.Logs = append(result.Logs, item)
	}
	return result
}
