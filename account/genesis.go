// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"github.com/33cn/rps/types"
)

// GenesisInit 生成创世地址账户收据
func (acc *DB) GenesisInit(addr string, amount uint64) (receipt *types.Receipt, err error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	accTo := acc.LoadAccount(addr)
	copyto := *accTo
	accTo.Balance, err = types.SafeAdd(accTo.Balance, amount)
	if err != nil {
		return nil, err
	}
	receiptBalanceTo := &types.ReceiptAccountTransfer{
		Prev:    &copyto,
		Current: accTo,
	}
	acc.SaveAccount(accTo)
	return acc.genesisReceipt(accTo, receiptBalanceTo), nil
}

// GenesisInitExec 生成创世地址执行器账户收据
func (acc *DB) GenesisInitExec(addr string, amount uint64, execaddr string) (receipt *types.Receipt, err error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	receipt, err = acc.depositBalance(execaddr, amount)
	if err != nil {
		return nil, err
	}
	receipt.Logs[0].Ty = types.TyLogGenesisTransfer
	receipt2, err := acc.ExecDeposit(addr, execaddr, amount)
	if err != nil {
		return nil, err
	}
	receipt2.Logs[0].Ty = types.TyLogGenesisDeposit
	return acc.mergeReceipt(receipt, receipt2), nil
}

func (acc *DB) genesisReceipt(accTo *types.Account, receiptTo *types.ReceiptAccountTransfer) *types.Receipt {
	log2 := &types.ReceiptLog{
		Ty:  types.TyLogGenesisTransfer,
		Log: types.Encode(receiptTo),
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   acc.GetKVSet(accTo),
		Logs: []*types.ReceiptLog{log2},
	}
}
