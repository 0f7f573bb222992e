// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"testing"

	"github.com/33cn/rps/common/address"
	"github.com/33cn/rps/common/db"
	"github.com/33cn/rps/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addr1 = "14ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr2 = "24ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr3 = "34ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr4 = "44ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"

	execAddr = address.ExecAddress(types.RpsX)
)

func GenerAccDb() (*DB, *DB) {
	//构造账户数据库
	stroedb, _ := db.NewGoMemDB("gomemdb", "test", 128)
	accCoin := NewCoinsAccount(stroedb)

	stroedb2, _ := db.NewGoMemDB("gomemdb", "test", 128)
	accToken, _ := NewAccountDB("token", "test", stroedb2)
	return accCoin, accToken
}

func (acc *DB) GenerAccData() {
	// 加入账户
	account := &types.Account{
		Balance: 1000 * types.Coin,
		Addr:    addr1,
	}
	acc.SaveAccount(account)

	account.Balance = 900 * types.Coin
	account.Addr = addr2
	acc.SaveAccount(account)

	account.Balance = 800 * types.Coin
	account.Addr = addr3
	acc.SaveAccount(account)

	account.Balance = 700 * types.Coin
	account.Addr = addr4
	acc.SaveAccount(account)
}

func (acc *DB) GenerExecAccData(execaddr string) {
	// 加入执行账户
	account := &types.Account{
		Balance: 1000 * types.Coin,
		Frozen:  20 * types.Coin,
		Addr:    addr1,
	}
	acc.SaveExecAccount(execaddr, account)

	account.Balance = 900 * types.Coin
	account.Frozen = 20 * types.Coin
	account.Addr = addr2
	acc.SaveExecAccount(execaddr, account)
}

func TestNewAccountDB(t *testing.T) {
	_, err := NewAccountDB("to-ken", "test", nil)
	assert.Equal(t, ErrNameNotAllow, errors.Cause(err))
	_, err = NewAccountDB("token", "te-st", nil)
	assert.Equal(t, ErrNameNotAllow, errors.Cause(err))

	acc, err := NewAccountDB("token", "test", nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("mavl-token-test-"+addr1), acc.AccountKey(addr1))
}

func TestCheckTransfer(t *testing.T) {
	accCoin, tokenCoin := GenerAccDb()
	accCoin.GenerAccData()
	tokenCoin.GenerAccData()

	err := accCoin.CheckTransfer(addr1, addr2, 10*types.Coin)
	require.NoError(t, err)

	err = tokenCoin.CheckTransfer(addr3, addr4, 10*types.Coin)
	require.NoError(t, err)

	assert.Equal(t, types.ErrNoBalance, accCoin.CheckTransfer(addr4, addr1, 701*types.Coin))
	assert.Equal(t, types.ErrAmount, accCoin.CheckTransfer(addr1, addr2, 0))
	assert.Equal(t, types.ErrSendSameToRecv, accCoin.CheckTransfer(addr1, addr1, 1))
}

func TestTransfer(t *testing.T) {
	accCoin, tokenCoin := GenerAccDb()
	accCoin.GenerAccData()
	tokenCoin.GenerAccData()

	receipt, err := accCoin.Transfer(addr1, addr2, 10*types.Coin)
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 2)
	assert.Equal(t, int32(types.TyLogTransfer), receipt.Logs[0].Ty)
	require.Equal(t, 1000*types.Coin-10*types.Coin, accCoin.LoadAccount(addr1).Balance)
	require.Equal(t, 900*types.Coin+10*types.Coin, accCoin.LoadAccount(addr2).Balance)

	_, err = tokenCoin.Transfer(addr3, addr4, 10*types.Coin)
	require.NoError(t, err)
	require.Equal(t, 800*types.Coin-10*types.Coin, tokenCoin.LoadAccount(addr3).Balance)
	require.Equal(t, 700*types.Coin+10*types.Coin, tokenCoin.LoadAccount(addr4).Balance)

	_, err = accCoin.Transfer(addr4, addr1, 1000*types.Coin)
	assert.Equal(t, types.ErrNoBalance, err)
}

func TestDepositBalance(t *testing.T) {
	accCoin, tokenCoin := GenerAccDb()
	accCoin.GenerAccData()
	tokenCoin.GenerAccData()

	_, err := accCoin.depositBalance(addr1, 20*types.Coin)
	require.NoError(t, err)
	require.Equal(t, 1000*types.Coin+20*types.Coin, accCoin.LoadAccount(addr1).Balance)

	_, err = tokenCoin.depositBalance(addr1, 30*types.Coin)
	require.NoError(t, err)
	require.Equal(t, 1000*types.Coin+30*types.Coin, tokenCoin.LoadAccount(addr1).Balance)
}

func TestGenesisInit(t *testing.T) {
	accCoin, _ := GenerAccDb()
	receipt, err := accCoin.GenesisInit(addr1, 100*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, int32(types.TyLogGenesisTransfer), receipt.Logs[0].Ty)
	assert.Equal(t, 100*types.Coin, accCoin.LoadAccount(addr1).Balance)

	_, err = accCoin.GenesisInit(addr1, 0)
	assert.Equal(t, types.ErrAmount, err)

	receipt, err = accCoin.GenesisInitExec(addr2, 50*types.Coin, execAddr)
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 2)
	assert.Equal(t, int32(types.TyLogGenesisTransfer), receipt.Logs[0].Ty)
	assert.Equal(t, int32(types.TyLogGenesisDeposit), receipt.Logs[1].Ty)
	var transfer types.ReceiptAccountTransfer
	require.NoError(t, types.Decode(receipt.Logs[0].Log, &transfer))
	assert.Equal(t, execAddr, transfer.Current.Addr)
	assert.Equal(t, uint64(0), transfer.Prev.Balance)
	assert.Equal(t, 50*types.Coin, transfer.Current.Balance)
	assert.Equal(t, 50*types.Coin, accCoin.LoadAccount(execAddr).Balance)
	assert.Equal(t, 50*types.Coin, accCoin.LoadExecAccount(addr2, execAddr).Balance)

	_, err = accCoin.GenesisInitExec(addr2, 0, execAddr)
	assert.Equal(t, types.ErrAmount, err)
}

func TestTransferToExecAndWithdraw(t *testing.T) {
	accCoin, _ := GenerAccDb()
	accCoin.GenerAccData()

	_, err := accCoin.TransferToExec(addr1, execAddr, 100*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, 900*types.Coin, accCoin.LoadAccount(addr1).Balance)
	assert.Equal(t, 100*types.Coin, accCoin.LoadAccount(execAddr).Balance)
	assert.Equal(t, 100*types.Coin, accCoin.LoadExecAccount(addr1, execAddr).Balance)

	_, err = accCoin.TransferWithdraw(addr1, execAddr, 101*types.Coin)
	assert.Equal(t, types.ErrNoBalance, err)

	_, err = accCoin.TransferWithdraw(addr1, execAddr, 40*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, 940*types.Coin, accCoin.LoadAccount(addr1).Balance)
	assert.Equal(t, 60*types.Coin, accCoin.LoadAccount(execAddr).Balance)
	assert.Equal(t, 60*types.Coin, accCoin.LoadExecAccount(addr1, execAddr).Balance)
}

func TestExecFrozenActive(t *testing.T) {
	accCoin, _ := GenerAccDb()
	accCoin.GenerExecAccData(execAddr)

	receipt, err := accCoin.ExecFrozen(addr1, execAddr, 10*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, int32(types.TyLogExecFrozen), receipt.Logs[0].Ty)
	acc1 := accCoin.LoadExecAccount(addr1, execAddr)
	assert.Equal(t, 990*types.Coin, acc1.Balance)
	assert.Equal(t, 30*types.Coin, acc1.Frozen)

	_, err = accCoin.ExecFrozen(addr1, execAddr, 991*types.Coin)
	assert.Equal(t, types.ErrNoBalance, err)

	_, err = accCoin.ExecActive(addr1, execAddr, 30*types.Coin)
	require.NoError(t, err)
	acc1 = accCoin.LoadExecAccount(addr1, execAddr)
	assert.Equal(t, 1020*types.Coin, acc1.Balance)
	assert.Equal(t, uint64(0), acc1.Frozen)

	_, err = accCoin.ExecActive(addr1, execAddr, 1)
	assert.Equal(t, types.ErrNoBalance, err)
	_, err = accCoin.ExecActive(execAddr, execAddr, 1)
	assert.Equal(t, types.ErrSendSameToRecv, err)
}

func TestExecTransferFrozen(t *testing.T) {
	accCoin, _ := GenerAccDb()
	accCoin.GenerExecAccData(execAddr)

	receipt, err := accCoin.ExecTransferFrozen(addr1, addr2, execAddr, 20*types.Coin)
	require.NoError(t, err)
	require.Len(t, receipt.KV, 2)
	assert.Equal(t, int32(types.TyLogExecTransfer), receipt.Logs[0].Ty)

	acc1 := accCoin.LoadExecAccount(addr1, execAddr)
	acc2 := accCoin.LoadExecAccount(addr2, execAddr)
	assert.Equal(t, uint64(0), acc1.Frozen)
	assert.Equal(t, 1000*types.Coin, acc1.Balance)
	assert.Equal(t, 920*types.Coin, acc2.Balance)
	assert.Equal(t, 20*types.Coin, acc2.Frozen)

	_, err = accCoin.ExecTransferFrozen(addr1, addr2, execAddr, 1)
	assert.Equal(t, types.ErrNoBalance, err)
}

func TestExecTransfer(t *testing.T) {
	accCoin, _ := GenerAccDb()
	accCoin.GenerExecAccData(execAddr)

	_, err := accCoin.ExecTransfer(addr1, addr2, execAddr, 100*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, 900*types.Coin, accCoin.LoadExecAccount(addr1, execAddr).Balance)
	assert.Equal(t, 1000*types.Coin, accCoin.LoadExecAccount(addr2, execAddr).Balance)
}

func TestExecDepositOverflow(t *testing.T) {
	accCoin, _ := GenerAccDb()
	accCoin.SaveExecAccount(execAddr, &types.Account{Addr: addr1, Balance: ^uint64(0) - 1})
	_, err := accCoin.ExecDeposit(addr1, execAddr, 10)
	assert.Equal(t, types.ErrAmountOverflow, err)
	assert.Equal(t, ^uint64(0)-1, accCoin.LoadExecAccount(addr1, execAddr).Balance)
}

func TestAccountWithStateDBRollback(t *testing.T) {
	mem, _ := db.NewGoMemDB("gomemdb", "test", 128)
	state := db.NewStateDB(mem)
	acc := NewCoinsAccount(state)
	acc.GenerExecAccData(execAddr)

	state.Begin()
	_, err := acc.ExecFrozen(addr1, execAddr, 10*types.Coin)
	require.NoError(t, err)
	require.NoError(t, state.Rollback())
	assert.Equal(t, 1000*types.Coin, acc.LoadExecAccount(addr1, execAddr).Balance)
}
