// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package account 实现 rps 资产操作
*/
package account

//package for account manger
//1. load from db
//2. save to db
//3. KVSet
//4. Transfer
//5. Add
//6. Sub
//7. Account balance query

import (
	"fmt"
	"strings"

	dbm "github.com/33cn/rps/common/db"
	log "github.com/33cn/rps/common/log"
	"github.com/33cn/rps/types"
	"github.com/pkg/errors"
)

var alog = log.New("module", "account")

// ErrNameNotAllow execer 或 symbol 中不能包含 "-"
var ErrNameNotAllow = errors.New("ErrNameNotAllow")

// DB for account
type DB struct {
	db                   dbm.KV
	accountKeyPerfix     []byte
	execAccountKeyPerfix []byte
	execer               string
	symbol               string
}

// NewCoinsAccount 默认的 coins 账户
func NewCoinsAccount(db dbm.KV) *DB {
	acc, err := NewAccountDB("coins", types.RpsX, db)
	if err != nil {
		panic(err)
	}
	return acc
}

// NewAccountDB new
func NewAccountDB(execer string, symbol string, db dbm.KV) (*DB, error) {
	//如果execer 和  symbol 中存在 "-", 那么创建失败
	if strings.ContainsRune(execer, '-') || strings.ContainsRune(symbol, '-') {
		return nil, errors.Wrapf(ErrNameNotAllow, "%s %s", execer, symbol)
	}
	prefix := SymbolPrefix(execer, symbol)
	acc := &DB{
		accountKeyPerfix:     []byte(prefix),
		execAccountKeyPerfix: append([]byte(prefix), []byte("exec-")...),
		execer:               execer,
		symbol:               symbol,
	}
	acc.SetDB(db)
	return acc, nil
}

// SetDB 切换底层数据库, 一般是 StateDB
func (acc *DB) SetDB(db dbm.KV) *DB {
	acc.db = db
	return acc
}

// LoadAccount 不存在时返回空账户
func (acc *DB) LoadAccount(addr string) *types.Account {
	value, err := acc.db.Get(acc.AccountKey(addr))
	if err != nil {
		return &types.Account{Addr: addr}
	}
	var acc1 types.Account
	err = types.Decode(value, &acc1)
	if err != nil {
		panic(err) //数据库已经损坏
	}
	return &acc1
}

// LoadAccounts 批量读取
func (acc *DB) LoadAccounts(addrs []string) []*types.Account {
	accs := make([]*types.Account, 0, len(addrs))
	for _, addr := range addrs {
		accs = append(accs, acc.LoadAccount(addr))
	}
	return accs
}

// CheckTransfer 检查余额是否足够
func (acc *DB) CheckTransfer(from, to string, amount uint64) error {
	if !types.CheckAmount(amount) {
		return types.ErrAmount
	}
	if from == to {
		return types.ErrSendSameToRecv
	}
	if acc.LoadAccount(from).Balance < amount {
		return types.ErrNoBalance
	}
	return nil
}

// Transfer 普通账户之间转账
func (acc *DB) Transfer(from, to string, amount uint64) (*types.Receipt, error) {
	if err := acc.CheckTransfer(from, to, amount); err != nil {
		return nil, err
	}
	accFrom := acc.LoadAccount(from)
	accTo := acc.LoadAccount(to)
	balanceTo, err := types.SafeAdd(accTo.Balance, amount)
	if err != nil {
		return nil, err
	}
	copyfrom := *accFrom
	copyto := *accTo

	accFrom.Balance -= amount
	accTo.Balance = balanceTo

	receiptBalanceFrom := &types.ReceiptAccountTransfer{
		Prev:    &copyfrom,
		Current: accFrom,
	}
	receiptBalanceTo := &types.ReceiptAccountTransfer{
		Prev:    &copyto,
		Current: accTo,
	}
	acc.SaveAccount(accFrom)
	acc.SaveAccount(accTo)
	return acc.transferReceipt(accFrom, accTo, receiptBalanceFrom, receiptBalanceTo), nil
}

func (acc *DB) depositBalance(execaddr string, amount uint64) (*types.Receipt, error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	acc1 := acc.LoadAccount(execaddr)
	balance, err := types.SafeAdd(acc1.Balance, amount)
	if err != nil {
		return nil, err
	}
	copyacc := *acc1
	acc1.Balance = balance
	receiptBalance := &types.ReceiptAccountTransfer{
		Prev:    &copyacc,
		Current: acc1,
	}
	acc.SaveAccount(acc1)
	log1 := &types.ReceiptLog{
		Ty:  types.TyLogDeposit,
		Log: types.Encode(receiptBalance),
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   acc.GetKVSet(acc1),
		Logs: []*types.ReceiptLog{log1},
	}, nil
}

func (acc *DB) transferReceipt(accFrom, accTo *types.Account, receiptFrom, receiptTo *types.ReceiptAccountTransfer) *types.Receipt {
	ty := int32(types.TyLogTransfer)
	log1 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptFrom),
	}
	log2 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptTo),
	}
	kv := acc.GetKVSet(accFrom)
	kv = append(kv, acc.GetKVSet(accTo)...)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{log1, log2},
	}
}

// SaveAccount 写入数据库
func (acc *DB) SaveAccount(acc1 *types.Account) {
	set := acc.GetKVSet(acc1)
	for i := 0; i < len(set); i++ {
		if err := acc.db.Set(set[i].Key, set[i].Value); err != nil {
			panic(err)
		}
	}
}

// GetKVSet 将账户数据转为数据库存储kv
func (acc *DB) GetKVSet(acc1 *types.Account) (kvset []*types.KeyValue) {
	value := types.Encode(acc1)
	kvset = append(kvset, &types.KeyValue{
		Key:   acc.AccountKey(acc1.Addr),
		Value: value,
	})
	return kvset
}

// AccountKey return the key of address in DB
func (acc *DB) AccountKey(address string) (key []byte) {
	key = append(key, acc.accountKeyPerfix...)
	key = append(key, []byte(address)...)
	return key
}

// SymbolPrefix 账户 key 前缀
func SymbolPrefix(execer string, symbol string) string {
	return fmt.Sprintf("mavl-%s-%s-", execer, symbol)
}

func (acc *DB) mergeReceipt(receipt, receipt2 *types.Receipt) *types.Receipt {
	return receipt.Merge(receipt2)
}
