// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package rps 实现两人猜拳游戏的托管与结算.

游戏流程:
	Created   发起者创建游戏, 冻结押注
	Joined    指定的对手加入, 冻结同样的押注
	Committed 双方都提交了出手的承诺值
	Revealed  双方都揭晓了出手, 按结果解冻或转移冻结资金

所有的资金操作都通过 Ledger 完成, 游戏数据和账户数据写在同一个 StateDB 里,
一次操作失败时整体回滚.
*/
package rps

import (
	log "github.com/33cn/rps/common/log"
	"github.com/33cn/rps/types"
)

var rlog = log.New("module", "execs.rps")

// Ledger 资金托管接口, account.DB 实现了这个接口
type Ledger interface {
	LoadExecAccount(addr, execaddr string) *types.Account
	ExecFrozen(addr, execaddr string, amount uint64) (*types.Receipt, error)
	ExecActive(addr, execaddr string, amount uint64) (*types.Receipt, error)
	ExecTransferFrozen(from, to, execaddr string, amount uint64) (*types.Receipt, error)
}
