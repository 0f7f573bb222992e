// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// coin conversation
const (
	Coin    uint64 = 1e8
	MaxCoin uint64 = 1e17
)

// EmptyValue 这字符串表示数据库中的空值
var EmptyValue = []byte("emptyBVBiCj5jvE15pEiwro8TQRGnJSNsJF")

// RpsX 执行器名称
const RpsX = "rps"

// receipt type
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

// log type
const (
	TyLogErr = 1
	TyLogFee = 2

	TyLogTransfer        = 3
	TyLogGenesis         = 4
	TyLogDeposit         = 5
	TyLogExecTransfer    = 6
	TyLogExecWithdraw    = 7
	TyLogExecDeposit     = 8
	TyLogExecFrozen      = 9
	TyLogExecActive      = 10
	TyLogGenesisTransfer = 11
	TyLogGenesisDeposit  = 12

	TyLogRpsCreate = 711
	TyLogRpsJoin   = 712
	TyLogRpsCommit = 713
	TyLogRpsReveal = 714
)

var logNames = map[int32]string{
	TyLogErr:             "LogErr",
	TyLogFee:             "LogFee",
	TyLogTransfer:        "LogTransfer",
	TyLogGenesis:         "LogGenesis",
	TyLogDeposit:         "LogDeposit",
	TyLogExecTransfer:    "LogExecTransfer",
	TyLogExecWithdraw:    "LogExecWithdraw",
	TyLogExecDeposit:     "LogExecDeposit",
	TyLogExecFrozen:      "LogExecFrozen",
	TyLogExecActive:      "LogExecActive",
	TyLogGenesisTransfer: "LogGenesisTransfer",
	TyLogGenesisDeposit:  "LogGenesisDeposit",
	TyLogRpsCreate:       "LogRpsCreate",
	TyLogRpsJoin:         "LogRpsJoin",
	TyLogRpsCommit:       "LogRpsCommit",
	TyLogRpsReveal:       "LogRpsReveal",
}

// GetLogName 根据log type 获取名称
func GetLogName(ty int32) string {
	if name, ok := logNames[ty]; ok {
		return name
	}
	return "LogReserved"
}
