// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types commands中结构体定义
package types

// AccountResult defines account result command
type AccountResult struct {
	Currency int32  `json:"currency,omitempty"`
	Balance  string `json:"balance,omitempty"`
	Frozen   string `json:"frozen,omitempty"`
	Addr     string `json:"addr,omitempty"`
}

// ExecAccountResult defines account result of exec command
type ExecAccountResult struct {
	Execer   string         `json:"execer,omitempty"`
	ExecAddr string         `json:"execAddr,omitempty"`
	Wallet   *AccountResult `json:"wallet"`
	Account  *AccountResult `json:"account"`
}

// CommitmentResult 承诺的显示格式
type CommitmentResult struct {
	Hash     string `json:"hash"`
	Revealed string `json:"revealed,omitempty"`
}

// GameResult 游戏的显示格式
type GameResult struct {
	ID          uint64              `json:"id"`
	Status      string              `json:"status"`
	UIState     string              `json:"uiState"`
	Bet         string              `json:"bet"`
	Escrowed    string              `json:"escrowed"`
	Players     [2]string           `json:"players"`
	HashType    string              `json:"hashType"`
	Commitments [2]*CommitmentResult `json:"commitments"`
	Amounts     [2]string           `json:"amounts,omitempty"`
	CreateTime  int64               `json:"createTime,omitempty"`
	JoinTime    int64               `json:"joinTime,omitempty"`
	CommitTime  int64               `json:"commitTime,omitempty"`
	RevealTime  int64               `json:"revealTime,omitempty"`
}

// ReceiptLogResult defines receipt log result
type ReceiptLogResult struct {
	Ty     int32       `json:"ty"`
	TyName string      `json:"tyName"`
	Log    interface{} `json:"log"`
}

// ReceiptResult defines receipt result
type ReceiptResult struct {
	Ty   int32               `json:"ty"`
	Logs []*ReceiptLogResult `json:"logs"`
}
