// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"fmt"
	"strings"
)

// Move 猜拳的出手
type Move int32

// moves, 0 表示还未揭晓
const (
	MoveNone Move = 0
	Rock     Move = 1
	Paper    Move = 2
	Scissors Move = 3
)

var moveNames = []string{"None", "Rock", "Paper", "Scissors"}

// IsValid reports whether m is one of Rock, Paper or Scissors.
func (m Move) IsValid() bool {
	return m >= Rock && m <= Scissors
}

func (m Move) String() string {
	if m >= 0 && int(m) < len(moveNames) {
		return moveNames[m]
	}
	return fmt.Sprintf("Move(%d)", int32(m))
}

// ParseMove accepts either the name (case insensitive) or the numeric id of a move.
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "rock":
		return Rock, nil
	case "2", "paper":
		return Paper, nil
	case "3", "scissors":
		return Scissors, nil
	}
	return MoveNone, ErrInvalidMove
}

// GameStatus 游戏状态, 单调递增
type GameStatus int32

// game status, Revealed 为终态
const (
	GameCreated   GameStatus = 0
	GameJoined    GameStatus = 1
	GameCommitted GameStatus = 2
	GameRevealed  GameStatus = 3
)

// GameStatusList all stored status in lifecycle order
var GameStatusList = []GameStatus{GameCreated, GameJoined, GameCommitted, GameRevealed}

var statusNames = map[GameStatus]string{
	GameCreated:   "Created",
	GameJoined:    "Joined",
	GameCommitted: "Committed",
	GameRevealed:  "Revealed",
}

func (s GameStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("GameStatus(%d)", int32(s))
}

// ParseGameStatus parses a status by name or number.
func ParseGameStatus(s string) (GameStatus, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, st := range GameStatusList {
		if s == strings.ToLower(st.String()) || s == fmt.Sprint(int32(st)) {
			return st, nil
		}
	}
	return 0, fmt.Errorf("unknown game status %q", s)
}

// UIState is the state enumeration shown to a front end. Idle is never stored,
// it stands for a game id that does not exist yet.
type UIState int32

// ui states
const (
	UIIdle UIState = iota
	UICreated
	UIJoined
	UICommitted
	UIRevealed
)

var uiNames = []string{"Idle", "Created", "Joined", "Committed", "Revealed"}

func (s UIState) String() string {
	if s >= 0 && int(s) < len(uiNames) {
		return uiNames[s]
	}
	return fmt.Sprintf("UIState(%d)", int32(s))
}

// UIStateOf maps a stored status to the ui enumeration.
func UIStateOf(s GameStatus) UIState {
	return UIState(s) + 1
}

// IsCommitted reports whether the slot holds a commitment hash.
func (c *Commitment) IsCommitted() bool {
	return len(c.GetHash()) > 0
}

// IsRevealed reports whether the committed move was opened.
func (c *Commitment) IsRevealed() bool {
	return c.GetRevealed() != int32(MoveNone)
}

// RevealedMove 揭晓的出手
func (c *Commitment) RevealedMove() Move {
	return Move(c.GetRevealed())
}

// NewGame 新建的游戏有两个空的承诺位置, players[0] 为发起者
func NewGame(id uint64, initiator, contestant string, bet uint64) *Game {
	return &Game{
		GameId:      id,
		Bet:         bet,
		Players:     []string{initiator, contestant},
		Status:      int32(GameCreated),
		Escrowed:    bet,
		Commitments: []*Commitment{{}, {}},
	}
}

// GameStatus 存储的状态
func (g *Game) GameStatus() GameStatus {
	return GameStatus(g.GetStatus())
}

// SetStatus 修改状态
func (g *Game) SetStatus(s GameStatus) {
	g.Status = int32(s)
}

// PlayerIndex returns the slot of addr, or -1 when addr does not take part in the game.
func (g *Game) PlayerIndex(addr string) int {
	for i, p := range g.GetPlayers() {
		if p == addr {
			return i
		}
	}
	return -1
}

// Commitment 第 i 个玩家的承诺, 越界时返回 nil
func (g *Game) Commitment(i int) *Commitment {
	if i < 0 || i >= len(g.GetCommitments()) {
		return nil
	}
	return g.Commitments[i]
}

// BothCommitted is a query over the two commitment slots.
func (g *Game) BothCommitted() bool {
	return g.Commitment(0).IsCommitted() && g.Commitment(1).IsCommitted()
}

// BothRevealed is a query over the two commitment slots.
func (g *Game) BothRevealed() bool {
	return g.Commitment(0).IsRevealed() && g.Commitment(1).IsRevealed()
}

// Clone returns a deep copy so callers can never mutate stored state.
func (g *Game) Clone() *Game {
	if g == nil {
		return nil
	}
	return Clone(g).(*Game)
}

// rps action type
const (
	RpsActionCreate = iota + 1
	RpsActionJoin
	RpsActionCommit
	RpsActionCommitHash
	RpsActionReveal
)

// NewCreateAction 创建游戏的 payload
func NewCreateAction(contestant string, stake uint64) *RpsAction {
	return &RpsAction{
		Ty:    RpsActionCreate,
		Value: &RpsAction_Create{Create: &RpsCreate{Contestant: contestant, Stake: stake}},
	}
}

// NewJoinAction 加入游戏的 payload
func NewJoinAction(id uint64, stake uint64) *RpsAction {
	return &RpsAction{
		Ty:    RpsActionJoin,
		Value: &RpsAction_Join{Join: &RpsJoin{GameId: id, Stake: stake}},
	}
}

// NewCommitAction 提交出手的 payload
func NewCommitAction(id uint64, move Move, salt []byte) *RpsAction {
	return &RpsAction{
		Ty:    RpsActionCommit,
		Value: &RpsAction_Commit{Commit: &RpsCommit{GameId: id, Move: int32(move), Salt: salt}},
	}
}

// NewCommitHashAction 提交承诺值的 payload
func NewCommitHashAction(id uint64, hash []byte) *RpsAction {
	return &RpsAction{
		Ty:    RpsActionCommitHash,
		Value: &RpsAction_CommitHash{CommitHash: &RpsCommitHash{GameId: id, Hash: hash}},
	}
}

// NewRevealAction 揭晓出手的 payload
func NewRevealAction(id uint64, move Move, salt []byte) *RpsAction {
	return &RpsAction{
		Ty:    RpsActionReveal,
		Value: &RpsAction_Reveal{Reveal: &RpsReveal{GameId: id, Move: int32(move), Salt: salt}},
	}
}
