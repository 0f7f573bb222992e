// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove(t *testing.T) {
	assert.False(t, MoveNone.IsValid())
	assert.True(t, Rock.IsValid())
	assert.True(t, Scissors.IsValid())
	assert.False(t, Move(4).IsValid())
	assert.False(t, Move(-1).IsValid())
	assert.Equal(t, "Paper", Paper.String())
	assert.Equal(t, "Move(9)", Move(9).String())
	assert.Equal(t, "Move(-1)", Move(-1).String())

	for in, want := range map[string]Move{"rock": Rock, " Paper ": Paper, "3": Scissors, "SCISSORS": Scissors} {
		m, err := ParseMove(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, m)
	}
	_, err := ParseMove("lizard")
	assert.Equal(t, ErrInvalidMove, err)
	_, err = ParseMove("0")
	assert.Equal(t, ErrInvalidMove, err)
}

func TestGameStatus(t *testing.T) {
	assert.Equal(t, "Committed", GameCommitted.String())
	s, err := ParseGameStatus("revealed")
	require.NoError(t, err)
	assert.Equal(t, GameRevealed, s)
	s, err = ParseGameStatus("1")
	require.NoError(t, err)
	assert.Equal(t, GameJoined, s)
	_, err = ParseGameStatus("idle")
	assert.Error(t, err)

	// 前端显示的状态比存储的状态多一个 Idle
	assert.Equal(t, UICreated, UIStateOf(GameCreated))
	assert.Equal(t, UIRevealed, UIStateOf(GameRevealed))
	assert.Equal(t, "Idle", UIIdle.String())
}

func TestGameSlots(t *testing.T) {
	g := NewGame(0, "a", "b", 10)
	assert.Equal(t, GameCreated, g.GameStatus())
	assert.Equal(t, uint64(10), g.Escrowed)
	assert.Equal(t, 0, g.PlayerIndex("a"))
	assert.Equal(t, 1, g.PlayerIndex("b"))
	assert.Equal(t, -1, g.PlayerIndex("c"))
	assert.False(t, g.BothCommitted())
	assert.False(t, g.BothRevealed())
	assert.Nil(t, g.Commitment(2))
	assert.False(t, g.Commitment(-1).IsCommitted())

	g.Commitments[1].Hash = []byte{2}
	assert.False(t, g.BothCommitted())
	g.Commitments[0].Hash = []byte{1}
	assert.True(t, g.BothCommitted())
	g.Commitments[0].Revealed = int32(Rock)
	assert.False(t, g.BothRevealed())
	g.Commitments[1].Revealed = int32(Paper)
	assert.True(t, g.BothRevealed())
	assert.Equal(t, Paper, g.Commitment(1).RevealedMove())

	g.SetStatus(GameRevealed)
	assert.Equal(t, int32(3), g.Status)
}

func TestGameClone(t *testing.T) {
	g := NewGame(1, "a", "b", 5)
	g.Commitments[0].Hash = []byte{1, 2}
	c := g.Clone()
	assert.True(t, proto.Equal(g, c))

	c.Commitments[0].Hash[0] = 9
	c.Commitments[0].Revealed = int32(Scissors)
	c.Players[0] = "x"
	assert.Equal(t, []byte{1, 2}, g.Commitments[0].Hash)
	assert.Equal(t, MoveNone, g.Commitment(0).RevealedMove())
	assert.Equal(t, "a", g.Players[0])

	var nilGame *Game
	assert.Nil(t, nilGame.Clone())
}

func TestGameEncode(t *testing.T) {
	g := NewGame(7, "a", "b", 10)
	g.SetStatus(GameJoined)
	g.Escrowed = 20
	g.Commitments[1].Hash = []byte{0xff}
	var decoded Game
	require.NoError(t, Decode(Encode(g), &decoded))
	assert.True(t, proto.Equal(g, &decoded))
	// 空的承诺位置在解码后依然存在
	require.Len(t, decoded.Commitments, 2)
	assert.False(t, decoded.Commitment(0).IsCommitted())
	assert.True(t, decoded.Commitment(1).IsCommitted())
}

func TestActionPayload(t *testing.T) {
	action := NewRevealAction(3, Paper, []byte("salt"))
	var decoded RpsAction
	require.NoError(t, Decode(Encode(action), &decoded))
	assert.Equal(t, int32(RpsActionReveal), decoded.Ty)
	require.NotNil(t, decoded.GetReveal())
	assert.Equal(t, uint64(3), decoded.GetReveal().GameId)
	assert.Equal(t, int32(Paper), decoded.GetReveal().Move)
	assert.Nil(t, decoded.GetCreate())

	assert.Equal(t, "b", NewCreateAction("b", 1).GetCreate().Contestant)
	assert.Equal(t, uint64(2), NewJoinAction(2, 9).GetJoin().GameId)
	assert.Equal(t, int32(Rock), NewCommitAction(1, Rock, nil).GetCommit().Move)
	assert.Len(t, NewCommitHashAction(1, []byte{1}).GetCommitHash().Hash, 1)
}
