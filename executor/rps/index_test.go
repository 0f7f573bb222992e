// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rps

import (
	"testing"

	"github.com/33cn/rps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcGameKey(t *testing.T) {
	key := calcGameKey(12, types.GameJoined, addrA)
	assert.Equal(t, "LODB-rps-gl:1:"+addrA+":00000000000000000012", string(key))
	assert.Equal(t, "LODB-rps-gs:1:00000000000000000012", string(calcGameStatusKey(12, types.GameJoined)))
	assert.Equal(t, "LODB-rps-gs:1:", string(calcGamePrefix(types.GameJoined, "")))
	assert.Equal(t, "LODB-rps-gl:3:"+addrB+":", string(calcGamePrefix(types.GameRevealed, addrB)))
}

func TestUpdateGame(t *testing.T) {
	gamelog := &types.ReceiptGame{GameId: 5, Status: int32(types.GameCreated), Players: []string{addrA, addrB}}
	kvs := updateGame(types.TyLogRpsCreate, gamelog)
	require.Len(t, kvs, 3)
	assert.Equal(t, calcGameStatusKey(5, types.GameCreated), kvs[0].Key)
	assert.Equal(t, calcGameKey(5, types.GameCreated, addrA), kvs[1].Key)
	assert.Equal(t, []byte("5"), kvs[1].Value)

	gamelog.PrevStatus = int32(types.GameCreated)
	gamelog.Status = int32(types.GameJoined)
	kvs = updateGame(types.TyLogRpsJoin, gamelog)
	require.Len(t, kvs, 6)
	assert.Nil(t, kvs[0].Value)
	assert.Equal(t, calcGameStatusKey(5, types.GameCreated), kvs[0].Key)
	assert.Equal(t, calcGameStatusKey(5, types.GameJoined), kvs[1].Key)
	assert.Nil(t, kvs[2].Value)
	assert.Equal(t, calcGameKey(5, types.GameCreated, addrA), kvs[2].Key)
	assert.Equal(t, calcGameKey(5, types.GameJoined, addrA), kvs[3].Key)

	// 状态没有变化时不更新索引
	gamelog.PrevStatus = int32(types.GameJoined)
	assert.Nil(t, updateGame(types.TyLogRpsCommit, gamelog))
}

func TestExecLocal(t *testing.T) {
	receipt := &types.Receipt{Logs: []*types.ReceiptLog{
		{Ty: types.TyLogExecFrozen, Log: []byte("not a game log")},
		{Ty: types.TyLogRpsCreate, Log: types.Encode(&types.ReceiptGame{GameId: 1, Players: []string{addrA, addrB}})},
	}}
	kvs, err := execLocal(receipt)
	require.Nil(t, err)
	assert.Len(t, kvs, 3)

	receipt.Logs[1].Log = []byte{0xff, 0xff}
	_, err = execLocal(receipt)
	assert.NotNil(t, err)
}

func TestCheckGameIDDup(t *testing.T) {
	ids, err := checkGameIDDup([][]byte{[]byte("3"), []byte("1"), []byte("3"), nil, types.EmptyValue, []byte("2")})
	require.Nil(t, err)
	assert.Equal(t, []uint64{3, 1, 2}, ids)

	_, err = checkGameIDDup([][]byte{[]byte("x")})
	assert.NotNil(t, err)
}
