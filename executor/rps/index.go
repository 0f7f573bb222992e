// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rps

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/33cn/rps/types"
)

//list 保存的方法:
//key=gl:status:addr:gameId, 两个玩家各有一条索引
//key=gs:status:gameId, 每个游戏一条, 不限地址时按 id 排序

func calcGameKey(id uint64, status types.GameStatus, addr string) []byte {
	key := fmt.Sprintf("LODB-%s-gl:%d:%s:%020d", types.RpsX, status, addr, id)
	return []byte(key)
}

func calcGameStatusKey(id uint64, status types.GameStatus) []byte {
	key := fmt.Sprintf("LODB-%s-gs:%d:%020d", types.RpsX, status, id)
	return []byte(key)
}

// addr 为空时使用只按状态的索引
func calcGamePrefix(status types.GameStatus, addr string) []byte {
	if addr == "" {
		return []byte(fmt.Sprintf("LODB-%s-gs:%d:", types.RpsX, status))
	}
	return []byte(fmt.Sprintf("LODB-%s-gl:%d:%s:", types.RpsX, status, addr))
}

func addGame(key []byte, id uint64) *types.KeyValue {
	kv := &types.KeyValue{}
	kv.Key = key
	kv.Value = []byte(strconv.FormatUint(id, 10))
	return kv
}

func delGame(key []byte) *types.KeyValue {
	kv := &types.KeyValue{}
	kv.Key = key
	//value置nil,提交时，会自动执行删除操作
	kv.Value = nil
	return kv
}

//更新索引
func updateGame(ty int32, gamelog *types.ReceiptGame) (kvs []*types.KeyValue) {
	if ty != types.TyLogRpsCreate && gamelog.PrevStatus == gamelog.Status {
		return nil
	}
	id := gamelog.GameId
	prev, status := types.GameStatus(gamelog.PrevStatus), types.GameStatus(gamelog.Status)
	if ty != types.TyLogRpsCreate {
		kvs = append(kvs, delGame(calcGameStatusKey(id, prev)))
	}
	kvs = append(kvs, addGame(calcGameStatusKey(id, status), id))
	for _, addr := range gamelog.Players {
		if ty != types.TyLogRpsCreate {
			kvs = append(kvs, delGame(calcGameKey(id, prev, addr)))
		}
		kvs = append(kvs, addGame(calcGameKey(id, status, addr), id))
	}
	return kvs
}

func isGameLog(ty int32) bool {
	return ty == types.TyLogRpsCreate || ty == types.TyLogRpsJoin || ty == types.TyLogRpsCommit || ty == types.TyLogRpsReveal
}

// execLocal 根据 receipt 中的游戏日志生成本地索引
func execLocal(receipt *types.Receipt) ([]*types.KeyValue, error) {
	var kvs []*types.KeyValue
	for _, item := range receipt.Logs {
		if !isGameLog(item.Ty) {
			continue
		}
		var gamelog types.ReceiptGame
		if err := types.Decode(item.Log, &gamelog); err != nil {
			return nil, err
		}
		kvs = append(kvs, updateGame(item.Ty, &gamelog)...)
	}
	return kvs, nil
}

// checkGameIDDup 去掉重复的 id, 保持原有顺序
func checkGameIDDup(values [][]byte) ([]uint64, error) {
	var result []uint64
	seen := make(map[string]bool)
	for _, value := range values {
		//过滤空值
		if len(value) == 0 || bytes.Equal(value, types.EmptyValue) {
			continue
		}
		if seen[string(value)] {
			continue
		}
		seen[string(value)] = true
		id, err := strconv.ParseUint(string(value), 10, 64)
		if err != nil {
			return nil, err
		}
		result = append(result, id)
	}
	return result, nil
}
