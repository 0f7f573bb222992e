// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db 数据库接口以及 leveldb / badger / memdb 后端
package db

import (
	"errors"
	"sync"

	"github.com/33cn/rps/types"
	pkgerr "github.com/pkg/errors"
)

// ErrNotFoundInDb key 不存在
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

// KV 读写接口, 执行器只依赖这个接口
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
}

// Lister 前缀列表查询
type Lister interface {
	List(prefix, key []byte, count, direction int32) ([][]byte, error)
}

// DB 数据库后端
type DB interface {
	KV
	Lister
	Delete(key []byte) error
	NewBatch(sync bool) Batch
	Close()
}

// Batch 批量写, Write 之前不会对外可见
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
}

//-----------------------------------------------------------------------------

// backend names
const (
	LevelDBBackendStr    = "leveldb" // legacy, defaults to goleveldb.
	GoLevelDBBackendStr  = "goleveldb"
	MemDBBackendStr      = "memdb"
	GoBadgerDBBackendStr = "gobadgerdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var (
	backendsMu sync.Mutex
	backends   = map[string]dbCreator{}
)

func registerDBCreator(backend string, creator dbCreator, force bool) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

// NewDB 根据后端名称创建数据库
func NewDB(name string, backend string, dir string, cache int) (DB, error) {
	backendsMu.Lock()
	creator, ok := backends[backend]
	backendsMu.Unlock()
	if !ok {
		return nil, pkgerr.Wrap(types.ErrDBBackendNotFound, backend)
	}
	return creator(name, dir, cache)
}

func cloneByte(v []byte) []byte {
	if v == nil {
		return nil
	}
	value := make([]byte, len(v))
	copy(value, v)
	return value
}
