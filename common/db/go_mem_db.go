// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"sort"
	"strings"
	"sync"
)

// memdb 应该无需区分同步与异步操作

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	registerDBCreator(MemDBBackendStr, dbCreator, false)
}

// GoMemDB 内存数据库, 主要用于测试
type GoMemDB struct {
	db   map[string][]byte
	lock sync.RWMutex
}

// NewGoMemDB new
func NewGoMemDB(name string, dir string, cache int) (*GoMemDB, error) {
	// memdb 不需要创建文件
	return &GoMemDB{
		db: make(map[string][]byte),
	}, nil
}

// Get get
func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if entry, ok := db.db[string(key)]; ok {
		return cloneByte(entry), nil
	}
	return nil, ErrNotFoundInDb
}

// Set set
func (db *GoMemDB) Set(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	db.db[string(key)] = cloneByte(value)
	return nil
}

// Delete delete
func (db *GoMemDB) Delete(key []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	delete(db.db, string(key))
	return nil
}

// Close nothing to release
func (db *GoMemDB) Close() {
}

// List 前缀列表
func (db *GoMemDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	return listValues(db, prefix, key, count, direction)
}

func (db *GoMemDB) iterate(prefix []byte, reverse bool, fn func(key, value []byte) bool) error {
	db.lock.RLock()
	var keys []string
	for k := range db.db {
		if strings.HasPrefix(k, string(prefix)) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	values := make([][]byte, len(keys))
	for i, k := range keys {
		values[i] = db.db[k]
	}
	db.lock.RUnlock()

	for i := range keys {
		j := i
		if reverse {
			j = len(keys) - 1 - i
		}
		if !fn([]byte(keys[j]), values[j]) {
			break
		}
	}
	return nil
}

type kv struct{ k, v []byte }

type memBatch struct {
	db     *GoMemDB
	writes []kv
}

// NewBatch new
func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

func (b *memBatch) Set(key, value []byte) {
	if value == nil {
		value = []byte{}
	}
	b.writes = append(b.writes, kv{cloneByte(key), cloneByte(value)})
}

func (b *memBatch) Delete(key []byte) {
	b.writes = append(b.writes, kv{cloneByte(key), nil})
}

func (b *memBatch) Write() error {
	b.db.lock.Lock()
	defer b.db.lock.Unlock()

	for _, kv := range b.writes {
		if kv.v == nil {
			delete(b.db.db, string(kv.k))
		} else {
			b.db.db[string(kv.k)] = kv.v
		}
	}
	b.writes = nil
	return nil
}
