// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"errors"
	"sort"
)

var (
	// ErrTxNotBegin Commit/Rollback 之前没有 Begin
	ErrTxNotBegin = errors.New("ErrTxNotBegin")
	// ErrFlushInTx 事务中不能 Flush
	ErrFlushInTx = errors.New("ErrFlushInTx")
)

// StateDB 内存事务层, 写入先进 txcache, Commit 后进入 cache, Flush 时落盘
type StateDB struct {
	cache   map[string][]byte
	txcache map[string][]byte
	intx    bool
	db      DB
}

// NewStateDB new state db
func NewStateDB(db DB) *StateDB {
	return &StateDB{
		cache: make(map[string][]byte),
		db:    db,
	}
}

// Begin 开启内存事务处理
func (s *StateDB) Begin() {
	s.intx = true
	s.txcache = make(map[string][]byte)
}

// Rollback reset tx
func (s *StateDB) Rollback() error {
	if !s.intx {
		return ErrTxNotBegin
	}
	s.resetTx()
	return nil
}

// Commit 把事务内的修改合并到 cache
func (s *StateDB) Commit() error {
	if !s.intx {
		return ErrTxNotBegin
	}
	for k, v := range s.txcache {
		s.cache[k] = v
	}
	s.resetTx()
	return nil
}

func (s *StateDB) resetTx() {
	s.intx = false
	s.txcache = nil
}

// InTx 是否处于事务中
func (s *StateDB) InTx() bool {
	return s.intx
}

// Get get value from state db
func (s *StateDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if s.intx {
		if value, ok := s.txcache[skey]; ok {
			return markerToValue(value)
		}
	}
	if value, ok := s.cache[skey]; ok {
		return markerToValue(value)
	}
	if s.db == nil {
		return nil, ErrNotFoundInDb
	}
	value, err := s.db.Get(key)
	if err != nil {
		return nil, err
	}
	//get 的值可以写入cache，因为没有对系统的值做修改
	s.cache[skey] = value
	return cloneByte(value), nil
}

// Set 事务中写 txcache, 否则直接写 cache
func (s *StateDB) Set(key []byte, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	s.set(key, cloneByte(value))
	return nil
}

// Delete 写入删除标记
func (s *StateDB) Delete(key []byte) error {
	s.set(key, nil)
	return nil
}

func (s *StateDB) set(key []byte, value []byte) {
	if s.intx {
		s.txcache[string(key)] = value
		return
	}
	s.cache[string(key)] = value
}

// Flush 把已提交的 cache 写入底层数据库, 事务中不允许 Flush
func (s *StateDB) Flush() error {
	if s.intx {
		return ErrFlushInTx
	}
	if err := s.write(s.cache, nil); err != nil {
		return err
	}
	s.cache = make(map[string][]byte)
	return nil
}

// CommitFlush 提交事务并落盘.
// 写入失败时事务被丢弃, cache 保持事务开始前的样子
func (s *StateDB) CommitFlush() error {
	if !s.intx {
		return ErrTxNotBegin
	}
	if s.db == nil {
		return s.Commit()
	}
	err := s.write(s.cache, s.txcache)
	s.resetTx()
	if err != nil {
		return err
	}
	s.cache = make(map[string][]byte)
	return nil
}

// write 把 cache 和 tx 合并后写成一个 batch, tx 中的值优先
func (s *StateDB) write(cache, tx map[string][]byte) error {
	if s.db == nil || len(cache)+len(tx) == 0 {
		return nil
	}
	keys := make([]string, 0, len(cache)+len(tx))
	for k := range cache {
		if _, ok := tx[k]; !ok {
			keys = append(keys, k)
		}
	}
	for k := range tx {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	batch := s.db.NewBatch(true)
	for _, k := range keys {
		v, ok := tx[k]
		if !ok {
			v = cache[k]
		}
		if v == nil {
			batch.Delete([]byte(k))
		} else {
			batch.Set([]byte(k), v)
		}
	}
	return batch.Write()
}

func markerToValue(value []byte) ([]byte, error) {
	if value == nil {
		return nil, ErrNotFoundInDb
	}
	return cloneByte(value), nil
}
