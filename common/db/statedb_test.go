// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateDBRollback(t *testing.T) {
	mem, _ := NewGoMemDB("test", "", 0)
	require.Nil(t, mem.Set([]byte("a"), []byte("1")))
	s := NewStateDB(mem)

	s.Begin()
	require.Nil(t, s.Set([]byte("a"), []byte("2")))
	require.Nil(t, s.Set([]byte("b"), []byte("3")))
	v, err := s.Get([]byte("a"))
	require.Nil(t, err)
	assert.Equal(t, []byte("2"), v)
	require.Nil(t, s.Rollback())

	v, err = s.Get([]byte("a"))
	require.Nil(t, err)
	assert.Equal(t, []byte("1"), v)
	_, err = s.Get([]byte("b"))
	assert.Equal(t, ErrNotFoundInDb, err)
}

func TestStateDBCommitThenFlush(t *testing.T) {
	mem, _ := NewGoMemDB("test", "", 0)
	require.Nil(t, mem.Set([]byte("del"), []byte("x")))
	s := NewStateDB(mem)

	s.Begin()
	require.Nil(t, s.Set([]byte("a"), []byte("1")))
	require.Nil(t, s.Delete([]byte("del")))
	require.Nil(t, s.Commit())
	assert.False(t, s.InTx())

	// 未 Flush 之前底层数据库不变
	_, err := mem.Get([]byte("a"))
	assert.Equal(t, ErrNotFoundInDb, err)
	_, err = s.Get([]byte("del"))
	assert.Equal(t, ErrNotFoundInDb, err)

	require.Nil(t, s.Flush())
	v, err := mem.Get([]byte("a"))
	require.Nil(t, err)
	assert.Equal(t, []byte("1"), v)
	_, err = mem.Get([]byte("del"))
	assert.Equal(t, ErrNotFoundInDb, err)
}

func TestStateDBTxState(t *testing.T) {
	s := NewStateDB(nil)
	assert.Equal(t, ErrTxNotBegin, s.Commit())
	assert.Equal(t, ErrTxNotBegin, s.Rollback())

	s.Begin()
	assert.Equal(t, ErrFlushInTx, s.Flush())
	require.Nil(t, s.Commit())
	require.Nil(t, s.Flush())
}

var errDiskFull = errors.New("disk full")

// failDB 打开 fail 时 batch 写入失败
type failDB struct {
	*GoMemDB
	fail bool
}

func (db *failDB) NewBatch(sync bool) Batch {
	return &failBatch{Batch: db.GoMemDB.NewBatch(sync), db: db}
}

type failBatch struct {
	Batch
	db *failDB
}

func (b *failBatch) Write() error {
	if b.db.fail {
		return errDiskFull
	}
	return b.Batch.Write()
}

func TestStateDBCommitFlush(t *testing.T) {
	mem, _ := NewGoMemDB("test", "", 0)
	require.Nil(t, mem.Set([]byte("del"), []byte("x")))
	s := NewStateDB(mem)
	require.Nil(t, s.Set([]byte("pending"), []byte("p")))

	assert.Equal(t, ErrTxNotBegin, s.CommitFlush())

	s.Begin()
	require.Nil(t, s.Set([]byte("a"), []byte("1")))
	require.Nil(t, s.Set([]byte("pending"), []byte("q")))
	require.Nil(t, s.Delete([]byte("del")))
	require.Nil(t, s.CommitFlush())
	assert.False(t, s.InTx())

	v, err := mem.Get([]byte("a"))
	require.Nil(t, err)
	assert.Equal(t, []byte("1"), v)
	// 事务中的值覆盖之前未落盘的值
	v, err = mem.Get([]byte("pending"))
	require.Nil(t, err)
	assert.Equal(t, []byte("q"), v)
	_, err = mem.Get([]byte("del"))
	assert.Equal(t, ErrNotFoundInDb, err)
}

func TestStateDBCommitFlushFail(t *testing.T) {
	mem, _ := NewGoMemDB("test", "", 0)
	require.Nil(t, mem.Set([]byte("a"), []byte("1")))
	db := &failDB{GoMemDB: mem, fail: true}
	s := NewStateDB(db)
	require.Nil(t, s.Set([]byte("pending"), []byte("p")))

	s.Begin()
	require.Nil(t, s.Set([]byte("a"), []byte("2")))
	require.Nil(t, s.Set([]byte("b"), []byte("3")))
	assert.Equal(t, errDiskFull, s.CommitFlush())
	assert.False(t, s.InTx())

	// 失败的事务既不在 cache 里也不在数据库里
	v, err := s.Get([]byte("a"))
	require.Nil(t, err)
	assert.Equal(t, []byte("1"), v)
	_, err = s.Get([]byte("b"))
	assert.Equal(t, ErrNotFoundInDb, err)
	// 之前已提交的修改还在 cache 中, 下一次落盘时写入
	v, err = s.Get([]byte("pending"))
	require.Nil(t, err)
	assert.Equal(t, []byte("p"), v)

	db.fail = false
	s.Begin()
	require.Nil(t, s.Set([]byte("c"), []byte("4")))
	require.Nil(t, s.CommitFlush())
	for k, want := range map[string]string{"a": "1", "pending": "p", "c": "4"} {
		v, err := mem.Get([]byte(k))
		require.Nil(t, err, k)
		assert.Equal(t, []byte(want), v, k)
	}
	_, err = mem.Get([]byte("b"))
	assert.Equal(t, ErrNotFoundInDb, err)
}
