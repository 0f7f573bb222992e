// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"fmt"
	"testing"

	"github.com/33cn/rps/types"
	pkgerr "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T, backend string) DB {
	db, err := NewDB("test", backend, t.TempDir(), 16)
	require.Nil(t, err)
	t.Cleanup(db.Close)
	return db
}

func testDBGetSetDelete(t *testing.T, db DB) {
	_, err := db.Get([]byte("aaa"))
	assert.Equal(t, ErrNotFoundInDb, err)

	require.Nil(t, db.Set([]byte("aaa"), []byte("1")))
	v, err := db.Get([]byte("aaa"))
	require.Nil(t, err)
	assert.Equal(t, []byte("1"), v)

	require.Nil(t, db.Delete([]byte("aaa")))
	_, err = db.Get([]byte("aaa"))
	assert.Equal(t, ErrNotFoundInDb, err)
}

func testDBList(t *testing.T, db DB) {
	for i := 0; i < 5; i++ {
		require.Nil(t, db.Set([]byte(fmt.Sprintf("key:%02d", i)), []byte(fmt.Sprintf("v%d", i))))
	}
	require.Nil(t, db.Set([]byte("other:01"), []byte("x")))

	values, err := db.List([]byte("key:"), nil, 0, ListASC)
	require.Nil(t, err)
	assert.Equal(t, [][]byte{[]byte("v0"), []byte("v1"), []byte("v2"), []byte("v3"), []byte("v4")}, values)

	values, err = db.List([]byte("key:"), nil, 2, ListDESC)
	require.Nil(t, err)
	assert.Equal(t, [][]byte{[]byte("v4"), []byte("v3")}, values)

	values, err = db.List([]byte("key:"), []byte("key:01"), 2, ListASC)
	require.Nil(t, err)
	assert.Equal(t, [][]byte{[]byte("v2"), []byte("v3")}, values)

	values, err = db.List([]byte("key:"), []byte("key:03"), 0, ListDESC)
	require.Nil(t, err)
	assert.Equal(t, [][]byte{[]byte("v2"), []byte("v1"), []byte("v0")}, values)

	values, err = db.List([]byte("none:"), nil, 0, ListASC)
	require.Nil(t, err)
	assert.Len(t, values, 0)
}

func testDBBatch(t *testing.T, db DB) {
	require.Nil(t, db.Set([]byte("b:1"), []byte("old")))
	batch := db.NewBatch(true)
	batch.Set([]byte("b:2"), []byte("two"))
	batch.Delete([]byte("b:1"))

	// 未 Write 前不可见
	_, err := db.Get([]byte("b:2"))
	assert.Equal(t, ErrNotFoundInDb, err)

	require.Nil(t, batch.Write())
	v, err := db.Get([]byte("b:2"))
	require.Nil(t, err)
	assert.Equal(t, []byte("two"), v)
	_, err = db.Get([]byte("b:1"))
	assert.Equal(t, ErrNotFoundInDb, err)
}

func TestBackends(t *testing.T) {
	for _, backend := range []string{MemDBBackendStr, GoLevelDBBackendStr, GoBadgerDBBackendStr} {
		backend := backend
		t.Run(backend, func(t *testing.T) {
			testDBGetSetDelete(t, newTestDB(t, backend))
			testDBList(t, newTestDB(t, backend))
			testDBBatch(t, newTestDB(t, backend))
		})
	}
}

func TestNewDBUnknownBackend(t *testing.T) {
	_, err := NewDB("test", "rocksdb", t.TempDir(), 16)
	assert.Equal(t, types.ErrDBBackendNotFound, pkgerr.Cause(err))
}

func TestMemDBCopiesValue(t *testing.T) {
	db, _ := NewGoMemDB("test", "", 0)
	value := []byte("abc")
	require.Nil(t, db.Set([]byte("k"), value))
	value[0] = 'x'
	v, err := db.Get([]byte("k"))
	require.Nil(t, err)
	assert.Equal(t, []byte("abc"), v)
}
