// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"fmt"
	"path"

	log "github.com/33cn/rps/common/log"
	"github.com/dgraph-io/badger"
)

var blog = log.New("module", "db.gobadgerdb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(GoBadgerDBBackendStr, dbCreator, false)
}

// GoBadgerDB badger 后端
type GoBadgerDB struct {
	db *badger.DB
}

// badgerLog 把 badger 的日志转给 log15
type badgerLog struct{}

func (badgerLog) Errorf(format string, args ...interface{}) { blog.Error(fmt.Sprintf(format, args...)) }
func (badgerLog) Warningf(format string, args ...interface{}) {
	blog.Warn(fmt.Sprintf(format, args...))
}
func (badgerLog) Infof(format string, args ...interface{})  { blog.Debug(fmt.Sprintf(format, args...)) }
func (badgerLog) Debugf(format string, args ...interface{}) { blog.Debug(fmt.Sprintf(format, args...)) }

// NewGoBadgerDB new
func NewGoBadgerDB(name string, dir string, cache int) (*GoBadgerDB, error) {
	opts := badger.DefaultOptions(path.Join(dir, name+".badger"))
	opts.Logger = badgerLog{}
	//opts.MaxTableSize = cache << 21

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &GoBadgerDB{db: db}, nil
}

// Get get
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, ErrNotFoundInDb
	}
	if err != nil {
		blog.Error("Get", "error", err)
		return nil, err
	}
	return val, nil
}

// Set set
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		blog.Error("Set", "error", err)
	}
	return err
}

// Delete delete
func (db *GoBadgerDB) Delete(key []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		blog.Error("Delete", "error", err)
	}
	return err
}

// Close close
func (db *GoBadgerDB) Close() {
	if err := db.db.Close(); err != nil {
		blog.Error("Close", "error", err)
	}
}

// List 前缀列表
func (db *GoBadgerDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	return listValues(db, prefix, key, count, direction)
}

func (db *GoBadgerDB) iterate(prefix []byte, reverse bool, fn func(key, value []byte) bool) error {
	return db.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = reverse
		it := txn.NewIterator(opts)
		defer it.Close()

		seek := prefix
		if reverse {
			// 反向遍历需要从前缀的最大值开始
			seek = append(cloneByte(prefix), 0xFF, 0xFF, 0xFF, 0xFF)
		}
		for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			if !fn(item.KeyCopy(nil), value) {
				break
			}
		}
		return nil
	})
}

type badgerBatch struct {
	db     *GoBadgerDB
	writes []kv
}

// NewBatch new
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &badgerBatch{db: db}
}

func (mBatch *badgerBatch) Set(key, value []byte) {
	if value == nil {
		value = []byte{}
	}
	mBatch.writes = append(mBatch.writes, kv{cloneByte(key), cloneByte(value)})
}

func (mBatch *badgerBatch) Delete(key []byte) {
	mBatch.writes = append(mBatch.writes, kv{cloneByte(key), nil})
}

func (mBatch *badgerBatch) Write() error {
	err := mBatch.db.db.Update(func(txn *badger.Txn) error {
		for _, kv := range mBatch.writes {
			var err error
			if kv.v == nil {
				err = txn.Delete(kv.k)
			} else {
				err = txn.Set(kv.k, kv.v)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		blog.Error("Write", "error", err)
		return err
	}
	mBatch.writes = nil
	return nil
}
