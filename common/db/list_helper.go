// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
)

// list direction
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)

// iteratorDB walks the keys under prefix in key order, stopping when fn returns false.
type iteratorDB interface {
	iterate(prefix []byte, reverse bool, fn func(key, value []byte) bool) error
}

// listValues 列出前缀下的 value, key 不为空时从 key 之后开始, count <= 0 表示全部
func listValues(db iteratorDB, prefix, key []byte, count, direction int32) ([][]byte, error) {
	reverse := direction == ListDESC
	var values [][]byte
	err := db.iterate(prefix, reverse, func(k, v []byte) bool {
		if len(key) > 0 {
			cmp := bytes.Compare(k, key)
			if (!reverse && cmp <= 0) || (reverse && cmp >= 0) {
				return true
			}
		}
		values = append(values, cloneByte(v))
		return count <= 0 || int32(len(values)) < count
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}
