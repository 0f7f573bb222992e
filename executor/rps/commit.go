// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rps

import (
	"crypto/subtle"
	"encoding/binary"

	"github.com/33cn/rps/common"
	"github.com/33cn/rps/types"
	"github.com/pkg/errors"
)

// hash types
const (
	HashSha256    = "sha256"
	HashKeccak256 = "keccak256"
)

var hashFuncs = map[string]func([]byte) []byte{
	HashSha256:    common.Sha256,
	HashKeccak256: common.ShaKeccak256,
}

// HashSize 两种哈希都是 32 字节
func HashSize(hashType string) (int, error) {
	if _, ok := hashFuncs[hashType]; !ok {
		return 0, errors.Wrap(types.ErrInvalidHashType, hashType)
	}
	return 32, nil
}

// Commit 计算承诺值 hash(move || uvarint(len(salt)) || salt || committer)
// salt 带长度前缀, 不同的 (salt, committer) 切分不会得到同样的输入
func Commit(hashType string, move types.Move, salt []byte, committer string) ([]byte, error) {
	if !move.IsValid() {
		return nil, types.ErrInvalidMove
	}
	hash, ok := hashFuncs[hashType]
	if !ok {
		return nil, errors.Wrap(types.ErrInvalidHashType, hashType)
	}
	var lenbuf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(lenbuf[:], uint64(len(salt)))

	buf := make([]byte, 0, 1+n+len(salt)+len(committer))
	buf = append(buf, byte(move))
	buf = append(buf, lenbuf[:n]...)
	buf = append(buf, salt...)
	buf = append(buf, committer...)
	return hash(buf), nil
}

// Verify 重新计算承诺值并比较
func Verify(stored []byte, hashType string, move types.Move, salt []byte, committer string) error {
	hash, err := Commit(hashType, move, salt, committer)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare(hash, stored) != 1 {
		return types.ErrCommitmentMismatch
	}
	return nil
}
