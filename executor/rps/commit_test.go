// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rps

import (
	"testing"

	"github.com/33cn/rps/common"
	"github.com/33cn/rps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitDeterministic(t *testing.T) {
	for _, hashType := range []string{HashSha256, HashKeccak256} {
		h1, err := Commit(hashType, types.Rock, []byte("10"), addrA)
		require.Nil(t, err)
		h2, err := Commit(hashType, types.Rock, []byte("10"), addrA)
		require.Nil(t, err)
		assert.Equal(t, h1, h2)
		assert.Len(t, h1, 32)

		// 不同的提交者得到不同的承诺值, 对手无法复制
		h3, err := Commit(hashType, types.Rock, []byte("10"), addrB)
		require.Nil(t, err)
		assert.NotEqual(t, h1, h3)

		h4, err := Commit(hashType, types.Paper, []byte("10"), addrA)
		require.Nil(t, err)
		assert.NotEqual(t, h1, h4)
	}
}

func TestCommitLayout(t *testing.T) {
	hash, err := Commit(HashSha256, types.Scissors, []byte("abc"), "x")
	require.Nil(t, err)
	assert.Equal(t, common.Sha256([]byte{3, 3, 'a', 'b', 'c', 'x'}), hash)

	// salt 与 committer 的边界不能移动
	h1, _ := Commit(HashSha256, types.Rock, []byte("ab"), "c")
	h2, _ := Commit(HashSha256, types.Rock, []byte("a"), "bc")
	assert.NotEqual(t, h1, h2)

	h3, _ := Commit(HashSha256, types.Rock, nil, addrA)
	h4, _ := Commit(HashSha256, types.Rock, []byte{}, addrA)
	assert.Equal(t, h3, h4)
}

func TestCommitErrors(t *testing.T) {
	_, err := Commit(HashSha256, types.MoveNone, []byte("10"), addrA)
	assert.Equal(t, types.ErrInvalidMove, err)
	_, err = Commit(HashSha256, types.Move(4), []byte("10"), addrA)
	assert.Equal(t, types.ErrInvalidMove, err)
	_, err = Commit("md5", types.Rock, []byte("10"), addrA)
	assert.ErrorIs(t, err, types.ErrInvalidHashType)
	_, err = HashSize("md5")
	assert.ErrorIs(t, err, types.ErrInvalidHashType)
}

func TestVerify(t *testing.T) {
	hash, err := Commit(HashKeccak256, types.Paper, []byte("20"), addrB)
	require.Nil(t, err)

	assert.Nil(t, Verify(hash, HashKeccak256, types.Paper, []byte("20"), addrB))
	assert.Equal(t, types.ErrCommitmentMismatch, Verify(hash, HashKeccak256, types.Rock, []byte("20"), addrB))
	assert.Equal(t, types.ErrCommitmentMismatch, Verify(hash, HashKeccak256, types.Paper, []byte("21"), addrB))
	assert.Equal(t, types.ErrCommitmentMismatch, Verify(hash, HashKeccak256, types.Paper, []byte("20"), addrA))
	assert.Equal(t, types.ErrCommitmentMismatch, Verify(hash, HashSha256, types.Paper, []byte("20"), addrB))
	assert.Equal(t, types.ErrCommitmentMismatch, Verify(nil, HashKeccak256, types.Paper, []byte("20"), addrB))
	assert.Equal(t, types.ErrInvalidMove, Verify(hash, HashKeccak256, types.Move(9), []byte("20"), addrB))
}
