// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	assert.Equal(t, "", ToHex(nil))
	assert.Equal(t, "0x0102ff", ToHex([]byte{1, 2, 255}))

	b, err := FromHex("0x0102ff")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 255}, b)

	b, err = FromHex("102ff")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 255}, b)

	_, err = FromHex("0xzz")
	assert.Error(t, err)

	b, err = FromHex("")
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestHashes(t *testing.T) {
	// sha256("abc")
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", Bytes2Hex(Sha256([]byte("abc"))))
	// keccak256("") as used by ethereum
	assert.Equal(t, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", Bytes2Hex(ShaKeccak256(nil)))
	assert.Len(t, Sha2Sum([]byte("abc")), 32)
	assert.Len(t, Rimp160AfterSha256([]byte("abc")), 20)
	assert.NotEqual(t, Sha256([]byte("abc")), ShaKeccak256([]byte("abc")))
}
