// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"math/bits"

	"github.com/golang/protobuf/proto"
)

//Encode  编码
func Encode(data proto.Message) []byte {
	b, err := proto.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

//Size  消息大小
func Size(data proto.Message) int {
	return proto.Size(data)
}

//Decode  解码
func Decode(data []byte, msg proto.Message) error {
	return proto.Unmarshal(data, msg)
}

//Clone  克隆
func Clone(data proto.Message) proto.Message {
	return proto.Clone(data)
}

// CheckAmount 检测转账金额
func CheckAmount(amount uint64) bool {
	if amount == 0 || amount >= MaxCoin {
		return false
	}
	return true
}

// SafeAdd adds two amounts and reports an overflow instead of wrapping.
func SafeAdd(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrAmountOverflow
	}
	return sum, nil
}

// SafeMul multiplies two amounts and reports an overflow instead of wrapping.
func SafeMul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrAmountOverflow
	}
	return lo, nil
}
