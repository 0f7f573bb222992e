// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"sync/atomic"
	"time"
)

var deltaTime int64

// MaxTimeDelta 超过这个范围的修正不生效
const MaxTimeDelta = 60 * time.Second

//SetTimeDelta realtime - localtime
//为了系统的安全，我们只做小范围时间错误的修复
func SetTimeDelta(dt time.Duration) {
	if dt > MaxTimeDelta || dt < -MaxTimeDelta {
		dt = 0
	}
	atomic.StoreInt64(&deltaTime, int64(dt))
}

//Now 修正后的当前时间, 游戏的各个时间戳都来自这里
func Now() time.Time {
	dt := time.Duration(atomic.LoadInt64(&deltaTime))
	return time.Now().Add(dt)
}
