// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// Merge appends the kv and logs of other to r.
func (r *Receipt) Merge(other *Receipt) *Receipt {
	if other == nil {
		return r
	}
	r.KV = append(r.KV, other.KV...)
	r.Logs = append(r.Logs, other.Logs...)
	return r
}
