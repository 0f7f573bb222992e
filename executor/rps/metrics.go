// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rps

import (
	"time"

	"github.com/33cn/rps/types"
	"github.com/pkg/errors"
	go_metrics "github.com/rcrowley/go-metrics"
)

// 每个 Registry 使用独立的 metrics registry, 互不影响
type execMetrics struct {
	enabled  bool
	registry go_metrics.Registry
}

func newExecMetrics(enabled bool) *execMetrics {
	return &execMetrics{enabled: enabled, registry: go_metrics.NewRegistry()}
}

func (m *execMetrics) mark(name string, err error, duration time.Duration) {
	if !m.enabled {
		return
	}
	go_metrics.GetOrRegisterTimer("rps."+name+".time", m.registry).Update(duration)
	if err == nil {
		go_metrics.GetOrRegisterCounter("rps."+name+".ok", m.registry).Inc(1)
		return
	}
	go_metrics.GetOrRegisterCounter("rps."+name+".rejected", m.registry).Inc(1)
	if errors.Cause(err) == types.ErrCommitmentMismatch {
		go_metrics.GetOrRegisterCounter("rps.mismatch", m.registry).Inc(1)
	}
}

func (m *execMetrics) settled(game *types.Game) {
	if !m.enabled {
		return
	}
	go_metrics.GetOrRegisterCounter("rps.settled", m.registry).Inc(1)
	go_metrics.GetOrRegisterMeter("rps.volume", m.registry).Mark(int64(game.Amounts[0] + game.Amounts[1]))
}

func (m *execMetrics) games(next uint64) {
	if !m.enabled {
		return
	}
	go_metrics.GetOrRegisterGauge("rps.games", m.registry).Update(int64(next))
}
