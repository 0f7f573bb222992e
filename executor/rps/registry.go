// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rps

import (
	"sync"
	"time"

	"github.com/33cn/rps/account"
	"github.com/33cn/rps/common/address"
	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/types"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	go_metrics "github.com/rcrowley/go-metrics"
)

// Option 可选参数
type Option func(*Registry)

// WithClock 设置 action 的时间来源, 单位秒
func WithClock(now func() int64) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// WithMetrics 打开统计
func WithMetrics(enable bool) Option {
	return func(r *Registry) {
		r.metrics = newExecMetrics(enable)
	}
}

// Registry 管理所有的游戏, 所有操作串行执行
type Registry struct {
	mu       sync.Mutex
	cfg      *types.Exec
	store    dbm.DB
	state    *dbm.StateDB
	ledger   Ledger
	execaddr string
	cache    *lru.Cache
	metrics  *execMetrics
	now      func() int64
}

// New 创建 Registry, ledger 必须和 state 读写同一份数据, 否则失败的操作无法回滚资金
func New(cfg *types.Exec, store dbm.DB, state *dbm.StateDB, ledger Ledger, opts ...Option) (*Registry, error) {
	if cfg == nil {
		cfg = types.DefaultConfig().Exec
	}
	if cfg.HashType == "" {
		cfg.HashType = HashSha256
	}
	if _, err := HashSize(cfg.HashType); err != nil {
		return nil, err
	}
	size := cfg.GameCacheSize
	if size <= 0 {
		size = 128
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	r := &Registry{
		cfg:      cfg,
		store:    store,
		state:    state,
		ledger:   ledger,
		execaddr: address.ExecAddress(types.RpsX),
		cache:    cache,
		metrics:  newExecMetrics(false),
		now:      func() int64 { return types.Now().Unix() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// NewWithStore 使用 store 上的 coins 账户作为 Ledger
func NewWithStore(cfg *types.Exec, store dbm.DB, opts ...Option) (*Registry, *account.DB, error) {
	state := dbm.NewStateDB(store)
	acc := account.NewCoinsAccount(state)
	r, err := New(cfg, store, state, acc, opts...)
	if err != nil {
		return nil, nil, err
	}
	return r, acc, nil
}

// ExecAddr 执行器托管资金的地址
func (r *Registry) ExecAddr() string {
	return r.execaddr
}

// Metrics 统计数据
func (r *Registry) Metrics() go_metrics.Registry {
	return r.metrics.registry
}

// Transact 在一个事务中执行 fn, fn 返回错误时所有修改回滚
func (r *Registry) Transact(fn func() (*types.Receipt, error)) (*types.Receipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.transact(fn)
}

func (r *Registry) transact(fn func() (*types.Receipt, error)) (*types.Receipt, error) {
	r.state.Begin()
	receipt, err := fn()
	if err == nil {
		err = r.setLocal(receipt)
	}
	if err != nil {
		if rerr := r.state.Rollback(); rerr != nil {
			rlog.Error("transact rollback", "err", rerr)
		}
		return nil, err
	}
	//落盘失败时整个事务被丢弃
	if err := r.state.CommitFlush(); err != nil {
		rlog.Error("transact flush", "err", err)
		return nil, errors.Wrap(err, "flush state")
	}
	return receipt, nil
}

func (r *Registry) setLocal(receipt *types.Receipt) error {
	if receipt == nil {
		return nil
	}
	kvs, err := execLocal(receipt)
	if err != nil {
		return err
	}
	for _, kv := range kvs {
		if kv.Value == nil {
			err = r.state.Delete(kv.Key)
		} else {
			err = r.state.Set(kv.Key, kv.Value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) exec(name, caller string, fn func(*Action) (*types.Receipt, error)) (*types.Receipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	start := time.Now()
	action := NewAction(r, caller)
	receipt, err := r.transact(func() (*types.Receipt, error) {
		return fn(action)
	})
	r.metrics.mark(name, err, time.Since(start))
	if err != nil {
		rlog.Debug(name, "caller", caller, "action", action.id, "err", err)
		return nil, err
	}
	for id, game := range action.touched {
		r.cache.Add(id, game.Clone())
		if game.GameStatus() == types.GameRevealed {
			r.metrics.settled(game)
		}
	}
	rlog.Info(name, "caller", caller, "action", action.id)
	return receipt, nil
}

// Exec 根据 action 类型分发
func (r *Registry) Exec(caller string, action *types.RpsAction) (*types.Receipt, error) {
	switch {
	case action.Ty == types.RpsActionCreate && action.GetCreate() != nil:
		_, receipt, err := r.createGame(caller, action.GetCreate())
		return receipt, err
	case action.Ty == types.RpsActionJoin && action.GetJoin() != nil:
		return r.exec("join", caller, func(a *Action) (*types.Receipt, error) {
			return a.GameJoin(action.GetJoin())
		})
	case action.Ty == types.RpsActionCommit && action.GetCommit() != nil:
		return r.exec("commit", caller, func(a *Action) (*types.Receipt, error) {
			return a.GameCommit(action.GetCommit())
		})
	case action.Ty == types.RpsActionCommitHash && action.GetCommitHash() != nil:
		return r.exec("commit", caller, func(a *Action) (*types.Receipt, error) {
			return a.GameCommitHash(action.GetCommitHash())
		})
	case action.Ty == types.RpsActionReveal && action.GetReveal() != nil:
		return r.exec("reveal", caller, func(a *Action) (*types.Receipt, error) {
			return a.GameReveal(action.GetReveal())
		})
	}
	//return error
	return nil, types.ErrActionNotSupport
}

// ExecPayload 解码 protobuf 编码的 RpsAction 后执行
func (r *Registry) ExecPayload(caller string, payload []byte) (*types.Receipt, error) {
	var action types.RpsAction
	if err := types.Decode(payload, &action); err != nil {
		return nil, errors.Wrap(types.ErrActionNotSupport, err.Error())
	}
	return r.Exec(caller, &action)
}

func (r *Registry) createGame(caller string, create *types.RpsCreate) (uint64, *types.Receipt, error) {
	var id uint64
	receipt, err := r.exec("create", caller, func(a *Action) (*types.Receipt, error) {
		var err error
		id, err = readNextID(a.db)
		if err != nil {
			return nil, err
		}
		return a.GameCreate(create)
	})
	if err != nil {
		return 0, nil, err
	}
	r.metrics.games(id + 1)
	return id, receipt, nil
}

// CreateGame 创建游戏, 返回游戏 id
func (r *Registry) CreateGame(caller, contestant string, stake uint64) (uint64, error) {
	id, _, err := r.createGame(caller, types.NewCreateAction(contestant, stake).GetCreate())
	return id, err
}

// JoinGame 对手加入游戏
func (r *Registry) JoinGame(caller string, id uint64, stake uint64) error {
	_, err := r.Exec(caller, types.NewJoinAction(id, stake))
	return err
}

// CommitMove 提交出手
func (r *Registry) CommitMove(caller string, id uint64, move types.Move, salt []byte) error {
	_, err := r.Exec(caller, types.NewCommitAction(id, move, salt))
	return err
}

// CommitHash 提交线下计算好的承诺值
func (r *Registry) CommitHash(caller string, id uint64, hash []byte) error {
	_, err := r.Exec(caller, types.NewCommitHashAction(id, hash))
	return err
}

// RevealMove 揭晓出手
func (r *Registry) RevealMove(caller string, id uint64, move types.Move, salt []byte) error {
	_, err := r.Exec(caller, types.NewRevealAction(id, move, salt))
	return err
}

// GetGame 返回游戏快照, 修改快照不影响存储
func (r *Registry) GetGame(id uint64) (*types.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getGame(id)
}

func (r *Registry) getGame(id uint64) (*types.Game, error) {
	if value, ok := r.cache.Get(id); ok {
		return value.(*types.Game).Clone(), nil
	}
	game, err := readGame(r.state, id)
	if err != nil {
		return nil, err
	}
	r.cache.Add(id, game.Clone())
	return game, nil
}

// ListPlayers [发起者, 对手]
func (r *Registry) ListPlayers(id uint64) ([2]string, error) {
	game, err := r.GetGame(id)
	if err != nil {
		return [2]string{}, err
	}
	var players [2]string
	copy(players[:], game.Players)
	return players, nil
}

// NextGameID 下一个游戏 id, 也就是已经创建的游戏个数
func (r *Registry) NextGameID() (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return readNextID(r.state)
}

// GetUIState 不存在的游戏为 Idle
func (r *Registry) GetUIState(id uint64) types.UIState {
	game, err := r.GetGame(id)
	if err != nil {
		return types.UIIdle
	}
	return types.UIStateOf(game.GameStatus())
}

// ListGames 根据状态和地址列出游戏, 按 id 排序, direction 为 0 时从大到小.
// addr 为空时不限地址, count <= 0 表示全部
func (r *Registry) ListGames(status types.GameStatus, addr string, count int32, direction int32) ([]*types.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	values, err := r.store.List(calcGamePrefix(status, addr), nil, 0, direction)
	if err != nil {
		return nil, err
	}
	ids, err := checkGameIDDup(values)
	if err != nil {
		return nil, err
	}
	if count > 0 && int32(len(ids)) > count {
		ids = ids[:count]
	}
	games := make([]*types.Game, 0, len(ids))
	for _, id := range ids {
		game, err := r.getGame(id)
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	return games, nil
}
