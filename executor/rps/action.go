// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rps

//database opeartion for executor rps
import (
	"fmt"

	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/types"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var nextIDKey = []byte("mavl-" + types.RpsX + "-nextid")

// Key gameID to save key
func Key(id uint64) []byte {
	return []byte(fmt.Sprintf("mavl-%s-%d", types.RpsX, id))
}

// Action 一次游戏操作的上下文
type Action struct {
	ledger    Ledger
	db        dbm.KV
	id        string
	fromaddr  string
	blocktime int64
	execaddr  string
	cfg       *types.Exec
	touched   map[uint64]*types.Game
}

// NewAction new
func NewAction(r *Registry, fromaddr string) *Action {
	return &Action{
		ledger:    r.ledger,
		db:        r.state,
		id:        uuid.New().String(),
		fromaddr:  fromaddr,
		blocktime: r.now(),
		execaddr:  r.execaddr,
		cfg:       r.cfg,
		touched:   make(map[uint64]*types.Game),
	}
}

//GetReceiptLog 游戏状态变化的日志, 本地索引根据它来更新
func (action *Action) GetReceiptLog(ty int32, game *types.Game, prev types.GameStatus) *types.ReceiptLog {
	r := &types.ReceiptGame{
		GameId:     game.GameId,
		ActionId:   action.id,
		PrevStatus: int32(prev),
		Status:     game.Status,
		Addr:       action.fromaddr,
		Players:    game.Players,
		Amounts:    game.Amounts,
		ActionTime: action.blocktime,
	}
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(r)}
}

// GetKVSet 游戏数据的 kv
func (action *Action) GetKVSet(game *types.Game) (kvset []*types.KeyValue) {
	value := types.Encode(game)
	kvset = append(kvset, &types.KeyValue{Key: Key(game.GameId), Value: value})
	return kvset
}

func (action *Action) saveGame(game *types.Game) {
	for _, kv := range action.GetKVSet(game) {
		if err := action.db.Set(kv.Key, kv.Value); err != nil {
			panic(err)
		}
	}
	action.touched[game.GameId] = game
}

func (action *Action) readGame(id uint64) (*types.Game, error) {
	return readGame(action.db, id)
}

func readGame(db dbm.KV, id uint64) (*types.Game, error) {
	data, err := db.Get(Key(id))
	if err == dbm.ErrNotFoundInDb {
		return nil, errors.Wrapf(types.ErrGameNotFound, "game %d", id)
	}
	if err != nil {
		return nil, err
	}
	var game types.Game
	//decode
	err = types.Decode(data, &game)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func readNextID(db dbm.KV) (uint64, error) {
	data, err := db.Get(nextIDKey)
	if err == dbm.ErrNotFoundInDb {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var id types.Uint64
	if err := types.Decode(data, &id); err != nil {
		return 0, err
	}
	return id.Data, nil
}

func (action *Action) receipt(ty int32, game *types.Game, prev types.GameStatus, ledger *types.Receipt) *types.Receipt {
	receipt := &types.Receipt{Ty: types.ExecOk}
	receipt.KV = append(receipt.KV, action.GetKVSet(game)...)
	receipt.Logs = append(receipt.Logs, action.GetReceiptLog(ty, game, prev))
	return receipt.Merge(ledger)
}

// GameCreate 创建游戏, 冻结发起者的押注
func (action *Action) GameCreate(create *types.RpsCreate) (*types.Receipt, error) {
	if create.Stake == 0 {
		return nil, types.ErrInvalidStake
	}
	if action.cfg.MaxGameAmount > 0 && create.Stake > action.cfg.MaxGameAmount {
		rlog.Error("GameCreate", "addr", action.fromaddr, "stake", create.Stake, "max", action.cfg.MaxGameAmount)
		return nil, errors.Wrapf(types.ErrGameCreateAmount, "max %d", action.cfg.MaxGameAmount)
	}
	if create.Contestant == "" || create.Contestant == action.fromaddr {
		return nil, types.ErrInvalidContestant
	}
	id, err := readNextID(action.db)
	if err != nil {
		return nil, err
	}
	//冻结子账户资金
	receipt, err := action.ledger.ExecFrozen(action.fromaddr, action.execaddr, create.Stake)
	if err != nil {
		rlog.Error("GameCreate.ExecFrozen", "addr", action.fromaddr, "execaddr", action.execaddr, "amount", create.Stake, "err", err)
		return nil, err
	}
	game := types.NewGame(id, action.fromaddr, create.Contestant, create.Stake)
	game.HashType = action.cfg.HashType
	game.CreateTime = action.blocktime
	action.saveGame(game)
	if err := action.db.Set(nextIDKey, types.Encode(&types.Uint64{Data: id + 1})); err != nil {
		return nil, err
	}
	return action.receipt(types.TyLogRpsCreate, game, types.GameCreated, receipt), nil
}

// GameJoin 对手加入游戏, 只冻结 bet, 多出的部分留在对手的可用余额里
func (action *Action) GameJoin(join *types.RpsJoin) (*types.Receipt, error) {
	game, err := action.readGame(join.GameId)
	if err != nil {
		rlog.Error("GameJoin", "addr", action.fromaddr, "get game failed", join.GameId, "err", err)
		return nil, err
	}
	if game.GameStatus() != types.GameCreated {
		return nil, errors.Wrapf(types.ErrWrongState, "game %d is %s", game.GameId, game.GameStatus())
	}
	if game.Players[1] != action.fromaddr {
		return nil, types.ErrUnauthorized
	}
	if join.Stake < game.Bet {
		return nil, errors.Wrapf(types.ErrInsufficientStake, "stake %d bet %d", join.Stake, game.Bet)
	}
	acc := action.ledger.LoadExecAccount(action.fromaddr, action.execaddr)
	if acc.Balance < join.Stake {
		rlog.Error("GameJoin", "addr", action.fromaddr, "execaddr", action.execaddr, "id", game.GameId, "err", types.ErrNoBalance)
		return nil, types.ErrNoBalance
	}
	escrowed, err := types.SafeAdd(game.Escrowed, game.Bet)
	if err != nil {
		return nil, err
	}
	receipt, err := action.ledger.ExecFrozen(action.fromaddr, action.execaddr, game.Bet)
	if err != nil {
		rlog.Error("GameJoin.ExecFrozen", "addr", action.fromaddr, "execaddr", action.execaddr, "amount", game.Bet, "err", err)
		return nil, err
	}
	game.SetStatus(types.GameJoined)
	game.Escrowed = escrowed
	game.JoinTime = action.blocktime
	action.saveGame(game)
	return action.receipt(types.TyLogRpsJoin, game, types.GameCreated, receipt), nil
}

func (action *Action) checkCommit(id uint64) (*types.Game, int, error) {
	game, err := action.readGame(id)
	if err != nil {
		return nil, -1, err
	}
	if game.GameStatus() != types.GameJoined {
		return nil, -1, errors.Wrapf(types.ErrWrongState, "game %d is %s", game.GameId, game.GameStatus())
	}
	index := game.PlayerIndex(action.fromaddr)
	if index < 0 {
		return nil, -1, types.ErrUnauthorized
	}
	if game.Commitment(index).IsCommitted() {
		return nil, -1, types.ErrAlreadyCommitted
	}
	return game, index, nil
}

// GameCommit 保存 Commit(move, salt, caller), 明文出手不会写入状态
func (action *Action) GameCommit(commit *types.RpsCommit) (*types.Receipt, error) {
	game, index, err := action.checkCommit(commit.GameId)
	if err != nil {
		return nil, err
	}
	move := types.Move(commit.Move)
	if !move.IsValid() {
		return nil, types.ErrInvalidMove
	}
	hash, err := Commit(game.HashType, move, commit.Salt, action.fromaddr)
	if err != nil {
		return nil, err
	}
	return action.storeCommitment(game, index, hash), nil
}

// GameCommitHash 保存线下计算好的承诺值
func (action *Action) GameCommitHash(commit *types.RpsCommitHash) (*types.Receipt, error) {
	game, index, err := action.checkCommit(commit.GameId)
	if err != nil {
		return nil, err
	}
	size, err := HashSize(game.HashType)
	if err != nil {
		return nil, err
	}
	if len(commit.Hash) != size {
		return nil, errors.Wrapf(types.ErrInvalidHashType, "hash length %d, %s needs %d", len(commit.Hash), game.HashType, size)
	}
	return action.storeCommitment(game, index, commit.Hash), nil
}

func (action *Action) storeCommitment(game *types.Game, index int, hash []byte) *types.Receipt {
	game.Commitments[index] = &types.Commitment{Hash: append([]byte(nil), hash...)}
	if game.BothCommitted() {
		game.SetStatus(types.GameCommitted)
		game.CommitTime = action.blocktime
	}
	action.saveGame(game)
	return action.receipt(types.TyLogRpsCommit, game, types.GameJoined, nil)
}

// GameReveal 揭晓出手, 第二个揭晓的玩家触发结算
func (action *Action) GameReveal(reveal *types.RpsReveal) (*types.Receipt, error) {
	game, err := action.readGame(reveal.GameId)
	if err != nil {
		return nil, err
	}
	if game.GameStatus() != types.GameCommitted {
		return nil, errors.Wrapf(types.ErrWrongState, "game %d is %s", game.GameId, game.GameStatus())
	}
	index := game.PlayerIndex(action.fromaddr)
	if index < 0 {
		return nil, types.ErrUnauthorized
	}
	commitment := game.Commitment(index)
	if commitment.IsRevealed() {
		return nil, types.ErrAlreadyRevealed
	}
	move := types.Move(reveal.Move)
	if err := Verify(commitment.Hash, game.HashType, move, reveal.Salt, action.fromaddr); err != nil {
		rlog.Error("GameReveal", "addr", action.fromaddr, "id", game.GameId, "err", err)
		return nil, err
	}
	commitment.Revealed = int32(move)
	if !game.BothRevealed() {
		action.saveGame(game)
		return action.receipt(types.TyLogRpsReveal, game, types.GameCommitted, nil), nil
	}

	moveA, moveB := game.Commitment(0).RevealedMove(), game.Commitment(1).RevealedMove()
	toA, toB, err := Settle(moveA, moveB, game.Bet)
	if err != nil {
		return nil, err
	}
	// 先修改状态再调用 Ledger
	game.SetStatus(types.GameRevealed)
	game.Escrowed = 0
	game.Amounts = []uint64{toA, toB}
	game.RevealTime = action.blocktime
	action.saveGame(game)

	receipt, err := action.payout(game)
	if err != nil {
		return nil, err
	}
	rlog.Debug("GameReveal settled", "id", game.GameId, "moveA", moveA.String(), "moveB", moveB.String(), "toA", toA, "toB", toB)
	return action.receipt(types.TyLogRpsReveal, game, types.GameCommitted, receipt), nil
}

// payout 各自解冻自己保留的部分, 输掉的部分从冻结资金直接转给对方
func (action *Action) payout(game *types.Game) (*types.Receipt, error) {
	receipt := &types.Receipt{Ty: types.ExecOk}
	for i, addr := range game.Players {
		keep := game.Amounts[i]
		if keep > game.Bet {
			keep = game.Bet
		}
		if keep == 0 {
			continue
		}
		r, err := action.ledger.ExecActive(addr, action.execaddr, keep)
		if err != nil {
			rlog.Error("GameReveal.ExecActive", "addr", addr, "execaddr", action.execaddr, "amount", keep, "err", err)
			return nil, err
		}
		receipt.Merge(r)
	}
	for i, addr := range game.Players {
		if game.Amounts[i] >= game.Bet {
			continue
		}
		lost := game.Bet - game.Amounts[i]
		r, err := action.ledger.ExecTransferFrozen(addr, game.Players[1-i], action.execaddr, lost)
		if err != nil {
			rlog.Error("GameReveal.ExecTransferFrozen", "addr", addr, "execaddr", action.execaddr, "amount", lost, "err", err)
			return nil, err
		}
		receipt.Merge(r)
	}
	return receipt, nil
}
