// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/rps/common"
	"github.com/33cn/rps/executor/rps"
	commandtypes "github.com/33cn/rps/system/dapp/commands/types"
	"github.com/33cn/rps/types"
	"github.com/spf13/cobra"
)

// GameCmd rps game command
func GameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Rock-Paper-Scissors game management",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		GameCreateCmd(),
		GameJoinCmd(),
		GameCommitCmd(),
		GameCommitHashCmd(),
		GameRevealCmd(),
		GameGetCmd(),
		GamePlayersCmd(),
		GameListCmd(),
		GameNextIDCmd(),
		GameHashCmd(),
	)

	return cmd
}

func addCallerFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("addr", "a", "", "caller address")
	cmd.MarkFlagRequired("addr")
}

func addGameIDFlag(cmd *cobra.Command) {
	cmd.Flags().Uint64P("gameID", "g", 0, "game id")
	cmd.MarkFlagRequired("gameID")
}

func addMoveSaltFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("move", "v", "", "rock/paper/scissors or 1/2/3")
	cmd.MarkFlagRequired("move")
	cmd.Flags().StringP("salt", "s", "", "secret salt, keep it until reveal")
	cmd.MarkFlagRequired("salt")
}

// execAction 校验调用者后执行 action, 输出 receipt
func execAction(cmd *cobra.Command, build func() (*types.RpsAction, error)) {
	caller, err := getAddr(cmd, "addr")
	if err != nil {
		printErr(err)
		return
	}
	action, err := build()
	if err != nil {
		printErr(err)
		return
	}
	run(cmd, func(e *env) (interface{}, error) {
		receipt, err := e.reg.Exec(caller, action)
		if err != nil {
			return nil, err
		}
		return commandtypes.DecodeReceipt(receipt), nil
	})
}

// GameCreateCmd create game
func GameCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a game against a contestant and freeze the stake",
		Run:   gameCreate,
	}
	addCallerFlag(cmd)
	cmd.Flags().StringP("contestant", "c", "", "address of the only player allowed to join")
	cmd.MarkFlagRequired("contestant")
	cmd.Flags().StringP("amount", "m", "", "stake in coins")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func gameCreate(cmd *cobra.Command, args []string) {
	execAction(cmd, func() (*types.RpsAction, error) {
		contestant, err := getAddr(cmd, "contestant")
		if err != nil {
			return nil, err
		}
		stake, err := commandtypes.GetAmountValue(cmd, "amount")
		if err != nil {
			return nil, err
		}
		return types.NewCreateAction(contestant, stake), nil
	})
}

// GameJoinCmd join game
func GameJoinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join a created game, only the bet is frozen",
		Run:   gameJoin,
	}
	addCallerFlag(cmd)
	addGameIDFlag(cmd)
	cmd.Flags().StringP("amount", "m", "", "stake in coins, at least the bet")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func gameJoin(cmd *cobra.Command, args []string) {
	execAction(cmd, func() (*types.RpsAction, error) {
		id, _ := cmd.Flags().GetUint64("gameID")
		stake, err := commandtypes.GetAmountValue(cmd, "amount")
		if err != nil {
			return nil, err
		}
		return types.NewJoinAction(id, stake), nil
	})
}

// GameCommitCmd commit move
func GameCommitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Commit a move bound to a salt",
		Run:   gameCommit,
	}
	addCallerFlag(cmd)
	addGameIDFlag(cmd)
	addMoveSaltFlags(cmd)
	return cmd
}

func gameCommit(cmd *cobra.Command, args []string) {
	execAction(cmd, func() (*types.RpsAction, error) {
		id, _ := cmd.Flags().GetUint64("gameID")
		move, salt, err := getMoveSalt(cmd)
		if err != nil {
			return nil, err
		}
		return types.NewCommitAction(id, move, salt), nil
	})
}

// GameCommitHashCmd commit a precomputed hash
func GameCommitHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit-hash",
		Short: "Commit a hash computed off-line with 'game hash'",
		Run:   gameCommitHash,
	}
	addCallerFlag(cmd)
	addGameIDFlag(cmd)
	cmd.Flags().StringP("hash", "x", "", "commitment in hex, 0x prefix optional")
	cmd.MarkFlagRequired("hash")
	return cmd
}

func gameCommitHash(cmd *cobra.Command, args []string) {
	execAction(cmd, func() (*types.RpsAction, error) {
		id, _ := cmd.Flags().GetUint64("gameID")
		hexHash, _ := cmd.Flags().GetString("hash")
		hash, err := common.FromHex(hexHash)
		if err != nil {
			return nil, err
		}
		return types.NewCommitHashAction(id, hash), nil
	})
}

// GameRevealCmd reveal move
func GameRevealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Reveal the committed move, the second reveal settles the game",
		Run:   gameReveal,
	}
	addCallerFlag(cmd)
	addGameIDFlag(cmd)
	addMoveSaltFlags(cmd)
	return cmd
}

func gameReveal(cmd *cobra.Command, args []string) {
	execAction(cmd, func() (*types.RpsAction, error) {
		id, _ := cmd.Flags().GetUint64("gameID")
		move, salt, err := getMoveSalt(cmd)
		if err != nil {
			return nil, err
		}
		return types.NewRevealAction(id, move, salt), nil
	})
}

func getMoveSalt(cmd *cobra.Command) (types.Move, []byte, error) {
	moveStr, _ := cmd.Flags().GetString("move")
	salt, _ := cmd.Flags().GetString("salt")
	move, err := types.ParseMove(moveStr)
	if err != nil {
		return types.MoveNone, nil, err
	}
	return move, []byte(salt), nil
}

// GameGetCmd show game
func GameGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show a game",
		Run:   gameGet,
	}
	addGameIDFlag(cmd)
	return cmd
}

func gameGet(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetUint64("gameID")
	run(cmd, func(e *env) (interface{}, error) {
		game, err := e.reg.GetGame(id)
		if err != nil {
			return nil, err
		}
		return commandtypes.DecodeGame(game), nil
	})
}

// GamePlayersCmd show players
func GamePlayersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Show [initiator, contestant] of a game",
		Run:   gamePlayers,
	}
	addGameIDFlag(cmd)
	return cmd
}

func gamePlayers(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetUint64("gameID")
	run(cmd, func(e *env) (interface{}, error) {
		return e.reg.ListPlayers(id)
	})
}

// GameListCmd list games by status
func GameListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games by status and player",
		Run:   gameList,
	}
	cmd.Flags().StringP("status", "t", "created", "created/joined/committed/revealed")
	cmd.Flags().StringP("addr", "a", "", "player address, empty for all players")
	cmd.Flags().Int32P("count", "c", 20, "max games, 0 for all")
	cmd.Flags().Int32P("direction", "d", 1, "0: desc, 1: asc")
	return cmd
}

func gameList(cmd *cobra.Command, args []string) {
	statusStr, _ := cmd.Flags().GetString("status")
	addr, _ := cmd.Flags().GetString("addr")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	status, err := types.ParseGameStatus(statusStr)
	if err != nil {
		printErr(err)
		return
	}
	run(cmd, func(e *env) (interface{}, error) {
		games, err := e.reg.ListGames(status, addr, count, direction)
		if err != nil {
			return nil, err
		}
		result := make([]*commandtypes.GameResult, 0, len(games))
		for _, game := range games {
			result = append(result, commandtypes.DecodeGame(game))
		}
		return result, nil
	})
}

// GameNextIDCmd next game id
func GameNextIDCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the id the next created game will get",
		Run:   gameNextID,
	}
	return cmd
}

func gameNextID(cmd *cobra.Command, args []string) {
	run(cmd, func(e *env) (interface{}, error) {
		return e.reg.NextGameID()
	})
}

// GameHashCmd compute a commitment off-line
func GameHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Compute the commitment of a move without touching the store",
		Run:   gameHash,
	}
	addCallerFlag(cmd)
	addMoveSaltFlags(cmd)
	cmd.Flags().StringP("type", "y", "", "hash type, default from config")
	return cmd
}

func gameHash(cmd *cobra.Command, args []string) {
	caller, err := getAddr(cmd, "addr")
	if err != nil {
		printErr(err)
		return
	}
	move, salt, err := getMoveSalt(cmd)
	if err != nil {
		printErr(err)
		return
	}
	hashType, _ := cmd.Flags().GetString("type")
	if hashType == "" {
		cfg, err := loadConfig(cmd)
		if err != nil {
			printErr(err)
			return
		}
		hashType = cfg.Exec.HashType
	}
	hash, err := rps.Commit(hashType, move, salt, caller)
	if err != nil {
		printErr(err)
		return
	}
	printJSON(common.ToHex(hash))
}
