// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	commandtypes "github.com/33cn/rps/system/dapp/commands/types"
	"github.com/33cn/rps/types"
	"github.com/spf13/cobra"
)

// AccountCmd account command
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account management",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		GenesisCmd(),
		DepositCmd(),
		WithdrawCmd(),
		GetBalanceCmd(),
	)

	return cmd
}

func addAddrAmountFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("amount", "m", "", "amount in coins, at most 8 decimal places")
	cmd.MarkFlagRequired("amount")
}

// GenesisCmd 给地址发放初始资金
func GenesisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Issue coins to an address",
		Run:   genesis,
	}
	addAddrAmountFlags(cmd)
	cmd.Flags().BoolP("exec", "e", false, "put the coins directly into the rps executor balance")
	return cmd
}

func genesis(cmd *cobra.Command, args []string) {
	addr, err := getAddr(cmd, "addr")
	if err != nil {
		printErr(err)
		return
	}
	amount, err := commandtypes.GetAmountValue(cmd, "amount")
	if err != nil {
		printErr(err)
		return
	}
	toExec, _ := cmd.Flags().GetBool("exec")
	run(cmd, func(e *env) (interface{}, error) {
		receipt, err := e.reg.Transact(func() (*types.Receipt, error) {
			if toExec {
				return e.acc.GenesisInitExec(addr, amount, e.reg.ExecAddr())
			}
			return e.acc.GenesisInit(addr, amount)
		})
		if err != nil {
			return nil, err
		}
		return commandtypes.DecodeReceipt(receipt), nil
	})
}

// DepositCmd 把钱包余额转入 rps 执行器
func DepositCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Move coins from the wallet into the rps executor",
		Run:   deposit,
	}
	addAddrAmountFlags(cmd)
	return cmd
}

func deposit(cmd *cobra.Command, args []string) {
	transferExec(cmd, false)
}

// WithdrawCmd 从 rps 执行器取回到钱包
func WithdrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Move active coins from the rps executor back to the wallet",
		Run:   withdraw,
	}
	addAddrAmountFlags(cmd)
	return cmd
}

func withdraw(cmd *cobra.Command, args []string) {
	transferExec(cmd, true)
}

func transferExec(cmd *cobra.Command, isWithdraw bool) {
	addr, err := getAddr(cmd, "addr")
	if err != nil {
		printErr(err)
		return
	}
	amount, err := commandtypes.GetAmountValue(cmd, "amount")
	if err != nil {
		printErr(err)
		return
	}
	run(cmd, func(e *env) (interface{}, error) {
		receipt, err := e.reg.Transact(func() (*types.Receipt, error) {
			if isWithdraw {
				return e.acc.TransferWithdraw(addr, e.reg.ExecAddr(), amount)
			}
			return e.acc.TransferToExec(addr, e.reg.ExecAddr(), amount)
		})
		if err != nil {
			return nil, err
		}
		return commandtypes.DecodeReceipt(receipt), nil
	})
}

// GetBalanceCmd get balance of an address
func GetBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get wallet and rps executor balance of an address",
		Run:   balance,
	}
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func balance(cmd *cobra.Command, args []string) {
	addr, err := getAddr(cmd, "addr")
	if err != nil {
		printErr(err)
		return
	}
	run(cmd, func(e *env) (interface{}, error) {
		result := &commandtypes.ExecAccountResult{Execer: types.RpsX, ExecAddr: e.reg.ExecAddr()}
		_, err := e.reg.Transact(func() (*types.Receipt, error) {
			result.Wallet = commandtypes.DecodeAccount(e.acc.LoadAccount(addr))
			result.Account = commandtypes.DecodeAccount(e.acc.LoadExecAccount(addr, e.reg.ExecAddr()))
			return nil, nil
		})
		return result, err
	})
}
