// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli rps-cli 的根命令
package cli

import (
	"fmt"
	"os"

	"github.com/33cn/rps/common/log"
	"github.com/33cn/rps/system/dapp/commands"
	"github.com/spf13/cobra"
)

// NewRootCmd 创建根命令, 所有子命令共享 --conf 和 --datadir
func NewRootCmd(name string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   name,
		Short: "commit-reveal Rock-Paper-Scissors escrow tools",
	}
	rootCmd.PersistentFlags().String("conf", "rps.toml", "config file, built-in defaults when missing")
	rootCmd.PersistentFlags().String("datadir", "", "override store.dbPath of the config file")
	rootCmd.AddCommand(
		commands.AccountCmd(),
		commands.GameCmd(),
		commands.ConfigCmd(),
	)
	return rootCmd
}

//Run :
func Run(name string) {
	log.SetLogLevel("error")
	if err := NewRootCmd(name).Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
