// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/33cn/rps/common/config"
	"github.com/spf13/cobra"
)

// ConfigCmd config command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Run:   dumpConfig,
	}
	return cmd
}

func dumpConfig(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		printErr(err)
		return
	}
	s, err := config.Dump(cfg)
	if err != nil {
		printErr(err)
		return
	}
	fmt.Print(s)
}
