// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands rps 本地命令
package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/33cn/rps/account"
	"github.com/33cn/rps/common/address"
	"github.com/33cn/rps/common/config"
	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/common/log"
	"github.com/33cn/rps/executor/rps"
	"github.com/33cn/rps/types"
	"github.com/pkg/errors"
	go_metrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
)

// env 一次命令使用的配置, 存储和 Registry
type env struct {
	cfg   *types.Config
	store dbm.DB
	reg   *rps.Registry
	acc   *account.DB
}

func loadConfig(cmd *cobra.Command) (*types.Config, error) {
	confPath, _ := cmd.Flags().GetString("conf")
	cfg, err := config.Init(confPath)
	if err != nil {
		return nil, err
	}
	datadir, _ := cmd.Flags().GetString("datadir")
	if datadir != "" {
		cfg.Store.DbPath = datadir
	}
	return cfg, nil
}

func openEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log.SetFileLog(cfg.Log)
	store, err := dbm.NewDB(types.RpsX, cfg.Store.Driver, cfg.Store.DbPath, int(cfg.Store.DbCache))
	if err != nil {
		return nil, err
	}
	reg, acc, err := rps.NewWithStore(cfg.Exec, store, rps.WithMetrics(cfg.Metrics.EnableMetrics))
	if err != nil {
		store.Close()
		return nil, err
	}
	return &env{cfg: cfg, store: store, reg: reg, acc: acc}, nil
}

func (e *env) close() {
	if e.cfg.Metrics.EnableMetrics {
		go_metrics.WriteOnce(e.reg.Metrics(), os.Stderr)
	}
	e.store.Close()
}

// run 打开存储执行 fn, 以 json 格式输出结果
func run(cmd *cobra.Command, fn func(e *env) (interface{}, error)) {
	e, err := openEnv(cmd)
	if err != nil {
		printErr(err)
		return
	}
	defer e.close()
	res, err := fn(e)
	if err != nil {
		printErr(err)
		return
	}
	printJSON(res)
}

func printErr(err error) {
	fmt.Fprintln(os.Stderr, err)
}

func printJSON(res interface{}) {
	data, err := json.MarshalIndent(res, "", "    ")
	if err != nil {
		printErr(err)
		return
	}
	fmt.Println(string(data))
}

func getAddr(cmd *cobra.Command, field string) (string, error) {
	addr, _ := cmd.Flags().GetString(field)
	if err := address.CheckAddress(addr); err != nil {
		return "", errors.Wrapf(err, "%s %s", field, addr)
	}
	return addr, nil
}
