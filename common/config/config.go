// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config 读取 toml 配置文件
package config

import (
	"bytes"
	"os"

	tml "github.com/BurntSushi/toml"
	"github.com/33cn/rps/types"
	"github.com/pkg/errors"
)

// Init 读取配置文件, 文件不存在时返回默认配置
func Init(path string) (*types.Config, error) {
	if path == "" {
		return types.DefaultConfig(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return types.DefaultConfig(), nil
	}
	var cfg types.Config
	if _, err := tml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrapf(err, "decode config %s", path)
	}
	return cfg.FillDefault(), nil
}

// InitCfg 同 Init, 出错 panic
func InitCfg(path string) *types.Config {
	cfg, err := Init(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Dump 把配置编码成 toml
func Dump(cfg *types.Config) (string, error) {
	var buf bytes.Buffer
	if err := tml.NewEncoder(&buf).Encode(cfg); err != nil {
		return "", errors.Wrap(err, "encode config")
	}
	return buf.String(), nil
}
