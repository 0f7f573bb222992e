// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	tml "github.com/BurntSushi/toml"
)

// Config 配置文件
type Config struct {
	Title   string   `toml:"Title"`
	Log     *Log     `toml:"log"`
	Store   *Store   `toml:"store"`
	Exec    *Exec    `toml:"exec"`
	Metrics *Metrics `toml:"metrics"`
}

// Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `toml:"logFile"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `toml:"maxFileSize"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `toml:"maxBackups"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32 `toml:"maxAge"`
	// 日志文件名是否使用本地事件（否则使用UTC时间）
	LocalTime bool `toml:"localTime"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `toml:"compress"`
	// 是否打印调用源文件和行号
	CallerFile bool `toml:"callerFile"`
	// 是否打印调用方法
	CallerFunction bool `toml:"callerFunction"`
}

// Store 存储配置
type Store struct {
	// 数据存储格式名称，目前支持 leveldb, gobadgerdb, memdb
	Driver string `toml:"driver"`
	// 数据文件存储路径
	DbPath string `toml:"dbPath"`
	// Cache大小 (MB)
	DbCache int32 `toml:"dbCache"`
}

// Exec rps 执行器配置
type Exec struct {
	// 承诺使用的哈希算法 sha256 / keccak256
	HashType string `toml:"hashType"`
	// 单局最大押注, 0 表示不限制
	MaxGameAmount uint64 `toml:"maxGameAmount"`
	// 游戏快照缓存个数
	GameCacheSize int `toml:"gameCacheSize"`
}

// Metrics 统计配置
type Metrics struct {
	EnableMetrics bool `toml:"enableMetrics"`
}

// DefaultConfig 默认配置
func DefaultConfig() *Config {
	return &Config{
		Title: "local",
		Log: &Log{
			Loglevel:        "info",
			LogConsoleLevel: "error",
			LogFile:         "logs/rps.log",
			MaxFileSize:     300,
			MaxBackups:      100,
			MaxAge:          28,
			LocalTime:       true,
			Compress:        true,
		},
		Store: &Store{
			Driver:  "leveldb",
			DbPath:  "datadir",
			DbCache: 64,
		},
		Exec: &Exec{
			HashType:      "sha256",
			MaxGameAmount: 100 * Coin,
			GameCacheSize: 128,
		},
		Metrics: &Metrics{},
	}
}

// FillDefault fills the sections missing from cfg with the default values.
func (cfg *Config) FillDefault() *Config {
	def := DefaultConfig()
	if cfg.Title == "" {
		cfg.Title = def.Title
	}
	if cfg.Log == nil {
		cfg.Log = def.Log
	}
	if cfg.Store == nil {
		cfg.Store = def.Store
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = def.Store.Driver
	}
	if cfg.Exec == nil {
		cfg.Exec = def.Exec
	}
	if cfg.Exec.HashType == "" {
		cfg.Exec.HashType = def.Exec.HashType
	}
	if cfg.Exec.GameCacheSize <= 0 {
		cfg.Exec.GameCacheSize = def.Exec.GameCacheSize
	}
	if cfg.Metrics == nil {
		cfg.Metrics = def.Metrics
	}
	return cfg
}

// InitCfgString 从字符串解析配置
func InitCfgString(cfgstring string) (*Config, error) {
	var cfg Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, err
	}
	return cfg.FillDefault(), nil
}
