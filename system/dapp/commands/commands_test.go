// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/33cn/rps/account"
	"github.com/33cn/rps/common"
	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/executor/rps"
	"github.com/33cn/rps/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addrA = "14ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addrB = "1EDnnePAZN48aC2hiTDzhkczfF39g1pZZX"
	addrC = "1KSBd17H7ZK8iT37aJztFB22XGwsPTdwE4"
)

const testConf = `
Title="test"
[log]
loglevel="crit"
logConsoleLevel="crit"
logFile=""
[store]
driver="leveldb"
dbCache=16
[exec]
hashType="sha256"
`

func newTestRoot() *cobra.Command {
	root := &cobra.Command{Use: "rps-cli"}
	root.PersistentFlags().String("conf", "", "config file")
	root.PersistentFlags().String("datadir", "", "data dir")
	root.AddCommand(AccountCmd(), GameCmd(), ConfigCmd())
	return root
}

type cliEnv struct {
	conf    string
	datadir string
}

func newCliEnv(t *testing.T) *cliEnv {
	dir := t.TempDir()
	conf := filepath.Join(dir, "rps.toml")
	require.NoError(t, os.WriteFile(conf, []byte(testConf), 0600))
	return &cliEnv{conf: conf, datadir: filepath.Join(dir, "datadir")}
}

func (c *cliEnv) exec(t *testing.T, args ...string) {
	root := newTestRoot()
	root.SetArgs(append(args, "--conf", c.conf, "--datadir", c.datadir))
	require.NoError(t, root.Execute())
}

func (c *cliEnv) open(t *testing.T) (*rps.Registry, *account.DB, dbm.DB) {
	store, err := dbm.NewDB(types.RpsX, dbm.LevelDBBackendStr, c.datadir, 16)
	require.NoError(t, err)
	r, acc, err := rps.NewWithStore(&types.Exec{HashType: rps.HashSha256}, store)
	require.NoError(t, err)
	return r, acc, store
}

func TestGameCommands(t *testing.T) {
	c := newCliEnv(t)
	c.exec(t, "account", "genesis", "-a", addrA, "-m", "10", "--exec")
	c.exec(t, "account", "genesis", "-a", addrB, "-m", "10", "--exec")

	c.exec(t, "game", "create", "-a", addrA, "-c", addrB, "-m", "1")
	c.exec(t, "game", "join", "-a", addrB, "-g", "0", "-m", "1.5")
	c.exec(t, "game", "commit", "-a", addrA, "-g", "0", "-v", "rock", "-s", "10")

	hash, err := rps.Commit(rps.HashSha256, types.Paper, []byte("20"), addrB)
	require.NoError(t, err)
	c.exec(t, "game", "commit-hash", "-a", addrB, "-g", "0", "-x", common.ToHex(hash))
	c.exec(t, "game", "reveal", "-a", addrA, "-g", "0", "-v", "1", "-s", "10")
	c.exec(t, "game", "reveal", "-a", addrB, "-g", "0", "-v", "paper", "-s", "20")
	c.exec(t, "game", "get", "-g", "0")
	c.exec(t, "game", "list", "-t", "revealed")

	r, acc, store := c.open(t)
	defer store.Close()
	game, err := r.GetGame(0)
	require.NoError(t, err)
	assert.Equal(t, types.GameRevealed, game.GameStatus())
	assert.Equal(t, []uint64{0, 2 * types.Coin}, game.Amounts)
	assert.Equal(t, 9*types.Coin, acc.LoadExecAccount(addrA, r.ExecAddr()).Balance)
	assert.Equal(t, 11*types.Coin, acc.LoadExecAccount(addrB, r.ExecAddr()).Balance)
	next, err := r.NextGameID()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), next)
}

func TestRejectedCommandKeepsStore(t *testing.T) {
	c := newCliEnv(t)
	c.exec(t, "account", "genesis", "-a", addrA, "-m", "1", "--exec")
	// 余额不足, 以及地址错误
	c.exec(t, "game", "create", "-a", addrA, "-c", addrB, "-m", "2")
	c.exec(t, "game", "create", "-a", addrA, "-c", "notanaddress", "-m", "1")

	r, acc, store := c.open(t)
	defer store.Close()
	next, err := r.NextGameID()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), next)
	assert.Equal(t, types.Coin, acc.LoadExecAccount(addrA, r.ExecAddr()).Balance)
}

func TestAccountCommands(t *testing.T) {
	c := newCliEnv(t)
	c.exec(t, "account", "genesis", "-a", addrC, "-m", "5")
	c.exec(t, "account", "deposit", "-a", addrC, "-m", "2")
	c.exec(t, "account", "withdraw", "-a", addrC, "-m", "0.5")
	c.exec(t, "account", "balance", "-a", addrC)

	r, acc, store := c.open(t)
	defer store.Close()
	assert.Equal(t, 3*types.Coin+types.Coin/2, acc.LoadAccount(addrC).Balance)
	assert.Equal(t, types.Coin+types.Coin/2, acc.LoadExecAccount(addrC, r.ExecAddr()).Balance)
}

func TestConfigCommand(t *testing.T) {
	c := newCliEnv(t)
	c.exec(t, "config")
	cfg, err := loadConfig(func() *cobra.Command {
		cmd := newTestRoot()
		require.NoError(t, cmd.ParseFlags([]string{"--conf", c.conf, "--datadir", c.datadir}))
		return cmd
	}())
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Title)
	assert.Equal(t, c.datadir, cfg.Store.DbPath)
}
