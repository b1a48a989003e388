package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sat20-labs/chainparams/chaincfg"
	"github.com/sat20-labs/chainparams/common"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConf(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "test.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadYamlConf(t *testing.T) {
	path := writeConf(t, "chain: testnet\nlog:\n  level: debug\n  path: /tmp/viridi\n")
	conf, err := LoadYamlConf(path)
	require.NoError(t, err)

	assert.Equal(t, "testnet", conf.Chain)
	assert.Equal(t, "debug", conf.Log.Level)
	assert.Equal(t, filepath.FromSlash("/tmp/viridi/"), conf.Log.Path)

	net, err := conf.Network()
	require.NoError(t, err)
	assert.Equal(t, chaincfg.TestNet, net)
}

func TestLoadYamlConfDefaults(t *testing.T) {
	conf, err := LoadYamlConf(writeConf(t, "log:\n  level: verbose\n"))
	require.NoError(t, err)

	assert.Equal(t, "main", conf.Chain)
	assert.Equal(t, "info", conf.Log.Level)
	assert.Equal(t, "log"+string(filepath.Separator), conf.Log.Path)
}

func TestLoadYamlConfErrors(t *testing.T) {
	_, err := LoadYamlConf(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadYamlConf(writeConf(t, "chain: [main\n"))
	assert.Error(t, err)

	_, err = LoadYamlConf(writeConf(t, "chain: signet\n"))
	assert.ErrorContains(t, err, "signet")
}

func TestInitConfigAbsolutePath(t *testing.T) {
	conf, err := InitConfig(writeConf(t, "chain: regtest\n"))
	require.NoError(t, err)
	assert.Equal(t, "regtest", conf.Chain)
}

func TestDefaultConf(t *testing.T) {
	conf, err := NewDefaultYamlConf("mainnet")
	require.NoError(t, err)
	assert.Equal(t, "main", conf.Chain)

	_, err = NewDefaultYamlConf("testnet4")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "default.yaml")
	require.NoError(t, SaveYamlConf(conf, path))
	loaded, err := LoadYamlConf(path)
	require.NoError(t, err)
	assert.Equal(t, "main", loaded.Chain)
	assert.Equal(t, "error", loaded.Log.Level)
}

func TestInitLog(t *testing.T) {
	defer func() {
		common.Log.SetOutput(os.Stdout)
		common.Log.SetLevel(logrus.InfoLevel)
	}()

	dir := t.TempDir()
	conf := &YamlConf{Log: Log{Level: "warn", Path: dir}}
	require.NoError(t, InitLog(conf))
	assert.Equal(t, logrus.WarnLevel, common.Log.GetLevel())

	common.Log.Warn("rotated log check")
	files, err := filepath.Glob(filepath.Join(dir, "*.log"))
	require.NoError(t, err)
	assert.NotEmpty(t, files)
}
