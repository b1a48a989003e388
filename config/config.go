package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sat20-labs/chainparams/chaincfg"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

type YamlConf struct {
	Chain string `yaml:"chain"`
	Log   Log    `yaml:"log"`
}

type Log struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

// Network returns the profile the configured chain name refers to.
func (c *YamlConf) Network() (chaincfg.Network, error) {
	return chaincfg.ParseNetwork(c.Chain)
}

func GetBaseDir() string {
	execPath, err := os.Executable()
	if err != nil {
		return "./."
	}
	return filepath.Dir(execPath)
}

// InitConfig loads configFile, or the file named by -env, or ./.env next to
// the executable. Relative paths are resolved against the executable's
// directory.
func InitConfig(configFile string) (*YamlConf, error) {
	if configFile == "" {
		for i, item := range os.Args {
			if item == "-env" && i+1 < len(os.Args) {
				configFile = os.Args[i+1]
				break
			}
		}
		if configFile == "" {
			configFile = "./.env"
		}
	}
	if !filepath.IsAbs(configFile) {
		configFile = filepath.Join(GetBaseDir(), configFile)
	}

	fmt.Printf("config file: %s\n", configFile)
	return LoadYamlConf(configFile)
}

func LoadYamlConf(cfgPath string) (*YamlConf, error) {
	confFile, err := os.Open(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cfg: %s, error: %s", cfgPath, err)
	}
	defer confFile.Close()

	ret := &YamlConf{}
	decoder := yaml.NewDecoder(confFile)
	err = decoder.Decode(ret)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cfg: %s, error: %s", cfgPath, err)
	}

	ret.Chain = strings.TrimSpace(ret.Chain)
	if ret.Chain == "" {
		ret.Chain = chaincfg.MainNet.String()
	}
	if _, err := ret.Network(); err != nil {
		return nil, errors.Wrapf(err, "cfg %s", cfgPath)
	}

	_, err = logrus.ParseLevel(ret.Log.Level)
	if err != nil {
		ret.Log.Level = "info"
	}

	if ret.Log.Path == "" {
		ret.Log.Path = "log"
	}
	ret.Log.Path = filepath.FromSlash(ret.Log.Path)
	if ret.Log.Path[len(ret.Log.Path)-1] != filepath.Separator {
		ret.Log.Path += string(filepath.Separator)
	}

	return ret, nil
}

func NewDefaultYamlConf(chain string) (*YamlConf, error) {
	net, err := chaincfg.ParseNetwork(chain)
	if err != nil {
		return nil, err
	}
	return &YamlConf{
		Chain: net.String(),
		Log: Log{
			Level: "error",
			Path:  "log",
		},
	}, nil
}

func SaveYamlConf(conf *YamlConf, filePath string) error {
	data, err := yaml.Marshal(conf)
	if err != nil {
		return errors.Wrap(err, "marshal cfg")
	}
	return os.WriteFile(filePath, data, 0644)
}
