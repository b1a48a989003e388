package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/pkg/errors"
	"github.com/sat20-labs/chainparams/chaincfg"
	"github.com/sat20-labs/chainparams/common"
	"github.com/sat20-labs/chainparams/config"
	"github.com/sat20-labs/chainparams/subsidy"
	"gopkg.in/yaml.v2"
)

type cmdParams struct {
	env      string
	chain    string
	reward   string
	schedule bool
	address  string
	dump     bool
}

func ParseCmdParams() *cmdParams {
	init := flag.String("init", "", "generate config file in current dir")
	env := flag.String("env", "", "env config file, default ./.env")
	chain := flag.String("chain", "", "chain name, overrides the config file")
	reward := flag.String("reward", "", "block reward at 'level,time,height'")
	schedule := flag.Bool("schedule", false, "print the subsidy schedule")
	address := flag.String("address", "", "check a base58 address against the chain")
	dump := flag.Bool("dump", false, "dump the chain parameters")
	help := flag.Bool("help", false, "show help.")
	flag.Parse()

	if *help {
		common.Log.Info("chainparams help:")
		common.Log.Info("Usage: 'chainparams -init main' or 'chainparams -init test'")
		common.Log.Info("Usage: 'chainparams -env default.yaml -schedule'")
		common.Log.Info("Usage: 'chainparams -chain main -reward 25000000000,1870020489,750'")
		common.Log.Info("Options:")
		common.Log.Info("  -init: write default.yaml for a chain in current dir")
		common.Log.Info("  -env: config file, default ./.env")
		common.Log.Info("  -chain: main, test, regtest or unittest")
		common.Log.Info("  -reward: subsidy at issuance level, block time and height")
		common.Log.Info("  -schedule: print legacy, HEX hash and F2 tables")
		common.Log.Info("  -address: validate an address with the chain prefixes")
		common.Log.Info("  -dump: print every chain parameter")
		os.Exit(0)
	}

	if *init != "" {
		err := generateDefaultCfg(*init)
		if err != nil {
			common.Log.Fatal(err)
		}
		os.Exit(0)
	}

	return &cmdParams{
		env:      *env,
		chain:    *chain,
		reward:   *reward,
		schedule: *schedule,
		address:  *address,
		dump:     *dump,
	}
}

func generateDefaultCfg(chain string) error {
	cfg, err := config.NewDefaultYamlConf(chain)
	if err != nil {
		return err
	}
	cfgPath, err := os.Getwd()
	if err != nil {
		return err
	}
	return config.SaveYamlConf(cfg, cfgPath+"/default.yaml")
}

type rewardQuery struct {
	level  uint64
	time   uint32
	height int32
}

func parseRewardQuery(s string) (*rewardQuery, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return nil, errors.Errorf("reward query %q, want level,time,height", s)
	}
	level, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "level")
	}
	t, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 32)
	if err != nil {
		return nil, errors.Wrap(err, "time")
	}
	height, err := strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 32)
	if err != nil {
		return nil, errors.Wrap(err, "height")
	}
	if height < 0 {
		return nil, errors.Errorf("negative height %d", height)
	}
	return &rewardQuery{level: level, time: uint32(t), height: int32(height)}, nil
}

type tableView struct {
	Name   string            `yaml:"name"`
	From   int32             `yaml:"from_height,omitempty"`
	Points map[uint64]string `yaml:"points"`
}

func newTableView(name string, from int32, points []subsidy.Point) tableView {
	view := tableView{Name: name, From: from, Points: make(map[uint64]string, len(points))}
	for _, p := range points {
		view.Points[p.Level] = common.FormatCoin(p.Reward)
	}
	return view
}

func scheduleYaml(params *chaincfg.Params) (string, error) {
	r := params.Subsidy
	views := []tableView{
		newTableView("legacy", 0, r.Legacy().Points()),
		newTableView("hexhash", 0, r.HEXHash().Points()),
	}
	decay := r.Schedule().Params()
	for i := 0; i < r.Schedule().Len(); i++ {
		from := decay.StartHeight + int32(i)*decay.IntervalBlocks
		views = append(views, newTableView(fmt.Sprintf("f2 step %d", i), from, r.Schedule().At(uint32(i)).Points()))
	}
	data, err := yaml.Marshal(views)
	if err != nil {
		return "", errors.Wrap(err, "marshal schedule")
	}
	return string(data), nil
}

func checkAddress(addr string, params *chaincfg.Params) error {
	net := params.BtcdParams()
	decoded, err := btcutil.DecodeAddress(addr, net)
	if err != nil {
		return errors.Wrapf(err, "decode %s", addr)
	}
	if !decoded.IsForNet(net) {
		return errors.Errorf("%s is not a %s address", addr, params.Name)
	}
	return nil
}

func summary(p *chaincfg.Params) string {
	var b strings.Builder
	fmt.Fprintf(&b, "chain:        %s\n", p.Name)
	fmt.Fprintf(&b, "magic:        %08x\n", uint32(p.Magic()))
	fmt.Fprintf(&b, "port:         %d\n", p.DefaultPort)
	fmt.Fprintf(&b, "genesis:      %s\n", p.GenesisHash)
	fmt.Fprintf(&b, "checkpoints:  %d (last %d)\n", p.Checkpoints.Len(), p.Checkpoints.LastHeight())
	fmt.Fprintf(&b, "hexhash time: %d\n", p.HEXHashTimestamp())
	fmt.Fprintf(&b, "f2 time:      %d\n", p.F2Timestamp())
	return b.String()
}
