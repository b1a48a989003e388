package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/sat20-labs/chainparams/chaincfg"
	"github.com/sat20-labs/chainparams/common"
	"github.com/sat20-labs/chainparams/config"
)

func main() {
	opts := ParseCmdParams()

	yamlcfg, err := loadConf(opts)
	if err != nil {
		common.Log.Error(err)
		os.Exit(1)
	}
	if err := config.InitLog(yamlcfg); err != nil {
		common.Log.Error(err)
		os.Exit(1)
	}

	net, err := yamlcfg.Network()
	if err != nil {
		common.Log.Error(err)
		os.Exit(1)
	}
	registry := chaincfg.NewRegistry()
	params := registry.Select(net)
	common.Log.Infof("chainparams %s, chain %s", common.CHAINPARAMS_VERSION, params.Name)

	if err := run(opts, params); err != nil {
		common.Log.Error(err)
		os.Exit(1)
	}
}

// loadConf reads the config file. A -chain flag overrides the configured
// chain and allows running without any config file.
func loadConf(opts *cmdParams) (*config.YamlConf, error) {
	conf, err := config.InitConfig(opts.env)
	if err != nil {
		if opts.chain == "" {
			return nil, err
		}
		return config.NewDefaultYamlConf(opts.chain)
	}
	if opts.chain != "" {
		conf.Chain = opts.chain
	}
	return conf, nil
}

func run(opts *cmdParams, params *chaincfg.Params) error {
	did := false
	if opts.reward != "" {
		q, err := parseRewardQuery(opts.reward)
		if err != nil {
			return err
		}
		value := params.SubsidyValue(q.level, q.time, q.height)
		fmt.Printf("reward at level %d, time %d, height %d: %s\n",
			q.level, q.time, q.height, common.FormatCoin(value))
		did = true
	}
	if opts.schedule {
		out, err := scheduleYaml(params)
		if err != nil {
			return err
		}
		fmt.Print(out)
		did = true
	}
	if opts.address != "" {
		if err := checkAddress(opts.address, params); err != nil {
			return err
		}
		fmt.Printf("%s is a valid %s address\n", opts.address, params.Name)
		did = true
	}
	if opts.dump {
		dumper := spew.ConfigState{Indent: "  ", MaxDepth: 3, DisableMethods: true, SortKeys: true}
		dumper.Dump(params)
		did = true
	}
	if !did {
		fmt.Print(summary(params))
	}
	return nil
}
