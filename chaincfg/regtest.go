package chaincfg

import (
	"time"

	"github.com/sat20-labs/chainparams/checkpoints"
	"github.com/sat20-labs/chainparams/common"
	"github.com/sat20-labs/chainparams/subsidy"
)

const regTestGenesisHash = "46e179b98313838727265d83ffd60d50ea38219221160db357477ec073caa1ce"

// regTestOverrides turns a copy of the testnet profile into regtest.
func regTestOverrides(p *Params) {
	p.Name = common.ChainRegtest
	p.Net = RegTest
	p.MessageStart = [4]byte{0x31, 0xf1, 0xcc, 0x21}

	p.StartWork = powLimit(20)
	p.Subsidy = p.Subsidy.WithLegacy(subsidy.NewTable(subsidy.Point{Level: 0, Reward: common.COIN}))

	p.EnforceBlockUpgradeMajority = 750
	p.RejectBlockOutdatedMajority = 950
	p.ToCheckBlockUpgradeMajority = 1000
	p.MinerThreads = 1
	p.TargetSpacing = time.Minute
	p.PowLimit = powLimit(1)

	p.Genesis.Time = 1506262240
	p.Genesis.Bits = 0x207fffff
	p.Genesis.Nonce = 1
	p.buildGenesis(regTestGenesisHash, mainGenesisMerkle)
	p.DefaultPort = 51476

	p.DNSSeeds = nil
	p.FixedSeeds = nil

	p.RequireRPCPassword = false
	p.MiningRequiresPeers = false
	p.DefaultConsistencyChecks = true
	p.RequireStandard = false
	p.MineBlocksOnDemand = true
	p.TestnetToBeDeprecatedFieldRPC = false

	p.Checkpoints = checkpoints.New(
		[]checkpoints.Entry{checkpoints.NewEntry(0, regTestGenesisHash)},
		1506262240, 0, 100)
}
