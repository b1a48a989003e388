package chaincfg

import (
	"github.com/sat20-labs/chainparams/common"
	"github.com/sat20-labs/chainparams/subsidy"
)

// unitTestOverrides turns a copy of the main profile into the unit test
// profile. It keeps the main checkpoints.
func unitTestOverrides(p *Params) {
	p.Name = common.ChainUnittest
	p.Net = UnitTest
	p.DefaultPort = 32706
	p.DNSSeeds = nil
	p.FixedSeeds = nil

	p.RequireRPCPassword = false
	p.MiningRequiresPeers = false
	p.DefaultConsistencyChecks = true
	p.MineBlocksOnDemand = true

	p.Subsidy = p.Subsidy.WithLegacy(subsidy.NewTable(subsidy.Point{Level: 0, Reward: common.COIN}))
}

// ModifiableParams is what tests may change on the unit test profile while it
// is active. Calls are not synchronised.
type ModifiableParams interface {
	SetEnforceBlockUpgradeMajority(v int)
	SetRejectBlockOutdatedMajority(v int)
	SetToCheckBlockUpgradeMajority(v int)
	SetDefaultConsistencyChecks(v bool)
	SetSkipProofOfWorkCheck(v bool)
}

type unitTestParams struct {
	*Params
}

func (u unitTestParams) SetEnforceBlockUpgradeMajority(v int) {
	u.EnforceBlockUpgradeMajority = v
}

func (u unitTestParams) SetRejectBlockOutdatedMajority(v int) {
	u.RejectBlockOutdatedMajority = v
}

func (u unitTestParams) SetToCheckBlockUpgradeMajority(v int) {
	u.ToCheckBlockUpgradeMajority = v
}

func (u unitTestParams) SetDefaultConsistencyChecks(v bool) {
	u.DefaultConsistencyChecks = v
}

func (u unitTestParams) SetSkipProofOfWorkCheck(v bool) {
	u.SkipProofOfWorkCheck = v
}
