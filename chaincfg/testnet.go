package chaincfg

import (
	"math"
	"time"

	"github.com/sat20-labs/chainparams/checkpoints"
	"github.com/sat20-labs/chainparams/common"
	"github.com/sat20-labs/chainparams/subsidy"
)

const testGenesisHash = "000007cd8923b9abe8854afe9b1d5fee30d50d9a48c00ea108f69a59639656ad"

// testNetOverrides turns a copy of the main profile into testnet.
func testNetOverrides(p *Params) {
	p.Name = common.ChainTestnet
	p.Net = TestNet
	p.MessageStart = [4]byte{0x30, 0xf1, 0xcc, 0x28}

	p.PowLimit = powLimit(1)
	p.StartWork = p.PowLimit

	p.Subsidy = p.Subsidy.WithLegacy(subsidy.NewTable(subsidy.Point{Level: 0, Reward: common.COIN}))

	p.AlertPubKey = mustDecodeHex("04459DC949A9E2C2E1FA87ED9EE93F8D26CD52F95853EE24BCD4B07D4B7D79458E81F0425D81E52B797ED304A836667A1D2D422CD10F485B06CCBE906E1081FBAC")
	p.DefaultPort = 12706
	p.EnforceBlockUpgradeMajority = 51
	p.RejectBlockOutdatedMajority = 75
	p.ToCheckBlockUpgradeMajority = 100
	p.MinerThreads = 0
	p.TargetSpacing = time.Minute
	p.LastPOWBlock = math.MaxInt32
	p.Maturity = 15
	p.MasternodeCountDrift = 4
	p.ModifierUpdateBlock = math.MaxInt32
	p.MaxMoneyOut = 200_000_000 * int64(common.COIN)

	// later timestamp, same coinbase
	p.Genesis.Time = 1506261240
	p.Genesis.Nonce = 1396025
	p.buildGenesis(testGenesisHash, mainGenesisMerkle)

	p.DNSSeeds = nil
	p.FixedSeeds = testFixedSeeds

	p.PubKeyHashAddrID = 132
	p.ScriptHashAddrID = 19
	p.PrivateKeyID = 239
	p.HDPublicKeyID = [4]byte{0x3a, 0x80, 0x61, 0xa0}
	p.HDPrivateKeyID = [4]byte{0x3a, 0x80, 0x58, 0x37}
	p.HDCoinType = [4]byte{0x80, 0x00, 0x00, 0x01}

	p.RequireRPCPassword = true
	p.MiningRequiresPeers = false
	p.DefaultConsistencyChecks = false
	p.RequireStandard = false
	p.MineBlocksOnDemand = false
	p.TestnetToBeDeprecatedFieldRPC = true

	p.PoolMaxTransactions = 2
	p.SporkKey = "0421838CC1407E7B8C0C5F2379DF7EBD395181949CFA55124939B4980D5054A7926F88E3059921A50F0F81C5195E882D9A414EA0835BB89C9BB061511B9F132B31"
	// carries the main network prefix, kept as deployed
	p.ObfuscationPoolDummyAddress = "VPYhw53Z8dPasuHdSKeuByo8QfhfdkRWAH"
	// Fri, 09 Jan 2015 21:05:58 GMT
	p.StartMasternodePayments = 1420837558

	p.Checkpoints = checkpoints.New(
		[]checkpoints.Entry{checkpoints.NewEntry(0, testGenesisHash)},
		1506261240, 0, 250)
}
