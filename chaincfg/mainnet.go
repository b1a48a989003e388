package chaincfg

import (
	"math"
	"time"

	"github.com/sat20-labs/chainparams/checkpoints"
	"github.com/sat20-labs/chainparams/common"
	"github.com/sat20-labs/chainparams/genesis"
	"github.com/sat20-labs/chainparams/subsidy"
)

const (
	mainGenesisHash   = "00000b30721e977a9cd087fea593d1809c74386177afa76108b9f7b4eccc6e5e"
	mainGenesisMerkle = "6b6c68db10692dc2d4c6685c7f6ffca1e07aaf3b802cef9b0459a34c626c1190"

	genesisMessage   = "The born of Viridi - 2017-09-29 03:03:03"
	genesisOutputKey = "044a001040da79684a0544c2254eb6c896fae95a9ea7b51d889475eb57ab2051f1a5858cac61ae400e90ea08015263ad40c65d36f0edf19e996972e7d2cbd13c15"

	// Friday, 5 April 2019 12:00:00 UTC
	mainHEXHashTime = 1554465600
	// Wednesday, 4 April 2029 18:08:08 UTC
	mainF2Time = 1870020488
)

func tenths(n uint64) uint64 {
	return common.CoinTenths(n)
}

// mainF2Base is the first F2 table. Levels are in base units.
func mainF2Base() *subsidy.Table {
	return subsidy.NewTable(
		subsidy.Point{Level: 0, Reward: tenths(38)},
		subsidy.Point{Level: 20e9, Reward: tenths(47)},
		subsidy.Point{Level: 30e9, Reward: tenths(66)},
		subsidy.Point{Level: 50e9, Reward: tenths(94)},
		subsidy.Point{Level: 80e9, Reward: tenths(131)},
		subsidy.Point{Level: 130e9, Reward: tenths(177)},
		subsidy.Point{Level: 210e9, Reward: tenths(233)},
		subsidy.Point{Level: 340e9, Reward: tenths(298)},
		subsidy.Point{Level: 550e9, Reward: tenths(373)},
		subsidy.Point{Level: 890e9, Reward: tenths(456)},
		subsidy.Point{Level: 1440e9, Reward: tenths(550)},
		subsidy.Point{Level: 2330e9, Reward: tenths(652)},
		subsidy.Point{Level: 3770e9, Reward: tenths(764)},
		subsidy.Point{Level: 6100e9, Reward: tenths(885)},
		subsidy.Point{Level: 9870e9, Reward: tenths(1015)},
	)
}

func newMainNetParams() *Params {
	p := &Params{
		Name:         common.ChainMainnet,
		Net:          MainNet,
		MessageStart: [4]byte{0x20, 0xe1, 0xcf, 0x18},
		DefaultPort:  2706,

		AlertPubKey:    mustDecodeHex("04A2B684CBABE97BA08A35EA388B06A6B03E13DFBA974466880AF4CAE1C5B606A751BF7C5CBDE5AB90722CF5B1EC1AADA6D24D607870B6D6B5D684082655404C8D"),
		DevPubKey:      mustDecodeHex("0204e1ae7133cedcf8ecff227d0371e27e6f8f11771630f2c2dfae8d0d390ec80d"),
		FundPubKey:     mustDecodeHex("02dd68d9078238d04aef3d31b3aa29b1dc148097ac081b85327ee14b76143da572"),
		DevFeePercent:  1,
		FundFeePercent: 1,

		PowLimit:  powLimit(20),
		StartWork: powLimit(24),
	}

	schedule := subsidy.NewSchedule(mainF2Base(), subsidy.DecayParams{
		// about one day after F2 activation
		StartHeight: 750,
		// about 30 days
		IntervalBlocks: 43200,
		Steps:          23,
		// 6.94%
		BasisPoints: 694,
	})
	p.Subsidy = subsidy.NewResolver(subsidy.Rules{
		Legacy:      subsidy.NewTable(subsidy.Point{Level: 0, Reward: 5 * common.COIN}),
		HEXHash:     subsidy.NewTable(subsidy.Point{Level: 0, Reward: 5 * common.COIN}),
		F2:          schedule,
		HEXHashTime: mainHEXHashTime,
		F2Time:      mainF2Time,
	})

	p.MaxReorganizationDepth = 100
	p.EnforceBlockUpgradeMajority = 750
	p.RejectBlockOutdatedMajority = 950
	p.ToCheckBlockUpgradeMajority = 1000
	p.MinerThreads = 0
	p.TargetSpacing = time.Minute
	p.AntiInstamineTime = 100
	p.Maturity = 60
	p.MasternodeCountDrift = 3
	p.MaxMoneyOut = 200_000_000 * int64(common.COIN)
	p.StartMasternodePaymentsBlock = 120
	p.LastPOWBlock = 1440000
	p.ModifierUpdateBlock = math.MaxInt32

	// The genesis coinbase output is not spendable.
	p.Genesis = genesis.Descriptor{
		Message:   genesisMessage,
		OutputKey: mustDecodeHex(genesisOutputKey),
		Reward:    50 * int64(common.COIN),
		Version:   1,
		Time:      1506654183,
		Bits:      0x1e0ffff0,
		Nonce:     960862,
	}
	p.buildGenesis(mainGenesisHash, mainGenesisMerkle)

	p.DNSSeeds = []DNSSeed{
		{Name: "viridicoin.net", Host: "seed.viridicoin.net"},
	}
	p.FixedSeeds = mainFixedSeeds

	p.PubKeyHashAddrID = 70
	p.ScriptHashAddrID = 8
	p.PrivateKeyID = 212
	p.HDPublicKeyID = [4]byte{0x02, 0x2d, 0x25, 0x33}
	p.HDPrivateKeyID = [4]byte{0x02, 0x21, 0x31, 0x2b}
	// SLIP-0044
	p.HDCoinType = [4]byte{0x80, 0x00, 0x07, 0x99}

	p.RequireRPCPassword = true
	p.MiningRequiresPeers = true
	p.DefaultConsistencyChecks = false
	p.RequireStandard = true
	p.MineBlocksOnDemand = false
	p.SkipProofOfWorkCheck = false
	p.TestnetToBeDeprecatedFieldRPC = false
	p.HeadersFirstSyncingActive = false

	p.PoolMaxTransactions = 3
	p.SporkKey = "049825D3D5FC2AF3AAEB0E7AEF080FD52B0ABDD68B8519A32A917BB764409A971BD33EC3FADA75E43EDED6F14D8F7D5A9A2B94F1BB08045D2499EE23732937A902"
	p.ObfuscationPoolDummyAddress = "VTQF6gfnV77jnxXxkauDxPqkW3nmMEkiZ1"
	// Wed, 25 Jun 2014 20:36:16 GMT
	p.StartMasternodePayments = 1403728576

	p.Checkpoints = checkpoints.New(
		[]checkpoints.Entry{checkpoints.NewEntry(0, mainGenesisHash)},
		1506654183, // time of last checkpoint
		50,         // transactions up to the last checkpoint
		2000,       // estimated transactions per day after it
	)
	return p
}
