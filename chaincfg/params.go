// Package chaincfg defines the VIRIDI network profiles (main, test, regtest
// and unittest) and the registry the node selects its active profile from.
//
// Profiles are built once by NewRegistry and must be treated as read-only
// afterwards. The only sanctioned mutation is through ModifiableParams on the
// unit test profile.
package chaincfg

import (
	"encoding/binary"
	"encoding/hex"
	"math/big"
	"strings"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/pkg/errors"
	"github.com/sat20-labs/chainparams/checkpoints"
	"github.com/sat20-labs/chainparams/common"
	"github.com/sat20-labs/chainparams/genesis"
	"github.com/sat20-labs/chainparams/subsidy"
)

var log = common.GetLoggerEntry("chaincfg")

var bigOne = big.NewInt(1)

// powLimit returns ~uint256(0) >> shift.
func powLimit(shift uint) *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(bigOne, 256-shift), bigOne)
}

// Network identifies one of the built-in profiles.
type Network uint8

const (
	MainNet Network = iota
	TestNet
	RegTest
	UnitTest

	numNetworks
)

func (n Network) String() string {
	switch n {
	case MainNet:
		return common.ChainMainnet
	case TestNet:
		return common.ChainTestnet
	case RegTest:
		return common.ChainRegtest
	case UnitTest:
		return common.ChainUnittest
	}
	return "unknown"
}

// ParseNetwork maps a configured chain name to its Network.
func ParseNetwork(name string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "main", "mainnet":
		return MainNet, nil
	case "test", "testnet":
		return TestNet, nil
	case "regtest":
		return RegTest, nil
	case "unittest":
		return UnitTest, nil
	}
	return 0, errors.Errorf("unsupported chain: %s", name)
}

// DNSSeed is a seeder host and the name it is listed under.
type DNSSeed struct {
	Name string
	Host string
}

// Params is the complete set of consensus and protocol constants of one
// network.
type Params struct {
	Name         string
	Net          Network
	MessageStart [4]byte
	DefaultPort  uint16

	AlertPubKey []byte
	// DevPubKey and FundPubKey receive DevFeePercent and FundFeePercent of
	// every block reward.
	DevPubKey      []byte
	FundPubKey     []byte
	DevFeePercent  int
	FundFeePercent int

	PowLimit  *big.Int
	StartWork *big.Int

	Subsidy *subsidy.Resolver

	MaxReorganizationDepth      int32
	EnforceBlockUpgradeMajority int
	RejectBlockOutdatedMajority int
	ToCheckBlockUpgradeMajority int
	MinerThreads                int
	TargetSpacing               time.Duration
	// AntiInstamineTime is the number of blocks paying the reduced launch
	// reward.
	AntiInstamineTime            int32
	Maturity                     int32
	MasternodeCountDrift         int
	MaxMoneyOut                  int64
	StartMasternodePaymentsBlock int32
	LastPOWBlock                 int32
	ModifierUpdateBlock          int32

	Genesis      genesis.Descriptor
	GenesisBlock *wire.MsgBlock
	GenesisHash  chainhash.Hash

	DNSSeeds   []DNSSeed
	FixedSeeds []SeedSpec6

	// Base58 prefixes
	PubKeyHashAddrID byte
	ScriptHashAddrID byte
	PrivateKeyID     byte
	HDPublicKeyID    [4]byte
	HDPrivateKeyID   [4]byte
	// HDCoinType is the hardened BIP44 coin type, big endian.
	HDCoinType [4]byte

	RequireRPCPassword            bool
	MiningRequiresPeers           bool
	DefaultConsistencyChecks      bool
	RequireStandard               bool
	MineBlocksOnDemand            bool
	SkipProofOfWorkCheck          bool
	TestnetToBeDeprecatedFieldRPC bool
	HeadersFirstSyncingActive     bool

	PoolMaxTransactions         int
	SporkKey                    string
	ObfuscationPoolDummyAddress string
	StartMasternodePayments     int64

	Checkpoints *checkpoints.Set
}

// Magic returns the message start bytes as the wire network value.
func (p *Params) Magic() wire.BitcoinNet {
	return wire.BitcoinNet(binary.LittleEndian.Uint32(p.MessageStart[:]))
}

// SubsidySwitchPoints returns the switch point table that applies to a block
// with the given time and height.
func (p *Params) SubsidySwitchPoints(blockTime uint32, height int32) *subsidy.Table {
	return p.Subsidy.SelectTable(blockTime, height)
}

// SubsidyValue returns the block reward at issuance level for a block with
// the given time and height.
func (p *Params) SubsidyValue(level uint64, blockTime uint32, height int32) uint64 {
	return p.Subsidy.Value(level, blockTime, height)
}

func (p *Params) HEXHashTimestamp() uint32 {
	return p.Subsidy.HEXHashTime()
}

func (p *Params) F2Timestamp() uint32 {
	return p.Subsidy.F2Time()
}

// buildGenesis rebuilds the genesis block from p.Genesis and aborts unless it
// hashes to the hard-coded values.
func (p *Params) buildGenesis(wantHash, wantMerkle string) {
	p.GenesisBlock, p.GenesisHash = genesis.MustBuild(p.Genesis, wantHash, wantMerkle)
}

// derive copies base and applies overrides to the copy.
func derive(base *Params, overrides func(p *Params)) *Params {
	p := *base
	overrides(&p)
	return &p
}

func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		log.Panicf("mustDecodeHex %s failed. %v", s, err)
	}
	return b
}
