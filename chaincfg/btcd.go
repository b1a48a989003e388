package chaincfg

import (
	"encoding/binary"
	"math/big"
	"strconv"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg"
)

const hardenedKeyStart = 0x80000000

// BtcdParams exposes the profile as btcd chain parameters so btcutil address
// and key handling works against VIRIDI prefixes. Consensus fields btcd has
// no VIRIDI equivalent for are left zero.
func (p *Params) BtcdParams() *chaincfg.Params {
	seeds := make([]chaincfg.DNSSeed, 0, len(p.DNSSeeds))
	for _, s := range p.DNSSeeds {
		seeds = append(seeds, chaincfg.DNSSeed{Host: s.Host})
	}

	entries := p.Checkpoints.Entries()
	cps := make([]chaincfg.Checkpoint, 0, len(entries))
	for i := range entries {
		cps = append(cps, chaincfg.Checkpoint{Height: entries[i].Height, Hash: &entries[i].Hash})
	}

	genesisHash := p.GenesisHash

	return &chaincfg.Params{
		Name:        p.Name,
		Net:         p.Magic(),
		DefaultPort: strconv.Itoa(int(p.DefaultPort)),
		DNSSeeds:    seeds,

		GenesisBlock: p.GenesisBlock,
		GenesisHash:  &genesisHash,
		PowLimit:     new(big.Int).Set(p.PowLimit),
		PowLimitBits: blockchain.BigToCompact(p.PowLimit),

		CoinbaseMaturity:   uint16(p.Maturity),
		TargetTimePerBlock: p.TargetSpacing,
		GenerateSupported:  p.MineBlocksOnDemand,

		Checkpoints: cps,

		RelayNonStdTxs: !p.RequireStandard,

		PubKeyHashAddrID: p.PubKeyHashAddrID,
		ScriptHashAddrID: p.ScriptHashAddrID,
		PrivateKeyID:     p.PrivateKeyID,

		HDPrivateKeyID: p.HDPrivateKeyID,
		HDPublicKeyID:  p.HDPublicKeyID,
		HDCoinType:     binary.BigEndian.Uint32(p.HDCoinType[:]) &^ hardenedKeyStart,
	}
}
