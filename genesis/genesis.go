// Package genesis builds the VIRIDI genesis blocks and checks them against the
// hashes every node has hard-coded.
//
// Transactions are hashed with a single SHA-256 of their legacy encoding and
// blocks with legacy Keccak-256 of the 80 byte header.
package genesis

import (
	"bytes"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/sat20-labs/chainparams/common"
	"golang.org/x/crypto/sha3"
)

var log = common.GetLoggerEntry("genesis")

// coinbaseBits is the number every genesis coinbase script starts with.
const coinbaseBits = 486604799

// Descriptor holds everything needed to rebuild a genesis block.
type Descriptor struct {
	// Message is embedded in the coinbase script.
	Message string
	// OutputKey is the public key the coinbase output pays to.
	OutputKey []byte
	// Reward is the coinbase output value in base units.
	Reward int64

	Version int32
	Time    uint32
	Bits    uint32
	Nonce   uint32
}

// CoinbaseScript returns the signature script of the genesis coinbase.
func (d Descriptor) CoinbaseScript() ([]byte, error) {
	// the 4 is pushed as one data byte, not as OP_4
	return txscript.NewScriptBuilder().
		AddInt64(coinbaseBits).
		AddOp(txscript.OP_DATA_1).AddOp(0x04).
		AddData([]byte(d.Message)).
		Script()
}

// Coinbase returns the only transaction of the genesis block.
func (d Descriptor) Coinbase() (*wire.MsgTx, error) {
	sigScript, err := d.CoinbaseScript()
	if err != nil {
		return nil, fmt.Errorf("coinbase script: %w", err)
	}
	pkScript, err := txscript.NewScriptBuilder().
		AddData(d.OutputKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
	if err != nil {
		return nil, fmt.Errorf("coinbase output script: %w", err)
	}

	tx := wire.NewMsgTx(1)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{Hash: chainhash.Hash{}, Index: wire.MaxPrevOutIndex},
		SignatureScript:  sigScript,
		Sequence:         wire.MaxTxInSequenceNum,
	})
	tx.AddTxOut(wire.NewTxOut(d.Reward, pkScript))
	return tx, nil
}

// Block assembles the genesis block described by d.
func (d Descriptor) Block() (*wire.MsgBlock, error) {
	coinbase, err := d.Coinbase()
	if err != nil {
		return nil, err
	}
	merkle, err := MerkleRoot([]*wire.MsgTx{coinbase})
	if err != nil {
		return nil, err
	}
	header := wire.NewBlockHeader(d.Version, &chainhash.Hash{}, &merkle, d.Bits, d.Nonce)
	header.Timestamp = time.Unix(int64(d.Time), 0)

	block := wire.NewMsgBlock(header)
	if err := block.AddTransaction(coinbase); err != nil {
		return nil, err
	}
	return block, nil
}

// TxHash returns the single SHA-256 of the transaction's legacy encoding.
func TxHash(tx *wire.MsgTx) (chainhash.Hash, error) {
	var buf bytes.Buffer
	buf.Grow(tx.SerializeSizeStripped())
	if err := tx.SerializeNoWitness(&buf); err != nil {
		return chainhash.Hash{}, err
	}
	return chainhash.HashH(buf.Bytes()), nil
}

// BlockHash returns the legacy Keccak-256 of the serialized header.
func BlockHash(header *wire.BlockHeader) (chainhash.Hash, error) {
	var buf bytes.Buffer
	buf.Grow(wire.MaxBlockHeaderPayload)
	if err := header.Serialize(&buf); err != nil {
		return chainhash.Hash{}, err
	}
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(buf.Bytes())

	var hash chainhash.Hash
	copy(hash[:], hasher.Sum(nil))
	return hash, nil
}

// MerkleRoot combines the transaction hashes pairwise with SHA-256, carrying
// an odd last hash up by pairing it with itself.
func MerkleRoot(txs []*wire.MsgTx) (chainhash.Hash, error) {
	if len(txs) == 0 {
		return chainhash.Hash{}, fmt.Errorf("merkle root of empty transaction list")
	}
	level := make([]chainhash.Hash, 0, len(txs))
	for _, tx := range txs {
		h, err := TxHash(tx)
		if err != nil {
			return chainhash.Hash{}, err
		}
		level = append(level, h)
	}
	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}
		next := make([]chainhash.Hash, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			var pair [chainhash.HashSize * 2]byte
			copy(pair[:chainhash.HashSize], level[i][:])
			copy(pair[chainhash.HashSize:], level[i+1][:])
			next = append(next, chainhash.HashH(pair[:]))
		}
		level = next
	}
	return level[0], nil
}

// Verify rebuilds the genesis block and compares its hash and merkle root
// with the expected byte-reversed hex strings.
func Verify(d Descriptor, wantHash, wantMerkle string) (*wire.MsgBlock, chainhash.Hash, error) {
	block, err := d.Block()
	if err != nil {
		return nil, chainhash.Hash{}, err
	}
	hash, err := BlockHash(&block.Header)
	if err != nil {
		return nil, chainhash.Hash{}, err
	}

	expectHash, err := chainhash.NewHashFromStr(wantHash)
	if err != nil {
		return nil, chainhash.Hash{}, fmt.Errorf("invalid expected genesis hash %s: %w", wantHash, err)
	}
	if !hash.IsEqual(expectHash) {
		return nil, chainhash.Hash{}, fmt.Errorf("genesis hash %s, expected %s", hash, expectHash)
	}

	expectMerkle, err := chainhash.NewHashFromStr(wantMerkle)
	if err != nil {
		return nil, chainhash.Hash{}, fmt.Errorf("invalid expected merkle root %s: %w", wantMerkle, err)
	}
	if !block.Header.MerkleRoot.IsEqual(expectMerkle) {
		return nil, chainhash.Hash{}, fmt.Errorf("genesis merkle root %s, expected %s",
			block.Header.MerkleRoot, expectMerkle)
	}
	return block, hash, nil
}

// MustBuild is Verify for static chain parameters: any mismatch means the
// binary carries a broken genesis and aborts.
func MustBuild(d Descriptor, wantHash, wantMerkle string) (*wire.MsgBlock, chainhash.Hash) {
	block, hash, err := Verify(d, wantHash, wantMerkle)
	if err != nil {
		log.Panicf("MustBuild-> %v", err)
	}
	log.Debugf("genesis %s verified", hash)
	return block, hash
}
