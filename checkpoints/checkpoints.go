// Package checkpoints holds the per-network table of trusted block hashes and
// the transaction counts used to estimate initial sync progress.
package checkpoints

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/sat20-labs/chainparams/common"
)

var log = common.GetLoggerEntry("checkpoints")

// Entry identifies a known good block.
type Entry struct {
	Height int32
	Hash   chainhash.Hash
}

// Set is the checkpoint table of one network. It is constant once built.
type Set struct {
	entries []Entry

	// LastTime is the unix time of the last checkpoint block.
	LastTime int64
	// TxCount is the number of transactions between genesis and the last
	// checkpoint.
	TxCount int64
	// TxPerDay is the estimated number of transactions per day after the
	// last checkpoint.
	TxPerDay int64
}

// New builds a checkpoint set. Entries must be non-empty and ordered by
// strictly increasing height.
func New(entries []Entry, lastTime, txCount, txPerDay int64) *Set {
	if len(entries) == 0 {
		log.Panicf("New-> empty checkpoint table")
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Height <= entries[i-1].Height {
			log.Panicf("New-> checkpoint %d at height %d not above height %d",
				i, entries[i].Height, entries[i-1].Height)
		}
	}
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return &Set{
		entries:  cp,
		LastTime: lastTime,
		TxCount:  txCount,
		TxPerDay: txPerDay,
	}
}

// NewEntry builds an entry from a byte-reversed hex hash as printed by the
// block explorer. A malformed hash aborts.
func NewEntry(height int32, hash string) Entry {
	h, err := chainhash.NewHashFromStr(hash)
	if err != nil {
		log.Panicf("NewEntry-> invalid checkpoint hash %s at height %d: %v", hash, height, err)
	}
	return Entry{Height: height, Hash: *h}
}

// Entries returns a copy of the checkpoints ordered by height.
func (s *Set) Entries() []Entry {
	ret := make([]Entry, len(s.entries))
	copy(ret, s.entries)
	return ret
}

func (s *Set) Len() int {
	return len(s.entries)
}

func (s *Set) LastHeight() int32 {
	return s.entries[len(s.entries)-1].Height
}

// HashAt returns the checkpointed hash at height, if any.
func (s *Set) HashAt(height int32) (chainhash.Hash, bool) {
	lo, hi := 0, len(s.entries)
	for lo < hi {
		mid := (lo + hi) / 2
		if s.entries[mid].Height < height {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(s.entries) && s.entries[lo].Height == height {
		return s.entries[lo].Hash, true
	}
	return chainhash.Hash{}, false
}

// Matches reports whether hash is acceptable at height: either no checkpoint
// exists there or it equals the checkpointed hash.
func (s *Set) Matches(height int32, hash *chainhash.Hash) bool {
	want, ok := s.HashAt(height)
	if !ok {
		return true
	}
	return want.IsEqual(hash)
}

// EstimatedTxTotal extrapolates the transaction count from the last
// checkpoint to now at TxPerDay.
func (s *Set) EstimatedTxTotal(now time.Time) int64 {
	elapsed := now.Unix() - s.LastTime
	if elapsed <= 0 {
		return s.TxCount
	}
	return s.TxCount + elapsed*s.TxPerDay/int64(24*time.Hour/time.Second)
}
