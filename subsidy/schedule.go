package subsidy

import (
	"github.com/sat20-labs/chainparams/common"
	"lukechampine.com/uint128"
)

const basisPointsDenominator = 10000

// DecayParams controls the F2 reward decay. Starting at StartHeight, every
// IntervalBlocks blocks the rewards drop by BasisPoints/10000, at most Steps
// times.
type DecayParams struct {
	StartHeight    int32
	IntervalBlocks int32
	Steps          uint32
	BasisPoints    uint32
}

// Schedule holds the Steps+1 decayed tables. Index 0 is the base table.
type Schedule struct {
	params DecayParams
	tables []*Table
}

// NewSchedule derives the whole decay schedule from base. It runs once per
// profile; the result never changes.
func NewSchedule(base *Table, params DecayParams) *Schedule {
	if base == nil {
		log.Panicf("NewSchedule-> nil base table")
	}
	if params.BasisPoints >= basisPointsDenominator {
		log.Panicf("NewSchedule-> decay of %d basis points must be below %d",
			params.BasisPoints, basisPointsDenominator)
	}
	if params.IntervalBlocks <= 0 {
		log.Panicf("NewSchedule-> invalid decay interval %d", params.IntervalBlocks)
	}
	if params.StartHeight < 0 {
		log.Panicf("NewSchedule-> invalid decay start height %d", params.StartHeight)
	}

	tables := make([]*Table, 0, params.Steps+1)
	tables = append(tables, base)
	for i := uint32(1); i <= params.Steps; i++ {
		tables = append(tables, tables[i-1].mapRewards(func(reward uint64) uint64 {
			return decayReward(reward, params.BasisPoints)
		}))
	}
	log.Debugf("decay schedule built: %d steps of %d bp every %d blocks from %d",
		params.Steps, params.BasisPoints, params.IntervalBlocks, params.StartHeight)

	return &Schedule{params: params, tables: tables}
}

// decayReward applies one decay step: scale down, round up to a tenth of a
// coin, and if that rounding undid the decay take one tenth off.
func decayReward(reward uint64, basisPoints uint32) uint64 {
	scaled := uint128.From64(reward).
		Mul64(uint64(basisPointsDenominator - basisPoints)).
		Div64(basisPointsDenominator).Lo

	rounded := (scaled + common.TENTH_COIN - 1) / common.TENTH_COIN * common.TENTH_COIN
	if rounded == reward && rounded > common.TENTH_COIN {
		rounded -= common.TENTH_COIN
	}
	return rounded
}

func (s *Schedule) Params() DecayParams {
	return s.params
}

// Len is Steps+1.
func (s *Schedule) Len() int {
	return len(s.tables)
}

// At returns the table for decay step i. Steps past the end stay on the last
// table.
func (s *Schedule) At(i uint32) *Table {
	if i > s.params.Steps {
		i = s.params.Steps
	}
	return s.tables[i]
}

// Index returns the decay step in effect at height. Heights before
// StartHeight are step 0.
func (s *Schedule) Index(height int32) uint32 {
	if height < s.params.StartHeight {
		return 0
	}
	step := uint32((height - s.params.StartHeight) / s.params.IntervalBlocks)
	if step > s.params.Steps {
		step = s.params.Steps
	}
	return step
}
