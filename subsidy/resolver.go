package subsidy

// Rules are the inputs of a Resolver.
type Rules struct {
	// Legacy applies up to and including HEXHashTime.
	Legacy *Table
	// HEXHash applies after HEXHashTime up to and including F2Time, and
	// after F2Time until the decay schedule starts.
	HEXHash *Table
	F2      *Schedule

	HEXHashTime uint32
	F2Time      uint32
}

// Resolver picks the switch point table for a block and looks up its reward.
type Resolver struct {
	rules Rules
}

func NewResolver(rules Rules) *Resolver {
	if rules.Legacy == nil || rules.HEXHash == nil || rules.F2 == nil {
		log.Panicf("NewResolver-> missing subsidy table")
	}
	if rules.HEXHashTime > rules.F2Time {
		log.Panicf("NewResolver-> HEX hash activation %d after F2 activation %d",
			rules.HEXHashTime, rules.F2Time)
	}
	return &Resolver{rules: rules}
}

// WithLegacy returns a resolver that shares everything with r except the
// legacy table.
func (r *Resolver) WithLegacy(legacy *Table) *Resolver {
	rules := r.rules
	rules.Legacy = legacy
	return NewResolver(rules)
}

// SelectTable returns the switch points for a block with the given time and
// height. Both activation times are inclusive upper bounds of the older era.
func (r *Resolver) SelectTable(blockTime uint32, height int32) *Table {
	switch {
	case blockTime <= r.rules.HEXHashTime:
		return r.rules.Legacy
	case blockTime <= r.rules.F2Time:
		return r.rules.HEXHash
	case height < r.rules.F2.Params().StartHeight:
		return r.rules.HEXHash
	}
	return r.rules.F2.At(r.rules.F2.Index(height))
}

// Value returns the block reward at issuance level for a block with the given
// time and height.
func (r *Resolver) Value(level uint64, blockTime uint32, height int32) uint64 {
	return r.SelectTable(blockTime, height).ValueAtOrBelow(level)
}

func (r *Resolver) Legacy() *Table {
	return r.rules.Legacy
}

func (r *Resolver) HEXHash() *Table {
	return r.rules.HEXHash
}

func (r *Resolver) Schedule() *Schedule {
	return r.rules.F2
}

func (r *Resolver) HEXHashTime() uint32 {
	return r.rules.HEXHashTime
}

func (r *Resolver) F2Time() uint32 {
	return r.rules.F2Time
}

// DecayIndex returns the schedule step in force at height once F2 is active.
func (r *Resolver) DecayIndex(height int32) uint32 {
	return r.rules.F2.Index(height)
}
