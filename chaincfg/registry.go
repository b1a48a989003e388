package chaincfg

// Registry owns the four built-in profiles and the one the process runs on.
type Registry struct {
	params  [numNetworks]*Params
	current *Params
}

// NewRegistry builds every profile. Any broken constant, such as a genesis
// block that does not hash to its hard-coded value, aborts here.
func NewRegistry() *Registry {
	main := newMainNetParams()
	test := derive(main, testNetOverrides)
	reg := derive(test, regTestOverrides)
	unit := derive(main, unitTestOverrides)

	r := &Registry{}
	r.params[MainNet] = main
	r.params[TestNet] = test
	r.params[RegTest] = reg
	r.params[UnitTest] = unit
	for _, p := range r.params {
		log.Debugf("profile %s: magic %08x port %d genesis %s", p.Name, uint32(p.Magic()), p.DefaultPort, p.GenesisHash)
	}
	return r
}

// ParamsFor returns the profile of net whether or not it is selected.
func (r *Registry) ParamsFor(net Network) *Params {
	if net >= numNetworks {
		log.Panicf("ParamsFor-> unimplemented network %d", net)
	}
	return r.params[net]
}

// Select makes net the active profile. The choice is made once per process;
// selecting the same network again is allowed.
func (r *Registry) Select(net Network) *Params {
	p := r.ParamsFor(net)
	if r.current != nil && r.current != p {
		log.Panicf("Select-> %s already selected, can't switch to %s", r.current.Name, p.Name)
	}
	if r.current == nil {
		log.Infof("chain %s selected", p.Name)
	}
	r.current = p
	return p
}

// Current returns the active profile.
func (r *Registry) Current() *Params {
	if r.current == nil {
		log.Panicf("Current-> no chain selected")
	}
	return r.current
}

// Modifiable returns the setters of the unit test profile. The unit test
// profile must be the active one.
func (r *Registry) Modifiable() ModifiableParams {
	cur := r.Current()
	if cur != r.params[UnitTest] {
		log.Panicf("Modifiable-> active chain is %s, not %s", cur.Name, r.params[UnitTest].Name)
	}
	return unitTestParams{cur}
}
