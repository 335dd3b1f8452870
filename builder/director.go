package builder

// Director drives a ComputerBuilder through a fixed sequence of steps.
//
// Every construction sets all five fields in the order CPU, RAM, Storage, GPU, OS
// and then calls Build, so nothing from a previous construction leaks into the
// next one.
type Director struct {
	builder ComputerBuilder
}

// NewDirector returns a Director that drives b.
func NewDirector(b ComputerBuilder) *Director {
	return &Director{builder: b}
}

// BuildGamingComputer builds the gaming preset.
func (d *Director) BuildGamingComputer() Computer {
	return d.Construct(GamingPreset())
}

// BuildOfficeComputer builds the office preset.
func (d *Director) BuildOfficeComputer() Computer {
	return d.Construct(OfficePreset())
}

// Construct replays p through the builder and returns the result of Build.
func (d *Director) Construct(p Preset) Computer {
	d.builder.SetCPU(p.Computer.CPU)
	d.builder.SetRAM(p.Computer.RAM)
	d.builder.SetStorage(p.Computer.Storage)
	d.builder.SetGPU(p.Computer.GPU)
	d.builder.SetOS(p.Computer.OS)
	return d.builder.Build()
}

// BuildPreset looks name up in catalog and constructs it.
//
// It returns UnknownPresetError if catalog has no such preset.
func (d *Director) BuildPreset(catalog *Catalog, name string) (Computer, error) {
	p, err := catalog.Lookup(name)
	if err != nil {
		return Computer{}, err
	}
	return d.Construct(p), nil
}
