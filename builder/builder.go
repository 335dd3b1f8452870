package builder

//go:generate mockgen -destination "mock_builder_test.go" -package $GOPACKAGE -write_package_comment=false github.com/sghaida/creational/builder ComputerBuilder

// ComputerBuilder accumulates Computer fields one step at a time.
//
// Setters never fail and do not validate their input. Calling a setter again
// replaces the previous value.
type ComputerBuilder interface {
	SetCPU(cpu string)
	SetRAM(ram string)
	SetStorage(storage string)
	SetGPU(gpu string)
	SetOS(os string)

	// Build returns the accumulated configuration.
	Build() Computer
}

// Builder is the standard ComputerBuilder.
//
// The zero value is ready to use. Builder is not safe for concurrent use.
type Builder struct {
	computer Computer
}

var _ ComputerBuilder = (*Builder)(nil)

// New returns an empty Builder.
func New() *Builder { return &Builder{} }

// SetCPU sets the CPU field.
func (b *Builder) SetCPU(cpu string) { b.computer.CPU = cpu }

// SetRAM sets the RAM field.
func (b *Builder) SetRAM(ram string) { b.computer.RAM = ram }

// SetStorage sets the Storage field.
func (b *Builder) SetStorage(storage string) { b.computer.Storage = storage }

// SetGPU sets the GPU field.
func (b *Builder) SetGPU(gpu string) { b.computer.GPU = gpu }

// SetOS sets the OS field.
func (b *Builder) SetOS(os string) { b.computer.OS = os }

// Build returns a copy of the accumulated configuration.
//
// The builder keeps its state, so a following Build without setter calls
// returns an equal value.
func (b *Builder) Build() Computer { return b.computer }

// Reset clears every field.
func (b *Builder) Reset() { b.computer = Computer{} }
