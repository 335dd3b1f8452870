package builder

import (
	"errors"
	"strconv"
)

// Names of the built-in presets.
const (
	GamingPresetName = "gaming"
	OfficePresetName = "office"
)

// ErrEmptyPresetName is returned when a preset without a name is added to a Catalog.
var ErrEmptyPresetName = errors.New("builder: empty preset name")

// UnknownPresetError is returned when a Catalog has no preset with the requested name.
type UnknownPresetError struct{ Name string }

// Error implements the error interface.
func (e UnknownPresetError) Error() string {
	// Example: builder: unknown preset "server"
	return "builder: unknown preset " + strconv.Quote(e.Name)
}

// DuplicatePresetError is returned when a Catalog already holds a preset with the same name.
type DuplicatePresetError struct{ Name string }

// Error implements the error interface.
func (e DuplicatePresetError) Error() string {
	// Example: builder: duplicate preset "gaming"
	return "builder: duplicate preset " + strconv.Quote(e.Name)
}

// Preset is a named, fixed Computer configuration that a Director can replay
// through any ComputerBuilder.
type Preset struct {
	Name     string   `yaml:"name"`
	Computer Computer `yaml:"computer"`
}

// GamingPreset returns the gaming configuration.
func GamingPreset() Preset {
	return Preset{
		Name: GamingPresetName,
		Computer: Computer{
			CPU:     "Intel i9",
			RAM:     "32GB",
			Storage: "1TB SSD",
			GPU:     "NVIDIA RTX 5040",
			OS:      "Windows 11 Pro",
		},
	}
}

// OfficePreset returns the office configuration.
func OfficePreset() Preset {
	return Preset{
		Name: OfficePresetName,
		Computer: Computer{
			CPU:     "Intel i5",
			RAM:     "8GB",
			Storage: "512GB SSD",
			GPU:     "Integrated",
			OS:      "Windows 11",
		},
	}
}

// Catalog is an ordered set of presets keyed by name.
//
// The zero value is an empty catalog ready to use.
type Catalog struct {
	order   []string
	presets map[string]Preset
}

// DefaultCatalog returns a catalog holding the gaming and office presets, in that order.
func DefaultCatalog() *Catalog {
	c := &Catalog{}
	// built-ins have distinct non-empty names
	_ = c.Add(GamingPreset())
	_ = c.Add(OfficePreset())
	return c
}

// Add registers p.
//
// It fails with ErrEmptyPresetName if p has no name, or DuplicatePresetError
// if the name is already taken.
func (c *Catalog) Add(p Preset) error {
	if p.Name == "" {
		return ErrEmptyPresetName
	}
	if c.presets == nil {
		c.presets = make(map[string]Preset)
	}
	if _, exists := c.presets[p.Name]; exists {
		return DuplicatePresetError{Name: p.Name}
	}
	c.presets[p.Name] = p
	c.order = append(c.order, p.Name)
	return nil
}

// Put registers p, replacing any preset with the same name while keeping its position.
func (c *Catalog) Put(p Preset) error {
	if p.Name == "" {
		return ErrEmptyPresetName
	}
	if _, exists := c.presets[p.Name]; exists {
		c.presets[p.Name] = p
		return nil
	}
	return c.Add(p)
}

// Lookup returns the preset registered under name.
func (c *Catalog) Lookup(name string) (Preset, error) {
	if c == nil || c.presets == nil {
		return Preset{}, UnknownPresetError{Name: name}
	}
	p, ok := c.presets[name]
	if !ok {
		return Preset{}, UnknownPresetError{Name: name}
	}
	return p, nil
}

// Names returns the preset names in registration order.
//
// The returned slice is a copy.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	return append([]string{}, c.order...)
}

// Len reports the number of presets.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}
