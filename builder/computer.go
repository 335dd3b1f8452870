package builder

// Computer is an assembled machine configuration.
//
// All fields are optional and default to the empty string. A Computer is a plain
// value; it is immutable by convention once Build has returned it.
type Computer struct {
	CPU     string `yaml:"cpu"`
	RAM     string `yaml:"ram"`
	Storage string `yaml:"storage"`
	GPU     string `yaml:"gpu"`
	OS      string `yaml:"os"`
}

// String renders the configuration in display form:
//
//	Computer [CPU=Intel i9, RAM=32GB, Storage=1TB SSD, GPU=NVIDIA RTX 5040, OS=Windows 11 Pro]
func (c Computer) String() string {
	return "Computer [CPU=" + c.CPU +
		", RAM=" + c.RAM +
		", Storage=" + c.Storage +
		", GPU=" + c.GPU +
		", OS=" + c.OS + "]"
}
