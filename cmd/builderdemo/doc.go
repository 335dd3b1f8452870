// Command builderdemo prints computer configurations assembled by the builder
// package's Director.
//
// Run without arguments it prints the gaming and office presets:
//
//	Gaming Computer: Computer [CPU=Intel i9, RAM=32GB, Storage=1TB SSD, GPU=NVIDIA RTX 5040, OS=Windows 11 Pro]
//	Office Computer: Computer [CPU=Intel i5, RAM=8GB, Storage=512GB SSD, GPU=Integrated, OS=Windows 11]
//
// Flags:
//
//	--config   YAML preset catalog merged over the built-ins (or CREATIONAL_CONFIG)
//	--preset   preset to build; repeatable, defaults to gaming then office
//	--format   text (default) or yaml
//	--verbose  log each construction step (or CREATIONAL_VERBOSE=true)
package main
