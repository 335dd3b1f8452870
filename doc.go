// Package creational demonstrates two object-creation patterns in Go.
//
// The repository is organized as small, independent packages:
//
//   - builder: stepwise construction of Computer values (Builder) driven by a
//     Director that replays named presets (gaming, office, or presets from a catalog)
//   - uifactory: platform-matched widget families (Windows, MacOS) behind the
//     UIFactory interface, plus a Registry that selects a family by Platform
//   - config: YAML preset catalog and platform selection with environment overrides
//
// Runnable demos:
//   - cmd/builderdemo: prints the gaming and office computers
//   - cmd/factorydemo: renders the MacOS and Windows widget families
//
// The two demos share no state; each wires its own objects in main.
package creational
