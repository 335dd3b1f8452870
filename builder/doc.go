// Package builder assembles Computer configurations step by step.
//
// It separates the stepwise construction of a value (ComputerBuilder) from the
// order in which the steps are taken (Director):
//
//   - ComputerBuilder: one setter per field plus Build. No validation; any string,
//     including the empty string, is accepted and the last assignment wins.
//   - Builder: the standard ComputerBuilder. Build returns a snapshot copy, so
//     values already handed out are not changed by later setter calls.
//   - Director: sequences the setters for a Preset (gaming, office, or any preset
//     held in a Catalog) and then calls Build.
//
// Example
//
//	d := builder.NewDirector(builder.New())
//	gaming := d.BuildGamingComputer()
//	fmt.Println("Gaming Computer: " + gaming.String())
//
// Import
//
//	"github.com/sghaida/creational/builder"
package builder
