// Package uifactory produces platform-matched UI widgets.
//
// A UIFactory creates one family of widgets: every Button and Checkbox it returns
// reports the factory's Platform. Two families are provided:
//
//   - WindowsFactory: WindowsButton + WindowsCheckbox
//   - MacOSFactory:   MacOSButton + MacOSCheckbox
//
// Widgets are stateless; they only print a fixed line to the factory's writer
// when rendered or interacted with.
//
// A Registry selects a factory by Platform, and ParsePlatform maps user input
// (including "auto", resolved from runtime.GOOS) to a Platform.
//
// Example
//
//	f := uifactory.NewWindowsFactory(os.Stdout)
//	uifactory.Showcase(f)
//
// Import
//
//	"github.com/sghaida/creational/uifactory"
package uifactory
