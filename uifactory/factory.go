package uifactory

import "io"

// UIFactory creates one platform-matched family of widgets.
//
// Implementations must return widgets whose Platform equals the factory's
// Platform.
type UIFactory interface {
	Platform() Platform
	CreateButton() Button
	CreateCheckbox() Checkbox
}

// WindowsFactory creates Windows widgets. The zero value writes to standard output.
type WindowsFactory struct {
	out io.Writer
}

// NewWindowsFactory returns a WindowsFactory whose widgets write to w.
// A nil w means standard output.
func NewWindowsFactory(w io.Writer) *WindowsFactory {
	return &WindowsFactory{out: w}
}

func (f *WindowsFactory) Platform() Platform { return Windows }

func (f *WindowsFactory) CreateButton() Button { return WindowsButton{sink{f.out}} }

func (f *WindowsFactory) CreateCheckbox() Checkbox { return WindowsCheckbox{sink{f.out}} }

// MacOSFactory creates MacOS widgets. The zero value writes to standard output.
type MacOSFactory struct {
	out io.Writer
}

// NewMacOSFactory returns a MacOSFactory whose widgets write to w.
// A nil w means standard output.
func NewMacOSFactory(w io.Writer) *MacOSFactory {
	return &MacOSFactory{out: w}
}

func (f *MacOSFactory) Platform() Platform { return MacOS }

func (f *MacOSFactory) CreateButton() Button { return MacOSButton{sink{f.out}} }

func (f *MacOSFactory) CreateCheckbox() Checkbox { return MacOSCheckbox{sink{f.out}} }

var (
	_ UIFactory = (*WindowsFactory)(nil)
	_ UIFactory = (*MacOSFactory)(nil)
)

// Showcase exercises one family: it creates a button and a checkbox from f,
// renders and clicks the button, then renders and checks the checkbox.
func Showcase(f UIFactory) {
	button := f.CreateButton()
	checkbox := f.CreateCheckbox()

	button.Render()
	button.OnClick()

	checkbox.Render()
	checkbox.OnCheck()
}
