package uifactory

import (
	"fmt"
	"io"
	"os"
)

// Widget is the behavior shared by every product.
type Widget interface {
	// Render prints the widget's fixed rendering line.
	Render()

	// Platform reports the family the widget belongs to.
	Platform() Platform
}

// Button is a clickable widget.
type Button interface {
	Widget
	OnClick()
}

// Checkbox is a checkable widget.
type Checkbox interface {
	Widget
	OnCheck()
}

// sink is embedded by every product; a nil writer means standard output.
type sink struct {
	out io.Writer
}

func (s sink) println(line string) {
	w := s.out
	if w == nil {
		w = os.Stdout
	}
	// stdout write errors are not reported by the products
	_, _ = fmt.Fprintln(w, line)
}

// WindowsButton is the Windows family Button.
type WindowsButton struct{ sink }

func (WindowsButton) Platform() Platform { return Windows }
func (b WindowsButton) Render()          { b.println("Rendering a Windows style button.") }
func (b WindowsButton) OnClick()         { b.println("Windows Button clicked!") }

// WindowsCheckbox is the Windows family Checkbox.
type WindowsCheckbox struct{ sink }

func (WindowsCheckbox) Platform() Platform { return Windows }
func (c WindowsCheckbox) Render()          { c.println("Rendering a Windows style checkbox.") }
func (c WindowsCheckbox) OnCheck()         { c.println("Windows Checkbox checked!") }

// MacOSButton is the MacOS family Button.
type MacOSButton struct{ sink }

func (MacOSButton) Platform() Platform { return MacOS }
func (b MacOSButton) Render()          { b.println("Rendering a MacOS style button.") }
func (b MacOSButton) OnClick()         { b.println("MacOS Button clicked!") }

// MacOSCheckbox is the MacOS family Checkbox.
type MacOSCheckbox struct{ sink }

func (MacOSCheckbox) Platform() Platform { return MacOS }
func (c MacOSCheckbox) Render()          { c.println("Rendering a MacOS style checkbox.") }
func (c MacOSCheckbox) OnCheck()         { c.println("MacOS Checkbox checked!") }
