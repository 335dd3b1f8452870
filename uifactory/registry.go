package uifactory

import "io"

// Registry selects a UIFactory by Platform.
//
// Factories are checked in registration order and the first one whose Platform
// matches is used.
//
// Not safe for concurrent registration. Register all factories before use.
type Registry struct {
	factories []UIFactory
}

// NewRegistry returns a registry holding the MacOS and Windows factories, in
// that order, both writing to w.
func NewRegistry(w io.Writer) *Registry {
	r := &Registry{}
	r.Register(NewMacOSFactory(w))
	r.Register(NewWindowsFactory(w))
	return r
}

// Register appends f and returns the registry for chaining.
func (r *Registry) Register(f UIFactory) *Registry {
	r.factories = append(r.factories, f)
	return r
}

// FactoryFor returns the first registered factory for p.
func (r *Registry) FactoryFor(p Platform) (UIFactory, error) {
	for _, f := range r.factories {
		if f.Platform() == p {
			return f, nil
		}
	}
	return nil, UnsupportedPlatformError{Platform: string(p)}
}

// Platforms returns the platform of each registered factory in registration order.
func (r *Registry) Platforms() []Platform {
	out := make([]Platform, 0, len(r.factories))
	for _, f := range r.factories {
		out = append(out, f.Platform())
	}
	return out
}
