package ngx

// OptFloat32 is a float scalar that may be left unspecified.
//
// The zero value is unspecified. Float(0) is unspecified as well: a zero
// scale or exposure carries no meaning for the engine, so it is treated as
// "use the default".
type OptFloat32 struct {
	v   float32
	set bool
}

// Float returns an OptFloat32 holding v. v == 0 yields an unspecified value.
func Float(v float32) OptFloat32 {
	return OptFloat32{v: v, set: v != 0}
}

// IsSet reports whether a value was specified.
func (o OptFloat32) IsSet() bool { return o.set }

// Or returns the specified value, or def when unspecified.
func (o OptFloat32) Or(def float32) float32 {
	if !o.set {
		return def
	}
	return o.v
}
