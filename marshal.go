package ngx

import "fmt"

// Descriptor is an evaluation request that can be marshalled into a
// ParameterStore. It is implemented by *SuperSamplingEval and
// *RayReconstructionEval only.
type Descriptor interface {
	// Feature returns the feature kind the descriptor evaluates.
	Feature() FeatureKind

	validate() error
	populate(st *ParameterStore)
}

// MarshalState is the state of a Marshaller.
type MarshalState uint8

// Marshaller states.
const (
	StateIdle MarshalState = iota
	StateValidating
	StatePopulating
	StateReady
	StateDispatched
	StateFailed
)

func (s MarshalState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateValidating:
		return "Validating"
	case StatePopulating:
		return "Populating"
	case StateReady:
		return "Ready"
	case StateDispatched:
		return "Dispatched"
	case StateFailed:
		return "Failed"
	}
	return fmt.Sprintf("MarshalState(%d)", uint8(s))
}

// Marshaller validates descriptors and populates parameter stores.
//
// A Marshaller moves Idle -> Validating -> Populating -> Ready, then to
// Dispatched or Failed. Validation failures go straight to Failed without
// touching the store. The zero value is ready to use; each Marshal call
// starts over from Idle.
type Marshaller struct {
	state MarshalState
	err   error
}

// State returns the current state.
func (m *Marshaller) State() MarshalState { return m.state }

// Err returns the error that moved the marshaller to Failed, if any.
func (m *Marshaller) Err() error { return m.err }

// Reset returns the marshaller to Idle.
func (m *Marshaller) Reset() {
	m.state = StateIdle
	m.err = nil
}

// Marshal validates d and returns a fresh store populated from it. On
// failure the returned store is nil.
func (m *Marshaller) Marshal(d Descriptor) (*ParameterStore, error) {
	st := NewParameterStore()
	if err := m.MarshalInto(st, d); err != nil {
		return nil, err
	}
	return st, nil
}

// MarshalInto validates d and writes its entries into st. When validation
// fails st is left untouched.
func (m *Marshaller) MarshalInto(st *ParameterStore, d Descriptor) error {
	m.Reset()
	if d == nil {
		return m.fail(ErrNilDescriptor)
	}

	m.state = StateValidating
	if err := d.validate(); err != nil {
		return m.fail(err)
	}

	m.state = StatePopulating
	d.populate(st)

	m.state = StateReady
	Logger().Debug("ngx: descriptor marshalled",
		"feature", d.Feature(),
		"entries", st.Len())
	return nil
}

// dispatched records the outcome of handing the store to the engine.
func (m *Marshaller) dispatched(err error) {
	if err != nil {
		m.state = StateFailed
		m.err = err
		return
	}
	m.state = StateDispatched
}

func (m *Marshaller) fail(err error) error {
	m.state = StateFailed
	m.err = err
	return err
}
