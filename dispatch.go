package ngx

import "fmt"

// Dispatcher hands populated stores to the engine's evaluation entry
// point. It does not transform the store.
type Dispatcher struct {
	engine Engine
	m      Marshaller
}

// NewDispatcher returns a dispatcher bound to e.
func NewDispatcher(e Engine) *Dispatcher {
	return &Dispatcher{engine: e}
}

// Evaluate records the evaluation of feature into cmd using st.
func (d *Dispatcher) Evaluate(cmd CommandBuffer, feature FeatureHandle, st *ParameterStore) error {
	if d.engine == nil {
		return ErrNilEngine
	}
	code := d.engine.EvaluateFeature(cmd, feature, st)
	Logger().Debug("ngx: evaluate",
		"engine", d.engine.Name(),
		"feature", uint64(feature),
		"entries", st.Len(),
		"result", code)
	return resultError("EvaluateFeature", code)
}

// Dispatch marshals desc into a fresh store and evaluates feature with it.
// A validation failure returns before the engine is called, so nothing is
// recorded into cmd.
func (d *Dispatcher) Dispatch(cmd CommandBuffer, feature FeatureHandle, desc Descriptor) error {
	st, err := d.m.Marshal(desc)
	if err != nil {
		if desc == nil {
			return err
		}
		return fmt.Errorf("ngx: marshal %s: %w", desc.Feature(), err)
	}
	err = d.Evaluate(cmd, feature, st)
	d.m.dispatched(err)
	return err
}

// State returns the state of the last Dispatch.
func (d *Dispatcher) State() MarshalState { return d.m.State() }
