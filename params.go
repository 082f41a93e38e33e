package ngx

import (
	"fmt"
	"slices"
)

// Kind is the type tag of a parameter value.
type Kind uint8

// Value kinds.
const (
	KindInvalid Kind = iota
	KindPointer
	KindFloat
	KindInt
	KindUint
)

func (k Kind) String() string {
	switch k {
	case KindPointer:
		return "pointer"
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	}
	return "invalid"
}

// Value is a tagged parameter value.
//
// Pointer values hold either a *ResourceBinding or a *[16]float32 matrix;
// the engine translates them into its native representation.
type Value struct {
	kind Kind
	ptr  any
	f    float32
	i    int32
	u    uint32
}

// PointerValue returns a pointer-kind value.
func PointerValue(p any) Value { return Value{kind: KindPointer, ptr: p} }

// FloatValue returns a float-kind value.
func FloatValue(f float32) Value { return Value{kind: KindFloat, f: f} }

// IntValue returns a signed-int-kind value.
func IntValue(i int32) Value { return Value{kind: KindInt, i: i} }

// UintValue returns an unsigned-int-kind value.
func UintValue(u uint32) Value { return Value{kind: KindUint, u: u} }

// BoolValue returns an int-kind value of 1 or 0. The engine has no boolean
// type; flags travel as signed integers.
func BoolValue(b bool) Value {
	if b {
		return IntValue(1)
	}
	return IntValue(0)
}

// Kind returns the value's kind.
func (v Value) Kind() Kind { return v.kind }

// Pointer returns the pointer payload. ok is false for other kinds.
func (v Value) Pointer() (p any, ok bool) { return v.ptr, v.kind == KindPointer }

// Float returns the float payload. ok is false for other kinds.
func (v Value) Float() (f float32, ok bool) { return v.f, v.kind == KindFloat }

// Int returns the signed payload. ok is false for other kinds.
func (v Value) Int() (i int32, ok bool) { return v.i, v.kind == KindInt }

// Uint returns the unsigned payload. ok is false for other kinds.
func (v Value) Uint() (u uint32, ok bool) { return v.u, v.kind == KindUint }

func (v Value) String() string {
	switch v.kind {
	case KindPointer:
		switch p := v.ptr.(type) {
		case *ResourceBinding:
			return fmt.Sprintf("view=%#x image=%#x %dx%d format=%d rw=%t", uint64(p.View), uint64(p.Image), p.Width, p.Height, p.Format, p.ReadWrite)
		case *[16]float32:
			return fmt.Sprintf("matrix%v", *p)
		}
		return fmt.Sprintf("%v", v.ptr)
	case KindFloat:
		return fmt.Sprintf("%g", v.f)
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindUint:
		return fmt.Sprintf("%d", v.u)
	}
	return "<invalid>"
}

// ParameterStore is the key/value container handed to the engine.
//
// A store is built for a single engine call and then discarded. It is not
// safe for concurrent use.
type ParameterStore struct {
	values map[Key]Value
}

// NewParameterStore returns an empty store.
func NewParameterStore() *ParameterStore {
	return &ParameterStore{values: make(map[Key]Value)}
}

// Set stores v under k, replacing any previous value. Set panics when v's
// kind differs from k's kind; that is a programming error, not a runtime
// condition.
func (s *ParameterStore) Set(k Key, v Value) {
	if want := k.Kind(); v.kind != want {
		panic(fmt.Sprintf("ngx: key %s holds %s values, got %s", k, want, v.kind))
	}
	if s.values == nil {
		s.values = make(map[Key]Value)
	}
	s.values[k] = v
}

// SetPointer stores a pointer value.
func (s *ParameterStore) SetPointer(k Key, p any) { s.Set(k, PointerValue(p)) }

// SetFloat stores a float value.
func (s *ParameterStore) SetFloat(k Key, f float32) { s.Set(k, FloatValue(f)) }

// SetInt stores a signed integer value.
func (s *ParameterStore) SetInt(k Key, i int32) { s.Set(k, IntValue(i)) }

// SetUint stores an unsigned integer value.
func (s *ParameterStore) SetUint(k Key, u uint32) { s.Set(k, UintValue(u)) }

// SetBool stores a flag as 1 or 0.
func (s *ParameterStore) SetBool(k Key, b bool) { s.Set(k, BoolValue(b)) }

// Get returns the value stored under k.
func (s *ParameterStore) Get(k Key) (Value, bool) {
	v, ok := s.values[k]
	return v, ok
}

// Pointer returns the pointer stored under k. ok is false when k is unset
// or not a pointer key.
func (s *ParameterStore) Pointer(k Key) (any, bool) {
	v, ok := s.values[k]
	if !ok {
		return nil, false
	}
	return v.Pointer()
}

// Binding returns the resource binding stored under k.
func (s *ParameterStore) Binding(k Key) (*ResourceBinding, bool) {
	p, ok := s.Pointer(k)
	if !ok {
		return nil, false
	}
	b, ok := p.(*ResourceBinding)
	return b, ok
}

// Float returns the float stored under k.
func (s *ParameterStore) Float(k Key) (float32, bool) {
	v, ok := s.values[k]
	if !ok {
		return 0, false
	}
	return v.Float()
}

// Int returns the signed integer stored under k.
func (s *ParameterStore) Int(k Key) (int32, bool) {
	v, ok := s.values[k]
	if !ok {
		return 0, false
	}
	return v.Int()
}

// Uint returns the unsigned integer stored under k.
func (s *ParameterStore) Uint(k Key) (uint32, bool) {
	v, ok := s.values[k]
	if !ok {
		return 0, false
	}
	return v.Uint()
}

// Bool returns a flag stored under k as an int.
func (s *ParameterStore) Bool(k Key) (bool, bool) {
	i, ok := s.Int(k)
	return i == 1, ok
}

// Len returns the number of entries.
func (s *ParameterStore) Len() int {
	return len(s.values)
}

// Keys returns the stored keys in ascending order.
func (s *ParameterStore) Keys() []Key {
	keys := make([]Key, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Range calls fn for every entry in key order until fn returns false.
func (s *ParameterStore) Range(fn func(Key, Value) bool) {
	for _, k := range s.Keys() {
		if !fn(k, s.values[k]) {
			return
		}
	}
}

// Clone returns a copy of the store. Pointer payloads are shared.
func (s *ParameterStore) Clone() *ParameterStore {
	c := &ParameterStore{values: make(map[Key]Value, len(s.values))}
	for k, v := range s.values {
		c.values[k] = v
	}
	return c
}
