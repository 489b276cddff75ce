package tracer

import "fmt"

// Reg wraps a single value of type T that emits exactly one trace event
// per mutation. T is typically a register-sized integer or a small
// status struct; Format renders it for the trace line.
type Reg[T any] struct {
	name    string
	value   T
	tracer  *Tracer
	element ElementID
	format  func(T) string
}

// NewReg creates a traced register, registering a child trace element
// named name under parent.
func NewReg[T any](name string, tracer *Tracer, parent ElementID, format func(T) string) *Reg[T] {
	return &Reg[T]{
		name:    name,
		tracer:  tracer,
		element: tracer.RegisterElement(name, parent),
		format:  format,
	}
}

// Get returns the register's current value.
func (r *Reg[T]) Get() T {
	return r.value
}

// Set writes a new value, emitting a trace event.
func (r *Reg[T]) Set(value T) {
	r.value = value
	r.tracer.TraceEvent(r.element, "      %s = %s", r.name, r.format(value))
}

// Update performs a read-modify-write through fn, emitting one trace
// event for the resulting Set.
func (r *Reg[T]) Update(fn func(T) T) {
	r.Set(fn(r.value))
}

// FormatU8 renders an 8-bit value as "0xXX", matching the tracer's
// byte-width hex convention.
func FormatU8(v uint8) string {
	return fmt.Sprintf("0x%02X", v)
}

// FormatU16 renders a 16-bit value as "0xXXXX".
func FormatU16(v uint16) string {
	return fmt.Sprintf("0x%04X", v)
}
