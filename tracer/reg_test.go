package tracer

import (
	"bytes"
	"strings"
	"testing"
)

func TestRegGetSet(t *testing.T) {
	tr := New([]string{"regs"}, nil)
	r := NewReg[uint8]("a", tr, tr.RegisterElement("regs", Root), FormatU8)
	if got := r.Get(); got != 0 {
		t.Errorf("Get() on fresh Reg = %v, want 0", got)
	}
	r.Set(0x42)
	if got := r.Get(); got != 0x42 {
		t.Errorf("Get() = 0x%02X, want 0x42", got)
	}
}

func TestRegUpdate(t *testing.T) {
	tr := New([]string{"regs"}, nil)
	r := NewReg[uint8]("x", tr, tr.RegisterElement("regs", Root), FormatU8)
	r.Set(0x10)
	r.Update(func(v uint8) uint8 { return v + 1 })
	if got := r.Get(); got != 0x11 {
		t.Errorf("after Update, Get() = 0x%02X, want 0x11", got)
	}
}

func TestRegTracesOnMutation(t *testing.T) {
	var buf bytes.Buffer
	tr := New([]string{"regs"}, &buf)
	r := NewReg[uint16]("pc", tr, tr.RegisterElement("regs", Root), FormatU16)
	r.Set(0x8000)
	tr.Flush()
	if !strings.Contains(buf.String(), "regs.pc") {
		t.Errorf("trace output = %q, want it to name the register's element", buf.String())
	}
	if !strings.Contains(buf.String(), "0x8000") {
		t.Errorf("trace output = %q, want it to contain the formatted value", buf.String())
	}
}

func TestRegDisabledIsSilent(t *testing.T) {
	var buf bytes.Buffer
	tr := New(nil, &buf)
	r := NewReg[uint8]("a", tr, tr.RegisterElement("regs", Root), FormatU8)
	r.Set(0xFF)
	tr.Flush()
	if buf.Len() != 0 {
		t.Errorf("trace output = %q, want empty for a disabled element", buf.String())
	}
	if got := r.Get(); got != 0xFF {
		t.Errorf("Get() = 0x%02X, want 0xFF (tracing disabled must not affect state)", got)
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := FormatU8(0x07); got != "0x07" {
		t.Errorf("FormatU8(0x07) = %q, want 0x07", got)
	}
	if got := FormatU16(0x1234); got != "0x1234" {
		t.Errorf("FormatU16(0x1234) = %q, want 0x1234", got)
	}
}
