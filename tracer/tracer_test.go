package tracer

import (
	"bytes"
	"strings"
	"testing"
)

func TestDisabledByDefault(t *testing.T) {
	tr := New(nil, nil)
	id := tr.RegisterElement("cpu", Root)
	if id.Enabled() {
		t.Fatalf("RegisterElement with no filters = enabled, want disabled")
	}
	if Disabled.Enabled() {
		t.Error("Disabled.Enabled() = true, want false")
	}
}

func TestEnabledSubtree(t *testing.T) {
	var buf bytes.Buffer
	tr := New([]string{"cpu.regs"}, &buf)

	cpu := tr.RegisterElement("cpu", Root)
	if !cpu.Enabled() {
		t.Fatalf("cpu element disabled, want the path node the cpu.regs filter pre-created")
	}

	regs := tr.RegisterElement("regs", cpu)
	if !regs.Enabled() {
		t.Fatalf("regs element disabled, want enabled")
	}

	a := tr.RegisterElement("a", regs)
	if !a.Enabled() {
		t.Fatalf("child of enabled element disabled, want enabled (allChildrenEnabled should propagate)")
	}

	tr.TraceEvent(a, "%s", "hello")
	tr.Flush()
	if !strings.Contains(buf.String(), "cpu.regs.a") {
		t.Errorf("trace output = %q, want it to contain %q", buf.String(), "cpu.regs.a")
	}
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("trace output = %q, want it to contain %q", buf.String(), "hello")
	}
}

func TestDisabledElementIgnoresEvents(t *testing.T) {
	var buf bytes.Buffer
	tr := New([]string{"cpu.regs"}, &buf)
	cpu := tr.RegisterElement("cpu", Root)
	mem := tr.RegisterElement("mem", cpu)
	if mem.Enabled() {
		t.Fatalf("mem element enabled, want disabled")
	}
	tr.TraceEvent(mem, "should not appear")
	tr.Flush()
	if buf.Len() != 0 {
		t.Errorf("trace output = %q, want empty", buf.String())
	}
}

func TestRegisterElementIdempotent(t *testing.T) {
	tr := New([]string{"a.b"}, nil)
	a1 := tr.RegisterElement("a", Root)
	a2 := tr.RegisterElement("a", Root)
	if a1 != a2 {
		t.Errorf("RegisterElement(\"a\") returned different IDs across calls: %v, %v", a1, a2)
	}
}

func TestNilWriterDefaultsToStdout(t *testing.T) {
	tr := New(nil, nil)
	if tr.writer == nil {
		t.Fatal("writer is nil, want os.Stdout default")
	}
}
