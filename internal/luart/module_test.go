package luart

import (
	"testing"
)

func TestHostModulePackageAndProgress(t *testing.T) {
	rt := NewRuntime()
	defer rt.Close()

	script := `
function install_packages(flags, ids)
	pk.progress(0)
	for i, id in ipairs(ids) do
		pk.package(id, "installing", "")
	end
	pk.progress(100)
	return true
end
`
	if err := rt.DoString(script); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	sink := &recordingSink{}
	rt.BindSink(sink)
	defer rt.UnbindSink()

	_, err := rt.Call("install_packages", int64(0), []string{"vim;9.1.0;x86_64;main", "emacs;29.1;x86_64;main"})
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}

	if len(sink.packages) != 2 {
		t.Errorf("sink received %d packages, want 2", len(sink.packages))
	}
	if len(sink.progress) != 2 || sink.progress[0] != 0 || sink.progress[1] != 100 {
		t.Errorf("sink progress = %v, want [0 100]", sink.progress)
	}
	if sink.packages[0].ID.Name != "vim" {
		t.Errorf("first package = %+v", sink.packages[0])
	}
}

func TestHostModuleProgressClamped(t *testing.T) {
	rt := NewRuntime()
	defer rt.Close()

	if err := rt.DoString(`function f() pk.progress(-5); pk.progress(250) end`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	sink := &recordingSink{}
	rt.BindSink(sink)
	defer rt.UnbindSink()

	if _, err := rt.Call("f"); err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if len(sink.progress) != 2 || sink.progress[0] != 0 || sink.progress[1] != 100 {
		t.Errorf("progress = %v, want clamped [0 100]", sink.progress)
	}
}

func TestHostModuleEmissionsWithoutSinkDropped(t *testing.T) {
	rt := NewRuntime()
	defer rt.Close()

	if err := rt.DoString(`function f() pk.package("vim;1;;", "installed", "s"); pk.progress(50) end`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	// No sink bound: emissions are dropped, not a crash.
	if _, err := rt.Call("f"); err != nil {
		t.Errorf("Call() without bound sink error = %v", err)
	}
}

func TestHostModuleRejectsMalformedPackageID(t *testing.T) {
	rt := NewRuntime()
	defer rt.Close()

	if err := rt.DoString(`function f() pk.package("garbage", "installed", "") end`); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	sink := &recordingSink{}
	rt.BindSink(sink)
	defer rt.UnbindSink()

	if _, err := rt.Call("f"); err == nil {
		t.Error("Call() with malformed package ID error = nil, want script error")
	}
	if len(sink.packages) != 0 {
		t.Errorf("sink received %d packages, want 0", len(sink.packages))
	}
}

func TestSinkBinding(t *testing.T) {
	rt := NewRuntime()
	defer rt.Close()

	if rt.currentSink() != nil {
		t.Error("fresh runtime has a bound sink")
	}

	sink := &recordingSink{}
	rt.BindSink(sink)
	if rt.currentSink() == nil {
		t.Error("currentSink() = nil after BindSink")
	}

	rt.UnbindSink()
	if rt.currentSink() != nil {
		t.Error("currentSink() != nil after UnbindSink")
	}
}
