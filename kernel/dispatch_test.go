package kernel

import (
	"testing"

	"github.com/cwbudde/algo-vecbench/internal/cpu"
	"github.com/cwbudde/algo-vecbench/internal/testutil"
)

func TestForceGenericSelectsScalarFallback(t *testing.T) {
	cpu.ForceGeneric()
	Refresh()
	defer func() {
		cpu.ResetDetection()
		Refresh()
	}()

	if got := Implementation(); got != "generic" {
		t.Fatalf("Implementation() = %q, want generic", got)
	}

	x := testutil.DeterministicNoise(8, 1, 1025)
	y := testutil.DeterministicNoise(9, 1, 1025)

	want := testutil.Clone(y)
	SaxpyScalar(want, x, 1.25)
	for _, u := range []int{1, 2, 4, 8, 3} {
		got := testutil.Clone(y)
		SaxpyManual(got, x, 1.25, u)
		testutil.RequireBitIdentical(t, got, want)
	}

	if a, b := DotManual(x, y), DotScalar(x, y); a != b {
		t.Fatalf("fallback DotManual = %v, DotScalar = %v", a, b)
	}
}

func TestImplementationsListsGeneric(t *testing.T) {
	infos := Implementations()
	if len(infos) == 0 {
		t.Fatal("no implementations registered")
	}

	var sawGeneric, sawSelected bool
	for _, info := range infos {
		if info.Name == "generic" {
			sawGeneric = true
			if !info.Supported {
				t.Error("generic reported unsupported")
			}
		}
		if info.Selected {
			if sawSelected {
				t.Error("more than one implementation selected")
			}
			sawSelected = true
			if !info.Supported {
				t.Errorf("selected %q is unsupported", info.Name)
			}
		}
	}
	if !sawGeneric {
		t.Error("generic implementation not registered")
	}
	if !sawSelected {
		t.Error("no implementation marked selected")
	}
}

func TestImplementationFollowsFeatures(t *testing.T) {
	defer func() {
		cpu.ResetDetection()
		Refresh()
	}()

	cpu.SetForcedFeatures(cpu.Features{Architecture: "none"})
	Refresh()
	if got := Implementation(); got != "generic" {
		t.Fatalf("without vector features Implementation() = %q", got)
	}
	if Features().Architecture != "none" {
		t.Fatal("Features() ignores forced features")
	}
}

func TestManualAccessorsMatchEntryPoints(t *testing.T) {
	x := testutil.DeterministicNoise(10, 1, 1029)
	y := testutil.DeterministicNoise(11, 1, 1029)

	for _, u := range unrollFactors {
		want := testutil.Clone(y)
		SaxpyManual(want, x, 1.25, u)
		got := testutil.Clone(y)
		ManualSaxpy()(got, x, 1.25, u)
		testutil.RequireBitIdentical(t, got, want)
	}

	if a, b := ManualDot()(x, y), DotManual(x, y); a != b {
		t.Fatalf("ManualDot() = %v, DotManual = %v", a, b)
	}
}
