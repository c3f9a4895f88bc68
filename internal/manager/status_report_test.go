package manager

import (
	"sort"
	"testing"
)

func TestModels_KeySetMatchesRegistry(t *testing.T) {
	m := newTestManager(t, &fakeAdapter{}, &fakeDaemon{})
	check := func() {
		t.Helper()
		resp := m.Models()
		var got []string
		for k := range resp.Models {
			got = append(got, k)
		}
		sort.Strings(got)
		want := m.Registry().Keys()
		sort.Strings(want)
		if len(got) != len(want) {
			t.Fatalf("keys: got %v want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("keys: got %v want %v", got, want)
			}
		}
	}
	check()
	m.EnsureLoaded(testCtx(t), "llama-scout")
	check()

	resp := m.Models()
	if l := resp.Models["llama-scout"].Loaded; l == nil || !*l {
		t.Fatalf("llama-scout should be loaded")
	}
	if l := resp.Models["codellama-70b"].Loaded; l == nil || *l {
		t.Fatalf("codellama-70b should be reported unloaded")
	}
	remote := resp.Models["phind-codellama"]
	if remote.Loaded != nil || remote.Type != "remote-daemon" || remote.Name != "phind-codellama:34b-v2-fp16" {
		t.Fatalf("unexpected remote info: %+v", remote)
	}
}

func TestHealth_RemoteAvailabilityFollowsProbe(t *testing.T) {
	for _, up := range []bool{true, false} {
		d := &fakeDaemon{}
		if !up {
			d.probeErr = errBoom
		}
		m := newTestManager(t, &fakeAdapter{}, d)
		h := m.Health(testCtx(t))
		if h.Status != "healthy" {
			t.Fatalf("status: %q", h.Status)
		}
		a := h.Models["phind-codellama"].Available
		if a == nil || *a != up {
			t.Fatalf("up=%v: available=%v", up, a)
		}
		if h.Models["llama-scout"].Available != nil || h.Models["llama-scout"].Loaded == nil {
			t.Fatalf("in-process entry shape: %+v", h.Models["llama-scout"])
		}
		if d.probes.Load() != 1 {
			t.Fatalf("expected one shared probe, got %d", d.probes.Load())
		}
		if h.InProcessRuntime != llamaBuilt {
			t.Fatalf("in_process_runtime mismatch")
		}
	}
}
