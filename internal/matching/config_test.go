package matching

import (
	"os"
	"path/filepath"
	"testing"
)

func writeWeights(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "weights.json")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write weights: %v", err)
	}
	return p
}

func TestLoadWeightsFromFile_PartialOverride(t *testing.T) {
	w, err := LoadWeightsFromFile(writeWeights(t, `{"heat": 20, "use_case": 12}`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if w.Heat != 20 || w.UseCase != 12 {
		t.Fatalf("overrides not applied: %+v", w)
	}
	if w.Type != DefaultWeights().Type || w.BaselineFloor != DefaultWeights().BaselineFloor {
		t.Fatalf("defaults lost: %+v", w)
	}
}

func TestLoadWeightsFromFile_Rejects(t *testing.T) {
	tests := map[string]string{
		"partial above full": `{"heat_adjacent": 30}`,
		"zero floor":         `{"baseline_floor": 0}`,
		"malformed":          `{"heat": `,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			w, err := LoadWeightsFromFile(writeWeights(t, body))
			if err == nil {
				t.Fatal("expected error")
			}
			if w != DefaultWeights() {
				t.Fatalf("failed load should return defaults, got %+v", w)
			}
		})
	}

	if _, err := LoadWeightsFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
