package guide

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/denisok6893-rgb/ai-pepper-matching/internal/domain"
)

func TestFormatHeatLevel(t *testing.T) {
	tests := []struct {
		min, max int
		want     string
	}{
		{0, 0, "No heat"},
		{100, 900, "100-900 SHU (Mild)"},
		{2500, 8000, "3K-8K SHU (Medium)"},
		{30000, 50000, "30K-50K SHU (Hot)"},
		{100000, 350000, "100K-350K SHU (Very Hot)"},
		{1400000, 2200000, "1.4M-2.2M SHU (Extreme)"},
		{855000, 1041427, "0.9M-1.0M SHU (Extreme)"},
	}
	for _, tt := range tests {
		if got := FormatHeatLevel(tt.min, tt.max); got != tt.want {
			t.Fatalf("FormatHeatLevel(%d,%d)=%q want=%q", tt.min, tt.max, got, tt.want)
		}
	}
}

func TestContainerSizeAndInches(t *testing.T) {
	if got := ContainerSize(nil); got != "5 gallon (19 L)" {
		t.Fatalf("nil: %q", got)
	}
	if got := ContainerSize(intPtr(12)); got != "12 L (4 gallon)" {
		t.Fatalf("12: %q", got)
	}
	if got := ContainerSize(intPtr(19)); got != "19 L (5 gallon)" {
		t.Fatalf("19: %q", got)
	}
	if got := CmToInches(60); got != 24 {
		t.Fatalf("60cm=%d in", got)
	}
}

func TestFormatSHUAndStars(t *testing.T) {
	if got := FormatSHU(1641183); got != "1,641,183" {
		t.Fatalf("FormatSHU=%q", got)
	}
	if got := Stars(7); got != "★★★★☆" {
		t.Fatalf("Stars(7)=%q", got)
	}
	if got := Stars(1); got != "★☆☆☆☆" {
		t.Fatalf("Stars(1)=%q", got)
	}
}

func TestLoadProductCatalog(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "products.yaml")
	body := `heatMat:
  id: vivosun-mat
  name: VIVOSUN Seedling Heat Mat
  affiliate_url: https://example.com/heat-mat
  price_range: "$20-30"
  price_tier: low
`
	if err := os.WriteFile(good, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := LoadProductCatalog(good)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	p := c.Product("heatMat", "warm soil")
	if p.ID != "vivosun-mat" || p.AffiliateURL != "https://example.com/heat-mat" || p.Reason != "warm soil" || p.PriceTier != domain.PriceLow {
		t.Fatalf("override=%+v", p)
	}
	if c.Product("mulch", "x").Name == "mulch" {
		t.Fatal("defaults should survive an override file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("mulch:\n  name: Straw\n  affiliate_url: not-a-url\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProductCatalog(bad); err == nil {
		t.Fatal("expected invalid url error")
	}
}
