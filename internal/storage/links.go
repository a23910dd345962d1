package storage

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/denisok6893-rgb/ai-pepper-matching/internal/domain"
	"github.com/denisok6893-rgb/ai-pepper-matching/internal/validation"
)

const (
	VendorSeedsNow      = "SeedsNow"
	VendorWestCoastSeed = "West Coast Seeds"
)

// LinkDirectory maps variety names to vendor pages. Names match
// case-insensitively.
type LinkDirectory struct {
	links map[string][]domain.AffiliateLink
}

func NewLinkDirectory(byName map[string][]domain.AffiliateLink) *LinkDirectory {
	d := &LinkDirectory{links: make(map[string][]domain.AffiliateLink, len(byName))}
	for name, ls := range byName {
		key := linkKey(name)
		d.links[key] = append(d.links[key], ls...)
	}
	return d
}

func linkKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup returns every link for the variety; nil when unknown.
func (d *LinkDirectory) Lookup(name string) []domain.AffiliateLink {
	ls := d.links[linkKey(name)]
	if len(ls) == 0 {
		return nil
	}
	out := make([]domain.AffiliateLink, len(ls))
	copy(out, ls)
	return out
}

func (d *LinkDirectory) LookupRegion(name string, region domain.Region) []domain.AffiliateLink {
	var out []domain.AffiliateLink
	for _, l := range d.links[linkKey(name)] {
		if l.Region == region {
			out = append(out, l)
		}
	}
	return out
}

func (d *LinkDirectory) Len() int { return len(d.links) }

// LoadLinkDirectory reads a YAML map of variety name to links.
func LoadLinkDirectory(path string) (*LinkDirectory, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read links file: %w", err)
	}

	var byName map[string][]domain.AffiliateLink
	if err := yaml.Unmarshal(b, &byName); err != nil {
		return nil, fmt.Errorf("unmarshal links: %w", err)
	}
	for name, ls := range byName {
		for _, l := range ls {
			if err := validation.ValidateStruct(l); err != nil {
				return nil, fmt.Errorf("links for %q: %w", name, err)
			}
			if !validation.IsHTTPURL(l.URL) {
				return nil, fmt.Errorf("links for %q: invalid url %q", name, l.URL)
			}
		}
	}
	return NewLinkDirectory(byName), nil
}

func seedsNow(slug string) []domain.AffiliateLink {
	return []domain.AffiliateLink{{Vendor: VendorSeedsNow, URL: "https://www.seedsnow.com/products/" + slug, Region: domain.RegionUS}}
}

func westCoast(slug string) []domain.AffiliateLink {
	return []domain.AffiliateLink{{Vendor: VendorWestCoastSeed, URL: "https://www.westcoastseeds.com/products/" + slug, Region: domain.RegionUS}}
}

// DefaultLinks is the built-in vendor table.
func DefaultLinks() *LinkDirectory {
	return NewLinkDirectory(map[string][]domain.AffiliateLink{
		"Anaheim":            seedsNow("pepper-hot-anaheim"),
		"Ancho Grande":       seedsNow("pepper-hot-ancho-grande"),
		"Ancho":              seedsNow("pepper-hot-ancho-grande"),
		"Banana Pepper":      seedsNow("pepper-hot-banana"),
		"Hot Banana":         seedsNow("pepper-hot-banana"),
		"Big Jim":            seedsNow("pepper-hot-big-jim"),
		"Caloro":             seedsNow("pepper-hot-caloro"),
		"Cayenne":            seedsNow("pepper-hot-cayenne-long-thin-red"),
		"Cherry Pepper":      seedsNow("pepper-hot-cherry-large-red"),
		"Fresno":             seedsNow("pepper-fresno-chili"),
		"Fresno Chili":       seedsNow("pepper-fresno-chili"),
		"Chocolate Habanero": seedsNow("pepper-hot-habanero-chocolate-1"),
		"Habanero":           seedsNow("pepper-hot-habanero-orange"),
		"Hungarian Wax":      seedsNow("pepper-hot-hungarian-wax"),
		"Hungarian Hot Wax":  seedsNow("pepper-hot-hungarian-wax"),
		"Jalapeño":           seedsNow("pepper-hot-early-jalapeno"),
		"Poblano":            seedsNow("pepper-poblano"),
		"Serrano":            seedsNow("pepper-hot-serrano-tampiqueno"),
		"Tepin":              seedsNow("pepper-hot-tepin"),
		"Chiltepin":          seedsNow("pepper-hot-tepin"),

		"California Wonder": seedsNow("pepper-sweet-california-wonder"),
		"Bell Pepper":       seedsNow("pepper-sweet-california-wonder"),
		"Corno di Toro":     seedsNow("pepper-sweet-corno-di-toro-red"),
		"Golden Cal Wonder": seedsNow("pepper-sweet-golden-cal-wonder"),
		"Marconi Red":       seedsNow("pepper-sweet-marconi-red"),
		"Pimento":           seedsNow("pepper-sweet-pimento"),
		"Pimiento":          seedsNow("pepper-sweet-pimento"),
		"Sweet Banana":      seedsNow("pepper-sweet-yellow-banana"),
		"Yolo Wonder":       seedsNow("pepper-sweet-yolo-wonder"),

		"Carolina Reaper":          westCoast("carolina-reaper"),
		"Ghost Pepper":             westCoast("ghost"),
		"Bhut Jolokia":             westCoast("ghost"),
		"Scotch Bonnet":            westCoast("scotch-bonnet"),
		"Trinidad Moruga Scorpion": westCoast("trinidad-moruga-scorpion"),
		"Shishito":                 westCoast("shishimai-f1"),
		"Jimmy Nardello":           westCoast("jimmy-nardello-organic"),
		"Pepperoncini":             westCoast("pepperoncini"),
		"Purple Beauty":            westCoast("purple-beauty"),
		"Chocolate Beauty":         westCoast("chocolate-beauty"),
		"King of the North":        westCoast("king-of-the-north-organic"),
		"Carmen F1":                westCoast("carmen-f1-organic"),
	})
}
