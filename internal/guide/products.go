package guide

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/denisok6893-rgb/ai-pepper-matching/internal/domain"
	"github.com/denisok6893-rgb/ai-pepper-matching/internal/validation"
)

// ProductLookup resolves a product category to a recommendation carrying
// the given rationale. Implementations must be deterministic.
type ProductLookup interface {
	Product(category, reason string) domain.ProductRecommendation
}

// Catalog maps product categories to their static recommendation.
type Catalog map[string]domain.ProductRecommendation

// Product returns the catalog entry for category with reason attached. An
// unknown category yields a bare recommendation named after the category.
func (c Catalog) Product(category, reason string) domain.ProductRecommendation {
	p, ok := c[category]
	if !ok {
		return domain.ProductRecommendation{ID: category, Category: category, Name: category, Reason: reason}
	}
	if p.ID == "" {
		p.ID = category
	}
	p.Category = category
	p.Reason = reason
	return p
}

func product(id, name, price string, tier domain.PriceTier) domain.ProductRecommendation {
	return domain.ProductRecommendation{ID: id, Name: name, PriceRange: price, PriceTier: tier}
}

// DefaultProducts returns a fresh copy of the built-in catalog.
func DefaultProducts() Catalog {
	return Catalog{
		"seedStartingTray":     product("seed-tray-72", "72-Cell Seed Starting Tray with Humidity Dome", "$15-25", domain.PriceLow),
		"seedStartingMix":      product("seed-mix", "Organic Seed Starting Mix", "$10-15", domain.PriceLow),
		"heatMat":              product("heat-mat", "Seedling Heat Mat with Thermostat", "$25-40", domain.PriceMid),
		"growLight":            product("grow-light-t5", "T5 LED Seedling Grow Light", "$30-60", domain.PriceMid),
		"growLightPremium":     product("grow-light-panel", "Full-Spectrum LED Grow Light Panel", "$100-200", domain.PriceHigh),
		"container5Gal":        product("fabric-pot-5gal", "5 Gallon Fabric Grow Bags (5-pack)", "$15-25", domain.PriceLow),
		"selfWateringPot":      product("self-watering-planter", "Self-Watering Planter", "$30-50", domain.PriceMid),
		"pottingMix":           product("potting-mix", "Premium Potting Mix", "$15-25", domain.PriceLow),
		"raisedBedKit":         product("raised-bed-cedar", "Cedar Raised Garden Bed Kit", "$80-150", domain.PriceHigh),
		"gardenSoil":           product("raised-bed-soil", "Raised Bed Soil Blend", "$15-30", domain.PriceLow),
		"soilTestKit":          product("soil-test-kit", "Soil pH and Nutrient Test Kit", "$15-25", domain.PriceLow),
		"greenHouseKit":        product("walk-in-greenhouse", "Walk-In Greenhouse Kit", "$150-400", domain.PriceHigh),
		"mulch":                product("straw-mulch", "Organic Straw Mulch", "$15-25", domain.PriceLow),
		"gardenGloves":         product("garden-gloves", "Nitrile-Coated Garden Gloves", "$10-20", domain.PriceLow),
		"transplantFertilizer": product("transplant-fertilizer", "Starter Plus Transplant Fertilizer", "$10-20", domain.PriceLow),
		"rowCovers":            product("row-cover", "Floating Row Cover Fabric", "$15-30", domain.PriceLow),
		"plantStakes":          product("bamboo-stakes", "4 ft Bamboo Plant Stakes (25-pack)", "$15-25", domain.PriceLow),
		"pruningShears":        product("pruning-shears", "Bypass Pruning Shears", "$15-35", domain.PriceLow),
		"gardenTwine":          product("jute-twine", "Natural Jute Garden Twine", "$5-10", domain.PriceLow),
		"pepperFertilizer":     product("pepper-fertilizer", "Organic Tomato & Pepper Fertilizer", "$15-25", domain.PriceLow),
		"dripIrrigationKit":    product("drip-kit", "Drip Irrigation Starter Kit", "$30-60", domain.PriceMid),
		"soakerHose":           product("soaker-hose", "Soaker Hose (50 ft)", "$15-30", domain.PriceLow),
		"calciumSupplement":    product("calcium-spray", "Calcium Foliar Spray for Blossom End Rot", "$10-20", domain.PriceLow),
		"neemOil":              product("neem-oil", "Cold-Pressed Neem Oil Concentrate", "$10-20", domain.PriceLow),
		"insecticidalSoap":     product("insecticidal-soap", "Insecticidal Soap Spray", "$8-15", domain.PriceLow),
		"harvestBasket":        product("harvest-basket", "Wooden Harvest Basket", "$20-40", domain.PriceMid),
		"dehydrator":           product("food-dehydrator", "Food Dehydrator with Adjustable Thermostat", "$50-150", domain.PriceHigh),
		"compostBin":           product("compost-bin", "Dual-Chamber Tumbling Compost Bin", "$60-120", domain.PriceMid),
	}
}

// LoadProductCatalog reads a YAML map of category to product and layers it
// over the built-in catalog.
func LoadProductCatalog(path string) (Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read product catalog: %w", err)
	}

	var overrides map[string]domain.ProductRecommendation
	if err := yaml.Unmarshal(b, &overrides); err != nil {
		return nil, fmt.Errorf("unmarshal product catalog: %w", err)
	}

	c := DefaultProducts()
	for category, p := range overrides {
		if p.Name == "" {
			return nil, fmt.Errorf("product %q: name is required", category)
		}
		if p.AffiliateURL != "" && !validation.IsHTTPURL(p.AffiliateURL) {
			return nil, fmt.Errorf("product %q: invalid affiliate_url %q", category, p.AffiliateURL)
		}
		switch p.PriceTier {
		case "", domain.PriceLow, domain.PriceMid, domain.PriceHigh:
		default:
			return nil, fmt.Errorf("product %q: unknown price_tier %q", category, p.PriceTier)
		}
		c[category] = p
	}
	return c, nil
}
