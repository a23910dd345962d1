// Package guide builds a seven-stage growing guide from a variety's
// attributes. Every stage is a pure function of the item and a product
// lookup; stages never see each other's output.
package guide

import (
	"fmt"

	"github.com/denisok6893-rgb/ai-pepper-matching/internal/domain"
)

// Stage ids, in generation order.
const (
	StageSeedStarting       = "seed-starting"
	StageGrowingEnvironment = "growing-environment"
	StageTransplanting      = "transplanting"
	StageSupportTraining    = "support-training"
	StageFeedingCare        = "feeding-care"
	StagePestDisease        = "pest-disease"
	StageHarvesting         = "harvesting"
)

type stageFunc func(t traits, b *stageBuilder)

type stageRule struct {
	id    string
	title string
	build stageFunc
}

var rules = []stageRule{
	{StageSeedStarting, "Seed Starting", seedStarting},
	{StageGrowingEnvironment, "Growing Environment", growingEnvironment},
	{StageTransplanting, "Transplanting", transplanting},
	{StageSupportTraining, "Support & Training", supportTraining},
	{StageFeedingCare, "Feeding & Care", feedingCare},
	{StagePestDisease, "Pest & Disease Watch", pestDisease},
	{StageHarvesting, "Harvesting & Preserving", harvesting},
}

// StageIDs lists stage ids in the order Generate emits them.
func StageIDs() []string {
	ids := make([]string, len(rules))
	for i, r := range rules {
		ids[i] = r.id
	}
	return ids
}

type Generator struct {
	products ProductLookup
}

// NewGenerator returns a generator resolving products through p. A nil
// lookup uses DefaultProducts.
func NewGenerator(p ProductLookup) *Generator {
	if p == nil {
		p = DefaultProducts()
	}
	return &Generator{products: p}
}

func (g *Generator) Generate(item domain.Item) domain.Guide {
	t := deriveTraits(item)
	stages := make([]domain.Stage, 0, len(rules))
	for i, r := range rules {
		b := &stageBuilder{
			products: g.products,
			stage: domain.Stage{
				ID:          r.id,
				StageNumber: i + 1,
				Title:       r.title,
				Paragraphs:  []string{},
				Tips:        []domain.Tip{},
				Products:    []domain.ProductRecommendation{},
			},
		}
		r.build(t, b)
		stages = append(stages, b.stage)
	}
	return domain.Guide{VarietyName: item.Name, Stages: stages}
}

// Generate builds a guide with the built-in product catalog.
func Generate(item domain.Item) domain.Guide {
	return NewGenerator(nil).Generate(item)
}

type stageBuilder struct {
	products ProductLookup
	stage    domain.Stage
}

func (b *stageBuilder) subtitle(format string, args ...any) {
	b.stage.Subtitle = fmt.Sprintf(format, args...)
}

func (b *stageBuilder) para(format string, args ...any) {
	b.stage.Paragraphs = append(b.stage.Paragraphs, fmt.Sprintf(format, args...))
}

func (b *stageBuilder) tip(text string) {
	b.stage.Tips = append(b.stage.Tips, domain.Tip{Text: text})
}

func (b *stageBuilder) varietyTip(format string, args ...any) {
	b.stage.Tips = append(b.stage.Tips, domain.Tip{Text: fmt.Sprintf(format, args...), IsVarietySpecific: true})
}

func (b *stageBuilder) product(category, reason string) {
	b.stage.Products = append(b.stage.Products, b.products.Product(category, reason))
}
