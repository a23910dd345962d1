package guide

import (
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/denisok6893-rgb/ai-pepper-matching/internal/domain"
)

func intPtr(v int) *int { return &v }

func reaper() domain.Item {
	return domain.Item{
		ID:                    7,
		Name:                  "Carolina Reaper",
		Type:                  domain.TypeHabanero,
		HeatSHUMin:            1_400_000,
		HeatSHUMax:            2_200_000,
		HeatCategory:          domain.HeatExtreme,
		BestUses:              []string{domain.UseHotSauce, domain.UsePowdered},
		DaysToMaturityMin:     90,
		DaysToMaturityMax:     120,
		PlantHeightCmMin:      90,
		PlantHeightCmMax:      120,
		GrowthHabit:           domain.HabitTall,
		YieldLevel:            "medium",
		Difficulty:            domain.DifficultyAdvanced,
		ClimateSuitability:    domain.ClimateHot,
		HeatTolerance:         9,
		ColdTolerance:         2,
		ContainerFriendly:     false,
		GreenhouseRecommended: true,
		WallThickness:         domain.WallThin,
		ColorStages:           []string{"green", "orange", "red"},
		DiseaseNotes:          "Prone to phytophthora in wet springs.",
	}
}

func bell() domain.Item {
	return domain.Item{
		ID:                    2,
		Name:                  "California Wonder",
		Type:                  domain.TypeBell,
		HeatCategory:          domain.HeatNone,
		BestUses:              []string{domain.UseStuffing, domain.UseRoasting},
		DaysToMaturityMin:     70,
		DaysToMaturityMax:     75,
		PlantHeightCmMin:      45,
		PlantHeightCmMax:      60,
		GrowthHabit:           domain.HabitCompact,
		YieldLevel:            "high",
		Difficulty:            domain.DifficultyBeginner,
		ClimateSuitability:    domain.ClimateTemperate,
		HeatTolerance:         5,
		ColdTolerance:         5,
		ContainerFriendly:     true,
		MinPotLiters:          intPtr(12),
		IndoorSuitable:        true,
		WallThickness:         domain.WallThick,
		ColorStages:           []string{"green", "red"},
		AvailableFromSeedsNow: true,
	}
}

func TestGenerate_SevenStagesInOrder(t *testing.T) {
	g := Generate(reaper())
	if g.VarietyName != "Carolina Reaper" {
		t.Fatalf("variety=%q", g.VarietyName)
	}
	want := []string{"seed-starting", "growing-environment", "transplanting", "support-training", "feeding-care", "pest-disease", "harvesting"}
	if len(g.Stages) != len(want) {
		t.Fatalf("stages=%d want=%d", len(g.Stages), len(want))
	}
	for i, s := range g.Stages {
		if s.ID != want[i] || s.StageNumber != i+1 {
			t.Fatalf("stage %d: id=%q number=%d", i, s.ID, s.StageNumber)
		}
		if s.Title == "" || s.Subtitle == "" || len(s.Paragraphs) == 0 || len(s.Tips) == 0 || len(s.Products) == 0 {
			t.Fatalf("stage %s is incomplete: %+v", s.ID, s)
		}
	}
	if !reflect.DeepEqual(StageIDs(), want) {
		t.Fatalf("StageIDs=%v", StageIDs())
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, it := range []domain.Item{reaper(), bell()} {
		a, b := Generate(it), Generate(it)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("%s: two generations differ", it.Name)
		}
	}
}

func TestGenerate_ContainerSize(t *testing.T) {
	g := Generate(bell())
	env := g.Stages[1]
	if env.Subtitle != "Container growing in 12 L (4 gallon)+ pots" {
		t.Fatalf("subtitle=%q", env.Subtitle)
	}
	if !hasTip(env, "California Wonder needs at least a 12 L (4 gallon) container.", true) {
		t.Fatalf("missing container tip: %+v", env.Tips)
	}

	noSize := bell()
	noSize.MinPotLiters = nil
	env = Generate(noSize).Stages[1]
	if !strings.Contains(env.Subtitle, DefaultContainer) {
		t.Fatalf("subtitle=%q want default container", env.Subtitle)
	}
}

func TestGenerate_SuperhotBranches(t *testing.T) {
	g := Generate(reaper())

	seed := g.Stages[0]
	if seed.Subtitle != "Start indoors 10-12 weeks before last frost" {
		t.Fatalf("seed subtitle=%q", seed.Subtitle)
	}
	if !hasTip(seed, "Carolina Reaper can take 2-6 weeks to germinate, which is normal for superhots.", true) {
		t.Fatalf("missing superhot tip: %+v", seed.Tips)
	}
	if !hasTip(seed, "Start early: Carolina Reaper needs 90-120 days to mature.", true) {
		t.Fatalf("missing long-season tip: %+v", seed.Tips)
	}
	if !hasProduct(seed, "growLightPremium") {
		t.Fatal("superhot seed stage should offer the premium light")
	}

	support := g.Stages[3]
	if !strings.Contains(support.Paragraphs[0], "90-120 cm (35-47 inches)") {
		t.Fatalf("height conversion: %q", support.Paragraphs[0])
	}
	if !hasProduct(support, "plantStakes") {
		t.Fatal("tall plants need stakes")
	}

	harvest := g.Stages[6]
	if !slices.ContainsFunc(harvest.Paragraphs, func(p string) bool {
		return strings.Contains(p, "1,400,000 to 2,200,000 SHU")
	}) {
		t.Fatalf("missing handling warning: %q", harvest.Paragraphs)
	}
	if !hasProduct(harvest, "dehydrator") {
		t.Fatal("powdered use should recommend a dehydrator")
	}
	if harvest.Subtitle != "First fruit at ~105 days, color stages: green → orange → red" {
		t.Fatalf("harvest subtitle=%q", harvest.Subtitle)
	}

	pests := g.Stages[5]
	if !slices.Contains(pests.Paragraphs, "Growing note for Carolina Reaper: Prone to phytophthora in wet springs.") {
		t.Fatalf("missing disease note: %q", pests.Paragraphs)
	}
	if !hasProduct(pests, "rowCovers") {
		t.Fatal("cold-sensitive variety should get row covers")
	}
}

func TestGenerate_GenericTipsAreNotVarietySpecific(t *testing.T) {
	g := Generate(bell())
	if !hasTip(g.Stages[0], "Provide 14-16 hours of light per day once seedlings emerge.", false) {
		t.Fatal("generic seed tip missing or flagged variety-specific")
	}
	if !hasTip(g.Stages[0], "California Wonder is beginner-friendly and germinates more reliably than many peppers.", true) {
		t.Fatal("beginner tip missing")
	}
	if hasProduct(g.Stages[6], "dehydrator") {
		t.Fatal("bell without drying use should not get a dehydrator")
	}
	if !hasProduct(g.Stages[4], "calciumSupplement") {
		t.Fatal("thick walls should get calcium")
	}
}

func TestGenerate_EmptyColorStagesFallBackToRed(t *testing.T) {
	it := bell()
	it.ColorStages = nil
	h := Generate(it).Stages[6]
	if !hasTip(h, "Wait for full red color for maximum flavor and heat.", true) {
		t.Fatalf("tips=%+v", h.Tips)
	}
}

func TestGenerator_UsesLookup(t *testing.T) {
	c := Catalog{"heatMat": {ID: "mat-1", Name: "Custom Mat", PriceTier: domain.PriceMid}}
	g := NewGenerator(c).Generate(bell())

	var mat, tray domain.ProductRecommendation
	for _, p := range g.Stages[0].Products {
		switch p.Category {
		case "heatMat":
			mat = p
		case "seedStartingTray":
			tray = p
		}
	}
	if mat.Name != "Custom Mat" || mat.Reason == "" {
		t.Fatalf("heat mat=%+v", mat)
	}
	if tray.ID != "seedStartingTray" || tray.Name != "seedStartingTray" {
		t.Fatalf("unknown category fallback=%+v", tray)
	}
}

func hasTip(s domain.Stage, text string, specific bool) bool {
	for _, tip := range s.Tips {
		if tip.Text == text {
			return tip.IsVarietySpecific == specific
		}
	}
	return false
}

func hasProduct(s domain.Stage, category string) bool {
	for _, p := range s.Products {
		if p.Category == category {
			return true
		}
	}
	return false
}
