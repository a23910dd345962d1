package domain

// NoPreference is the sentinel a user picks when an enum criterion should be
// ignored. The empty string is treated the same way.
const NoPreference = "No preference"

type HeatCategory string

const (
	HeatNone     HeatCategory = "none"
	HeatMild     HeatCategory = "mild"
	HeatMedium   HeatCategory = "medium"
	HeatHot      HeatCategory = "hot"
	HeatVeryHot  HeatCategory = "very_hot"
	HeatExtreme  HeatCategory = "extreme"
	HeatAnyLevel HeatCategory = NoPreference
)

// HeatCategories lists heat levels from mildest to hottest.
var HeatCategories = []HeatCategory{HeatNone, HeatMild, HeatMedium, HeatHot, HeatVeryHot, HeatExtreme}

func (h HeatCategory) Valid() bool { return member(HeatCategories, h) }

func (h HeatCategory) IsSet() bool { return isSet(string(h)) }

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyAny          Difficulty = NoPreference
)

// Difficulties lists difficulty tiers from easiest to hardest.
var Difficulties = []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

func (d Difficulty) Valid() bool { return member(Difficulties, d) }

func (d Difficulty) IsSet() bool { return isSet(string(d)) }

type PepperType string

const (
	TypeBell       PepperType = "bell"
	TypeCayenne    PepperType = "cayenne_type"
	TypeHabanero   PepperType = "habanero_type"
	TypeJalapeno   PepperType = "jalapeno_type"
	TypeThai       PepperType = "thai_type"
	TypeOrnamental PepperType = "ornamental"
	TypeOther      PepperType = "other"
	TypeAny        PepperType = NoPreference
)

var PepperTypes = []PepperType{TypeBell, TypeCayenne, TypeHabanero, TypeJalapeno, TypeThai, TypeOrnamental, TypeOther}

func (t PepperType) Valid() bool { return member(PepperTypes, t) }

func (t PepperType) IsSet() bool { return isSet(string(t)) }

type GrowthHabit string

const (
	HabitBushy   GrowthHabit = "bushy"
	HabitTall    GrowthHabit = "tall"
	HabitCompact GrowthHabit = "compact"
	HabitAny     GrowthHabit = NoPreference
)

var GrowthHabits = []GrowthHabit{HabitBushy, HabitTall, HabitCompact}

func (g GrowthHabit) Valid() bool { return member(GrowthHabits, g) }

func (g GrowthHabit) IsSet() bool { return isSet(string(g)) }

type Climate string

const (
	ClimateCool      Climate = "cool"
	ClimateTemperate Climate = "temperate"
	ClimateHot       Climate = "hot"
	ClimateAny       Climate = NoPreference
)

var Climates = []Climate{ClimateCool, ClimateTemperate, ClimateHot}

func (c Climate) Valid() bool { return member(Climates, c) }

func (c Climate) IsSet() bool { return isSet(string(c)) }

type WallThickness string

const (
	WallThin   WallThickness = "thin"
	WallMedium WallThickness = "medium"
	WallThick  WallThickness = "thick"
)

var WallThicknesses = []WallThickness{WallThin, WallMedium, WallThick}

func (w WallThickness) Valid() bool { return member(WallThicknesses, w) }

// CuisineWildcard in an item's affinity list matches every cuisine preference.
const CuisineWildcard = "global"

// Use-case tags referenced by scoring reasons and guide rules.
const (
	UseHotSauce    = "hot_sauce"
	UsePickling    = "pickling"
	UseSalsa       = "salsa"
	UseFermenting  = "fermenting"
	UseStuffing    = "stuffing"
	UseFreshEating = "fresh_eating"
	UseDrying      = "drying"
	UseRoasting    = "roasting"
	UseCooking     = "cooking"
	UsePowdered    = "powdered"
)

type Region string

const (
	RegionUS Region = "US"
	RegionEU Region = "EU"
)

func (r Region) Valid() bool { return r == RegionUS || r == RegionEU }

func member[T comparable](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func isSet(v string) bool {
	return v != "" && v != NoPreference
}
