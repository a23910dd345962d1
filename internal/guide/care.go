package guide

func supportTraining(t traits, b *stageBuilder) {
	switch {
	case t.tall:
		b.subtitle("Tall plants need staking at transplanting time")
		b.para("%s has a tall growth habit, reaching %d-%d cm (%d-%d inches). As fruit develops, heavy branches bend and can snap "+
			"without support. Set stakes at transplanting time, not after the plant is loaded with peppers.",
			t.name, t.heightCm[0], t.heightCm[1], t.heightIn[0], t.heightIn[1])
		b.para("Use 3-4 foot bamboo stakes or tomato cages. Tie the main stem loosely to the stake with soft ties as the plant grows, " +
			"and support the main branching points where heavy fruit clusters form.")
	case t.compact:
		b.subtitle("Compact plants need minimal support")
		b.para("%s has a compact growth habit (%d-%d cm), so heavy staking is rarely necessary. Even compact plants can get "+
			"top-heavy when loaded with fruit, though, and a single short stake or small cage keeps them from tipping.",
			t.name, t.heightCm[0], t.heightCm[1])
	default:
		b.subtitle("Bushy plants benefit from light staking")
		b.para("%s grows in a bushy habit, reaching %d-%d cm (%d-%d inches). Bushy peppers mostly hold themselves up but benefit "+
			"from light staking once fruit weighs the branches down. A ring of twine around the plant, tied to a central stake, keeps it tidy and upright.",
			t.name, t.heightCm[0], t.heightCm[1], t.heightIn[0], t.heightIn[1])
	}
	b.para("Most pepper plants benefit from pinching off the first few flower buds, before transplanting or within two weeks after. " +
		"This redirects energy into roots and branches, which means more fruit later. Once the plant is established and growing " +
		"vigorously, let it flower and fruit freely.")
	if t.highYield {
		b.para("%s is a heavy producer. The weight of a full crop can bend or break unsupported branches, so staking and tying "+
			"early pays off when every branch is loaded.", t.name)
	}

	b.tip("Pinch early flower buds to encourage stronger plants and higher yields.")
	switch {
	case t.tall:
		b.varietyTip("%s's tall habit needs 3-4 ft stakes set at transplanting time.", t.name)
		b.tip("Tie stems loosely; tight ties cut into growing stems.")
	case t.compact:
		b.varietyTip("%s's compact size rarely needs more than a short stake.", t.name)
	default:
		b.tip("Use soft ties or twine loops to support laden branches.")
	}

	if t.tall {
		b.product("plantStakes", "Support "+t.name+"'s tall growth with sturdy bamboo stakes.")
		b.product("pruningShears", "Clean cuts when removing suckers or damaged branches.")
		b.product("gardenTwine", "Tie branches gently to stakes as the plant grows.")
	} else {
		b.product("gardenTwine", "Loop around bushy plants to keep branches upright under fruit weight.")
	}
}

func feedingCare(t traits, b *stageBuilder) {
	b.subtitle("Watering, fertilizing, and ongoing maintenance")

	b.para("Peppers are moderate feeders that respond well to balanced nutrition. Use a transplant fertilizer at planting, then switch "+
		"to a formula higher in phosphorus and potassium (such as 5-10-10) once %s begins flowering. Too much nitrogen during "+
		"fruiting gives lots of leaves and fewer peppers.", t.name)
	b.para("Water deeply and consistently, about 1-2 inches per week. Water at the base in the morning rather than overhead to keep " +
		"foliage dry and reduce disease. Drought followed by heavy watering causes blossom drop and can lead to blossom end rot, " +
		"especially on larger-fruited varieties.")
	if t.thickWalls {
		b.para("Thick-walled varieties like %s are especially prone to blossom end rot when watering is uneven. It shows as a dark, "+
			"sunken patch on the bottom of the fruit. Keep moisture even and consider a calcium foliar spray during peak fruiting if symptoms appear.", t.name)
	}
	if t.superhot {
		b.para("Superhot peppers like %s have a long season and benefit from feeding every 2-3 weeks through summer. They also build "+
			"more capsaicin under mild stress, so some growers water slightly less, never drastically, once fruit is setting.", t.name)
	}
	if t.containerFriendly {
		b.para("Container-grown peppers need more frequent feeding than garden plants because nutrients wash out with every watering. " +
			"Feed every 1-2 weeks with a diluted liquid fertilizer or use a slow-release granular at planting. Water until it drains from the bottom.")
	}

	b.tip("Water 1-2 inches per week at the base, not overhead.")
	b.tip("Switch to low-nitrogen, high-potassium fertilizer once flowering begins.")
	b.tip("Mulch 2-3 inches deep to retain moisture and keep roots warm.")
	if t.heatHardy {
		b.varietyTip("%s handles heat well but still needs consistent watering during heat waves.", t.name)
	}
	if t.thickWalls {
		b.varietyTip("%s's thick walls make it susceptible to blossom end rot; keep watering consistent.", t.name)
	}

	b.product("pepperFertilizer", "Balanced organic formula tailored for "+t.name+"'s feeding needs.")
	if t.containerFriendly {
		b.product("soakerHose", "Delivers water directly to roots in containers, reducing disease and saving time.")
	} else {
		b.product("dripIrrigationKit", "Automated drip irrigation keeps "+t.name+" consistently watered, the biggest factor in preventing blossom drop and end rot.")
	}
	if t.thickWalls {
		b.product("calciumSupplement", "Prevents blossom end rot on "+t.name+"'s thick-walled fruit.")
	}
}

func pestDisease(t traits, b *stageBuilder) {
	b.subtitle("Prevention through good cultural practices")

	b.para("The most common pepper pests are aphids clustering on new growth, whiteflies on the undersides of leaves, and hornworms. " +
		"Check plants every few days; problems caught early are far easier to manage. A strong spray of water knocks aphids off " +
		"and insecticidal soap handles most soft-bodied pests.")
	b.para("Watch for bacterial leaf spot (dark, water-soaked spots), powdery mildew (a white coating) and phytophthora " +
		"(wilting despite wet soil). Remove affected leaves immediately and avoid overhead watering, which creates the conditions these diseases love.")
	if t.diseaseNotes != "" {
		b.para("Growing note for %s: %s", t.name, t.diseaseNotes)
	}
	b.para("Prevention is easier than treatment. Water at the base, keep foliage dry and space plants for airflow. Rotate the pepper " +
		"patch each year, avoiding spots that held peppers, tomatoes or eggplant the year before, and clear plant debris at season's end.")

	b.tip("Inspect plants every few days; early detection is key.")
	b.tip("Rotate pepper planting location each year and don't follow tomatoes or eggplant.")
	b.tip("Remove lower leaves touching soil to prevent splash-borne disease.")
	if t.advanced {
		b.varietyTip("%s needs more attentive disease monitoring than beginner varieties.", t.name)
	}
	if t.superhot {
		b.tip("Wear gloves when handling superhot peppers; capsaicin burns skin and eyes.")
	}

	b.product("neemOil", "All-purpose organic spray for aphids, whiteflies, and fungal issues.")
	b.product("insecticidalSoap", "Safe, effective spray for soft-bodied insects on pepper plants.")
	if t.coldSensitive {
		b.product("rowCovers", "Physical barrier against pests and cold that extends the season too.")
	}
}
