package guide

func seedStarting(t traits, b *stageBuilder) {
	b.subtitle("Start indoors %s weeks before last frost", t.weeksIndoor)

	b.para("Peppers need a long, warm start indoors. Plan to sow %s seeds %s weeks before your last expected frost date. "+
		"In most climates that means sowing between late January and mid-March, depending on your region.", t.name, t.weeksIndoor)
	b.para("Sow seeds 1/4 inch (6 mm) deep in a quality seed starting mix. Peppers demand warm soil to germinate, " +
		"80-85°F (27-29°C) is ideal, so a seedling heat mat is essential rather than optional. " +
		"At the right temperature, expect sprouts in 7-14 days.")
	if t.superhot {
		b.para("Superhot varieties like %s are notoriously slow to germinate. Nothing may happen for 2-4 weeks, "+
			"and some seeds take up to 6 weeks to sprout. Keep the heat mat running and the soil evenly moist; patience pays off here.", t.name)
	}
	b.para("Once seedlings emerge they need 14-16 hours of strong light a day. A south-facing window rarely provides enough " +
		"and seedlings turn tall and leggy. A grow light 2-4 inches above the seedlings produces stockier transplants " +
		"that perform far better in the garden.")

	b.tip("Plant seeds 1/4 inch deep in moist seed-starting mix.")
	b.tip("Use a heat mat: peppers need 80-85°F soil for germination.")
	b.tip("Provide 14-16 hours of light per day once seedlings emerge.")
	if t.beginner {
		b.varietyTip("%s is beginner-friendly and germinates more reliably than many peppers.", t.name)
	}
	if t.superhot {
		b.varietyTip("%s can take 2-6 weeks to germinate, which is normal for superhots.", t.name)
	}
	if t.longSeason {
		b.varietyTip("Start early: %s needs %s days to mature.", t.name, t.maturityRange)
	}

	b.product("seedStartingTray", "Start "+t.name+" seeds in individual cells for easy transplanting.")
	b.product("seedStartingMix", "Lightweight, sterile mix designed for seed germination.")
	b.product("heatMat", "Essential for peppers. Holds the 80-85°F soil temperature they need.")
	b.product("growLight", "Stronger seedlings and less legginess than windowsill growing.")
	if t.indoor || t.superhot {
		b.product("growLightPremium", "Upgrade to a full-size panel for growing peppers indoors or starting many varieties at once.")
	}
}

func growingEnvironment(t traits, b *stageBuilder) {
	switch {
	case t.containerFriendly:
		b.subtitle("Container growing in %s+ pots", t.container)
	case t.greenhouse:
		b.subtitle("Greenhouse or raised bed growing")
	default:
		b.subtitle("Raised beds or in-ground planting")
	}

	if t.containerFriendly {
		b.para("%s is well suited to container growing. Use a container of at least %s; smaller pots dry out quickly "+
			"and restrict root growth, which directly cuts your harvest. Fabric grow bags work well because they air-prune roots.", t.name, t.container)
		b.para("Fill the container with a high-quality potting mix, not garden soil, which compacts and drains poorly in pots. " +
			"Self-watering containers suit peppers especially well since they like soil that is consistently moist but never waterlogged.")
		b.para("Place the container where it gets at least 6-8 hours of direct sun daily. Peppers love sun and heat, so the warmest, " +
			"sunniest spot you have is the right one. Containers can follow the sun or come indoors if frost threatens.")
	} else {
		b.para("%s does best in the ground or in raised beds where its roots can spread freely. Space plants %s apart "+
			"for good air circulation, which helps prevent fungal disease.", t.name, t.spacing)
		b.para("Work 2-3 inches of compost into the soil before planting. Peppers thrive in well-draining soil with a pH between 6.0 and 6.8. " +
			"If you are unsure about your soil, a simple test kit saves a lot of trouble; peppers are sensitive to nutrient imbalances.")
		b.para("Choose a spot with at least 6-8 hours of direct sun and good air drainage, away from low-lying pockets where cold air settles. " +
			"Raised beds warm up faster in spring and give peppers the heat they crave.")
	}
	if t.greenhouse {
		b.para("%s benefits significantly from greenhouse or protected growing. A greenhouse extends the season, holds higher temperatures "+
			"and shelters plants from wind and heavy rain. Even a simple walk-in greenhouse or cold frame makes a big difference in cooler climates.", t.name)
	}
	if t.indoor {
		b.para("%s can also be grown indoors year-round with enough light: a strong full-spectrum grow light for at least 14 hours a day "+
			"plus good air circulation. Many growers keep indoor plants producing through winter.", t.name)
	}

	b.tip("Peppers need at least 6-8 hours of direct sunlight daily.")
	if t.containerFriendly {
		b.varietyTip("%s needs at least a %s container.", t.name, t.container)
		b.tip("Use potting mix, not garden soil, in containers.")
	} else {
		b.tip("Amend soil with compost before planting for best results.")
		b.varietyTip("Space %s plants %s apart.", t.name, t.spacing)
	}
	if t.heatHardy {
		b.varietyTip("%s handles extreme heat well and thrives in hot, sunny spots.", t.name)
	}

	if t.containerFriendly {
		b.product("container5Gal", t.name+"'s size is well suited to container growing.")
		b.product("selfWateringPot", "Self-watering planters keep "+t.name+" consistently moist and cut down on watering chores.")
		b.product("pottingMix", "High-quality potting mix with good drainage for containers.")
	} else {
		b.product("raisedBedKit", "Give "+t.name+"'s roots room to spread in a deep raised bed.")
		b.product("gardenSoil", "Rich soil mix for raised beds and garden planting.")
		b.product("soilTestKit", "Test pH and nutrients before planting; peppers do best at pH 6.0-6.8.")
	}
	if t.greenhouse {
		b.product("greenHouseKit", "Extend "+t.name+"'s season and keep the warm temperatures it craves.")
	}
	if t.indoor && !t.greenhouse {
		b.product("growLightPremium", "Grow "+t.name+" indoors year-round with a full-spectrum light panel.")
	}
	b.product("mulch", "2-3 inches of mulch retains moisture and keeps roots warm.")
}

func transplanting(t traits, b *stageBuilder) {
	b.subtitle("Harden off, plant at soil level, and protect from cold")

	b.para("Move %s outdoors once all danger of frost has passed and nights stay above 55°F (13°C). Peppers are more cold-sensitive "+
		"than tomatoes: cold soil and cool nights stall growth and can stunt plants for good. In most regions this is 2-4 weeks after the last frost date.", t.name)
	b.para("Harden seedlings off over 7-10 days before transplanting. Start with 1-2 hours in a sheltered, shady spot on day one, " +
		"then gradually increase sun exposure and time outdoors. This prevents transplant shock, which can set peppers back by weeks.")
	if t.hotClimate {
		b.para("%s is adapted to hot climates and wants warm soil, at least 65°F (18°C) and ideally 70°F or more. Black plastic mulch "+
			"or landscape fabric can pre-warm the bed. Don't rush these plants out; a week spent waiting for warm soil pays off in faster growth.", t.name)
	}
	b.para("Unlike tomatoes, peppers should NOT have their stems buried deep. Plant at the depth they grew in their pots, in a hole just big " +
		"enough for the root ball, firm the soil gently and water deeply. A handful of compost or transplant fertilizer in the hole gives roots a boost.")

	b.tip("Harden off seedlings for 7-10 days before transplanting.")
	b.tip("Wait until nights are consistently above 55°F; peppers hate cold.")
	b.tip("Plant at the same depth as the pot. Do NOT bury stems like tomatoes.")
	b.varietyTip("Space %s plants %s apart.", t.name, t.spacing)
	if t.coldSensitive {
		b.varietyTip("%s has very low cold tolerance; protect it from any temperature below 50°F.", t.name)
	}
	if t.coldHardy {
		b.varietyTip("%s tolerates cooler conditions better than most peppers.", t.name)
	}

	b.product("gardenGloves", "Protect your hands while transplanting.")
	b.product("transplantFertilizer", "High-phosphorus fertilizer encourages strong root establishment.")
	if t.coldTender {
		b.product("rowCovers", "Keep "+t.name+" protected during cool nights in the first weeks after transplanting.")
	}
}
