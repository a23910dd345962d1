package guide

func harvesting(t traits, b *stageBuilder) {
	b.subtitle("First fruit at ~%d days, color stages: %s", t.avgMaturity, t.colorPath)

	b.para("Expect the first ripe %s peppers roughly %s days after transplanting. Most peppers can be picked at any color stage: "+
		"green peppers are simply unripe, and many varieties are perfectly usable, and milder, when picked green.", t.name, t.maturityRange)
	b.para("For full flavor and heat, wait until %s turns completely %s. This variety ripens %s. Fully ripe peppers carry more sugar "+
		"and a more developed flavor. Cut fruit off with clean shears or a knife; pulling can damage branches.", t.name, t.finalColor, t.colorPath)
	if t.superhot {
		b.para("Handling warning: %s ranges from %s to %s SHU. Always wear gloves when harvesting and processing superhot peppers, "+
			"keep your hands away from your face and wash them thoroughly even after removing the gloves. Processing outdoors avoids capsaicin fumes.",
			t.name, t.shuMin, t.shuMax)
	}
	if t.dries {
		method := "A food dehydrator gives more consistent results than air-drying, especially for thicker-walled peppers."
		if t.thinWalls {
			method = "Its thin walls dry quickly, so you can air-dry them strung on a thread in a warm, dry spot."
		}
		b.para("%s is excellent for drying. %s Dried peppers can be ground into powder or flakes, or stored whole for months.", t.name, method)
	}
	if t.sauces {
		b.para("%s is a great choice for hot sauce and fermented pepper products. To ferment, chop the peppers, mix with 3-5%% salt by weight "+
			"and pack into a jar. Leave at room temperature for 1-4 weeks, then blend and strain for a naturally tangy, complex sauce.", t.name)
	}

	b.tip("Use clean shears to harvest; pulling can damage the plant.")
	b.varietyTip("Wait for full %s color for maximum flavor and heat.", t.finalColor)
	b.tip("Regular picking encourages the plant to produce more peppers.")
	if t.highYield {
		b.varietyTip("%s is a heavy producer; plan for preserving, sharing, or selling the surplus.", t.name)
	}
	if t.superhot {
		b.tip("Always wear gloves and avoid touching your face when handling superhot peppers.")
	}

	b.product("harvestBasket", "Gentle on fruit and better than bags for preventing bruising.")
	if t.dehydrate {
		b.product("dehydrator", "Dry "+t.name+" into flakes or powder; a dehydrator handles any wall thickness consistently.")
	}
	b.product("compostBin", "Turn spent pepper plants and kitchen scraps into next season's soil amendment.")
}
