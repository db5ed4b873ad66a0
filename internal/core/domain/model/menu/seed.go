package menu

// seedCategories returns the canonical category set. Fresh slices are built
// on every call so a reset can never be polluted by earlier mutations.
func seedCategories() []Category {
	return []Category{
		{Slug: "chicken-chips", Name: "Chicken & Chips"},
		{Slug: "turkey-chips", Name: "Turkey & Chips"},
		{Slug: "sides", Name: "Sides"},
		{Slug: "drinks", Name: "Drinks"},
		{Slug: "sauces-extras", Name: "Sauces/Extras"},
	}
}

// seedItems returns the canonical menu dataset shipped with the system.
func seedItems() []Item {
	return []Item{
		{
			ID:           "chicken-1",
			Name:         "Chicken & Chips Box",
			Description:  "Crispy chicken with golden chips. Classic Yumyum favorite.",
			PriceNaira:   4500,
			CategorySlug: "chicken-chips",
			Image:        "/images/chicken-1.jpg",
			InStock:      true,
			PrepMinutes:  20,
			Badge:        BadgePopular,
		},
		{
			ID:           "chicken-2",
			Name:         "Chicken & Chips (Large)",
			Description:  "Bigger portion. More chicken, more chips.",
			PriceNaira:   6000,
			CategorySlug: "chicken-chips",
			Image:        "/images/chicken-2.jpg",
			InStock:      true,
			PrepMinutes:  25,
			Badge:        BadgeValue,
		},
		{
			ID:           "chicken-3",
			Name:         "BBQ Chicken & Chips",
			Description:  "Sticky BBQ chicken with crunchy chips.",
			PriceNaira:   5200,
			CategorySlug: "chicken-chips",
			Image:        "/images/chicken-3.jpg",
			InStock:      true,
			PrepMinutes:  25,
		},
		{
			ID:           "chicken-4",
			Name:         "Spicy Chicken & Chips",
			Description:  "Hot and tasty chicken with chips.",
			PriceNaira:   5300,
			CategorySlug: "chicken-chips",
			Image:        "/images/chicken-4.jpg",
			InStock:      true,
			PrepMinutes:  25,
			Badge:        BadgePopular,
			Spicy:        true,
		},
		{
			ID:           "chicken-5",
			Name:         "Chicken Strips & Chips",
			Description:  "Tender strips with chips and dip.",
			PriceNaira:   4800,
			CategorySlug: "chicken-chips",
			Image:        "/images/chicken-5.jpg",
			InStock:      true,
			PrepMinutes:  20,
			Badge:        BadgeNew,
		},
		{
			ID:           "chicken-6",
			Name:         "Chicken Wings & Chips",
			Description:  "Juicy wings + chips. Perfect for cravings.",
			PriceNaira:   5500,
			CategorySlug: "chicken-chips",
			Image:        "/images/chicken-6.jpg",
			InStock:      true,
			PrepMinutes:  25,
		},
		{
			ID:           "turkey-1",
			Name:         "Turkey & Chips Combo",
			Description:  "Smoky turkey with crispy chips. Big flavor, big bite.",
			PriceNaira:   5200,
			CategorySlug: "turkey-chips",
			Image:        "/images/turkey-1.jpg",
			InStock:      true,
			PrepMinutes:  25,
			Badge:        BadgePopular,
		},
		{
			ID:           "turkey-2",
			Name:         "Spicy Turkey & Chips",
			Description:  "Spicy turkey + crunchy chips.",
			PriceNaira:   5600,
			CategorySlug: "turkey-chips",
			Image:        "/images/turkey-2.jpg",
			InStock:      true,
			PrepMinutes:  25,
			Spicy:        true,
		},
		{
			ID:           "turkey-3",
			Name:         "BBQ Turkey & Chips",
			Description:  "Saucy BBQ turkey paired with chips.",
			PriceNaira:   5700,
			CategorySlug: "turkey-chips",
			Image:        "/images/turkey-3.jpg",
			InStock:      true,
			PrepMinutes:  25,
			Badge:        BadgeNew,
		},
		{
			ID:           "turkey-4",
			Name:         "Turkey Bites & Chips",
			Description:  "Easy-to-eat turkey bites with chips and sauce.",
			PriceNaira:   5400,
			CategorySlug: "turkey-chips",
			Image:        "/images/turkey-4.jpg",
			InStock:      true,
			PrepMinutes:  22,
		},
		{
			ID:           "turkey-5",
			Name:         "Turkey Wings & Chips",
			Description:  "Turkey wings + chips with a rich dip.",
			PriceNaira:   6200,
			CategorySlug: "turkey-chips",
			Image:        "/images/turkey-5.jpg",
			InStock:      true,
			PrepMinutes:  30,
			Badge:        BadgeValue,
		},
		{
			ID:           "side-1",
			Name:         "Coleslaw",
			Description:  "Creamy, crunchy, and fresh.",
			PriceNaira:   900,
			CategorySlug: "sides",
			Image:        "/images/coleslaw.jpg",
			InStock:      true,
			PrepMinutes:  5,
		},
		{
			ID:           "side-2",
			Name:         "Plantain",
			Description:  "Sweet fried plantain.",
			PriceNaira:   1300,
			CategorySlug: "sides",
			Image:        "/images/plantain.jpg",
			InStock:      true,
			PrepMinutes:  10,
			Badge:        BadgePopular,
		},
		{
			ID:           "side-3",
			Name:         "Extra Chips",
			Description:  "Add more chips to your meal.",
			PriceNaira:   1200,
			CategorySlug: "sides",
			Image:        "/images/extrachips.jpg",
			InStock:      true,
			PrepMinutes:  8,
		},
		{
			ID:           "side-4",
			Name:         "Salad Bowl",
			Description:  "Fresh salad to balance your meal.",
			PriceNaira:   1500,
			CategorySlug: "sides",
			Image:        "/images/salad.jpg",
			InStock:      true,
			PrepMinutes:  8,
		},
		{
			ID:           "drink-1",
			Name:         "Coca-Cola",
			Description:  "Chilled bottle/can (subject to availability).",
			PriceNaira:   800,
			CategorySlug: "drinks",
			Image:        "/images/cocacola.jpg",
			InStock:      true,
			PrepMinutes:  1,
		},
		{
			ID:           "drink-2",
			Name:         "Fanta",
			Description:  "Orange and refreshing.",
			PriceNaira:   800,
			CategorySlug: "drinks",
			Image:        "/images/fanta.jpg",
			InStock:      true,
			PrepMinutes:  1,
		},
		{
			ID:           "drink-3",
			Name:         "Sprite",
			Description:  "Crisp lemon-lime.",
			PriceNaira:   800,
			CategorySlug: "drinks",
			Image:        "/images/sprite.jpg",
			InStock:      true,
			PrepMinutes:  1,
		},
		{
			ID:           "drink-4",
			Name:         "Water",
			Description:  "Cold bottled water.",
			PriceNaira:   500,
			CategorySlug: "drinks",
			Image:        "/images/water.jpg",
			InStock:      true,
			PrepMinutes:  1,
		},
		{
			ID:           "extra-1",
			Name:         "Pepper Sauce",
			Description:  "Hot pepper sauce (small cup).",
			PriceNaira:   300,
			CategorySlug: "sauces-extras",
			Image:        "/images/peppersauce.jpg",
			InStock:      true,
			PrepMinutes:  1,
			Spicy:        true,
		},
		{
			ID:           "extra-2",
			Name:         "BBQ Sauce",
			Description:  "Sweet BBQ sauce (small cup).",
			PriceNaira:   300,
			CategorySlug: "sauces-extras",
			Image:        "/images/bbqsauce.jpg",
			InStock:      true,
			PrepMinutes:  1,
		},
		{
			ID:           "extra-3",
			Name:         "Mayonnaise",
			Description:  "Creamy mayo (small cup).",
			PriceNaira:   300,
			CategorySlug: "sauces-extras",
			Image:        "/images/mayonnaise.jpg",
			InStock:      true,
			PrepMinutes:  1,
		},
		{
			ID:           "extra-4",
			Name:         "Ketchup",
			Description:  "Classic ketchup (small cup).",
			PriceNaira:   300,
			CategorySlug: "sauces-extras",
			Image:        "/images/ketchup.jpg",
			InStock:      true,
			PrepMinutes:  1,
		},
	}
}
