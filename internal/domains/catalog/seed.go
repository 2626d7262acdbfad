package catalog

// Static seed data. The site must stay bookable even when the database is
// empty or unreachable, so every collection ships with a baseline that a
// refresh can later replace.

func SeedServices() []Service {
	return []Service{
		{
			ID:          "birthday",
			Slug:        "birthday",
			Title:       "Birthday Celebrations",
			Description: "Magical birthday setups for all ages with balloons, themes, and more.",
			Image:       "https://picsum.photos/id/104/800/600",
			PriceStart:  1999,
			Features:    []string{"Balloon Arches", "Themed Backdrops", "Cake Table Decor"},
		},
		{
			ID:          "wedding",
			Slug:        "wedding",
			Title:       "Wedding Decorations",
			Description: "Elegant wedding stages, mandaps, and venue styling for your big day.",
			Image:       "https://picsum.photos/id/250/800/600",
			PriceStart:  15000,
			Features:    []string{"Floral Mandap", "Entrance Gate", "Stage Lighting"},
		},
		{
			ID:          "anniversary",
			Slug:        "anniversary",
			Title:       "Anniversary Surprises",
			Description: "Romantic setups to celebrate your years of togetherness.",
			Image:       "https://picsum.photos/id/360/800/600",
			PriceStart:  2500,
			Features:    []string{"Candlelight Dinner", "Room Decor", "Rose Petal Pathway"},
		},
		{
			ID:          "baby-shower",
			Slug:        "baby-shower",
			Title:       "Baby Shower",
			Description: "Welcome the little one with adorable and cute decorations.",
			Image:       "https://picsum.photos/id/998/800/600",
			PriceStart:  3500,
			Features:    []string{"Gender Reveal Props", "Soft Pastels", "Photo Booth"},
		},
		{
			ID:          "farewell",
			Slug:        "farewell",
			Title:       "Farewell Parties",
			Description: "Give a memorable send-off with our themed party decorations.",
			Image:       "https://picsum.photos/id/435/800/600",
			PriceStart:  2000,
			Features:    []string{"Signature Wall", "Stage Setup", "Memory Lane"},
		},
		{
			ID:          "inauguration",
			Slug:        "inauguration",
			Title:       "Shop Inaugurations",
			Description: "Grand opening decorations to kickstart your business with style.",
			Image:       "https://picsum.photos/id/106/800/600",
			PriceStart:  5000,
			Features:    []string{"Ribbon Cutting Area", "Flower Garlands", "Entrance Carpet"},
		},
	}
}

func SeedPackages() []Package {
	return []Package{
		{
			ID:          "bday-basic",
			ServiceSlug: "birthday",
			Name:        "Basic Balloon Bliss",
			Price:       1999,
			Image:       "https://picsum.photos/id/158/400/300",
			Includes:    []string{"200 Balloons", "Happy Birthday Foil", "Ribbons"},
		},
		{
			ID:          "bday-premium",
			ServiceSlug: "birthday",
			Name:        "Premium Theme Setup",
			Price:       4999,
			Image:       "https://picsum.photos/id/327/400/300",
			Includes:    []string{"Arch Setup", "Backdrop", "LED Lights", "Name Cutout"},
		},
		{
			ID:          "wed-royal",
			ServiceSlug: "wedding",
			Name:        "Royal Floral Stage",
			Price:       25000,
			Image:       "https://picsum.photos/id/514/400/300",
			Includes:    []string{"Fresh Flowers", "Sofa Set", "Stage Carpet", "Backdrop Drapes"},
		},
	}
}

func SeedTestimonials() []Testimonial {
	return []Testimonial{
		{
			ID:      "t1",
			Name:    "Priya Singh",
			Rating:  5,
			Comment: "Absolutely stunning decoration for my daughter's birthday. The team was professional and on time!",
			Image:   "https://picsum.photos/id/64/100/100",
		},
		{
			ID:      "t2",
			Name:    "Rahul Verma",
			Rating:  5,
			Comment: "Booked them for our wedding anniversary. The room decor exceeded our expectations.",
			Image:   "https://picsum.photos/id/91/100/100",
		},
		{
			ID:      "t3",
			Name:    "Amit Gupta",
			Rating:  4,
			Comment: "Great value for money. The shop inauguration setup looked grand and premium.",
			Image:   "https://picsum.photos/id/177/100/100",
		},
	}
}

// SeedProducts projects the static packages into the product shape so the
// storefront renders one uniform collection regardless of data source.
func SeedProducts(defaultCurrency, defaultDelivery string) []Product {
	packages := SeedPackages()
	products := make([]Product, len(packages))

	for i, pkg := range packages {
		products[i] = Product{
			ID:               pkg.ID,
			Slug:             pkg.ID,
			ServiceSlug:      pkg.ServiceSlug,
			Name:             pkg.Name,
			HeroImage:        pkg.Image,
			Images:           []string{pkg.Image},
			Price:            pkg.Price,
			Tags:             pkg.Includes,
			Rating:           5,
			Currency:         defaultCurrency,
			Availability:     "available",
			DeliveryEstimate: defaultDelivery,
		}
	}

	return products
}
