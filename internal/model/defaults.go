package model

// Bundled default content. Used two ways: seeded into the database on first
// run, and rendered directly by the storefront when the store cannot be
// reached, so the marketing site never shows an empty page.

// DefaultProducts returns the bundled catalog: the skin-care line followed
// by the color line.
func DefaultProducts() []Product {
	return []Product{
		{Name: "Toner", Tagline: "Reset your skin.", Category: CategorySkin, Img: "./assets/images/skin-1.png", Texture: "./assets/images/texture-1.svg"},
		{Name: "Emulsion", Tagline: "Balance is key.", Category: CategorySkin, Img: "./assets/images/skin-2.png", Texture: "./assets/images/texture-2.svg"},
		{Name: "Serum Alpha", Tagline: "Deep hydration.", Category: CategorySkin, Img: "./assets/images/skin-3.png", Texture: "./assets/images/texture-3.svg"},
		{Name: "Serum Beta", Tagline: "Brighten up.", Category: CategorySkin, Img: "./assets/images/skin-4.png", Texture: "./assets/images/texture-4.svg"},
		{Name: "Serum Gamma", Tagline: "Anti-aging.", Category: CategorySkin, Img: "./assets/images/skin-5.png", Texture: "./assets/images/texture-5.svg"},
		{Name: "Cream Light", Tagline: "Weightless care.", Category: CategorySkin, Img: "./assets/images/skin-6.png", Texture: "./assets/images/texture-6.svg"},
		{Name: "Cream Rich", Tagline: "Intense nutrition.", Category: CategorySkin, Img: "./assets/images/skin-7.png", Texture: "./assets/images/texture-7.svg"},
		{Name: "Cleanser", Tagline: "Pure start.", Category: CategorySkin, Img: "./assets/images/skin-8.png", Texture: "./assets/images/texture-8.svg"},
		{Name: "Sun Guard", Tagline: "Invisible shield.", Category: CategorySkin, Img: "./assets/images/skin-9.png", Texture: "./assets/images/texture-9.svg"},
		{Name: "Heart Mask", Tagline: "Instant glow.", Category: CategorySkin, Img: "./assets/images/skin-10.png", Texture: "./assets/images/texture-10.svg"},
		{Name: "Signature Red", Tagline: "Iconic attitude.", Category: CategoryColor, ColorCode: "#E60012", Img: "./assets/images/color-1.svg"},
		{Name: "Playful Pink", Tagline: "Soft touch.", Category: CategoryColor, ColorCode: "#FF748C", Img: "./assets/images/color-2.svg"},
		{Name: "Orange Heart", Tagline: "Vibrant energy.", Category: CategoryColor, ColorCode: "#FF4D00", Img: "./assets/images/color-3.svg"},
		{Name: "Misty Rose", Tagline: "Elegant mood.", Category: CategoryColor, ColorCode: "#C88D8D", Img: "./assets/images/color-4.svg"},
		{Name: "Deep Burgundy", Tagline: "Night out.", Category: CategoryColor, ColorCode: "#800000", Img: "./assets/images/color-5.svg"},
	}
}

// DefaultShowcase returns the bundled slides. The lead slide carries the
// statement layout explicitly.
func DefaultShowcase() []ShowcaseSlide {
	return []ShowcaseSlide{
		{
			Title:       "PLAY BEAUTY",
			Subtitle:    "PREMIUM LINE-UP",
			Layout:      LayoutStatement,
			Description: "An experimental, anti-fashion artistic collaboration. Rooted in emotion and deconstructive purity.",
			Features:    "Iconic Identity|Signature Heart Logo Branding\nNatural Purity|Essential Skin Ingredients",
			ImageURL:    "./assets/images/showcase-1.jpg",
			BgColor:     "#F3F3F3",
			OrderIndex:  1,
		},
		{
			Title:      "Iconic Identity",
			Subtitle:   "Signature Heart-Logo Branding",
			Layout:     LayoutStandard,
			ImageURL:   "./assets/images/showcase-2.jpg",
			BgColor:    "#F5F5F5",
			OrderIndex: 2,
		},
		{
			Title:      "Natural Purity",
			Subtitle:   "Essential Skin Ingredients",
			Layout:     LayoutStandard,
			ImageURL:   "./assets/images/showcase-3.jpg",
			BgColor:    "#FFFFFF",
			OrderIndex: 3,
		},
	}
}
