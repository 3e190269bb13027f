package core

// Site holds the static constants shared by every generated page.
type Site struct {
	BaseURL      string
	ShopURL      string
	ShopHost     string
	BrandURL     string
	Email        string
	Phone        string
	PhoneDisplay string
	MetrikaID    string
}

var DefaultSite = Site{
	BaseURL:      "https://api.pepperoni.tatar",
	ShopURL:      "https://pepperoni.tatar",
	ShopHost:     "pepperoni.tatar",
	BrandURL:     "https://kazandelikates.tatar",
	Email:        "info@kazandelikates.tatar",
	Phone:        "+79872170202",
	PhoneDisplay: "+7 987 217-02-02",
	MetrikaID:    "107064141",
}

func (s Site) ProductURL(loc Locale, slug string) string {
	return s.BaseURL + loc.ProductPath(slug)
}
