package core

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

type Labels struct {
	TitleSuffix     string
	Brand           string
	DescriptionTail string
	DescWeight      string
	DescPrice       string
	DescShelfLife   string
	OGDescription   string
	Catalog         string
	Pepperoni       string
	About           string
	Delivery        string
	FAQ             string
	SwitchLanguage  string
	Back            string
	InclVAT         string
	PerItem         string
	InStock         string
	PricePerBox     string
	Pieces          string
	Category        string
	Weight          string
	PriceExclVAT    string
	ShelfLife       string
	Storage         string
	HSCode          string
	Certification   string
	Manufacturer    string
	ExportTitle     string
	Order           string
	OrderDesc       string
	Contact         string
	MailSubject     string
}

// Locale selects the language of a generated page: labels, URL layout,
// price format and weight units.
type Locale struct {
	Tag language.Tag
	// PathPrefix is prepended to every site-relative link ("" or "/en").
	PathPrefix string
	// SwitchPrefix is the PathPrefix of the alternate language.
	SwitchPrefix  string
	Labels        Labels
	Price         PriceFormat
	WeightMarkers []string
	WeightSuffix  string
	Translator    Translator
}

var Russian = Locale{
	Tag:           language.Russian,
	PathPrefix:    "",
	SwitchPrefix:  "/en",
	Price:         RussianPriceFormat,
	WeightMarkers: []string{" г", " кг"},
	WeightSuffix:  " кг",
	Translator:    identityTranslator{},
	Labels: Labels{
		TitleSuffix:     "Казанские Деликатесы | Халяль",
		Brand:           "Казанские Деликатесы",
		DescriptionTail: "Халяль продукция от Казанских Деликатесов.",
		DescWeight:      "Вес",
		DescPrice:       "Цена",
		DescShelfLife:   "Срок годности",
		OGDescription:   "Халяль",
		Catalog:         "Каталог",
		Pepperoni:       "Пепперони",
		About:           "О компании",
		Delivery:        "Доставка",
		FAQ:             "FAQ",
		SwitchLanguage:  "🇬🇧 English",
		Back:            "← Каталог",
		InclVAT:         "с НДС",
		PerItem:         "/шт",
		InStock:         "✓ В наличии",
		PricePerBox:     "Цена за коробку",
		Pieces:          "шт",
		Category:        "Категория",
		Weight:          "Вес расчёта",
		PriceExclVAT:    "Цена без НДС",
		ShelfLife:       "Срок годности",
		Storage:         "Хранение",
		HSCode:          "ТН ВЭД",
		Certification:   "Сертификация",
		Manufacturer:    "Производитель",
		ExportTitle:     "Экспортные цены",
		Order:           "Заказ",
		OrderDesc:       "Опт, экспорт, Private Label",
		Contact:         "📧 Написать",
		MailSubject:     "Заказ",
	},
}

var English = Locale{
	Tag:           language.English,
	PathPrefix:    "/en",
	SwitchPrefix:  "",
	Price:         EnglishPriceFormat,
	WeightMarkers: []string{" g", " kg", " г", " кг"},
	WeightSuffix:  " kg",
	Translator:    englishTranslator{},
	Labels: Labels{
		TitleSuffix:     "Kazan Delicacies | Halal",
		Brand:           "Kazan Delicacies",
		DescriptionTail: "Halal products by Kazan Delicacies.",
		DescWeight:      "Weight",
		DescPrice:       "Price",
		DescShelfLife:   "Shelf life",
		OGDescription:   "Halal",
		Catalog:         "Catalog",
		Pepperoni:       "Pepperoni",
		About:           "About",
		Delivery:        "Delivery",
		FAQ:             "FAQ",
		SwitchLanguage:  "🇷🇺 Русский",
		Back:            "← Back to catalog",
		InclVAT:         "incl. VAT",
		PerItem:         "/pc",
		InStock:         "✓ In stock",
		PricePerBox:     "Price per box",
		Pieces:          "pcs",
		Category:        "Category",
		Weight:          "Unit weight",
		PriceExclVAT:    "Price excl. VAT",
		ShelfLife:       "Shelf life",
		Storage:         "Storage",
		HSCode:          "HS Code",
		Certification:   "Certification",
		Manufacturer:    "Brand",
		ExportTitle:     "Export Prices",
		Order:           "Order",
		OrderDesc:       "Wholesale, export, Private Label available",
		Contact:         "📧 Email",
		MailSubject:     "Order",
	},
}

var supportedLocales = []Locale{Russian, English}

// ParseLocale resolves a language code such as "ru" or "en-GB" to a
// supported locale.
func ParseLocale(code string) (Locale, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Locale{}, fmt.Errorf("empty locale")
	}
	tag, err := language.Parse(code)
	if err != nil {
		return Locale{}, fmt.Errorf("unknown locale %q: %w", code, err)
	}
	base, _ := tag.Base()
	for _, loc := range supportedLocales {
		if locBase, _ := loc.Tag.Base(); locBase == base {
			return loc, nil
		}
	}
	return Locale{}, fmt.Errorf("unsupported locale %q", code)
}

// Code is the BCP 47 language code, used for lang attributes.
func (l Locale) Code() string {
	base, _ := l.Tag.Base()
	return base.String()
}

// OpenGraph returns the og:locale value, for example ru_RU.
func (l Locale) OpenGraph() string {
	region, _ := l.Tag.Region()
	return l.Code() + "_" + region.String()
}

// Dir is the output directory of the locale relative to the site root.
func (l Locale) Dir() string {
	return strings.TrimPrefix(l.PathPrefix+"/products", "/")
}

func (l Locale) Home() string {
	return l.PathPrefix + "/"
}

func (l Locale) ProductPath(slug string) string {
	return l.PathPrefix + "/products/" + slug
}

func (l Locale) SwitchPath(slug string) string {
	return l.SwitchPrefix + "/products/" + slug
}

func (l Locale) FormatWeight(weight string) string {
	for _, marker := range l.WeightMarkers {
		if strings.Contains(weight, marker) {
			return weight
		}
	}
	return weight + l.WeightSuffix
}
