package page

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pepperoni-tatar/pagegen/internal/core"
)

type Renderer struct {
	site    core.Site
	symbols core.CurrencySymbols
}

func NewRenderer(site core.Site, symbols core.CurrencySymbols) *Renderer {
	if symbols == nil {
		symbols = core.DefaultCurrencySymbols
	}
	return &Renderer{site: site, symbols: symbols}
}

type detailRow struct {
	Label string
	Value string
}

type exportBadge struct {
	Value string
	Label string
}

type productView struct {
	Lang          string
	OGLocale      string
	Title         string
	Description   string
	OGTitle       string
	OGDescription string
	CanonicalURL  string
	RussianURL    string
	EnglishURL    string
	JSONLD        string
	CSS           string
	Site          core.Site
	Labels        core.Labels
	Home          string
	SwitchPath    string
	Name          string
	SKU           string
	Section       string
	Price         string
	PriceSuffix   string
	BoxPrice      string
	QtyPerBox     string
	Rows          []detailRow
	Exports       []exportBadge
	MailSubject   string
}

// Render produces the complete HTML document of one product page. Output
// depends only on the record, the locale and the renderer's site constants.
func (r *Renderer) Render(p core.Product, loc core.Locale) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	view, err := r.buildView(p, loc)
	if err != nil {
		return "", fmt.Errorf("product %s: %w", p.SKU, err)
	}

	var buf bytes.Buffer
	if err := ProductTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("product %s: %w", p.SKU, err)
	}
	return buf.String(), nil
}

func (r *Renderer) buildView(p core.Product, loc core.Locale) (productView, error) {
	labels := loc.Labels
	slug := p.Slug()
	sku := p.SKU.String()
	name := loc.Translator.Name(p.DisplayName())
	category := loc.Translator.Category(p.Category.String())

	rawPrice := p.PrimaryPrice().String()
	price, err := loc.Price.FormatText(p.PrimaryPrice())
	if err != nil {
		return productView{}, err
	}

	suffix := labels.InclVAT
	if p.IsBakery() {
		suffix = labels.PerItem
	}

	var boxPrice, qty string
	if p.IsBakery() && p.Offers.PricePerBox.Truthy() {
		boxPrice, err = loc.Price.FormatText(p.Offers.PricePerBox)
		if err != nil {
			return productView{}, err
		}
		qty = p.QtyPerBox.String()
	}

	return productView{
		Lang:          loc.Code(),
		OGLocale:      loc.OpenGraph(),
		Title:         name + " — " + labels.TitleSuffix,
		Description:   core.EscapeJSONString(r.description(p, loc, name, category, rawPrice)),
		OGTitle:       core.EscapeJSONString(name + " — " + labels.Brand),
		OGDescription: core.EscapeJSONString(joinNonEmpty(". ", category, rawPrice+" ₽", labels.OGDescription) + "."),
		CanonicalURL:  r.site.ProductURL(loc, slug),
		RussianURL:    r.site.ProductURL(core.Russian, slug),
		EnglishURL:    r.site.ProductURL(core.English, slug),
		JSONLD:        r.jsonLD(p, labels, name),
		CSS:           inlineCSS,
		Site:          r.site,
		Labels:        labels,
		Home:          loc.Home(),
		SwitchPath:    loc.SwitchPath(slug),
		Name:          name,
		SKU:           sku,
		Section:       loc.Translator.Category(p.Section.String()),
		Price:         price,
		PriceSuffix:   suffix,
		BoxPrice:      boxPrice,
		QtyPerBox:     qty,
		Rows:          r.detailRows(p, loc, category),
		Exports:       r.exportBadges(p.Offers.ExportPrices),
		MailSubject:   core.EncodeURIComponent(fmt.Sprintf("%s: %s (%s)", labels.MailSubject, name, sku)),
	}, nil
}

// description carries the catalog's price and weight as sent, without
// formatting or unit suffix.
func (r *Renderer) description(p core.Product, loc core.Locale, name, category, price string) string {
	labels := loc.Labels
	parts := []string{name + "."}
	if category != "" {
		parts = append(parts, category+".")
	}
	parts = append(parts, labels.DescriptionTail)
	if !p.Weight.Empty() {
		parts = append(parts, labels.DescWeight+": "+p.Weight.String()+".")
	}
	parts = append(parts, labels.DescPrice+": "+price+" ₽.")
	if !p.ShelfLife.Empty() {
		parts = append(parts, labels.DescShelfLife+": "+loc.Translator.ShelfLife(p.ShelfLife.String())+".")
	}
	return strings.Join(parts, " ")
}

// jsonLD builds the schema.org Product block. Strings are escaped with
// core.EscapeJSONString only.
func (r *Renderer) jsonLD(p core.Product, labels core.Labels, name string) string {
	esc := core.EscapeJSONString
	return fmt.Sprintf(
		`{"@context":"https://schema.org","@type":"Product","name":"%s","sku":"%s","brand":{"@type":"Brand","name":"%s"},"offers":{"@type":"Offer","priceCurrency":"RUB","price":"%s","availability":"https://schema.org/InStock"},"manufacturer":{"@type":"Organization","name":"%s","url":"%s"}}`,
		esc(name), esc(p.SKU.String()), esc(labels.Brand), esc(p.PrimaryPrice().String()), esc(labels.Brand), esc(r.site.BrandURL),
	)
}

func (r *Renderer) detailRows(p core.Product, loc core.Locale, category string) []detailRow {
	labels := loc.Labels
	var rows []detailRow
	add := func(label, value string) {
		if value != "" {
			rows = append(rows, detailRow{Label: label, Value: value})
		}
	}

	add(labels.Category, category)
	if !p.Weight.Empty() {
		add(labels.Weight, loc.FormatWeight(p.Weight.String()))
	}
	if noVAT := p.NoVATPrice(); noVAT.Truthy() {
		add(labels.PriceExclVAT, noVAT.String()+" ₽")
	}
	add(labels.ShelfLife, loc.Translator.ShelfLife(p.ShelfLife.String()))
	add(labels.Storage, p.Storage.String())
	add(labels.HSCode, p.HSCode.String())
	add(labels.Certification, "Halal")
	add(labels.Manufacturer, labels.Brand)
	return rows
}

func (r *Renderer) exportBadges(prices core.ExportPrices) []exportBadge {
	var badges []exportBadge
	for _, price := range prices.NonEmpty() {
		badges = append(badges, exportBadge{
			Value: price.Value.String(),
			Label: r.symbols.Label(price.Currency),
		})
	}
	return badges
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}
