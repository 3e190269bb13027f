package page

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/goccy/go-json"
	"golang.org/x/net/html"

	"github.com/pepperoni-tatar/pagegen/internal/core"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

const fullRecord = `{
	"sku": "PEP-CL-01",
	"name": "Пепперони вар-коп классика",
	"category": "Топпинги",
	"section": "Заморозка",
	"weight": "1,2",
	"shelfLife": "180 суток",
	"storage": "-18 °C",
	"hsCode": "1601009100",
	"offers": {
		"price": "1234.50",
		"priceExclVAT": "1028.75",
		"exportPrices": {"USD": 15.2, "KZT": 7300, "UZS": "", "EUR": "14"}
	}
}`

const bakeryRecord = `{
	"sku": "BK-SOCH",
	"name": "Сочник с творогом",
	"category": "Классическая выпечка",
	"section": "Выпечка",
	"qtyPerBox": "24",
	"offers": {
		"price": "999",
		"pricePerUnit": "55.00",
		"pricePerBox": "1320.00",
		"pricePerBoxExclVAT": "1100.00"
	}
}`

func decodeProduct(t *testing.T, body string) core.Product {
	t.Helper()
	var p core.Product
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("failed to decode product: %v", err)
	}
	return p
}

func render(t *testing.T, p core.Product, loc core.Locale) string {
	t.Helper()
	doc, err := NewRenderer(core.DefaultSite, core.DefaultCurrencySymbols).Render(p, loc)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return doc
}

func parseDocument(t *testing.T, doc string) *html.Node {
	t.Helper()
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("failed to parse rendered HTML: %v", err)
	}
	return root
}

func findNode(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, match); found != nil {
			return found
		}
	}
	return nil
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	if match(n) {
		out = append(out, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, findAll(c, match)...)
	}
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && attr(n, "class") == class
	}
}

func isElement(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}

func detailRows(t *testing.T, root *html.Node) map[string]string {
	t.Helper()
	rows := make(map[string]string)
	for _, dl := range findAll(root, hasClass("detail-row")) {
		dt := findNode(dl, isElement("dt"))
		dd := findNode(dl, isElement("dd"))
		if dt == nil || dd == nil {
			t.Fatalf("detail row without dt/dd")
		}
		rows[textContent(dt)] = textContent(dd)
	}
	return rows
}

func jsonLD(t *testing.T, root *html.Node) map[string]any {
	t.Helper()
	script := findNode(root, func(n *html.Node) bool {
		return isElement("script")(n) && attr(n, "type") == "application/ld+json"
	})
	if script == nil {
		t.Fatal("JSON-LD script not found")
	}
	var data map[string]any
	if err := json.Unmarshal([]byte(textContent(script)), &data); err != nil {
		t.Fatalf("JSON-LD is not valid JSON: %v", err)
	}
	return data
}

func TestRenderMinimalRecord(t *testing.T) {
	p := decodeProduct(t, `{"sku":"ABC1","name":"Test","offers":{"price":"100"}}`)
	doc := render(t, p, core.Russian)
	root := parseDocument(t, doc)

	if p.Slug() != "abc1" {
		t.Errorf("Expected slug abc1, got %q", p.Slug())
	}

	title := findNode(root, isElement("title"))
	if title == nil || !strings.Contains(textContent(title), "Test") {
		t.Errorf("Expected title containing Test")
	}

	price := findNode(root, hasClass("price"))
	if price == nil {
		t.Fatal("price block not found")
	}
	if got := textContent(price); got != "100,00 ₽ с НДС" {
		t.Errorf("Expected price block %q, got %q", "100,00 ₽ с НДС", got)
	}

	if findNode(root, hasClass("export-prices")) != nil {
		t.Error("Expected no export price block")
	}
	if strings.Contains(doc, core.Russian.Labels.PriceExclVAT) {
		t.Error("Expected no price excl. VAT row")
	}
	if findNode(root, hasClass("box-price")) != nil {
		t.Error("Expected no box price for a standard record")
	}

	canonical := findNode(root, func(n *html.Node) bool {
		return isElement("link")(n) && attr(n, "rel") == "canonical"
	})
	if canonical == nil || attr(canonical, "href") != "https://api.pepperoni.tatar/products/abc1" {
		t.Errorf("Unexpected canonical link")
	}

	rows := detailRows(t, root)
	if len(rows) != 2 || rows["Сертификация"] != "Halal" || rows["Производитель"] != "Казанские Деликатесы" {
		t.Errorf("Expected only the fixed rows, got %v", rows)
	}
}

func TestRenderPricingMode(t *testing.T) {
	t.Run("bakery uses price per unit", func(t *testing.T) {
		root := parseDocument(t, render(t, decodeProduct(t, bakeryRecord), core.Russian))

		if got := textContent(findNode(root, hasClass("price"))); got != "55,00 ₽ /шт" {
			t.Errorf("Expected %q, got %q", "55,00 ₽ /шт", got)
		}

		box := findNode(root, hasClass("box-price"))
		if box == nil {
			t.Fatal("box price not found")
		}
		if got := textContent(box); got != "Цена за коробку: 1\u00a0320,00 ₽ (24 шт)" {
			t.Errorf("Unexpected box price %q", got)
		}

		if got := detailRows(t, root)["Цена без НДС"]; got != "1100.00 ₽" {
			t.Errorf("Expected box price excl. VAT row, got %q", got)
		}
	})

	t.Run("standard uses price including VAT", func(t *testing.T) {
		root := parseDocument(t, render(t, decodeProduct(t, fullRecord), core.Russian))

		if got := textContent(findNode(root, hasClass("price"))); got != "1\u00a0234,50 ₽ с НДС" {
			t.Errorf("Expected %q, got %q", "1\u00a0234,50 ₽ с НДС", got)
		}
	})

	t.Run("empty primary price renders zero", func(t *testing.T) {
		p := decodeProduct(t, `{"sku":"Z","name":"Zero","offers":{"price":""}}`)
		root := parseDocument(t, render(t, p, core.Russian))

		if got := textContent(findNode(root, hasClass("price"))); got != "0,00 ₽ с НДС" {
			t.Errorf("Expected zero price, got %q", got)
		}
	})

	t.Run("null primary price renders zero", func(t *testing.T) {
		p := decodeProduct(t, `{"sku":"N","name":"Null","offers":{"price":null}}`)
		root := parseDocument(t, render(t, p, core.Russian))

		if got := textContent(findNode(root, hasClass("price"))); got != "0,00 ₽ с НДС" {
			t.Errorf("Expected zero price, got %q", got)
		}
	})

	t.Run("zero price per unit is not bakery", func(t *testing.T) {
		p := decodeProduct(t, `{"sku":"S","name":"S","offers":{"price":"5","pricePerUnit":0,"pricePerBox":"100"}}`)
		root := parseDocument(t, render(t, p, core.Russian))

		if got := textContent(findNode(root, hasClass("price"))); got != "5,00 ₽ с НДС" {
			t.Errorf("Expected %q, got %q", "5,00 ₽ с НДС", got)
		}
		if findNode(root, hasClass("box-price")) != nil {
			t.Error("Expected no box price for a standard record")
		}
	})

	t.Run("zero box price is omitted", func(t *testing.T) {
		p := decodeProduct(t, `{"sku":"B","name":"B","qtyPerBox":"24","offers":{"pricePerUnit":"55","pricePerBox":0}}`)
		root := parseDocument(t, render(t, p, core.Russian))

		if findNode(root, hasClass("box-price")) != nil {
			t.Error("Expected no box price")
		}
	})

	t.Run("zero no-VAT price is omitted", func(t *testing.T) {
		p := decodeProduct(t, `{"sku":"V","name":"V","offers":{"price":"5","priceExclVAT":0}}`)
		rows := detailRows(t, parseDocument(t, render(t, p, core.Russian)))

		if _, ok := rows["Цена без НДС"]; ok {
			t.Errorf("Expected no price excl. VAT row, got %v", rows)
		}
	})
}

func TestRenderBlankName(t *testing.T) {
	for name, body := range map[string]string{
		"empty": `{"sku":"E1","name":"","offers":{"price":"1"}}`,
		"null":  `{"sku":"E1","name":null,"offers":{"price":"1"}}`,
	} {
		t.Run(name, func(t *testing.T) {
			root := parseDocument(t, render(t, decodeProduct(t, body), core.Russian))

			h1 := findNode(root, isElement("h1"))
			if h1 == nil || textContent(h1) != "" {
				t.Errorf("Expected an empty heading")
			}
			if got := jsonLD(t, root)["name"]; got != "" {
				t.Errorf("Expected empty JSON-LD name, got %v", got)
			}
		})
	}
}

func TestRenderDescriptionUsesCatalogValues(t *testing.T) {
	root := parseDocument(t, render(t, decodeProduct(t, fullRecord), core.Russian))

	meta := func(key, value string) string {
		n := findNode(root, func(n *html.Node) bool {
			return isElement("meta")(n) && attr(n, key) == value
		})
		if n == nil {
			t.Fatalf("meta %s=%s not found", key, value)
		}
		return attr(n, "content")
	}

	description := meta("name", "description")
	for _, want := range []string{"Вес: 1,2.", "Цена: 1234.50 ₽."} {
		if !strings.Contains(description, want) {
			t.Errorf("Expected description to contain %q, got %q", want, description)
		}
	}
	if got := meta("property", "og:description"); got != "Топпинги. 1234.50 ₽. Халяль." {
		t.Errorf("Unexpected og:description %q", got)
	}
}

func TestRenderExportPrices(t *testing.T) {
	t.Run("skips empty entries", func(t *testing.T) {
		p := decodeProduct(t, `{"sku":"X","name":"X","offers":{"price":"1","exportPrices":{"USD":"10","KZT":"","UZS":0}}}`)
		root := parseDocument(t, render(t, p, core.Russian))

		block := findNode(root, hasClass("export-prices"))
		if block == nil {
			t.Fatal("export block not found")
		}
		badges := findAll(block, isElement("span"))
		if len(badges) != 1 {
			t.Fatalf("Expected 1 badge, got %d", len(badges))
		}
		if got := textContent(badges[0]); got != "10 $" {
			t.Errorf("Expected %q, got %q", "10 $", got)
		}
	})

	t.Run("keeps catalog order and falls back to code", func(t *testing.T) {
		root := parseDocument(t, render(t, decodeProduct(t, fullRecord), core.Russian))

		var got []string
		for _, badge := range findAll(findNode(root, hasClass("export-prices")), isElement("span")) {
			got = append(got, textContent(badge))
		}
		want := []string{"15.2 $", "7300 ₸", "14 EUR"}
		if strings.Join(got, "|") != strings.Join(want, "|") {
			t.Errorf("Expected badges %v, got %v", want, got)
		}
	})

	for name, body := range map[string]string{
		"empty object": `{"sku":"X","name":"X","offers":{"price":"1","exportPrices":{}}}`,
		"absent":       `{"sku":"X","name":"X","offers":{"price":"1"}}`,
		"all empty":    `{"sku":"X","name":"X","offers":{"price":"1","exportPrices":{"USD":"","KZT":null}}}`,
		"all zero":     `{"sku":"X","name":"X","offers":{"price":"1","exportPrices":{"USD":0,"KZT":0.0}}}`,
	} {
		t.Run("omitted when "+name, func(t *testing.T) {
			doc := render(t, decodeProduct(t, body), core.Russian)
			if strings.Contains(doc, "export-prices") || strings.Contains(doc, "Экспортные цены") {
				t.Error("Expected no export block")
			}
		})
	}
}

func TestRenderWeight(t *testing.T) {
	tests := []struct {
		weight string
		want   string
	}{
		{"500 г", "500 г"},
		{"2", "2 кг"},
	}

	for _, tt := range tests {
		t.Run(tt.weight, func(t *testing.T) {
			p := decodeProduct(t, `{"sku":"W","name":"W","weight":"`+tt.weight+`","offers":{"price":"1"}}`)
			rows := detailRows(t, parseDocument(t, render(t, p, core.Russian)))
			if got := rows["Вес расчёта"]; got != tt.want {
				t.Errorf("Expected weight %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRenderDetailRowsOrder(t *testing.T) {
	root := parseDocument(t, render(t, decodeProduct(t, fullRecord), core.Russian))

	var labels []string
	for _, dl := range findAll(root, hasClass("detail-row")) {
		labels = append(labels, textContent(findNode(dl, isElement("dt"))))
	}
	want := []string{"Категория", "Вес расчёта", "Цена без НДС", "Срок годности", "Хранение", "ТН ВЭД", "Сертификация", "Производитель"}
	if strings.Join(labels, "|") != strings.Join(want, "|") {
		t.Errorf("Expected rows %v, got %v", want, labels)
	}
}

func TestRenderEscapesName(t *testing.T) {
	p := decodeProduct(t, `{"sku":"Q1","name":"Сосиски \"из говядины\" \\ 80 г","offers":{"price":"1"}}`)
	doc := render(t, p, core.Russian)

	if !strings.Contains(doc, `"name":"Сосиски \"из говядины\" \\ 80 г"`) {
		t.Error("Expected escaped name in JSON-LD")
	}

	data := jsonLD(t, parseDocument(t, doc))
	if got := data["name"]; got != `Сосиски "из говядины" \ 80 г` {
		t.Errorf("Expected JSON-LD name to decode to the product name, got %v", got)
	}
	if got := data["sku"]; got != "Q1" {
		t.Errorf("Expected sku Q1, got %v", got)
	}
}

func TestRenderJSONLD(t *testing.T) {
	data := jsonLD(t, parseDocument(t, render(t, decodeProduct(t, bakeryRecord), core.Russian)))

	offers, ok := data["offers"].(map[string]any)
	if !ok {
		t.Fatal("Expected offers object")
	}
	if offers["price"] != "55.00" || offers["priceCurrency"] != "RUB" {
		t.Errorf("Unexpected offer %v", offers)
	}
	if data["@type"] != "Product" {
		t.Errorf("Expected Product type, got %v", data["@type"])
	}
}

func TestRenderMailtoSubject(t *testing.T) {
	p := decodeProduct(t, `{"sku":"ABC1","name":"Test","offers":{"price":"100"}}`)
	root := parseDocument(t, render(t, p, core.Russian))

	link := findNode(root, func(n *html.Node) bool {
		return isElement("a")(n) && strings.HasPrefix(attr(n, "href"), "mailto:")
	})
	if link == nil {
		t.Fatal("mailto link not found")
	}
	want := "mailto:info@kazandelikates.tatar?subject=%D0%97%D0%B0%D0%BA%D0%B0%D0%B7%3A%20Test%20%28ABC1%29"
	if got := attr(link, "href"); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestRenderEnglish(t *testing.T) {
	p := decodeProduct(t, `{"sku":"SAU-01","name":"Сосиски «нежные»","category":"Выпечка","weight":"2","shelfLife":"30 суток","offers":{"price":"1234.5"}}`)
	doc := render(t, p, core.English)
	root := parseDocument(t, doc)

	if h1 := findNode(root, isElement("h1")); h1 == nil || textContent(h1) != "Tender Sausages" {
		t.Errorf("Expected translated heading")
	}
	if got := textContent(findNode(root, hasClass("price"))); got != "1,234.50 ₽ incl. VAT" {
		t.Errorf("Unexpected price %q", got)
	}

	rows := detailRows(t, root)
	if rows["Category"] != "Bakery" || rows["Unit weight"] != "2 kg" || rows["Shelf life"] != "30 days" {
		t.Errorf("Unexpected rows %v", rows)
	}

	htmlNode := findNode(root, isElement("html"))
	if attr(htmlNode, "lang") != "en" {
		t.Errorf("Expected lang en, got %q", attr(htmlNode, "lang"))
	}
	if !strings.Contains(doc, `<link rel="canonical" href="https://api.pepperoni.tatar/en/products/sau-01">`) {
		t.Error("Expected English canonical URL")
	}
	if !strings.Contains(doc, `<a href="/products/sau-01"`) {
		t.Error("Expected link back to the Russian page")
	}
}

func TestRenderMissingFields(t *testing.T) {
	r := NewRenderer(core.DefaultSite, nil)

	for name, body := range map[string]string{
		"sku":    `{"name":"X","offers":{"price":"1"}}`,
		"name":   `{"sku":"X","offers":{"price":"1"}}`,
		"offers": `{"sku":"X","name":"X"}`,
		"price":  `{"sku":"X","name":"X","offers":{}}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := r.Render(decodeProduct(t, body), core.Russian)
			if !errors.Is(err, core.ErrMissingField) {
				t.Errorf("Expected ErrMissingField, got %v", err)
			}
		})
	}

	t.Run("unparsable price", func(t *testing.T) {
		_, err := r.Render(decodeProduct(t, `{"sku":"X","name":"X","offers":{"price":"n/a"}}`), core.Russian)
		if !errors.Is(err, core.ErrInvalidField) {
			t.Errorf("Expected ErrInvalidField, got %v", err)
		}
	})
}

func TestRenderIsDeterministic(t *testing.T) {
	p := decodeProduct(t, fullRecord)
	first := render(t, p, core.Russian)
	for i := 0; i < 5; i++ {
		if again := render(t, p, core.Russian); again != first {
			t.Fatal("Expected byte-identical output across renders")
		}
	}
}

func TestRenderDocumentSnapshot(t *testing.T) {
	doc := render(t, decodeProduct(t, fullRecord), core.Russian)
	snaps.WithConfig(snaps.Ext(".html")).MatchSnapshot(t, doc)
}
