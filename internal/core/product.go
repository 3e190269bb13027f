package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

var (
	ErrMissingField = errors.New("missing required field")
	ErrInvalidField = errors.New("invalid field")
)

// Product is one record of the catalog API.
type Product struct {
	SKU       Text    `json:"sku"`
	Name      *Text   `json:"name"`
	Category  Text    `json:"category"`
	Section   Text    `json:"section"`
	Weight    Text    `json:"weight"`
	ShelfLife Text    `json:"shelfLife"`
	Storage   Text    `json:"storage"`
	HSCode    Text    `json:"hsCode"`
	QtyPerBox Text    `json:"qtyPerBox"`
	Offers    *Offers `json:"offers"`
}

type Offers struct {
	Price              *Text        `json:"price"`
	PricePerUnit       *Text        `json:"pricePerUnit"`
	PricePerBoxExclVAT Text         `json:"pricePerBoxExclVAT"`
	PriceExclVAT       Text         `json:"priceExclVAT"`
	PricePerBox        Text         `json:"pricePerBox"`
	ExportPrices       ExportPrices `json:"exportPrices"`
}

// UnmarshalJSON keeps a null name present, so that only an absent key fails
// validation.
func (p *Product) UnmarshalJSON(data []byte) error {
	type product Product
	var decoded product
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	if decoded.Name == nil && gjson.GetBytes(data, "name").Exists() {
		decoded.Name = new(Text)
	}
	*p = Product(decoded)
	return nil
}

// UnmarshalJSON keeps a null price present; it renders as zero.
func (o *Offers) UnmarshalJSON(data []byte) error {
	type offers Offers
	var decoded offers
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	if decoded.Price == nil && gjson.GetBytes(data, "price").Exists() {
		decoded.Price = new(Text)
	}
	*o = Offers(decoded)
	return nil
}

func (p Product) Slug() string {
	return strings.ToLower(p.SKU.String())
}

func (p Product) DisplayName() string {
	if p.Name == nil {
		return ""
	}
	return CollapseSpaces(p.Name.String())
}

func (p Product) IsBakery() bool {
	return p.Offers != nil && p.Offers.PricePerUnit != nil && p.Offers.PricePerUnit.Truthy()
}

// PrimaryPrice is the unit price for bakery records and the VAT-inclusive
// price for everything else.
func (p Product) PrimaryPrice() Text {
	if p.Offers == nil {
		return ""
	}
	if p.IsBakery() {
		return *p.Offers.PricePerUnit
	}
	if p.Offers.Price == nil {
		return ""
	}
	return *p.Offers.Price
}

func (p Product) NoVATPrice() Text {
	if p.Offers == nil {
		return ""
	}
	if p.Offers.PriceExclVAT.Truthy() {
		return p.Offers.PriceExclVAT
	}
	if p.Offers.PricePerBoxExclVAT.Truthy() {
		return p.Offers.PricePerBoxExclVAT
	}
	return ""
}

func (p Product) Validate() error {
	if p.SKU.Empty() {
		return fmt.Errorf("%w: sku", ErrMissingField)
	}
	if err := ValidateSlug(p.Slug()); err != nil {
		return fmt.Errorf("%w: sku %q: %v", ErrInvalidField, p.SKU, err)
	}
	if p.Name == nil {
		return fmt.Errorf("%w: name", ErrMissingField)
	}
	if p.Offers == nil {
		return fmt.Errorf("%w: offers", ErrMissingField)
	}
	if !p.IsBakery() && p.Offers.Price == nil {
		return fmt.Errorf("%w: offers.price", ErrMissingField)
	}
	return nil
}
