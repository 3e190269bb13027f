package page

import (
	_ "embed"
	"strings"
	"text/template"
)

//go:embed product.html.tmpl
var productTemplateSource string

//go:embed style.css
var styleSource string

var (
	ProductTemplate = template.Must(template.New("product").Parse(productTemplateSource))

	inlineCSS = strings.TrimSpace(styleSource)
)
