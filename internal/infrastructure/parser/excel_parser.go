package parser

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/DRSN-tech/pos-backend/internal/usecase"
	"github.com/DRSN-tech/pos-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ExcelParser разбирает xlsx-прайсы с колонками sku/name/price/quantity.
// Колонки распознаются по заголовку первой строки.
type ExcelParser struct{}

func NewExcelParser() *ExcelParser {
	return &ExcelParser{}
}

// ParsePriceList читает первый лист книги. Строки без SKU, имени
// или с нечитаемой ценой пропускаются.
func (p *ExcelParser) ParsePriceList(data []byte) ([]usecase.PriceListRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrEmptyPriceList)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if len(rows) < 2 {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrEmptyPriceList)
	}

	cols := mapColumns(rows[0])

	result := make([]usecase.PriceListRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		item, ok := p.parseRow(row, cols)
		if !ok {
			continue
		}

		result = append(result, item)
	}

	if len(result) == 0 {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrEmptyPriceList)
	}

	return result, nil
}

func (p *ExcelParser) parseRow(row []string, cols map[string]int) (usecase.PriceListRow, bool) {
	sku := cellAt(row, cols, "sku")
	name := cellAt(row, cols, "name")
	if sku == "" || name == "" {
		return usecase.PriceListRow{}, false
	}

	priceCents, err := parsePriceCents(cellAt(row, cols, "price"))
	if err != nil || priceCents < 0 {
		return usecase.PriceListRow{}, false
	}

	quantity := int64(0)
	if raw := cellAt(row, cols, "quantity"); raw != "" {
		quantity, err = strconv.ParseInt(raw, 10, 32)
		if err != nil || quantity < 0 {
			return usecase.PriceListRow{}, false
		}
	}

	return usecase.PriceListRow{
		SKU:        sku,
		Name:       name,
		PriceCents: priceCents,
		Quantity:   int32(quantity),
	}, true
}

// mapColumns строит соответствие полей индексам колонок по заголовку.
// Нераспознанный заголовок откатывается на порядок sku, name, price, quantity.
func mapColumns(header []string) map[string]int {
	cols := make(map[string]int)
	for i, raw := range header {
		switch name := strings.ToLower(strings.TrimSpace(raw)); {
		case containsAny(name, "sku", "артикул", "code"):
			cols["sku"] = i
		case containsAny(name, "name", "product", "товар", "наименование"):
			cols["name"] = i
		case containsAny(name, "price", "cost", "цена"):
			cols["price"] = i
		case containsAny(name, "quantity", "qty", "stock", "количество"):
			cols["quantity"] = i
		}
	}

	for i, field := range []string{"sku", "name", "price", "quantity"} {
		if _, ok := cols[field]; !ok {
			cols[field] = i
		}
	}

	return cols
}

func containsAny(s string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

func cellAt(row []string, cols map[string]int, field string) string {
	idx := cols[field]
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parsePriceCents переводит строку цены в центы без плавающей точки.
func parsePriceCents(raw string) (int64, error) {
	raw = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "$"))
	raw = strings.ReplaceAll(raw, ",", "")

	price, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, err
	}

	cents := price.Mul(decimal.NewFromInt(100))
	if !cents.IsInteger() {
		return 0, e.ErrPricePrecision
	}

	return cents.IntPart(), nil
}
