package domain

// BillLine — одна позиция неоформленного счёта.
type BillLine struct {
	SKU            string
	Name           string
	UnitPriceCents int64
	Quantity       int32
}

// Bill — эфемерный счёт, существующий только на время одного оформления.
// Позиции объединяются по SKU: два товара с одинаковым отображаемым
// именем, но разными SKU остаются отдельными строками.
type Bill struct {
	lines []BillLine
}

func NewBill() *Bill {
	return &Bill{}
}

// AddLine добавляет позицию к счёту. Если SKU уже присутствует,
// количество существующей строки увеличивается.
func (b *Bill) AddLine(sku, name string, unitPriceCents int64, quantity int32) {
	for i := range b.lines {
		if b.lines[i].SKU == sku {
			b.lines[i].Quantity += quantity
			return
		}
	}

	b.lines = append(b.lines, BillLine{
		SKU:            sku,
		Name:           name,
		UnitPriceCents: unitPriceCents,
		Quantity:       quantity,
	})
}

// Lines возвращает позиции счёта в порядке добавления.
func (b *Bill) Lines() []BillLine {
	return b.lines
}

// SaleItems возвращает снимок позиций счёта для записи продажи.
func (b *Bill) SaleItems() []SaleItem {
	items := make([]SaleItem, 0, len(b.lines))
	for _, line := range b.lines {
		items = append(items, SaleItem{
			SKU:      line.SKU,
			Name:     line.Name,
			Quantity: line.Quantity,
		})
	}
	return items
}

func (b *Bill) IsEmpty() bool {
	return len(b.lines) == 0
}

// TotalCents возвращает сумму счёта в центах.
func (b *Bill) TotalCents() int64 {
	var total int64
	for _, line := range b.lines {
		total += line.UnitPriceCents * int64(line.Quantity)
	}
	return total
}
