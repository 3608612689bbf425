package domain

import "time"

// SaleItem — снимок одной позиции продажи на момент оформления.
// Name денормализован: переименование или удаление товара не меняет историю.
type SaleItem struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Quantity int32  `json:"quantity"`
}

// Transaction — неизменяемая запись завершённой продажи.
type Transaction struct {
	ID         int64
	TotalCents int64
	CreatedAt  time.Time
	Items      []SaleItem
}

func NewTransaction(totalCents int64, createdAt time.Time, items []SaleItem) *Transaction {
	return &Transaction{
		TotalCents: totalCents,
		CreatedAt:  createdAt,
		Items:      items,
	}
}

// ItemsCount возвращает суммарное количество единиц в продаже.
func (t *Transaction) ItemsCount() int32 {
	var total int32
	for _, item := range t.Items {
		total += item.Quantity
	}
	return total
}
