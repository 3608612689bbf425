package domain

// Receipt — текстовый чек продажи, архивируемый во внешнем хранилище.
type Receipt struct {
	ObjectKey   string
	Body        []byte
	ContentType string
}

func NewReceipt(objectKey string, body []byte) *Receipt {
	return &Receipt{
		ObjectKey:   objectKey,
		Body:        body,
		ContentType: "text/plain; charset=utf-8",
	}
}
