package usecase

import "context"

type AdvisorInfra interface {
	ChatCompletion(ctx context.Context, req *ChatCompletionReq) (string, error)
}

type ReceiptsInfra interface {
	// ArchiveReceipt не блокирует вызывающего: загрузка идёт в фоне,
	// её неудача не отменяет уже зафиксированную продажу.
	ArchiveReceipt(trans *CheckoutRes)
	WaitForUploads(ctx context.Context) error
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}

type PriceListParser interface {
	ParsePriceList(data []byte) ([]PriceListRow, error)
}
