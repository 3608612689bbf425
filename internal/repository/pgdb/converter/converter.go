package converter

import (
	"encoding/json"

	"github.com/DRSN-tech/pos-backend/internal/domain"
	"github.com/DRSN-tech/pos-backend/internal/usecase"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
	ToArrEntity(models []ProductModel) []domain.Product
}

// TransactionConverter преобразует сущности Transaction между domain и моделью PostgreSQL.
type TransactionConverter interface {
	ToModel(entity *domain.Transaction) (*TransactionModel, error)
	ToEntity(model *TransactionModel) (*domain.Transaction, error)
}

// OutboxEventConverter преобразует события outbox между usecase и моделью PostgreSQL.
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
}

type ProductConverterImpl struct{}

func NewProductConverterImpl() *ProductConverterImpl {
	return &ProductConverterImpl{}
}

func (p *ProductConverterImpl) ToModel(entity *domain.Product) *ProductModel {
	return &ProductModel{
		SKU:        entity.SKU,
		Name:       entity.Name,
		PriceCents: entity.PriceCents,
		Quantity:   entity.Quantity,
		CreatedAt:  entity.CreatedAt,
		UpdatedAt:  entity.UpdatedAt,
	}
}

func (p *ProductConverterImpl) ToEntity(model *ProductModel) *domain.Product {
	return &domain.Product{
		SKU:        model.SKU,
		Name:       model.Name,
		PriceCents: model.PriceCents,
		Quantity:   model.Quantity,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

func (p *ProductConverterImpl) ToArrEntity(models []ProductModel) []domain.Product {
	entities := make([]domain.Product, 0, len(models))
	for i := range models {
		entities = append(entities, *p.ToEntity(&models[i]))
	}
	return entities
}

type TransactionConverterImpl struct{}

func NewTransactionConverterImpl() *TransactionConverterImpl {
	return &TransactionConverterImpl{}
}

func (t *TransactionConverterImpl) ToModel(entity *domain.Transaction) (*TransactionModel, error) {
	items, err := json.Marshal(entity.Items)
	if err != nil {
		return nil, err
	}

	return &TransactionModel{
		ID:         entity.ID,
		TotalCents: entity.TotalCents,
		CreatedAt:  entity.CreatedAt,
		Items:      items,
	}, nil
}

func (t *TransactionConverterImpl) ToEntity(model *TransactionModel) (*domain.Transaction, error) {
	var items []domain.SaleItem
	if err := json.Unmarshal(model.Items, &items); err != nil {
		return nil, err
	}

	return &domain.Transaction{
		ID:         model.ID,
		TotalCents: model.TotalCents,
		CreatedAt:  model.CreatedAt,
		Items:      items,
	}, nil
}

type OutboxEventConverterImpl struct{}

func NewOutboxEventConverterImpl() *OutboxEventConverterImpl {
	return &OutboxEventConverterImpl{}
}

func (o *OutboxEventConverterImpl) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	return &OutboxEventModel{
		ID:            entity.ID,
		EventID:       entity.EventID,
		EventType:     string(entity.EventType),
		TransactionID: entity.TransactionID,
		Payload:       entity.Payload,
		Status:        string(entity.Status),
		CreatedAt:     entity.CreatedAt,
		ProcessedAt:   entity.ProcessedAt,
	}
}

func (o *OutboxEventConverterImpl) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	return &usecase.OutboxEvent{
		ID:            model.ID,
		EventID:       model.EventID,
		EventType:     usecase.OutboxEventType(model.EventType),
		TransactionID: model.TransactionID,
		Payload:       model.Payload,
		Status:        usecase.OutboxStatus(model.Status),
		CreatedAt:     model.CreatedAt,
		ProcessedAt:   model.ProcessedAt,
	}
}
