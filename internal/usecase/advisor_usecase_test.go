package usecase_test

import (
	"context"
	"testing"

	"github.com/DRSN-tech/pos-backend/internal/domain"
	"github.com/DRSN-tech/pos-backend/internal/usecase"
	"github.com/DRSN-tech/pos-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAdvisorInfra struct {
	lastReq *usecase.ChatCompletionReq
	answer  string
	err     error
}

func (s *stubAdvisorInfra) ChatCompletion(ctx context.Context, req *usecase.ChatCompletionReq) (string, error) {
	s.lastReq = req
	return s.answer, s.err
}

func newAdvisorFixture(infra *stubAdvisorInfra) *usecase.AdvisorUseCase {
	productRepo := &stubProductRepo{
		lowStockItemsFn: func(ctx context.Context, limit int) ([]domain.Product, error) {
			return []domain.Product{
				{SKU: "SKU-1", Name: "Milk", Quantity: 2},
				{SKU: "SKU-2", Name: "Bread", Quantity: 4},
			}, nil
		},
	}
	transactionRepo := &stubTransactionRepo{
		listRecentFn: func(ctx context.Context, limit int) ([]domain.Transaction, error) {
			return []domain.Transaction{
				{ID: 1, Items: []domain.SaleItem{{SKU: "SKU-1", Name: "Milk", Quantity: 6}}},
			}, nil
		},
	}
	reports := usecase.NewReportUC(productRepo, transactionRepo, &stubCacheRepo{}, stubLogger{})

	return usecase.NewAdvisorUC(reports, infra, stubLogger{})
}

func TestAdvisorAsk(t *testing.T) {
	t.Parallel()

	t.Run("injects store data into system prompt", func(t *testing.T) {
		t.Parallel()

		infra := &stubAdvisorInfra{answer: "  Restock milk first.  "}
		uc := newAdvisorFixture(infra)

		res, err := uc.Ask(context.Background(), &usecase.AskReq{Question: "What should I restock?"})
		require.NoError(t, err)
		assert.Equal(t, "Restock milk first.", res.Answer)

		require.NotNil(t, infra.lastReq)
		assert.Equal(t, "What should I restock?", infra.lastReq.UserMessage)
		assert.Contains(t, infra.lastReq.SystemPrompt, "('Milk', 2), ('Bread', 4)")
		assert.Contains(t, infra.lastReq.SystemPrompt, "('Milk', 6)")
		assert.Contains(t, infra.lastReq.SystemPrompt, "inventory management")
	})

	t.Run("rejects empty question without calling the service", func(t *testing.T) {
		t.Parallel()

		infra := &stubAdvisorInfra{}
		uc := newAdvisorFixture(infra)

		_, err := uc.Ask(context.Background(), &usecase.AskReq{Question: "   "})
		assert.ErrorIs(t, err, e.ErrEmptyQuestion)
		assert.Nil(t, infra.lastReq)
	})

	t.Run("propagates remote failure", func(t *testing.T) {
		t.Parallel()

		infra := &stubAdvisorInfra{err: e.ErrRemoteService}
		uc := newAdvisorFixture(infra)

		_, err := uc.Ask(context.Background(), &usecase.AskReq{Question: "Any advice?"})
		assert.ErrorIs(t, err, e.ErrRemoteService)
	})
}
