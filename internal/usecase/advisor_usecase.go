package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/DRSN-tech/pos-backend/internal/domain"
	"github.com/DRSN-tech/pos-backend/pkg/e"
	"github.com/DRSN-tech/pos-backend/pkg/logger"
)

const advisorDataLimit = 10

// AdvisorUseCase собирает данные магазина и спрашивает совета у внешнего
// chat-completions сервиса. Отказ сервиса — обычный результат диалога,
// он не валит остальное приложение.
type AdvisorUseCase struct {
	reports ReportUC
	advisor AdvisorInfra
	logger  logger.Logger
}

func NewAdvisorUC(reports ReportUC, advisor AdvisorInfra, logger logger.Logger) *AdvisorUseCase {
	return &AdvisorUseCase{
		reports: reports,
		advisor: advisor,
		logger:  logger,
	}
}

// Ask отвечает на вопрос владельца магазина, подмешивая в промпт
// текущие остатки и лидеров продаж.
func (a *AdvisorUseCase) Ask(ctx context.Context, req *AskReq) (*AskRes, error) {
	const op = "AdvisorUseCase.Ask"

	if strings.TrimSpace(req.Question) == "" {
		return nil, e.Wrap(op, e.ErrEmptyQuestion)
	}

	lowStock, err := a.reports.LowStockItems(ctx, advisorDataLimit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	topSellers, err := a.reports.TopSellers(ctx, advisorDataLimit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	prompt := buildAdvisorPrompt(lowStockSummary(lowStock), topSellersSummary(topSellers))

	answer, err := a.advisor.ChatCompletion(ctx, NewChatCompletionReq(prompt, req.Question))
	if err != nil {
		a.logger.Warnf("advisor request failed: %v", e.Wrap(op, err))
		return nil, e.Wrap(op, err)
	}

	return &AskRes{Answer: strings.TrimSpace(answer)}, nil
}

// buildAdvisorPrompt формирует системный промпт с данными магазина.
func buildAdvisorPrompt(lowStock, topSellers string) string {
	return fmt.Sprintf(`You are an expert inventory management AI assistant. Your goal is to provide clear, actionable advice to a shop owner. Analyze the following data and answer the user's question.
DO NOT create headings, only do simple formatting.
**Inventory & Sales Data Summary:**
- Low Stock Products (Top 10): %s
- Top Selling Products (from recent transactions): %s

Based on this data, provide a concise recommendation. Focus on what to restock, what might be overstocked, and potential sales strategies.`, lowStock, topSellers)
}

// lowStockSummary сворачивает товары с низким остатком в строку вида
// "('Milk', 2), ('Bread', 4)" для подстановки в промпт.
func lowStockSummary(products []domain.Product) string {
	if len(products) == 0 {
		return "none"
	}

	parts := make([]string, 0, len(products))
	for _, p := range products {
		parts = append(parts, fmt.Sprintf("('%s', %d)", p.Name, p.Quantity))
	}

	return strings.Join(parts, ", ")
}

// topSellersSummary сворачивает лидеров продаж в строку для промпта.
func topSellersSummary(rows []TopSellerRow) string {
	if len(rows) == 0 {
		return "none"
	}

	parts := make([]string, 0, len(rows))
	for _, row := range rows {
		parts = append(parts, fmt.Sprintf("('%s', %d)", row.Name, row.UnitsSold))
	}

	return strings.Join(parts, ", ")
}
