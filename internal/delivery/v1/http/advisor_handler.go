package http

import (
	"encoding/json"
	"net/http"

	"github.com/DRSN-tech/pos-backend/internal/usecase"
	"github.com/DRSN-tech/pos-backend/pkg/e"
	"github.com/DRSN-tech/pos-backend/pkg/logger"
)

type AdvisorHandler struct {
	advisorUsecase usecase.AdvisorUC
	logger         logger.Logger
}

func NewAdvisorHandler(advisorUsecase usecase.AdvisorUC, logger logger.Logger) *AdvisorHandler {
	return &AdvisorHandler{advisorUsecase: advisorUsecase, logger: logger}
}

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

// ask
//
//	@Summary		Вопрос бизнес-советнику
//	@Description	Отвечает на вопрос о магазине с учётом остатков и лидеров продаж
//	@Tags			advisor
//	@Accept			json
//	@Produce		json
//	@Param			request	body		askRequest	true	"Вопрос"
//	@Success		200		{object}	askResponse
//	@Failure		400		{object}	ErrorResponse	"Пустой вопрос"
//	@Failure		502		{object}	ErrorResponse	"Внешний сервис недоступен"
//	@Router			/advisor/ask [post]
func (a *AdvisorHandler) ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	res, err := a.advisorUsecase.Ask(r.Context(), &usecase.AskReq{Question: req.Question})
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, askResponse{Answer: res.Answer})
}
