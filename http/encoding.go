package http

import (
	"bytes"
	"encoding/json"
	"go-fx-widget/domain"
	"go-fx-widget/rates"
	"go-fx-widget/widget"
	"time"
)

// amountInput accepts the amount as a JSON string or number and keeps its text,
// so that parsing and validation stay with the widget.
type amountInput string

func (a *amountInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = amountInput(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = amountInput(n)
	return nil
}

type resultResponse struct {
	Exchange domain.Rate   `json:"exchange"`
	Amount   domain.Amount `json:"amount"`
	Symbol   string        `json:"symbol"`
}

type recordResponse struct {
	ID           string          `json:"id"`
	Timestamp    time.Time       `json:"timestamp"`
	Time         string          `json:"time"`
	AmountSource domain.Amount   `json:"amountSource"`
	AmountTarget domain.Amount   `json:"amountTarget"`
	From         domain.Currency `json:"from"`
	To           domain.Currency `json:"to"`
	Rate         domain.Rate     `json:"rate"`
}

type stateResponse struct {
	Amount       string           `json:"amount"`
	FromCurrency domain.Currency  `json:"fromCurrency"`
	ToCurrency   domain.Currency  `json:"toCurrency"`
	Result       *resultResponse  `json:"result"`
	History      []recordResponse `json:"history"`
}

func newStateResponse(s widget.State) stateResponse {
	response := stateResponse{
		Amount:       s.Amount,
		FromCurrency: s.From,
		ToCurrency:   s.To,
		History:      newHistoryResponse(s.History.Items()),
	}
	if s.Result != nil {
		response.Result = &resultResponse{
			Exchange: s.Result.Rate,
			Amount:   s.Result.Amount,
			Symbol:   rates.Symbol(s.To),
		}
	}
	return response
}

func newHistoryResponse(records []domain.Record) []recordResponse {
	items := make([]recordResponse, 0, len(records))
	for _, r := range records {
		items = append(items, recordResponse{
			ID:           r.ID,
			Timestamp:    r.Timestamp,
			Time:         r.Timestamp.Format("15:04"),
			AmountSource: r.SourceAmount,
			AmountTarget: r.TargetAmount,
			From:         r.SourceCurrency,
			To:           r.TargetCurrency,
			Rate:         r.Rate,
		})
	}
	return items
}
