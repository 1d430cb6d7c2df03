package models

import (
	"errors"
	"strings"
	"time"

	"github.com/api-sage/ledger-core/internal/domain"
	"github.com/shopspring/decimal"
)

type TransactionRequest struct {
	TransactionID string `json:"transactionId,omitempty"`
	AccountNo     string `json:"accountNo"`
	Amount        string `json:"amount"`
	Description   string `json:"description"`
	Direction     string `json:"direction"`
}

func (r TransactionRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountNo) == "" {
		errs = append(errs, "accountNo is required")
	}

	amount := strings.TrimSpace(r.Amount)
	if amount == "" {
		errs = append(errs, "amount is required")
	} else {
		parsed, err := decimal.NewFromString(amount)
		if err != nil {
			errs = append(errs, "amount must be numeric")
		} else if parsed.LessThanOrEqual(decimal.Zero) {
			errs = append(errs, "amount must be greater than zero")
		}
	}

	if _, err := domain.ParseDirection(r.Direction); err != nil {
		errs = append(errs, "direction must be IN/CREDIT or OUT/DEBIT")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// ToDomain assumes Validate has passed.
func (r TransactionRequest) ToDomain() domain.Transaction {
	amount, _ := decimal.NewFromString(strings.TrimSpace(r.Amount))
	direction, _ := domain.ParseDirection(r.Direction)

	return domain.Transaction{
		TransactionID: strings.TrimSpace(r.TransactionID),
		AccountNo:     strings.TrimSpace(r.AccountNo),
		Amount:        amount,
		Description:   strings.TrimSpace(r.Description),
		Direction:     direction,
	}
}

type TransactionResponse struct {
	TransactionID string `json:"transactionId"`
	AccountNo     string `json:"accountNo"`
	Amount        string `json:"amount"`
	Description   string `json:"description"`
	Direction     string `json:"direction"`
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
}

func TransactionResponseFromDomain(tx domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: tx.TransactionID,
		AccountNo:     tx.AccountNo,
		Amount:        tx.Amount.String(),
		Description:   tx.Description,
		Direction:     string(tx.Direction),
		Status:        string(tx.Status),
		Timestamp:     tx.Timestamp.Format(time.RFC3339Nano),
	}
}

type TransactionPageResponse struct {
	Content       []TransactionResponse `json:"content"`
	PageNumber    int                   `json:"pageNumber"`
	PageSize      int                   `json:"pageSize"`
	TotalElements int                   `json:"totalElements"`
	TotalPages    int                   `json:"totalPages"`
	First         bool                  `json:"first"`
	Last          bool                  `json:"last"`
}

func TransactionPageFromDomain(page domain.PageResponse[domain.Transaction]) TransactionPageResponse {
	content := make([]TransactionResponse, 0, len(page.Content))
	for _, tx := range page.Content {
		content = append(content, TransactionResponseFromDomain(tx))
	}

	return TransactionPageResponse{
		Content:       content,
		PageNumber:    page.PageNumber,
		PageSize:      page.PageSize,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
		First:         page.First,
		Last:          page.Last,
	}
}
