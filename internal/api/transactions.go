package api

import (
	"context"
	"fmt"

	"financery/internal/core"
)

// TransactionRequest is the mutation payload for create and update.
// Amount is always the non-negative magnitude; direction is carried by
// Type. Date is in wire format, DD.MM.YYYY.
type TransactionRequest struct {
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Type        bool    `json:"type"`
	UserID      int64   `json:"userId"`
	BillID      int64   `json:"billId"`
	TagIDs      []int64 `json:"tagIds"`
}

func (c *Client) GetAllTransactions(ctx context.Context) ([]core.Transaction, error) {
	var txs []core.Transaction
	if err := c.get(ctx, "/transactions/get-all-transactions", &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (c *Client) GetUserTransactions(ctx context.Context, userID int64) ([]core.Transaction, error) {
	var txs []core.Transaction
	if err := c.get(ctx, fmt.Sprintf("/transactions/get-all-user-transactions/%d", userID), &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (c *Client) GetBillTransactions(ctx context.Context, billID int64) ([]core.Transaction, error) {
	var txs []core.Transaction
	if err := c.get(ctx, fmt.Sprintf("/transactions/get-all-bill-transactions/%d", billID), &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (c *Client) CreateTransaction(ctx context.Context, req TransactionRequest) (core.Transaction, error) {
	var created core.Transaction
	if err := c.post(ctx, "/transactions/create", req, &created); err != nil {
		return core.Transaction{}, err
	}
	return created, nil
}

func (c *Client) UpdateTransaction(ctx context.Context, id int64, req TransactionRequest) (core.Transaction, error) {
	var updated core.Transaction
	if err := c.put(ctx, fmt.Sprintf("/transactions/update-by-id/%d", id), req, &updated); err != nil {
		return core.Transaction{}, err
	}
	return updated, nil
}

func (c *Client) DeleteTransaction(ctx context.Context, id int64) error {
	return c.del(ctx, fmt.Sprintf("/transactions/delete-by-id/%d", id))
}
