package api

import (
	"context"
	"fmt"

	"financery/internal/core"
)

func (c *Client) GetAllBills(ctx context.Context) ([]core.Bill, error) {
	var bills []core.Bill
	if err := c.get(ctx, "/bills/get-all-bills", &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

func (c *Client) GetUserBills(ctx context.Context, userID int64) ([]core.Bill, error) {
	var bills []core.Bill
	if err := c.get(ctx, fmt.Sprintf("/bills/get-all-user-bills/%d", userID), &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

// GetBillBalance fetches the derived balance of a single bill.
func (c *Client) GetBillBalance(ctx context.Context, billID int64) (float64, error) {
	var out struct {
		Balance float64 `json:"balance"`
	}
	if err := c.get(ctx, fmt.Sprintf("/bills/get-bill-balance/%d", billID), &out); err != nil {
		return 0, err
	}
	return out.Balance, nil
}

func (c *Client) CreateBill(ctx context.Context, bill core.Bill) (core.Bill, error) {
	var created core.Bill
	if err := c.post(ctx, "/bills/create", bill, &created); err != nil {
		return core.Bill{}, err
	}
	return created, nil
}

func (c *Client) UpdateBill(ctx context.Context, id int64, bill core.Bill) (core.Bill, error) {
	var updated core.Bill
	if err := c.put(ctx, fmt.Sprintf("/bills/update-by-id/%d", id), bill, &updated); err != nil {
		return core.Bill{}, err
	}
	return updated, nil
}

func (c *Client) DeleteBill(ctx context.Context, id int64) error {
	return c.del(ctx, fmt.Sprintf("/bills/delete-by-id/%d", id))
}
