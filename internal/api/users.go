package api

import (
	"context"
	"fmt"

	"financery/internal/core"
)

func (c *Client) GetAllUsers(ctx context.Context) ([]core.User, error) {
	var users []core.User
	if err := c.get(ctx, "/users/get-all-users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, id int64) (core.User, error) {
	var user core.User
	if err := c.get(ctx, fmt.Sprintf("/users/search-by-id/%d", id), &user); err != nil {
		return core.User{}, err
	}
	return user, nil
}

func (c *Client) CreateUser(ctx context.Context, user core.User) (core.User, error) {
	var created core.User
	if err := c.post(ctx, "/users/create", user, &created); err != nil {
		return core.User{}, err
	}
	return created, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int64, user core.User) (core.User, error) {
	var updated core.User
	if err := c.put(ctx, fmt.Sprintf("/users/update-by-id/%d", id), user, &updated); err != nil {
		return core.User{}, err
	}
	return updated, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.del(ctx, fmt.Sprintf("/users/delete-by-id/%d", id))
}
