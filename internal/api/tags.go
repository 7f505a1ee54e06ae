package api

import (
	"context"
	"fmt"

	"financery/internal/core"
)

func (c *Client) GetAllTags(ctx context.Context) ([]core.Tag, error) {
	var tags []core.Tag
	if err := c.get(ctx, "/tags/get-all-tags", &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (c *Client) GetUserTags(ctx context.Context, userID int64) ([]core.Tag, error) {
	var tags []core.Tag
	if err := c.get(ctx, fmt.Sprintf("/tags/get-all-user-tags/%d", userID), &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (c *Client) CreateTag(ctx context.Context, tag core.Tag) (core.Tag, error) {
	var created core.Tag
	if err := c.post(ctx, "/tags/create", tag, &created); err != nil {
		return core.Tag{}, err
	}
	return created, nil
}

func (c *Client) UpdateTag(ctx context.Context, id int64, tag core.Tag) (core.Tag, error) {
	var updated core.Tag
	if err := c.put(ctx, fmt.Sprintf("/tags/update-by-id/%d", id), tag, &updated); err != nil {
		return core.Tag{}, err
	}
	return updated, nil
}

func (c *Client) DeleteTag(ctx context.Context, id int64) error {
	return c.del(ctx, fmt.Sprintf("/tags/delete-by-id/%d", id))
}
