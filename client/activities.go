package client

import (
	"context"
	"fmt"
)

// ListActivities retrieves every activity.
func (c *Client) ListActivities(ctx context.Context) ([]Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []Activity
	if _, err := c.rest.R().SetContext(ctx).SetResult(&out).Get("/activities"); err != nil {
		return nil, err
	}
	return out, nil
}

// GetActivity retrieves a single activity by id.
func (c *Client) GetActivity(ctx context.Context, id string) (*Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out Activity
	if _, err := c.rest.R().SetContext(ctx).SetResult(&out).Get(fmt.Sprintf("/activities/%s", id)); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateActivity persists a new activity. The caller assigns the id.
func (c *Client) CreateActivity(ctx context.Context, a Activity) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := c.rest.R().SetContext(ctx).SetBody(a).Post("/activities")
	return err
}

// UpdateActivity replaces the stored record wholesale at a.ID.
func (c *Client) UpdateActivity(ctx context.Context, a Activity) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := c.rest.R().SetContext(ctx).SetBody(a).Put(fmt.Sprintf("/activities/%s", a.ID))
	return err
}

// DeleteActivity removes an activity by id.
func (c *Client) DeleteActivity(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := c.rest.R().SetContext(ctx).Delete(fmt.Sprintf("/activities/%s", id))
	return err
}
