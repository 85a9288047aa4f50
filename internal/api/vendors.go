package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/vowsync/vowsync/internal/models"
)

// SearchVendors queries the vendor-search proxy. The proxy takes no bearer
// token, and the response is a bare JSON array rather than an enveloped
// object like the other endpoints.
func (c *Client) SearchVendors(ctx context.Context, query, location string) ([]models.Vendor, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("location", location)

	var out []models.Vendor
	if err := c.do(ctx, http.MethodGet, "/search-vendors?"+params.Encode(), false, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
