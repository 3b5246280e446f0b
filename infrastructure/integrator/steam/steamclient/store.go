package steamclient

import (
	"context"
	"net/url"

	steamdomain "github.com/vfg2006/publisher-dashboard-api/infrastructure/integrator/steam/domain"
)

func (c *SteamClient) GetNumberOfCurrentPlayers(ctx context.Context, appID string) (*steamdomain.PlayerCountResponse, error) {
	query := url.Values{}
	query.Set("appid", appID)

	var response steamdomain.PlayerCountResponse
	if err := c.getJSON(ctx, c.cfg.APIURL, "/ISteamUserStats/GetNumberOfCurrentPlayers/v1/", query, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *SteamClient) GetAppReviews(ctx context.Context, appID string, params url.Values) (*steamdomain.AppReviewsResponse, error) {
	query := url.Values{}
	query.Set("json", "1")
	query.Set("language", "all")
	for key, values := range params {
		for _, value := range values {
			query.Add(key, value)
		}
	}

	var response steamdomain.AppReviewsResponse
	if err := c.getJSON(ctx, c.cfg.StoreURL, "/appreviews/"+url.PathEscape(appID), query, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *SteamClient) GetAppDetails(ctx context.Context, appID string) (steamdomain.AppDetailsResponse, error) {
	query := url.Values{}
	query.Set("appids", appID)

	response := steamdomain.AppDetailsResponse{}
	if err := c.getJSON(ctx, c.cfg.StoreURL, "/api/appdetails", query, &response); err != nil {
		return nil, err
	}

	return response, nil
}
