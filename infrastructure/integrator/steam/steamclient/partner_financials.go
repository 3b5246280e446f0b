package steamclient

import (
	"context"
	"net/url"

	steamdomain "github.com/vfg2006/publisher-dashboard-api/infrastructure/integrator/steam/domain"
)

const partnerFinancialsPath = "/IPartnerFinancialsService"

func (c *SteamClient) GetChangedDatesForPartner(ctx context.Context, highwatermark string) (*steamdomain.ChangedDatesResponse, error) {
	query := url.Values{}
	query.Set("key", c.cfg.FinancialAPIKey)
	query.Set("highwatermark", highwatermark)

	var response steamdomain.ChangedDatesResponse
	err := c.getJSON(ctx, c.cfg.PartnerURL, partnerFinancialsPath+"/GetChangedDatesForPartner/v001/", query, &response)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *SteamClient) GetDetailedSales(ctx context.Context, date string, highwatermarkID string) (*steamdomain.DetailedSalesResponse, error) {
	query := url.Values{}
	query.Set("key", c.cfg.FinancialAPIKey)
	query.Set("date", date)
	query.Set("highwatermark_id", highwatermarkID)

	var response steamdomain.DetailedSalesResponse
	err := c.getJSON(ctx, c.cfg.PartnerURL, partnerFinancialsPath+"/GetDetailedSales/v001/", query, &response)
	if err != nil {
		return nil, err
	}

	return &response, nil
}
