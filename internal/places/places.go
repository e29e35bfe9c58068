// Package places finds police stations near shared coordinates through the
// Google Maps Places API.
package places

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"
	"googlemaps.github.io/maps"

	"github.com/ravitejak/legal-assist-bot/internal/models"
)

const maxStations = 3

type Client struct {
	gm     *maps.Client
	radius uint
	logger *zap.Logger
}

func NewClient(apiKey string, radiusMeters uint, logger *zap.Logger) (*Client, error) {
	gm, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}

	return &Client{
		gm:     gm,
		radius: radiusMeters,
		logger: logger,
	}, nil
}

// FindNearbyStations returns up to three police stations around the given
// coordinates, nearest first as ranked by the Places API. A station without a
// reachable phone number is still returned with "Not available".
func (c *Client) FindNearbyStations(ctx context.Context, lat, lon float64) ([]models.PoliceStation, error) {
	resp, err := c.gm.NearbySearch(ctx, &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: lat, Lng: lon},
		Radius:   c.radius,
		Type:     maps.PlaceTypePolice,
		Keyword:  "police station",
	})
	if err != nil {
		return nil, fmt.Errorf("nearby search failed: %w", err)
	}

	results := resp.Results
	if len(results) > maxStations {
		results = results[:maxStations]
	}

	stations := make([]models.PoliceStation, 0, len(results))
	for _, r := range results {
		name := r.Name
		if name == "" {
			name = "Unknown Police Station"
		}
		address := r.Vicinity
		if address == "" {
			address = "Address not available"
		}

		stations = append(stations, models.PoliceStation{
			Name:     name,
			Address:  address,
			Phone:    c.phoneNumber(ctx, r.PlaceID),
			Type:     "Police Station",
			Lat:      r.Geometry.Location.Lat,
			Lon:      r.Geometry.Location.Lng,
			Distance: Distance(lat, lon, r.Geometry.Location.Lat, r.Geometry.Location.Lng),
		})
	}

	return stations, nil
}

func (c *Client) phoneNumber(ctx context.Context, placeID string) string {
	detail, err := c.gm.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID: placeID,
		Fields: []maps.PlaceDetailsFieldMask{
			maps.PlaceDetailsFieldMaskFormattedPhoneNumber,
			maps.PlaceDetailsFieldMaskInternationalPhoneNumber,
		},
	})
	if err != nil {
		c.logger.Warn("Failed to get place details",
			zap.Error(err),
			zap.String("place_id", placeID))
		return "Not available"
	}

	if detail.FormattedPhoneNumber != "" {
		return detail.FormattedPhoneNumber
	}
	if detail.InternationalPhoneNumber != "" {
		return detail.InternationalPhoneNumber
	}
	return "Not available"
}

// Distance returns the haversine distance between two coordinates in
// kilometers, rounded to two decimals.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371

	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusKm*c*100) / 100
}
