package web

import (
	"net/http"

	"github.com/avolkov/whereis/internal/geo"
)

type regionResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	LatSpan   float64 `json:"latitude_delta"`
	LonSpan   float64 `json:"longitude_delta"`
}

type mapResponse struct {
	Region regionResponse `json:"region"`
	Items  []mapItem      `json:"items"`
}

type mapItem struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// handleMapRegion returns every located item plus the viewport that
// covers them all, for the all-items map screen.
func (s *Server) handleMapRegion(w http.ResponseWriter, r *http.Request) {
	located, err := s.service.ListItemsWithLocations(r.Context())
	if err != nil {
		s.logger.Error("list located items error", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to load map items")
		return
	}

	points := make([]geo.Point, 0, len(located))
	items := make([]mapItem, 0, len(located))
	for _, item := range located {
		points = append(points, geo.Point{Latitude: item.Latitude, Longitude: item.Longitude})
		items = append(items, mapItem{
			ID:        item.ID,
			Name:      item.Name,
			Latitude:  item.Latitude,
			Longitude: item.Longitude,
		})
	}

	region := geo.ComputeRegion(points, geo.DefaultRegion)
	s.writeJSON(w, http.StatusOK, mapResponse{
		Region: regionResponse{
			Latitude:  region.Latitude,
			Longitude: region.Longitude,
			LatSpan:   region.LatSpan,
			LonSpan:   region.LonSpan,
		},
		Items: items,
	})
}
