package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/avolkov/whereis/internal/domain"
	"github.com/avolkov/whereis/internal/service"
	"github.com/avolkov/whereis/internal/store"
)

type itemRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PhotoURI    *string  `json:"photo_uri,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

type itemResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	PhotoURI    *string   `json:"photo_uri,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
}

func itemToResponse(item *domain.Item) itemResponse {
	return itemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
	}
}

func detailToResponse(detail *service.ItemDetail) itemResponse {
	resp := itemToResponse(detail.Item)
	if detail.Photo != nil {
		resp.PhotoURI = &detail.Photo.PhotoURI
	}
	if detail.Location != nil {
		resp.Latitude = &detail.Location.Latitude
		resp.Longitude = &detail.Location.Longitude
	}
	return resp
}

func (in itemRequest) input() service.ItemInput {
	return service.ItemInput{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		PhotoURI:    in.PhotoURI,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
	}
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.service.ListItemsWithPhotos(r.Context())
	if err != nil {
		s.logger.Error("list items error", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to list items")
		return
	}

	resp := make([]itemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, itemResponse{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			CreatedAt:   item.CreatedAt,
			PhotoURI:    item.PhotoURI,
		})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := s.service.CreateItem(r.Context(), req.input())
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("create item error", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to save the item")
		return
	}

	s.writeJSON(w, http.StatusCreated, itemToResponse(item))
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	detail, err := s.service.GetItem(r.Context(), id)
	if err != nil {
		s.logger.Error("get item error", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if detail == nil {
		s.writeError(w, http.StatusNotFound, "item not found")
		return
	}

	s.writeJSON(w, http.StatusOK, detailToResponse(detail))
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := s.service.UpdateItem(r.Context(), id, req.input())
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "item not found")
			return
		}
		s.logger.Error("update item error", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to save the item")
		return
	}

	s.writeJSON(w, http.StatusOK, itemToResponse(item))
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := s.service.DeleteItem(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "item not found")
			return
		}
		s.logger.Error("delete item error", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSearchItems(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	var items []*domain.Item
	if query != "" {
		var err error
		items, err = s.service.SearchItems(r.Context(), query)
		if err != nil {
			s.logger.Error("search error", "error", err)
			s.writeError(w, http.StatusInternalServerError, "search failed")
			return
		}
	}

	resp := make([]itemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, itemToResponse(item))
	}
	s.writeJSON(w, http.StatusOK, resp)
}
