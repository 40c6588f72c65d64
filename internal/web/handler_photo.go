package web

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/avolkov/whereis/internal/imaging"
	"github.com/avolkov/whereis/internal/store"
)

const maxPhotoSize = 20 * 1024 * 1024 // 20 MB

// handleUploadPhoto ingests an image for an item: the bytes are
// validated and normalized, stored in the photo store, and the
// resulting URI upserted as the item's photo row.
func (s *Server) handleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	itemID, err := parseID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		s.writeError(w, http.StatusBadRequest, "failed to parse form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.Error("failed to close uploaded file", "error", err)
		}
	}()

	processed, err := imaging.Process(file)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	uri, err := s.photos.Save(r.Context(), bytes.NewReader(processed))
	if err != nil {
		s.logger.Error("save photo error", "item_id", itemID, "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to save photo")
		return
	}

	photo, err := s.service.AttachPhoto(r.Context(), itemID, uri)
	if err != nil {
		// The orphaned file is removed so the store does not
		// accumulate unreferenced photos.
		if derr := s.photos.Delete(r.Context(), uri); derr != nil {
			s.logger.Error("failed to remove orphaned photo", "uri", uri, "error", derr)
		}
		if errors.Is(err, store.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "item not found")
			return
		}
		s.logger.Error("attach photo error", "item_id", itemID, "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to save photo")
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]string{"photo_uri": photo.PhotoURI})
}

func (s *Server) handleGetPhoto(w http.ResponseWriter, r *http.Request) {
	itemID, err := parseID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	detail, err := s.service.GetItem(r.Context(), itemID)
	if err != nil {
		s.logger.Error("get item error", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if detail == nil || detail.Photo == nil {
		s.writeError(w, http.StatusNotFound, "photo not found")
		return
	}

	reader, err := s.photos.Get(r.Context(), detail.Photo.PhotoURI)
	if err != nil {
		s.logger.Error("get photo error", "uri", detail.Photo.PhotoURI, "error", err)
		s.writeError(w, http.StatusNotFound, "photo not found")
		return
	}
	defer func() {
		if err := reader.Close(); err != nil {
			s.logger.Error("failed to close photo reader", "error", err)
		}
	}()

	w.Header().Set("Content-Type", "image/jpeg")
	if _, err := io.Copy(w, reader); err != nil {
		s.logger.Error("failed to write photo", "error", err)
	}
}

func (s *Server) handleDescribePhoto(w http.ResponseWriter, r *http.Request) {
	if s.describer == nil {
		s.writeError(w, http.StatusServiceUnavailable, "photo description is not configured")
		return
	}

	itemID, err := parseID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	detail, err := s.service.GetItem(r.Context(), itemID)
	if err != nil {
		s.logger.Error("get item error", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if detail == nil || detail.Photo == nil {
		s.writeError(w, http.StatusNotFound, "photo not found")
		return
	}

	reader, err := s.photos.Get(r.Context(), detail.Photo.PhotoURI)
	if err != nil {
		s.logger.Error("get photo error", "uri", detail.Photo.PhotoURI, "error", err)
		s.writeError(w, http.StatusNotFound, "photo not found")
		return
	}
	defer func() {
		if err := reader.Close(); err != nil {
			s.logger.Error("failed to close photo reader", "error", err)
		}
	}()

	image, err := io.ReadAll(reader)
	if err != nil {
		s.logger.Error("read photo error", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to read photo")
		return
	}

	description, err := s.describer.Describe(r.Context(), image, "image/jpeg")
	if err != nil {
		s.logger.Error("describe photo error", "item_id", itemID, "error", err)
		s.writeError(w, http.StatusBadGateway, "failed to describe photo")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"description": description})
}
