package httpapi

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/platefeed/server/internal/errs"
)

// handleCreateFood accepts a multipart form with name, description and a
// "video" file part from an authenticated food partner.
func (s *Server) handleCreateFood(w http.ResponseWriter, r *http.Request) {
	partner, ok := identityFromCtx(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "User not authorised.")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadSize)
	if err := r.ParseMultipartForm(s.maxUploadSize); err != nil {
		writeMessage(w, http.StatusBadRequest, "All fields are required.")
		return
	}
	file, header, err := r.FormFile("video")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "All fields are required.")
		return
	}
	defer file.Close()

	it, err := s.foods.Create(r.Context(), partner.ID,
		r.FormValue("name"), r.FormValue("description"),
		header.Header.Get("Content-Type"), file)
	if err != nil {
		if errors.Is(err, errs.ErrValidation) {
			writeMessage(w, http.StatusBadRequest, "All fields are required.")
			return
		}
		s.log.Error("create food", zap.String("partner", partner.ID.String()), zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	writeJSON(w, http.StatusCreated, createFoodResponse{
		Message: "Food Item created Successfully.",
		Food:    toFoodDTO(it),
	})
}

// handleListFood returns the whole catalog to an authenticated user.
func (s *Server) handleListFood(w http.ResponseWriter, r *http.Request) {
	items, err := s.foods.List(r.Context())
	if err != nil {
		s.log.Error("list food", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	dtos := make([]foodDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, toFoodDTO(&items[i]))
	}
	writeJSON(w, http.StatusOK, listFoodResponse{
		Message:   "Food items fetched successfully",
		FoodItems: dtos,
	})
}
