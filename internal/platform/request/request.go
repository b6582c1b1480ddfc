// Copyright (c) 2026 GuestRadar. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/guestradar/guestradar/internal/platform/apperr"
	"github.com/guestradar/guestradar/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntID retrieves a named URL parameter and parses it as a positive integer
record ID.

A non-numeric or non-positive value can never address a stored record, so it
maps to a 404 rather than a validation error.
*/
func IntID(request *http.Request, name string) (int, error) {
	raw := chi.URLParam(request, name)

	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, apperr.NotFound("Resource")
	}

	return id, nil
}
