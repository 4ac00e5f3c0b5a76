package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxRequestBodyBytes bounds the JSON body of a domain write.
const MaxRequestBodyBytes = 1 << 20

var errBodyTooLarge = fmt.Errorf("request body exceeds %d bytes", MaxRequestBodyBytes)

// WriteJSON writes data as a JSON response with statusCode. When data cannot
// be encoded the client gets a 500 instead.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) error {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return fmt.Errorf("encode response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, err = w.Write(body)
	return err
}

// DecodeJSON decodes the request body into dst. Unknown fields, trailing
// data and bodies over [MaxRequestBodyBytes] are rejected.
func DecodeJSON(r *http.Request, dst any) error {
	limited := &io.LimitedReader{R: r.Body, N: MaxRequestBodyBytes + 1}
	dec := json.NewDecoder(limited)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if limited.N <= 0 {
		return errBodyTooLarge
	}
	if err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	if dec.More() {
		return errors.New("decode request body: unexpected trailing data")
	}
	return nil
}
