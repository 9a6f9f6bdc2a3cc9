package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/itchan-dev/threadboard/shared/errors"
)

// parseIntParam parses an integer parameter from a string and returns a meaningful error
func parseIntParam(param string, paramName string) (int, error) {
	val, err := strconv.Atoi(param)
	if err != nil {
		return 0, errors.Validation(fmt.Sprintf("invalid %s: must be an integer", paramName))
	}
	return val, nil
}

// optionalIntQuery returns 0 when the query parameter is absent.
func optionalIntQuery(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return parseIntParam(raw, name)
}
