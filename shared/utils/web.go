package utils

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/itchan-dev/threadboard/shared/api"
	"github.com/itchan-dev/threadboard/shared/errors"
	"github.com/itchan-dev/threadboard/shared/logger"
)

// maxBodySize bounds request bodies, posts are short plain text.
const maxBodySize = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names so messages match what the client sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// WriteJSON encodes v with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("failed to encode response", "error", err)
		WriteErrorAndStatusCode(w, errors.Internal("Internal error"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, api.MessageResponse{Message: message})
}

func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Internal error"

	var e *errors.ErrorWithStatusCode
	if stderrors.As(err, &e) {
		status = e.StatusCode
		message = e.Message
	} else {
		// default error is 500, the cause stays in the log
		logger.Log.Error("unhandled error", "error", err)
	}

	body, _ := json.Marshal(api.ErrorResponse{Error: message})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

func GetIP(r *http.Request) (string, error) {
	//Get IP from the X-REAL-IP header
	ip := r.Header.Get("X-REAL-IP")
	netIP := net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}

	//Get IP from X-FORWARDED-FOR header
	ips := r.Header.Get("X-FORWARDED-FOR")
	splitIps := strings.Split(ips, ",")
	for _, ip := range splitIps {
		ip = strings.TrimSpace(ip)
		netIP := net.ParseIP(ip)
		if netIP != nil {
			return ip, nil
		}
	}

	//Get IP from RemoteAddr
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", err
	}
	netIP = net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}
	return "", fmt.Errorf("no valid ip found")
}

// DecodeValidate reads a JSON or url-encoded form body into body and runs
// its validate tags. Form values are carried over by their json names.
func DecodeValidate(r *http.Request, body any) error {
	if err := Decode(r, body); err != nil {
		return err
	}
	if err := validate.Struct(body); err != nil {
		var fieldErrs validator.ValidationErrors
		if stderrors.As(err, &fieldErrs) {
			var missing, invalid []string
			for _, fe := range fieldErrs {
				if fe.Tag() == "required" {
					missing = append(missing, fe.Field())
				} else {
					invalid = append(invalid, fe.Field())
				}
			}
			var parts []string
			if len(missing) > 0 {
				parts = append(parts, "Required fields missing: "+strings.Join(missing, ", "))
			}
			if len(invalid) > 0 {
				parts = append(parts, "Invalid fields: "+strings.Join(invalid, ", "))
			}
			return errors.Validation(strings.Join(parts, "; "))
		}
		logger.Log.Debug("validation failed", "error", err)
		return errors.Validation("Required fields missing")
	}
	return nil
}

func Decode(r *http.Request, body any) error {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return errors.Validation("Body can't be read")
	}

	if isForm(r) {
		values, err := url.ParseQuery(string(raw))
		if err != nil {
			return errors.Validation("Body is invalid form")
		}
		raw, err = formToJSON(values)
		if err != nil {
			return errors.Internal("Internal error")
		}
	}

	if err := json.Unmarshal(raw, body); err != nil {
		logger.Log.Debug("failed to decode body", "error", err)
		return errors.Validation("Body is invalid json")
	}
	return nil
}

func isForm(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/x-www-form-urlencoded"
}

func formToJSON(values url.Values) ([]byte, error) {
	flat := make(map[string]string, len(values))
	for key := range values {
		flat[key] = values.Get(key)
	}
	return json.Marshal(flat)
}
