// Package handlers – input validation helpers.
//
// Validation happens entirely at the transport boundary, before any store
// access, and always reports every failing field (path + message) rather
// than stopping at the first violation. JSON bodies are validated through
// Gin's binding layer (go-playground/validator) with two custom tags
// registered below; path and query parameters share the same rules via the
// plain helpers at the bottom of this file.
package handlers

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// uuidRe accepts version 1–5 UUIDs with an RFC 4122 variant, e.g.
// 11111111-1111-4111-8111-111111111111. Case-insensitive.
var uuidRe = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

// utcTimestampRe accepts ISO 8601 UTC timestamps with a literal Z suffix and
// optional fractional seconds, e.g. 2025-10-06T10:00:00Z.
var utcTimestampRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?Z$`)

// Validation messages, kept stable because clients display them.
const (
	msgInvalidUUID    = "Invalid UUID format"
	msgEmptyDevice    = "Device name must not be empty"
	msgBadDuration    = "Playback duration must be greater than 0"
	msgBadPlayedAt    = "playedAt must be an ISO 8601 UTC timestamp (e.g. 2025-10-06T10:00:00Z)"
	msgBadLimit       = "limit must be an integer between 1 and 100"
	msgBadOffset      = "offset must be an integer >= 0"
	msgBadFromDate    = "Invalid 'from' date format"
	msgBadToDate      = "Invalid 'to' date format"
	msgFromNotearlier = "'from' must be earlier than 'to'"
	msgMalformedBody  = "Malformed JSON body"
)

// init wires the custom binding tags into Gin's validator engine and makes
// validator report fields by their JSON names so error paths match the wire
// format.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("uuid_rfc4122", func(fl validator.FieldLevel) bool {
		return uuidRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("utc_timestamp", func(fl validator.FieldLevel) bool {
		return utcTimestampRe.MatchString(fl.Field().String())
	})
}

// bindErrors converts a ShouldBindJSON error into per-field errors. Type
// mismatches and syntax errors in the body collapse into a single
// body-level entry; validator failures are enumerated field by field.
func bindErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Path: "body", Message: msgMalformedBody}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Path: fe.Field(), Message: fieldMessage(fe)})
	}
	return out
}

// fieldMessage selects the stable message for a failed field. Messages are
// keyed by field rather than by tag so required and format violations read
// the same to clients.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "eventId", "userId", "contentId":
		return msgInvalidUUID
	case "device":
		return msgEmptyDevice
	case "playbackDuration":
		return msgBadDuration
	case "playedAt":
		return msgBadPlayedAt
	}
	return "Invalid value"
}

// validUUID reports whether s is an acceptable UUID for path parameters.
func validUUID(s string) bool { return uuidRe.MatchString(s) }

// parseUTCTimestamp parses a playedAt value already vetted by
// utc_timestamp. The regexp guarantees RFC 3339 shape, so a parse failure
// here would indicate an impossible calendar date (e.g. month 13).
func parseUTCTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
