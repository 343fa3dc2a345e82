package assist

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxContentBytes bounds a single content or message field.
const MaxContentBytes = 32 * 1024

// MaxHistoryTurns bounds the number of turns accepted per request.
const MaxHistoryTurns = 100

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("chatrole", validateChatRole)
	_ = validate.RegisterValidation("maxbytes", validateMaxBytes)
	_ = validate.RegisterValidation("notblank", validateNotBlank)
}

// Roles are matched after trim+lowercase, so "User" passes and gets
// normalized later during sanitization. Anything outside the enum,
// "system" included, is rejected here.
func validateChatRole(fl validator.FieldLevel) bool {
	role := strings.ToLower(strings.TrimSpace(fl.Field().String()))
	return role == string(RoleUser) || role == string(RoleAssistant)
}

// Byte length, not rune count: the limit exists to bound payload size.
func validateMaxBytes(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= MaxContentBytes
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ValidateTurnRequest checks the request shape before any processing.
// Pure: no side effects, returns nil or the first violation found.
func ValidateTurnRequest(req *TurnRequest) *ValidationError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &ValidationError{
			Field:  fieldPath(verrs[0]),
			Reason: reasonFor(verrs[0]),
		}
	}

	return &ValidationError{Field: "request", Reason: "is malformed"}
}

// fieldPath turns the validator namespace ("TurnRequest.History[3].Role")
// into the JSON-ish path callers see ("history[3].role").
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i != -1 {
		ns = ns[i+1:]
	}
	return strings.ToLower(ns)
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required and must not be empty"
	case "chatrole":
		return `must be "user" or "assistant"`
	case "maxbytes":
		return "exceeds the maximum allowed size"
	case "max":
		return "has too many items"
	default:
		return "is invalid"
	}
}
