package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/skillvize/skillvize/internal/extraction"
	"github.com/skillvize/skillvize/internal/llm"
	"github.com/skillvize/skillvize/internal/roadmap"
	"github.com/skillvize/skillvize/internal/skills"
)

// ErrEmailAlreadyExists indicates the email is already registered.
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates a failed login. Deliberately does not
// distinguish unknown email from wrong password.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// HTTPStatus maps a pipeline or auth error to an HTTP status code.
// Extraction and oracle failures map to 502: the upstream completion
// service produced something unusable, and the client may retry.
func HTTPStatus(err error) int {
	var (
		emailExists *ErrEmailAlreadyExists
		badCreds    *ErrInvalidCredentials
		oracleErr   *llm.OracleError
		noPayload   *extraction.NoPayloadFound
		malformed   *extraction.MalformedJSON
		mismatch    *extraction.SchemaMismatch
		storeErr    *roadmap.StoreError
	)

	switch {
	case errors.Is(err, roadmap.ErrEmptySkillSet),
		errors.Is(err, skills.ErrEmptyJobSkills):
		return http.StatusBadRequest
	case errors.Is(err, roadmap.ErrRoadmapNotFound):
		return http.StatusNotFound
	case errors.As(err, &emailExists):
		return http.StatusConflict
	case errors.As(err, &badCreds):
		return http.StatusUnauthorized
	case errors.As(err, &oracleErr):
		return http.StatusBadGateway
	case errors.As(err, &noPayload), errors.As(err, &malformed), errors.As(err, &mismatch):
		return http.StatusBadGateway
	case errors.As(err, &storeErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage returns the caller-facing message for an error. Input
// errors are specific; everything else stays generic, with the
// discriminated kind logged server-side.
func publicMessage(err error) string {
	status := HTTPStatus(err)
	switch {
	case status == http.StatusBadRequest || status == http.StatusNotFound ||
		status == http.StatusConflict || status == http.StatusUnauthorized:
		return err.Error()
	case status == http.StatusBadGateway:
		return "analysis service returned an unusable response, please retry"
	default:
		return "internal server error"
	}
}
