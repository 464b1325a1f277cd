package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fpl-league-hub/internal/platform/logging"
	"github.com/riskibarqy/fpl-league-hub/internal/usecase"
)

type Handler struct {
	leagueService *usecase.LeagueService
	entryService  *usecase.EntryService
	playerService *usecase.PlayerService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	entryService *usecase.EntryService,
	playerService *usecase.PlayerService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService: leagueService,
		entryService:  entryService,
		playerService: playerService,
		logger:        logger,
		validator:     newParamValidator(),
	}
}

// newParamValidator reports fields by their wire name (the param tag) so
// messages read "teamId is required" rather than "TeamID".
func newParamValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("param"); name != "" {
			return name
		}
		return field.Name
	})
	return v
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.NotFound")
	defer span.End()

	writeError(ctx, w, fmt.Errorf("%w: no route for %s %s", usecase.ErrNotFound, r.Method, r.URL.Path))
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	err := h.validator.StructCtx(ctx, payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fmt.Errorf("%w: %s", usecase.ErrInvalidInput, describeFieldError(fieldErrs[0]))
	}
	return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "number":
		return fe.Field() + " must be a positive integer"
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// writeFailure logs server-side failures; client errors are only answered.
func (h *Handler) writeFailure(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	if mapError(ctx, err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, append(args, "error", err)...)
	}
	writeError(ctx, w, err)
}

// parseID converts a digit string already checked by the validator. Empty
// optional params yield zero; overflow is reported as invalid input.
func parseID(name, raw string) (int64, error) {
	return parseDigits(name, raw, 64)
}

func parseInt(name, raw string) (int, error) {
	v, err := parseDigits(name, raw, 32)
	return int(v), err
}

func parseDigits(name, raw string, bits int) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return v, nil
}
