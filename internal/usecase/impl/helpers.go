package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "teka/internal/delivery/context"
	"teka/internal/domain/entity"
	domainerrors "teka/internal/domain/errors"
	"teka/internal/domain/service"
	"teka/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var inputValidator = validator.New(validator.WithRequiredStructEnabled())

// validateInput runs the struct tags of input and maps failures to ErrValidationFailed.
func validateInput(input any) error {
	err := inputValidator.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			fields = append(fields, fieldErr.Field()+" ("+fieldErr.Tag()+")")
		}

		return domainerrors.ErrValidationFailed.WithDetails("invalid fields: " + strings.Join(fields, ", "))
	}

	return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
}

// requirePrincipal rejects anonymous callers.
func requirePrincipal(principal *entity.Principal) error {
	if principal == nil || principal.ID == uuid.Nil {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return nil
}

// newID returns a time-ordered identifier, falling back to a random one.
func newID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return id
}

// publishEvent stamps the request ID and publishes event. Failures are logged only.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.MarketplaceEvent) {
	if publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish marketplace event",
			slog.String("type", event.Type),
			slog.Any("error", err),
		)
	}
}
