package usecase

import (
	"context"
	"log/slog"
	"net/http"

	validation "github.com/jellydator/validation"
	"golang.org/x/sync/errgroup"

	"github.com/allisson/coursecatalog/internal/contentful"
	apperrors "github.com/allisson/coursecatalog/internal/errors"
	settingsDomain "github.com/allisson/coursecatalog/internal/settings/domain"
	appValidation "github.com/allisson/coursecatalog/internal/validation"
)

// settingsUseCase implements SettingsUseCase.
type settingsUseCase struct {
	prober CredentialProber
	spaces SpaceReader
	logger *slog.Logger
}

// NewSettingsUseCase creates a SettingsUseCase. spaces may be nil, in which
// case no space is ever reported as connected.
func NewSettingsUseCase(prober CredentialProber, spaces SpaceReader, logger *slog.Logger) SettingsUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &settingsUseCase{
		prober: prober,
		spaces: spaces,
		logger: logger,
	}
}

// Validate runs the required checks and both credential probes.
func (s *settingsUseCase) Validate(
	ctx context.Context,
	input settingsDomain.SubmitInput,
) *settingsDomain.ValidationOutcome {
	settings := input.CredentialSet()

	errs := &settingsDomain.FieldErrors{}
	errs.Append(requiredErrors(settings)...)

	deliveryChecked := settings.Space != "" && settings.CDA != ""
	previewChecked := settings.Space != "" && settings.CPA != ""

	// Probes never fail the group; each records its own field errors.
	var deliveryErrs, previewErrs []settingsDomain.FieldError
	var g errgroup.Group
	if deliveryChecked {
		g.Go(func() error {
			deliveryErrs = s.probeDelivery(ctx, settings)
			return nil
		})
	}
	if previewChecked {
		g.Go(func() error {
			previewErrs = s.probePreview(ctx, settings, deliveryChecked)
			return nil
		})
	}
	_ = g.Wait()

	errs.Append(deliveryErrs...)
	errs.Append(previewErrs...)

	return settingsDomain.NewOutcome(settings, errs)
}

// ConnectedSpace resolves the connected space for display only.
func (s *settingsUseCase) ConnectedSpace(ctx context.Context) *contentful.Space {
	if s.spaces == nil {
		return nil
	}
	space, err := s.spaces.Space(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to resolve connected space", slog.Any("error", err))
		return nil
	}
	return space
}

// requiredErrors reports every empty field in space, cda, cpa order.
func requiredErrors(settings settingsDomain.CredentialSet) []settingsDomain.FieldError {
	values := map[settingsDomain.Field]string{
		settingsDomain.FieldSpace: settings.Space,
		settingsDomain.FieldCDA:   settings.CDA,
		settingsDomain.FieldCPA:   settings.CPA,
	}

	var errs []settingsDomain.FieldError
	for _, field := range settingsDomain.RequiredFields {
		err := validation.Validate(values[field], appValidation.Required(settingsDomain.MessageRequired))
		if err != nil {
			errs = append(errs, settingsDomain.FieldError{Field: field, Message: appValidation.Message(err)})
		}
	}
	return errs
}

func (s *settingsUseCase) probeDelivery(
	ctx context.Context,
	settings settingsDomain.CredentialSet,
) []settingsDomain.FieldError {
	_, err := s.prober.Probe(ctx, contentful.APIDelivery, settings.Space, settings.CDA)
	if err == nil {
		return nil
	}
	s.logProbeFailure(ctx, contentful.APIDelivery, err)

	switch contentful.StatusCode(err) {
	case http.StatusUnauthorized:
		return fieldError(settingsDomain.FieldCDA, settingsDomain.MessageDeliveryKeyInvalid)
	case http.StatusNotFound:
		return fieldError(settingsDomain.FieldSpace, settingsDomain.MessageSpaceNotFound)
	default:
		return fieldError(settingsDomain.FieldCDA, unexpectedMessage(err))
	}
}

// probePreview checks the preview token. A 404 only means the space is
// missing, which the delivery probe already reports when deliveryChecked.
func (s *settingsUseCase) probePreview(
	ctx context.Context,
	settings settingsDomain.CredentialSet,
	deliveryChecked bool,
) []settingsDomain.FieldError {
	_, err := s.prober.Probe(ctx, contentful.APIPreview, settings.Space, settings.CPA)
	if err == nil {
		return nil
	}
	s.logProbeFailure(ctx, contentful.APIPreview, err)

	switch contentful.StatusCode(err) {
	case http.StatusUnauthorized:
		return fieldError(settingsDomain.FieldCPA, settingsDomain.MessagePreviewKeyInvalid)
	case http.StatusNotFound:
		if deliveryChecked {
			return nil
		}
		return fieldError(settingsDomain.FieldSpace, settingsDomain.MessageSpaceNotFound)
	default:
		return fieldError(settingsDomain.FieldCPA, unexpectedMessage(err))
	}
}

func (s *settingsUseCase) logProbeFailure(ctx context.Context, api contentful.API, err error) {
	s.logger.DebugContext(ctx, "credential probe failed",
		slog.String("api", api.String()),
		slog.Int("status_code", contentful.StatusCode(err)),
		slog.Any("error", err),
	)
}

func fieldError(field settingsDomain.Field, message string) []settingsDomain.FieldError {
	return []settingsDomain.FieldError{{Field: field, Message: message}}
}

// unexpectedMessage prefixes the remote message, falling back to the error
// text when the failure carries no remote message.
func unexpectedMessage(err error) string {
	var apiErr *contentful.APIError
	if apperrors.As(err, &apiErr) && apiErr.Message != "" {
		return settingsDomain.MessageUnexpectedPrefix + apiErr.Message
	}
	return settingsDomain.MessageUnexpectedPrefix + err.Error()
}
