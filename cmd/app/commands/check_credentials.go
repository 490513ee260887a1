package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	settingsDomain "github.com/allisson/coursecatalog/internal/settings/domain"
	settingsUseCase "github.com/allisson/coursecatalog/internal/settings/usecase"
)

// ErrInvalidCredentials is returned when at least one credential failed validation.
var ErrInvalidCredentials = errors.New("credentials are invalid")

// checkResult is the JSON output of check-credentials. Tokens are never echoed.
type checkResult struct {
	Valid  bool                `json:"valid"`
	Space  string              `json:"space"`
	Errors map[string][]string `json:"errors"`
}

// RunCheckCredentials runs the settings validation for input without saving
// anything and prints the field errors in text or JSON format.
func RunCheckCredentials(
	ctx context.Context,
	useCase settingsUseCase.SettingsUseCase,
	logger *slog.Logger,
	out io.Writer,
	input settingsDomain.SubmitInput,
	format string,
) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}

	logger.Info("checking credentials", slog.String("space", input.Space))

	outcome := useCase.Validate(ctx, input)

	var err error
	if format == "json" {
		err = writeJSON(out, checkResult{
			Valid:  outcome.Success,
			Space:  outcome.Settings.Space,
			Errors: outcome.Errors.Map(),
		})
	} else {
		err = outputCheckText(out, outcome)
	}
	if err != nil {
		return err
	}

	if !outcome.Success {
		return ErrInvalidCredentials
	}
	return nil
}

// outputCheckText outputs the outcome in human-readable text format.
func outputCheckText(out io.Writer, outcome *settingsDomain.ValidationOutcome) error {
	if outcome.Success {
		_, err := fmt.Fprintf(out, "Credentials for space %q are valid\n", outcome.Settings.Space)
		return err
	}

	if _, err := fmt.Fprintln(out, "Some of the credentials are invalid:"); err != nil {
		return err
	}
	for _, fieldErr := range outcome.Errors.List() {
		if _, err := fmt.Fprintf(out, "  %s: %s\n", fieldErr.Field, fieldErr.Message); err != nil {
			return err
		}
	}
	return nil
}
