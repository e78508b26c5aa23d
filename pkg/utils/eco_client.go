package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ecotrip/internal/models/request_models"
)

// EcoCallTimeout bounds a single call to the generative API. There is no retry.
const EcoCallTimeout = 30 * time.Second

// EcoSuggestionClient asks a generative-language model for greener
// alternatives to a list of planned activities and returns its raw text.
type EcoSuggestionClient interface {
	SuggestAlternatives(ctx context.Context, destinationDescription string, activities []request_models.ActivityRequest) (string, error)
	Available() bool
	Close() error
}

type ecoClientOptions struct {
	timeout time.Duration
}

type EcoClientOption func(*ecoClientOptions)

// WithCallTimeout overrides EcoCallTimeout.
func WithCallTimeout(d time.Duration) EcoClientOption {
	return func(o *ecoClientOptions) {
		if d > 0 {
			o.timeout = d
		}
	}
}

func applyEcoOptions(opts []EcoClientOption) ecoClientOptions {
	o := ecoClientOptions{timeout: EcoCallTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// UnavailableEcoClient stands in when no provider could be configured.
// Every call fails with ErrEcoServiceUnavailable.
type UnavailableEcoClient struct {
	Reason string
}

func NewUnavailableEcoClient(reason string) *UnavailableEcoClient {
	return &UnavailableEcoClient{Reason: reason}
}

func (u *UnavailableEcoClient) SuggestAlternatives(context.Context, string, []request_models.ActivityRequest) (string, error) {
	return "", fmt.Errorf("%w: %s", ErrEcoServiceUnavailable, u.Reason)
}

func (u *UnavailableEcoClient) Available() bool { return false }

func (u *UnavailableEcoClient) Close() error { return nil }

// BuildEcoPrompt renders the instruction sent to the model.
func BuildEcoPrompt(destinationDescription string, activities []request_models.ActivityRequest) string {
	var activityBuf strings.Builder
	for i, a := range activities {
		if i > 0 {
			activityBuf.WriteString("\n")
		}
		fmt.Fprintf(&activityBuf, "- %s (type: %s)", derefString(a.Name), derefString(a.Type))
	}

	return fmt.Sprintf(`
Tu es un conseiller en voyage éco-responsable.

Destination : %s

Activités prévues par le voyageur :
%s

Pour CHAQUE activité, suggère une alternative plus écologique.

Réponds UNIQUEMENT avec un JSON valide au format suivant (sans balises markdown) :
{
    "suggestions": [
        {
            "activite_originale": "nom exact de l'activité",
            "alternative_eco": "ta suggestion écologique",
            "explication": "pourquoi c'est mieux pour l'environnement",
            "impact_estime": "estimation de réduction d'impact (ex: -50%% CO2)"
        }
    ]
}
`, destinationDescription, activityBuf.String())
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// classifyEcoError separates deadline hits from other transport/API failures.
func classifyEcoError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrEcoServiceTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrEcoServiceFailed, err)
}
