package draft

import (
	"context"
	"errors"
)

// Draft keys carried across wizard steps. Each step only ever sees the keys
// written by the steps before it.
const (
	KeyProductData      = "product_data"
	KeyProblems         = "problems"
	KeySelectedProblem  = "selected_problem"
	KeyPatternInterrupt = "pattern_interrupt"
	KeyPreviewResults   = "preview_results"
	KeyWizardCompleted  = "wizard_completed"
)

// ErrMissingKey is returned by Load when a wizard step's upstream state is
// absent; callers must redirect the user back to the first step.
var ErrMissingKey = errors.New("draft key not found")

// Store persists wizard state between steps, scoped per browser session.
// Values are overwritten idempotently on every save.
type Store interface {
	Save(ctx context.Context, sessionID, key string, value any) error
	Load(ctx context.Context, sessionID, key string, dest any) error
	Delete(ctx context.Context, sessionID, key string) error
}
