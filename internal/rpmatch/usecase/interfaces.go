package usecase

import (
	"github.com/tarantool/rpmatch/internal/rpmatch/models"
)

// Classifier interface implementation should decide whether response is affirmative or negative.
type Classifier interface {
	// Classify should return verdict for response under the active locale.
	Classify(response string) models.Verdict
	// Patterns should return expressions the classifier matches against.
	Patterns() models.Patterns
}
