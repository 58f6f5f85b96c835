package locale

import (
	"github.com/tarantool/rpmatch/internal/rpmatch/models"
)

const (
	CLocale     = "C"
	POSIXLocale = "POSIX"

	// MaxCopyDepth limits nesting of copy directives in locale definitions.
	MaxCopyDepth = 8
)

// POSIXPatterns are used when no locale specific expressions are available.
var POSIXPatterns = models.Patterns{
	Locale:  CLocale,
	YesExpr: "^[yY]",
	NoExpr:  "^[nN]",
}
