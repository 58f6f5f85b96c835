package commands

const (
	HelpFlag      = "help"
	HelpShortFlag = "h"
	HelpUsage     = "display this help and exit"

	VersionFlag         = "version"
	VersionShortFlag    = "V"
	VersionDefaultValue = false
	VersionUsage        = "display version information and exit"

	DebugModeFlag         = "debug"
	DebugModeShortFlag    = "d"
	DebugModeDefaultValue = false
	DebugModeUsage        = "enable debug logging to standard error"

	LocaleFlag         = "locale"
	LocaleShortFlag    = "l"
	LocaleDefaultValue = ""
	LocaleUsage        = "classify using `LOCALE` instead of LC_ALL, LC_MESSAGES and LANG"

	MissingResponseMessage = "You must specify a response to process."
)
