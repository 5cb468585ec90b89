package lingua

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDriver indicates a translation driver name other than "group"
// or "json" in the configuration.
var ErrUnknownDriver = errors.New("lingua: unknown translation driver")

// ErrNoSupportedLocales indicates a configuration whose supported-locale
// entries all normalize to empty strings.
var ErrNoSupportedLocales = errors.New("lingua: no supported locales configured")

// UnsupportedLocaleError is returned by SetLocale when the normalized
// input is absent from the normalized supported-locale set. It carries the
// rejected code and the full supported list; callers made this mistake, so
// it is never silently downgraded.
type UnsupportedLocaleError struct {
	Locale    string
	Supported []string
}

func (e *UnsupportedLocaleError) Error() string {
	return fmt.Sprintf("lingua: unsupported locale %q (supported: %s)",
		e.Locale, strings.Join(e.Supported, ", "))
}
