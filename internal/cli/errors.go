package cli

import "fmt"

type unknownRouteError struct {
	raw string
}

func (e unknownRouteError) Error() string {
	return fmt.Sprintf("unknown route: %q", e.raw)
}

func errUnknownRoute(raw string) error {
	return unknownRouteError{raw: raw}
}
