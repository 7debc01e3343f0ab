package nav

import (
	"net/url"
	"strings"
)

// Screen identifies a navigation destination.
type Screen int

const (
	ScreenUnknown Screen = iota
	ScreenEntry
	ScreenResult
)

const (
	routeEntry  = "entry"
	routeResult = "result"

	// ParamListData is the single parameter the result screen reads.
	ParamListData = "listData"
)

func (s Screen) String() string {
	switch s {
	case ScreenEntry:
		return routeEntry
	case ScreenResult:
		return routeResult
	default:
		return "unknown"
	}
}

// Route is a resolved destination plus its query-style parameters.
type Route struct {
	Screen Screen
	Params url.Values
}

// Param returns the named parameter, or "" when it is absent.
func (r Route) Param(name string) string {
	if r.Params == nil {
		return ""
	}
	return r.Params.Get(name)
}

// Payload is the result screen's listData parameter.
func (r Route) Payload() string {
	return r.Param(ParamListData)
}

func (r Route) String() string {
	s := r.Screen.String()
	if len(r.Params) == 0 {
		return s
	}
	return s + "/?" + r.Params.Encode()
}

// ResultRoute encodes payload as the listData parameter of the result route.
func ResultRoute(payload string) string {
	return routeResult + "/?" + url.Values{ParamListData: {payload}}.Encode()
}

// EntryRoute is the route of the initial screen.
func EntryRoute() string {
	return routeEntry
}

// ParseRoute resolves a raw route like "result/?listData=...".
//
// It never fails: unknown names resolve to ScreenUnknown and malformed query
// text keeps whatever pairs could be decoded.
func ParseRoute(raw string) Route {
	raw = strings.TrimSpace(raw)
	path, query, _ := strings.Cut(raw, "?")
	name := strings.Trim(path, "/")

	r := Route{Screen: screenByName(name)}
	if query != "" {
		// ParseQuery returns the pairs it managed to decode alongside the
		// first error; those are good enough for display.
		params, _ := url.ParseQuery(query)
		if len(params) > 0 {
			r.Params = params
		}
	}
	return r
}

func screenByName(name string) Screen {
	switch strings.ToLower(name) {
	case routeEntry, "":
		return ScreenEntry
	case routeResult:
		return ScreenResult
	default:
		return ScreenUnknown
	}
}
