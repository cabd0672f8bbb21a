// Package route parses the SPA's path vocabulary into a typed Route value so
// screen addressing is decided once, at the boundary, instead of by ad hoc
// string matching in every view.
package route

import "strings"

// Screen identifies a top-level view of the dashboard.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenDashboard
	ScreenWorkspace
	ScreenGlossary
	ScreenHelp
	ScreenAbout
)

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenDashboard:
		return "dashboard"
	case ScreenWorkspace:
		return "workspace"
	case ScreenGlossary:
		return "glossary"
	case ScreenHelp:
		return "help"
	case ScreenAbout:
		return "about"
	}
	return "unknown"
}

// Tab is a patient-workspace tab identifier.
type Tab string

const (
	TabDemographics  Tab = "demographics"
	TabMultiModal    Tab = "multiModalData"
	TabVirtualTumor  Tab = "virtualTumor"
	TabSimulation    Tab = "simulation"
	TabFeedback      Tab = "feedback"
	TabReporting     Tab = "reporting"
)

// NormalizeTab maps a raw tab string to a known Tab, defaulting to
// demographics for empty or unrecognized input.
func NormalizeTab(raw string) Tab {
	switch Tab(raw) {
	case TabMultiModal, TabVirtualTumor, TabSimulation, TabFeedback, TabReporting:
		return Tab(raw)
	default:
		return TabDemographics
	}
}

// Route is the parsed form of a dashboard path.
type Route struct {
	Screen    Screen
	PatientID string
	Tab       Tab
}

// Parse resolves a path into a Route. Unknown paths fall back to the
// dashboard; only the presentation layer's session guard decides whether
// that route is actually reachable.
func Parse(path string) Route {
	parts := strings.FieldsFunc(strings.TrimSpace(path), func(r rune) bool { return r == '/' })

	if len(parts) == 0 {
		return Route{Screen: ScreenDashboard}
	}

	switch parts[0] {
	case "login":
		return Route{Screen: ScreenLogin}
	case "dashboard":
		return Route{Screen: ScreenDashboard}
	case "glossary":
		return Route{Screen: ScreenGlossary}
	case "help":
		return Route{Screen: ScreenHelp}
	case "about":
		return Route{Screen: ScreenAbout}
	case "patient":
		if len(parts) < 2 || parts[1] == "" {
			return Route{Screen: ScreenDashboard}
		}
		r := Route{Screen: ScreenWorkspace, PatientID: parts[1], Tab: TabDemographics}
		if len(parts) > 2 {
			r.Tab = NormalizeTab(parts[2])
		}
		return r
	}
	return Route{Screen: ScreenDashboard}
}
