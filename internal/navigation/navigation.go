// Package navigation holds the routed app shell: the fixed bottom tabs,
// path to page resolution and the auth gate around them.
package navigation

// View is the top-level screen the client renders
type View string

const (
	ViewAuth View = "auth"
	ViewApp  View = "app"
)

// Page identifies the content page inside the app shell
type Page string

const (
	PageIndex            Page = "index"
	PageDashboard        Page = "dashboard"
	PageRecommendations  Page = "recommendations"
	PageDiseaseDetection Page = "disease-detection"
	PageProfile          Page = "profile"
	PageNotFound         Page = "not-found"
)

// IndexPath redirects to HomePath once a user is signed in
const (
	IndexPath = "/"
	HomePath  = "/dashboard"
)

// Tab is one entry of the bottom navigation bar
type Tab struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Path  string `json:"path"`
	Page  Page   `json:"page"`
}

// TabState is a tab as rendered for a given path
type TabState struct {
	Tab
	Active bool `json:"active"`
}

var tabs = []Tab{
	{ID: "home", Label: "Home", Icon: "home", Path: "/dashboard", Page: PageDashboard},
	{ID: "recommendations", Label: "Crops", Icon: "lightbulb", Path: "/recommendations", Page: PageRecommendations},
	{ID: "disease", Label: "Disease", Icon: "camera", Path: "/disease-detection", Page: PageDiseaseDetection},
	{ID: "profile", Label: "Profile", Icon: "user", Path: "/profile", Page: PageProfile},
}

// Tabs returns the bottom navigation tabs in display order
func Tabs() []Tab {
	out := make([]Tab, len(tabs))
	copy(out, tabs)
	return out
}

// ActiveTab returns the tab whose path equals path exactly.
// Nested paths such as /profile/edit highlight nothing.
func ActiveTab(path string) (Tab, bool) {
	for _, t := range tabs {
		if t.Path == path {
			return t, true
		}
	}
	return Tab{}, false
}

// Route is the outcome of resolving a path
type Route struct {
	Page     Page   `json:"page"`
	Redirect string `json:"redirect,omitempty"`
}

// Resolve maps a path to its page. Only the index and the four tab paths exist.
func Resolve(path string) Route {
	if path == "" || path == IndexPath {
		return Route{Page: PageIndex, Redirect: HomePath}
	}
	if t, ok := ActiveTab(path); ok {
		return Route{Page: t.Page}
	}
	return Route{Page: PageNotFound}
}

// Shell is what the client renders for a path. Signed-out users only get the auth view.
type Shell struct {
	View     View       `json:"view"`
	Path     string     `json:"path,omitempty"`
	Page     Page       `json:"page,omitempty"`
	Redirect string     `json:"redirect,omitempty"`
	Tabs     []TabState `json:"tabs,omitempty"`
}

// BuildShell applies the auth gate and then the router
func BuildShell(path string, authenticated bool) Shell {
	if !authenticated {
		return Shell{View: ViewAuth}
	}
	if path == "" {
		path = IndexPath
	}

	route := Resolve(path)
	states := make([]TabState, len(tabs))
	for i, t := range tabs {
		states[i] = TabState{Tab: t, Active: t.Path == path}
	}

	return Shell{
		View:     ViewApp,
		Path:     path,
		Page:     route.Page,
		Redirect: route.Redirect,
		Tabs:     states,
	}
}
