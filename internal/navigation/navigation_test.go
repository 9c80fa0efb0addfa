package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildShellSignedOut(t *testing.T) {
	for _, path := range []string{"", "/", "/dashboard", "/profile", "/nowhere"} {
		shell := BuildShell(path, false)
		assert.Equal(t, ViewAuth, shell.View, path)
		assert.Empty(t, shell.Tabs)
		assert.Empty(t, shell.Page)
	}
}

func TestBuildShellHighlightsExactlyOneTab(t *testing.T) {
	for _, tab := range Tabs() {
		t.Run(tab.ID, func(t *testing.T) {
			shell := BuildShell(tab.Path, true)
			assert.Equal(t, ViewApp, shell.View)
			assert.Equal(t, tab.Page, shell.Page)
			assert.Empty(t, shell.Redirect)
			require.Len(t, shell.Tabs, 4)

			active := 0
			for _, st := range shell.Tabs {
				if st.Active {
					active++
					assert.Equal(t, tab.ID, st.ID)
				}
			}
			assert.Equal(t, 1, active)
		})
	}
}

func TestBuildShellIndexRedirects(t *testing.T) {
	shell := BuildShell("/", true)
	assert.Equal(t, PageIndex, shell.Page)
	assert.Equal(t, "/dashboard", shell.Redirect)
	for _, st := range shell.Tabs {
		assert.False(t, st.Active)
	}

	shell = BuildShell("", true)
	assert.Equal(t, "/", shell.Path)
	assert.Equal(t, "/dashboard", shell.Redirect)
}

func TestActiveTabIsExactMatch(t *testing.T) {
	tab, ok := ActiveTab("/disease-detection")
	require.True(t, ok)
	assert.Equal(t, "disease", tab.ID)
	assert.Equal(t, "Disease", tab.Label)

	for _, path := range []string{"/profile/", "/profile/edit", "/Dashboard", "dashboard", "/recommendations?x=1"} {
		_, ok := ActiveTab(path)
		assert.False(t, ok, path)
	}
}

func TestResolveUnknownPath(t *testing.T) {
	route := Resolve("/settings")
	assert.Equal(t, PageNotFound, route.Page)
	assert.Empty(t, route.Redirect)

	shell := BuildShell("/settings", true)
	assert.Equal(t, PageNotFound, shell.Page)
	for _, st := range shell.Tabs {
		assert.False(t, st.Active)
	}
}

func TestTabsOrderAndLabels(t *testing.T) {
	got := Tabs()
	require.Len(t, got, 4)
	assert.Equal(t, []string{"Home", "Crops", "Disease", "Profile"},
		[]string{got[0].Label, got[1].Label, got[2].Label, got[3].Label})

	// callers cannot mutate the shared table
	got[0].Path = "/elsewhere"
	_, ok := ActiveTab("/dashboard")
	assert.True(t, ok)
}
