package api

import (
	"net/http"
	"testing"

	"github.com/gramin-samriddhi/backend/internal/navigation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeTabs(shell navigation.Shell) []string {
	var ids []string
	for _, tab := range shell.Tabs {
		if tab.Active {
			ids = append(ids, tab.ID)
		}
	}
	return ids
}

func TestResolveShellSignedOut(t *testing.T) {
	srv := newTestServer(t, nil)

	w := srv.do(t, http.MethodGet, "/api/v1/shell?path=/profile", "", nil)
	requireStatus(t, w, http.StatusOK)

	var shell navigation.Shell
	decode(t, w, &shell)
	assert.Equal(t, navigation.ViewAuth, shell.View)
	assert.Empty(t, shell.Tabs)
	assert.Empty(t, shell.Page)
}

func TestResolveShellSignedIn(t *testing.T) {
	srv := newTestServer(t, nil)
	_, token := srv.signIn(t, "farmer@example.com")

	tests := []struct {
		path     string
		page     navigation.Page
		active   []string
		redirect string
	}{
		{path: "/dashboard", page: navigation.PageDashboard, active: []string{"home"}},
		{path: "/recommendations", page: navigation.PageRecommendations, active: []string{"recommendations"}},
		{path: "/disease-detection", page: navigation.PageDiseaseDetection, active: []string{"disease"}},
		{path: "/profile", page: navigation.PageProfile, active: []string{"profile"}},
		{path: "/", page: navigation.PageIndex, redirect: "/dashboard"},
		{path: "/profile/edit", page: navigation.PageNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := srv.do(t, http.MethodGet, "/api/v1/shell?path="+tt.path, token, nil)
			requireStatus(t, w, http.StatusOK)

			var shell navigation.Shell
			decode(t, w, &shell)
			assert.Equal(t, navigation.ViewApp, shell.View)
			assert.Equal(t, tt.page, shell.Page)
			assert.Equal(t, tt.redirect, shell.Redirect)
			require.Len(t, shell.Tabs, 4)
			assert.Equal(t, tt.active, activeTabs(shell))
		})
	}
}
