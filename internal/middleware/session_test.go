package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newSessionRouter(cookieName string) (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var seen string
	r := gin.New()
	r.Use(Session(cookieName))
	r.GET("/probe", func(c *gin.Context) {
		seen = SessionID(c)
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func TestSessionAssignsCookieToNewVisitor(t *testing.T) {
	r, seen := newSessionRouter("sb_session")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/probe", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, *seen)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "sb_session", cookies[0].Name)
	require.Equal(t, *seen, cookies[0].Value)
	require.True(t, cookies[0].HttpOnly)
}

func TestSessionReusesExistingCookie(t *testing.T) {
	r, seen := newSessionRouter("sb_session")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "sb_session", Value: "existing-id"})
	r.ServeHTTP(w, req)

	require.Equal(t, "existing-id", *seen)
	require.Empty(t, w.Result().Cookies())
}

func TestSessionDefaultCookieName(t *testing.T) {
	r, _ := newSessionRouter("")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/probe", nil)
	r.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "sb_session", cookies[0].Name)
}

func TestSessionIDWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	require.Empty(t, SessionID(c))
}
