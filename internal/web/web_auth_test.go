package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterPage(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/registration")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, `form[action="/register"]`)
	assertContainsElement(t, doc, `input[name="username"]`)
	assertContainsElement(t, doc, `input[name="password"]`)
}

func TestRegister(t *testing.T) {
	ts := newWebTestServer(t)

	form := url.Values{"username": {"alice"}, "password": {"pw1"}}
	rr := ts.post("/register", form)

	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
	// Registration does not sign the user in
	assert.False(t, ts.cookies.hasSession())

	// The login page shows the flash message
	followed := ts.followRedirect(rr)
	require.Equal(t, http.StatusOK, followed.Code)
	doc := parseHTML(followed.Body)
	assertContainsText(t, doc, "body", "Registration successful")
}

func TestRegisterMissingFields(t *testing.T) {
	ts := newWebTestServer(t)

	for _, form := range []url.Values{
		{"username": {"alice"}},
		{"password": {"pw1"}},
		{},
	} {
		rr := ts.post("/register", form)
		require.Equal(t, http.StatusBadRequest, rr.Code)
		doc := parseHTML(rr.Body)
		assertContainsText(t, doc, ".error", "All fields are required!")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ts := newWebTestServer(t)
	ts.register("alice", "pw1")

	form := url.Values{"username": {"alice"}, "password": {"other"}}
	rr := ts.post("/register", form)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".error", "User already exists! Try a different username.")
}

func TestLogin(t *testing.T) {
	ts := newWebTestServer(t)
	ts.register("alice", "pw1")

	form := url.Values{"username": {"alice"}, "password": {"pw1"}}
	rr := ts.post("/login", form)

	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/home?message=Login+Successful", rr.Header().Get("Location"))
	assert.True(t, ts.cookies.hasSession())

	followed := ts.followRedirect(rr)
	require.Equal(t, http.StatusOK, followed.Code)
	doc := parseHTML(followed.Body)
	assertContainsText(t, doc, "body", "Login Successful")
	assertContainsText(t, doc, "nav", "alice")
}

func TestLoginWrongPassword(t *testing.T) {
	ts := newWebTestServer(t)
	ts.register("alice", "pw1")

	form := url.Values{"username": {"alice"}, "password": {"wrong"}}
	rr := ts.post("/login", form)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, ts.cookies.hasSession())
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".error", "Invalid username or password!")

	// Still unauthenticated: the gate bounces protected pages
	home := ts.get("/home")
	require.Equal(t, http.StatusSeeOther, home.Code)
	assert.Equal(t, "/login?message=Please+log+in+first", home.Header().Get("Location"))
}

func TestLoginUnknownUser(t *testing.T) {
	ts := newWebTestServer(t)

	form := url.Values{"username": {"nobody"}, "password": {"pw1"}}
	rr := ts.post("/login", form)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, ts.cookies.hasSession())
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".error", "Invalid username or password!")
}

func TestLoginMissingFields(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/login", url.Values{"username": {"alice"}})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".error", "All fields are required!")
}

func TestLogout(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerAndLogin("alice", "pw1")

	rr := ts.post("/logout", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
	assert.False(t, ts.cookies.hasSession())

	home := ts.get("/home")
	require.Equal(t, http.StatusSeeOther, home.Code)
	assert.Equal(t, "/login?message=Please+log+in+first", home.Header().Get("Location"))
}

func TestProtectedPagesRequireLogin(t *testing.T) {
	ts := newWebTestServer(t)

	for _, path := range []string{"/home", "/bali", "/cities", "/hiking"} {
		rr := ts.get(path)
		require.Equal(t, http.StatusSeeOther, rr.Code, "path %s", path)
		assert.Equal(t, "/login?message=Please+log+in+first", rr.Header().Get("Location"), "path %s", path)
	}
}

func TestSessionSurvivesAcrossRequests(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerAndLogin("alice", "pw1")

	for i := 0; i < 3; i++ {
		rr := ts.get("/home")
		require.Equal(t, http.StatusOK, rr.Code)
	}
}
