package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"KecPortal/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() (*AuthHandler, *fakeStore) {
	store := &fakeStore{}
	cfg := &config.Config{JWTSecret: []byte("test-signing-key")}
	return NewAuthHandler(NewUserService(store), NewAuthService(store, cfg)), store
}

func postJSON(t *testing.T, h echo.HandlerFunc, target, body string) (int, map[string]interface{}) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec.Code, decodeBody(t, rec)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return body
}

func TestStaffLoginFlow(t *testing.T) {
	t.Parallel()
	h, _ := newTestHandler()

	code, body := postJSON(t, h.CreateUser, "/api/users",
		`{"role":"staff","email":"a.b@kongu.edu","username":"a.b@kongu.edu"}`)
	require.Equal(t, http.StatusCreated, code)
	require.Equal(t, true, body["success"])
	item := body["item"].(map[string]interface{})
	assert.Equal(t, "a.b@kongu.edu", item["username"])
	assert.NotContains(t, item, "password", "hash leaked on the wire")

	code, body = postJSON(t, h.StaffLogin, "/api/login/staff",
		`{"emailKongu":"a.b@kongu.edu","password":"a.b@kongu.edu"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token, []byte("test-signing-key"))
	require.NoError(t, err)
	assert.Equal(t, RoleStaff, claims.Role)

	code, body = postJSON(t, h.StaffLogin, "/api/login/staff",
		`{"emailKongu":"a.b@kongu.edu","password":"nope"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Incorrect password", body["msg"])

	code, body = postJSON(t, h.StaffLogin, "/api/login/staff",
		`{"emailKongu":"ghost@kongu.edu","password":"x"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid staff email", body["msg"])
}

func TestStudentLogin_UnknownRoll(t *testing.T) {
	t.Parallel()
	h, _ := newTestHandler()

	code, body := postJSON(t, h.StudentLogin, "/api/login/student",
		`{"rollNo":"22CSR999","password":"22CSR999"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid roll number", body["msg"])
}

func TestCreateUser_ValidationResponses(t *testing.T) {
	t.Parallel()
	h, _ := newTestHandler()

	code, body := postJSON(t, h.CreateUser, "/api/users",
		`{"role":"student","email":"x@kongu.edu"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Missing fields", body["error"])

	code, body = postJSON(t, h.CreateUser, "/api/users",
		`{"role":"admin","email":"x@kongu.edu","username":"22CSR001"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid role", body["error"])

	code, body = postJSON(t, h.CreateUser, "/api/users",
		`{"role":"student","email":"x@gmail.com","username":"22CSR001"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid email domain", body["error"])

	code, _ = postJSON(t, h.CreateUser, "/api/users",
		`{"role":"student","email":"x@kongu.edu","username":"22CSR001"}`)
	require.Equal(t, http.StatusCreated, code)

	code, body = postJSON(t, h.CreateUser, "/api/users",
		`{"role":"staff","email":"y@kongu.edu","username":"22CSR001"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Username already exists", body["error"])
}

func TestStoreFailureResponses(t *testing.T) {
	t.Parallel()
	h, store := newTestHandler()
	store.failWith = errors.New("connection reset")

	code, body := postJSON(t, h.StaffLogin, "/api/login/staff",
		`{"emailKongu":"a.b@kongu.edu","password":"a.b@kongu.edu"}`)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "connection reset", body["error"])

	code, body = postJSON(t, h.CreateUser, "/api/users",
		`{"role":"staff","email":"a.b@kongu.edu","username":"a.b@kongu.edu"}`)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "connection reset", body["error"])

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.ListUsers(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "connection reset", decodeBody(t, rec)["error"])
}

func TestListAndDeleteUsers(t *testing.T) {
	t.Parallel()
	h, _ := newTestHandler()

	code, _ := postJSON(t, h.CreateUser, "/api/users",
		`{"role":"student","email":"a@kongu.edu","username":"22CSR001"}`)
	require.Equal(t, http.StatusCreated, code)
	code, created := postJSON(t, h.CreateUser, "/api/users",
		`{"role":"staff","email":"b@kongu.edu","username":"b@kongu.edu"}`)
	require.Equal(t, http.StatusCreated, code)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.ListUsers(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	items := body["items"].([]interface{})
	require.Len(t, items, 2)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "b@kongu.edu", first["username"], "listing is not newest-first")

	id := created["item"].(map[string]interface{})["_id"].(string)
	req = httptest.NewRequest(http.MethodDelete, "/api/users/"+id, nil)
	rec = httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.DeleteUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["success"])

	// Deleting the same id again is still a success.
	req = httptest.NewRequest(http.MethodDelete, "/api/users/"+id, nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.DeleteUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
