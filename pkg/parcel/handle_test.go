package parcel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-parcel/pkg/auth"
	"github.com/tendant/simple-parcel/pkg/user"
)

// setupTestAPI wires the full request pipeline: auth middleware over
// in-memory repositories, seeded with one user per role and one parcel.
// Token 1 is a customer, 2 a driver, 3 an admin.
func setupTestAPI(t *testing.T) (http.Handler, *InMemoryParcelRepository) {
	ctx := context.Background()

	userRepo := user.NewInMemoryUserRepository()
	seedUsers := []user.CreateUserParams{
		{Login: "alice@example.com", Role: user.RoleUser},
		{Login: "driver@example.com", Role: user.RoleDriver},
		{Login: "admin@example.com", Role: user.RoleAdmin},
	}
	for _, params := range seedUsers {
		_, err := userRepo.CreateUser(ctx, params)
		require.NoError(t, err)
	}

	parcelRepo := NewInMemoryParcelRepository()
	_, err := parcelRepo.CreateParcel(ctx, CreateParcelParams{
		Status:     StatusNew,
		Sender:     "Address #1",
		Receipient: "Address #2",
	})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(auth.Auth(userRepo))
		r.Use(auth.RequireAuth)
		NewHandle(NewParcelService(parcelRepo)).RegisterRoutes(r)
	})
	return r, parcelRepo
}

func doRequest(t *testing.T, handler http.Handler, method, target, authHeader, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGetParcel(t *testing.T) {
	handler, _ := setupTestAPI(t)

	rec := doRequest(t, handler, http.MethodGet, "/parcels/1", "Bearer 1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "NEW", body["status"])
	assert.Equal(t, "Address #1", body["sender"])
	assert.Equal(t, "Address #2", body["receipient"])
	assert.Nil(t, body["schedule"])
	assert.Nil(t, body["dropoffPerms"])
}

func TestGetParcel_NoCredential(t *testing.T) {
	handler, _ := setupTestAPI(t)

	rec := doRequest(t, handler, http.MethodGet, "/parcels/1", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "no authorization included in request")

	body := decodeBody(t, rec)
	assert.Equal(t, "Unauthorized", body["message"])
	assert.Equal(t, false, body["ok"])
}

func TestGetParcel_MalformedCredential(t *testing.T) {
	handler, _ := setupTestAPI(t)

	rec := doRequest(t, handler, http.MethodGet, "/parcels/1", "Bearer abcd", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "bad authorization included in request")

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, float64(http.StatusBadRequest), body["status"])
}

func TestGetParcel_UnknownSubject(t *testing.T) {
	handler, _ := setupTestAPI(t)

	rec := doRequest(t, handler, http.MethodGet, "/parcels/1", "Bearer 999", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "unknown user")
}

func TestGetParcel_NotFound(t *testing.T) {
	handler, _ := setupTestAPI(t)

	rec := doRequest(t, handler, http.MethodGet, "/parcels/123", "Bearer 1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
}

// A token equal to a user's id resolves to the same identity through all
// three credential transports.
func TestCredentialTransports(t *testing.T) {
	handler, _ := setupTestAPI(t)

	t.Run("authorization header", func(t *testing.T) {
		rec := doRequest(t, handler, http.MethodGet, "/parcels/1", "Bearer 1", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("scheme is not validated", func(t *testing.T) {
		rec := doRequest(t, handler, http.MethodGet, "/parcels/1", "Whatever 1", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("x-authorization header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/parcels/1", nil)
		req.Header.Set("X-Authorization", "Bearer 1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("auth cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/parcels/1", nil)
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "1"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestUpdateParcel_Customer(t *testing.T) {
	handler, _ := setupTestAPI(t)

	rec := doRequest(t, handler, http.MethodPut, "/parcels/1", "Bearer 1",
		`{"dropoffPerms": "Neighbour"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Neighbour", body["dropoffPerms"])
	// Other fields unchanged.
	assert.Equal(t, "NEW", body["status"])
	assert.Equal(t, "Address #1", body["sender"])
}

func TestUpdateParcel_CustomerForbiddenField(t *testing.T) {
	handler, _ := setupTestAPI(t)

	rec := doRequest(t, handler, http.MethodPut, "/parcels/1", "Bearer 1",
		`{"schedule": "2024-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	errObj, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ForbiddenFieldError", errObj["name"])
}

func TestUpdateParcel_DriverForbiddenField(t *testing.T) {
	handler, _ := setupTestAPI(t)

	rec := doRequest(t, handler, http.MethodPut, "/parcels/1", "Bearer 2",
		`{"dropoffPerms": "Neighbour"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateParcel_Driver(t *testing.T) {
	handler, _ := setupTestAPI(t)

	rec := doRequest(t, handler, http.MethodPut, "/parcels/1", "Bearer 2",
		`{"schedule": "2024-01-01T00:00:00Z", "status": "SCHEDULED"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "SCHEDULED", body["status"])
	require.NotNil(t, body["schedule"])
	schedule, err := time.Parse(time.RFC3339, body["schedule"].(string))
	require.NoError(t, err)
	assert.True(t, schedule.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
}

// Unrecognized keys are dropped: they appear neither in the response nor in
// the stored record.
func TestUpdateParcel_UnknownKeysErased(t *testing.T) {
	handler, parcelRepo := setupTestAPI(t)

	rec := doRequest(t, handler, http.MethodPut, "/parcels/1", "Bearer 2",
		`{"status": "DELIVERED", "unknown": 123}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "DELIVERED", body["status"])
	_, present := body["unknown"]
	assert.False(t, present)

	stored, err := parcelRepo.GetParcel(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, StatusDelivered, stored.Status)

	raw, err := json.Marshal(stored)
	require.NoError(t, err)
	var storedMap map[string]any
	require.NoError(t, json.Unmarshal(raw, &storedMap))
	_, present = storedMap["unknown"]
	assert.False(t, present)
}

func TestUpdateParcel_AdminAnyField(t *testing.T) {
	handler, _ := setupTestAPI(t)

	rec := doRequest(t, handler, http.MethodPut, "/parcels/1", "Bearer 3",
		`{"status": "IN_DELIVERY", "schedule": "2024-05-01T08:00:00+02:00", "dropoffPerms": "Front desk"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "IN_DELIVERY", body["status"])
	assert.Equal(t, "Front desk", body["dropoffPerms"])
}

func TestUpdateParcel_NoCredential(t *testing.T) {
	handler, _ := setupTestAPI(t)

	rec := doRequest(t, handler, http.MethodPut, "/parcels/1", "",
		`{"dropoffPerms": "Neighbour"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateParcel_NotFound(t *testing.T) {
	handler, _ := setupTestAPI(t)

	rec := doRequest(t, handler, http.MethodPut, "/parcels/9999", "Bearer 1",
		`{"dropoffPerms": "Neighbour"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, rec.Body.String(), "9999")
}

func TestUpdateParcel_ShapeError(t *testing.T) {
	handler, _ := setupTestAPI(t)

	rec := doRequest(t, handler, http.MethodPut, "/parcels/1", "Bearer 2",
		`{"status": "LOST"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	errObj, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ShapeError", errObj["name"])
	issues, ok := errObj["issues"].([]any)
	require.True(t, ok)
	require.Len(t, issues, 1)
}

func TestUpdateParcel_EmptyBody(t *testing.T) {
	handler, _ := setupTestAPI(t)

	rec := doRequest(t, handler, http.MethodPut, "/parcels/1", "Bearer 1", `{}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "NEW", body["status"])
}

func TestParcel_BadPathID(t *testing.T) {
	handler, _ := setupTestAPI(t)

	for _, target := range []string{"/parcels/abc", "/parcels/0", "/parcels/-1"} {
		rec := doRequest(t, handler, http.MethodGet, target, "Bearer 1", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)
	}
}
