package api

import (
	"context"
	"io"
	"net/http"
	"testing"

	"manuparts/internal/auth"
	"manuparts/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveness(t *testing.T) {
	ts, _, _ := newTestServer(t)

	resp := doRequest(t, http.MethodGet, ts.URL+"/", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Server running for Manufacture Parts", string(body))
}

func TestHealthz(t *testing.T) {
	ts, _, _ := newTestServer(t)

	resp := doRequest(t, http.MethodGet, ts.URL+"/healthz", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "ok", body["status"])
}

func TestCreateAndListProducts(t *testing.T) {
	ts, _, _ := newTestServer(t)

	product := models.Product{Name: "Hydraulic pump", Price: 120.5, MinOrder: 10, Quantity: 500}
	resp := doRequest(t, http.MethodPost, ts.URL+"/products", "", product)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	created := decodeBody[map[string]any](t, resp)
	assert.Equal(t, true, created["success"])
	assert.NotEmpty(t, created["insertedId"])

	resp = doRequest(t, http.MethodGet, ts.URL+"/products", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	products := decodeBody[[]models.Product](t, resp)
	require.Len(t, products, 1)
	assert.Equal(t, "Hydraulic pump", products[0].Name)
}

func TestGetProduct(t *testing.T) {
	ts, mem, _ := newTestServer(t)

	product := &models.Product{Name: "Bearing block", Price: 8.25}
	require.NoError(t, mem.CreateProduct(context.Background(), product))

	resp := doRequest(t, http.MethodGet, ts.URL+"/products/"+product.ID.Hex(), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeBody[models.Product](t, resp)
	assert.Equal(t, product.ID, got.ID)
	assert.Equal(t, "Bearing block", got.Name)
}

func TestGetProduct_InvalidID(t *testing.T) {
	ts, _, _ := newTestServer(t)

	resp := doRequest(t, http.MethodGet, ts.URL+"/products/not-an-id", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetProduct_NotFound(t *testing.T) {
	ts, _, _ := newTestServer(t)

	resp := doRequest(t, http.MethodGet, ts.URL+"/products/64b2f0c0a1b2c3d4e5f60718", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListProductNames(t *testing.T) {
	ts, mem, _ := newTestServer(t)

	require.NoError(t, mem.CreateProduct(context.Background(), &models.Product{Name: "Gearbox", Price: 300}))
	require.NoError(t, mem.CreateProduct(context.Background(), &models.Product{Name: "Coupling", Price: 15}))

	resp := doRequest(t, http.MethodGet, ts.URL+"/singleProduct", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	names := decodeBody[[]models.ProductName](t, resp)
	require.Len(t, names, 2)
	for _, n := range names {
		assert.NotEmpty(t, n.Name)
		assert.False(t, n.ID.IsZero())
	}
}

func TestCreateAndListReviews(t *testing.T) {
	ts, _, _ := newTestServer(t)

	review := models.Review{Name: "Ana", Email: "ana@example.com", Rating: 5, Comment: "fast delivery"}
	resp := doRequest(t, http.MethodPost, ts.URL+"/review", "", review)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, http.MethodGet, ts.URL+"/review", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	reviews := decodeBody[[]models.Review](t, resp)
	require.Len(t, reviews, 1)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.False(t, reviews[0].CreatedAt.IsZero())
}

func TestCreateReview_MissingFields(t *testing.T) {
	ts, _, _ := newTestServer(t)

	resp := doRequest(t, http.MethodPost, ts.URL+"/review", "", models.Review{Comment: "anonymous"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSignInIssuesToken(t *testing.T) {
	ts, mem, _ := newTestServer(t)

	resp := doRequest(t, http.MethodPut, ts.URL+"/user/new@example.com", "", models.Profile{Name: "New User"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[map[string]any](t, resp)
	token, ok := body["token"].(string)
	require.True(t, ok, "token missing from response")

	claims, err := auth.NewTokenIssuer(testSecret, 0).Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", claims.Email)

	user, err := mem.GetUserByEmail(context.Background(), "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "New User", user.Name)
}

func TestSignInUpsertsExistingUser(t *testing.T) {
	ts, mem, _ := newTestServer(t)
	seedUser(t, mem, "back@example.com", "admin")

	resp := doRequest(t, http.MethodPut, ts.URL+"/user/back@example.com", "", models.Profile{Location: "Dhaka"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	user, err := mem.GetUserByEmail(context.Background(), "back@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Dhaka", user.Location)
	assert.Equal(t, "admin", user.Role, "sign in must not touch the role")

	users, err := mem.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAdminCheck(t *testing.T) {
	ts, mem, _ := newTestServer(t)
	seedUser(t, mem, "boss@example.com", "admin")
	seedUser(t, mem, "user@example.com", "")

	resp := doRequest(t, http.MethodGet, ts.URL+"/admin/boss@example.com", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decodeBody[map[string]bool](t, resp)["admin"])

	resp = doRequest(t, http.MethodGet, ts.URL+"/admin/user@example.com", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, decodeBody[map[string]bool](t, resp)["admin"])

	// unknown users are simply not admins
	resp = doRequest(t, http.MethodGet, ts.URL+"/admin/ghost@example.com", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, decodeBody[map[string]bool](t, resp)["admin"])
}

func TestProfileRoundtrip(t *testing.T) {
	ts, mem, _ := newTestServer(t)
	seedUser(t, mem, "profile@example.com", "")

	update := models.Profile{Education: "BSc", Phone: "+8801000000"}
	resp := doRequest(t, http.MethodPut, ts.URL+"/updateProfile/profile@example.com", "", update)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, http.MethodGet, ts.URL+"/showUpdateProfile/profile@example.com", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	user := decodeBody[models.User](t, resp)
	assert.Equal(t, "BSc", user.Education)
	assert.Equal(t, "Seeded", user.Name, "unset fields keep their value")
}

func TestGetProfile_NotFound(t *testing.T) {
	ts, _, _ := newTestServer(t)

	resp := doRequest(t, http.MethodGet, ts.URL+"/showUpdateProfile/nobody@example.com", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPromoteAdmin(t *testing.T) {
	ts, mem, _ := newTestServer(t)
	seedUser(t, mem, "root@example.com", "admin")
	seedUser(t, mem, "member@example.com", "")

	resp := doRequest(t, http.MethodPut, ts.URL+"/user/admin/member@example.com", issueToken(t, "root@example.com"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	user, err := mem.GetUserByEmail(context.Background(), "member@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestPromoteAdmin_NonAdminForbidden(t *testing.T) {
	ts, mem, _ := newTestServer(t)
	seedUser(t, mem, "peon@example.com", "")
	seedUser(t, mem, "member@example.com", "")

	resp := doRequest(t, http.MethodPut, ts.URL+"/user/admin/member@example.com", issueToken(t, "peon@example.com"), nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	user, err := mem.GetUserByEmail(context.Background(), "member@example.com")
	require.NoError(t, err)
	assert.Empty(t, user.Role, "role must not change on a forbidden request")
}
