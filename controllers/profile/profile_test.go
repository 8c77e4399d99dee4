package profileControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ojeshwigautam/Port-Kart-Server/models"
	"github.com/ojeshwigautam/Port-Kart-Server/supa"
	"github.com/ojeshwigautam/Port-Kart-Server/supa/supatest"
)

const testSellerSecret = "letmesell"

func setupRouter(fake *supatest.Fake) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/profile/create-user-profile", CreateUserProfile(fake, testSellerSecret))
	r.GET("/api/profile/get-total-users", GetTotalUsers(fake))
	r.POST("/api/profile/get-user-profile", GetUserProfile(fake))
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateUserProfileMissingFields(t *testing.T) {
	fake := &supatest.Fake{}
	r := setupRouter(fake)

	for _, body := range []string{
		`{}`,
		`{"id":"u1","name":"Jo"}`,
		`{"id":"u1","email":"a@b.c"}`,
		`{"name":"Jo","email":"a@b.c"}`,
	} {
		w := postJSON(r, "/api/profile/create-user-profile", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
	assert.Empty(t, fake.Calls)
}

func TestCreateUserProfileDefaultsToCustomer(t *testing.T) {
	var inserted models.Profile
	fake := &supatest.Fake{
		InsertProfileFn: func(p models.Profile) ([]models.Profile, error) {
			inserted = p
			return []models.Profile{p}, nil
		},
	}
	r := setupRouter(fake)

	for _, body := range []string{
		`{"id":"u1","name":"Jo","email":"a@b.c"}`,
		`{"id":"u1","name":"Jo","email":"a@b.c","role":"admin"}`,
		`{"id":"u1","name":"Jo","email":"a@b.c","role":"pirate"}`,
	} {
		w := postJSON(r, "/api/profile/create-user-profile", body)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, models.RoleCustomer, inserted.Role)
	}
}

func TestCreateUserProfileSellerWithoutCode(t *testing.T) {
	fake := &supatest.Fake{}
	r := setupRouter(fake)

	w := postJSON(r, "/api/profile/create-user-profile",
		`{"id":"u1","name":"Jo","email":"a@b.c","role":"seller"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, fake.CallCount("InsertProfile"))
}

func TestCreateUserProfileSellerBadCode(t *testing.T) {
	fake := &supatest.Fake{
		SellerInviteActiveFn: func(code string) (bool, error) { return false, nil },
	}
	r := setupRouter(fake)

	w := postJSON(r, "/api/profile/create-user-profile",
		`{"id":"u1","name":"Jo","email":"a@b.c","role":"seller","sellerCode":"nope"}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Zero(t, fake.CallCount("InsertProfile"), "no row inserted on rejected seller code")
}

func TestCreateUserProfileSellerWithSecret(t *testing.T) {
	var inserted models.Profile
	fake := &supatest.Fake{
		InsertProfileFn: func(p models.Profile) ([]models.Profile, error) {
			inserted = p
			return []models.Profile{p}, nil
		},
	}
	r := setupRouter(fake)

	w := postJSON(r, "/api/profile/create-user-profile",
		`{"id":"u1","name":"Jo","email":"a@b.c","role":"seller","sellerCode":"`+testSellerSecret+`"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, models.RoleSeller, inserted.Role)
	assert.Zero(t, fake.CallCount("SellerInviteActive"), "secret match short-circuits the invite lookup")
}

func TestCreateUserProfileSellerWithInvite(t *testing.T) {
	var inserted models.Profile
	fake := &supatest.Fake{
		SellerInviteActiveFn: func(code string) (bool, error) {
			return code == "invite-42", nil
		},
		InsertProfileFn: func(p models.Profile) ([]models.Profile, error) {
			inserted = p
			return []models.Profile{p}, nil
		},
	}
	r := setupRouter(fake)

	w := postJSON(r, "/api/profile/create-user-profile",
		`{"id":"u1","name":"Jo","email":"a@b.c","role":"seller","sellerCode":"invite-42"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, models.RoleSeller, inserted.Role)
}

func TestGetUserProfileMissingID(t *testing.T) {
	fake := &supatest.Fake{}
	r := setupRouter(fake)

	w := postJSON(r, "/api/profile/get-user-profile", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, fake.Calls)
}

func TestGetUserProfileSurfacesSingleRowError(t *testing.T) {
	fake := &supatest.Fake{
		ProfileByIDFn: func(userID string) (models.ProfileSummary, error) {
			return models.ProfileSummary{}, &supa.Error{
				Status:  http.StatusBadRequest,
				Message: "JSON object requested, multiple (or no) rows returned",
			}
		},
	}
	r := setupRouter(fake)

	w := postJSON(r, "/api/profile/get-user-profile", `{"userId":"ghost"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "rows returned")
}

func TestGetUserProfileSuccess(t *testing.T) {
	fake := &supatest.Fake{
		ProfileByIDFn: func(userID string) (models.ProfileSummary, error) {
			assert.Equal(t, "u1", userID)
			return models.ProfileSummary{Name: "Jo", Role: "customer"}, nil
		},
	}
	r := setupRouter(fake)

	w := postJSON(r, "/api/profile/get-user-profile", `{"userId":"u1"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"Jo","role":"customer"}`, w.Body.String())
}

func TestGetTotalUsersReturnsCount(t *testing.T) {
	fake := &supatest.Fake{
		CountProfilesFn: func() (int64, error) { return 42, nil },
	}
	r := setupRouter(fake)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/profile/get-total-users", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":42}`, w.Body.String())
}
