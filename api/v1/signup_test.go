package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jaba-landing/models"
	"github.com/jaba-landing/notify"
	"github.com/jaba-landing/services"
	"github.com/jaba-landing/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type signupBody struct {
	Status       string `json:"status"`
	Outcome      string `json:"outcome"`
	Notification *struct {
		Title   string `json:"title"`
		Variant string `json:"variant"`
	} `json:"notification"`
	Errors []struct {
		Field string `json:"field"`
		Rule  string `json:"rule"`
	} `json:"errors"`
}

func newTestRouter(inserter store.Inserter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), NewSignupController(inserter, notify.DefaultCatalog(), services.NewInFlight(), zap.NewNop()))
	return router
}

func post(t *testing.T, router http.Handler, path, body string) (*httptest.ResponseRecorder, signupBody) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var out signupBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return w, out
}

const farmerJSON = `{"name":"Ada","email":"ada@example.com","phone":"+2348000000000","location":"Lagos","primaryProducts":"Yams"}`

func TestCreateFarmer_Success(t *testing.T) {
	var inserted []models.Registration
	router := newTestRouter(store.InserterFunc(func(ctx context.Context, r models.Registration) error {
		inserted = append(inserted, r)
		return nil
	}))

	w, body := post(t, router, "/api/v1/farmers", farmerJSON)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "success", body.Outcome)
	require.NotNil(t, body.Notification)
	assert.Equal(t, "Thank you for joining!", body.Notification.Title)

	require.Len(t, inserted, 1)
	farmer, ok := inserted[0].(*models.FarmerRegistration)
	require.True(t, ok)
	assert.Equal(t, "Yams", farmer.PrimaryProducts)
	assert.Nil(t, farmer.FarmSize)
}

func TestCreateFarmer_Duplicate(t *testing.T) {
	router := newTestRouter(store.InserterFunc(func(ctx context.Context, r models.Registration) error {
		return &store.Error{Code: store.UniqueViolation, Message: "duplicate"}
	}))

	w, body := post(t, router, "/api/v1/farmers", farmerJSON)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "duplicate", body.Outcome)
	require.NotNil(t, body.Notification)
	assert.Contains(t, body.Notification.Title, "already registered")
	assert.Equal(t, "destructive", body.Notification.Variant)
}

func TestCreateFarmer_StoreFailures(t *testing.T) {
	for _, storeErr := range []error{&store.Error{Code: "42501"}, errors.New("timeout")} {
		router := newTestRouter(store.InserterFunc(func(ctx context.Context, r models.Registration) error {
			return storeErr
		}))
		w, body := post(t, router, "/api/v1/farmers", farmerJSON)
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "Registration failed", body.Notification.Title)
	}
}

func TestCreateFarmer_ValidationErrors(t *testing.T) {
	called := false
	router := newTestRouter(store.InserterFunc(func(ctx context.Context, r models.Registration) error {
		called = true
		return nil
	}))

	w, body := post(t, router, "/api/v1/farmers", `{"name":"Ada","email":"ada@example.com","phone":"1","location":"Lagos","farmSize":"huge"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "invalid", body.Outcome)

	rules := map[string]string{}
	for _, e := range body.Errors {
		rules[e.Field] = e.Rule
	}
	assert.Equal(t, "required", rules["PrimaryProducts"])
	assert.Equal(t, "oneof", rules["FarmSize"])
	assert.False(t, called)
}

func TestCreateFarmer_MalformedBody(t *testing.T) {
	router := newTestRouter(store.InserterFunc(func(ctx context.Context, r models.Registration) error { return nil }))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/farmers", strings.NewReader(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBuyer_InvalidProduct(t *testing.T) {
	router := newTestRouter(store.InserterFunc(func(ctx context.Context, r models.Registration) error { return nil }))

	w, body := post(t, router, "/api/v1/buyers",
		`{"name":"Bola","email":"b@example.com","phone":"1","location":"Abuja","preferredProducts":["Fish","Gold"]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "invalid", body.Outcome)
	assert.Equal(t, "Please check the form", body.Notification.Title)
}

func TestCreateBuyerAndConsumer_Tables(t *testing.T) {
	var tables []string
	router := newTestRouter(store.InserterFunc(func(ctx context.Context, r models.Registration) error {
		tables = append(tables, r.TableName())
		return nil
	}))

	w, _ := post(t, router, "/api/v1/buyers",
		`{"name":"Bola","email":"b@example.com","phone":"1","location":"Abuja","businessType":"catering","preferredProducts":["Fish","Dairy"]}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w, _ = post(t, router, "/api/v1/consumers",
		`{"name":"Chi","email":"c@example.com","phone":"1","location":"Enugu","householdSize":"4-5"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	assert.Equal(t, []string{"buyers", "consumers"}, tables)
}

func TestListOptions(t *testing.T) {
	router := newTestRouter(store.InserterFunc(func(ctx context.Context, r models.Registration) error { return nil }))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/options", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data map[string][]models.Option `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data["farmSize"], 3)
	assert.Len(t, body.Data["preferredProducts"], 8)
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(store.InserterFunc(func(ctx context.Context, r models.Registration) error { return nil }))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
