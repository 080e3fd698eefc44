package restaurant

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tablebook/internal/database"
	"tablebook/internal/domain"
	"tablebook/internal/repository"
)

type allowAll struct{}

func (allowAll) Can(ctx context.Context, role, entity, operation string) bool { return true }

type readOwnEntityOnly struct{}

// grants read on restaurants but nothing else, so every relation is withheld
func (readOwnEntityOnly) Can(ctx context.Context, role, entity, operation string) bool {
	return entity == "restaurant"
}

func passGuard(entity, operation string) gin.HandlerFunc {
	return func(c *gin.Context) { c.Next() }
}

func setupRouter(t *testing.T, access AccessChecker) (*gin.Engine, *gorm.DB) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	handler := NewHandler(NewService(repository.NewRestaurantRepository(db), access))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.Use(func(c *gin.Context) {
		c.Set("role", "admin")
		c.Next()
	})
	handler.RegisterRoutes(v1, passGuard)

	return r, db
}

func seedUser(t *testing.T, db *gorm.DB) domain.User {
	u := domain.User{
		Email:        "owner@test.com",
		PasswordHash: "$2a$10$dummy",
		Name:         "Owner",
		Role:         domain.RoleRestaurantOwner,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool                       `json:"success"`
	Data    map[string]json.RawMessage `json:"data"`
	Error   *struct {
		Code    string      `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details"`
	} `json:"error"`
}

func parse(t *testing.T, w *httptest.ResponseRecorder) envelope {
	var e envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e), "body: %s", w.Body.String())
	return e
}

func TestHandler_CreateAndGet(t *testing.T) {
	r, db := setupRouter(t, allowAll{})
	owner := seedUser(t, db)

	w := doJSON(r, "POST", "/api/v1/restaurants", map[string]interface{}{
		"name":     "Cafe Deluxe",
		"location": "Main Street 1",
		"user_id":  owner.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := parse(t, w)
	assert.True(t, resp.Success)

	var created domain.Restaurant
	require.NoError(t, json.Unmarshal(resp.Data["restaurant"], &created))
	assert.Equal(t, "Cafe Deluxe", created.Name)
	assert.NotEqual(t, uuid.Nil, created.ID)

	w = doJSON(r, "GET", "/api/v1/restaurants/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp = parse(t, w)
	var fetched domain.Restaurant
	require.NoError(t, json.Unmarshal(resp.Data["restaurant"], &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	// detail view with no explicit relations expands everything readable
	assert.NotNil(t, fetched.User)
	assert.Equal(t, owner.ID, fetched.User.ID)
}

func TestHandler_Create_MissingName(t *testing.T) {
	r, db := setupRouter(t, allowAll{})
	owner := seedUser(t, db)

	w := doJSON(r, "POST", "/api/v1/restaurants", map[string]interface{}{
		"location": "Main Street 1",
		"user_id":  owner.ID,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := parse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)

	// nothing persisted
	var count int64
	db.Model(&domain.Restaurant{}).Count(&count)
	assert.Zero(t, count)
}

func TestHandler_Create_MissingUserID(t *testing.T) {
	r, _ := setupRouter(t, allowAll{})

	w := doJSON(r, "POST", "/api/v1/restaurants", map[string]interface{}{
		"name":     "Cafe Deluxe",
		"location": "Main Street 1",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := parse(t, w)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestHandler_List_WithRelationsAndCounts(t *testing.T) {
	r, db := setupRouter(t, allowAll{})
	owner := seedUser(t, db)

	rest := domain.Restaurant{Name: "Cafe Deluxe", Location: "Main Street 1", UserID: owner.ID}
	require.NoError(t, db.Create(&rest).Error)
	require.NoError(t, db.Create(&domain.TableLayout{RestaurantID: rest.ID, Name: "Table 1", Capacity: 4}).Error)

	res := domain.Reservation{
		CustomerID:     owner.ID,
		RestaurantID:   rest.ID,
		TableLayoutID:  uuid.New(),
		Date:           "2026-09-12",
		Time:           "19:00",
		NumberOfGuests: 2,
		Status:         domain.ReservationPending,
	}
	require.NoError(t, db.Create(&res).Error)

	w := doJSON(r, "GET", "/api/v1/restaurants?relations=user,reservation.count,table_layout.count", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := parse(t, w)
	var list []domain.Restaurant
	require.NoError(t, json.Unmarshal(resp.Data["restaurants"], &list))
	require.Len(t, list, 1)

	assert.NotNil(t, list[0].User)
	require.NotNil(t, list[0].Counts)
	require.NotNil(t, list[0].Counts.Reservation)
	assert.EqualValues(t, 1, *list[0].Counts.Reservation)
	require.NotNil(t, list[0].Counts.TableLayout)
	assert.EqualValues(t, 1, *list[0].Counts.TableLayout)
}

func TestHandler_List_UnreadableRelationDropped(t *testing.T) {
	r, db := setupRouter(t, readOwnEntityOnly{})
	owner := seedUser(t, db)

	rest := domain.Restaurant{Name: "Cafe Deluxe", Location: "Main Street 1", UserID: owner.ID}
	require.NoError(t, db.Create(&rest).Error)

	w := doJSON(r, "GET", "/api/v1/restaurants?relations=user", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := parse(t, w)
	var list []domain.Restaurant
	require.NoError(t, json.Unmarshal(resp.Data["restaurants"], &list))
	require.Len(t, list, 1)
	assert.Nil(t, list[0].User)
}

func TestHandler_Search(t *testing.T) {
	r, db := setupRouter(t, allowAll{})
	owner := seedUser(t, db)

	for _, name := range []string{"Cafe Deluxe", "Burger Barn"} {
		require.NoError(t, db.Create(&domain.Restaurant{Name: name, Location: "x", UserID: owner.ID}).Error)
	}

	w := doJSON(r, "GET", "/api/v1/restaurants?search=deluxe", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := parse(t, w)
	var list []domain.Restaurant
	require.NoError(t, json.Unmarshal(resp.Data["restaurants"], &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Cafe Deluxe", list[0].Name)
}

func TestHandler_UpdateAndDelete(t *testing.T) {
	r, db := setupRouter(t, allowAll{})
	owner := seedUser(t, db)

	rest := domain.Restaurant{Name: "Cafe Deluxe", Location: "Main Street 1", UserID: owner.ID}
	require.NoError(t, db.Create(&rest).Error)

	w := doJSON(r, "PUT", "/api/v1/restaurants/"+rest.ID.String(), map[string]interface{}{
		"name":     "Cafe Deluxe 2",
		"location": "Main Street 2",
		"user_id":  owner.ID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := parse(t, w)
	var updated domain.Restaurant
	require.NoError(t, json.Unmarshal(resp.Data["restaurant"], &updated))
	assert.Equal(t, "Cafe Deluxe 2", updated.Name)

	w = doJSON(r, "DELETE", "/api/v1/restaurants/"+rest.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, "GET", "/api/v1/restaurants/"+rest.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_InvalidID(t *testing.T) {
	r, _ := setupRouter(t, allowAll{})

	w := doJSON(r, "GET", "/api/v1/restaurants/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := parse(t, w)
	assert.Equal(t, "INVALID_ID", resp.Error.Code)
}

func TestHandler_NotFound(t *testing.T) {
	r, _ := setupRouter(t, allowAll{})

	w := doJSON(r, "GET", "/api/v1/restaurants/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	resp := parse(t, w)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}
