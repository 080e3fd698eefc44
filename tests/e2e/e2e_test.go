package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tablebook/internal/database"
	"tablebook/internal/domain"
	"tablebook/internal/middleware"
	"tablebook/internal/modules/access"
	"tablebook/internal/modules/auth"
	"tablebook/internal/modules/hours"
	"tablebook/internal/modules/layout"
	"tablebook/internal/modules/preference"
	"tablebook/internal/modules/reservation"
	"tablebook/internal/modules/restaurant"
	"tablebook/internal/modules/user"
	jwtsvc "tablebook/internal/pkg/jwt"
	"tablebook/internal/repository"
)

type Suite struct {
	router *gin.Engine
	db     *gorm.DB
}

type Envelope struct {
	Success bool                       `json:"success"`
	Data    map[string]json.RawMessage `json:"data"`
	Error   *ErrorDetail               `json:"error"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupSuite(t *testing.T) *Suite {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, access.SeedDefaults(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(sqlDB, "sqlite")

	userRepo := repository.NewUserRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	hourRepo := repository.NewOperatingHourRepository(db)
	layoutRepo := repository.NewTableLayoutRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	preferenceRepo := repository.NewCustomerPreferenceRepository(db)
	permissionRepo := repository.NewPermissionRepository(sqlxDB)

	j := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	accessService := access.NewService(permissionRepo)
	authHandler := auth.NewHandler(auth.NewService(userRepo, j), userRepo)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	guard := middleware.RequireAccess(accessService)

	v1 := r.Group("/api/v1")
	authHandler.RegisterPublicRoutes(v1)

	protected := v1.Group("/")
	protected.Use(middleware.JWTAuth(j))
	{
		authHandler.RegisterProtectedRoutes(protected)
		access.NewHandler(accessService).RegisterRoutes(protected)
		user.NewHandler(userRepo).RegisterRoutes(protected, guard)
		restaurant.NewHandler(restaurant.NewService(restaurantRepo, accessService)).RegisterRoutes(protected, guard)
		hours.NewHandler(hours.NewService(hourRepo, accessService)).RegisterRoutes(protected, guard)
		layout.NewHandler(layout.NewService(layoutRepo, accessService)).RegisterRoutes(protected, guard)
		reservation.NewHandler(reservation.NewService(reservationRepo, accessService)).RegisterRoutes(protected, guard)
		preference.NewHandler(preference.NewService(preferenceRepo, accessService)).RegisterRoutes(protected, guard)
	}

	// register cannot self-assign admin; create one directly
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	require.NoError(t, db.Create(&domain.User{
		Email:        "admin@test.com",
		PasswordHash: string(hash),
		Name:         "Admin",
		Role:         domain.RoleAdmin,
	}).Error)

	return &Suite{router: r, db: db}
}

func (s *Suite) request(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func parse(t *testing.T, w *httptest.ResponseRecorder) Envelope {
	var e Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e), "body: %s", w.Body.String())
	return e
}

func (s *Suite) login(t *testing.T, email, password string) string {
	w := s.request(t, "POST", "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := parse(t, w)
	var token string
	require.NoError(t, json.Unmarshal(resp.Data["token"], &token))
	require.NotEmpty(t, token)
	return token
}

func (s *Suite) registerCustomer(t *testing.T, email string) string {
	w := s.request(t, "POST", "/api/v1/auth/register", map[string]string{
		"email":    email,
		"password": "customer123",
		"name":     "Customer",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return s.login(t, email, "customer123")
}

func TestAuthFlow(t *testing.T) {
	s := setupSuite(t)

	t.Run("register and login", func(t *testing.T) {
		token := s.registerCustomer(t, "alice@test.com")

		w := s.request(t, "GET", "/api/v1/auth/me", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		resp := parse(t, w)
		var me domain.User
		require.NoError(t, json.Unmarshal(resp.Data["user"], &me))
		assert.Equal(t, "alice@test.com", me.Email)
		assert.Equal(t, domain.RoleCustomer, me.Role)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		w := s.request(t, "POST", "/api/v1/auth/register", map[string]string{
			"email":    "alice@test.com",
			"password": "customer123",
		}, "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := s.request(t, "POST", "/api/v1/auth/login", map[string]string{
			"email":    "alice@test.com",
			"password": "nope",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("no token", func(t *testing.T) {
		w := s.request(t, "GET", "/api/v1/restaurants", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAdminCrudFlow(t *testing.T) {
	s := setupSuite(t)
	admin := s.login(t, "admin@test.com", "admin123")

	var restID, layoutID, customerID uuid.UUID

	t.Run("create restaurant", func(t *testing.T) {
		var adminUser domain.User
		require.NoError(t, s.db.Where("email = ?", "admin@test.com").First(&adminUser).Error)

		w := s.request(t, "POST", "/api/v1/restaurants", map[string]interface{}{
			"name":     "Cafe Deluxe",
			"location": "Main Street 1",
			"user_id":  adminUser.ID,
		}, admin)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		resp := parse(t, w)
		var rest domain.Restaurant
		require.NoError(t, json.Unmarshal(resp.Data["restaurant"], &rest))
		restID = rest.ID
	})

	t.Run("create table layout", func(t *testing.T) {
		w := s.request(t, "POST", "/api/v1/table-layouts", map[string]interface{}{
			"restaurant_id": restID,
			"name":          "Table 1",
			"capacity":      4,
		}, admin)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		resp := parse(t, w)
		var tl domain.TableLayout
		require.NoError(t, json.Unmarshal(resp.Data["table_layout"], &tl))
		layoutID = tl.ID
	})

	t.Run("create reservation defaults to pending", func(t *testing.T) {
		s.registerCustomer(t, "bob@test.com")
		var customer domain.User
		require.NoError(t, s.db.Where("email = ?", "bob@test.com").First(&customer).Error)
		customerID = customer.ID

		w := s.request(t, "POST", "/api/v1/reservations", map[string]interface{}{
			"customer_id":      customerID,
			"restaurant_id":    restID,
			"table_layout_id":  layoutID,
			"date":             "2026-09-12",
			"time":             "19:30",
			"number_of_guests": 4,
		}, admin)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		resp := parse(t, w)
		var res domain.Reservation
		require.NoError(t, json.Unmarshal(resp.Data["reservation"], &res))
		assert.Equal(t, domain.ReservationPending, res.Status)
	})

	t.Run("confirm reservation", func(t *testing.T) {
		var res domain.Reservation
		require.NoError(t, s.db.Where("table_layout_id = ?", layoutID).First(&res).Error)

		w := s.request(t, "PUT", "/api/v1/reservations/"+res.ID.String(), map[string]interface{}{
			"customer_id":      customerID,
			"restaurant_id":    restID,
			"table_layout_id":  layoutID,
			"date":             res.Date,
			"time":             res.Time,
			"number_of_guests": res.NumberOfGuests,
			"status":           domain.ReservationConfirmed,
		}, admin)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		resp := parse(t, w)
		var updated domain.Reservation
		require.NoError(t, json.Unmarshal(resp.Data["reservation"], &updated))
		assert.Equal(t, domain.ReservationConfirmed, updated.Status)
	})

	t.Run("double booking conflicts", func(t *testing.T) {
		w := s.request(t, "POST", "/api/v1/reservations", map[string]interface{}{
			"customer_id":      customerID,
			"restaurant_id":    restID,
			"table_layout_id":  layoutID,
			"date":             "2026-09-12",
			"time":             "19:30",
			"number_of_guests": 2,
		}, admin)
		require.Equal(t, http.StatusConflict, w.Code)

		resp := parse(t, w)
		assert.Equal(t, "CONFLICT", resp.Error.Code)
	})

	t.Run("list with counts", func(t *testing.T) {
		w := s.request(t, "GET", "/api/v1/restaurants?relations=reservation.count,table_layout.count", nil, admin)
		require.Equal(t, http.StatusOK, w.Code)

		resp := parse(t, w)
		var list []domain.Restaurant
		require.NoError(t, json.Unmarshal(resp.Data["restaurants"], &list))
		require.Len(t, list, 1)
		require.NotNil(t, list[0].Counts)
		require.NotNil(t, list[0].Counts.Reservation)
		assert.EqualValues(t, 1, *list[0].Counts.Reservation)
	})

	t.Run("delete restaurant then list", func(t *testing.T) {
		w := s.request(t, "DELETE", "/api/v1/restaurants/"+restID.String(), nil, admin)
		require.Equal(t, http.StatusOK, w.Code)

		w = s.request(t, "GET", "/api/v1/restaurants", nil, admin)
		require.Equal(t, http.StatusOK, w.Code)

		resp := parse(t, w)
		var list []domain.Restaurant
		require.NoError(t, json.Unmarshal(resp.Data["restaurants"], &list))
		assert.Empty(t, list)

		// deleting again is a 404, not an error surface
		w = s.request(t, "DELETE", "/api/v1/restaurants/"+restID.String(), nil, admin)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRoleGating(t *testing.T) {
	s := setupSuite(t)
	admin := s.login(t, "admin@test.com", "admin123")
	customer := s.registerCustomer(t, "carla@test.com")

	t.Run("customer cannot create restaurants", func(t *testing.T) {
		var adminUser domain.User
		require.NoError(t, s.db.Where("email = ?", "admin@test.com").First(&adminUser).Error)

		w := s.request(t, "POST", "/api/v1/restaurants", map[string]interface{}{
			"name":     "Sneaky",
			"location": "Nowhere",
			"user_id":  adminUser.ID,
		}, customer)
		require.Equal(t, http.StatusForbidden, w.Code)

		resp := parse(t, w)
		assert.Equal(t, "FORBIDDEN", resp.Error.Code)
	})

	t.Run("customer can read restaurants", func(t *testing.T) {
		w := s.request(t, "GET", "/api/v1/restaurants", nil, customer)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("customer can manage own preferences", func(t *testing.T) {
		var c domain.User
		require.NoError(t, s.db.Where("email = ?", "carla@test.com").First(&c).Error)

		w := s.request(t, "POST", "/api/v1/customer-preferences", map[string]interface{}{
			"customer_id":      c.ID,
			"preference_type":  "seating",
			"preference_value": "window",
		}, customer)
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("access endpoint answers single checks", func(t *testing.T) {
		w := s.request(t, "GET", "/api/v1/access?entity=restaurant&operation=create", nil, customer)
		require.Equal(t, http.StatusOK, w.Code)

		resp := parse(t, w)
		var allowed bool
		require.NoError(t, json.Unmarshal(resp.Data["allowed"], &allowed))
		assert.False(t, allowed)

		w = s.request(t, "GET", "/api/v1/access?entity=restaurant&operation=create", nil, admin)
		resp = parse(t, w)
		require.NoError(t, json.Unmarshal(resp.Data["allowed"], &allowed))
		assert.True(t, allowed)
	})

	t.Run("access endpoint returns grant map", func(t *testing.T) {
		w := s.request(t, "GET", "/api/v1/access", nil, customer)
		require.Equal(t, http.StatusOK, w.Code)

		resp := parse(t, w)
		var grants map[string][]string
		require.NoError(t, json.Unmarshal(resp.Data["grants"], &grants))
		assert.Contains(t, grants["reservation"], "create")
		assert.NotContains(t, grants["restaurant"], "delete")
	})

	t.Run("access endpoint rejects bogus operations", func(t *testing.T) {
		w := s.request(t, "GET", "/api/v1/access?entity=restaurant&operation=drop_table", nil, admin)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
