package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/restaurant-directory/internal/config"
	httpDelivery "github.com/restaurant-directory/internal/delivery/http"
	"github.com/restaurant-directory/internal/delivery/http/handler"
	"github.com/restaurant-directory/internal/domain"
	"github.com/restaurant-directory/internal/domain/repository/mocks"
	"github.com/restaurant-directory/internal/pkg/errors"
	"github.com/restaurant-directory/internal/pkg/token"
	"github.com/restaurant-directory/internal/usecase"
)

type testServer struct {
	app         *fiber.App
	restaurants *mocks.RestaurantRepository
	users       *mocks.UserRepository
	tokens      *token.Manager
	bearer      string
}

type fakeStore struct{ err error }

func (f fakeStore) Health(context.Context) error { return f.err }

func newTestServer(t *testing.T, store httpDelivery.HealthChecker) *testServer {
	t.Helper()

	log := zap.NewNop()
	restaurants := &mocks.RestaurantRepository{}
	users := &mocks.UserRepository{}

	tokens, err := token.NewManager("test-secret")
	require.NoError(t, err)

	proximityUC := usecase.NewProximityUseCase(restaurants, log)
	restaurantUC := usecase.NewRestaurantUseCase(restaurants, proximityUC, log)
	authUC := usecase.NewAuthUseCase(users, tokens, bcrypt.MinCost, log)

	server := httpDelivery.NewServer(
		&config.Config{},
		log,
		tokens,
		store,
		handler.NewAuthHandler(authUC, log),
		handler.NewRestaurantHandler(restaurantUC, log),
		handler.NewProximityHandler(proximityUC, log),
	)

	signed, err := tokens.Generate("user-1", "alice@example.com")
	require.NoError(t, err)

	return &testServer{
		app:         server.App(),
		restaurants: restaurants,
		users:       users,
		tokens:      tokens,
		bearer:      "Bearer " + signed,
	}
}

func (s *testServer) do(t *testing.T, method, target string, body interface{}, authorization string) (int, map[string]interface{}, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if authorization != "" {
		req.Header.Set(fiber.HeaderAuthorization, authorization)
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var obj map[string]interface{}
	_ = json.Unmarshal(raw, &obj)

	return resp.StatusCode, obj, raw
}

// ============================================================================
// Access gate
// ============================================================================

func TestServer_AccessGate(t *testing.T) {
	s := newTestServer(t, nil)

	t.Run("missing token", func(t *testing.T) {
		status, body, _ := s.do(t, http.MethodGet, "/api/restaurants", nil, "")

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Access denied. No token provided.", body["message"])
	})

	t.Run("non-bearer scheme", func(t *testing.T) {
		status, body, _ := s.do(t, http.MethodGet, "/api/restaurants", nil, "Basic dXNlcjpwYXNz")

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "MISSING_TOKEN", body["code"])
	})

	t.Run("invalid token", func(t *testing.T) {
		status, body, _ := s.do(t, http.MethodDelete, "/api/restaurants/abc", nil, "Bearer not.a.jwt")

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Invalid or expired token.", body["message"])
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other, err := token.NewManager("another-secret")
		require.NoError(t, err)
		forged, err := other.Generate("user-1", "alice@example.com")
		require.NoError(t, err)

		status, _, _ := s.do(t, http.MethodGet, "/api/protected", nil, "Bearer "+forged)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	s.restaurants.AssertNotCalled(t, "List", mock.Anything)
	s.restaurants.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)

	t.Run("protected route echoes claims", func(t *testing.T) {
		status, body, _ := s.do(t, http.MethodGet, "/api/protected", nil, s.bearer)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "This is a protected route.", body["message"])
		user := body["user"].(map[string]interface{})
		assert.Equal(t, "user-1", user["_id"])
		assert.Equal(t, "alice@example.com", user["email"])
	})
}

// ============================================================================
// Auth
// ============================================================================

func TestServer_Signup(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.users.On("GetByEmail", mock.Anything, "bob@example.com").Return(nil, errors.ErrUserNotFound).Once()
		s.users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Once()

		status, body, _ := s.do(t, http.MethodPost, "/api/auth/signup", map[string]string{
			"username": "bob",
			"email":    "bob@example.com",
			"password": "secret123",
		}, "")

		assert.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "User registered successfully!", body["message"])
		s.users.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.users.On("GetByEmail", mock.Anything, "bob@example.com").
			Return(&domain.User{ID: "u1", Email: "bob@example.com"}, nil).Once()

		status, body, _ := s.do(t, http.MethodPost, "/api/auth/signup", map[string]string{
			"username": "bob",
			"email":    "bob@example.com",
			"password": "secret123",
		}, "")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "User already exists with this email.", body["message"])
		s.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing field", func(t *testing.T) {
		s := newTestServer(t, nil)

		status, body, _ := s.do(t, http.MethodPost, "/api/auth/signup", map[string]string{
			"email":    "bob@example.com",
			"password": "secret123",
		}, "")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "All fields are required: username, email, and password.", body["message"])
	})

	t.Run("schema violation lists errors", func(t *testing.T) {
		s := newTestServer(t, nil)

		status, body, _ := s.do(t, http.MethodPost, "/api/auth/signup", map[string]string{
			"username": "bob",
			"email":    "not-an-email",
			"password": "123",
		}, "")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Validation failed", body["message"])
		assert.Len(t, body["errors"], 2)
	})

	t.Run("malformed body", func(t *testing.T) {
		s := newTestServer(t, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader([]byte("{")))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := s.app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{ID: "u-42", Email: "carol@example.com", PasswordHash: string(hash)}

	t.Run("issues token bound to the user", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.users.On("GetByEmail", mock.Anything, "carol@example.com").Return(user, nil).Once()

		status, body, _ := s.do(t, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    "carol@example.com",
			"password": "secret123",
		}, "")

		require.Equal(t, http.StatusOK, status)
		claims, err := s.tokens.Parse(body["token"].(string))
		require.NoError(t, err)
		assert.Equal(t, "u-42", claims.UserID)
		assert.Equal(t, "carol@example.com", claims.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.users.On("GetByEmail", mock.Anything, "carol@example.com").Return(user, nil).Once()

		status, body, _ := s.do(t, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    "carol@example.com",
			"password": "wrong-password",
		}, "")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Invalid email or password.", body["message"])
		assert.NotContains(t, body, "token")
	})

	t.Run("unknown email", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, errors.ErrUserNotFound).Once()

		status, body, _ := s.do(t, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    "nobody@example.com",
			"password": "secret123",
		}, "")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Invalid email or password.", body["message"])
	})
}

// ============================================================================
// Restaurants CRUD
// ============================================================================

func TestServer_RestaurantCRUD(t *testing.T) {
	stored := &domain.Restaurant{
		ID:          "r1",
		Name:        "Mission Tacos",
		Description: "Tacos",
		Location:    domain.NewPoint(-122.42, 37.77),
		Ratings:     []float64{},
	}

	t.Run("create", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.restaurants.On("Create", mock.Anything, mock.AnythingOfType("*domain.Restaurant")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Restaurant).ID = "r1"
			}).
			Return(nil).Once()

		status, body, _ := s.do(t, http.MethodPost, "/api/restaurants", map[string]interface{}{
			"name":        "Mission Tacos",
			"description": "Tacos",
			"location":    map[string]interface{}{"type": "Point", "coordinates": []float64{-122.42, 37.77}},
		}, s.bearer)

		require.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "Restaurant created successfully!", body["message"])
		restaurant := body["restaurant"].(map[string]interface{})
		assert.Equal(t, "r1", restaurant["id"])
		assert.Equal(t, []interface{}{}, restaurant["ratings"])
		assert.Equal(t, 500.0, restaurant["radius"])
	})

	t.Run("create rejects non-point location", func(t *testing.T) {
		s := newTestServer(t, nil)

		status, body, _ := s.do(t, http.MethodPost, "/api/restaurants", map[string]interface{}{
			"name":        "Bad",
			"description": "Bad",
			"location":    map[string]interface{}{"type": "Polygon", "coordinates": []float64{1, 2}},
		}, s.bearer)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Location must be of type Point", body["message"])
		s.restaurants.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("get by id", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.restaurants.On("GetByID", mock.Anything, "r1").Return(stored, nil).Once()

		status, body, _ := s.do(t, http.MethodGet, "/api/restaurants/r1", nil, s.bearer)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Mission Tacos", body["name"])
	})

	t.Run("get unknown id", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.restaurants.On("GetByID", mock.Anything, "missing").Return(nil, errors.ErrRestaurantNotFound).Once()

		status, body, _ := s.do(t, http.MethodGet, "/api/restaurants/missing", nil, s.bearer)

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Restaurant not found", body["message"])
	})

	t.Run("update", func(t *testing.T) {
		s := newTestServer(t, nil)
		updated := *stored
		updated.Name = "Renamed"
		s.restaurants.On("Update", mock.Anything, "r1", mock.MatchedBy(func(u domain.RestaurantUpdate) bool {
			return u.Name != nil && *u.Name == "Renamed" && u.Location == nil
		})).Return(&updated, nil).Once()

		status, body, _ := s.do(t, http.MethodPut, "/api/restaurants/r1", map[string]string{"name": "Renamed"}, s.bearer)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Restaurant updated successfully!", body["message"])
		assert.Equal(t, "Renamed", body["restaurant"].(map[string]interface{})["name"])
	})

	t.Run("delete twice", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.restaurants.On("Delete", mock.Anything, "r1").Return(nil).Once()
		s.restaurants.On("Delete", mock.Anything, "r1").Return(errors.ErrRestaurantNotFound).Once()

		status, body, _ := s.do(t, http.MethodDelete, "/api/restaurants/r1", nil, s.bearer)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Restaurant deleted successfully!", body["message"])

		status, _, _ = s.do(t, http.MethodDelete, "/api/restaurants/r1", nil, s.bearer)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("store failure is redacted", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.restaurants.On("List", mock.Anything).
			Return(nil, errors.ErrDatabaseError.WithCause(stderrors.New("connection refused to 10.0.0.7"))).Once()

		status, body, raw := s.do(t, http.MethodGet, "/api/restaurants", nil, s.bearer)

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "DATABASE_ERROR", body["code"])
		assert.NotContains(t, string(raw), "10.0.0.7")
	})

	t.Run("list with region filter in miles", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.restaurants.On("FindWithinSphere", mock.Anything, domain.NewPoint(-122.42, 37.77), mock.MatchedBy(func(m float64) bool {
			return m > 1609.34 && m < 1609.35
		})).Return([]*domain.Restaurant{stored}, nil).Once()

		status, _, raw := s.do(t, http.MethodGet, "/api/restaurants?longitude=-122.42&latitude=37.77&distance=1", nil, s.bearer)

		require.Equal(t, http.StatusOK, status)
		var list []map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &list))
		assert.Len(t, list, 1)
		s.restaurants.AssertNotCalled(t, "List", mock.Anything)
	})

	t.Run("list with blank filter values is unfiltered", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.restaurants.On("List", mock.Anything).Return([]*domain.Restaurant{stored}, nil).Once()

		status, _, raw := s.do(t, http.MethodGet, "/api/restaurants?longitude=&latitude=&distance=", nil, s.bearer)

		require.Equal(t, http.StatusOK, status)
		var list []map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &list))
		assert.Len(t, list, 1)
		s.restaurants.AssertNotCalled(t, "FindWithinSphere", mock.Anything, mock.Anything, mock.Anything)
	})
}

// ============================================================================
// Proximity
// ============================================================================

func TestServer_Proximity(t *testing.T) {
	avg := 4.5
	near := []*domain.NearbyRestaurant{
		{ID: "r1", Name: "Close", Location: domain.NewPoint(-122.42, 37.77), AverageRating: &avg, NumberOfRatings: 2, Distance: 0},
		{ID: "r2", Name: "Unrated", Location: domain.NewPoint(-122.41, 37.77), Distance: 880},
	}

	t.Run("nearby is not shadowed by :id", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.restaurants.On("FindNear", mock.Anything, domain.ProximityQuery{
			Center:      domain.NewPoint(-122.42, 37.77),
			MaxDistance: 1000,
		}).Return(near, nil).Once()

		status, _, raw := s.do(t, http.MethodGet, "/api/restaurants/nearby?longitude=-122.42&latitude=37.77&radius=1000", nil, s.bearer)

		require.Equal(t, http.StatusOK, status)
		var list []map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &list))
		require.Len(t, list, 2)
		assert.Equal(t, 4.5, list[0]["averageRating"])
		assert.Contains(t, list[1], "averageRating")
		assert.Nil(t, list[1]["averageRating"])
		assert.Equal(t, 0.0, list[1]["numberOfRatings"])
		s.restaurants.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("nearby missing radius", func(t *testing.T) {
		s := newTestServer(t, nil)

		status, body, _ := s.do(t, http.MethodGet, "/api/restaurants/nearby?longitude=-122.42&latitude=37.77", nil, s.bearer)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Latitude, longitude, and radius are required", body["message"])
	})

	t.Run("nearby blank coordinates are missing", func(t *testing.T) {
		s := newTestServer(t, nil)

		status, body, _ := s.do(t, http.MethodGet, "/api/restaurants/nearby?longitude=&latitude=&radius=1000", nil, s.bearer)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Latitude, longitude, and radius are required", body["message"])
		s.restaurants.AssertNotCalled(t, "FindNear", mock.Anything, mock.Anything)
	})

	t.Run("nearby zero coordinates are valid", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.restaurants.On("FindNear", mock.Anything, mock.Anything).Return([]*domain.NearbyRestaurant{}, nil).Once()

		status, _, raw := s.do(t, http.MethodGet, "/api/restaurants/nearby?longitude=0&latitude=0&radius=10", nil, s.bearer)

		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, "[]", string(raw))
	})

	t.Run("nearby non-numeric", func(t *testing.T) {
		s := newTestServer(t, nil)

		status, _, _ := s.do(t, http.MethodGet, "/api/restaurants/nearby?longitude=abc&latitude=37.77&radius=10", nil, s.bearer)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("range projects location", func(t *testing.T) {
		s := newTestServer(t, nil)
		s.restaurants.On("FindNear", mock.Anything, mock.MatchedBy(func(q domain.ProximityQuery) bool {
			return q.MinDistance != nil && *q.MinDistance == 500 && q.MaxDistance == 2000
		})).Return(near[1:], nil).Once()

		status, _, raw := s.do(t, http.MethodGet,
			"/api/restaurants/range?longitude=-122.42&latitude=37.77&minimumDistance=500&maximumDistance=2000", nil, s.bearer)

		require.Equal(t, http.StatusOK, status)
		var list []map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &list))
		require.Len(t, list, 1)
		location := list[0]["location"].(map[string]interface{})
		assert.Equal(t, 37.77, location["latitude"])
		assert.Equal(t, -122.41, location["longitude"])
	})

	t.Run("range missing bound", func(t *testing.T) {
		s := newTestServer(t, nil)

		status, body, _ := s.do(t, http.MethodGet,
			"/api/restaurants/range?longitude=-122.42&latitude=37.77&minimumDistance=500", nil, s.bearer)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Latitude, longitude, minimumDistance, and maximumDistance are required", body["message"])
	})

	t.Run("range blank coordinates are missing", func(t *testing.T) {
		s := newTestServer(t, nil)

		status, body, _ := s.do(t, http.MethodGet,
			"/api/restaurants/range?longitude=&latitude=&minimumDistance=&maximumDistance=1000", nil, s.bearer)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Latitude, longitude, minimumDistance, and maximumDistance are required", body["message"])
		s.restaurants.AssertNotCalled(t, "FindNear", mock.Anything, mock.Anything)
	})
}

// ============================================================================
// System
// ============================================================================

func TestServer_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		s := newTestServer(t, fakeStore{})

		status, body, _ := s.do(t, http.MethodGet, "/api/health", nil, "")
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "healthy", body["status"])
		assert.NotEmpty(t, body["time"])
	})

	t.Run("store down", func(t *testing.T) {
		s := newTestServer(t, fakeStore{err: stderrors.New("down")})

		status, body, _ := s.do(t, http.MethodGet, "/api/health", nil, "")
		assert.Equal(t, http.StatusServiceUnavailable, status)
		assert.Equal(t, "unhealthy", body["status"])
	})
}

func TestServer_UnknownRoute(t *testing.T) {
	s := newTestServer(t, nil)

	status, body, _ := s.do(t, http.MethodGet, "/api/unknown", nil, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])
}
