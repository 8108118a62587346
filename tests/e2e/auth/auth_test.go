//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"experience-market/internal/domain/user"
	"experience-market/internal/handler/dto/request"
	"experience-market/internal/usecase/queries"
	"experience-market/tests/common/authtest"
	"experience-market/tests/common/dbtest"
	"experience-market/tests/common/httptest"
	"experience-market/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "guest@example.com", string(user.RoleGuest))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleGuest))

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", email: "guest@example.com", password: authtest.TestPassword, expectedStatus: http.StatusOK},
		{name: "unknown user", email: "nobody@example.com", password: authtest.TestPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "guest@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "inactive account", email: "inactive@example.com", password: authtest.TestPassword, expectedStatus: http.StatusForbidden},
		{name: "empty email rejected", email: "", password: authtest.TestPassword, expectedStatus: http.StatusBadRequest},
		{name: "short password rejected", email: "guest@example.com", password: "short", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{Email: tt.email, Password: tt.password}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				require.NotNil(t, httptest.ExtractCookie(w, "access_token"))
				require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"))
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("refresh token cookie rotates the pair", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "guest@example.com", Password: authtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, w.Code)

		cookies := httptest.ExtractCookies(w)
		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, cookies, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.NotNil(t, httptest.ExtractCookie(w, "access_token"))
	})

	s.Run("garbage refresh token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: "not-a-token"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	s.Run("returns the authenticated user", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "admin@example.com", authtest.TestPassword)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		var view queries.AuthorizedUserView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		require.Equal(t, "admin@example.com", view.Email)
		require.Equal(t, string(user.RoleAdmin), view.Role)
	})

	s.Run("rejects missing token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("rejects expired token", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expired@example.com", string(user.RoleGuest))
		expired := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(t, userID, user.RoleGuest)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("clears the token cookies", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "guest@example.com", Password: authtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, w.Code)

		authtest.LogoutUser(t, s.Router, httptest.ExtractCookies(w))
	})
}
