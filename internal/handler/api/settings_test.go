//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"experience-market/internal/domain/settings"
	"experience-market/internal/domain/user"
	"experience-market/internal/handler/api"
	resdto "experience-market/internal/handler/dto/response"
	"experience-market/internal/pkg/errs"
	"experience-market/internal/usecase/queries"
	"experience-market/tests/common/httptest"
	commandsmock "experience-market/tests/mock/commands"
	queriesmock "experience-market/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SettingsHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSettingsCommands
	mockQueries  *queriesmock.MockSettingsQueries
	handler      *api.SettingsHandler
	role         user.Role
}

func (s *SettingsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSettingsCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSettingsQueries(s.mockCtrl)
	s.handler = api.NewSettingsHandler(s.mockCommands, s.mockQueries)
	s.role = user.RoleAdmin

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", s.role)
		c.Next()
	}
	adminOnly := func(c *gin.Context) {
		role, _ := c.Get("user_role")
		if role != user.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}

	s.router.GET("/settings", authMiddleware, adminOnly, s.handler.List)
	s.router.GET("/settings/:key", authMiddleware, adminOnly, s.handler.Get)
	s.router.PUT("/settings/:key", authMiddleware, adminOnly, s.handler.Update)
}

func (s *SettingsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSettingsHandlerSuite(t *testing.T) {
	suite.Run(t, new(SettingsHandlerTestSuite))
}

func settingView(key string, value float64) *queries.SettingView {
	return &queries.SettingView{Key: key, Value: value, UpdatedAt: time.Now()}
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *SettingsHandlerTestSuite) TestUpdate() {
	url := "/settings/" + settings.KeyCommissionRate
	body := map[string]any{"value": 0.25}

	s.Run("success: returns the updated setting", func() {
		s.mockCommands.EXPECT().Set(gomock.Any(), settings.KeyCommissionRate, 0.25).
			Return(settingView(settings.KeyCommissionRate, 0.25), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "bearer-token")

		var resp resdto.SettingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(settings.KeyCommissionRate, resp.Key)
		s.Equal(0.25, resp.Value)
	})

	s.Run("error: 400 when the value is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 403 Forbidden for non-admin roles", func() {
		for _, role := range []user.Role{user.RoleGuest, user.RoleHost} {
			s.role = role
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
		}
		s.role = user.RoleAdmin
	})

	s.Run("error: maps settings errors to proper statuses", func() {
		testCases := []struct {
			name           string
			key            string
			settingsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown key",
				key:            "max_refund_days",
				settingsError:  errs.ErrSettingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Setting not found",
			},
			{
				name:           "out-of-range value",
				key:            settings.KeyCommissionRate,
				settingsError:  errs.ErrSettingOutOfRange,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "out of allowed range",
			},
			{
				name:           "internal error",
				key:            settings.KeyCommissionRate,
				settingsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Set(gomock.Any(), tc.key, 0.25).
					Return(nil, tc.settingsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/settings/"+tc.key, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *SettingsHandlerTestSuite) TestGet() {
	s.Run("success: returns the requested setting", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), settings.KeyServiceFee).
			Return(settingView(settings.KeyServiceFee, 250), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/settings/"+settings.KeyServiceFee, nil, "bearer-token")

		var resp resdto.SettingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(settings.KeyServiceFee, resp.Key)
		s.Equal(float64(250), resp.Value)
	})

	s.Run("error: 404 for an unknown key", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), "max_refund_days").
			Return(nil, errs.ErrSettingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/settings/max_refund_days", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Setting not found")
	})
}

func (s *SettingsHandlerTestSuite) TestList() {
	s.Run("success: lists every commerce setting", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return([]queries.SettingView{
				*settingView(settings.KeyCommissionRate, 0.15),
				*settingView(settings.KeyServiceFee, 250),
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/settings", nil, "bearer-token")

		var resp []resdto.SettingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Require().Len(resp, 2)
		s.Equal(settings.KeyCommissionRate, resp[0].Key)
	})
}
