package api_test

import (
	"errors"
	"net/http"
	"testing"

	"coupon-ledger/internal/handler/api"
	resdto "coupon-ledger/internal/handler/dto/response"
	"coupon-ledger/internal/handler/middleware"
	"coupon-ledger/internal/pkg/config"
	"coupon-ledger/internal/pkg/errs"
	"coupon-ledger/internal/usecase/commands"
	"coupon-ledger/tests/common/builder"
	"coupon-ledger/tests/common/httptest"
	"coupon-ledger/tests/common/testutil"
	commandsmock "coupon-ledger/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CouponHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCouponCommands
	adminKey     string
}

func (s *CouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	cfg := config.NewTestConfig()
	s.adminKey = cfg.Admin.APIKey
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCouponCommands(s.mockCtrl)
	handler := api.NewCouponHandler(s.mockCommands)

	s.router.POST("/coupons/generate", middleware.RequireAdminKey(cfg.Admin), handler.Generate)
}

func (s *CouponHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}

func (s *CouponHandlerTestSuite) TestGenerate() {
	url := "/coupons/generate"
	batch := builder.NewCouponBatchBuilder()

	tests := []struct {
		name         string
		headers      map[string]string
		mutate       func(m map[string]any)
		setupMock    func()
		expectCode   int
		expectInBody string
	}{
		{
			name:    "success: batch issued",
			headers: map[string]string{middleware.AdminKeyHeader: s.adminKey},
			setupMock: func() {
				s.mockCommands.EXPECT().
					IssueCoupons(gomock.Any(), batch.BuildInput()).
					Return(batch.BuildResult(7), nil)
			},
			expectCode: http.StatusOK,
		},
		{
			name:         "error: missing api key",
			expectCode:   http.StatusUnauthorized,
			expectInBody: "API key required",
		},
		{
			name:         "error: wrong api key",
			headers:      map[string]string{middleware.AdminKeyHeader: "nope"},
			expectCode:   http.StatusForbidden,
			expectInBody: "Invalid API key",
		},
		{
			name:         "error: missing batch name",
			headers:      map[string]string{middleware.AdminKeyHeader: s.adminKey},
			mutate:       testutil.Field("batchName", nil),
			expectCode:   http.StatusBadRequest,
			expectInBody: "Missing fields",
		},
		{
			name:         "error: zero count",
			headers:      map[string]string{middleware.AdminKeyHeader: s.adminKey},
			mutate:       testutil.Field("count", 0),
			expectCode:   http.StatusBadRequest,
			expectInBody: "Missing fields",
		},
		{
			name:    "error: count above batch limit",
			headers: map[string]string{middleware.AdminKeyHeader: s.adminKey},
			mutate:  testutil.Field("count", 50000),
			setupMock: func() {
				s.mockCommands.EXPECT().
					IssueCoupons(gomock.Any(), gomock.Any()).
					Return(nil, errs.Mark(errors.New("coupon count out of range"), commands.ErrValidation))
			},
			expectCode:   http.StatusBadRequest,
			expectInBody: "Invalid coupon batch",
		},
		{
			name:    "error: token generation exhausted",
			headers: map[string]string{middleware.AdminKeyHeader: s.adminKey},
			setupMock: func() {
				s.mockCommands.EXPECT().
					IssueCoupons(gomock.Any(), gomock.Any()).
					Return(nil, commands.ErrTokenGenerationFailed)
			},
			expectCode:   http.StatusInternalServerError,
			expectInBody: "Internal server error",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			if tc.setupMock != nil {
				tc.setupMock()
			}
			var muts []func(map[string]any)
			if tc.mutate != nil {
				muts = append(muts, tc.mutate)
			}
			body := testutil.DtoMap(s.T(), batch.BuildDTO(), muts...)

			w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, tc.headers)

			if tc.expectCode != http.StatusOK {
				httptest.AssertErrorResponse(s.T(), w, tc.expectCode, tc.expectInBody)
				return
			}
			var res resdto.GenerateCouponsResponse
			httptest.AssertSuccessResponse(s.T(), w, tc.expectCode, &res)
			s.True(res.Success)
			s.Equal(3, res.Count)
			s.Equal(int64(7), res.BatchID)
			s.Len(res.Tokens, 3)
		})
	}
}
