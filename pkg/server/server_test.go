package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Marcus-dot/project-dashboard-sub000/pkg/models/api"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/models/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockManagementService struct {
	mock.Mock
}

func (m *mockManagementService) UpsertProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *mockManagementService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *mockManagementService) RecordNPV(
	ctx context.Context,
	project string,
	series domain.CashFlowSeries,
) (*domain.NPVResult, error) {
	args := m.Called(ctx, project, series)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NPVResult), args.Error(1)
}

func (m *mockManagementService) RecordRiskAssessment(
	ctx context.Context,
	project string,
	factors domain.RiskFactors,
) (*domain.RiskResult, error) {
	args := m.Called(ctx, project, factors)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RiskResult), args.Error(1)
}

func (m *mockManagementService) RecordWastage(
	ctx context.Context,
	project string,
	input domain.WastageInput,
) (*domain.WastageResult, error) {
	args := m.Called(ctx, project, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WastageResult), args.Error(1)
}

func (m *mockManagementService) ListCalculations(
	ctx context.Context,
	project, kind string,
) ([]domain.Calculation, error) {
	args := m.Called(ctx, project, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Calculation), args.Error(1)
}

func (m *mockManagementService) GetProjectHealth(ctx context.Context, project string) (*domain.ProjectHealth, error) {
	args := m.Called(ctx, project)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectHealth), args.Error(1)
}

func (m *mockManagementService) GetPortfolioSummary(ctx context.Context) (*domain.PortfolioSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PortfolioSummary), args.Error(1)
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	mockPortfolio := new(mockManagementService)

	config := Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Portfolio: mockPortfolio,
			Logger:    logger,
		},
	}
	router := ConfigureRouter(config)
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	breakEven := 2

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setupMocks     func()
		expectedStatus int
		expected       interface{}
		parseResponse  func([]byte) (interface{}, error)
	}{
		{
			name:           "ComputeNPV",
			method:         http.MethodPost,
			path:           "/api/v1/calculations/npv",
			body:           `{"initial_investment":1000,"discount_rate":0,"cash_flows":[600,600]}`,
			setupMocks:     func() {},
			expectedStatus: http.StatusOK,
			expected: api.NPVResponse{
				NPV:      200,
				IsViable: true,
				CumulativeValues: []api.PeriodValue{
					{Period: 0, Value: -1000},
					{Period: 1, Value: -400},
					{Period: 2, Value: 200},
				},
				BreakEvenPeriod: &breakEven,
			},
			parseResponse: unmarshalResponse[api.NPVResponse](),
		},
		{
			name:           "ComputeNPV_MissingCashFlows",
			method:         http.MethodPost,
			path:           "/api/v1/calculations/npv",
			body:           `{"initial_investment":1000,"discount_rate":10}`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expected:       api.ErrorResponse{Error: `invalid input "cash_flows": must be an array`},
			parseResponse:  unmarshalResponse[api.ErrorResponse](),
		},
		{
			name:   "ListProjects",
			method: http.MethodGet,
			path:   "/api/v1/projects",
			setupMocks: func() {
				mockPortfolio.On("ListProjects", mock.Anything).
					Return([]domain.Project{{
						Name:     "solar-farm",
						Status:   domain.StatusInProgress,
						Priority: domain.PriorityHigh,
					}}, nil)
			},
			expectedStatus: http.StatusOK,
			expected: []api.Project{{
				Name:     "solar-farm",
				Status:   "In progress",
				Priority: "High",
			}},
			parseResponse: unmarshalResponse[[]api.Project](),
		},
		{
			name:   "RecordRiskAssessment",
			method: http.MethodPost,
			path:   "/api/v1/projects/solar-farm/risk",
			body:   `{"budget_variance":80}`,
			setupMocks: func() {
				mockPortfolio.On("RecordRiskAssessment", mock.Anything, "solar-farm", mock.Anything).
					Return(&domain.RiskResult{
						Score:           80,
						Level:           domain.RiskLevel{Level: domain.RiskLevelHigh, Color: "#ef4444"},
						Recommendations: []string{"Overall risk is high: immediate mitigation planning is required"},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expected: api.RiskResponse{
				RiskScore:       80,
				RiskLevel:       "High Risk",
				RiskColor:       "#ef4444",
				Recommendations: []string{"Overall risk is high: immediate mitigation planning is required"},
			},
			parseResponse: unmarshalResponse[api.RiskResponse](),
		},
		{
			name:   "GetProjectHealth",
			method: http.MethodGet,
			path:   "/api/v1/projects/solar-farm/health",
			setupMocks: func() {
				mockPortfolio.On("GetProjectHealth", mock.Anything, "solar-farm").
					Return(&domain.ProjectHealth{
						Project: "solar-farm",
						Score:   75,
						Band:    domain.HealthGood,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expected: api.ProjectHealth{
				Project:     "solar-farm",
				HealthScore: 75,
				Status:      "good",
				Color:       "#3b82f6",
			},
			parseResponse: unmarshalResponse[api.ProjectHealth](),
		},
		{
			name:   "GetPortfolioSummary",
			method: http.MethodGet,
			path:   "/api/v1/portfolio/summary",
			setupMocks: func() {
				mockPortfolio.On("GetPortfolioSummary", mock.Anything).
					Return(&domain.PortfolioSummary{
						ProjectCount: 2,
						AverageScore: 55,
						BandCounts: map[domain.HealthBand]int{
							domain.HealthGood: 1,
							domain.HealthPoor: 1,
						},
						NeedsAttention: []domain.ProjectHealth{{
							Project: "depot-upgrade",
							Score:   35,
							Band:    domain.HealthPoor,
						}},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expected: api.PortfolioSummary{
				ProjectCount: 2,
				AverageScore: 55,
				BandCounts:   map[string]int{"good": 1, "poor": 1},
				NeedsAttention: []api.ProjectHealth{{
					Project:     "depot-upgrade",
					HealthScore: 35,
					Status:      "poor",
					Color:       "#f97316",
				}},
			},
			parseResponse: unmarshalResponse[api.PortfolioSummary](),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			var body io.Reader
			if tc.body != "" {
				body = bytes.NewBufferString(tc.body)
			}
			req, err := http.NewRequest(tc.method, testServer.URL+tc.path, body)
			require.NoError(t, err, "Failed to build request")

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			data, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			actual, err := tc.parseResponse(data)
			require.NoError(t, err, "Failed to parse response")

			assert.Equal(t, tc.expected, actual)
		})
	}
}

func unmarshalResponse[T any]() func([]byte) (interface{}, error) {
	return func(data []byte) (interface{}, error) {
		var response T
		err := json.Unmarshal(data, &response)
		return response, err
	}
}
