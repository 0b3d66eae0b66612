package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	model "carpet-auction-house/internal/models"
	handler "carpet-auction-house/services/marketplace/handler"
	"carpet-auction-house/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSetupRouter_Routes(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc := handler.NewMockMarketplaceServiceInterface(ctrl)
	svc.EXPECT().WalletStatus(gomock.Any()).Return(model.WalletStatus{DemoMode: true}).AnyTimes()
	svc.EXPECT().ListAuctions(gomock.Any(), gomock.Any()).Return(model.AuctionList{Source: model.SourceDemo}).AnyTimes()

	router := SetupRouter(svc)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "healthz", method: http.MethodGet, path: "/healthz", expectedStatus: http.StatusOK},
		{name: "wallet", method: http.MethodGet, path: "/wallet", expectedStatus: http.StatusOK},
		{name: "auctions", method: http.MethodGet, path: "/auctions", expectedStatus: http.StatusOK},
		{name: "bad_auction_id", method: http.MethodGet, path: "/auctions/zero", expectedStatus: http.StatusBadRequest},
		{name: "bad_dashboard_account", method: http.MethodGet, path: "/users/bob/dashboard", expectedStatus: http.StatusBadRequest},
		{name: "unknown_route", method: http.MethodGet, path: "/items/1", expectedStatus: http.StatusNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

func TestSetupRouter_Metrics(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	router := SetupRouter(handler.NewMockMarketplaceServiceInterface(ctrl))

	// one request so the latency histogram has a sample
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, strings.Contains(w.Body.String(), "carpet_http_request_duration_seconds"))
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Parallel()
	router := gin.New()
	router.Use(RequestIDMiddleware)
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.GetString(utils.RequestIDKey)})
	})

	existing := uuid.NewString()

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "valid_id_kept", incoming: existing, keep: true},
		{name: "missing_id_issued", incoming: ""},
		{name: "malformed_id_replaced", incoming: "not-a-uuid"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.incoming != "" {
				req.Header.Set(utils.RequestIDHeader, tc.incoming)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			got := w.Header().Get(utils.RequestIDHeader)
			_, err := uuid.Parse(got)
			require.NoError(t, err)
			if tc.keep {
				require.Equal(t, tc.incoming, got)
			} else {
				require.NotEqual(t, tc.incoming, got)
			}

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.Equal(t, got, body["id"])
		})
	}
}

func TestSetupRouter_ErrorCarriesRequestID(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	router := SetupRouter(handler.NewMockMarketplaceServiceInterface(ctrl))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auctions/nope", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, w.Header().Get(utils.RequestIDHeader), resp["request_id"])
}
