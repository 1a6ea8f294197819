package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/denzstore/storepanel/internal/handler/http/mocks"
	"github.com/denzstore/storepanel/internal/models"
	"github.com/denzstore/storepanel/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_CreateOrder(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(t *testing.T) *mocks.MockOrderService
		wantStatusCode int
		wantOrderID    string
		wantQRIS       string
	}{
		{
			name: "valid_request_return_200",
			body: `{"user":"u1","service":"s1","target":"t1","quantity":2}`,
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().PlaceOrder(gomock.Any(), "u1", "s1", "t1", 2).Return(&service.PlacedOrder{
					Order: models.Order{
						OrderID: "X1",
						Status:  models.OrderStatusPending,
						Amount:  1000,
					},
					QRIS: "qr-payload",
				}, nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusOK,
			wantOrderID:    "X1",
			wantQRIS:       "qr-payload",
		},
		{
			name: "malformed_body_return_400",
			body: `{`,
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "missing_fields_return_400",
			body: `{"user":"u1"}`,
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.ErrInvalidRequest).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "upstream_failure_return_400",
			body: `{"user":"u1","service":"s1","target":"t1","quantity":2}`,
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.NewUpstreamError("service not found")).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "internal_error_return_500",
			body: `{"user":"u1","service":"s1","target":"t1","quantity":2}`,
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().PlaceOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.ErrInternalError).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/order", strings.NewReader(tt.body))
			require.NoError(t, err)

			w := httptest.NewRecorder()
			st := tt.setup(t)

			h := NewOrderHandler(st).CreateOrder()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)

			if tt.wantStatusCode == http.StatusOK {
				var resp createOrderResponse
				require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
				assert.True(t, resp.Status)
				assert.Equal(t, tt.wantOrderID, resp.OrderID)
				assert.Equal(t, tt.wantQRIS, resp.QRIS)
			}
		})
	}
}

func TestOrderHandler_ListOrders(t *testing.T) {
	createdAt := time.Now().UTC().Truncate(time.Second)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcMock := mocks.NewMockOrderService(ctrl)
	svcMock.EXPECT().ListOrders(gomock.Any()).Return([]models.Order{
		{
			OrderID:   "ORD1",
			User:      "u1",
			ServiceID: "s1",
			Target:    "t1",
			Quantity:  2,
			Amount:    1000,
			Status:    models.OrderStatusPending,
			CreatedAt: createdAt,
		},
	}, nil)

	req, err := http.NewRequest(http.MethodGet, "/orders", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	h := NewOrderHandler(svcMock).ListOrders()
	h(w, req)

	res := w.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var got []models.Order
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))

	want := []models.Order{
		{
			OrderID:   "ORD1",
			User:      "u1",
			ServiceID: "s1",
			Target:    "t1",
			Quantity:  2,
			Amount:    1000,
			Status:    models.OrderStatusPending,
			CreatedAt: createdAt,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("orders mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderHandler_Testimonials(t *testing.T) {
	paidAt := time.Now()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcMock := mocks.NewMockOrderService(ctrl)
	svcMock.EXPECT().ListOrders(gomock.Any()).Return([]models.Order{
		{OrderID: "ORD1", ServiceID: "s1", Quantity: 2, Status: models.OrderStatusPaid, PaidAt: &paidAt},
		{OrderID: "ORD2", ServiceID: "s2", Quantity: 1, Status: models.OrderStatusPending},
	}, nil)

	req, err := http.NewRequest(http.MethodGet, "/testimonials", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	h := NewOrderHandler(svcMock).Testimonials()
	h(w, req)

	res := w.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var got []testimonialResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))

	want := []testimonialResponse{
		{Service: "s1", Quantity: 2, OrderID: "ORD1"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("testimonials mismatch (-want +got):\n%s", diff)
	}
}
