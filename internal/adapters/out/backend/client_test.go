package backend_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dashboard/internal/adapters/out/backend"
	"dashboard/internal/core/application/state"
	"dashboard/internal/core/domain/model/account"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "secret-token"

func newSession(t *testing.T) *state.Session {
	t.Helper()
	session := state.NewSession()
	require.NoError(t, session.Start(account.User{ID: 1, Name: "Admin", RoleID: account.AdminRoleID}, testToken))
	return session
}

func newTestClient(t *testing.T, handler http.Handler) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := backend.NewClient(srv.URL, newSession(t))
	require.NoError(t, err)
	return client
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestNewClient_RejectsRelativeURL(t *testing.T) {
	_, err := backend.NewClient("/api", state.NewSession())
	require.Error(t, err)
}

func TestListOrders(t *testing.T) {
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/orders/fetch-order-details", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, `{"data": [
			{"id": 1, "order_number": "ORD-1", "status": "pending", "total": "25.50",
			 "customer": {"name": "Ann", "email": "ann@example.com"},
			 "order_details": [{"name": "Pizza", "quantity": 2, "price": 12.75}],
			 "created_at": "2024-05-01T10:00:00.000000Z"},
			{"id": "2", "order_number": "ORD-2", "status": "assigning", "total": 12,
			 "driver": {"id": 5, "name": "Sam"}, "quantity": 1, "payment_method": "cash"}
		]}`)
	})
	client := newTestClient(t, mux)

	orders, err := client.ListOrders(t.Context())
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, "Bearer "+testToken, gotAuth)

	first := orders[0]
	assert.Equal(t, kernel.ID(1), first.ID())
	assert.Equal(t, order.Pending, first.Status())
	assert.Equal(t, "25.50", first.Total().String())
	assert.Equal(t, "Ann", first.Customer().Name)
	require.Len(t, first.Details(), 1)
	assert.Equal(t, "25.50", first.Details()[0].Subtotal().String())
	assert.Equal(t, 2024, first.CreatedAt().Year())
	assert.False(t, first.HasDriver())

	second := orders[1]
	assert.Equal(t, kernel.ID(2), second.ID())
	assert.Equal(t, "12.00", second.Total().String())
	require.True(t, second.HasDriver())
	assert.Equal(t, "Sam", second.Driver().Name())
	assert.Equal(t, "cash", second.PaymentMethod())
}

func TestListOrders_WithoutSession(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		writeJSON(w, http.StatusOK, `{"data": []}`)
	}))
	t.Cleanup(srv.Close)

	client, err := backend.NewClient(srv.URL, state.NewSession())
	require.NoError(t, err)

	_, err = client.ListOrders(t.Context())
	require.ErrorIs(t, err, state.ErrNotLoggedIn)
	assert.False(t, called)
}

func TestListOrders_MalformedResponse(t *testing.T) {
	tests := map[string]string{
		"missing data":   `{"orders": []}`,
		"unknown status": `{"data": [{"id": 1, "order_number": "ORD-1", "status": "lost"}]}`,
		"bad total":      `{"data": [{"id": 1, "order_number": "ORD-1", "status": "pending", "total": "abc"}]}`,
		"bad created_at": `{"data": [{"id": 1, "order_number": "ORD-1", "status": "pending", "created_at": "yesterday"}]}`,
		"not json":       `<html>oops</html>`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, http.StatusOK, body)
			}))

			_, err := client.ListOrders(t.Context())

			var schemaErr *backend.SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, "OrderListResponse", schemaErr.Schema)
		})
	}
}

func TestListOrders_TimestampLayouts(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"data": [
			{"id": 1, "order_number": "ORD-1", "status": "pending", "created_at": "2024-05-01 10:00:00", "updated_at": null},
			{"id": 2, "order_number": "ORD-2", "status": "pending", "created_at": "2024-05-01T10:00:00", "updated_at": ""}
		]}`)
	}))

	orders, err := client.ListOrders(t.Context())
	require.NoError(t, err)
	require.Len(t, orders, 2)

	want := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	for _, o := range orders {
		assert.True(t, want.Equal(o.CreatedAt()), "order %s", o.ID())
		assert.True(t, o.UpdatedAt().IsZero())
	}
}

func TestListOrders_DriverOnPendingOrderIsRejected(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"data": [
			{"id": 1, "order_number": "ORD-1", "status": "pending", "driver": {"id": 5, "name": "Sam"}}
		]}`)
	}))

	orders, err := client.ListOrders(t.Context())
	require.Error(t, err)
	assert.Nil(t, orders)
}

func TestGetOrder_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/orders/fetch-order-detail-by-id/{id}", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"message": "Order not found"}`)
	})
	client := newTestClient(t, mux)

	_, err := client.GetOrder(t.Context(), 42)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	var statusErr *backend.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, "Order not found", statusErr.Message)
	assert.Equal(t, "/api/orders/fetch-order-detail-by-id/42", statusErr.Path)
}

func TestGetOrder(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/orders/fetch-order-detail-by-id/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.PathValue("id"))
		writeJSON(w, http.StatusOK, `{"data": {"id": 7, "order_number": "ORD-7", "status": "accepted",
			"address": {"id": 3, "address": "1 Main St"}, "total": "9.99"}}`)
	})
	client := newTestClient(t, mux)

	o, err := client.GetOrder(t.Context(), 7)
	require.NoError(t, err)
	assert.Equal(t, "ORD-7", o.Number())
	require.NotNil(t, o.Address())
	assert.Equal(t, "1 Main St", o.Address().Line)
}

func TestChangeStatus(t *testing.T) {
	var got map[string]string
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /api/orders/accept-or-declined/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.PathValue("id"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, http.StatusOK, `{"message": "ok", "order": {"id": 7, "status": "declined"}}`)
	})
	client := newTestClient(t, mux)

	status, err := client.ChangeStatus(t.Context(), 7, order.Accepted)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"status": "accepted"}, got)
	assert.Equal(t, order.Declined, status, "the reported status is returned even when it differs")
}

func TestChangeStatus_ServerError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusInternalServerError, `{"error": "boom"}`)
	}))

	_, err := client.ChangeStatus(t.Context(), 7, order.Accepted)

	var statusErr *backend.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, "boom", statusErr.Message)
	assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestChangeStatus_Unauthorized(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"message": "Unauthenticated."}`)
	}))

	_, err := client.ChangeStatus(t.Context(), 7, order.Accepted)
	require.ErrorIs(t, err, backend.ErrUnauthorized)
}

func TestAssignDriver(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantName string
		wantNil  bool
	}{
		{name: "reported driver", body: `{"driver": {"id": 5, "name": "Sam"}}`, wantName: "Sam"},
		{name: "driver without name", body: `{"driver": {"id": "5"}}`, wantName: ""},
		{name: "driver omitted", body: `{"message": "assigned"}`, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got map[string]any
			mux := http.NewServeMux()
			mux.HandleFunc("PATCH /api/orders/assign-a-driver/{id}", func(w http.ResponseWriter, r *http.Request) {
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				writeJSON(w, http.StatusOK, tt.body)
			})
			client := newTestClient(t, mux)

			d, err := client.AssignDriver(t.Context(), 7, 5)
			require.NoError(t, err)

			assert.InDelta(t, 5.0, got["driver_id"], 0)
			if tt.wantNil {
				assert.Nil(t, d)
				return
			}
			require.NotNil(t, d)
			assert.Equal(t, kernel.ID(5), d.ID())
			assert.Equal(t, tt.wantName, d.Name())
		})
	}
}

func TestListDrivers(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/users/get-users-by-role-name/driver", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"data": [{"id": 5, "name": "Sam"}, {"id": 6, "name": null}]}`)
	})
	client := newTestClient(t, mux)

	drivers, err := client.ListDrivers(t.Context())
	require.NoError(t, err)
	require.Len(t, drivers, 2)
	assert.Equal(t, "Sam", drivers[0].Name())
	assert.True(t, drivers[1].IsPlaceholder())
}

func TestLogin(t *testing.T) {
	var gotAuth string
	var got map[string]string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, http.StatusOK, `{"data": {"id": 1, "name": "Admin", "email": "admin@example.com", "role_id": 1},
			"token": "fresh"}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client, err := backend.NewClient(srv.URL, state.NewSession())
	require.NoError(t, err)

	credentials, err := account.NewCredentials("admin@example.com", "pw")
	require.NoError(t, err)

	user, token, err := client.Login(t.Context(), credentials)
	require.NoError(t, err)

	assert.Empty(t, gotAuth, "login is sent without a token")
	assert.Equal(t, map[string]string{"email": "admin@example.com", "password": "pw"}, got)
	assert.Equal(t, "fresh", token)
	assert.Equal(t, kernel.ID(1), user.ID)
	assert.True(t, user.IsAdmin())
}

func TestLogin_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"data": {"id": 1, "role_id": 1}}`)
	}))
	t.Cleanup(srv.Close)

	client, err := backend.NewClient(srv.URL, state.NewSession())
	require.NoError(t, err)

	_, _, err = client.Login(t.Context(), account.Credentials{Email: "a@b.c", Password: "x"})

	var schemaErr *backend.SchemaError
	require.ErrorAs(t, err, &schemaErr)
}

func TestGetUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.PathValue("id"))
		writeJSON(w, http.StatusOK, `{"data": {"id": 1, "name": "Admin", "email": "admin@example.com", "role_id": "1"}}`)
	})
	client := newTestClient(t, mux)

	user, err := client.GetUser(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Email)
	assert.Equal(t, account.AdminRoleID, user.RoleID)
}

func TestCounts(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/categories", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"data": [{"id": 1}, {"id": 2}]}`)
	})
	mux.HandleFunc("GET /api/foods/fetchAllFoods", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"data": [{"id": 1}, {"id": 2}, {"id": 3}]}`)
	})
	mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"data": []}`)
	})
	client := newTestClient(t, mux)

	categories, err := client.CountCategories(t.Context())
	require.NoError(t, err)
	foods, err := client.CountFoods(t.Context())
	require.NoError(t, err)
	users, err := client.CountUsers(t.Context())
	require.NoError(t, err)

	assert.Equal(t, 2, categories)
	assert.Equal(t, 3, foods)
	assert.Equal(t, 0, users)
}

func TestCounts_BackendDown(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := client.CountFoods(t.Context())

	var statusErr *backend.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Empty(t, statusErr.Message)
}
