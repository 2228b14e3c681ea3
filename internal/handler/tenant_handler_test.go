package handler

import (
	"net/http"
	"testing"

	"erp-service/internal/model"
	"erp-service/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListTenants(t *testing.T) {
	t.Run("superadmin sees every tenant", func(t *testing.T) {
		tenants := new(MockTenantStore)
		h := NewTenantHandler(tenants)

		tenants.On("List", mock.Anything).Return([]model.Tenant{
			{ID: 1, CompanyName: "Acme"},
			{ID: 2, CompanyName: "Globex"},
		}, nil)

		c, rec := newTestContext(http.MethodGet, "/api/tenants", "")
		withSession(c, superAdminSession())

		require.NoError(t, h.ListTenants(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Acme")
		assert.Contains(t, rec.Body.String(), "Globex")
	})

	t.Run("tenant admin gets 403", func(t *testing.T) {
		tenants := new(MockTenantStore)
		h := NewTenantHandler(tenants)

		c, rec := newTestContext(http.MethodGet, "/api/tenants", "")
		withSession(c, adminSession(1))

		require.NoError(t, h.ListTenants(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		tenants.AssertNotCalled(t, "List", mock.Anything)
	})
}

func TestGetTenant(t *testing.T) {
	t.Run("tenant admin reads its own tenant", func(t *testing.T) {
		tenants := new(MockTenantStore)
		h := NewTenantHandler(tenants)

		tenants.On("Get", mock.Anything, uint(7)).Return(&model.Tenant{ID: 7, CompanyName: "Acme"}, nil)

		c, rec := newTestContext(http.MethodGet, "/api/tenants/7", "")
		c.SetParamNames("id")
		c.SetParamValues("7")
		withSession(c, adminSession(7))

		require.NoError(t, h.GetTenant(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Acme")
	})

	t.Run("tenant admin cannot read another tenant", func(t *testing.T) {
		tenants := new(MockTenantStore)
		h := NewTenantHandler(tenants)

		c, rec := newTestContext(http.MethodGet, "/api/tenants/8", "")
		c.SetParamNames("id")
		c.SetParamValues("8")
		withSession(c, adminSession(7))

		require.NoError(t, h.GetTenant(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		tenants.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("superadmin reads any tenant", func(t *testing.T) {
		tenants := new(MockTenantStore)
		h := NewTenantHandler(tenants)

		tenants.On("Get", mock.Anything, uint(8)).Return(&model.Tenant{ID: 8, CompanyName: "Globex"}, nil)

		c, rec := newTestContext(http.MethodGet, "/api/tenants/8", "")
		c.SetParamNames("id")
		c.SetParamValues("8")
		withSession(c, superAdminSession())

		require.NoError(t, h.GetTenant(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-numeric ID returns 400", func(t *testing.T) {
		h := NewTenantHandler(new(MockTenantStore))

		c, rec := newTestContext(http.MethodGet, "/api/tenants/abc", "")
		c.SetParamNames("id")
		c.SetParamValues("abc")
		withSession(c, superAdminSession())

		require.NoError(t, h.GetTenant(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateSubscription(t *testing.T) {
	t.Run("superadmin activates a trial tenant", func(t *testing.T) {
		tenants := new(MockTenantStore)
		h := NewTenantHandler(tenants)

		tenants.On("UpdateSubscription", mock.Anything, uint(7), "pro", "active").
			Return(&model.Tenant{ID: 7, Plan: "pro", Status: model.TenantStatusActive}, nil)

		c, rec := newTestContext(http.MethodPatch, "/api/tenants/7/subscription",
			`{"plan":"pro","status":"active"}`)
		c.SetParamNames("id")
		c.SetParamValues("7")
		withSession(c, superAdminSession())

		require.NoError(t, h.UpdateSubscription(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "active")
	})

	t.Run("tenant admin gets 403", func(t *testing.T) {
		tenants := new(MockTenantStore)
		h := NewTenantHandler(tenants)

		c, rec := newTestContext(http.MethodPatch, "/api/tenants/7/subscription",
			`{"status":"active"}`)
		c.SetParamNames("id")
		c.SetParamValues("7")
		withSession(c, adminSession(7))

		require.NoError(t, h.UpdateSubscription(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		tenants.AssertNotCalled(t, "UpdateSubscription", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown status value returns 400", func(t *testing.T) {
		h := NewTenantHandler(new(MockTenantStore))

		c, rec := newTestContext(http.MethodPatch, "/api/tenants/7/subscription",
			`{"status":"cancelled"}`)
		c.SetParamNames("id")
		c.SetParamValues("7")
		withSession(c, superAdminSession())

		require.NoError(t, h.UpdateSubscription(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("illegal transition surfaces as 400", func(t *testing.T) {
		tenants := new(MockTenantStore)
		h := NewTenantHandler(tenants)

		tenants.On("UpdateSubscription", mock.Anything, uint(7), "", "suspended").
			Return(nil, apperr.Validation("cannot move tenant from trial to suspended"))

		c, rec := newTestContext(http.MethodPatch, "/api/tenants/7/subscription",
			`{"status":"suspended"}`)
		c.SetParamNames("id")
		c.SetParamValues("7")
		withSession(c, superAdminSession())

		require.NoError(t, h.UpdateSubscription(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing tenant returns 404", func(t *testing.T) {
		tenants := new(MockTenantStore)
		h := NewTenantHandler(tenants)

		tenants.On("UpdateSubscription", mock.Anything, uint(42), "pro", "").
			Return(nil, apperr.NotFound("tenant not found"))

		c, rec := newTestContext(http.MethodPatch, "/api/tenants/42/subscription",
			`{"plan":"pro"}`)
		c.SetParamNames("id")
		c.SetParamValues("42")
		withSession(c, superAdminSession())

		require.NoError(t, h.UpdateSubscription(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
