package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	principal account.Principal
	err       error
}

func (s stubResolver) Resolve(_ context.Context, _ string) (account.Principal, error) {
	return s.principal, s.err
}

func TestPrincipalMiddleware_RejectsMissingIdentity(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	called := false
	handler := PrincipalMiddleware(stubResolver{})(func(echo.Context) error {
		called = true
		return nil
	})

	require.NoError(t, handler(ctx))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusUnauthorized, body.Code)
}

func TestPrincipalMiddleware_AttachesResolvedPrincipal(t *testing.T) {
	principal, err := account.NewPrincipal("manager@example.com", account.RoleManager)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderUserEmail, "manager@example.com")
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	handler := PrincipalMiddleware(stubResolver{principal: principal})(func(c echo.Context) error {
		got, err := principalFrom(c)
		require.NoError(t, err)
		assert.Equal(t, principal, got)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPrincipalMiddleware_ResolverFailure(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderUserEmail, "someone@example.com")
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	handler := PrincipalMiddleware(stubResolver{err: errors.New("db down")})(func(echo.Context) error {
		t.Fatal("handler must not run")
		return nil
	})

	require.NoError(t, handler(ctx))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// malformedIDError builds the error a garbage :id path parameter produces.
func malformedIDError(t *testing.T) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := e.NewContext(req, httptest.NewRecorder())
	ctx.SetParamNames("id")
	ctx.SetParamValues("not-a-uuid")

	_, err := pathUUID(ctx, "id")
	require.Error(t, err)
	return err
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unauthenticated", errs.NewUnauthenticatedError(), http.StatusUnauthorized},
		{"forbidden", errs.NewForbiddenError("nope"), http.StatusForbidden},
		{"role already assigned", account.ErrRoleAlreadyAssigned, http.StatusForbidden},
		{"role not claimable", account.ErrRoleIsNotClaimable, http.StatusForbidden},
		{"not found", errs.NewObjectNotFoundError("order", "x"), http.StatusNotFound},
		{"conflict", errs.NewConflictError("order", "x"), http.StatusConflict},
		{"invalid value", errs.NewValueIsInvalidError("page"), http.StatusBadRequest},
		{"malformed path id", malformedIDError(t), http.StatusBadRequest},
		{"required value", errs.NewValueIsRequiredError("status"), http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, statusFor(test.err))
		})
	}
}
