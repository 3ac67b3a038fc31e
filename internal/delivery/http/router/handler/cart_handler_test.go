package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	httpmiddleware "faranah/internal/delivery/http/middleware"
	"faranah/internal/domain/entity"
	domainerrors "faranah/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartContext(t *testing.T, target string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func TestCartOwner_PrefersAuthenticatedUser(t *testing.T) {
	c := newCartContext(t, "/panier?guest_id=guest-abc")
	userID := uuid.New()
	c.Set(httpmiddleware.ContextKeyUserID, userID)

	owner, err := cartOwner(c, "guest-from-body")
	require.NoError(t, err)
	assert.Equal(t, entity.OwnerKeyForUser(userID), owner)
}

func TestCartOwner_GuestIDFromBody(t *testing.T) {
	c := newCartContext(t, "/panier?guest_id=guest-from-query")

	owner, err := cartOwner(c, "guest-from-body")
	require.NoError(t, err)
	assert.Equal(t, entity.OwnerKey("guest-from-body"), owner)
}

func TestCartOwner_GuestIDFromQuery(t *testing.T) {
	c := newCartContext(t, "/panier?guest_id=guest-from-query")

	owner, err := cartOwner(c, "")
	require.NoError(t, err)
	assert.Equal(t, entity.OwnerKey("guest-from-query"), owner)
}

func TestCartOwner_MissingIdentity(t *testing.T) {
	c := newCartContext(t, "/panier")

	owner, err := cartOwner(c, "")
	assert.Empty(t, owner)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "guest_id", validationErr.Fields()[0].Field)
}
