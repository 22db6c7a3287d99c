package picnic_test

import (
	"cartscan/pkg/picnic"
	mockpicnic "cartscan/pkg/picnic/mock"
	"cartscan/pkg/serrors"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEnsureAuthenticated_presetCredentialSkipsLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mockpicnic.NewMockCatalog(ctrl)
	// no Login expectation: any call would fail the test

	session := &picnic.Session{AuthKey: "preset"}
	for range 2 {
		err := picnic.EnsureAuthenticated(context.Background(), catalog, session, picnic.Credentials{})
		require.NoError(t, err)
	}
	require.Equal(t, "preset", session.AuthKey)
}

func TestEnsureAuthenticated_missingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mockpicnic.NewMockCatalog(ctrl)

	cases := []picnic.Credentials{
		{},
		{Username: "user@example.com"},
		{Password: "hunter2"},
	}
	for _, creds := range cases {
		err := picnic.EnsureAuthenticated(context.Background(), catalog, &picnic.Session{}, creds)
		require.ErrorIs(t, err, serrors.ErrConfiguration)
	}
}

func TestEnsureAuthenticated_loginOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mockpicnic.NewMockCatalog(ctrl)
	catalog.EXPECT().
		Login(gomock.Any(), "user@example.com", "hunter2").
		Return("fresh-key", nil).
		Times(1)

	session := &picnic.Session{}
	creds := picnic.Credentials{Username: "user@example.com", Password: "hunter2"}

	require.NoError(t, picnic.EnsureAuthenticated(context.Background(), catalog, session, creds))
	require.Equal(t, "fresh-key", session.AuthKey)

	// second call finds the credential in place and performs no login
	require.NoError(t, picnic.EnsureAuthenticated(context.Background(), catalog, session, creds))
}

func TestEnsureAuthenticated_loginRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mockpicnic.NewMockCatalog(ctrl)
	catalog.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("invalid credentials"))

	session := &picnic.Session{}
	err := picnic.EnsureAuthenticated(context.Background(), catalog, session,
		picnic.Credentials{Username: "user@example.com", Password: "wrong"})
	require.ErrorIs(t, err, serrors.ErrAuthentication)
	require.Contains(t, err.Error(), "invalid credentials")
	require.False(t, session.Authenticated())
}
