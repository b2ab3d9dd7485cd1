package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vitrinehq/vitrine-backend/internal/infra/auth"
)

func Test_GetIdentity_When_Dev_Mode_With_Test_User_Then_Bypasses_Verification(t *testing.T) {
	cfg := &auth.OIDCConfig{Mode: "dev", TestUser: "local-dev"}
	provider, err := auth.NewIdentityProvider(context.Background(), cfg)
	require.NoError(t, err)

	identity, err := provider.GetIdentity("whatever")
	require.NoError(t, err)
	require.Equal(t, "local-dev", identity.UserID)
}
