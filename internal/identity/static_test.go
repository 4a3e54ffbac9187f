package identity

import (
	"context"
	"testing"

	"github.com/smallbiznis/rosterd/internal/config"
	employeedomain "github.com/smallbiznis/rosterd/internal/employee/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestStaticVerifier(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves configured tokens", func(t *testing.T) {
		verifier := NewStaticVerifier(config.Config{
			AuthTokens: "admintoken=1000=oops, workertoken=7331:worker ,admintoken2=42:admin",
		}, zaptest.NewLogger(t))

		principal, err := verifier.Verify(ctx, "workertoken")
		require.NoError(t, err)
		assert.Equal(t, int64(7331), principal.EmployeeID.Int64())
		assert.Equal(t, employeedomain.RoleWorker, principal.Role)

		principal, err = verifier.Verify(ctx, "admintoken2")
		require.NoError(t, err)
		assert.Equal(t, employeedomain.RoleAdmin, principal.Role)
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		verifier := NewStaticVerifier(config.Config{AuthTokens: "tok=1:admin"}, zaptest.NewLogger(t))
		_, err := verifier.Verify(ctx, "other")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("malformed entries are skipped not fatal", func(t *testing.T) {
		verifier := NewStaticVerifier(config.Config{
			AuthTokens: "noequals, badrole=1:owner, badid=abc:admin, good=9:admin",
		}, zaptest.NewLogger(t))

		for _, token := range []string{"noequals", "badrole", "badid"} {
			_, err := verifier.Verify(ctx, token)
			assert.ErrorIs(t, err, ErrInvalidToken, token)
		}

		principal, err := verifier.Verify(ctx, "good")
		require.NoError(t, err)
		assert.Equal(t, int64(9), principal.EmployeeID.Int64())
	})

	t.Run("empty configuration verifies nothing", func(t *testing.T) {
		verifier := NewStaticVerifier(config.Config{}, zaptest.NewLogger(t))
		_, err := verifier.Verify(ctx, "any")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
