package identity

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rosterd/internal/config"
	employeedomain "github.com/smallbiznis/rosterd/internal/employee/domain"
	"go.uber.org/zap"
)

// StaticVerifier maps bearer tokens to principals from configuration.
// AUTH_TOKENS holds "token=employeeID:role" pairs separated by commas.
// Meant for self-hosted deployments without an identity provider.
type StaticVerifier struct {
	principals map[string]Principal
}

func NewStaticVerifier(cfg config.Config, log *zap.Logger) *StaticVerifier {
	principals := make(map[string]Principal)

	for _, pair := range strings.Split(cfg.AuthTokens, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		token, spec, ok := strings.Cut(pair, "=")
		if !ok {
			log.Warn("skipping malformed auth token entry")
			continue
		}

		idPart, role, ok := strings.Cut(spec, ":")
		if !ok || !employeedomain.ValidRole(role) {
			log.Warn("skipping auth token entry with invalid role")
			continue
		}

		employeeID, err := snowflake.ParseString(idPart)
		if err != nil {
			log.Warn("skipping auth token entry with invalid employee id", zap.Error(err))
			continue
		}

		principals[strings.TrimSpace(token)] = Principal{
			EmployeeID: employeeID,
			Role:       role,
		}
	}

	return &StaticVerifier{principals: principals}
}

func (v *StaticVerifier) Verify(_ context.Context, token string) (*Principal, error) {
	principal, ok := v.principals[token]
	if !ok {
		return nil, ErrInvalidToken
	}
	return &principal, nil
}
