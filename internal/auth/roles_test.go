package auth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linkarray/link-service/internal/domain"
)

func TestRoleAllowed(t *testing.T) {
	cases := []struct {
		name    string
		role    domain.Role
		allowed []domain.Role
		want    bool
	}{
		{"user denied admin route", domain.RoleUser, []domain.Role{domain.RoleAdmin}, false},
		{"admin allowed on mixed set", domain.RoleAdmin, []domain.Role{domain.RoleAdmin, domain.RoleUser}, true},
		{"user allowed on mixed set", domain.RoleUser, []domain.Role{domain.RoleAdmin, domain.RoleUser}, true},
		{"guest denied everywhere", domain.RoleGuest, []domain.Role{domain.RoleAdmin, domain.RoleUser}, false},
		{"empty allowed set denies all", domain.RoleAdmin, nil, false},
		{"exact match", domain.RoleGuest, []domain.Role{domain.RoleGuest}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, RoleAllowed(tc.role, tc.allowed))
		})
	}
}

func TestValidRole(t *testing.T) {
	require.True(t, domain.ValidRole(domain.RoleAdmin))
	require.True(t, domain.ValidRole(domain.RoleUser))
	require.True(t, domain.ValidRole(domain.RoleGuest))
	require.False(t, domain.ValidRole(domain.Role("superuser")))
	require.False(t, domain.ValidRole(domain.Role("")))
}
