package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/accessdesk/api/config"
	"github.com/accessdesk/api/manager/domain"
	"github.com/accessdesk/api/manager/repository"
	"github.com/accessdesk/api/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

var testKeyPEM string

func testKeyConfig(t *testing.T) config.KeyConfig {
	t.Helper()
	if testKeyPEM == "" {
		pemStr, err := util.GenerateRSAPrivateKeyPEM(2048)
		require.NoError(t, err)
		testKeyPEM = pemStr
	}
	return config.KeyConfig{RsaPrivateKeyPem: config.SecretValue(testKeyPEM)}
}

func newSQLiteRepo(t *testing.T) domain.Repository {
	t.Helper()
	repo, err := repository.NewRepository(repository.Params{
		StorageConfig: config.StorageConfig{Driver: config.StorageDriverSQLite},
		SQLiteConfig:  config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "svc.db")},
	})
	require.NoError(t, err)
	require.NoError(t, repository.RunMigration(repo))
	t.Cleanup(func() { _ = repo.Close(context.Background()) })
	return repo
}

func newTestService(t *testing.T, repo domain.Repository) (*Service, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	svc, err := newService(Params{
		Repo:      repo,
		KeyConfig: testKeyConfig(t),
		Registry:  reg,
	})
	require.NoError(t, err)
	return svc, reg
}

func claimsOf(user *domain.User) *domain.Claims {
	return &domain.Claims{UID: user.ID, Email: user.Email, Role: user.Role}
}
