package service

import (
	"crypto/rsa"
	"fmt"
	"time"

	"github.com/accessdesk/api/config"
	"github.com/accessdesk/api/manager/domain"
	"github.com/accessdesk/api/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

const (
	defaultTokenTTL     = time.Hour
	defaultRequesterTTL = 5 * time.Minute
)

type Params struct {
	fx.In
	Repo        domain.Repository
	KeyConfig   config.KeyConfig
	CacheConfig config.CacheConfig   `optional:"true"`
	Registry    *prometheus.Registry `optional:"true"`
}

func NewService(params Params) (domain.Service, error) {
	return newService(params)
}

func newService(params Params) (*Service, error) {
	jwtPrivateKey, err := util.InitRSAPrivateKey(params.KeyConfig.RsaPrivateKeyPem.Value())
	if err != nil {
		return nil, fmt.Errorf("initialize RSA private key: %w", err)
	}
	tokenTTL := params.KeyConfig.TokenTTL
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	requesterTTL := params.CacheConfig.RequesterTTL
	if requesterTTL <= 0 {
		requesterTTL = defaultRequesterTTL
	}
	var registerer prometheus.Registerer = prometheus.NewRegistry()
	if params.Registry != nil {
		registerer = params.Registry
	}
	metrics, err := newMetricCollector(registerer)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	svc := &Service{
		Repo:          params.Repo,
		jwtPrivateKey: jwtPrivateKey,
		tokenTTL:      tokenTTL,
		directory:     newRequesterDirectory(params.Repo, requesterTTL),
		metrics:       metrics,
		validate:      newValidator(),
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
	// a fixed hash of a random secret, compared against when the email is unknown
	dummy, err := domain.HashPassword(domain.NewID())
	if err != nil {
		return nil, fmt.Errorf("prepare login hash: %w", err)
	}
	svc.dummyHash = dummy
	return svc, nil
}

type Service struct {
	Repo          domain.Repository
	jwtPrivateKey *rsa.PrivateKey
	tokenTTL      time.Duration
	dummyHash     domain.EncryptedPassword
	directory     *requesterDirectory
	metrics       *metricCollector
	validate      *validatorWrapper
	now           func() time.Time
}
