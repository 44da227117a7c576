package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/accessdesk/api/pkg/util"
)

const generatedKeyBits = 2048

// ResolveSigningKey fills RsaPrivateKeyPem. An inline PEM wins; otherwise the key is
// read from RsaPrivateKeyPath, and generated and written there when the file does not
// exist yet. With neither set, an ephemeral key is generated and generated is true.
func ResolveSigningKey(cfg KeyConfig) (resolved KeyConfig, generated bool, err error) {
	if cfg.RsaPrivateKeyPem != "" {
		return cfg, false, nil
	}
	if cfg.RsaPrivateKeyPath == "" {
		pemStr, err := util.GenerateRSAPrivateKeyPEM(generatedKeyBits)
		if err != nil {
			return cfg, false, err
		}
		cfg.RsaPrivateKeyPem = SecretValue(pemStr)
		return cfg, true, nil
	}

	data, err := os.ReadFile(cfg.RsaPrivateKeyPath)
	if err == nil {
		cfg.RsaPrivateKeyPem = SecretValue(data)
		return cfg, false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return cfg, false, fmt.Errorf("read rsa private key %s: %w", cfg.RsaPrivateKeyPath, err)
	}

	pemStr, err := util.GenerateRSAPrivateKeyPEM(generatedKeyBits)
	if err != nil {
		return cfg, false, err
	}
	if dir := filepath.Dir(cfg.RsaPrivateKeyPath); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return cfg, false, fmt.Errorf("create key directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(cfg.RsaPrivateKeyPath, []byte(pemStr), 0o600); err != nil {
		return cfg, false, fmt.Errorf("write rsa private key %s: %w", cfg.RsaPrivateKeyPath, err)
	}
	cfg.RsaPrivateKeyPem = SecretValue(pemStr)
	return cfg, true, nil
}
