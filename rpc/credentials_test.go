package rpc

import (
	"crypto/tls"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onederx/chia-rpc/rpc/rpctest"
)

func TestLoadCredentials(t *testing.T) {
	pki := rpctest.NewPKI(t)

	tlsConfig, err := LoadCredentials(pki.SSLPath, TLSOptions{ServerName: rpctest.ServerName})
	require.NoError(t, err)

	assert.Len(t, tlsConfig.Certificates, 1)
	assert.NotNil(t, tlsConfig.RootCAs)
	assert.False(t, tlsConfig.InsecureSkipVerify)
	assert.Equal(t, rpctest.ServerName, tlsConfig.ServerName)
	assert.Equal(t, uint16(tls.VersionTLS12), tlsConfig.MinVersion)
}

func TestLoadCredentialsDefaults(t *testing.T) {
	pki := rpctest.NewPKI(t)

	tlsConfig, err := LoadCredentials(pki.SSLPath, TLSOptions{})
	require.NoError(t, err)
	assert.Equal(t, DefaultServerName, tlsConfig.ServerName)

	assert.Equal(t, rpctest.ServerName, DefaultServerName)
	assert.Equal(t, rpctest.CAFile, DefaultRootCAFile)
	assert.Equal(t, rpctest.ClientCertFile, DefaultCertFile)
	assert.Equal(t, rpctest.ClientKeyFile, DefaultKeyFile)
}

func TestLoadCredentialsMissingFile(t *testing.T) {
	pki := rpctest.NewPKI(t)
	keyPath := filepath.Join(pki.SSLPath, DefaultKeyFile)
	require.NoError(t, os.Remove(keyPath))

	_, err := LoadCredentials(pki.SSLPath, TLSOptions{})

	var ioErr *CredentialIOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("Expected CredentialIOError, got %T: %v", err, err)
	}
	assert.Equal(t, keyPath, ioErr.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadCredentialsMalformedKeyPair(t *testing.T) {
	pki := rpctest.NewPKI(t)
	rpctest.WriteFile(t, filepath.Join(pki.SSLPath, DefaultCertFile), []byte("not a certificate"))

	_, err := LoadCredentials(pki.SSLPath, TLSOptions{})

	var formatErr *CredentialFormatError
	require.True(t, errors.As(err, &formatErr), "got %T: %v", err, err)
}

func TestLoadCredentialsMalformedRootCA(t *testing.T) {
	pki := rpctest.NewPKI(t)
	caPath := filepath.Join(pki.SSLPath, DefaultRootCAFile)
	rpctest.WriteFile(t, caPath, []byte("garbage"))

	_, err := LoadCredentials(pki.SSLPath, TLSOptions{})

	var formatErr *CredentialFormatError
	require.True(t, errors.As(err, &formatErr), "got %T: %v", err, err)
	assert.Equal(t, caPath, formatErr.Path)
}

func TestLoadCredentialsInsecureDoesNotNeedRootCA(t *testing.T) {
	pki := rpctest.NewPKI(t)
	require.NoError(t, os.Remove(filepath.Join(pki.SSLPath, DefaultRootCAFile)))

	_, err := LoadCredentials(pki.SSLPath, TLSOptions{})
	require.Error(t, err, "root CA must be required when verification is enabled")

	tlsConfig, err := LoadCredentials(pki.SSLPath, TLSOptions{InsecureSkipVerify: true})
	require.NoError(t, err)
	assert.True(t, tlsConfig.InsecureSkipVerify)
	assert.Nil(t, tlsConfig.RootCAs)
}

func TestLoadCredentialsCustomFileNames(t *testing.T) {
	pki := rpctest.NewPKI(t)
	dir := t.TempDir()
	for src, dst := range map[string]string{
		DefaultCertFile:   "full_node/private_full_node.crt",
		DefaultKeyFile:    "full_node/private_full_node.key",
		DefaultRootCAFile: filepath.Join(dir, "ca.crt"),
	} {
		data, err := os.ReadFile(filepath.Join(pki.SSLPath, src))
		require.NoError(t, err)
		if !filepath.IsAbs(dst) {
			dst = filepath.Join(pki.SSLPath, dst)
		}
		rpctest.WriteFile(t, dst, data)
	}

	_, err := LoadCredentials(pki.SSLPath, TLSOptions{
		CertFile:   "full_node/private_full_node.crt",
		KeyFile:    "full_node/private_full_node.key",
		RootCAFile: filepath.Join(dir, "ca.crt"),
	})
	require.NoError(t, err)
}

func TestNewClientFailsOnMissingCredentials(t *testing.T) {
	_, err := NewClient(Config{Host: "localhost", Port: 8555, SSLPath: t.TempDir()})

	var ioErr *CredentialIOError
	require.True(t, errors.As(err, &ioErr), "got %T: %v", err, err)
}
