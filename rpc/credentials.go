package rpc

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"io/ioutil"
	"path/filepath"
)

// Default locations of credential files relative to SSL directory
const (
	DefaultCertFile   = "daemon/private_daemon.crt"
	DefaultKeyFile    = "daemon/private_daemon.key"
	DefaultRootCAFile = "ca/private_ca.crt"
)

// DefaultServerName is the name certificates issued by a node's private CA
// are valid for, whatever host the node is reached at
const DefaultServerName = "chia.net"

// TLSOptions selects which files in SSL directory are used and how server
// certificate is checked. Zero value uses default file names and verifies
// server against private CA as DefaultServerName.
type TLSOptions struct {
	// CertFile and KeyFile are the client certificate and key presented to
	// the service, relative to SSL directory
	CertFile string
	KeyFile  string

	// RootCAFile is the CA certificate server certificate is checked against.
	// It is not read when InsecureSkipVerify is set
	RootCAFile string

	// ServerName is checked against server certificate instead of the host.
	// Empty means DefaultServerName
	ServerName string

	// InsecureSkipVerify disables server certificate verification. For
	// development against throwaway nodes only
	InsecureSkipVerify bool
}

func (o TLSOptions) withDefaults() TLSOptions {
	if o.CertFile == "" {
		o.CertFile = DefaultCertFile
	}
	if o.KeyFile == "" {
		o.KeyFile = DefaultKeyFile
	}
	if o.RootCAFile == "" {
		o.RootCAFile = DefaultRootCAFile
	}
	if o.ServerName == "" {
		o.ServerName = DefaultServerName
	}
	return o
}

func readCredentialFile(sslPath, name string) (string, []byte, error) {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(sslPath, name)
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return path, nil, &CredentialIOError{Path: path, Err: err}
	}
	return path, data, nil
}

// LoadCredentials reads client certificate and key (and root CA unless
// verification is disabled) from sslPath and builds a TLS configuration for
// mutual authentication. The result is immutable and shared by all requests
// of a client.
func LoadCredentials(sslPath string, opts TLSOptions) (*tls.Config, error) {
	opts = opts.withDefaults()

	certPath, certPEM, err := readCredentialFile(sslPath, opts.CertFile)
	if err != nil {
		return nil, err
	}
	keyPath, keyPEM, err := readCredentialFile(sslPath, opts.KeyFile)
	if err != nil {
		return nil, err
	}
	keyPair, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return nil, &CredentialFormatError{Path: certPath + ", " + keyPath, Err: err}
	}

	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{keyPair},
		MinVersion:   tls.VersionTLS12,
		ServerName:   opts.ServerName,
	}

	if opts.InsecureSkipVerify {
		tlsConfig.InsecureSkipVerify = true
		return tlsConfig, nil
	}

	caPath, caPEM, err := readCredentialFile(sslPath, opts.RootCAFile)
	if err != nil {
		return nil, err
	}
	roots := x509.NewCertPool()
	if !roots.AppendCertsFromPEM(caPEM) {
		return nil, &CredentialFormatError{
			Path: caPath,
			Err:  errors.New("no PEM encoded certificates found"),
		}
	}
	tlsConfig.RootCAs = roots
	return tlsConfig, nil
}
