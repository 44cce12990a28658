// Package rpctest provides a private CA and HTTPS servers requiring client
// certificates, for testing code that talks to RPC services.
package rpctest

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"io/ioutil"
	"math/big"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// ServerName is the only DNS name in server certificates issued by PKI, as in
// certificates of a real node
const ServerName = "chia.net"

// Locations of files in SSL directory, same as in a node's one
const (
	CAFile         = "ca/private_ca.crt"
	ClientCertFile = "daemon/private_daemon.crt"
	ClientKeyFile  = "daemon/private_daemon.key"
)

// PKI is a private CA with a server certificate and a client key pair written
// into SSLPath
type PKI struct {
	SSLPath   string
	ServerTLS *tls.Config
}

type keyPair struct {
	cert    *x509.Certificate
	certPEM []byte
	keyPEM  []byte
	key     *ecdsa.PrivateKey
}

func newKeyPair(t testing.TB, template *x509.Certificate, parent *keyPair) *keyPair {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	signerCert, signerKey := template, key
	if parent != nil {
		signerCert, signerKey = parent.cert, parent.key
	}
	der, err := x509.CreateCertificate(rand.Reader, template, signerCert, &key.PublicKey, signerKey)
	require.NoError(t, err)
	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)
	keyDER, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)

	return &keyPair{
		cert:    cert,
		certPEM: pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}),
		keyPEM:  pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER}),
		key:     key,
	}
}

func certTemplate(serial int64, name string) *x509.Certificate {
	return &x509.Certificate{
		SerialNumber: big.NewInt(serial),
		Subject:      pkix.Name{CommonName: name},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
}

// WriteFile writes data to path creating missing directories
func WriteFile(t testing.TB, path string, data []byte) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	require.NoError(t, ioutil.WriteFile(path, data, 0600))
}

// NewPKI generates CA, server and client certificates. Server certificate is
// valid for ServerName only, not for the address server listens on
func NewPKI(t testing.TB) *PKI {
	caTemplate := certTemplate(1, "Test CA")
	caTemplate.IsCA = true
	caTemplate.BasicConstraintsValid = true
	caTemplate.KeyUsage = x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature
	ca := newKeyPair(t, caTemplate, nil)

	serverTemplate := certTemplate(2, "Test Server")
	serverTemplate.DNSNames = []string{ServerName}
	serverTemplate.ExtKeyUsage = []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth}
	serverTemplate.KeyUsage = x509.KeyUsageDigitalSignature
	server := newKeyPair(t, serverTemplate, ca)

	clientTemplate := certTemplate(3, "Test Client")
	clientTemplate.ExtKeyUsage = []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth}
	clientTemplate.KeyUsage = x509.KeyUsageDigitalSignature
	client := newKeyPair(t, clientTemplate, ca)

	sslPath := t.TempDir()
	WriteFile(t, filepath.Join(sslPath, CAFile), ca.certPEM)
	WriteFile(t, filepath.Join(sslPath, ClientCertFile), client.certPEM)
	WriteFile(t, filepath.Join(sslPath, ClientKeyFile), client.keyPEM)

	serverKeyPair, err := tls.X509KeyPair(server.certPEM, server.keyPEM)
	require.NoError(t, err)
	clientCAs := x509.NewCertPool()
	clientCAs.AddCert(ca.cert)

	return &PKI{
		SSLPath: sslPath,
		ServerTLS: &tls.Config{
			Certificates: []tls.Certificate{serverKeyPair},
			ClientAuth:   tls.RequireAndVerifyClientCert,
			ClientCAs:    clientCAs,
		},
	}
}

// NewServer starts HTTPS server requiring client certificates issued by pki's
// CA. It is closed when test finishes
func NewServer(t testing.TB, pki *PKI, handler http.Handler) (server *httptest.Server, host string, port int) {
	server = httptest.NewUnstartedServer(handler)
	server.TLS = pki.ServerTLS
	server.StartTLS()
	t.Cleanup(server.Close)

	u, err := url.Parse(server.URL)
	require.NoError(t, err)
	port, err = strconv.Atoi(u.Port())
	require.NoError(t, err)
	return server, u.Hostname(), port
}
