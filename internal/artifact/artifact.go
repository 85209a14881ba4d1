// Package artifact defines the closed set of PEM artifact variants the
// scanner recognizes, and the classifier that maps raw file contents to them.
package artifact

import (
	"crypto/rsa"
	"crypto/x509"
)

// Artifact is a classified PEM file. The variant set is closed: Certificate,
// Request, CRL and RSAKey are the only implementations, and consumers
// dispatch with an exhaustive type switch.
type Artifact interface {
	// Kind returns a short lowercase name for the variant.
	Kind() string

	artifact()
}

// Certificate is an X.509 certificate.
type Certificate struct {
	Cert *x509.Certificate
}

// Request is a PKCS#10 certificate signing request.
type Request struct {
	CSR *x509.CertificateRequest
}

// CRL is an X.509 certificate revocation list.
type CRL struct {
	List *x509.RevocationList
}

// RSAKey is an RSA key pair file. Only the public component is retained;
// for private key files the private material is dropped at classification.
type RSAKey struct {
	Private   bool
	PublicKey *rsa.PublicKey
}

func (*Certificate) Kind() string { return "certificate" }
func (*Request) Kind() string     { return "request" }
func (*CRL) Kind() string         { return "crl" }

func (k *RSAKey) Kind() string {
	if k.Private {
		return "private-key"
	}
	return "public-key"
}

func (*Certificate) artifact() {}
func (*Request) artifact()     {}
func (*CRL) artifact()         {}
func (*RSAKey) artifact()      {}
