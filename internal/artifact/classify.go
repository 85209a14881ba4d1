package artifact

import (
	"bytes"
	"crypto/x509"
	"encoding/pem"
)

// PEM header markers, matched against the first line of the file only.
// The request marker must be checked before the certificate marker:
// "BEGIN CERTIFICATE" is a substring of "BEGIN CERTIFICATE REQUEST".
const (
	markerCRL        = "BEGIN X509 CRL"
	markerRequest    = "BEGIN CERTIFICATE REQUEST"
	markerCert       = "BEGIN CERTIFICATE"
	markerPrivateKey = "BEGIN RSA PRIVATE KEY"
	markerPublicKey  = "BEGIN RSA PUBLIC KEY"
)

// Classify determines which artifact variant the file contents encode.
// Only the first line is inspected for a recognized PEM header; decoding is
// delegated to encoding/pem and crypto/x509. An unrecognized header or any
// decode failure yields ok=false, never an error.
func Classify(data []byte) (Artifact, bool) {
	first := firstLine(data)
	switch {
	case bytes.Contains(first, []byte(markerCRL)):
		return classifyCRL(data)
	case bytes.Contains(first, []byte(markerRequest)):
		return classifyRequest(data)
	case bytes.Contains(first, []byte(markerCert)):
		return classifyCertificate(data)
	case bytes.Contains(first, []byte(markerPrivateKey)):
		return classifyRSAKey(data, true)
	case bytes.Contains(first, []byte(markerPublicKey)):
		return classifyRSAKey(data, false)
	}
	return nil, false
}

func firstLine(data []byte) []byte {
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return data[:i]
	}
	return data
}

func decodeBlock(data []byte) ([]byte, bool) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, false
	}
	return block.Bytes, true
}

func classifyCertificate(data []byte) (Artifact, bool) {
	der, ok := decodeBlock(data)
	if !ok {
		return nil, false
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, false
	}
	return &Certificate{Cert: cert}, true
}

func classifyRequest(data []byte) (Artifact, bool) {
	der, ok := decodeBlock(data)
	if !ok {
		return nil, false
	}
	csr, err := x509.ParseCertificateRequest(der)
	if err != nil {
		return nil, false
	}
	return &Request{CSR: csr}, true
}

func classifyCRL(data []byte) (Artifact, bool) {
	der, ok := decodeBlock(data)
	if !ok {
		return nil, false
	}
	list, err := x509.ParseRevocationList(der)
	if err != nil {
		return nil, false
	}
	return &CRL{List: list}, true
}

func classifyRSAKey(data []byte, private bool) (Artifact, bool) {
	der, ok := decodeBlock(data)
	if !ok {
		return nil, false
	}
	if private {
		key, err := x509.ParsePKCS1PrivateKey(der)
		if err != nil {
			return nil, false
		}
		return &RSAKey{Private: true, PublicKey: &key.PublicKey}, true
	}
	pub, err := x509.ParsePKCS1PublicKey(der)
	if err != nil {
		return nil, false
	}
	return &RSAKey{PublicKey: pub}, true
}
