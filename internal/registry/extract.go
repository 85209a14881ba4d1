package registry

import (
	"crypto/rsa"
	"crypto/x509"
	"fmt"

	"github.com/pkitools/keyscan/internal/artifact"
)

// KeyID is the content identity of an RSA public key: the raw bytes of its
// PKCS#1 DER serialization. Two keys are "the same" iff their serializations
// are byte-identical; two different encodings of one mathematical key stay
// distinct.
type KeyID string

// IDOf returns the content identity of pub.
func IDOf(pub *rsa.PublicKey) KeyID {
	return KeyID(x509.MarshalPKCS1PublicKey(pub))
}

// Extraction is one naming candidate: a public key, the priority class of
// the artifact that carried it, and the label that artifact proposes.
type Extraction struct {
	ID       KeyID
	Key      *rsa.PublicKey
	Priority Priority
	Label    string
}

// Extract derives the naming candidate for an artifact. CRLs carry no
// independent key context and yield ok=false. A certificate or request
// whose embedded key is not RSA is an extraction error; the caller logs it
// and drops the artifact without aborting the batch.
func Extract(path string, art artifact.Artifact) (Extraction, bool, error) {
	switch a := art.(type) {
	case *artifact.Certificate:
		pub, ok := a.Cert.PublicKey.(*rsa.PublicKey)
		if !ok {
			return Extraction{}, false, fmt.Errorf("certificate public key is not RSA")
		}
		return Extraction{
			ID:       IDOf(pub),
			Key:      pub,
			Priority: PriorityCertificate,
			Label:    a.Cert.Subject.String(),
		}, true, nil

	case *artifact.Request:
		pub, ok := a.CSR.PublicKey.(*rsa.PublicKey)
		if !ok {
			return Extraction{}, false, fmt.Errorf("request public key is not RSA")
		}
		return Extraction{
			ID:       IDOf(pub),
			Key:      pub,
			Priority: PriorityRequest,
			Label:    a.CSR.Subject.String(),
		}, true, nil

	case *artifact.RSAKey:
		priority := PriorityPublicKey
		if a.Private {
			priority = PriorityPrivateKey
		}
		return Extraction{
			ID:       IDOf(a.PublicKey),
			Key:      a.PublicKey,
			Priority: priority,
			Label:    path,
		}, true, nil

	case *artifact.CRL:
		return Extraction{}, false, nil
	}
	return Extraction{}, false, nil
}
