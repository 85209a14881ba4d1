package registry

import (
	"crypto/rsa"
	"crypto/x509"

	"github.com/pkitools/keyscan/internal/artifact"
)

// UnknownSigner is the display value used when no registered key validates
// an artifact's signature.
const UnknownSigner = "???"

// SignedBy returns the canonical name of the first registered key, in
// discovery order, that validates the artifact's signature. Only
// certificates, requests and CRLs carry a signature; for RSA key files, and
// when no registered key matches, UnknownSigner is returned.
func SignedBy(art artifact.Artifact, reg *Registry) string {
	alg, tbs, sig, ok := signatureOf(art)
	if !ok {
		return UnknownSigner
	}
	for _, id := range reg.order {
		if verify(reg.keys[id], alg, tbs, sig) {
			return reg.names[id]
		}
	}
	return UnknownSigner
}

// signatureOf exposes the signed bytes, signature and declared algorithm of
// a signed artifact.
func signatureOf(art artifact.Artifact) (x509.SignatureAlgorithm, []byte, []byte, bool) {
	switch a := art.(type) {
	case *artifact.Certificate:
		return a.Cert.SignatureAlgorithm, a.Cert.RawTBSCertificate, a.Cert.Signature, true
	case *artifact.Request:
		return a.CSR.SignatureAlgorithm, a.CSR.RawTBSCertificateRequest, a.CSR.Signature, true
	case *artifact.CRL:
		return a.List.SignatureAlgorithm, a.List.RawTBSRevocationList, a.List.Signature, true
	}
	return x509.UnknownSignatureAlgorithm, nil, nil, false
}

// verify delegates the RSA signature check to crypto/x509, using a bare
// certificate as the key carrier.
func verify(pub *rsa.PublicKey, alg x509.SignatureAlgorithm, tbs, sig []byte) bool {
	carrier := &x509.Certificate{PublicKey: pub}
	return carrier.CheckSignature(alg, tbs, sig) == nil
}
