// Package report renders the inventory: one textual description per
// artifact, sorted by description text and printed path-first.
package report

import (
	"crypto/rsa"
	"crypto/x509"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkitools/keyscan/internal/artifact"
	"github.com/pkitools/keyscan/internal/registry"
)

// Entry is one report item. Entries are ephemeral: produced per artifact,
// sorted, printed and discarded.
type Entry struct {
	Description string `json:"description"`
	Path        string `json:"path"`
}

// Describe renders the textual description of one artifact against the
// complete registry. It only reads the registry; a failure (an artifact
// whose key cannot be named) is reported to the caller, who logs it and
// drops the entry without aborting the batch.
func Describe(path string, art artifact.Artifact, reg *registry.Registry) (string, error) {
	switch a := art.(type) {
	case *artifact.RSAKey:
		name, ok := reg.Name(a.PublicKey)
		if !ok {
			return "", fmt.Errorf("key is not registered")
		}
		if a.Private {
			return "Private key for " + name, nil
		}
		return "Public key for " + name, nil

	case *artifact.Certificate:
		name, err := keyName(reg, a.Cert.PublicKey)
		if err != nil {
			return "", err
		}
		var b strings.Builder
		fmt.Fprintf(&b, "Certificate for %s\n", a.Cert.Subject.String())
		fmt.Fprintf(&b, "  key:       %s\n", name)
		fmt.Fprintf(&b, "  serial:    %s\n", a.Cert.SerialNumber.String())
		fmt.Fprintf(&b, "  issuer:    %s\n", a.Cert.Issuer.String())
		fmt.Fprintf(&b, "  signed by: %s", registry.SignedBy(art, reg))
		return b.String(), nil

	case *artifact.Request:
		name, err := keyName(reg, a.CSR.PublicKey)
		if err != nil {
			return "", err
		}
		var b strings.Builder
		fmt.Fprintf(&b, "Certificate request for %s\n", a.CSR.Subject.String())
		fmt.Fprintf(&b, "  key:       %s\n", name)
		fmt.Fprintf(&b, "  signed by: %s", registry.SignedBy(art, reg))
		return b.String(), nil

	case *artifact.CRL:
		var b strings.Builder
		fmt.Fprintf(&b, "Certificate revocation list %s\n", revokingClause(a.List.RevokedCertificateEntries))
		fmt.Fprintf(&b, "  issuer:    %s\n", a.List.Issuer.String())
		fmt.Fprintf(&b, "  signed by: %s", registry.SignedBy(art, reg))
		return b.String(), nil
	}

	// The variant set is closed; this is unreachable for classified input.
	return "Unknown", nil
}

func keyName(reg *registry.Registry, pub any) (string, error) {
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return "", fmt.Errorf("public key is not RSA")
	}
	name, ok := reg.Name(rsaPub)
	if !ok {
		return "", fmt.Errorf("key is not registered")
	}
	return name, nil
}

func revokingClause(entries []x509.RevocationListEntry) string {
	if len(entries) == 0 {
		return "revoking nothing"
	}
	serials := make([]string, len(entries))
	for i, e := range entries {
		serials[i] = e.SerialNumber.String()
	}
	return "revoking serial numbers [" + strings.Join(serials, ", ") + "]"
}

// Sort orders entries by description text, ties broken by path.
func Sort(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Description != entries[j].Description {
			return entries[i].Description < entries[j].Description
		}
		return entries[i].Path < entries[j].Path
	})
}

// Render sorts the entries and writes each as the path, a colon, the
// indented description, then a blank line.
func Render(w io.Writer, entries []Entry) error {
	Sort(entries)
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s:\n%s\n\n", e.Path, indent(e.Description, "  ")); err != nil {
			return err
		}
	}
	return nil
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
