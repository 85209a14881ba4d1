// Package registry implements the key-identity reconciliation core:
// extracting naming candidates from artifacts, deduplicating public keys by
// content identity, resolving label priority and collisions, and attributing
// artifact signatures to registered keys.
package registry

// Priority orders the naming candidates for a key. A lower value takes
// precedence: a certificate subject beats a request subject, which beats a
// private key file path, which beats a public key file path.
type Priority int

const (
	PriorityCertificate Priority = iota
	PriorityRequest
	PriorityPrivateKey
	PriorityPublicKey
)

// String returns the string representation of the priority class.
func (p Priority) String() string {
	switch p {
	case PriorityCertificate:
		return "certificate"
	case PriorityRequest:
		return "request"
	case PriorityPrivateKey:
		return "private-key"
	case PriorityPublicKey:
		return "public-key"
	default:
		return "unknown"
	}
}
