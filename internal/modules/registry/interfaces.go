package registry

import "realty/internal/domain"

// EventSink receives one event per successful mutating registry call.
// The shell wires audit logging and the live feed here; a nil sink is fine.
type EventSink interface {
	Publish(e domain.Event)
}

// CredentialComparer checks a supplied password against the stored
// credential. The registry itself only knows exact match; the HTTP shell
// installs a bcrypt comparer because it stores hashes, not passwords.
type CredentialComparer interface {
	Compare(stored, supplied string) bool
}

type CredentialComparerFunc func(stored, supplied string) bool

func (f CredentialComparerFunc) Compare(stored, supplied string) bool {
	return f(stored, supplied)
}

// ExactMatch is the default comparer: the credential is opaque and compared
// byte for byte.
func ExactMatch() CredentialComparer {
	return CredentialComparerFunc(func(stored, supplied string) bool {
		return stored == supplied
	})
}
