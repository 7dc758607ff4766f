package argline

// Claims tracks which logical fields a parse has already assigned, keyed
// by a human-readable label. One claim set lives per invocation.
type Claims map[string]bool

// NewClaims returns an empty claim set.
func NewClaims() Claims {
	return make(Claims)
}

// Claim marks label as assigned, failing if it was already claimed.
func (cl Claims) Claim(label string) error {
	if cl[label] {
		return Usagef("%s set more than once", label)
	}
	cl[label] = true
	return nil
}
