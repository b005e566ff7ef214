package session

// Key resolves a logical storage key against a session identity. With no
// identity the logical key is returned unmodified (shared legacy namespace).
func Key(name, identity string) string {
	if identity == "" {
		return name
	}
	return name + "_" + identity
}
