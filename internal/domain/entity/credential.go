package entity

// CredentialPair is the identifier/secret pair presented by a single request.
// It is never persisted.
type CredentialPair struct {
	Identifier string
	Secret     string
}
