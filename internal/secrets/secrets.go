package secrets

// KeyGeminiAPIKey is the name under which the remote generation
// credential is stored.
const KeyGeminiAPIKey = "gemini_api_key"

// Store persists named credential strings. Get returns an empty string
// for an unknown name; absence is a normal condition, not an error.
type Store interface {
	Get(name string) (string, error)
	Set(name, value string) error
}
