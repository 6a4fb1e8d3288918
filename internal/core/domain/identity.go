package domain

// AuthMode tags the identity union: a real provider session, a local
// offline pseudo-identity, or an explicitly low-trust guest.
type AuthMode string

const (
	AuthModeProvider AuthMode = "provider"
	AuthModeOffline  AuthMode = "offline"
	AuthModeGuest    AuthMode = "guest"
)

// AuthProvider identifies the external identity provider for provider-mode
// sessions. Only Google is wired today.
type AuthProvider string

const (
	ProviderGoogle AuthProvider = "google"
)

// Identity is the signed-in user. ProviderUserID and Provider are empty for
// offline and guest pseudo-identities, which carry no provider session.
type Identity struct {
	UserID         string       `json:"userID"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	AvatarURL      string       `json:"avatarURL,omitempty"`
	Mode           AuthMode     `json:"mode"`
	Provider       AuthProvider `json:"provider,omitempty"`
	ProviderUserID string       `json:"providerUserID,omitempty"`
}

// IsPseudo reports whether the identity was fabricated locally, i.e. there
// is no identity-provider session behind it.
func (i Identity) IsPseudo() bool {
	return i.Mode != AuthModeProvider
}

// ProviderProfile is the validated claim set extracted from an identity
// provider session token.
type ProviderProfile struct {
	Subject       string
	Email         string
	Name          string
	AvatarURL     string
	EmailVerified bool
}

// Fixed pseudo-identity accounts used when no provider is configured or the
// user explicitly chooses the low-trust demo mode.
const (
	OfflineEmail = "offline@maooe.pro"
	OfflineName  = "Usuário Local"
	GuestEmail   = "guest@maooe.pro"
	GuestName    = "Convidado"
)
