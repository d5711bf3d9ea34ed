package config

const (
	tokenSecretVar    = "SESSION_TOKEN_SECRET"
	tokenIssuerVar    = "SESSION_TOKEN_ISSUER"
	tokenAudienceVar  = "SESSION_TOKEN_AUDIENCE"
	defaultSectionVar = "SESSION_DEFAULT_SECTION"
	accessTokenVar    = "SESSION_ACCESS_TOKEN"
)

type SessionConfig interface {
	GetTokenSecret() string
	GetTokenIssuer() string
	GetTokenAudience() string
	GetDefaultSection() string
	GetAccessToken() string
}

type Session struct{}

var _ SessionConfig = Session{}

// GetTokenSecret returns the HMAC key used to verify access tokens.
// An empty secret disables signature verification (DEV only).
func (Session) GetTokenSecret() string {
	return GetEnv(tokenSecretVar, "")
}

func (Session) GetTokenIssuer() string {
	return GetEnv(tokenIssuerVar, "")
}

func (Session) GetTokenAudience() string {
	return GetEnv(tokenAudienceVar, "")
}

func (Session) GetDefaultSection() string {
	return GetEnv(defaultSectionVar, "")
}

func (Session) GetAccessToken() string {
	return GetEnv(accessTokenVar, "")
}
