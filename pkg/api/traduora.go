// Package api defines the wire types of the Traduora REST API that the
// client exchanges with the server. Every payload-carrying response wraps
// its content in a "data" envelope.
package api

// TokenRequest is the password-grant authentication request.
type TokenRequest struct {
	GrantType string `json:"grant_type"` // always "password"
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// TokenResponse carries the issued access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   string `json:"expires_in"` // duration string, e.g. "86400s"
}

// Term is one project term as stored remotely.
type Term struct {
	ID     string   `json:"id"`
	Value  string   `json:"value"`
	Labels []string `json:"labels,omitempty"`
}

// Translation is the text of one term in one locale.
type Translation struct {
	TermID string `json:"termId"`
	Value  string `json:"value"`
}

// CreateTermRequest creates a new term in a project.
type CreateTermRequest struct {
	Value string `json:"value"`
}

// EditTranslationRequest sets the translation of an existing term for the
// requested locale.
type EditTranslationRequest struct {
	TermID string `json:"termId"`
	Value  string `json:"value"`
}

// TermsResponse is the envelope of the terms list endpoint.
type TermsResponse struct {
	Data []Term `json:"data"`
}

// TranslationsResponse is the envelope of the locale translations endpoint.
type TranslationsResponse struct {
	Data []Translation `json:"data"`
}

// TermResponse is the envelope of the create-term endpoint.
type TermResponse struct {
	Data Term `json:"data"`
}

// TranslationResponse is the envelope of the edit-translation endpoint.
type TranslationResponse struct {
	Data Translation `json:"data"`
}

// ErrorResponse is Traduora's error envelope.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
