package types

// OAuth2Authorization configures an OAuth 2 or OIDC authorization request.
type OAuth2Authorization struct {
	GrantType           string   `json:"grantType"`
	ClientID            string   `json:"clientId"`
	ClientSecret        string   `json:"clientSecret,omitempty"`
	AuthorizationURI    string   `json:"authorizationUri,omitempty"`
	AccessTokenURI      string   `json:"accessTokenUri,omitempty"`
	RedirectURI         string   `json:"redirectUri,omitempty"`
	Scopes              []string `json:"scopes,omitempty"`
	State               string   `json:"state,omitempty"`
	Username            string   `json:"username,omitempty"`
	Password            string   `json:"password,omitempty"`
	Interactive         bool     `json:"interactive,omitempty"`
	PKCE                bool     `json:"pkce,omitempty"`
	ResponseType        string   `json:"responseType,omitempty"`
	IssuerURI           string   `json:"issuerUri,omitempty"`
	DeliveryMethod      string   `json:"deliveryMethod,omitempty"`
	DeliveryName        string   `json:"deliveryName,omitempty"`
	IncludeGrantedScope bool     `json:"includeGrantedScopes,omitempty"`
}

// TokenInfo is the outcome of an OAuth 2 authorization.
type TokenInfo struct {
	AccessToken  string   `json:"accessToken"`
	TokenType    string   `json:"tokenType,omitempty"`
	RefreshToken string   `json:"refreshToken,omitempty"`
	ExpiresIn    int64    `json:"expiresIn,omitempty"`
	ExpiresAt    int64    `json:"expiresAt,omitempty"`
	Scope        []string `json:"scope,omitempty"`
	State        string   `json:"state,omitempty"`
}

// OidcTokenInfo adds the id token OIDC providers return.
type OidcTokenInfo struct {
	TokenInfo
	IDToken string `json:"idToken,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ExportOptions selects how exported data is stored.
type ExportOptions struct {
	Provider        string           `json:"provider"`
	File            string           `json:"file,omitempty"`
	Kind            string           `json:"kind,omitempty"`
	Encrypt         bool             `json:"encrypt,omitempty"`
	Passphrase      string           `json:"passphrase,omitempty"`
	SkipImport      bool             `json:"skipImport,omitempty"`
	ProviderOptions *ProviderOptions `json:"providerOptions,omitempty"`
}

// ProviderOptions are passed to the storage provider of an export.
type ProviderOptions struct {
	File        string `json:"file,omitempty"`
	Parent      string `json:"parent,omitempty"`
	ContentType string `json:"contentType,omitempty"`
}

// ExportResult reports where exported data ended up.
type ExportResult struct {
	Success     bool   `json:"success"`
	Interrupted bool   `json:"interrupted,omitempty"`
	ParentID    string `json:"parentId,omitempty"`
	FileID      string `json:"fileId,omitempty"`
}

// NativeDataExport selects the stores a native export includes. Only
// stores set to true are exported.
type NativeDataExport struct {
	Requests           bool `json:"requests,omitempty"`
	Projects           bool `json:"projects,omitempty"`
	History            bool `json:"history,omitempty"`
	Environments       bool `json:"environments,omitempty"`
	Cookies            bool `json:"cookies,omitempty"`
	AuthData           bool `json:"authdata,omitempty"`
	URLHistory         bool `json:"urlhistory,omitempty"`
	ClientCertificates bool `json:"clientcertificates,omitempty"`
	HostRules          bool `json:"hostrules,omitempty"`
}

// ExportObject is the document an export produces and an import consumes.
type ExportObject struct {
	Kind               string               `json:"kind"`
	CreatedAt          string               `json:"createdAt"`
	Version            string               `json:"version"`
	Requests           []*Request           `json:"requests,omitempty"`
	Projects           []*Project           `json:"projects,omitempty"`
	History            []*Request           `json:"history,omitempty"`
	Environments       []*Environment       `json:"environments,omitempty"`
	Variables          []*Variable          `json:"variables,omitempty"`
	Cookies            []*Cookie            `json:"cookies,omitempty"`
	AuthData           []*AuthData          `json:"authdata,omitempty"`
	URLHistory         []*URLHistory        `json:"urlhistory,omitempty"`
	ClientCertificates []*ClientCertificate `json:"clientcertificates,omitempty"`
	HostRules          []*HostRule          `json:"hostrules,omitempty"`
}

// File is a user-selected file handed to an import or processing step.
type File struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
	Data []byte `json:"data"`
}

// ImportOptions controls the import of processed data.
type ImportOptions struct {
	Driver   string `json:"driver,omitempty"`
	Password string `json:"password,omitempty"`
}

// AppFolder is a folder the application created in cloud storage.
type AppFolder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EditorRequest is a request as the request editor holds it.
type EditorRequest struct {
	ID      string       `json:"id"`
	Request *HTTPRequest `json:"request"`
}

// TransportConfig tunes a single HTTP transport call.
type TransportConfig struct {
	Timeout         int64 `json:"timeout,omitempty"`
	FollowRedirects bool  `json:"followRedirects,omitempty"`
	ValidateCerts   bool  `json:"validateCertificates,omitempty"`
	NativeTransport bool  `json:"nativeTransport,omitempty"`
}

// HTTPResponse is a response as received by the transport.
type HTTPResponse struct {
	Status     int      `json:"status"`
	StatusText string   `json:"statusText,omitempty"`
	Headers    []Header `json:"headers,omitempty"`
	Payload    string   `json:"payload,omitempty"`
	Loading    int64    `json:"loadingTime,omitempty"`
}

// TransportResult pairs the request that was sent with its response.
type TransportResult struct {
	ID       string        `json:"id"`
	Request  *HTTPRequest  `json:"request"`
	Response *HTTPResponse `json:"response"`
}

// Workspace is the persisted state of the request editor.
type Workspace struct {
	Kind          string            `json:"kind"`
	Version       string            `json:"version"`
	Requests      []*EditorRequest  `json:"requests"`
	SelectedIndex int               `json:"selected,omitempty"`
	Environment   string            `json:"environment,omitempty"`
	Variables     map[string]string `json:"variables,omitempty"`
}
