// Package types holds the data-store entities and value objects carried by
// event payloads. The data store owns identity and revisions; these are
// plain shapes with JSON tags matching the stored documents.
package types

// Entity is the identity every stored document carries.
type Entity struct {
	ID  string `json:"_id,omitempty" yaml:"_id,omitempty"`
	Rev string `json:"_rev,omitempty" yaml:"_rev,omitempty"`
}

// Meta returns the identity of the embedding document.
func (e *Entity) Meta() *Entity { return e }

// Project groups saved requests.
type Project struct {
	Entity       `yaml:",inline"`
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description,omitempty" yaml:"description,omitempty"`
	Order        int      `json:"order,omitempty" yaml:"order,omitempty"`
	Requests     []string `json:"requests,omitempty" yaml:"requests,omitempty"`
	Environments []string `json:"environments,omitempty" yaml:"environments,omitempty"`
}

// RequestKind selects the store a request lives in.
type RequestKind string

const (
	RequestSaved   RequestKind = "saved"
	RequestHistory RequestKind = "history"
)

// Valid reports whether k names a request store.
func (k RequestKind) Valid() bool {
	return k == RequestSaved || k == RequestHistory
}

// Header is one HTTP header line.
type Header struct {
	Name    string `json:"name" yaml:"name"`
	Value   string `json:"value" yaml:"value"`
	Enabled bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
}

// HTTPRequest is the transport-level description of a request.
type HTTPRequest struct {
	URL     string   `json:"url" yaml:"url"`
	Method  string   `json:"method" yaml:"method"`
	Headers []Header `json:"headers,omitempty" yaml:"headers,omitempty"`
	Payload string   `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// Request is a saved or history request.
type Request struct {
	Entity      `yaml:",inline"`
	HTTPRequest `yaml:",inline"`
	Type        RequestKind `json:"type,omitempty" yaml:"type,omitempty"`
	Name        string      `json:"name,omitempty" yaml:"name,omitempty"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Projects    []string    `json:"projects,omitempty" yaml:"projects,omitempty"`
	Created     int64       `json:"created,omitempty" yaml:"created,omitempty"`
	Updated     int64       `json:"updated,omitempty" yaml:"updated,omitempty"`
	Midnight    int64       `json:"midnight,omitempty" yaml:"midnight,omitempty"`
}

// URLHistory is an entry of the URL autocomplete history. Its id is the URL.
type URLHistory struct {
	Entity   `yaml:",inline"`
	URL      string `json:"url" yaml:"url"`
	Time     int64  `json:"time" yaml:"time"`
	Count    int    `json:"cnt" yaml:"cnt"`
	Midnight int64  `json:"midnight,omitempty" yaml:"midnight,omitempty"`
}

// Environment is a named set of variables.
type Environment struct {
	Entity      `yaml:",inline"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Created     int64  `json:"created,omitempty" yaml:"created,omitempty"`
}

// Variable belongs to an environment.
type Variable struct {
	Entity      `yaml:",inline"`
	Environment string `json:"environment" yaml:"environment"`
	Name        string `json:"name" yaml:"name"`
	Value       string `json:"value" yaml:"value"`
	Enabled     bool   `json:"enabled" yaml:"enabled"`
}

// EnvironmentState is the selected environment with its variables.
// A nil Environment is the default environment.
type EnvironmentState struct {
	Environment *Environment      `json:"environment,omitempty"`
	Variables   []*Variable       `json:"variables"`
	System      map[string]string `json:"systemVariables,omitempty"`
}

// HostRule rewrites request URLs before they hit the transport.
type HostRule struct {
	Entity  `yaml:",inline"`
	From    string `json:"from" yaml:"from"`
	To      string `json:"to" yaml:"to"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// CertificateData is one certificate or key blob.
type CertificateData struct {
	Data       string `json:"data"`
	Passphrase string `json:"passphrase,omitempty"`
}

// ClientCertificate is a TLS client certificate with its key.
type ClientCertificate struct {
	Entity  `yaml:",inline"`
	Name    string           `json:"name"`
	Type    string           `json:"type"`
	Created int64            `json:"created,omitempty"`
	Cert    CertificateData  `json:"cert"`
	Key     *CertificateData `json:"key,omitempty"`
}

// RestAPIIndex lists a REST API definition and its versions.
type RestAPIIndex struct {
	Entity   `yaml:",inline"`
	Title    string   `json:"title" yaml:"title"`
	Order    int      `json:"order,omitempty" yaml:"order,omitempty"`
	Versions []string `json:"versions" yaml:"versions"`
	Latest   string   `json:"latest" yaml:"latest"`
}

// RestAPIData is the model of one REST API version.
type RestAPIData struct {
	Entity  `yaml:",inline"`
	IndexID string `json:"indexId" yaml:"indexId"`
	Version string `json:"version" yaml:"version"`
	Data    string `json:"data" yaml:"data"`
}

// RestAPIProcessResult is the outcome of processing an API definition file.
type RestAPIProcessResult struct {
	Model string `json:"model"`
	File  string `json:"file"`
}

// AuthData is stored basic/NTLM credentials for a URL and method.
type AuthData struct {
	Entity   `yaml:",inline"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password,omitempty" yaml:"password,omitempty"`
	Domain   string `json:"domain,omitempty" yaml:"domain,omitempty"`
}

// IndexableRequest is a request the URL indexer should index.
type IndexableRequest struct {
	ID   string      `json:"id"`
	URL  string      `json:"url"`
	Type RequestKind `json:"type"`
}

// IndexQueryOptions narrows a URL index query.
type IndexQueryOptions struct {
	Type     RequestKind `json:"type,omitempty"`
	Detailed bool        `json:"detailed,omitempty"`
}

// IndexQueryResult maps request ids to their request kind.
type IndexQueryResult map[string]RequestKind

// Cookie is a session cookie.
type Cookie struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Domain   string `json:"domain"`
	Path     string `json:"path"`
	Expires  int64  `json:"expires,omitempty"`
	HostOnly bool   `json:"hostOnly,omitempty"`
	HTTPOnly bool   `json:"httpOnly,omitempty"`
	Secure   bool   `json:"secure,omitempty"`
	Session  bool   `json:"session,omitempty"`
}

// Key identifies a cookie within a cookie store.
func (c *Cookie) Key() string {
	return c.Domain + "|" + c.Path + "|" + c.Name
}

// Config is the application configuration as a nested key/value document.
type Config map[string]interface{}
