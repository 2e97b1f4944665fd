// Package encryption holds the events that encrypt and decrypt exported
// data with a user passphrase.
package encryption

import (
	"context"

	"github.com/arc-labs/arcevents/internal/argutil"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
)

// MethodAES is the default cipher.
const MethodAES = "aes"

// CryptoEvent carries data, a passphrase and a cipher method. Its type
// decides the direction.
type CryptoEvent struct {
	events.Base
	events.Request[string]
	data       string
	passphrase string
	method     string
}

func newCryptoEvent(t events.EventType, data, passphrase, method string) (*CryptoEvent, error) {
	if err := argutil.First(
		argutil.String("data", data),
		argutil.String("passphrase", passphrase),
	); err != nil {
		return nil, err
	}
	if method == "" {
		method = MethodAES
	}
	return &CryptoEvent{Base: events.NewBase(t), data: data, passphrase: passphrase, method: method}, nil
}

// NewEncryptEvent requires data and passphrase. An empty method selects
// MethodAES.
func NewEncryptEvent(data, passphrase, method string) (*CryptoEvent, error) {
	return newCryptoEvent(eventtypes.EncryptionEncrypt, data, passphrase, method)
}

// NewDecryptEvent requires data and passphrase. An empty method selects
// MethodAES.
func NewDecryptEvent(data, passphrase, method string) (*CryptoEvent, error) {
	return newCryptoEvent(eventtypes.EncryptionDecrypt, data, passphrase, method)
}

func (e *CryptoEvent) Data() string       { return e.data }
func (e *CryptoEvent) Passphrase() string { return e.passphrase }
func (e *CryptoEvent) Method() string     { return e.method }

// Detail implements events.Detailer. The passphrase is left out.
func (e *CryptoEvent) Detail() interface{} {
	return map[string]interface{}{"method": e.method, "size": len(e.data)}
}

// Encrypt returns data encrypted with passphrase.
func Encrypt(ctx context.Context, target events.Target, data, passphrase, method string) (string, error) {
	e, err := NewEncryptEvent(data, passphrase, method)
	if err != nil {
		return "", err
	}
	return events.Call[string](ctx, target, e)
}

// Decrypt returns the plain text of data.
func Decrypt(ctx context.Context, target events.Target, data, passphrase, method string) (string, error) {
	e, err := NewDecryptEvent(data, passphrase, method)
	if err != nil {
		return "", err
	}
	return events.Call[string](ctx, target, e)
}
