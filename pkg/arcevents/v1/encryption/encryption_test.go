package encryption_test

import (
	"context"
	"errors"
	"testing"

	"github.com/arc-labs/arcevents/internal/eventtest"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/encryption"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncrypt(t *testing.T) {
	target := eventtest.NewTarget()
	rec := eventtest.Respond(target, eventtypes.EncryptionEncrypt, "cipher")

	got, err := encryption.Encrypt(context.Background(), target, "plain", "pass", "")
	require.NoError(t, err)
	assert.Equal(t, "cipher", got)

	e := rec.Last().(*encryption.CryptoEvent)
	assert.Equal(t, "plain", e.Data())
	assert.Equal(t, "pass", e.Passphrase())
	assert.Equal(t, encryption.MethodAES, e.Method())
	assert.NotContains(t, e.Detail(), "passphrase")
}

func TestDecrypt(t *testing.T) {
	target := eventtest.NewTarget()
	eventtest.Fail(target, eventtypes.EncryptionDecrypt, errors.New("bad passphrase"))

	_, err := encryption.Decrypt(context.Background(), target, "cipher", "wrong", "aes")
	assert.EqualError(t, err, "bad passphrase")
}

func TestConstructorErrors(t *testing.T) {
	_, err := encryption.NewEncryptEvent("", "pass", "")
	assert.EqualError(t, err, "Expected data argument as string.")
	_, err = encryption.NewDecryptEvent("cipher", "", "")
	assert.EqualError(t, err, "Expected passphrase argument as string.")
}
