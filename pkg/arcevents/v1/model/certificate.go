package model

import (
	"context"

	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
)

// ReadCertificate returns the client certificate id with its key.
func ReadCertificate(ctx context.Context, target events.Target, id, rev string) (*types.ClientCertificate, error) {
	return read[types.ClientCertificate](ctx, target, eventtypes.CertificateRead, id, rev)
}

// ListCertificates returns one page of certificates. Listed items carry
// no certificate data.
func ListCertificates(ctx context.Context, target events.Target, opts events.ListOptions) (events.ListResult[types.ClientCertificate], error) {
	return list[types.ClientCertificate](ctx, target, eventtypes.CertificateList, opts)
}

// DeleteCertificate removes the certificate id.
func DeleteCertificate(ctx context.Context, target events.Target, id, rev string) (events.DeletedRecord, error) {
	return remove(ctx, target, eventtypes.CertificateDelete, id, rev)
}

// InsertCertificate stores cert.
func InsertCertificate(ctx context.Context, target events.Target, cert *types.ClientCertificate) (events.ChangeRecord[types.ClientCertificate], error) {
	return update(ctx, target, eventtypes.CertificateInsert, cert)
}

// NotifyCertificateUpdated announces a stored certificate.
func NotifyCertificateUpdated(ctx context.Context, target events.Target, record *events.ChangeRecord[types.ClientCertificate]) error {
	return notifyChanged(ctx, target, eventtypes.CertificateStateUpdate, record)
}

// NotifyCertificateDeleted announces a removed certificate.
func NotifyCertificateDeleted(ctx context.Context, target events.Target, id, rev string) error {
	return notifyDeleted(ctx, target, eventtypes.CertificateStateDelete, id, rev)
}
