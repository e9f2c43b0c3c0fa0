package handler

import (
	"context"
	"net/http"

	"certreg/internal/core"
	"certreg/internal/proof"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name CertificateService . CertificateService
type CertificateService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	IssueCertificate(ctx context.Context, token string, req core.IssueRequest) (core.IssuedCertificate, error)
	VerifyCertificate(ctx context.Context, hashHex string) (core.Verification, error)
	CertificateProof(ctx context.Context, hashHex string) (proof.PortableProof, error)
	Stats(ctx context.Context) (core.Stats, error)
	IssuanceHistory(ctx context.Context, token string) ([]core.IssuanceEntry, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
