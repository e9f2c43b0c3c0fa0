package core

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt"

	"certreg/internal/certificate"
	"certreg/internal/confirm"
	"certreg/internal/proof"
	"certreg/internal/registry"
	"certreg/internal/repository"
	tokenIssuer "certreg/pkg/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Registry . Registry
type Registry interface {
	Issue(ctx context.Context, rec certificate.Record) (*registry.IssueReceipt, error)
	Verify(ctx context.Context, hash common.Hash) (registry.VerificationResult, error)
	TotalIssued(ctx context.Context) (uint64, error)
	Owner(ctx context.Context) (common.Address, error)
	IsAuthorized(ctx context.Context, account common.Address) (bool, error)
}

//counterfeiter:generate -o fake -fake-name Tracker . Tracker
type Tracker interface {
	Await(ctx context.Context, submissionBlock uint64) (confirm.Status, error)
}

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	SaveIssuances(ctx context.Context, issuances []repository.Issuance) error
	GetIssuancesByUser(ctx context.Context, userID string) ([]repository.Issuance, error)
	MarkFinalized(ctx context.Context, certificateHash string) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name ProofBuilder . ProofBuilder
type ProofBuilder interface {
	Build(result registry.VerificationResult, hash common.Hash) (proof.PortableProof, error)
}
