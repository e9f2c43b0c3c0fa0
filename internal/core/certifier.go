package core

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"certreg/internal/certificate"
	"certreg/internal/confirm"
	"certreg/internal/proof"
	"certreg/internal/repository"
	tokenIssuer "certreg/pkg/jwt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrInvalidHash error = errors.New("certificate hash must be 0x followed by 64 hex characters")
var ErrCertificateNotFound error = errors.New("no certificate found for hash")

var timeNow = time.Now

var hashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// Certifier drives the certificate issuance and verification workflow
// against the on-chain registry.
type Certifier struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
	registry  Registry
	tracker   Tracker
	proofs    ProofBuilder
	chainID   int64
}

func NewCertifier(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, reg Registry, tracker Tracker, proofs ProofBuilder, chainID int64) *Certifier {
	return &Certifier{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
		registry:  reg,
		tracker:   tracker,
		proofs:    proofs,
		chainID:   chainID,
	}
}

// Authenticate checks the provided credentials and returns a signed token
// for the issuance endpoints.
func (c *Certifier) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := c.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Expiration: 24,
	}
	token := c.jwtIssuer.Generate(tokenInfo)
	signed, err := c.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// IssueCertificate submits a certificate to the registry contract and
// returns once the transaction is included. Confirmation tracking and the
// audit trail update run in the background; the chain write itself is not
// affected if the caller goes away.
func (c *Certifier) IssueCertificate(ctx context.Context, token string, req IssueRequest) (IssuedCertificate, error) {
	claims, err := c.jwtIssuer.Validate(token)
	if err != nil {
		return IssuedCertificate{}, fmt.Errorf("validate jwt token: %w", err)
	}

	userID, _ := claims["sub"].(string)

	rec := certificate.Record{
		StudentName:     req.StudentName,
		CertificateID:   req.CertificateID,
		CourseName:      req.CourseName,
		Grade:           req.Grade,
		InstitutionName: req.InstitutionName,
		IssueDate:       req.IssueDate,
		IssuedAt:        timeNow().Unix(),
	}

	receipt, err := c.registry.Issue(ctx, rec)
	if err != nil {
		return IssuedCertificate{}, fmt.Errorf("issue certificate: %w", err)
	}

	c.logs.Infow("certificate issued",
		"certificate_hash", receipt.CertificateHash.Hex(),
		"tx_hash", receipt.TransactionHash.Hex(),
		"block_number", receipt.BlockNumber,
		"gas_used", receipt.GasUsed,
		"user_id", userID)

	issuance := repository.Issuance{
		CertificateHash: receipt.CertificateHash.Hex(),
		TransactionHash: receipt.TransactionHash.Hex(),
		BlockNumber:     receipt.BlockNumber,
		GasUsed:         receipt.GasUsed,
		StudentName:     req.StudentName,
		CertificateID:   req.CertificateID,
		CourseName:      req.CourseName,
		IssuerAddress:   receipt.Issuer.Hex(),
		UserID:          userID,
		IssuedAt:        rec.IssuedAt,
	}

	if err := c.repo.SaveIssuances(ctx, []repository.Issuance{issuance}); err != nil {
		c.logs.Errorw("failed to save issuance audit row",
			"error", err,
			"certificate_hash", receipt.CertificateHash.Hex())
	}

	go c.trackFinalization(receipt.CertificateHash.Hex(), receipt.BlockNumber)

	return IssuedCertificate{
		CertificateHash: receipt.CertificateHash.Hex(),
		ClientHash:      receipt.ClientHash.Hex(),
		TransactionHash: receipt.TransactionHash.Hex(),
		BlockNumber:     receipt.BlockNumber,
		GasUsed:         receipt.GasUsed,
		Confirmation:    confirm.StatePending.String(),
	}, nil
}

// VerifyCertificate looks up a certificate by its hash. Unknown hashes are
// a regular answer with Exists false, not an error.
func (c *Certifier) VerifyCertificate(ctx context.Context, hashHex string) (Verification, error) {
	hash, err := parseHash(hashHex)
	if err != nil {
		return Verification{}, err
	}

	result, err := c.registry.Verify(ctx, hash)
	if err != nil {
		return Verification{}, fmt.Errorf("verify certificate: %w", err)
	}

	if !result.Exists {
		return Verification{}, nil
	}

	return Verification{
		Exists:          result.Exists,
		IsValid:         result.IsValid,
		StudentName:     result.StudentName,
		CertificateID:   result.CertificateID,
		CourseName:      result.CourseName,
		Grade:           result.Grade,
		InstitutionName: result.InstitutionName,
		IssueDate:       result.IssueDate,
		Issuer:          result.Issuer.Hex(),
	}, nil
}

// CertificateProof verifies a certificate and renders it into a portable
// proof. Unlike VerifyCertificate an unknown hash is an error here, since
// there is nothing to present.
func (c *Certifier) CertificateProof(ctx context.Context, hashHex string) (proof.PortableProof, error) {
	hash, err := parseHash(hashHex)
	if err != nil {
		return proof.PortableProof{}, err
	}

	result, err := c.registry.Verify(ctx, hash)
	if err != nil {
		return proof.PortableProof{}, fmt.Errorf("verify certificate: %w", err)
	}

	if !result.Exists {
		return proof.PortableProof{}, fmt.Errorf("%w: %s", ErrCertificateNotFound, hashHex)
	}

	portable, err := c.proofs.Build(result, hash)
	if err != nil {
		return proof.PortableProof{}, fmt.Errorf("build proof: %w", err)
	}

	return portable, nil
}

func (c *Certifier) Stats(ctx context.Context) (Stats, error) {
	total, err := c.registry.TotalIssued(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("get total issued: %w", err)
	}

	owner, err := c.registry.Owner(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("get registry owner: %w", err)
	}

	return Stats{
		TotalIssued: total,
		Owner:       owner.Hex(),
		ChainID:     c.chainID,
	}, nil
}

// IssuanceHistory returns the audit trail of issuances performed through
// this service by the authenticated user.
func (c *Certifier) IssuanceHistory(ctx context.Context, token string) ([]IssuanceEntry, error) {
	claims, err := c.jwtIssuer.Validate(token)
	if err != nil {
		return nil, fmt.Errorf("validate jwt token: %w", err)
	}

	userID, _ := claims["sub"].(string)

	issuances, err := c.repo.GetIssuancesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get issuance history: %w", err)
	}

	entries := make([]IssuanceEntry, len(issuances))
	for i, issuance := range issuances {
		entries[i] = IssuanceEntry{
			CertificateHash: issuance.CertificateHash,
			TransactionHash: issuance.TransactionHash,
			BlockNumber:     issuance.BlockNumber,
			GasUsed:         issuance.GasUsed,
			StudentName:     issuance.StudentName,
			CertificateID:   issuance.CertificateID,
			CourseName:      issuance.CourseName,
			IssuerAddress:   issuance.IssuerAddress,
			IssuedAt:        issuance.IssuedAt,
			Finalized:       issuance.Finalized,
		}
	}

	return entries, nil
}

// trackFinalization waits out the confirmation depth for an included
// issuance and marks the audit row finalized. It runs detached from the
// request: cancelling the caller must not stop confirmation tracking.
func (c *Certifier) trackFinalization(certificateHash string, blockNumber uint64) {
	ctx := context.Background()

	status, err := c.tracker.Await(ctx, blockNumber)
	if err != nil {
		c.logs.Errorw("confirmation tracking ended without finality",
			"error", err,
			"state", status.State.String(),
			"confirmations", status.Confirmations,
			"certificate_hash", certificateHash)
		return
	}

	c.logs.Infow("issuance finalized",
		"certificate_hash", certificateHash,
		"confirmations", status.Confirmations)

	if err := c.repo.MarkFinalized(ctx, certificateHash); err != nil {
		c.logs.Errorw("failed to mark issuance finalized",
			"error", err,
			"certificate_hash", certificateHash)
	}
}

func parseHash(hashHex string) (common.Hash, error) {
	if !hashPattern.MatchString(hashHex) {
		return common.Hash{}, fmt.Errorf("%w: %q", ErrInvalidHash, hashHex)
	}
	return common.HexToHash(hashHex), nil
}
