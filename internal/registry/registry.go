package registry

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"certreg/internal/certificate"
)

var ErrUnauthorized error = errors.New("account is not an authorized issuer")
var ErrNotConnected error = errors.New("no connected signer account")
var ErrNoEvent error = errors.New("transaction emitted no CertificateIssued event")

const (
	issueGasLimit        = 500_000
	inclusionPollEvery   = 2 * time.Second
	readRetryAttempts    = 3
	readRetryInitialWait = 500 * time.Millisecond
)

// Registry is the contract-facing client. Writes require an authorized
// issuer; reads are public. The chain itself re-checks authorization, the
// preflight here only classifies the failure before paying for a revert.
type Registry struct {
	logs     *zap.SugaredLogger
	client   ChainClient
	signer   *Signer
	session  SessionContext
	contract common.Address
	abi      abi.ABI
	chainID  *big.Int

	// serializes nonce acquisition and broadcast for the issuer account
	writeMu sync.Mutex
}

func New(ctx context.Context, logger *zap.SugaredLogger, client ChainClient, signer *Signer, sess SessionContext, contract common.Address, abiJSON string) (*Registry, error) {
	if abiJSON == "" {
		abiJSON = ABIJSON
	}

	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, fmt.Errorf("parse registry abi: %w", err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get chain id: %w", err)
	}

	return &Registry{
		logs:     logger,
		client:   client,
		signer:   signer,
		session:  sess,
		contract: contract,
		abi:      parsed,
		chainID:  chainID,
	}, nil
}

func (r *Registry) ChainID() *big.Int {
	return new(big.Int).Set(r.chainID)
}

// Issue submits a certificate record to the registry contract and blocks
// until the transaction is included in a block (not until finality). The
// record's Issuer and IssuedAt must already be populated.
func (r *Registry) Issue(ctx context.Context, rec certificate.Record) (*IssueReceipt, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	from, connected := r.session.CurrentAccount()
	if !connected {
		return nil, ErrNotConnected
	}
	if from != r.signer.Address() {
		return nil, fmt.Errorf("no signing key for account %s", from.Hex())
	}

	rec.Issuer = from
	clientHash, err := certificate.HashRecord(rec)
	if err != nil {
		return nil, err
	}

	authorized, err := r.IsAuthorized(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("check issuer authorization: %w", err)
	}
	if !authorized {
		return nil, fmt.Errorf("%w: %s", ErrUnauthorized, from.Hex())
	}

	input, err := r.abi.Pack("issueCertificate",
		rec.StudentName,
		rec.CertificateID,
		rec.CourseName,
		rec.Grade,
		rec.InstitutionName,
	)
	if err != nil {
		return nil, fmt.Errorf("pack issueCertificate call: %w", err)
	}

	signedTx, err := r.broadcast(ctx, from, input)
	if err != nil {
		return nil, err
	}

	r.logs.Infow("issuance transaction broadcast",
		"tx_hash", signedTx.Hash().Hex(),
		"from", from.Hex(),
		"contract", r.contract.Hex())

	receipt, err := r.waitInclusion(ctx, signedTx.Hash())
	if err != nil {
		return nil, err
	}

	if receipt.Status == types.ReceiptStatusFailed {
		// the contract only reverts issuance for a missing authorization
		return nil, fmt.Errorf("%w: transaction %s reverted", ErrUnauthorized, signedTx.Hash().Hex())
	}

	certHash, err := r.issuedHash(receipt)
	if err != nil {
		return nil, err
	}

	if certHash != clientHash {
		r.logs.Infow("on-chain hash differs from client hash",
			"chain_hash", certHash.Hex(),
			"client_hash", clientHash.Hex())
	}

	return &IssueReceipt{
		TransactionHash: signedTx.Hash(),
		BlockNumber:     receipt.BlockNumber.Uint64(),
		GasUsed:         receipt.GasUsed,
		CertificateHash: certHash,
		ClientHash:      clientHash,
		Issuer:          from,
	}, nil
}

// Verify looks up a certificate by hash. Unknown hashes produce a zero
// result with Exists false, never an error.
func (r *Registry) Verify(ctx context.Context, hash common.Hash) (VerificationResult, error) {
	input, err := r.abi.Pack("verifyCertificate", hash)
	if err != nil {
		return VerificationResult{}, fmt.Errorf("pack verifyCertificate call: %w", err)
	}

	output, err := r.callWithRetry(ctx, input)
	if err != nil {
		return VerificationResult{}, fmt.Errorf("call verifyCertificate: %w", err)
	}

	out, err := r.abi.Unpack("verifyCertificate", output)
	if err != nil {
		return VerificationResult{}, fmt.Errorf("unpack verifyCertificate result: %w", err)
	}

	return VerificationResult{
		IsValid:         out[0].(bool),
		Exists:          out[1].(bool),
		StudentName:     out[2].(string),
		CertificateID:   out[3].(string),
		CourseName:      out[4].(string),
		Grade:           out[5].(string),
		InstitutionName: out[6].(string),
		IssueDate:       out[7].(*big.Int).Int64(),
		Issuer:          out[8].(common.Address),
	}, nil
}

func (r *Registry) TotalIssued(ctx context.Context) (uint64, error) {
	input, err := r.abi.Pack("totalCertificates")
	if err != nil {
		return 0, fmt.Errorf("pack totalCertificates call: %w", err)
	}

	output, err := r.callWithRetry(ctx, input)
	if err != nil {
		return 0, fmt.Errorf("call totalCertificates: %w", err)
	}

	out, err := r.abi.Unpack("totalCertificates", output)
	if err != nil {
		return 0, fmt.Errorf("unpack totalCertificates result: %w", err)
	}

	return out[0].(*big.Int).Uint64(), nil
}

func (r *Registry) Owner(ctx context.Context) (common.Address, error) {
	input, err := r.abi.Pack("owner")
	if err != nil {
		return common.Address{}, fmt.Errorf("pack owner call: %w", err)
	}

	output, err := r.callWithRetry(ctx, input)
	if err != nil {
		return common.Address{}, fmt.Errorf("call owner: %w", err)
	}

	out, err := r.abi.Unpack("owner", output)
	if err != nil {
		return common.Address{}, fmt.Errorf("unpack owner result: %w", err)
	}

	return out[0].(common.Address), nil
}

func (r *Registry) IsAuthorized(ctx context.Context, account common.Address) (bool, error) {
	input, err := r.abi.Pack("authorizedIssuers", account)
	if err != nil {
		return false, fmt.Errorf("pack authorizedIssuers call: %w", err)
	}

	output, err := r.callWithRetry(ctx, input)
	if err != nil {
		return false, fmt.Errorf("call authorizedIssuers: %w", err)
	}

	out, err := r.abi.Unpack("authorizedIssuers", output)
	if err != nil {
		return false, fmt.Errorf("unpack authorizedIssuers result: %w", err)
	}

	return out[0].(bool), nil
}

func (r *Registry) broadcast(ctx context.Context, from common.Address, input []byte) (*types.Transaction, error) {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	nonce, err := r.client.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("get pending nonce: %w", err)
	}

	gasPrice, err := r.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest gas price: %w", err)
	}

	tx := types.NewTransaction(nonce, r.contract, big.NewInt(0), issueGasLimit, gasPrice, input)
	signedTx, err := r.signer.SignTx(tx, r.chainID)
	if err != nil {
		return nil, err
	}

	// writes are never retried: a duplicate broadcast is a duplicate issuance
	if err := r.client.SendTransaction(ctx, signedTx); err != nil {
		return nil, fmt.Errorf("send transaction: %w", err)
	}

	return signedTx, nil
}

func (r *Registry) waitInclusion(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	for {
		receipt, err := r.client.TransactionReceipt(ctx, txHash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			r.logs.Errorw("failed to fetch transaction receipt", "error", err, "tx_hash", txHash.Hex())
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("wait for inclusion of %s: %w", txHash.Hex(), ctx.Err())
		case <-time.After(inclusionPollEvery):
		}
	}
}

func (r *Registry) issuedHash(receipt *types.Receipt) (common.Hash, error) {
	eventID := r.abi.Events["CertificateIssued"].ID
	for _, lg := range receipt.Logs {
		if lg.Address != r.contract || len(lg.Topics) < 2 {
			continue
		}
		if lg.Topics[0] == eventID {
			return lg.Topics[1], nil
		}
	}
	return common.Hash{}, ErrNoEvent
}

// callWithRetry performs a read-only contract call with a bounded number
// of attempts and exponential delay between them.
func (r *Registry) callWithRetry(ctx context.Context, input []byte) ([]byte, error) {
	msg := ethereum.CallMsg{
		To:   &r.contract,
		Data: input,
	}

	var lastErr error
	for attempt := 0; attempt < readRetryAttempts; attempt++ {
		if attempt > 0 {
			delay := readRetryInitialWait * time.Duration(1<<uint(attempt-1))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		output, err := r.client.CallContract(ctx, msg, nil)
		if err == nil {
			return output, nil
		}

		lastErr = err
		r.logs.Errorw("contract read failed", "error", err, "attempt", attempt+1)
	}

	return nil, fmt.Errorf("failed after %d attempts: %w", readRetryAttempts, lastErr)
}
