package registry

import "github.com/ethereum/go-ethereum/common"

// IssueReceipt is the outcome of a broadcast issuance transaction once it
// has been included in a block. Finalization (confirmation depth) is
// tracked separately.
type IssueReceipt struct {
	TransactionHash common.Hash
	BlockNumber     uint64
	GasUsed         uint64
	// CertificateHash is the identifier the contract derived and emitted.
	CertificateHash common.Hash
	// ClientHash is the locally computed identifier, kept for cross-checking
	// against the on-chain derivation.
	ClientHash common.Hash
	// Issuer is the account the transaction was sent from.
	Issuer common.Address
}

// VerificationResult is the on-demand view of a stored certificate. An
// unknown hash yields the zero value with Exists false; it is never an
// error.
type VerificationResult struct {
	Exists          bool
	IsValid         bool
	StudentName     string
	CertificateID   string
	CourseName      string
	Grade           string
	InstitutionName string
	IssueDate       int64
	Issuer          common.Address
}
