package certificate

import (
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Encode serializes a record into its canonical byte form: a fixed field
// order with every text field length-prefixed (uvarint), the issuer as 20
// raw bytes and the issuance timestamp as 8 big-endian bytes. The same
// field values always produce the same bytes on any platform, and no two
// distinct records share an encoding.
func Encode(r Record) ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	buf := make([]byte, 0, 256)
	for _, field := range []string{
		r.StudentName,
		r.CertificateID,
		r.CourseName,
		r.Grade,
		r.InstitutionName,
		r.IssueDate,
	} {
		buf = binary.AppendUvarint(buf, uint64(len(field)))
		buf = append(buf, field...)
	}

	buf = append(buf, r.Issuer.Bytes()...)
	buf = binary.BigEndian.AppendUint64(buf, uint64(r.IssuedAt))

	return buf, nil
}

// HashRecord derives the 32-byte certificate identifier from the canonical
// encoding. Keccak-256 matches the hashing the registry contract performs
// on-chain, so client and contract hashes can be cross-checked.
func HashRecord(r Record) (common.Hash, error) {
	encoded, err := Encode(r)
	if err != nil {
		return common.Hash{}, fmt.Errorf("encode record: %w", err)
	}
	return crypto.Keccak256Hash(encoded), nil
}
