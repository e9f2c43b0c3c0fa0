package certificate

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
)

var ErrValidation error = errors.New("invalid certificate record")

// Record holds the fields of an academic certificate as submitted for
// issuance. Once written to the chain a record is immutable; the struct
// here is only the transient client-side view.
type Record struct {
	StudentName     string
	CertificateID   string
	CourseName      string
	Grade           string
	InstitutionName string
	IssueDate       string
	IssuedAt        int64
	Issuer          common.Address
}

// Validate rejects records missing the required fields. Optional fields
// (grade, institution, display date) may be blank.
func (r Record) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.StudentName, validation.Required),
		validation.Field(&r.CertificateID, validation.Required),
		validation.Field(&r.CourseName, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err)
	}
	return nil
}
