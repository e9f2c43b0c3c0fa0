package payload

import (
	"regexp"

	"github.com/jellydator/validation"

	"certreg/internal/core"
)

var hashRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

type IssueCertificateRequest struct {
	StudentName     string `json:"studentName"`
	CertificateID   string `json:"certificateId"`
	CourseName      string `json:"courseName"`
	Grade           string `json:"grade"`
	InstitutionName string `json:"institutionName"`
	IssueDate       string `json:"issueDate"`
}

func (r IssueCertificateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.StudentName, validation.Required),
		validation.Field(&r.CertificateID, validation.Required),
		validation.Field(&r.CourseName, validation.Required),
		validation.Field(&r.IssueDate, validation.Date("2006-01-02")),
	)
}

func (r IssueCertificateRequest) ToRequest() core.IssueRequest {
	return core.IssueRequest{
		StudentName:     r.StudentName,
		CertificateID:   r.CertificateID,
		CourseName:      r.CourseName,
		Grade:           r.Grade,
		InstitutionName: r.InstitutionName,
		IssueDate:       r.IssueDate,
	}
}

type HashParam struct {
	Hash string
}

func (h HashParam) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.Hash, validation.Required, validation.Match(hashRegex)),
	)
}
