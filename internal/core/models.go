package core

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type IssueRequest struct {
	StudentName     string
	CertificateID   string
	CourseName      string
	Grade           string
	InstitutionName string
	IssueDate       string
}

// IssuedCertificate is what the caller gets back once the issuance
// transaction is included; confirmation tracking continues in the
// background.
type IssuedCertificate struct {
	CertificateHash string `json:"certificateHash"`
	ClientHash      string `json:"clientHash"`
	TransactionHash string `json:"transactionHash"`
	BlockNumber     uint64 `json:"blockNumber"`
	GasUsed         uint64 `json:"gasUsed"`
	Confirmation    string `json:"confirmation"`
}

type Verification struct {
	Exists          bool   `json:"exists"`
	IsValid         bool   `json:"isValid"`
	StudentName     string `json:"studentName,omitempty"`
	CertificateID   string `json:"certificateId,omitempty"`
	CourseName      string `json:"courseName,omitempty"`
	Grade           string `json:"grade,omitempty"`
	InstitutionName string `json:"institutionName,omitempty"`
	IssueDate       int64  `json:"issueDate,omitempty"`
	Issuer          string `json:"issuer,omitempty"`
}

type Stats struct {
	TotalIssued uint64 `json:"totalIssued"`
	Owner       string `json:"owner"`
	ChainID     int64  `json:"chainId"`
}

type IssuanceEntry struct {
	CertificateHash string `json:"certificateHash"`
	TransactionHash string `json:"transactionHash"`
	BlockNumber     uint64 `json:"blockNumber"`
	GasUsed         uint64 `json:"gasUsed"`
	StudentName     string `json:"studentName"`
	CertificateID   string `json:"certificateId"`
	CourseName      string `json:"courseName"`
	IssuerAddress   string `json:"issuerAddress"`
	IssuedAt        int64  `json:"issuedAt"`
	Finalized       bool   `json:"finalized"`
}
