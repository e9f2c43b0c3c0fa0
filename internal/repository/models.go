package repository

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

// Issuance is the audit trail row for a certificate issuance. The chain
// remains the source of truth for verification; this table only records
// who issued what through this service.
type Issuance struct {
	CertificateHash string `gorm:"size:66;uniqueIndex;not null"` // 0x + 64 hex chars
	TransactionHash string `gorm:"size:66;not null"`
	BlockNumber     uint64 `gorm:"not null;index"`
	GasUsed         uint64 `gorm:"not null"`
	StudentName     string `gorm:"type:varchar(255);not null"`
	CertificateID   string `gorm:"type:varchar(100);not null;index"`
	CourseName      string `gorm:"type:varchar(255);not null"`
	IssuerAddress   string `gorm:"size:42;not null"` // 0x + 40 hex chars
	UserID          string `gorm:"size:36;not null;index"`
	IssuedAt        int64  `gorm:"not null"`
	Finalized       bool   `gorm:"not null;default:false"`
}
