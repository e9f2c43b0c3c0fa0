package registry

// ABIJSON is the interface of the CertificateRegistry contract. The
// deployment artifact may carry its own copy; this one is the fallback
// compiled into the client.
const ABIJSON = `[
  {
    "type": "function",
    "name": "issueCertificate",
    "stateMutability": "nonpayable",
    "inputs": [
      {"name": "studentName", "type": "string"},
      {"name": "certificateId", "type": "string"},
      {"name": "courseName", "type": "string"},
      {"name": "grade", "type": "string"},
      {"name": "institutionName", "type": "string"}
    ],
    "outputs": [{"name": "", "type": "bytes32"}]
  },
  {
    "type": "function",
    "name": "verifyCertificate",
    "stateMutability": "view",
    "inputs": [{"name": "certificateHash", "type": "bytes32"}],
    "outputs": [
      {"name": "isValid", "type": "bool"},
      {"name": "exists", "type": "bool"},
      {"name": "studentName", "type": "string"},
      {"name": "certificateId", "type": "string"},
      {"name": "courseName", "type": "string"},
      {"name": "grade", "type": "string"},
      {"name": "institutionName", "type": "string"},
      {"name": "issueDate", "type": "uint256"},
      {"name": "issuer", "type": "address"}
    ]
  },
  {
    "type": "function",
    "name": "totalCertificates",
    "stateMutability": "view",
    "inputs": [],
    "outputs": [{"name": "", "type": "uint256"}]
  },
  {
    "type": "function",
    "name": "owner",
    "stateMutability": "view",
    "inputs": [],
    "outputs": [{"name": "", "type": "address"}]
  },
  {
    "type": "function",
    "name": "authorizedIssuers",
    "stateMutability": "view",
    "inputs": [{"name": "", "type": "address"}],
    "outputs": [{"name": "", "type": "bool"}]
  },
  {
    "type": "event",
    "name": "CertificateIssued",
    "anonymous": false,
    "inputs": [
      {"name": "certificateHash", "type": "bytes32", "indexed": true},
      {"name": "issuer", "type": "address", "indexed": true},
      {"name": "certificateId", "type": "string", "indexed": false}
    ]
  }
]`
