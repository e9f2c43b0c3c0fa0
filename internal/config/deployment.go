package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
)

// Deployment mirrors the artifact written by the contract deployment
// workflow. It is read once at startup so the service knows where to
// send calls and with what interface.
type Deployment struct {
	ContractAddress string `json:"contractAddress"`
	DeployerAddress string `json:"deployerAddress"`
	TransactionHash string `json:"transactionHash"`
	Network         string `json:"network"`
	ChainID         int64  `json:"chainId"`
	BlockNumber     string `json:"blockNumber"`
	GasUsed         string `json:"gasUsed"`
	Timestamp       string `json:"timestamp"`
	EtherscanURL    string `json:"etherscanUrl"`
	ABI             string `json:"abi"`
}

func LoadDeployment(path string) (Deployment, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Deployment{}, fmt.Errorf("read deployment file: %w", err)
	}

	var dep Deployment
	if err := json.Unmarshal(raw, &dep); err != nil {
		return Deployment{}, fmt.Errorf("decode deployment file: %w", err)
	}

	if !common.IsHexAddress(dep.ContractAddress) {
		return Deployment{}, errors.New("deployment file has no valid contract address")
	}

	return dep, nil
}

func (d Deployment) Contract() common.Address {
	return common.HexToAddress(d.ContractAddress)
}
