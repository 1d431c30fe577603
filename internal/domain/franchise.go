// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"errors"
	"strings"
)

var ErrUnknownFranchiseType = errors.New("unknown franchise type")

// FranchiseType identifica o tipo de contrato da loja (GS1, GS2, GS3)
type FranchiseType string

const (
	FranchiseTypeGS1 FranchiseType = "GS1"
	FranchiseTypeGS2 FranchiseType = "GS2"
	FranchiseTypeGS3 FranchiseType = "GS3"
)

// FranchiseTypeConfig representa o apoio mensal fixo e a taxa de royalty de um tipo de contrato
type FranchiseTypeConfig struct {
	Support     float64 `json:"support"`
	RoyaltyRate float64 `json:"royalty_rate"`
}

var franchiseTypeConfigs = map[FranchiseType]FranchiseTypeConfig{
	FranchiseTypeGS1: {Support: 184.0, RoyaltyRate: 0.71},
	FranchiseTypeGS2: {Support: 205.8, RoyaltyRate: 0.65},
	FranchiseTypeGS3: {Support: 240.4, RoyaltyRate: 0.46},
}

// FranchiseTypes retorna os tipos de contrato na ordem de exibição do formulário
func FranchiseTypes() []FranchiseType {
	return []FranchiseType{FranchiseTypeGS1, FranchiseTypeGS2, FranchiseTypeGS3}
}

// ParseFranchiseType converte o valor recebido do formulário em um FranchiseType conhecido
func ParseFranchiseType(value string) (FranchiseType, error) {
	t := FranchiseType(strings.ToUpper(strings.TrimSpace(value)))
	if !t.IsValid() {
		return "", ErrUnknownFranchiseType
	}
	return t, nil
}

func (t FranchiseType) IsValid() bool {
	_, ok := franchiseTypeConfigs[t]
	return ok
}

// Config retorna uma cópia da configuração do tipo. Tipos desconhecidos retornam valor zero.
func (t FranchiseType) Config() FranchiseTypeConfig {
	return franchiseTypeConfigs[t]
}

// AllowsRent indica se o tipo de contrato possui dedução de aluguel (apenas GS2)
func (t FranchiseType) AllowsRent() bool {
	return t == FranchiseTypeGS2
}

func (t FranchiseType) String() string {
	return string(t)
}

// FranchiseTypeInfo é a representação do tipo para a API
type FranchiseTypeInfo struct {
	Type        FranchiseType `json:"type"`
	Support     float64       `json:"support"`
	RoyaltyRate float64       `json:"royalty_rate"`
	AllowsRent  bool          `json:"allows_rent"`
}

func FranchiseTypeTable() []FranchiseTypeInfo {
	types := FranchiseTypes()
	table := make([]FranchiseTypeInfo, 0, len(types))
	for _, t := range types {
		cfg := t.Config()
		table = append(table, FranchiseTypeInfo{
			Type:        t,
			Support:     cfg.Support,
			RoyaltyRate: cfg.RoyaltyRate,
			AllowsRent:  t.AllowsRent(),
		})
	}
	return table
}
