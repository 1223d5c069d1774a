package meta

import "github.com/dbsmedya/dbmeta/internal/types"

// ResultSetTypeFact is a boolean property probed per result set type.
type ResultSetTypeFact struct {
	Type  int32 `yaml:"type" json:"type"`
	Value bool  `yaml:"value" json:"value"`
}

// ConcurrencyFact is supportsResultSetConcurrency for one type and concurrency.
type ConcurrencyFact struct {
	Type        int32 `yaml:"type" json:"type"`
	Concurrency int32 `yaml:"concurrency" json:"concurrency"`
	Value       bool  `yaml:"value" json:"value"`
}

// HoldabilityFact is supportsResultSetHoldability for one holdability.
type HoldabilityFact struct {
	Holdability int32 `yaml:"holdability" json:"holdability"`
	Value       bool  `yaml:"value" json:"value"`
}

// IsolationFact is supportsTransactionIsolationLevel for one level.
type IsolationFact struct {
	Level int32 `yaml:"level" json:"level"`
	Value bool  `yaml:"value" json:"value"`
}

// ConvertFact is supportsConvert for one pair of SQL types.
type ConvertFact struct {
	FromType int32 `yaml:"fromType" json:"fromType"`
	ToType   int32 `yaml:"toType" json:"toType"`
	Value    bool  `yaml:"value" json:"value"`
}

func newResultSetTypeFact(args []any, v bool) ResultSetTypeFact {
	return ResultSetTypeFact{Type: argInt32(args, 0), Value: v}
}

func newConcurrencyFact(args []any, v bool) ConcurrencyFact {
	return ConcurrencyFact{Type: argInt32(args, 0), Concurrency: argInt32(args, 1), Value: v}
}

func newHoldabilityFact(args []any, v bool) HoldabilityFact {
	return HoldabilityFact{Holdability: argInt32(args, 0), Value: v}
}

func newIsolationFact(args []any, v bool) IsolationFact {
	return IsolationFact{Level: argInt32(args, 0), Value: v}
}

func newConvertFact(args []any, v bool) ConvertFact {
	return ConvertFact{FromType: argInt32(args, 0), ToType: argInt32(args, 1), Value: v}
}

func argInt32(args []any, i int) int32 {
	if i >= len(args) {
		return 0
	}
	n, _ := types.ToInt64(args[i])
	return int32(n)
}
