package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToInt64_IntTypes(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected int64
	}{
		{name: "int64", input: int64(42), expected: 42},
		{name: "int", input: int(100), expected: 100},
		{name: "int32", input: int32(200), expected: 200},
		{name: "int16", input: int16(300), expected: 300},
		{name: "int8", input: int8(127), expected: 127},
		{name: "uint", input: uint(7), expected: 7},
		{name: "uint8", input: uint8(255), expected: 255},
		{name: "uint64", input: uint64(1 << 40), expected: 1 << 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToInt64(tt.input)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestToInt64_FloatTruncates(t *testing.T) {
	got, ok := ToInt64(3.99)
	assert.True(t, ok)
	assert.Equal(t, int64(3), got)

	got, ok = ToInt64(float32(-2.5))
	assert.True(t, ok)
	assert.Equal(t, int64(-2), got)
}

func TestToInt64_NonNumeric(t *testing.T) {
	for _, v := range []interface{}{nil, "42", true, []byte("1")} {
		got, ok := ToInt64(v)
		assert.False(t, ok, "%T", v)
		assert.Zero(t, got)
	}
}

func TestToFloat64(t *testing.T) {
	f, ok := ToFloat64(0.5)
	assert.True(t, ok)
	assert.Equal(t, 0.5, f)

	f, ok = ToFloat64(int16(3))
	assert.True(t, ok)
	assert.Equal(t, 3.0, f)

	_, ok = ToFloat64("x")
	assert.False(t, ok)
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric(uint16(1)))
	assert.False(t, IsNumeric("1"))
}

func TestStats(t *testing.T) {
	a := Stats{RecordsBound: 10, Invocations: 4, Duration: time.Second}
	b := Stats{RecordsBound: 5, CrossReferenceCalls: 9, Synthesized: 1, Duration: time.Second}

	sum := a.Add(b)
	assert.Equal(t, int64(15), sum.RecordsBound)
	assert.Equal(t, int64(4), sum.Invocations)
	assert.Equal(t, int64(9), sum.CrossReferenceCalls)
	assert.Equal(t, int64(1), sum.Synthesized)
	assert.Equal(t, 2*time.Second, sum.Duration)
	assert.Equal(t, 7.5, sum.RecordsPerSecond())

	assert.Zero(t, Stats{RecordsBound: 3}.RecordsPerSecond())
	assert.Contains(t, sum.String(), "records=15")
}
