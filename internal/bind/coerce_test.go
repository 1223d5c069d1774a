package bind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dbsmedya/dbmeta/internal/bind"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name     string
		kind     bind.Kind
		raw      any
		expected any
		warn     bool
	}{
		{"nonzero int into bool", bind.KindBool, int32(5), true, false},
		{"zero into bool", bind.KindBool, int64(0), false, false},
		{"float into bool", bind.KindBool, 0.25, true, false},
		{"nil into int16", bind.KindInt16, nil, int16(0), true},
		{"nil into bool", bind.KindBool, nil, false, true},
		{"nil into nullable int16", bind.KindNullInt16, nil, (*int16)(nil), false},
		{"nil into nullable string", bind.KindNullString, nil, (*string)(nil), false},
		{"float truncates", bind.KindInt32, 3.9, int32(3), false},
		{"negative float truncates toward zero", bind.KindInt32, -3.9, int32(-3), false},
		{"int64 narrows to int16", bind.KindInt16, int64(70000), int16(4464), false},
		{"bytes into string", bind.KindString, []byte("users"), "users", false},
		{"textual int", bind.KindInt64, "42", int64(42), false},
		{"textual bytes int", bind.KindInt32, []byte("7"), int32(7), false},
		{"textual bool", bind.KindBool, "true", true, false},
		{"already assignable", bind.KindInt32, int32(9), int32(9), false},
		{"any passes through", bind.KindAny, uint8(3), uint8(3), false},
		{"number into string", bind.KindString, 5, "5", false},
		{"bool into string", bind.KindString, true, true, true},
		{"garbage into int", bind.KindInt16, "abc", "abc", true},
		{"bool into int", bind.KindInt64, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := bind.Coerce(tt.kind, tt.raw)
			assert.Equal(t, tt.expected, got)
			if tt.warn {
				var cerr *bind.CoercionError
				assert.ErrorAs(t, err, &cerr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCoerceNullableWrapsValue(t *testing.T) {
	got, err := bind.Coerce(bind.KindNullInt32, int64(12))
	assert.NoError(t, err)
	if assert.IsType(t, (*int32)(nil), got) {
		assert.Equal(t, int32(12), *got.(*int32))
	}

	s, err := bind.Coerce(bind.KindNullString, []byte("x"))
	assert.NoError(t, err)
	assert.Equal(t, "x", *s.(*string))

	plain, err := bind.Coerce(bind.KindNullString, "shop")
	assert.NoError(t, err)
	if assert.IsType(t, (*string)(nil), plain) {
		assert.Equal(t, "shop", *plain.(*string))
	}

	p := strPtr("kept")
	same, err := bind.Coerce(bind.KindNullString, p)
	assert.NoError(t, err)
	assert.Same(t, p, same)
}

func TestCoercePointerIntoPlain(t *testing.T) {
	got, err := bind.Coerce(bind.KindString, strPtr("v"))
	assert.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestKind(t *testing.T) {
	assert.True(t, bind.KindNullBool.Nullable())
	assert.True(t, bind.KindAny.Nullable())
	assert.False(t, bind.KindInt32.Nullable())
	assert.Equal(t, bind.KindInt64, bind.KindNullInt64.Plain())
	assert.Equal(t, "*string", bind.KindNullString.String())
	assert.Equal(t, "unknown", bind.Kind(99).String())
}
