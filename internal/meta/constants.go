package meta

// Result set types.
const (
	TypeForwardOnly       int32 = 1003
	TypeScrollInsensitive int32 = 1004
	TypeScrollSensitive   int32 = 1005
)

// Result set concurrencies.
const (
	ConcurReadOnly  int32 = 1007
	ConcurUpdatable int32 = 1008
)

// Result set holdabilities.
const (
	HoldCursorsOverCommit int32 = 1
	CloseCursorsAtCommit  int32 = 2
)

// Transaction isolation levels.
const (
	TransactionNone            int32 = 0
	TransactionReadUncommitted int32 = 1
	TransactionReadCommitted   int32 = 2
	TransactionRepeatableRead  int32 = 4
	TransactionSerializable    int32 = 8
)

// Best row identifier scopes.
const (
	BestRowTemporary   int32 = 0
	BestRowTransaction int32 = 1
	BestRowSession     int32 = 2
)

// SQL type codes used by convert probes and column DATA_TYPE values.
const (
	SQLTypeBit           int32 = -7
	SQLTypeTinyInt       int32 = -6
	SQLTypeSmallInt      int32 = 5
	SQLTypeInteger       int32 = 4
	SQLTypeBigInt        int32 = -5
	SQLTypeReal          int32 = 7
	SQLTypeDouble        int32 = 8
	SQLTypeNumeric       int32 = 2
	SQLTypeDecimal       int32 = 3
	SQLTypeChar          int32 = 1
	SQLTypeVarchar       int32 = 12
	SQLTypeDate          int32 = 91
	SQLTypeTimestamp     int32 = 93
	SQLTypeBoolean       int32 = 16
	SQLTypeFloat         int32 = 6
	SQLTypeLongVarchar   int32 = -1
	SQLTypeBinary        int32 = -2
	SQLTypeVarBinary     int32 = -3
	SQLTypeLongVarBinary int32 = -4
	SQLTypeTime          int32 = 92
	SQLTypeDistinct      int32 = 2001
	SQLTypeStruct        int32 = 2002
	SQLTypeBlob          int32 = 2004
	SQLTypeClob          int32 = 2005
	SQLTypeOther         int32 = 1111
)

// Imported key update and delete rules, and key deferrability.
const (
	KeyCascade    int16 = 0
	KeyRestrict   int16 = 1
	KeySetNull    int16 = 2
	KeyNoAction   int16 = 3
	KeySetDefault int16 = 4

	KeyInitiallyDeferred  int16 = 5
	KeyInitiallyImmediate int16 = 6
	KeyNotDeferrable      int16 = 7
)

// Index types reported by getIndexInfo.
const (
	IndexStatistic int16 = 0
	IndexHashed    int16 = 2
	IndexOther     int16 = 3
)

// Column nullability.
const (
	ColumnNoNulls         int32 = 0
	ColumnNullable        int32 = 1
	ColumnNullableUnknown int32 = 2
)

var resultSetTypes = []int32{TypeForwardOnly, TypeScrollInsensitive, TypeScrollSensitive}

var concurrencies = []int32{ConcurReadOnly, ConcurUpdatable}

var holdabilities = []int32{HoldCursorsOverCommit, CloseCursorsAtCommit}

var isolationLevels = []int32{
	TransactionNone,
	TransactionReadUncommitted,
	TransactionReadCommitted,
	TransactionRepeatableRead,
	TransactionSerializable,
}

var bestRowScopes = []int32{BestRowTemporary, BestRowTransaction, BestRowSession}

var convertTypes = []int32{
	SQLTypeBigInt,
	SQLTypeInteger,
	SQLTypeDecimal,
	SQLTypeDouble,
	SQLTypeVarchar,
	SQLTypeDate,
	SQLTypeTimestamp,
}
