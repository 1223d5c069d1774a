package source

import (
	"fmt"
	"strings"

	"github.com/dbsmedya/dbmeta/internal/meta"
	"github.com/dbsmedya/dbmeta/internal/sqlutil"
)

const mysqlQuote = "`"

// mysqlTypes maps information_schema DATA_TYPE names onto SQL type codes.
var mysqlTypes = sqlutil.NewCaseMap(meta.SQLTypeOther).
	Set("bit", meta.SQLTypeBit).
	Set("tinyint", meta.SQLTypeTinyInt).
	Set("smallint", meta.SQLTypeSmallInt).
	Set("mediumint", meta.SQLTypeInteger).
	Set("int", meta.SQLTypeInteger).
	Set("integer", meta.SQLTypeInteger).
	Set("bigint", meta.SQLTypeBigInt).
	Set("float", meta.SQLTypeReal).
	Set("double", meta.SQLTypeDouble).
	Set("decimal", meta.SQLTypeDecimal).
	Set("char", meta.SQLTypeChar).
	Set("varchar", meta.SQLTypeVarchar).
	Set("tinytext", meta.SQLTypeVarchar).
	Set("text", meta.SQLTypeLongVarchar).
	Set("mediumtext", meta.SQLTypeLongVarchar).
	Set("longtext", meta.SQLTypeLongVarchar).
	Set("json", meta.SQLTypeLongVarchar).
	Set("enum", meta.SQLTypeChar).
	Set("set", meta.SQLTypeChar).
	Set("binary", meta.SQLTypeBinary).
	Set("varbinary", meta.SQLTypeVarBinary).
	Set("tinyblob", meta.SQLTypeVarBinary).
	Set("blob", meta.SQLTypeLongVarBinary).
	Set("mediumblob", meta.SQLTypeLongVarBinary).
	Set("longblob", meta.SQLTypeLongVarBinary).
	Set("date", meta.SQLTypeDate).
	Set("year", meta.SQLTypeDate).
	Set("time", meta.SQLTypeTime).
	Set("datetime", meta.SQLTypeTimestamp).
	Set("timestamp", meta.SQLTypeTimestamp)

// keyRules maps referential actions onto imported key rule codes.
var keyRules = sqlutil.NewCaseMap(int32(meta.KeyNoAction)).
	Set("CASCADE", int32(meta.KeyCascade)).
	Set("RESTRICT", int32(meta.KeyRestrict)).
	Set("SET NULL", int32(meta.KeySetNull)).
	Set("NO ACTION", int32(meta.KeyNoAction)).
	Set("SET DEFAULT", int32(meta.KeySetDefault))

const mysqlTableTypes = `
SELECT 'LOCAL TEMPORARY' AS TABLE_TYPE
UNION ALL SELECT 'SYSTEM TABLE'
UNION ALL SELECT 'SYSTEM VIEW'
UNION ALL SELECT 'TABLE'
UNION ALL SELECT 'VIEW'`

const mysqlKeywords = "ACCESSIBLE,ANALYZE,ASENSITIVE,BEFORE,BIGINT,BINARY,BLOB,CALL,CHANGE,CONDITION," +
	"DATABASE,DATABASES,DAY_HOUR,DAY_MICROSECOND,DAY_MINUTE,DAY_SECOND,DELAYED,DETERMINISTIC,DISTINCTROW,DIV," +
	"DUAL,EACH,ELSEIF,ENCLOSED,ESCAPED,EXIT,EXPLAIN,FLOAT4,FLOAT8,FORCE,FULLTEXT,GENERATED,HIGH_PRIORITY," +
	"HOUR_MICROSECOND,HOUR_MINUTE,HOUR_SECOND,IF,IGNORE,INDEX,INFILE,INOUT,INT1,INT2,INT3,INT4,INT8,ITERATE," +
	"KEYS,KILL,LEAVE,LIMIT,LINEAR,LINES,LOAD,LOCALTIME,LOCALTIMESTAMP,LOCK,LONG,LONGBLOB,LONGTEXT,LOOP," +
	"LOW_PRIORITY,MEDIUMBLOB,MEDIUMINT,MEDIUMTEXT,MIDDLEINT,MINUTE_MICROSECOND,MINUTE_SECOND,MOD,MODIFIES," +
	"NO_WRITE_TO_BINLOG,OPTIMIZE,OPTIONALLY,OUT,OUTFILE,PURGE,RANGE,READS,REGEXP,RELEASE,RENAME,REPEAT," +
	"REPLACE,REQUIRE,RETURN,RLIKE,SCHEMAS,SECOND_MICROSECOND,SENSITIVE,SEPARATOR,SHOW,SPATIAL,SPECIFIC," +
	"SQLEXCEPTION,SQLWARNING,SQL_BIG_RESULT,SQL_CALC_FOUND_ROWS,SQL_SMALL_RESULT,SSL,STARTING,STORED," +
	"STRAIGHT_JOIN,TERMINATED,TINYBLOB,TINYINT,TINYTEXT,TRIGGER,UNDO,UNLOCK,UNSIGNED,USE,UTC_DATE,UTC_TIME," +
	"UTC_TIMESTAMP,VARBINARY,VARCHARACTER,VIRTUAL,WHILE,XOR,YEAR_MONTH,ZEROFILL"

// mysqlPortedKeys selects foreign key columns. MySQL has no schemas, so the
// database is reported as the catalog.
var mysqlPortedKeys = fmt.Sprintf(`
SELECT k.REFERENCED_TABLE_SCHEMA AS PKTABLE_CAT, NULL AS PKTABLE_SCHEM,
       k.REFERENCED_TABLE_NAME AS PKTABLE_NAME, k.REFERENCED_COLUMN_NAME AS PKCOLUMN_NAME,
       k.TABLE_SCHEMA AS FKTABLE_CAT, NULL AS FKTABLE_SCHEM,
       k.TABLE_NAME AS FKTABLE_NAME, k.COLUMN_NAME AS FKCOLUMN_NAME,
       k.POSITION_IN_UNIQUE_CONSTRAINT AS KEY_SEQ,
       %s AS UPDATE_RULE, %s AS DELETE_RULE,
       k.CONSTRAINT_NAME AS FK_NAME, r.UNIQUE_CONSTRAINT_NAME AS PK_NAME,
       %d AS DEFERRABILITY
FROM information_schema.KEY_COLUMN_USAGE k
JOIN information_schema.REFERENTIAL_CONSTRAINTS r
  ON r.CONSTRAINT_SCHEMA = k.CONSTRAINT_SCHEMA
 AND r.CONSTRAINT_NAME = k.CONSTRAINT_NAME
 AND r.TABLE_NAME = k.TABLE_NAME
WHERE k.REFERENCED_TABLE_NAME IS NOT NULL`,
	keyRules.SQL("r.UPDATE_RULE"), keyRules.SQL("r.DELETE_RULE"), meta.KeyNotDeferrable)

// mysqlIdentifierColumns selects the columns matching cond in the best row
// identifier shape.
func mysqlIdentifierColumns(scope, cond string) string {
	return fmt.Sprintf(`
SELECT %s AS SCOPE, COLUMN_NAME, %s AS DATA_TYPE, UPPER(DATA_TYPE) AS TYPE_NAME,
       COALESCE(CHARACTER_MAXIMUM_LENGTH, NUMERIC_PRECISION, DATETIME_PRECISION) AS COLUMN_SIZE,
       NULL AS BUFFER_LENGTH, NUMERIC_SCALE AS DECIMAL_DIGITS, 1 AS PSEUDO_COLUMN
FROM information_schema.COLUMNS
WHERE TABLE_SCHEMA = COALESCE(?, DATABASE()) AND TABLE_NAME = ? AND %s
ORDER BY ORDINAL_POSITION`, scope, mysqlTypes.SQL("DATA_TYPE"), cond)
}

// mysqlRoutineColumns selects routine parameters; position 0 is a function's
// return value.
func mysqlRoutineColumns(prefix, columnType, routineType string) string {
	return fmt.Sprintf(`
SELECT SPECIFIC_SCHEMA AS %[1]s_CAT, NULL AS %[1]s_SCHEM, SPECIFIC_NAME AS %[1]s_NAME,
       COALESCE(PARAMETER_NAME, '') AS COLUMN_NAME,
       %[2]s AS COLUMN_TYPE,
       %[3]s AS DATA_TYPE, UPPER(DATA_TYPE) AS TYPE_NAME,
       COALESCE(NUMERIC_PRECISION, CHARACTER_MAXIMUM_LENGTH) AS %[4]s,
       CHARACTER_OCTET_LENGTH AS LENGTH, NUMERIC_SCALE AS SCALE, 10 AS RADIX,
       %[5]d AS NULLABLE, NULL AS REMARKS, CHARACTER_OCTET_LENGTH AS CHAR_OCTET_LENGTH,
       ORDINAL_POSITION, '' AS IS_NULLABLE, SPECIFIC_NAME
FROM information_schema.PARAMETERS
WHERE ROUTINE_TYPE = '%[6]s'
  AND SPECIFIC_SCHEMA = COALESCE(?, DATABASE()) AND SPECIFIC_NAME = ?
  AND COALESCE(PARAMETER_NAME, '') LIKE ?
ORDER BY ORDINAL_POSITION`, prefix, columnType, mysqlTypes.SQL("DATA_TYPE"),
		sqlutil.QuoteIdentifier("PRECISION", mysqlQuote), meta.ColumnNullableUnknown, routineType)
}

func mysqlRoutines(prefix, routineType string) string {
	return fmt.Sprintf(`
SELECT ROUTINE_SCHEMA AS %[1]s_CAT, NULL AS %[1]s_SCHEM, ROUTINE_NAME AS %[1]s_NAME,
       ROUTINE_COMMENT AS REMARKS, 1 AS %[1]s_TYPE, SPECIFIC_NAME
FROM information_schema.ROUTINES
WHERE ROUTINE_TYPE = '%[2]s' AND ROUTINE_SCHEMA = COALESCE(?, DATABASE()) AND ROUTINE_NAME LIKE ?
ORDER BY ROUTINE_SCHEMA, ROUTINE_NAME, SPECIFIC_NAME`, prefix, routineType)
}

// typeInfoQuery renders a type catalogue from a type map.
func typeInfoQuery(types *sqlutil.CaseMap, quote string) string {
	selects := make([]string, 0, types.Len())
	for i, name := range types.Names() {
		if i == 0 {
			selects = append(selects, fmt.Sprintf(
				"SELECT %s AS TYPE_NAME, %d AS DATA_TYPE, 0 AS %s, %d AS NULLABLE, "+
					"1 AS CASE_SENSITIVE, 3 AS SEARCHABLE, 0 AS UNSIGNED_ATTRIBUTE, 0 AS FIXED_PREC_SCALE, "+
					"0 AS AUTO_INCREMENT, %s AS LOCAL_TYPE_NAME, 0 AS MINIMUM_SCALE, 0 AS MAXIMUM_SCALE, "+
					"10 AS NUM_PREC_RADIX",
				sqlutil.QuoteString(name), types.Code(name), sqlutil.QuoteIdentifier("PRECISION", quote),
				meta.ColumnNullable, sqlutil.QuoteString(name)))
			continue
		}
		selects = append(selects, fmt.Sprintf("SELECT %s, %d, 0, %d, 1, 3, 0, 0, 0, %s, 0, 0, 10",
			sqlutil.QuoteString(name), types.Code(name), meta.ColumnNullable, sqlutil.QuoteString(name)))
	}
	return strings.Join(selects, "\nUNION ALL ")
}

// MySQL returns the dialect for MySQL and MariaDB, reading information_schema.
// Databases are reported as catalogs and there are no schemas.
func MySQL() *Dialect {
	byTable := []param{arg(0), arg(2)}

	return &Dialect{
		Name: "mysql",
		Queries: map[string]Query{
			meta.OpGetCatalogs: query(`
SELECT SCHEMA_NAME AS TABLE_CAT FROM information_schema.SCHEMATA ORDER BY SCHEMA_NAME`),

			meta.OpGetSchemas: query(`
SELECT NULL AS TABLE_SCHEM, NULL AS TABLE_CATALOG FROM DUAL WHERE 1 = 0`),

			meta.OpGetTables: query(`
SELECT TABLE_SCHEMA AS TABLE_CAT, NULL AS TABLE_SCHEM, TABLE_NAME,
       CASE TABLE_TYPE WHEN 'BASE TABLE' THEN 'TABLE' ELSE TABLE_TYPE END AS TABLE_TYPE,
       TABLE_COMMENT AS REMARKS, NULL AS TYPE_CAT, NULL AS TYPE_SCHEM, NULL AS TYPE_NAME,
       NULL AS SELF_REFERENCING_COL_NAME, NULL AS REF_GENERATION
FROM information_schema.TABLES
WHERE TABLE_SCHEMA = COALESCE(?, DATABASE()) AND TABLE_NAME LIKE ?
ORDER BY TABLE_TYPE, TABLE_SCHEMA, TABLE_NAME`, arg(0), like(2)),

			meta.OpGetColumns: query(fmt.Sprintf(`
SELECT TABLE_SCHEMA AS TABLE_CAT, NULL AS TABLE_SCHEM, TABLE_NAME, COLUMN_NAME,
       %s AS DATA_TYPE, UPPER(DATA_TYPE) AS TYPE_NAME,
       COALESCE(CHARACTER_MAXIMUM_LENGTH, NUMERIC_PRECISION, DATETIME_PRECISION) AS COLUMN_SIZE,
       NULL AS BUFFER_LENGTH, NUMERIC_SCALE AS DECIMAL_DIGITS, 10 AS NUM_PREC_RADIX,
       CASE IS_NULLABLE WHEN 'YES' THEN %d ELSE %d END AS NULLABLE,
       COLUMN_COMMENT AS REMARKS, COLUMN_DEFAULT AS COLUMN_DEF,
       NULL AS SQL_DATA_TYPE, NULL AS SQL_DATETIME_SUB, CHARACTER_OCTET_LENGTH AS CHAR_OCTET_LENGTH,
       ORDINAL_POSITION, IS_NULLABLE,
       NULL AS SCOPE_CATALOG, NULL AS SCOPE_SCHEMA, NULL AS SCOPE_TABLE, NULL AS SOURCE_DATA_TYPE,
       CASE WHEN LOWER(EXTRA) LIKE '%%auto_increment%%' THEN 'YES' ELSE 'NO' END AS IS_AUTOINCREMENT,
       CASE WHEN LOWER(EXTRA) LIKE '%%generated%%' THEN 'YES' ELSE 'NO' END AS IS_GENERATEDCOLUMN
FROM information_schema.COLUMNS
WHERE TABLE_SCHEMA = COALESCE(?, DATABASE()) AND TABLE_NAME = ? AND COLUMN_NAME LIKE ?
ORDER BY ORDINAL_POSITION`, mysqlTypes.SQL("DATA_TYPE"), meta.ColumnNullable, meta.ColumnNoNulls),
				arg(0), arg(2), like(3)),

			meta.OpGetColumnPrivileges: query(`
SELECT TABLE_SCHEMA AS TABLE_CAT, NULL AS TABLE_SCHEM, TABLE_NAME, COLUMN_NAME,
       NULL AS GRANTOR, GRANTEE, PRIVILEGE_TYPE AS PRIVILEGE, IS_GRANTABLE
FROM information_schema.COLUMN_PRIVILEGES
WHERE TABLE_SCHEMA = COALESCE(?, DATABASE()) AND TABLE_NAME = ? AND COLUMN_NAME LIKE ?
ORDER BY COLUMN_NAME, PRIVILEGE_TYPE`, arg(0), arg(2), like(3)),

			meta.OpGetTablePrivileges: query(`
SELECT TABLE_SCHEMA AS TABLE_CAT, NULL AS TABLE_SCHEM, TABLE_NAME,
       NULL AS GRANTOR, GRANTEE, PRIVILEGE_TYPE AS PRIVILEGE, IS_GRANTABLE
FROM information_schema.TABLE_PRIVILEGES
WHERE TABLE_SCHEMA = COALESCE(?, DATABASE()) AND TABLE_NAME LIKE ?
ORDER BY TABLE_SCHEMA, TABLE_NAME, PRIVILEGE_TYPE`, arg(0), like(2)),

			meta.OpGetPrimaryKeys: query(`
SELECT TABLE_SCHEMA AS TABLE_CAT, NULL AS TABLE_SCHEM, TABLE_NAME, COLUMN_NAME,
       ORDINAL_POSITION AS KEY_SEQ, CONSTRAINT_NAME AS PK_NAME
FROM information_schema.KEY_COLUMN_USAGE
WHERE CONSTRAINT_NAME = 'PRIMARY' AND TABLE_SCHEMA = COALESCE(?, DATABASE()) AND TABLE_NAME = ?
ORDER BY COLUMN_NAME`, byTable...),

			meta.OpGetImportedKeys: query(mysqlPortedKeys+`
  AND k.TABLE_SCHEMA = COALESCE(?, DATABASE()) AND k.TABLE_NAME = ?
ORDER BY PKTABLE_CAT, PKTABLE_NAME, KEY_SEQ`, byTable...),

			meta.OpGetExportedKeys: query(mysqlPortedKeys+`
  AND k.REFERENCED_TABLE_SCHEMA = COALESCE(?, DATABASE()) AND k.REFERENCED_TABLE_NAME = ?
ORDER BY FKTABLE_CAT, FKTABLE_NAME, KEY_SEQ`, byTable...),

			meta.OpGetCrossReference: query(mysqlPortedKeys+`
  AND k.REFERENCED_TABLE_SCHEMA = COALESCE(?, DATABASE()) AND k.REFERENCED_TABLE_NAME = ?
  AND k.TABLE_SCHEMA = COALESCE(?, DATABASE()) AND k.TABLE_NAME = ?
ORDER BY FKTABLE_CAT, FKTABLE_NAME, KEY_SEQ`, arg(0), arg(2), arg(3), arg(5)),

			meta.OpGetIndexInfo: query(fmt.Sprintf(`
SELECT TABLE_SCHEMA AS TABLE_CAT, NULL AS TABLE_SCHEM, TABLE_NAME, NON_UNIQUE,
       NULL AS INDEX_QUALIFIER, INDEX_NAME,
       CASE WHEN INDEX_TYPE = 'HASH' THEN %d ELSE %d END AS TYPE,
       SEQ_IN_INDEX AS ORDINAL_POSITION, COLUMN_NAME,
       CASE COLLATION WHEN 'A' THEN 'A' WHEN 'D' THEN 'D' ELSE NULL END AS ASC_OR_DESC,
       COALESCE(CARDINALITY, 0) AS CARDINALITY, 0 AS PAGES, NULL AS FILTER_CONDITION
FROM information_schema.STATISTICS
WHERE TABLE_SCHEMA = COALESCE(?, DATABASE()) AND TABLE_NAME = ? AND (? = 0 OR NON_UNIQUE = 0)
ORDER BY NON_UNIQUE, INDEX_NAME, SEQ_IN_INDEX`, meta.IndexHashed, meta.IndexOther),
				arg(0), arg(2), arg(3)),

			meta.OpGetBestRowIdentifier: query(mysqlIdentifierColumns("?", "COLUMN_KEY = 'PRI'"),
				arg(3), arg(0), arg(2)),

			meta.OpGetVersionColumns: query(mysqlIdentifierColumns("NULL", "LOWER(EXTRA) LIKE '%on update%'"),
				byTable...),

			meta.OpGetProcedures: query(mysqlRoutines("PROCEDURE", "PROCEDURE"), arg(0), like(2)),

			meta.OpGetProcedureColumns: query(mysqlRoutineColumns("PROCEDURE",
				"CASE PARAMETER_MODE WHEN 'IN' THEN 1 WHEN 'INOUT' THEN 2 WHEN 'OUT' THEN 4 ELSE 5 END",
				"PROCEDURE"), arg(0), arg(2), like(3)),

			meta.OpGetFunctions: query(mysqlRoutines("FUNCTION", "FUNCTION"), arg(0), like(2)),

			meta.OpGetFunctionColumns: query(mysqlRoutineColumns("FUNCTION",
				"CASE WHEN ORDINAL_POSITION = 0 THEN 4 WHEN PARAMETER_MODE = 'IN' THEN 1 WHEN PARAMETER_MODE = 'INOUT' THEN 2 ELSE 3 END",
				"FUNCTION"), arg(0), arg(2), like(3)),

			meta.OpGetTableTypes: query(mysqlTableTypes),
			meta.OpGetTypeInfo:   query(typeInfoQuery(mysqlTypes, mysqlQuote)),
		},
		Scalars: map[string]ScalarFunc{
			meta.OpGetDatabaseProductName:    constant("MySQL"),
			meta.OpGetDatabaseProductVersion: queryValue("SELECT VERSION()"),
			meta.OpGetDatabaseMajorVersion:   versionPart("SELECT VERSION()", 0),
			meta.OpGetDatabaseMinorVersion:   versionPart("SELECT VERSION()", 1),
			meta.OpGetDriverName:             constant("go-sql-driver/mysql"),
			meta.OpGetDriverVersion:          moduleVersion("github.com/go-sql-driver/mysql"),
			meta.OpGetUserName:               queryValue("SELECT CURRENT_USER()"),
			meta.OpGetIdentifierQuoteString:  constant(mysqlQuote),
			meta.OpGetCatalogSeparator:       constant("."),
			meta.OpGetCatalogTerm:            constant("database"),
			meta.OpGetSchemaTerm:             constant(""),
			meta.OpGetProcedureTerm:          constant("PROCEDURE"),
			meta.OpGetSQLKeywords:            constant(mysqlKeywords),
			meta.OpIsCatalogAtStart:          constant(true),
			meta.OpIsReadOnly:                queryValue("SELECT @@global.read_only"),
			meta.OpGetDefaultIsolation:       constant(meta.TransactionRepeatableRead),
			meta.OpGetResultSetHoldability:   constant(meta.HoldCursorsOverCommit),
			meta.OpSupportsTransactions:      constant(true),
			meta.OpSupportsConvert: convert(
				conversion{meta.SQLTypeInteger, meta.SQLTypeBigInt},
				conversion{meta.SQLTypeInteger, meta.SQLTypeVarchar},
				conversion{meta.SQLTypeBigInt, meta.SQLTypeVarchar},
				conversion{meta.SQLTypeDecimal, meta.SQLTypeVarchar},
				conversion{meta.SQLTypeVarchar, meta.SQLTypeInteger},
				conversion{meta.SQLTypeDate, meta.SQLTypeVarchar},
				conversion{meta.SQLTypeTimestamp, meta.SQLTypeVarchar},
			),
			meta.OpDeletesAreDetected:      constant(false),
			meta.OpInsertsAreDetected:      constant(false),
			meta.OpUpdatesAreDetected:      constant(false),
			meta.OpOthersDeletesAreVisible: constant(true),
			meta.OpOthersInsertsAreVisible: constant(true),
			meta.OpOthersUpdatesAreVisible: constant(true),
			meta.OpOwnDeletesAreVisible:    constant(false),
			meta.OpOwnInsertsAreVisible:    constant(false),
			meta.OpOwnUpdatesAreVisible:    constant(false),
			meta.OpSupportsResultSetType: all(
				in(0, meta.TypeForwardOnly, meta.TypeScrollInsensitive)),
			meta.OpSupportsResultSetConcur: all(
				in(0, meta.TypeForwardOnly, meta.TypeScrollInsensitive),
				in(1, meta.ConcurReadOnly, meta.ConcurUpdatable)),
			meta.OpSupportsResultSetHold: all(in(0, meta.HoldCursorsOverCommit)),
			meta.OpSupportsIsolationLevel: all(in(0,
				meta.TransactionReadUncommitted, meta.TransactionReadCommitted,
				meta.TransactionRepeatableRead, meta.TransactionSerializable)),
		},
	}
}
