package source

import (
	"fmt"

	"github.com/dbsmedya/dbmeta/internal/meta"
	"github.com/dbsmedya/dbmeta/internal/sqlutil"
)

const pgQuote = `"`

// pgTypes maps pg_type names onto SQL type codes.
var pgTypes = sqlutil.NewCaseMap(meta.SQLTypeOther).
	Set("bool", meta.SQLTypeBit).
	Set("bit", meta.SQLTypeBit).
	Set("int2", meta.SQLTypeSmallInt).
	Set("int4", meta.SQLTypeInteger).
	Set("oid", meta.SQLTypeBigInt).
	Set("int8", meta.SQLTypeBigInt).
	Set("float4", meta.SQLTypeReal).
	Set("float8", meta.SQLTypeDouble).
	Set("money", meta.SQLTypeDouble).
	Set("numeric", meta.SQLTypeNumeric).
	Set("char", meta.SQLTypeChar).
	Set("bpchar", meta.SQLTypeChar).
	Set("varchar", meta.SQLTypeVarchar).
	Set("text", meta.SQLTypeVarchar).
	Set("name", meta.SQLTypeVarchar).
	Set("bytea", meta.SQLTypeBinary).
	Set("date", meta.SQLTypeDate).
	Set("time", meta.SQLTypeTime).
	Set("timetz", meta.SQLTypeTime).
	Set("timestamp", meta.SQLTypeTimestamp).
	Set("timestamptz", meta.SQLTypeTimestamp)

// pgKeyRules maps pg_constraint action codes onto imported key rule codes.
var pgKeyRules = sqlutil.NewCaseMap(int32(meta.KeyNoAction)).
	Set("c", int32(meta.KeyCascade)).
	Set("r", int32(meta.KeyRestrict)).
	Set("n", int32(meta.KeySetNull)).
	Set("a", int32(meta.KeyNoAction)).
	Set("d", int32(meta.KeySetDefault))

// pgTableKinds are the pg_class relkinds listed as tables.
var pgTableKinds = sqlutil.QuoteList("r", "p", "v", "m", "f")

const pgTableTypes = `
SELECT 'FOREIGN TABLE' AS table_type
UNION ALL SELECT 'MATERIALIZED VIEW'
UNION ALL SELECT 'TABLE'
UNION ALL SELECT 'VIEW'`

// pgPortedKeys selects foreign key column pairs, one row per key position.
var pgPortedKeys = fmt.Sprintf(`
SELECT current_database() AS pktable_cat, pn.nspname AS pktable_schem,
       pc.relname AS pktable_name, pa.attname AS pkcolumn_name,
       current_database() AS fktable_cat, fn.nspname AS fktable_schem,
       fc.relname AS fktable_name, fa.attname AS fkcolumn_name,
       k.n AS key_seq,
       %s AS update_rule, %s AS delete_rule,
       con.conname AS fk_name, pi.relname AS pk_name,
       CASE WHEN con.condeferrable AND con.condeferred THEN %d
            WHEN con.condeferrable THEN %d
            ELSE %d END AS deferrability
FROM pg_catalog.pg_constraint con
CROSS JOIN LATERAL unnest(con.conkey, con.confkey) WITH ORDINALITY AS k(fk_attnum, pk_attnum, n)
JOIN pg_catalog.pg_class fc ON fc.oid = con.conrelid
JOIN pg_catalog.pg_namespace fn ON fn.oid = fc.relnamespace
JOIN pg_catalog.pg_attribute fa ON fa.attrelid = con.conrelid AND fa.attnum = k.fk_attnum
JOIN pg_catalog.pg_class pc ON pc.oid = con.confrelid
JOIN pg_catalog.pg_namespace pn ON pn.oid = pc.relnamespace
JOIN pg_catalog.pg_attribute pa ON pa.attrelid = con.confrelid AND pa.attnum = k.pk_attnum
LEFT JOIN pg_catalog.pg_class pi ON pi.oid = con.conindid
WHERE con.contype = 'f'`,
	pgKeyRules.SQL("con.confupdtype::text"), pgKeyRules.SQL("con.confdeltype::text"),
	meta.KeyInitiallyDeferred, meta.KeyInitiallyImmediate, meta.KeyNotDeferrable)

func pgRoutines(prefix, prokind string) string {
	return fmt.Sprintf(`
SELECT current_database() AS %[1]s_cat, n.nspname AS %[1]s_schem, p.proname AS %[1]s_name,
       pg_catalog.obj_description(p.oid, 'pg_proc') AS remarks, 1 AS %[1]s_type,
       p.proname || '_' || p.oid AS specific_name
FROM pg_catalog.pg_proc p
JOIN pg_catalog.pg_namespace n ON n.oid = p.pronamespace
WHERE p.prokind = '%[2]s' AND n.nspname = COALESCE(?::text, n.nspname) AND p.proname LIKE ?
ORDER BY %[1]s_schem, %[1]s_name, specific_name`, prefix, prokind)
}

func pgRoutineColumns(prefix, columnType, routineType string) string {
	return fmt.Sprintf(`
SELECT r.routine_catalog AS %[1]s_cat, r.routine_schema AS %[1]s_schem, r.routine_name AS %[1]s_name,
       COALESCE(p.parameter_name, '') AS column_name,
       %[2]s AS column_type,
       %[3]s AS data_type, p.udt_name AS type_name,
       p.numeric_precision AS %[4]s, p.character_octet_length AS length,
       p.numeric_scale AS scale, 10 AS radix,
       %[5]d AS nullable, NULL AS remarks, p.character_octet_length AS char_octet_length,
       p.ordinal_position, '' AS is_nullable, r.specific_name
FROM information_schema.routines r
JOIN information_schema.parameters p
  ON p.specific_schema = r.specific_schema AND p.specific_name = r.specific_name
WHERE r.routine_type = '%[6]s'
  AND r.routine_schema = COALESCE(?::text, r.routine_schema) AND r.routine_name = ?
  AND COALESCE(p.parameter_name, '') LIKE ?
ORDER BY r.specific_name, p.ordinal_position`, prefix, columnType, pgTypes.SQL("p.udt_name"),
		sqlutil.QuoteIdentifier("PRECISION", pgQuote), meta.ColumnNullableUnknown, routineType)
}

// Postgres returns the dialect for PostgreSQL, reading pg_catalog and
// information_schema. A connection sees a single database, which is reported
// as the only catalog; catalog arguments are not used as filters.
func Postgres() *Dialect {
	return &Dialect{
		Name:   "postgres",
		Rebind: sqlutil.Rebind,
		Queries: map[string]Query{
			meta.OpGetCatalogs: query(`
SELECT current_database() AS table_cat`),

			meta.OpGetSchemas: query(`
SELECT n.nspname AS table_schem, current_database() AS table_catalog
FROM pg_catalog.pg_namespace n
WHERE n.nspname NOT LIKE 'pg\_%' AND n.nspname <> 'information_schema' AND n.nspname LIKE ?
ORDER BY table_schem`, like(1)),

			meta.OpGetTables: query(`
SELECT current_database() AS table_cat, n.nspname AS table_schem, c.relname AS table_name,
       CASE c.relkind WHEN 'r' THEN 'TABLE' WHEN 'p' THEN 'TABLE' WHEN 'v' THEN 'VIEW'
            WHEN 'm' THEN 'MATERIALIZED VIEW' WHEN 'f' THEN 'FOREIGN TABLE' END AS table_type,
       pg_catalog.obj_description(c.oid, 'pg_class') AS remarks,
       NULL AS type_cat, NULL AS type_schem, NULL AS type_name,
       NULL AS self_referencing_col_name, NULL AS ref_generation
FROM pg_catalog.pg_class c
JOIN pg_catalog.pg_namespace n ON n.oid = c.relnamespace
WHERE c.relkind IN (`+pgTableKinds+`)
  AND n.nspname = COALESCE(?::text, n.nspname) AND c.relname LIKE ?
ORDER BY table_type, table_schem, table_name`, arg(1), like(2)),

			meta.OpGetColumns: query(fmt.Sprintf(`
SELECT table_catalog AS table_cat, table_schema AS table_schem, table_name, column_name,
       %s AS data_type, udt_name AS type_name,
       COALESCE(character_maximum_length, numeric_precision, datetime_precision) AS column_size,
       NULL AS buffer_length, numeric_scale AS decimal_digits,
       COALESCE(numeric_precision_radix, 10) AS num_prec_radix,
       CASE is_nullable WHEN 'YES' THEN %d ELSE %d END AS nullable,
       pg_catalog.col_description((quote_ident(table_schema) || '.' || quote_ident(table_name))::regclass,
                                  ordinal_position::int) AS remarks,
       column_default AS column_def, NULL AS sql_data_type, NULL AS sql_datetime_sub,
       character_octet_length AS char_octet_length, ordinal_position, is_nullable,
       NULL AS scope_catalog, NULL AS scope_schema, NULL AS scope_table, NULL AS source_data_type,
       CASE WHEN is_identity = 'YES' OR column_default LIKE 'nextval(%%' THEN 'YES' ELSE 'NO' END AS is_autoincrement,
       CASE WHEN is_generated = 'ALWAYS' THEN 'YES' ELSE 'NO' END AS is_generatedcolumn
FROM information_schema.columns
WHERE table_schema = COALESCE(?::text, table_schema) AND table_name = ? AND column_name LIKE ?
ORDER BY table_schem, table_name, ordinal_position`, pgTypes.SQL("udt_name"), meta.ColumnNullable, meta.ColumnNoNulls),
				arg(1), arg(2), like(3)),

			meta.OpGetColumnPrivileges: query(`
SELECT table_catalog AS table_cat, table_schema AS table_schem, table_name, column_name,
       grantor, grantee, privilege_type AS privilege, is_grantable
FROM information_schema.column_privileges
WHERE table_schema = COALESCE(?::text, table_schema) AND table_name = ? AND column_name LIKE ?
ORDER BY column_name, privilege`, arg(1), arg(2), like(3)),

			meta.OpGetTablePrivileges: query(`
SELECT table_catalog AS table_cat, table_schema AS table_schem, table_name,
       grantor, grantee, privilege_type AS privilege, is_grantable
FROM information_schema.table_privileges
WHERE table_schema = COALESCE(?::text, table_schema) AND table_name LIKE ?
ORDER BY table_schem, table_name, privilege`, arg(1), like(2)),

			meta.OpGetPrimaryKeys: query(`
SELECT kcu.table_catalog AS table_cat, kcu.table_schema AS table_schem, kcu.table_name,
       kcu.column_name, kcu.ordinal_position AS key_seq, tc.constraint_name AS pk_name
FROM information_schema.table_constraints tc
JOIN information_schema.key_column_usage kcu
  ON kcu.constraint_schema = tc.constraint_schema
 AND kcu.constraint_name = tc.constraint_name
 AND kcu.table_name = tc.table_name
WHERE tc.constraint_type = 'PRIMARY KEY'
  AND tc.table_schema = COALESCE(?::text, tc.table_schema) AND tc.table_name = ?
ORDER BY kcu.column_name`, arg(1), arg(2)),

			meta.OpGetImportedKeys: query(pgPortedKeys+`
  AND fn.nspname = COALESCE(?::text, fn.nspname) AND fc.relname = ?
ORDER BY pktable_schem, pktable_name, key_seq`, arg(1), arg(2)),

			meta.OpGetExportedKeys: query(pgPortedKeys+`
  AND pn.nspname = COALESCE(?::text, pn.nspname) AND pc.relname = ?
ORDER BY fktable_schem, fktable_name, key_seq`, arg(1), arg(2)),

			meta.OpGetCrossReference: query(pgPortedKeys+`
  AND pn.nspname = COALESCE(?::text, pn.nspname) AND pc.relname = ?
  AND fn.nspname = COALESCE(?::text, fn.nspname) AND fc.relname = ?
ORDER BY fktable_schem, fktable_name, key_seq`, arg(1), arg(2), arg(4), arg(5)),

			meta.OpGetIndexInfo: query(fmt.Sprintf(`
SELECT current_database() AS table_cat, n.nspname AS table_schem, ct.relname AS table_name,
       NOT i.indisunique AS non_unique, NULL AS index_qualifier, ci.relname AS index_name,
       CASE am.amname WHEN 'hash' THEN %d ELSE %d END AS type,
       k.n AS ordinal_position, a.attname AS column_name,
       CASE WHEN i.indoption[(k.n - 1)::int] & 1 = 1 THEN 'D' ELSE 'A' END AS asc_or_desc,
       ci.reltuples::bigint AS cardinality, ci.relpages::bigint AS pages,
       pg_catalog.pg_get_expr(i.indpred, i.indrelid) AS filter_condition
FROM pg_catalog.pg_index i
CROSS JOIN LATERAL unnest(i.indkey) WITH ORDINALITY AS k(attnum, n)
JOIN pg_catalog.pg_class ct ON ct.oid = i.indrelid
JOIN pg_catalog.pg_namespace n ON n.oid = ct.relnamespace
JOIN pg_catalog.pg_class ci ON ci.oid = i.indexrelid
JOIN pg_catalog.pg_am am ON am.oid = ci.relam
LEFT JOIN pg_catalog.pg_attribute a ON a.attrelid = ct.oid AND a.attnum = k.attnum
WHERE n.nspname = COALESCE(?::text, n.nspname) AND ct.relname = ? AND (NOT ?::boolean OR i.indisunique)
ORDER BY non_unique, index_name, ordinal_position`, meta.IndexHashed, meta.IndexOther),
				arg(1), arg(2), arg(3)),

			meta.OpGetBestRowIdentifier: query(fmt.Sprintf(`
SELECT ?::smallint AS scope, a.attname AS column_name, %s AS data_type, t.typname AS type_name,
       CASE WHEN a.atttypmod > 4 THEN a.atttypmod - 4 END AS column_size,
       NULL AS buffer_length, NULL AS decimal_digits, 1 AS pseudo_column
FROM pg_catalog.pg_index i
JOIN pg_catalog.pg_class ct ON ct.oid = i.indrelid
JOIN pg_catalog.pg_namespace n ON n.oid = ct.relnamespace
JOIN pg_catalog.pg_attribute a ON a.attrelid = ct.oid AND a.attnum = ANY(i.indkey)
JOIN pg_catalog.pg_type t ON t.oid = a.atttypid
WHERE i.indisprimary AND n.nspname = COALESCE(?::text, n.nspname) AND ct.relname = ?
ORDER BY a.attnum`, pgTypes.SQL("t.typname")),
				arg(3), arg(1), arg(2)),

			meta.OpGetVersionColumns: query(fmt.Sprintf(`
SELECT NULL::smallint AS scope, 'ctid' AS column_name, %d AS data_type, 'tid' AS type_name,
       NULL AS column_size, NULL AS buffer_length, NULL AS decimal_digits, 2 AS pseudo_column
FROM pg_catalog.pg_class c
JOIN pg_catalog.pg_namespace n ON n.oid = c.relnamespace
WHERE n.nspname = COALESCE(?::text, n.nspname) AND c.relname = ?`, meta.SQLTypeOther),
				arg(1), arg(2)),

			meta.OpGetProcedures: query(pgRoutines("procedure", "p"), arg(1), like(2)),

			meta.OpGetProcedureColumns: query(pgRoutineColumns("procedure",
				"CASE p.parameter_mode WHEN 'IN' THEN 1 WHEN 'INOUT' THEN 2 WHEN 'OUT' THEN 4 ELSE 5 END",
				"PROCEDURE"), arg(1), arg(2), like(3)),

			meta.OpGetFunctions: query(pgRoutines("function", "f"), arg(1), like(2)),

			meta.OpGetFunctionColumns: query(pgRoutineColumns("function",
				"CASE p.parameter_mode WHEN 'IN' THEN 1 WHEN 'INOUT' THEN 2 ELSE 3 END",
				"FUNCTION"), arg(1), arg(2), like(3)),

			meta.OpGetUDTs: query(fmt.Sprintf(`
SELECT current_database() AS type_cat, n.nspname AS type_schem, t.typname AS type_name,
       t.typname AS class_name,
       CASE t.typtype WHEN 'c' THEN %d ELSE %d END AS data_type,
       pg_catalog.obj_description(t.oid, 'pg_type') AS remarks,
       NULL AS base_type
FROM pg_catalog.pg_type t
JOIN pg_catalog.pg_namespace n ON n.oid = t.typnamespace
LEFT JOIN pg_catalog.pg_class c ON c.oid = t.typrelid
WHERE t.typtype IN ('c', 'd') AND (t.typrelid = 0 OR c.relkind = 'c')
  AND n.nspname NOT LIKE 'pg\_%%' AND n.nspname <> 'information_schema'
  AND n.nspname = COALESCE(?::text, n.nspname) AND t.typname LIKE ?
ORDER BY data_type, type_schem, type_name`, meta.SQLTypeStruct, meta.SQLTypeDistinct),
				arg(1), like(2)),

			meta.OpGetAttributes: query(fmt.Sprintf(`
SELECT current_database() AS type_cat, n.nspname AS type_schem, t.typname AS type_name,
       a.attname AS attr_name, %s AS data_type, at.typname AS attr_type_name,
       CASE WHEN a.atttypmod > 4 THEN a.atttypmod - 4 ELSE 0 END AS attr_size,
       NULL AS decimal_digits, 10 AS num_prec_radix,
       CASE WHEN a.attnotnull THEN %d ELSE %d END AS nullable,
       NULL AS remarks, NULL AS attr_def, NULL AS sql_data_type, NULL AS sql_datetime_sub,
       0 AS char_octet_length, a.attnum AS ordinal_position,
       CASE WHEN a.attnotnull THEN 'NO' ELSE 'YES' END AS is_nullable, NULL AS source_data_type
FROM pg_catalog.pg_type t
JOIN pg_catalog.pg_namespace n ON n.oid = t.typnamespace
JOIN pg_catalog.pg_attribute a ON a.attrelid = t.typrelid AND a.attnum > 0 AND NOT a.attisdropped
JOIN pg_catalog.pg_type at ON at.oid = a.atttypid
WHERE n.nspname = COALESCE(?::text, n.nspname) AND t.typname = ? AND a.attname LIKE ?
ORDER BY a.attnum`, pgTypes.SQL("at.typname"), meta.ColumnNoNulls, meta.ColumnNullable),
				arg(1), arg(2), like(3)),

			meta.OpGetTableTypes: query(pgTableTypes),

			meta.OpGetTypeInfo: query(fmt.Sprintf(`
SELECT t.typname AS type_name, %s AS data_type, 0 AS %s,
       NULL AS literal_prefix, NULL AS literal_suffix, NULL AS create_params,
       CASE WHEN t.typnotnull THEN %d ELSE %d END AS nullable,
       t.typcollation <> 0 AS case_sensitive, 3 AS searchable,
       false AS unsigned_attribute, false AS fixed_prec_scale, false AS auto_increment,
       t.typname AS local_type_name, 0 AS minimum_scale, 0 AS maximum_scale,
       NULL AS sql_data_type, NULL AS sql_datetime_sub, 10 AS num_prec_radix
FROM pg_catalog.pg_type t
JOIN pg_catalog.pg_namespace n ON n.oid = t.typnamespace
WHERE n.nspname = 'pg_catalog' AND t.typtype = 'b' AND t.typname NOT LIKE '\_%%'
ORDER BY data_type, type_name`, pgTypes.SQL("t.typname"), sqlutil.QuoteIdentifier("PRECISION", pgQuote),
				meta.ColumnNoNulls, meta.ColumnNullable)),

			meta.OpGetClientInfoProperties: query(`
SELECT 'ApplicationName' AS name, 63 AS max_len, '' AS default_value,
       'The name of the application currently utilizing the connection.' AS description`),
		},
		Scalars: map[string]ScalarFunc{
			meta.OpGetDatabaseProductName:    constant("PostgreSQL"),
			meta.OpGetDatabaseProductVersion: queryValue("SHOW server_version"),
			meta.OpGetDatabaseMajorVersion:   versionPart("SHOW server_version", 0),
			meta.OpGetDatabaseMinorVersion:   versionPart("SHOW server_version", 1),
			meta.OpGetDriverName:             constant("lib/pq"),
			meta.OpGetDriverVersion:          moduleVersion("github.com/lib/pq"),
			meta.OpGetUserName:               queryValue("SELECT current_user"),
			meta.OpGetIdentifierQuoteString:  constant(pgQuote),
			meta.OpGetCatalogSeparator:       constant("."),
			meta.OpGetCatalogTerm:            constant("database"),
			meta.OpGetSchemaTerm:             constant("schema"),
			meta.OpGetProcedureTerm:          constant("function"),
			meta.OpGetSQLKeywords: queryValue(
				"SELECT string_agg(upper(word), ',' ORDER BY word) FROM pg_catalog.pg_get_keywords() WHERE catcode <> 'U'"),
			meta.OpIsCatalogAtStart:        constant(true),
			meta.OpIsReadOnly:              queryValue("SELECT current_setting('transaction_read_only') = 'on'"),
			meta.OpGetDefaultIsolation:     constant(meta.TransactionReadCommitted),
			meta.OpGetResultSetHoldability: constant(meta.CloseCursorsAtCommit),
			meta.OpSupportsTransactions:    constant(true),
			meta.OpSupportsConvert:         convert(),
			meta.OpDeletesAreDetected:      constant(false),
			meta.OpInsertsAreDetected:      constant(false),
			meta.OpUpdatesAreDetected:      constant(false),
			meta.OpOthersDeletesAreVisible: constant(false),
			meta.OpOthersInsertsAreVisible: constant(false),
			meta.OpOthersUpdatesAreVisible: constant(false),
			meta.OpOwnDeletesAreVisible:    constant(true),
			meta.OpOwnInsertsAreVisible:    constant(true),
			meta.OpOwnUpdatesAreVisible:    constant(true),
			meta.OpSupportsResultSetType: all(
				in(0, meta.TypeForwardOnly, meta.TypeScrollInsensitive)),
			meta.OpSupportsResultSetConcur: all(
				in(0, meta.TypeForwardOnly, meta.TypeScrollInsensitive),
				in(1, meta.ConcurReadOnly, meta.ConcurUpdatable)),
			meta.OpSupportsResultSetHold: all(in(0, meta.HoldCursorsOverCommit, meta.CloseCursorsAtCommit)),
			meta.OpSupportsIsolationLevel: all(in(0,
				meta.TransactionReadUncommitted, meta.TransactionReadCommitted,
				meta.TransactionRepeatableRead, meta.TransactionSerializable)),
		},
	}
}
