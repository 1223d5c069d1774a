package meta

// Source operations invoked while binding. The names follow the standard
// database metadata interface so that any source can expose them.
const (
	OpGetCatalogs               = "getCatalogs"
	OpGetSchemas                = "getSchemas"
	OpGetTables                 = "getTables"
	OpGetColumns                = "getColumns"
	OpGetColumnPrivileges       = "getColumnPrivileges"
	OpGetTablePrivileges        = "getTablePrivileges"
	OpGetPrimaryKeys            = "getPrimaryKeys"
	OpGetImportedKeys           = "getImportedKeys"
	OpGetExportedKeys           = "getExportedKeys"
	OpGetCrossReference         = "getCrossReference"
	OpGetIndexInfo              = "getIndexInfo"
	OpGetBestRowIdentifier      = "getBestRowIdentifier"
	OpGetVersionColumns         = "getVersionColumns"
	OpGetPseudoColumns          = "getPseudoColumns"
	OpGetSuperTables            = "getSuperTables"
	OpGetProcedures             = "getProcedures"
	OpGetProcedureColumns       = "getProcedureColumns"
	OpGetFunctions              = "getFunctions"
	OpGetFunctionColumns        = "getFunctionColumns"
	OpGetUDTs                   = "getUDTs"
	OpGetAttributes             = "getAttributes"
	OpGetSuperTypes             = "getSuperTypes"
	OpGetTableTypes             = "getTableTypes"
	OpGetTypeInfo               = "getTypeInfo"
	OpGetClientInfoProperties   = "getClientInfoProperties"
	OpGetDatabaseProductName    = "getDatabaseProductName"
	OpGetDatabaseProductVersion = "getDatabaseProductVersion"
	OpGetDatabaseMajorVersion   = "getDatabaseMajorVersion"
	OpGetDatabaseMinorVersion   = "getDatabaseMinorVersion"
	OpGetDriverName             = "getDriverName"
	OpGetDriverVersion          = "getDriverVersion"
	OpGetUserName               = "getUserName"
	OpGetIdentifierQuoteString  = "getIdentifierQuoteString"
	OpGetCatalogSeparator       = "getCatalogSeparator"
	OpGetCatalogTerm            = "getCatalogTerm"
	OpGetSchemaTerm             = "getSchemaTerm"
	OpGetProcedureTerm          = "getProcedureTerm"
	OpGetSQLKeywords            = "getSQLKeywords"
	OpIsCatalogAtStart          = "isCatalogAtStart"
	OpIsReadOnly                = "isReadOnly"
	OpGetDefaultIsolation       = "getDefaultTransactionIsolation"
	OpGetResultSetHoldability   = "getResultSetHoldability"
	OpSupportsTransactions      = "supportsTransactions"
	OpSupportsConvert           = "supportsConvert"
	OpDeletesAreDetected        = "deletesAreDetected"
	OpInsertsAreDetected        = "insertsAreDetected"
	OpUpdatesAreDetected        = "updatesAreDetected"
	OpOthersDeletesAreVisible   = "othersDeletesAreVisible"
	OpOthersInsertsAreVisible   = "othersInsertsAreVisible"
	OpOthersUpdatesAreVisible   = "othersUpdatesAreVisible"
	OpOwnDeletesAreVisible      = "ownDeletesAreVisible"
	OpOwnInsertsAreVisible      = "ownInsertsAreVisible"
	OpOwnUpdatesAreVisible      = "ownUpdatesAreVisible"
	OpSupportsResultSetType     = "supportsResultSetType"
	OpSupportsResultSetConcur   = "supportsResultSetConcurrency"
	OpSupportsResultSetHold     = "supportsResultSetHoldability"
	OpSupportsIsolationLevel    = "supportsTransactionIsolationLevel"
)

// Suppression paths the traversal driver consults directly.
const (
	PathMetadataCatalogs        = "metadata/catalogs"
	PathMetadataCrossReferences = "metadata/crossReferences"
	PathCatalogSchemas          = "catalog/schemas"
	PathSchemaTables            = "schema/tables"
	PathSchemaCrossReferences   = "schema/crossReferences"
)
