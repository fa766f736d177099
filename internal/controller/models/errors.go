package models

import "fmt"

var (
	ErrorAnimalNotAvailable              = fmt.Errorf("animal_not_available")
	ErrorCredentialsAuthenticationFailed = fmt.Errorf("credentials_authentication_failed")
	ErrorDuplicateEntry                  = fmt.Errorf("duplicate_entry")
	ErrorHasDependencies                 = fmt.Errorf("has_dependencies")
	ErrorNotFound                        = fmt.Errorf("not_found")
	ErrorOrganizationInactive            = fmt.Errorf("organization_inactive")
	ErrorValidationFailed                = fmt.Errorf("validation_failed")

	ErrorDatabaseUndefined       = fmt.Errorf("database_undefined")
	ErrorDeleteFailed            = fmt.Errorf("delete_failed")
	ErrorInsertFailed            = fmt.Errorf("insert_failed")
	ErrorInvalidInput            = fmt.Errorf("invalid_input")
	ErrorRowsAffectedCheckFailed = fmt.Errorf("rows_affected_check_failed")
	ErrorSelectFailed            = fmt.Errorf("select_failed")
	ErrorSelectsFailed           = fmt.Errorf("selects_failed")
	ErrorStmtPreparationFailed   = fmt.Errorf("stmt_preparation_failed")
	ErrorUpdateFailed            = fmt.Errorf("update_failed")

	mysqlErrorDuplicateEntryCode  uint16 = 1062
	mysqlErrorRowIsReferencedCode uint16 = 1451
)
