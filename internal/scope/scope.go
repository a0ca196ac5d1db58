package scope

import "gorm.io/gorm"

// ForEmployee restricts a query to rows owned by one employee. Non-HR callers
// never see anyone else's leave requests.
func ForEmployee(employeeID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("employee_id = ?", employeeID)
	}
}

// ForAccount restricts a query to the employee record backed by one account.
func ForAccount(email string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("account_email = ?", email)
	}
}
