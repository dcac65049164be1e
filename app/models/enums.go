package models

// ExpenseCategory defines the recognised expense categories.
type ExpenseCategory string

const (
	CategorySalary       ExpenseCategory = "Salary"
	CategoryBuildingRent ExpenseCategory = "Building Rent"
	CategoryMaintenance  ExpenseCategory = "Maintenance"
	CategoryUtilities    ExpenseCategory = "Utilities"
	CategoryStationery   ExpenseCategory = "Stationery"
	CategoryOther        ExpenseCategory = "Other"
)

// ExpenseCategories lists every valid category, in display order.
var ExpenseCategories = []ExpenseCategory{
	CategorySalary,
	CategoryBuildingRent,
	CategoryMaintenance,
	CategoryUtilities,
	CategoryStationery,
	CategoryOther,
}

// IsValid reports whether c is one of the recognised categories.
func (c ExpenseCategory) IsValid() bool {
	for _, v := range ExpenseCategories {
		if c == v {
			return true
		}
	}
	return false
}

// PaymentMethod defines how an expense was settled.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "Cash"
	MethodBankTransfer PaymentMethod = "Bank Transfer"
	MethodCheque       PaymentMethod = "Cheque"
	MethodOther        PaymentMethod = "Other"
)

// ExpenseStatus defines the settlement state of an expense.
// Paid entries are settled financial facts; Pending entries are
// obligations not yet settled.
type ExpenseStatus string

const (
	StatusPaid    ExpenseStatus = "Paid"
	StatusPending ExpenseStatus = "Pending"
)

// FeeKind defines the kind of a student fee.
type FeeKind string

const (
	FeeTuition   FeeKind = "tuition"
	FeeAdmission FeeKind = "admission"
	FeeOtherKind FeeKind = "other"
)

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)
