package entities

// JobField names a mutable job attribute. The string value is the storage
// attribute/column name.
type JobField string

const (
	JobFieldCustomerName  JobField = "customer_name"
	JobFieldAddress       JobField = "address"
	JobFieldPhone         JobField = "phone"
	JobFieldScheduledAt   JobField = "scheduled_at"
	JobFieldServiceType   JobField = "service_type"
	JobFieldStatus        JobField = "status"
	JobFieldBeforePhotos  JobField = "before_photos"
	JobFieldAfterPhotos   JobField = "after_photos"
	JobFieldSignature     JobField = "signature"
	JobFieldPrice         JobField = "price"
	JobFieldPaymentMethod JobField = "payment_method"
	JobFieldInstallments  JobField = "installments"
)

// MutableJobFields is the patch whitelist. id and created_at are never writable.
var MutableJobFields = []JobField{
	JobFieldCustomerName,
	JobFieldAddress,
	JobFieldPhone,
	JobFieldScheduledAt,
	JobFieldServiceType,
	JobFieldStatus,
	JobFieldBeforePhotos,
	JobFieldAfterPhotos,
	JobFieldSignature,
	JobFieldPrice,
	JobFieldPaymentMethod,
	JobFieldInstallments,
}

// IsMutable reports whether f is in the patch whitelist.
func (f JobField) IsMutable() bool {
	for _, m := range MutableJobFields {
		if m == f {
			return true
		}
	}
	return false
}

// JobChanges is a coerced, whitelisted set of column writes applied in a single
// repository update. Values are typed per field:
//   - string: names, address, phone, service_type, signature, payment_method,
//     and the encoded photo collections
//   - time.Time: scheduled_at
//   - JobStatus: status
//   - decimal.Decimal: price
//   - int: installments
type JobChanges map[JobField]any

// LedgerField names a mutable ledger entry attribute.
type LedgerField string

const (
	LedgerFieldKind        LedgerField = "kind"
	LedgerFieldDescription LedgerField = "description"
	LedgerFieldAmount      LedgerField = "amount"
	LedgerFieldDate        LedgerField = "date"
)

var MutableLedgerFields = []LedgerField{
	LedgerFieldKind,
	LedgerFieldDescription,
	LedgerFieldAmount,
	LedgerFieldDate,
}

// LedgerChanges mirrors JobChanges for ledger entries. Values: LedgerKind,
// string (description, date as YYYY-MM-DD) and decimal.Decimal (amount).
type LedgerChanges map[LedgerField]any
