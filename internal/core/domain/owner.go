package domain

// Owner identifies which of the two household account holders a record
// belongs to. The set is closed: statements and investments are always
// tagged with exactly one of these values.
type Owner string

const (
	OwnerDaniela Owner = "Daniela"
	OwnerGiovani Owner = "Giovani"
)

// Owners lists the closed set of account holders in display order.
var Owners = []Owner{OwnerDaniela, OwnerGiovani}

// IsValid reports whether o is one of the known account holders.
func (o Owner) IsValid() bool {
	for _, known := range Owners {
		if o == known {
			return true
		}
	}
	return false
}

// ParseOwner resolves a raw string to a known Owner.
func ParseOwner(s string) (Owner, bool) {
	o := Owner(s)
	return o, o.IsValid()
}
