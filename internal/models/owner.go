package models

// Owner is one row of the strata roll. Entitlement is the unit's share of
// common-property obligations in percent. The sum across active owners is
// conventionally ~100 but nothing enforces that.
type Owner struct {
	ID          int64   `json:"id"`
	Unit        string  `json:"unit"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Entitlement float64 `json:"entitlement"`
}
