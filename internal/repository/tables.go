// Package repository implements per-entity persistence over the storage
// gateway. Repositories translate between domain types and raw store
// items and report failures as absent values, never as errors.
package repository

// Tables names the four entity tables. Only User carries a secondary
// index (EmailIndex); every other non-id lookup is a filtered scan.
type Tables struct {
	User               string
	Establishment      string
	EstablishmentRules string
	Product            string
}

// EmailIndex is the secondary index on the User table keyed by email.
const EmailIndex = "EmailIndex"

// DefaultTables returns the table names used by the live deployment.
func DefaultTables() Tables {
	return Tables{
		User:               "User",
		Establishment:      "Establishment",
		EstablishmentRules: "EstablishmentRules",
		Product:            "Product",
	}
}
