// Package domain defines the persisted entity types. These are the only
// representations that cross the repository boundary; raw store items
// never do.
package domain

// UserType is the business role of a user.
type UserType string

const (
	UserTypeOwner    UserType = "owner"
	UserTypeCustomer UserType = "customer"
)

// Valid reports whether t is a known user type.
func (t UserType) Valid() bool {
	return t == UserTypeOwner || t == UserTypeCustomer
}

// User is an account holder. Email is unique by convention only: the
// uniqueness check happens at creation time and is not a store constraint.
type User struct {
	ID    string   `dynamodbav:"id" json:"id"`
	Name  string   `dynamodbav:"name" json:"name"`
	Email string   `dynamodbav:"email" json:"email"`
	Type  UserType `dynamodbav:"type" json:"type"`
}

// EstablishmentType is the kind of establishment.
type EstablishmentType string

const (
	EstablishmentTypeShopping EstablishmentType = "shopping"
	EstablishmentTypeLocal    EstablishmentType = "local"
)

// Valid reports whether t is a known establishment type.
func (t EstablishmentType) Valid() bool {
	return t == EstablishmentTypeShopping || t == EstablishmentTypeLocal
}

// Establishment belongs to a user of type owner. The ownership check runs
// only at creation time; a later role change does not invalidate existing
// establishments.
type Establishment struct {
	ID      string            `dynamodbav:"id" json:"id"`
	Name    string            `dynamodbav:"name" json:"name"`
	OwnerID string            `dynamodbav:"ownerId" json:"ownerId"`
	Type    EstablishmentType `dynamodbav:"type" json:"type"`
}

// EstablishmentRules holds the content limits of an establishment. At most
// one row exists per establishment, written atomically with it.
type EstablishmentRules struct {
	ID              string `dynamodbav:"id" json:"id"`
	EstablishmentID string `dynamodbav:"establishmentId" json:"establishmentId"`
	PicturesLimit   int    `dynamodbav:"picturesLimit" json:"picturesLimit"`
	VideoLimit      int    `dynamodbav:"videoLimit" json:"videoLimit"`
}

// Product is an item sold by an establishment.
type Product struct {
	ID              string  `dynamodbav:"id" json:"id"`
	Name            string  `dynamodbav:"name" json:"name"`
	Price           float64 `dynamodbav:"price" json:"price"`
	EstablishmentID string  `dynamodbav:"establishmentId" json:"establishmentId"`
}
