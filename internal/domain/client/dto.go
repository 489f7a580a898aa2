// internal/domain/client/dto.go
package client

import (
	"bytes"
	"encoding/json"
)

// Field is an optional request attribute that remembers whether it was sent
// and whether it was sent as null.
type Field[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some returns a Field carrying v.
func Some[T any](v T) Field[T] {
	return Field[T]{Value: v, Set: true}
}

// Null returns a Field explicitly set to null.
func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		f.Value = zero
		f.Null = true
		return nil
	}
	f.Null = false
	return json.Unmarshal(data, &f.Value)
}

// OrNil returns the carried value, or nil when the field is absent or null.
func (f Field[T]) OrNil() any {
	if !f.Set || f.Null {
		return nil
	}
	return f.Value
}

// CreateClientRequest is the closed create shape.
type CreateClientRequest struct {
	LastName     *string       `json:"nom" binding:"required,max=40"`
	FirstName    *string       `json:"prenom" binding:"required,max=30"`
	Gender       Field[string] `json:"genre" binding:"omitempty,max=8"`
	Address      *string       `json:"adresse" binding:"required,max=50"`
	AddressExtra Field[string] `json:"complement_adresse" binding:"omitempty,max=50"`
	Phone        Field[string] `json:"tel" binding:"omitempty,max=10"`
	Email        Field[string] `json:"email" binding:"omitempty,max=255"`
	Newsletter   Field[int]    `json:"newsletter" binding:"omitempty,min=-2147483648,max=2147483647"`
}

// Fields returns every column of the new record. Newsletter defaults to 0
// when it was not sent.
func (r *CreateClientRequest) Fields() Fields {
	f := Fields{
		ColumnLastName:     deref(r.LastName),
		ColumnFirstName:    deref(r.FirstName),
		ColumnGender:       r.Gender.OrNil(),
		ColumnAddress:      deref(r.Address),
		ColumnAddressExtra: r.AddressExtra.OrNil(),
		ColumnPhone:        r.Phone.OrNil(),
		ColumnEmail:        r.Email.OrNil(),
		ColumnNewsletter:   0,
	}
	if r.Newsletter.Set {
		f[ColumnNewsletter] = r.Newsletter.OrNil()
	}
	return f
}

// PatchClientRequest is the closed update shape; every attribute is optional.
// LastName, FirstName and Address may be omitted but not nulled.
type PatchClientRequest struct {
	LastName     Field[string] `json:"nom" binding:"omitempty,max=40"`
	FirstName    Field[string] `json:"prenom" binding:"omitempty,max=30"`
	Gender       Field[string] `json:"genre" binding:"omitempty,max=8"`
	Address      Field[string] `json:"adresse" binding:"omitempty,max=50"`
	AddressExtra Field[string] `json:"complement_adresse" binding:"omitempty,max=50"`
	Phone        Field[string] `json:"tel" binding:"omitempty,max=10"`
	Email        Field[string] `json:"email" binding:"omitempty,max=255"`
	Newsletter   Field[int]    `json:"newsletter" binding:"omitempty,min=-2147483648,max=2147483647"`
}

// Fields returns only the attributes that were sent.
func (r *PatchClientRequest) Fields() Fields {
	f := Fields{}
	put := func(column string, set bool, value any) {
		if set {
			f[column] = value
		}
	}
	put(ColumnLastName, r.LastName.Set, r.LastName.OrNil())
	put(ColumnFirstName, r.FirstName.Set, r.FirstName.OrNil())
	put(ColumnGender, r.Gender.Set, r.Gender.OrNil())
	put(ColumnAddress, r.Address.Set, r.Address.OrNil())
	put(ColumnAddressExtra, r.AddressExtra.Set, r.AddressExtra.OrNil())
	put(ColumnPhone, r.Phone.Set, r.Phone.OrNil())
	put(ColumnEmail, r.Email.Set, r.Email.OrNil())
	put(ColumnNewsletter, r.Newsletter.Set, r.Newsletter.OrNil())
	return f
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
