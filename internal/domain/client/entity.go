// internal/domain/client/entity.go
package client

// Column names of the t_client table. They double as the JSON wire names.
const (
	ColumnID           = "codcli"
	ColumnLastName     = "nom"
	ColumnFirstName    = "prenom"
	ColumnGender       = "genre"
	ColumnAddress      = "adresse"
	ColumnAddressExtra = "complement_adresse"
	ColumnPhone        = "tel"
	ColumnEmail        = "email"
	ColumnNewsletter   = "newsletter"
)

// TableName is the physical table holding client records.
const TableName = "t_client"

// Columns lists the writable columns in table order. The primary key is
// store-assigned and never part of it.
var Columns = []string{
	ColumnLastName,
	ColumnFirstName,
	ColumnGender,
	ColumnAddress,
	ColumnAddressExtra,
	ColumnPhone,
	ColumnEmail,
	ColumnNewsletter,
}

// Client is the read shape of a stored record.
type Client struct {
	ID           int64   `json:"codcli" gorm:"column:codcli;primaryKey"`
	LastName     string  `json:"nom" gorm:"column:nom;size:40;index"`
	FirstName    string  `json:"prenom" gorm:"column:prenom;size:30"`
	Gender       *string `json:"genre" gorm:"column:genre;size:8"`
	Address      string  `json:"adresse" gorm:"column:adresse;size:50"`
	AddressExtra *string `json:"complement_adresse" gorm:"column:complement_adresse;size:50"`
	Phone        *string `json:"tel" gorm:"column:tel;size:10"`
	Email        *string `json:"email" gorm:"column:email;size:255"`
	Newsletter   *int    `json:"newsletter" gorm:"column:newsletter"`
}

func (Client) TableName() string {
	return TableName
}

// Set assigns value to the attribute backing column. It reports false for
// names that are not writable columns and leaves the record untouched.
func (c *Client) Set(column string, value any) bool {
	switch column {
	case ColumnLastName:
		c.LastName = stringValue(value)
	case ColumnFirstName:
		c.FirstName = stringValue(value)
	case ColumnGender:
		c.Gender = stringPtr(value)
	case ColumnAddress:
		c.Address = stringValue(value)
	case ColumnAddressExtra:
		c.AddressExtra = stringPtr(value)
	case ColumnPhone:
		c.Phone = stringPtr(value)
	case ColumnEmail:
		c.Email = stringPtr(value)
	case ColumnNewsletter:
		c.Newsletter = intPtr(value)
	default:
		return false
	}
	return true
}

// Result is the outcome of an id-keyed lookup. A missing record is a
// NotFound result, never an error.
type Result struct {
	Client *Client
	Found  bool
}

func Found(c *Client) Result {
	return Result{Client: c, Found: true}
}

func NotFound() Result {
	return Result{}
}

func stringValue(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case *string:
		if s != nil {
			return *s
		}
	}
	return ""
}

func stringPtr(v any) *string {
	switch s := v.(type) {
	case string:
		return &s
	case *string:
		return s
	}
	return nil
}

func intPtr(v any) *int {
	switch n := v.(type) {
	case int:
		return &n
	case int64:
		i := int(n)
		return &i
	case *int:
		return n
	}
	return nil
}
