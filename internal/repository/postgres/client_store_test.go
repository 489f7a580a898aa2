package postgres

import (
	"testing"

	"client-service/internal/domain/client"

	"github.com/stretchr/testify/assert"
)

func TestBuildUpdate(t *testing.T) {
	query, args := buildUpdate(42, client.Fields{
		client.ColumnNewsletter: 1,
		client.ColumnLastName:   "Durand",
		client.ColumnEmail:      nil,
	})

	assert.Equal(t,
		`UPDATE t_client SET "nom" = $1, "email" = $2, "newsletter" = $3 WHERE codcli = $4`,
		query,
	)
	assert.Equal(t, []interface{}{"Durand", nil, 1, int64(42)}, args)
}

func TestBuildUpdate_NothingToWrite(t *testing.T) {
	query, args := buildUpdate(1, client.Fields{})
	assert.Empty(t, query)
	assert.Nil(t, args)
}

func TestColumnArgs_TableOrder(t *testing.T) {
	columns, args := columnArgs(client.Fields{
		client.ColumnPhone:     "0102030405",
		client.ColumnFirstName: "Alice",
	})

	assert.Equal(t, []string{`"prenom"`, `"tel"`}, columns)
	assert.Equal(t, []interface{}{"Alice", "0102030405"}, args)
}
