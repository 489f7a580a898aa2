// internal/repository/store.go
package repository

import (
	"context"
	"errors"

	"client-service/internal/domain/client"
)

// ErrNoRecord is returned by a Session when no row matches the id.
var ErrNoRecord = errors.New("no record with this id")

// Session is one unit of access to the record store. Each primitive commits
// on its own. Release must be called exactly once when the request is done.
type Session interface {
	SelectAll(ctx context.Context) ([]client.Client, error)
	SelectByID(ctx context.Context, id int64) (*client.Client, error)
	Insert(ctx context.Context, fields client.Fields) (int64, error)
	Update(ctx context.Context, id int64, fields client.Fields) error
	Delete(ctx context.Context, id int64) error
	Release()
}

// SessionProvider hands out sessions over a connection opened once per process.
type SessionProvider interface {
	Open(ctx context.Context) (Session, error)
}
