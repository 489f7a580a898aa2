// Package gormstore serves the client table through gorm. It backs the sqlite
// deployment and the package tests.
package gormstore

import (
	"context"
	"errors"
	"fmt"

	"client-service/internal/domain/client"
	"client-service/internal/repository"

	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AutoMigrate creates the client table and its index when missing.
func (s *Store) AutoMigrate() error {
	if err := s.db.AutoMigrate(&client.Client{}); err != nil {
		return fmt.Errorf("failed to migrate client table: %w", err)
	}
	return nil
}

// Open starts a request-scoped gorm session bound to ctx.
func (s *Store) Open(ctx context.Context) (repository.Session, error) {
	tx := s.db.Session(&gorm.Session{NewDB: true, Context: ctx})
	return &session{db: tx}, nil
}

type session struct {
	db *gorm.DB
}

// Release drops the session handle; the pooled connection stays with gorm.
func (s *session) Release() {
	s.db = nil
}

func (s *session) SelectAll(ctx context.Context) ([]client.Client, error) {
	var clients []client.Client
	if err := s.db.WithContext(ctx).Order(client.ColumnID).Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	return clients, nil
}

func (s *session) SelectByID(ctx context.Context, id int64) (*client.Client, error) {
	var c client.Client
	err := s.db.WithContext(ctx).Where(client.ColumnID+" = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	return &c, nil
}

func (s *session) Insert(ctx context.Context, fields client.Fields) (int64, error) {
	c := fields.Record()
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return 0, fmt.Errorf("failed to insert client: %w", err)
	}
	return c.ID, nil
}

func (s *session) Update(ctx context.Context, id int64, fields client.Fields) error {
	if len(fields) == 0 {
		return nil
	}
	result := s.db.WithContext(ctx).
		Model(&client.Client{}).
		Where(client.ColumnID+" = ?", id).
		Updates(map[string]interface{}(fields))
	if result.Error != nil {
		return fmt.Errorf("failed to update client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoRecord
	}
	return nil
}

func (s *session) Delete(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Where(client.ColumnID+" = ?", id).Delete(&client.Client{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoRecord
	}
	return nil
}
