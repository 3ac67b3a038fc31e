// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products in the catalog. A category owns zero or more
// products; deletion is refused while products still reference it.
type Category struct {
	ID          uuid.UUID  // The Global Unique Identifier (GUID) for the category.
	Name        string     // Category display name, unique in practice.
	Description string     // Free-form category description.
	Photo       string     // Stored image object name. Empty when none.
	Products    []*Product // Optional preloaded products, nil when not fetched.
	CreatedAt   time.Time  // Timestamp of when this category was created.
	UpdatedAt   time.Time  // Timestamp of the last modification.
}
