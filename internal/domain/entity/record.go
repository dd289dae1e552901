package entity

import (
	"time"
)

// Record holds the server-assigned fields shared by every stored document.
type Record struct {
	ID        string    `json:"id" firestore:"id"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

func (r *Record) GetID() string {
	return r.ID
}

func (r *Record) SetID(id string) {
	r.ID = id
}

func (r *Record) GetCreatedAt() time.Time {
	return r.CreatedAt
}

// SetCreatedAt stamps the creation time once; later calls are ignored so an
// update cannot rewrite the original timestamp.
func (r *Record) SetCreatedAt(t time.Time) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = t
	}
}

// Stored is implemented by every persisted document.
type Stored interface {
	GetID() string
	SetID(id string)
	GetCreatedAt() time.Time
	SetCreatedAt(t time.Time)
}

// Asset is a stored document carrying a non-owning reference into the asset
// host. The reference is only kept consistent by the paired-delete flow.
type Asset interface {
	Stored
	AssetRef() string
}
