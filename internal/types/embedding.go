package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Embedding stores a text chunk with its vector for later similarity search;
// the search itself lives elsewhere.
type Embedding struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"chunk_id"`
	ChunkText  string         `gorm:"not null;column:chunk_text" json:"chunk_text"`
	Embedding  datatypes.JSON `gorm:"type:jsonb;column:embedding" json:"embedding"`
	SourceType string         `gorm:"not null;column:source_type" json:"source_type"`
	SourcePage int            `gorm:"column:source_page" json:"source_page"`
	Synced     bool           `gorm:"not null;default:false;column:synced" json:"synced"`
	CreatedAt  time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (Embedding) TableName() string { return "embedding" }

type EmbeddingCreate struct {
	ChunkText  string    `json:"chunk_text"`
	Embedding  []float64 `json:"embedding,omitempty"`
	SourceType string    `json:"source_type"`
	SourcePage int       `json:"source_page"`
	Synced     *bool     `json:"synced,omitempty"`
}

type EmbeddingUpdate struct {
	ChunkText  *string    `json:"chunk_text,omitempty"`
	Embedding  *[]float64 `json:"embedding,omitempty"`
	SourceType *string    `json:"source_type,omitempty"`
	SourcePage *int       `json:"source_page,omitempty"`
	Synced     *bool      `json:"synced,omitempty"`
}
