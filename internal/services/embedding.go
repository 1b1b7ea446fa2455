package services

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/safedrive/telematics-api/internal/pkg/apierr"
	"github.com/safedrive/telematics-api/internal/pkg/logger"
	"github.com/safedrive/telematics-api/internal/repos"
	"github.com/safedrive/telematics-api/internal/types"
)

type EmbeddingService interface {
	CrudService[types.Embedding, types.EmbeddingCreate, types.EmbeddingUpdate]
}

func NewEmbeddingService(db *gorm.DB, log *logger.Logger, embeddings repos.EmbeddingRepo) EmbeddingService {
	serviceLog := log.With("service", "EmbeddingService")

	hooks := Hooks[types.Embedding, types.EmbeddingCreate, types.EmbeddingUpdate]{
		Entity: "embedding",
		ValidateCreate: func(in *types.EmbeddingCreate) error {
			if strings.TrimSpace(in.ChunkText) == "" {
				return apierr.Validation("chunk_text is required", nil)
			}
			if strings.TrimSpace(in.SourceType) == "" {
				return apierr.Validation("source_type is required", nil)
			}
			return nil
		},
		NewRecord: func(in *types.EmbeddingCreate) (*types.Embedding, error) {
			rec := &types.Embedding{
				ID:         uuid.New(),
				ChunkText:  in.ChunkText,
				SourceType: in.SourceType,
				SourcePage: in.SourcePage,
			}
			if in.Synced != nil {
				rec.Synced = *in.Synced
			}
			if in.Embedding != nil {
				vec, err := marshalFloats(in.Embedding)
				if err != nil {
					return nil, apierr.Validation("embedding is not encodable", err)
				}
				rec.Embedding = vec
			}
			return rec, nil
		},
		UpdateFields: func(in *types.EmbeddingUpdate) (map[string]any, error) {
			fields := map[string]any{}
			if in.ChunkText != nil {
				fields["chunk_text"] = *in.ChunkText
			}
			if in.Embedding != nil {
				vec, err := marshalFloats(*in.Embedding)
				if err != nil {
					return nil, err
				}
				fields["embedding"] = vec
			}
			if in.SourceType != nil {
				fields["source_type"] = *in.SourceType
			}
			if in.SourcePage != nil {
				fields["source_page"] = *in.SourcePage
			}
			if in.Synced != nil {
				fields["synced"] = *in.Synced
			}
			return fields, nil
		},
	}
	return newCrudService(db, serviceLog, embeddings, hooks)
}
