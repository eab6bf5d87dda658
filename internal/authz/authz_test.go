package authz

import (
	"testing"

	"photogram/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCanMutate(t *testing.T) {
	tests := []struct {
		name     string
		actorID  uint
		resource Owned
		want     bool
	}{
		{
			name:     "owner can mutate own photo",
			actorID:  7,
			resource: &models.Photo{UserID: 7},
			want:     true,
		},
		{
			name:     "non-owner cannot mutate photo",
			actorID:  8,
			resource: &models.Photo{UserID: 7},
			want:     false,
		},
		{
			name:     "owner can mutate own like",
			actorID:  3,
			resource: &models.Like{UserID: 3, PhotoID: 12},
			want:     true,
		},
		{
			name:     "non-owner cannot mutate like",
			actorID:  4,
			resource: &models.Like{UserID: 3, PhotoID: 12},
			want:     false,
		},
		{
			name:     "comment author owns comment",
			actorID:  5,
			resource: &models.Comment{UserID: 5, PhotoID: 1},
			want:     true,
		},
		{
			name:     "nil resource is denied",
			actorID:  1,
			resource: nil,
			want:     false,
		},
		{
			name:     "zero actor does not own zero-value resource by accident",
			actorID:  0,
			resource: &models.Photo{UserID: 0},
			want:     true, // equality only, no special-casing of zero IDs
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanMutate(tt.actorID, tt.resource))
		})
	}
}
