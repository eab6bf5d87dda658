package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LikesCreated counts like records actually inserted.
	LikesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "photogram_likes_created_total",
		Help: "Total number of like records inserted",
	})

	// DuplicateLikesSuppressed counts like attempts absorbed by the
	// uniqueness constraint instead of inserting a row.
	DuplicateLikesSuppressed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "photogram_duplicate_likes_suppressed_total",
		Help: "Total number of duplicate like attempts absorbed as no-ops",
	})

	// CommentsCreated counts comments persisted.
	CommentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "photogram_comments_created_total",
		Help: "Total number of comments created",
	})

	// PhotoCascadeDeletedRows records how many dependent rows each photo
	// deletion removed, by dependent table.
	PhotoCascadeDeletedRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "photogram_photo_cascade_deleted_rows_total",
		Help: "Dependent rows removed by photo cascade deletes",
	}, []string{"table"})

	// AuthorizationDenials counts ownership-check denials by operation.
	AuthorizationDenials = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "photogram_authorization_denials_total",
		Help: "Mutations denied by the ownership check",
	}, []string{"operation"})
)
