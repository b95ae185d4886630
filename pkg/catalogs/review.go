package catalogs

import (
	"github.com/agentstation/utc"
)

// Review represents a user-authored rating and comment attached to a perfume
// by ID. Reviews are owned by the user collections store; the perfume ID is
// not checked against the catalog, so a review for a removed perfume simply
// becomes orphaned.
type Review struct {
	ID        string   `json:"id" yaml:"id"`
	PerfumeID string   `json:"perfume_id" yaml:"perfume_id"`
	UserName  string   `json:"user_name" yaml:"user_name"`
	Rating    int      `json:"rating" yaml:"rating"` // 1..5
	Comment   string   `json:"comment" yaml:"comment"`
	CreatedAt utc.Time `json:"created_at" yaml:"created_at"`
}
