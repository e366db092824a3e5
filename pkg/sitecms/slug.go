package sitecms

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Slugify derives a URL-safe identifier from a title: lowercase, every run
// of characters outside [a-z0-9] collapsed to a single '-', no leading or
// trailing '-'. Pure and idempotent; an empty result means the title had no
// usable characters.
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingDash := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		} else {
			pendingDash = true
		}
	}

	return b.String()
}

// ensureUniqueSlug checks the slug secondary index and returns
// ErrSlugConflict when another achievement already owns the slug. The
// record identified by exclude (its own id on update) is ignored. There is
// no auto-suffixing on collision: editors must pick a distinguishing title.
//
// The check and the subsequent insert are not atomic; two simultaneous
// creates with the same derived slug can both pass. The postgres backend's
// unique index catches that race, the memory backend accepts it.
func ensureUniqueSlug(ctx context.Context, repo Repository, slug string, exclude uuid.UUID) error {
	existing, err := repo.GetAchievementBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return &StoreError{Store: "record", Op: "lookup slug", Err: err}
	}
	if existing.ID == exclude {
		return nil
	}
	return ErrSlugConflict
}
