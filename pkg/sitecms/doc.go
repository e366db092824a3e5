// Package sitecms provides the content-management core for a marketing
// site: structured content records (hero slides, achievement stories,
// collaborators, team members, events, statements, testimonials and
// achievement statistics) with pluggable repository and blob storage
// backends.
//
// Every content type that owns a binary attachment (a slide image, an
// achievement photo, a collaborator logo, a team member portrait) keeps a
// database record and an independently addressed blob consistently paired:
// a new attachment is only persisted after it validates, the previous blob
// is only deleted after the record patch referencing the replacement has
// landed, and deleting an entity releases its blob before removing the
// record. Display URLs are never persisted; they are resolved from the
// blob store on every read so a missing blob degrades to an empty URL.
//
// Repository implementations (memory, Postgres) and blob stores (memory,
// filesystem, S3) are provided under subpackages.
package sitecms
