// Package circular maps coordinates reported against a padded circular
// reference (the reference followed by a copy of itself, so that alignments
// crossing the origin stay contiguous) back onto the reference's own
// coordinate space, and provides a reusable per-position coverage bitmap over
// that space.
package circular
