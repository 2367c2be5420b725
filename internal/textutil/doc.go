// Package textutil cleans caption text before it is written into an overlay
// attribute.
//
// Captions sourced from SRT files or embedded subtitle streams arrive with
// mixed line endings, stray padding, and inconsistent Unicode normalization;
// overlay templates render best with NFC text and tidy line breaks. The
// cleaner preserves intentional line breaks but collapses runs of spaces and
// trims each line.
package textutil
