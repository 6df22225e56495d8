// Package id generates prefixed unique identifiers for contributed
// entities ("biz-..." for businesses, "rev-..." for reviews).
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Entity prefixes.
const (
	PrefixBusiness = "biz"
	PrefixReview   = "rev"
)

// Generate creates a prefixed NanoID, e.g. "biz-V1StGXR8_Z5jdHi6B-myT".
// NanoIDs are URL-safe and shorter than UUIDs, which matters because these
// ids end up in listing URLs.
func Generate(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

// MustGenerate is Generate but panics on failure. Only for initialization
// paths where missing entropy should crash the process.
func MustGenerate(prefix string) string {
	id, err := Generate(prefix)
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return id
}
