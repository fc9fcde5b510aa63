package provider

import "context"

// Provider is a searchable catalogue of career resources. Search returns the
// full result set for a free-text query; an empty slice means no matches and a
// non-nil error means the catalogue is unreachable.
type Provider interface {
	Search(ctx context.Context, query string) ([]string, error)
}
