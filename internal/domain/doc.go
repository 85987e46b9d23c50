// Package domain contains the core domain model for the resume generator.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// PDF encoding, or the filesystem. Infra/adapters map into/from these types.
package domain
