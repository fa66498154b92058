// Package mdlesson loads markdown lessons from disk, renders them into typed
// blocks, and groups the blocks into heading-delimited sections. A SQLite
// catalog, an HTML site export and a terminal view are built on top.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goldmark/, frontmatter/).
package mdlesson
