// Package collections defines the core types and helpers shared by the
// container packages of this module. It provides node identities (UUID),
// shared error codes, and the default logging configuration. The containers
// themselves live in subpackages: list (doubly-linked circular list), queue,
// stack, forwardlist and bstree, with the allocator strategies in arena.
//
// Every container owns its nodes exclusively and obtains them from an
// arena.Allocator. Containers are not safe for concurrent use; each instance
// is a single-owner, in-process data structure.
package collections
