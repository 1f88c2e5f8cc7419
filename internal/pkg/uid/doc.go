// Package uid provides small abstractions for generating unique identifiers.
//
// Business code depends on the StringID and NumberID interfaces so the
// concrete generator (UUID, snowflake) can be swapped or faked in tests.
package uid
