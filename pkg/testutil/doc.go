// Package testutil provides fixtures shared by j2render's package tests:
// temp-dir file helpers for tests that need the real filesystem, in-memory
// filesystem seeding, and the sample template data used across suites.
package testutil
