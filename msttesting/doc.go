// Package msttesting provides a reference Value implementation and small
// fixtures for exercising the mst package, in the spirit of
// mmrtesting.TestContext: a minimal, dependency-light harness rather than a
// mock framework.
package msttesting
