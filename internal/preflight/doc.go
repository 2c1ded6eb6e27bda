// Package preflight checks that a base path can receive a shot tree before
// anything is created: the directory exists, is writable and has free space.
package preflight
