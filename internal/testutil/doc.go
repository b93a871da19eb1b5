// Package testutil holds helpers shared by the package tests: a thread-safe
// log buffer, a recording toolexec.Runner, temporary project trees and a
// shell stub standing in for the pioasm executable.
package testutil
