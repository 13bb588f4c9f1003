// Package toolbelt is a collection of small convenience packages for working
// with files, text, numbers, time, randomness, networks, tasks, tables,
// images, archives, and the local system.  Each subpackage wraps a
// standard-library or third-party facility behind a thin, consistent API.
package toolbelt

const ApplicationName = `toolbelt`
const ApplicationSummary = `a grab-bag of utility helpers with a command-line interface`
const ApplicationVersion = `1.2.0`
