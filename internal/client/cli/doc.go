// Package cli implements the interactive terminal client. Each navigation
// target (login, register, home) gets its own small command loop; the
// navigator decides which loop is active, so replace/push semantics from the
// controllers translate directly into what the user can reach.
package cli
