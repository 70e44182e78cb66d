// Package accesscontrol implements the permission model and access guard
// inside Crewdesk.
//
// Layering:
// - domain: role/permission vocabulary, guard decisions, errors
// - application: queries using explicit ports
// - ports: stable boundaries for role catalog and permission cache
// - adapters: concrete HTTP, memory, and redis implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under identity-access context.
// - Do not import other context adapters into domain/application.
// - The guard never mutates identity or permission state; denial is a
//   navigational outcome rendered by the transport layer.
package accesscontrol
