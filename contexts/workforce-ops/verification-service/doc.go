// Package verification implements the verification request registry inside
// Crewdesk: the tracked asks from a manager to an employee to submit proof
// (photo or video) within an optional deadline.
//
// Layering:
// - domain: request entity, state machine, errors
// - application: commands/queries using explicit ports
// - ports: stable boundaries for persistence, ids, time, notifications
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under workforce-ops context.
// - Do not import other context adapters into domain/application; the
//   notification hub is reached only through the NotificationSink port.
// - Transitions commit before their notification is pushed, so observers
//   never see a notification for an unapplied transition.
package verification
