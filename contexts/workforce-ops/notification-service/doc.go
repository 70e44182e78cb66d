// Package notificationhub implements the notification and announcement hub
// inside Crewdesk. Registries and other actors push entries in; dashboard
// surfaces read them back newest-first.
//
// Layering:
// - domain: notification/announcement entities, errors
// - application: commands/queries using explicit ports
// - ports: stable boundary for the hub store
// - adapters: concrete HTTP, memory, and sqlite implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under workforce-ops context.
// - Announcement creation and its companion broadcast notification are one
//   repository operation; a partial write is impossible by construction.
// - The unread count is always derived from the collection, never stored.
package notificationhub
