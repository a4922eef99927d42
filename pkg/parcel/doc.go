// Package parcel provides role-scoped partial updates and point reads of
// parcel records.
//
// # Overview
//
// The parcel package provides:
//   - The Parcel model and status enum
//   - Role-scoped strict validation of partial update payloads
//   - Point read and atomic partial update via a repository interface
//   - PostgreSQL and in-memory repository implementations
//   - HTTP handlers for GET /parcels/{id} and PUT /parcels/{id}
//
// # Basic Usage
//
//	import "github.com/tendant/simple-parcel/pkg/parcel"
//
//	repo := parcel.NewPostgresParcelRepository(parceldb.New(pool))
//	service := parcel.NewParcelService(repo)
//	handle := parcel.NewHandle(service)
//	handle.RegisterRoutes(r)
//
// # Field Permissions
//
// What a caller may update depends on their role:
//   - USER: dropoffPerms
//   - DRIVER: schedule, status
//   - ADMIN: everything
//
// A payload naming a field outside the caller's allowlist is rejected as a
// 400 validation failure, matching the service's existing contract. Keys
// outside the updatable field set are dropped and never reach storage.
package parcel
