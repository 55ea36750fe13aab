// Package repository implements the data access layer for the Activities API.
//
// The only store is the ActivityDirectory: a process-wide, in-memory mapping
// from activity name to Activity record. There is no database behind it; the
// directory is the single source of truth for the process lifetime.
//
// # Concurrency
//
// The directory guards all access with a single RWMutex. Signup and
// unregister are each one critical section: the existence and membership
// checks happen under the same lock as the mutation, so two concurrent
// signups for the same activity and email cannot both succeed.
//
// # Snapshots
//
// Read operations return deep copies. Callers can hold or mutate a returned
// record without affecting the directory.
//
// # Example Usage
//
//	dir := repository.NewActivityDirectory(model.SeedActivities())
//	err := dir.AddParticipant(ctx, "Basketball", "amy@mergington.edu")
//	if errors.Is(err, repository.ErrActivityNotFound) {
//	    // Handle unknown activity
//	}
package repository
